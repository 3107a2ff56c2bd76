package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProxyHandler forwards media-processing requests (trim, rotate, speed,
// subtitles, export, download) to the external service unmodified. Nothing
// in the payload is interpreted here.
type ProxyHandler struct {
	proxy  *httputil.ReverseProxy
	logger zerolog.Logger
}

func NewProxyHandler(target *url.URL, logger zerolog.Logger) *ProxyHandler {
	componentLogger := logger.With().Str("handler", "proxy").Logger()

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		componentLogger.Error().Err(err).Str("path", r.URL.Path).Msg("media service unreachable")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "media processing service unavailable"})
	}

	return &ProxyHandler{
		proxy:  proxy,
		logger: componentLogger,
	}
}

func (h *ProxyHandler) Forward(c *gin.Context) {
	h.proxy.ServeHTTP(c.Writer, c.Request)
}
