// Package blob persists uploaded bytes. The storage handlers only record a
// public URL; where the bytes actually live (local disk or Supabase Storage)
// is decided once at startup.
package blob

// Store saves raw upload bytes under a name and returns the public URL at
// which they are retrievable.
type Store interface {
	Save(filename string, data []byte, contentType string) (string, error)
	Delete(filename string) error
}
