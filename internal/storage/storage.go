// Package storage provides durable string key/value entries, the terminal
// counterpart of a browser's localStorage.
package storage

// Storage is a string-keyed store of string values.
// GetItem reports ok=false when the key was never written or was removed.
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
