// Package cache stores generated simulation documents keyed by the content
// hash of their inputs.
//
// Three backends implement [Cache]:
//
//   - [NullCache]: never stores anything (--no-cache, tests)
//   - [FileCache]: one JSON file per entry under the XDG cache directory (CLI)
//   - [RedisCache]: a shared Redis instance (HTTP API)
//
// Keys come from a [Keyer]. The default keyer hashes every input that
// influences the output, so equal inputs always map to the same entry and a
// changed config, template or seed never hits a stale one.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ModelKey returns the key of the document generated from opts.
	ModelKey(opts ModelKeyOpts) string
}

// ModelKeyOpts lists every input that influences a generated document.
type ModelKeyOpts struct {
	ConfigHash   string `json:"config"`
	TemplateHash string `json:"template"`
	Seed         uint64 `json:"seed"`
	// Indent changes the bytes written, not the model.
	Indent int `json:"indent,omitempty"`
}

// DefaultKeyer generates unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ModelKey returns "model:<sha256 of opts>".
func (DefaultKeyer) ModelKey(opts ModelKeyOpts) string {
	return hashKey("model", opts)
}
