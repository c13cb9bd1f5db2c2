package cache

// ScopedKeyer wraps a Keyer with a prefix, so several deployments can share
// one Redis instance without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "amoor:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ModelKey generates a prefixed document key.
func (k *ScopedKeyer) ModelKey(opts ModelKeyOpts) string {
	return k.prefix + k.inner.ModelKey(opts)
}
