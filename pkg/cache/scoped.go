package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The server uses this to version its cache entries so a key-affecting
// change in the rendering pipeline can be rolled out without serving
// stale artifacts from the previous scheme.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
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

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(textHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(textHash, opts)
}
