//go:build !corvid_debug

package position

// debugAssert is a no-op in production builds, so the invariant checks it
// guards cost nothing on the hot path unless corvid_debug is set.
func debugAssert(cond bool, msg string) {}
