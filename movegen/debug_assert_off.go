//go:build !corvid_debug

package movegen

// debugAssert is a no-op in production builds.
func debugAssert(cond bool, msg string) {}
