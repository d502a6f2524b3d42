//go:build !debug

package board

func assertf(cond bool, format string, args ...any) {}
