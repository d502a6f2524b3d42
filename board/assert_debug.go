//go:build debug

package board

import "fmt"

// assertf panics with a formatted message if cond is false. Compiled out
// entirely in release builds (see assert_release.go) so the precondition
// checks it guards cost nothing outside debug builds, matching the grid
// package's checked/unchecked split.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
