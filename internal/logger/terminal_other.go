//go:build !linux && !darwin

package logger

// isTerminal reports false; colors are only used on Linux and macOS
func isTerminal(fd uintptr) bool {
	return false
}
