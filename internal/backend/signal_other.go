//go:build !unix

package backend

import "os"

// resizeSignals returns a channel that never fires; the ticker alone
// detects size changes here.
func resizeSignals() (<-chan os.Signal, func()) {
	return nil, func() {}
}
