package menu

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	writeClipboard       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// CopyAction returns an action that places text on the system clipboard.
func CopyAction(text string) (Action, error) {
	if text == "" {
		return nil, errors.New("copy: text must not be empty")
	}
	return func() (string, error) {
		if clipboardUnsupported() {
			return "", errors.New("copy: no system clipboard available")
		}
		if err := writeClipboard(text); err != nil {
			return "", fmt.Errorf("copy: %w", err)
		}
		return "", nil
	}, nil
}
