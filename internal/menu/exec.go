package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommandTimeout bounds how long a run action may take.
const DefaultCommandTimeout = 30 * time.Second

// CommandAction returns an action that runs argv with its output captured,
// so the menu stays intact on screen. A non-zero exit becomes an error
// carrying the first line the command printed.
func CommandAction(argv []string, timeout time.Duration) (Action, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("run: command must not be empty")
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	args := append([]string(nil), argv...)
	return func() (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput()
		if err == nil {
			return "", nil
		}
		if lines := splitLines(string(out)); len(lines) > 0 {
			return "", fmt.Errorf("%s: %w: %s", args[0], err, lines[0])
		}
		return "", fmt.Errorf("%s: %w", args[0], err)
	}, nil
}

// splitLines returns the non-blank lines of input, trimmed.
func splitLines(input string) []string {
	scanner := bufio.NewScanner(strings.NewReader(input))
	lines := []string{}
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
