package picowire

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// SplitCommand splits a shell-style command line into its tokens,
// honoring quotes and escapes.
func SplitCommand(line string) ([]string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split command: %w", err)
	}
	return words, nil
}

// JoinCommand quotes and joins arguments into a single command line that
// SplitCommand tokenizes back into the same arguments.
func JoinCommand(args ...string) string {
	return shellquote.Join(args...)
}
