package proc

import (
	"fmt"

	"github.com/google/shlex"
)

// Tokenize splits a single command string into an executable and argument
// list using shell-like word splitting. A tokenization failure aborts the
// session before anything is spawned.
func Tokenize(commandLine string) (string, []string, error) {
	words, err := shlex.Split(commandLine)
	if err != nil {
		return "", nil, fmt.Errorf("tokenize command: %w", err)
	}
	if len(words) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}
	return words[0], words[1:], nil
}
