package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// maxLineSize is the longest input line runLines accepts.
const maxLineSize = 1 << 20

// runLines executes each line read from r in sess and writes the output of
// every line to w. It is used when the input is not a terminal, so a file of
// commands and expressions can be piped into the shell.
//
// Reading stops at end of input, on :quit, or at the first line that fails.
// The error of a failing line is returned annotated with its line number.
// Lines starting with "#" are skipped.
func runLines(ctx context.Context, sess *session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)

	n := 1
	for ; scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		out, act, err := sess.exec(ctx, line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		if out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}

		if act == actionQuit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", n, err)
	}

	return nil
}
