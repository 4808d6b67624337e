package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoAnswer is returned when input ends before a yes/no answer was read.
var ErrNoAnswer = errors.New("no answer received")

// Confirm asks the operator a yes/no question.
type Confirm func(ctx context.Context, question string) (bool, error)

// Always answers every question with the given value.
func Always(answer bool) Confirm {
	return func(context.Context, string) (bool, error) {
		return answer, nil
	}
}

// Console asks on out and reads answers from in, repeating the question until
// it gets y or n. An empty answer counts as n.
func Console(in io.Reader, out io.Writer) Confirm {
	scanner := bufio.NewScanner(in)
	return func(ctx context.Context, question string) (bool, error) {
		for {
			if err := ctx.Err(); err != nil {
				return false, err
			}

			fmt.Fprintf(out, "%s (y/N)\n", question)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return false, fmt.Errorf("failed to read answer: %w", err)
				}
				return false, ErrNoAnswer
			}

			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "y":
				return true, nil
			case "n", "":
				return false, nil
			}
		}
	}
}
