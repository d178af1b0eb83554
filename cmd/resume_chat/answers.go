package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// readAnswers forwards each non-blank line of r to answers until r is
// exhausted or ctx is done. answers is closed on return.
// A read blocked on r is abandoned, not interrupted, when ctx ends.
func readAnswers(ctx context.Context, r io.Reader, answers chan<- string) error {
	defer close(answers)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read answers: %w", err)
					}
				default:
				}
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			select {
			case answers <- line:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
