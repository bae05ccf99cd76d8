package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned by Run when the input ends before the session
// terminates. There is no graceful recovery from a closed input stream.
var ErrInputClosed = errors.New("input closed before session ended")

// Renderer turns a session line into printable text.
type Renderer interface {
	Render(Line) string
}

// PlainRenderer prints line text unchanged.
type PlainRenderer struct{}

// Render implements Renderer.
func (PlainRenderer) Render(l Line) string { return l.Text }

type readResult struct {
	line string
	err  error
}

// Run drives s until it terminates, reading one line from in per step and
// writing every produced line to out. A nil renderer prints plain text.
//
// Cancelling ctx returns ctx.Err() even while a read is blocked; the pending
// read is abandoned.
func Run(ctx context.Context, s *Session, in io.Reader, out io.Writer, r Renderer) error {
	if r == nil {
		r = PlainRenderer{}
	}
	if err := emit(out, r, s.Start()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan readResult)
	go readLines(ctx, bufio.NewReader(in), lines)

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-lines:
			if res.err != nil {
				return res.err
			}
			if err := emit(out, r, s.Feed(res.line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// readLines sends one result per input line until a read fails or ctx ends.
func readLines(ctx context.Context, br *bufio.Reader, lines chan<- readResult) {
	for {
		line, err := readLine(br)
		select {
		case lines <- readResult{line: line, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// readLine returns the next line without its terminator. Lines have no
// length limit; a final line without a newline is still returned.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func emit(out io.Writer, r Renderer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, r.Render(l)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
