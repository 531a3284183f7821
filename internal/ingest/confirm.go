package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSurveyCancelled signals that the user aborted the survey. It is control
// flow, not a failure: the pipeline catches it, saves everything confirmed
// so far, and returns normally.
var ErrSurveyCancelled = errors.New("survey cancelled")

// Confirmer answers one yes/no survey prompt. Implementations may return
// ErrSurveyCancelled to abort the remaining survey.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) (bool, error)

func (f ConfirmerFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// PromptConfirmer is the interactive CLI implementation: it prints the
// prompt and reads a y/n line. "q" or end-of-input cancels the survey; any
// answer other than yes counts as no.
type PromptConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{reader: bufio.NewReader(in), out: out}
}

func (c *PromptConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, "%s [y/n/q]: ", prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if errors.Is(err, io.EOF) && answer == "" {
		return false, ErrSurveyCancelled
	}

	switch answer {
	case "y", "yes":
		return true, nil
	case "q", "quit":
		return false, ErrSurveyCancelled
	default:
		return false, nil
	}
}

// AutoAccept confirms every prompt. Useful for scripted or batch imports.
var AutoAccept = ConfirmerFunc(func(string) (bool, error) {
	return true, nil
})
