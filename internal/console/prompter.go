// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minRating = 1
	maxRating = 5
)

// InvalidUserInputError describes an answer that could not be accepted.
// The prompter prints it and asks again.
type InvalidUserInputError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidUserInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// Prompter asks questions on a line-oriented text stream.
// It implements recommend.Interactor.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

// NewPrompter creates a prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// AskRating asks for an integer in [1, 5] until one is given.
func (p *Prompter) AskRating(ctx context.Context, prompt string) (int, error) {
	for {
		answer, err := p.ask(ctx, prompt+": ")
		if err != nil {
			return 0, err
		}

		value, perr := parseRating(answer)
		if perr == nil {
			return value, nil
		}
		p.reject(perr)
	}
}

// AskYesNo asks a y/n question until it is answered.
func (p *Prompter) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		answer, err := p.ask(ctx, prompt+" (y/n): ")
		if err != nil {
			return false, err
		}

		switch answer {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
		p.reject(&InvalidUserInputError{Input: answer, Reason: "answer y or n"})
	}
}

// Present prints items as a numbered list.
func (p *Prompter) Present(ctx context.Context, items []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(p.styles.heading.Render("Recommended movies:"))
	b.WriteByte('\n')
	for i, item := range items {
		fmt.Fprintf(&b, "  %s %s\n", p.styles.index.Render(fmt.Sprintf("%2d.", i+1)), item)
	}

	if _, err := io.WriteString(p.out, b.String()); err != nil {
		return fmt.Errorf("write recommendations: %w", err)
	}
	return nil
}

type lineResult struct {
	line string
	err  error
}

// ask writes prompt and returns the next trimmed line.
// An exhausted input returns an error wrapping io.EOF.
func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := io.WriteString(p.out, p.styles.prompt.Render(prompt)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	read := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		read <- lineResult{line: line, err: err}
	}()

	var line string
	var err error
	select {
	case <-ctx.Done():
		// The pending read is abandoned; the session is over.
		return "", ctx.Err()
	case r := <-read:
		line, err = r.line, r.err
	}
	if err != nil {
		// A final line without a newline still counts as an answer.
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("read answer: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) reject(err error) {
	// Write failures surface on the next prompt.
	_, _ = io.WriteString(p.out, p.styles.err.Render(err.Error())+"\n")
}

func parseRating(answer string) (int, error) {
	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &InvalidUserInputError{Input: answer, Reason: "enter a whole number from 1 to 5"}
	}
	if value < minRating || value > maxRating {
		return 0, &InvalidUserInputError{Input: answer, Reason: "rating must be between 1 and 5"}
	}
	return value, nil
}
