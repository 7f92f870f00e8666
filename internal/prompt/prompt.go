// Package prompt reads validated answers from a line-oriented terminal.
//
// Every question is a retry loop: the prompt is printed, one line is read
// and classified, and rejected input prints the classifier's message and
// asks again. Only a failure to read input ends the loop with an error.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	apperrors "worklog/internal/errors"
	"worklog/internal/validation"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

const clearSequence = "\033c"

// Prompter asks questions on out and reads the answers from in
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// New creates a Prompter. Screen clearing starts disabled.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// WithClearScreen enables clearing the screen before lists and forms.
// Clearing only happens when out is a terminal.
func (p *Prompter) WithClearScreen(enabled bool) *Prompter {
	p.clear = enabled
	return p
}

// Printf writes formatted text to the output
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the output
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// ClearScreen resets the terminal when enabled and attached to one
func (p *Prompter) ClearScreen() {
	if !p.clear {
		return
	}
	f, ok := p.out.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return
	}
	fmt.Fprint(p.out, clearSequence)
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned as is; end of input with
// nothing read is an I/O error.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", apperrors.NewIOError("read input", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadNotes prints prompt and collects everything up to the end of input.
// The surrounding whitespace is trimmed; nothing typed yields "".
func (p *Prompter) ReadNotes(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)

	var b strings.Builder
	for {
		chunk, err := p.in.ReadString('\n')
		b.WriteString(chunk)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", apperrors.NewIOError("read notes", err)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// Confirm asks a yes/no question. An answer other than the explicit
// opposite of the default keeps the default.
func (p *Prompter) Confirm(prompt string, defaultYes bool) (bool, error) {
	answer, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(answer)

	if defaultYes {
		return !strings.EqualFold(answer, "n"), nil
	}
	return strings.EqualFold(answer, "y"), nil
}

// Pause waits for the user to press enter
func (p *Prompter) Pause(prompt string) error {
	_, err := p.ReadLine(prompt)
	return err
}

// Ask repeats prompt until classify accepts the answer. Validation
// failures carrying field errors are printed and asked again; any other
// error is returned.
func Ask[T any](p *Prompter, prompt string, classify func(string) (T, error)) (T, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := classify(line)
		if err == nil {
			return value, nil
		}

		var ve *validation.ValidationError
		if !errors.As(err, &ve) || !ve.HasErrors() {
			var zero T
			return zero, err
		}
		fmt.Fprintf(p.out, "\n%s\n", ve.GetUserFriendlyMessage())
	}
}
