// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/murfai/murf-setup/internal/errors"
)

// Sentinel errors for prompting.
var (
	// ErrCancelled indicates input ended (e.g., Ctrl+D) before a value was read.
	ErrCancelled = errors.New("input cancelled")
)

// Prompter reads interactive input from the user.
//
// The input is buffered once at construction; successive prompts on the
// same Prompter consume successive lines, so a piped answer script feeds
// one prompt per line.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer

	// tty is the underlying file when input comes from one, used for
	// terminal detection and hidden reads. Nil for plain readers.
	tty *os.File
}

// New creates a Prompter using stdin and stdout.
func New() *Prompter {
	return &Prompter{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
		tty:    os.Stdin,
	}
}

// NewWithIO creates a Prompter with custom reader and writer for testing.
func NewWithIO(r io.Reader, w io.Writer) *Prompter {
	p := &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
	if f, ok := r.(*os.File); ok {
		p.tty = f
	}
	return p
}

// Line displays the message and reads a single trimmed line of input.
// Returns ErrCancelled on EOF.
func (p *Prompter) Line(message string) (string, error) {
	fmt.Fprintf(p.writer, "%s: ", message)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A final line without a trailing newline is still valid input.
			if trimmed := strings.TrimSpace(input); trimmed != "" {
				return trimmed, nil
			}
			return "", ErrCancelled
		}
		return "", errors.Wrap(err, "reading input")
	}

	return strings.TrimSpace(input), nil
}

// Secret displays the message and reads a value without echoing it when
// stdin is a terminal. Falls back to a plain line read otherwise (piped
// input, tests).
func (p *Prompter) Secret(message string) (string, error) {
	if p.tty != nil && term.IsTerminal(int(p.tty.Fd())) {
		fmt.Fprintf(p.writer, "%s: ", message)
		raw, err := term.ReadPassword(int(p.tty.Fd()))
		fmt.Fprintln(p.writer)
		if err != nil {
			return "", errors.Wrap(err, "reading secret")
		}
		return strings.TrimSpace(string(raw)), nil
	}

	return p.Line(message)
}
