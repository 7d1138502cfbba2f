// Package console drives the interactive league menu over an injectable reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrNotNumber is returned by ReadInt when the answer is not an integer.
var ErrNotNumber = errors.New("answer is not a number")

type line struct {
	text string
	err  error
}

// Prompter asks questions on out and reads one answer per line from in.
// Reads honour context cancellation even while the underlying reader blocks.
type Prompter struct {
	out     io.Writer
	lines   chan line
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewPrompter starts reading lines from in. Call Close when no more answers are needed.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:     out,
		lines:   make(chan line),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go p.scan(in)
	return p
}

// Close stops handing out answers. Lines still buffered by the scanner are discarded.
// A read blocked inside in is only released once in returns.
func (p *Prompter) Close() {
	p.once.Do(func() { close(p.done) })
}

func (p *Prompter) scan(in io.Reader) {
	defer close(p.stopped)
	defer close(p.lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !p.send(line{text: sc.Text()}) {
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	p.send(line{err: err})
}

func (p *Prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}

// ReadLine prints prompt and waits for the next answer. It returns io.EOF once input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// ReadInt prints prompt and parses the answer as a base-10 integer.
func (p *Prompter) ReadInt(ctx context.Context, prompt string) (int, error) {
	text, err := p.ReadLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, text)
	}
	return n, nil
}
