// Package source provides the character-source abstraction the tokenizer
// reads from: a rune-at-a-time peek/read interface with line/column
// tracking and optional transcoding of non-UTF-8 input.
package source

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// EOF is returned by Peek and Read once the underlying reader is exhausted.
const EOF = -1

// Reader is the character source the tokenizer pulls from. Line starts at
// 1, column starts at 1; column resets to 1 and line increments whenever a
// '\n' is read, per the line/column invariant in the tokenizer spec.
type Reader struct {
	br           *bufio.Reader
	line, column int
}

// Option configures a Reader.
type Option func(*config)

type config struct {
	enc encoding.Encoding
}

// WithEncoding transcodes the underlying byte stream through enc before
// runes reach the tokenizer. Default is UTF-8 (no transcoding).
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.enc = enc }
}

// New wraps r as a character source. Line and column start at (1, 1).
func New(r io.Reader, opts ...Option) *Reader {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.enc != nil {
		r = transform.NewReader(r, cfg.enc.NewDecoder())
	}
	return &Reader{
		br:     bufio.NewReader(r),
		line:   1,
		column: 1,
	}
}

// Position returns the (line, column) just past the last rune consumed by
// Read.
func (r *Reader) Position() (line, column int) {
	return r.line, r.column
}

// Read consumes and returns the next rune, or EOF. CR and CRLF sequences
// are normalized to a single LF, matching the HTML input preprocessing
// step the tokenizer assumes has already happened.
func (r *Reader) Read() (rune, error) {
	ch, _, err := r.br.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF, nil
		}
		return EOF, errors.Wrap(err, "reading input source")
	}

	if ch == '\r' {
		next, _, peekErr := r.br.ReadRune()
		if peekErr == nil && next != '\n' {
			r.br.UnreadRune()
		}
		ch = '\n'
	}

	if ch == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}

	return ch, nil
}

// Peek returns the next n runes without consuming them. It returns fewer
// than n runes (possibly zero) if EOF is reached first.
func (r *Reader) Peek(n int) ([]rune, error) {
	runes := make([]rune, 0, n)
	for width := n; len(runes) < n; width += n {
		bs, err := r.br.Peek(width * utf8.UTFMax)
		runes = runes[:0]
		for i := 0; i < len(bs) && len(runes) < n; {
			ru, sz := utf8.DecodeRune(bs[i:])
			if ru == utf8.RuneError && sz <= 1 {
				break
			}
			runes = append(runes, ru)
			i += sz
		}
		if err != nil {
			break
		}
	}
	return runes, nil
}

// Discard skips n runes already returned by a prior Peek.
func (r *Reader) Discard(n int) error {
	for i := 0; i < n; i++ {
		ch, err := r.Read()
		if err != nil {
			return err
		}
		if ch == EOF {
			return nil
		}
	}
	return nil
}
