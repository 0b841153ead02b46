package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// InvalidUTF8Policy selects what the reader does with lines that are not
// valid UTF-8.
type InvalidUTF8Policy int

const (
	InvalidUTF8Fail InvalidUTF8Policy = iota
	InvalidUTF8Replace
)

// ParseInvalidUTF8Policy maps the config spelling to a policy.
func ParseInvalidUTF8Policy(name string) (InvalidUTF8Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fail":
		return InvalidUTF8Fail, nil
	case "replace":
		return InvalidUTF8Replace, nil
	default:
		return InvalidUTF8Fail, fmt.Errorf("unknown invalid_utf8 policy %q (want \"fail\" or \"replace\")", name)
	}
}

// InvalidUTF8Error reports a source line that is not valid UTF-8.
type InvalidUTF8Error struct {
	Line int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("line %d is not valid UTF-8", e.Line)
}

// LineReader yields logical lines with their terminator stripped. It returns
// io.EOF once the stream is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ReaderOptions configures NewLineReader.
type ReaderOptions struct {
	InvalidUTF8 InvalidUTF8Policy
}

type lineReader struct {
	reader *bufio.Reader
	policy InvalidUTF8Policy
	lineNo int
	err    error
}

// NewLineReader wraps r. A leading UTF-8 BOM is dropped and UTF-16 input
// announced by a BOM is decoded to UTF-8; anything else is read as UTF-8.
func NewLineReader(r io.Reader, opts ReaderOptions) LineReader {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	return &lineReader{
		reader: bufio.NewReader(decoded),
		policy: opts.InvalidUTF8,
	}
}

func (lr *lineReader) ReadLine() (string, error) {
	if lr.err != nil {
		return "", lr.err
	}

	text, err := lr.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		lr.err = fmt.Errorf("read line %d: %w", lr.lineNo+1, err)
		return "", lr.err
	}
	if err != nil && text == "" {
		lr.err = io.EOF
		return "", io.EOF
	}
	if err != nil {
		// Final line without a terminator; the next call reports EOF.
		lr.err = io.EOF
	}
	lr.lineNo++

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")

	if !utf8.ValidString(text) {
		if lr.policy == InvalidUTF8Fail {
			lr.err = &InvalidUTF8Error{Line: lr.lineNo}
			return "", lr.err
		}
		text = strings.ToValidUTF8(text, "\uFFFD")
	}
	return text, nil
}
