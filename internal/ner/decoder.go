package ner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineSize = 1024 * 1024

// Decoder turns a BIO tagged token stream into entity spans.
//
// Every non-blank line must hold exactly two fields separated by ASCII
// whitespace, "word label". Lines with any other field count are skipped. A
// blank line ends the sentence and resets the token position to zero.
//
// Unicode spaces such as U+3000 and U+00A0 are part of words, not separators.
type Decoder struct {
	reader io.Reader
}

func NewDecoder(reader io.Reader) *Decoder {
	return &Decoder{
		reader: reader,
	}
}

// DecodeFile decodes the BIO file at path.
func DecodeFile(path string) ([]Span, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tag file: %w", err)
	}
	defer f.Close()

	spans, err := NewDecoder(f).Decode()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return spans, nil
}

func (d *Decoder) Decode() ([]Span, error) {
	scanner := bufio.NewScanner(d.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		spans []Span
		open  openSpan
		pos   int64
	)

	for scanner.Scan() {
		line := trimLine(scanner.Text())
		if line == "" {
			if s, ok := open.close(pos - 1); ok {
				spans = append(spans, s)
			}
			pos = 0
			continue
		}

		fields := strings.FieldsFunc(line, isASCIISpace)
		if len(fields) != 2 {
			continue
		}
		word, label := fields[0], fields[1]

		switch {
		case strings.HasPrefix(label, BeginPrefix):
			if s, ok := open.close(pos - 1); ok {
				spans = append(spans, s)
			}
			open.start(word, strings.TrimPrefix(label, BeginPrefix), pos)
		case strings.HasPrefix(label, InsidePrefix) && open.continues(strings.TrimPrefix(label, InsidePrefix)):
			open.text.WriteString(word)
		default:
			if s, ok := open.close(pos - 1); ok {
				spans = append(spans, s)
			}
		}

		pos++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tag stream: %w", err)
	}

	if s, ok := open.close(pos - 1); ok {
		spans = append(spans, s)
	}

	return spans, nil
}

type openSpan struct {
	text   strings.Builder
	class  string
	begin  int64
	active bool
}

func (o *openSpan) start(word, class string, pos int64) {
	o.text.Reset()
	o.text.WriteString(word)
	o.class = class
	o.begin = pos
	o.active = true
}

func (o *openSpan) continues(class string) bool {
	return o.active && o.class == class
}

// close emits the open span ending at end, if one is open.
func (o *openSpan) close(end int64) (Span, bool) {
	if !o.active {
		return Span{}, false
	}
	s := Span{
		Text:  o.text.String(),
		Class: o.class,
		Start: o.begin,
		End:   end,
	}
	o.text.Reset()
	o.class = ""
	o.active = false
	return s, true
}

// trimLine strips leading and trailing control characters and ASCII spaces.
func trimLine(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
