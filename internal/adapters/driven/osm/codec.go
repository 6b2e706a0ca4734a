package osm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// commentColumn is where field comments start in written files.
const commentColumn = 42

// rawObject is one parsed object before it is attached to a document.
type rawObject struct {
	typ    string
	fields []string
	line   int
}

// decode splits r into objects. Comments run from "!" to end of line,
// fields are comma separated and objects end with a semicolon.
func decode(r io.Reader) ([]rawObject, error) {
	br := bufio.NewReader(r)

	var (
		objects []rawObject
		current []string
		field   strings.Builder
		line    = 1
		start   = 0
		comment bool
	)

	flushField := func() {
		if start == 0 {
			start = line
		}
		current = append(current, strings.TrimSpace(field.String()))
		field.Reset()
	}

	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read model: %w", err)
		}

		if c == '\n' {
			line++
			comment = false
			if field.Len() > 0 {
				field.WriteByte(' ')
			}
			continue
		}
		if comment {
			continue
		}

		switch c {
		case '!':
			comment = true
		case ',':
			flushField()
		case ';':
			flushField()
			objects = append(objects, rawObject{
				typ:    current[0],
				fields: current[1:],
				line:   start,
			})
			current = nil
			start = 0
		case '\r':
		default:
			if start == 0 && !isSpace(c) {
				start = line
			}
			field.WriteRune(c)
		}
	}

	if len(current) > 0 || strings.TrimSpace(field.String()) != "" {
		return nil, fmt.Errorf("%w: unterminated object at line %d", domain.ErrInvalidInput, start)
	}

	for _, o := range objects {
		if o.typ == "" {
			return nil, fmt.Errorf("%w: object without type at line %d", domain.ErrInvalidInput, o.line)
		}
	}
	return objects, nil
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t'
}

// encode writes objects in document order, one field per line with the
// field name as a trailing comment.
func encode(w io.Writer, objects []*object) error {
	bw := bufio.NewWriter(w)

	for _, o := range objects {
		l := layoutOf(o.typ)
		if _, err := fmt.Fprintf(bw, "\n%s,\n", o.typ); err != nil {
			return err
		}
		for i, v := range o.fields {
			sep := ","
			if i == len(o.fields)-1 {
				sep = ";"
			}
			entry := "  " + v + sep
			name := l.fieldName(i)
			if name != "" {
				if pad := commentColumn - len(entry); pad > 0 {
					entry += strings.Repeat(" ", pad)
				} else {
					entry += " "
				}
				entry += "!- " + name
			}
			if _, err := bw.WriteString(entry + "\n"); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
