package prettyprint

import (
	"bytes"
	"fmt"
	"strings"
)

// Small document-assembly combinators, used by the formatters in this
// module to build up output strings piecewise.

type Doc interface {
	// String returns the printed representation.
	String() string
	// Debug returns a representation of the doc tree, for debugging.
	Debug() string
}

// Text

type text struct {
	str string
}

var _ Doc = &text{}

func Text(s string) *text {
	return &text{
		str: s,
	}
}

func Textf(format string, args ...interface{}) *text {
	return Text(fmt.Sprintf(format, args...))
}

func (s *text) String() string {
	return s.str
}

func (s *text) Debug() string {
	return fmt.Sprintf("Text(%#v)", s.str)
}

// Empty

type empty struct{}

var Empty = &empty{}

var _ Doc = Empty

func (e *empty) String() string {
	return ""
}

func (empty) Debug() string {
	return "Empty"
}

// Seq

type concat struct {
	docs []Doc
}

var _ Doc = &concat{}

func Seq(docs []Doc) *concat {
	return &concat{
		docs: docs,
	}
}

func (c *concat) String() string {
	buf := bytes.NewBufferString("")
	for _, doc := range c.docs {
		buf.WriteString(doc.String())
	}
	return buf.String()
}

func (c *concat) Debug() string {
	docStrs := make([]string, len(c.docs))
	for idx := range c.docs {
		docStrs[idx] = c.docs[idx].Debug()
	}
	return fmt.Sprintf("Seq(%s)", strings.Join(docStrs, ", "))
}

// Combinators && stdlib

func Join(docs []Doc, sep Doc) Doc {
	var out []Doc
	for idx, doc := range docs {
		if idx > 0 {
			out = append(out, sep)
		}
		out = append(out, doc)
	}
	return Seq(out)
}

var Comma = Text(",")

var CommaSpace = Text(", ")
