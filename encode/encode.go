package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/plorth/go-plorth/ast"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ast.Type, ColorAttr, string) string
}

// Encode writes the canonical source rendering of node to w, followed by a
// newline. Composites render one child per line unless wire output is
// requested; empty composites render inline.
func Encode(node ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node ast.Node, w io.Writer, es *EncState) error {
	switch x := node.(type) {
	case *ast.Array:
		return encodeSeq(x.Elements(), w, es, ast.ArrayType, "[", "]", ",")
	case *ast.Object:
		return encodeObject(x, w, es)
	case *ast.Quote:
		return encodeSeq(x.Children(), w, es, ast.QuoteType, "(", ")", "")
	case *ast.String:
		return writeString(w, applyColor(es, ast.StringType, ValueColor, strconv.Quote(x.Value())))
	case *ast.Symbol:
		return writeString(w, applyColor(es, ast.SymbolType, ValueColor, x.ID()))
	case *ast.Word:
		return encodeWord(x, w, es)
	default:
		panic("type")
	}
}

func encodeSeq(children []ast.Node, w io.Writer, es *EncState, cType ast.Type, lb, rb, sep string) error {
	if err := writeString(w, applyColor(es, cType, SepColor, lb)); err != nil {
		return err
	}
	if len(children) == 0 {
		return writeString(w, applyColor(es, cType, SepColor, rb))
	}
	es.depth++
	for i, child := range children {
		if i > 0 && sep != "" {
			if err := writeString(w, applyColor(es, cType, SepColor, sep)); err != nil {
				return err
			}
		}
		if err := writeSep(w, es); err != nil {
			return err
		}
		if err := encode(child, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeSep(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, cType, SepColor, rb))
}

func encodeObject(node *ast.Object, w io.Writer, es *EncState) error {
	props := node.Properties()
	if err := writeString(w, applyColor(es, ast.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	if len(props) == 0 {
		return writeString(w, applyColor(es, ast.ObjectType, SepColor, "}"))
	}
	es.depth++
	for i, prop := range props {
		if i > 0 {
			if err := writeString(w, applyColor(es, ast.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeSep(w, es); err != nil {
			return err
		}
		key := applyColor(es, ast.ObjectType, FieldColor, strconv.Quote(prop.Key))
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ast.ObjectType, SepColor, ": ")); err != nil {
			return err
		}
		if err := encode(prop.Value, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeSep(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ast.ObjectType, SepColor, "}"))
}

func encodeWord(node *ast.Word, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ast.WordType, SepColor, ": ")); err != nil {
		return err
	}
	id := applyColor(es, ast.WordType, ValueColor, node.Symbol().ID())
	if err := writeString(w, id); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ast.WordType, SepColor, " ;"))
}

// writeSep separates children: a newline plus indentation, or a single space
// in wire output.
func writeSep(w io.Writer, es *EncState) error {
	if es.wire {
		return writeString(w, " ")
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ast.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
