package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/plorth/go-plorth/ast"
	"github.com/plorth/go-plorth/encode"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
