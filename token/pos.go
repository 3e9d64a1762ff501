// Package token provides source position values attached to syntax nodes.
package token

import "fmt"

// Pos identifies a location in source text. Positions are produced by a
// scanner and carried through nodes unchanged; this package never computes
// line or column values.
type Pos struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`   // 1-based
	Column   int    `json:"column"` // 1-based
}

// NoPos is the zero Pos, used for synthesized nodes with no source location.
var NoPos = Pos{}

func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}
