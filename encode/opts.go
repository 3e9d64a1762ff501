package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level (default 2).
// Negative values are treated as 0.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// Depth sets the starting nesting level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeWire selects compact single-line output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeColors enables ANSI color output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
