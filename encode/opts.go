package encode

type EncodeOption func(*EncState)

// Indent sets the indent width in spaces per nesting level, 4 by
// default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// MaxDepth overrides the nesting depth limit, ir.DefaultMaxDepth by
// default. Documents nested deeper fail wrapping ir.ErrDepth.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
