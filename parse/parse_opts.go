package parse

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the nesting depth limit, ir.DefaultMaxDepth by
// default. Input nested deeper fails wrapping ir.ErrDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
