// Package parse provides Kitsune format parsing support.
package parse

import (
	"fmt"
	"strconv"

	"github.com/kitsunelab/kitsune-format/ir"
	"github.com/kitsunelab/kitsune-format/token"
)

// Parse parses a complete Kitsune document: an optional metadata
// header followed by an optional root container of node blocks.
// Brace blocks directly inside the root container, and brace blocks
// directly inside an array valued under a children attribute, parse as
// nodes; all other brace blocks parse as plain mappings. Duplicate
// keys resolve last-write-wins, keeping the first occurrence's
// position.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{maxDepth: ir.DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	hdr, toks, posDoc, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	res := ir.NewDocument()
	for _, kv := range hdr {
		v := ir.FromString(kv.Val)
		v.ReType()
		res.SetMeta(kv.Key, v)
	}
	p := &parser{
		toks: toks,
		end:  posDoc.Pos(len(d)),
		opts: pOpts,
	}
	if err := p.parseRoot(res); err != nil {
		return nil, err
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
	end  *token.Pos
	opts *parseOpts
}

func (p *parser) cur() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) eofErr(what string) error {
	return fmt.Errorf("%w: unexpected end of input, expected %s %s",
		ErrSyntax, what, p.end)
}

func (p *parser) foundErr(what string, t *token.Token) error {
	return fmt.Errorf("%w: expected %s, found %q %s",
		ErrSyntax, what, string(t.Bytes), t.Pos)
}

func (p *parser) parseRoot(res *ir.Document) error {
	t := p.cur()
	if t == nil {
		return nil
	}
	if t.Type != token.TLCurl {
		return p.foundErr("'{' opening root container", t)
	}
	p.i++
	for {
		t = p.cur()
		if t == nil {
			return p.eofErr("'}' closing root container")
		}
		switch t.Type {
		case token.TComma:
			p.i++
		case token.TRCurl:
			p.i++
			if tr := p.cur(); tr != nil {
				return p.foundErr("end of input after root container", tr)
			}
			return nil
		case token.TLCurl:
			node, err := p.parseObject(true, 1)
			if err != nil {
				return err
			}
			res.AddRoot(node)
		default:
			return p.foundErr("node block or '}'", t)
		}
	}
}

// parseObject parses a brace block, the current token being its '{'.
// asNode selects the node interpretation over the plain mapping one.
func (p *parser) parseObject(asNode bool, depth int) (*ir.Node, error) {
	open := p.cur()
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: %s", ir.ErrDepth, open.Pos)
	}
	p.i++
	res := &ir.Node{Type: ir.MappingType}
	if asNode {
		res.Type = ir.NodeType
	}
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eofErr("'}' closing block")
		}
		switch t.Type {
		case token.TComma:
			p.i++
		case token.TRCurl:
			p.i++
			return res, nil
		case token.TLiteral, token.TString:
			key := t.String()
			p.i++
			col := p.cur()
			if col == nil {
				return nil, p.eofErr("':' after key")
			}
			if col.Type != token.TColon {
				return nil, p.foundErr("':' after key", col)
			}
			p.i++
			var (
				val *ir.Node
				err error
			)
			if v := p.cur(); v != nil && v.Type == token.TLSquare {
				val, err = p.parseArray(key == ir.ChildrenField, depth+1)
			} else {
				val, err = p.parseValue(false, depth+1)
			}
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		default:
			return nil, p.foundErr("attribute key or '}'", t)
		}
	}
}

// parseArray parses a bracket block, the current token being its '['.
// Commas between elements are mandatory. nodeElems marks the array as
// the direct value of a children attribute, making its brace block
// elements parse as nodes.
func (p *parser) parseArray(nodeElems bool, depth int) (*ir.Node, error) {
	open := p.cur()
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: %s", ir.ErrDepth, open.Pos)
	}
	p.i++
	var elts []*ir.Node
	for {
		t := p.cur()
		if t == nil {
			return nil, p.eofErr("']' closing array")
		}
		if t.Type == token.TRSquare {
			p.i++
			return ir.FromSlice(elts), nil
		}
		if len(elts) > 0 {
			if t.Type != token.TComma {
				return nil, p.foundErr("',' or ']'", t)
			}
			p.i++
			t = p.cur()
			if t == nil {
				return nil, p.eofErr("array element")
			}
		}
		elt, err := p.parseValue(nodeElems, depth+1)
		if err != nil {
			return nil, err
		}
		elts = append(elts, elt)
	}
}

// parseValue parses any value. braceAsNode applies the node
// interpretation to a brace block, which holds only for elements of a
// children array; nested arrays drop it.
func (p *parser) parseValue(braceAsNode bool, depth int) (*ir.Node, error) {
	t := p.cur()
	if t == nil {
		return nil, p.eofErr("value")
	}
	switch t.Type {
	case token.TLCurl:
		return p.parseObject(braceAsNode, depth)
	case token.TLSquare:
		return p.parseArray(false, depth)
	case token.TString, token.TLiteral:
		p.i++
		return ir.FromString(t.String()), nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid integer (%v) %s", ErrSyntax, err, t.Pos)
		}
		p.i++
		return ir.FromInt(i), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float (%v) %s", ErrSyntax, err, t.Pos)
		}
		p.i++
		return ir.FromFloat(f), nil
	case token.TTrue:
		p.i++
		return ir.FromBool(true), nil
	case token.TFalse:
		p.i++
		return ir.FromBool(false), nil
	case token.TNull:
		p.i++
		return ir.Null(), nil
	default:
		return nil, p.foundErr("value", t)
	}
}
