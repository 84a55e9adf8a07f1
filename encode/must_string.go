package encode

import (
	"bytes"
	"strings"

	"github.com/kitsunelab/kitsune-format/ir"
)

func MustString(doc *ir.Document) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func MustNodeString(n *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(n, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
