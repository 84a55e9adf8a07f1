package token

import (
	"bytes"
	"fmt"
)

const (
	headerOpen  = "<!--"
	headerClose = "-->"
)

// Tokenize scans src into a token stream. If the first non-whitespace
// content of src opens a metadata header, the header's key:value pairs
// are consumed up to the closer on the same line and returned
// separately; the header content is not re-tokenized. The returned
// PosDoc maps byte offsets of the scanned input to line/column.
func Tokenize(dst []Token, src []byte) ([]HeaderKV, []Token, *PosDoc, error) {
	doc := NewPosDoc(src)
	n := len(src)
	i := skipSpace(src, 0, doc)

	var hdr []HeaderKV
	if bytes.HasPrefix(src[i:], []byte(headerOpen)) {
		var err error
		hdr, i, err = scanHeader(src, i, doc)
		if err != nil {
			return nil, nil, doc, err
		}
	}

	for {
		i = skipSpace(src, i, doc)
		if i >= n {
			break
		}
		c := src[i]
		pos := doc.Pos(i)
		switch c {
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: pos, Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: pos, Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: pos, Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: pos, Bytes: src[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: pos, Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: pos, Bytes: src[i : i+1]})
			i++
		case '"', '\'':
			j, err := scanQuoted(src, i, doc)
			if err != nil {
				return hdr, nil, doc, err
			}
			dst = append(dst, Token{Type: TString, Pos: pos, Bytes: src[i:j]})
			i = j
		default:
			if !IsLiteralChar(c) && c != '+' {
				return hdr, nil, doc, UnexpectedErr(fmt.Sprintf("character %q", c), pos)
			}
			j := i + 1
			for j < n && IsLiteralChar(src[j]) {
				j++
			}
			b := src[i:j]
			tt, err := classify(b, pos)
			if err != nil {
				return hdr, nil, doc, err
			}
			dst = append(dst, Token{Type: tt, Pos: pos, Bytes: b})
			i = j
		}
	}
	return hdr, dst, doc, nil
}

func skipSpace(src []byte, i int, doc *PosDoc) int {
	n := len(src)
	for i < n {
		switch src[i] {
		case '\n':
			doc.nl(i)
			i++
		case ' ', '\t', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func classify(b []byte, pos *Pos) (TokenType, error) {
	switch string(b) {
	case "True", "true":
		return TTrue, nil
	case "False", "false":
		return TFalse, nil
	case "None", "null":
		return TNull, nil
	}
	v := string(b)
	if IsNumber(v) {
		if bytes.IndexByte(b, '.') >= 0 {
			return TFloat, nil
		}
		return TInteger, nil
	}
	if b[0] == '+' {
		return 0, UnexpectedErr("character '+'", pos)
	}
	return TLiteral, nil
}

// scanHeader consumes `<!--key:value key2:value2-->`. The closer must
// appear before the end of the line.
func scanHeader(src []byte, i int, doc *PosDoc) ([]HeaderKV, int, error) {
	open := doc.Pos(i)
	i += len(headerOpen)
	start := i
	for {
		if i >= len(src) || src[i] == '\n' {
			return nil, 0, ExpectedErr(fmt.Sprintf("%q closing header", headerClose), open)
		}
		if bytes.HasPrefix(src[i:], []byte(headerClose)) {
			break
		}
		i++
	}
	content := src[start:i]
	end := i + len(headerClose)

	var kvs []HeaderKV
	j := 0
	for j < len(content) {
		for j < len(content) && (content[j] == ' ' || content[j] == '\t') {
			j++
		}
		if j >= len(content) {
			break
		}
		k := j
		for k < len(content) && content[k] != ' ' && content[k] != '\t' {
			k++
		}
		part := content[j:k]
		pos := doc.Pos(start + j)
		ci := bytes.IndexByte(part, ':')
		if ci < 0 {
			return nil, 0, ExpectedErr("key:value in header", pos)
		}
		kvs = append(kvs, HeaderKV{
			Key: string(part[:ci]),
			Val: string(part[ci+1:]),
			Pos: pos,
		})
		j = k
	}
	return kvs, end, nil
}

func scanQuoted(src []byte, i int, doc *PosDoc) (int, error) {
	q := src[i]
	j := i + 1
	n := len(src)
	for j < n {
		switch src[j] {
		case '\\':
			j += 2
		case '\n':
			doc.nl(j)
			j++
		case q:
			return j + 1, nil
		default:
			j++
		}
	}
	return 0, ExpectedErr("closing quote", doc.end())
}
