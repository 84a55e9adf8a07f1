package token

// IsLiteralChar reports whether c may appear in a bare word. Bare
// words cover identifiers and resource paths.
func IsLiteralChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '/', '-':
		return true
	}
	return false
}

// IsNumber reports whether v matches the numeric grammar: optional
// sign, digits, optional single '.' followed by digits.
func IsNumber(v string) bool {
	i := 0
	n := len(v)
	if i < n && (v[i] == '-' || v[i] == '+') {
		i++
	}
	start := i
	for i < n && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i == n {
		return true
	}
	if v[i] != '.' {
		return false
	}
	i++
	start = i
	for i < n && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	return i == n && i != start
}

// NeedsQuote reports whether a string must be quoted to survive a
// round trip: it is empty, contains a character outside the bare word
// class, or would collide with a keyword or numeric literal.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		if !IsLiteralChar(v[i]) {
			return true
		}
	}
	switch v {
	case "True", "False", "None", "true", "false", "null":
		return true
	}
	return IsNumber(v)
}

// Quote renders v as a double-quoted string literal with internal
// quotes and control characters escaped.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuotedToString returns the string value of a quoted literal,
// surrounding quotes stripped and escapes resolved. Single and double
// quoted forms are accepted on input; output always uses double quotes.
func QuotedToString(b []byte) string {
	if len(b) < 2 {
		return string(b)
	}
	q := b[0]
	if (q != '"' && q != '\'') || b[len(b)-1] != q {
		return string(b)
	}
	b = b[1 : len(b)-1]
	d := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != '\\' || i == len(b)-1 {
			d = append(d, c)
			continue
		}
		i++
		switch b[i] {
		case 'n':
			d = append(d, '\n')
		case 'r':
			d = append(d, '\r')
		case 't':
			d = append(d, '\t')
		default:
			d = append(d, b[i])
		}
	}
	return string(d)
}
