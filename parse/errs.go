package parse

import "errors"

// ErrSyntax wraps all structural and lexical parse failures. Errors
// carry the offending position and an expected/found description; a
// failed parse never yields a partial document.
var ErrSyntax = errors.New("syntax error")
