package encode

import "errors"

// ErrEncoding wraps failures to render a document, such as a
// non-scalar metadata value which the header line cannot carry.
var ErrEncoding = errors.New("encoding error")
