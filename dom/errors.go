package dom

import "errors"

// ErrNoRoot is returned when an operation needs a document tree, but the
// document has none.
var ErrNoRoot = errors.New("document has no root element")

// ErrResourceExhausted is returned when the input exceeds a limit imposed
// by the host, e.g. the maximum depth of the tree.
var ErrResourceExhausted = errors.New("resource limit exceeded")
