package dom

import "errors"

var (
	ErrParseDocument  = errors.New("dom: failed to parse document")
	ErrRenderDocument = errors.New("dom: failed to render document")
)
