package partials

import "errors"

var (
	ErrAlreadyLoaded = errors.New("partials: page already assembled")
	ErrNilPage       = errors.New("partials: nil page")
)
