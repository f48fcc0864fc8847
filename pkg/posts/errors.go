package posts

import "errors"

var (
	ErrInvalidLocalizedText = errors.New("posts: localized text must be a string or an object of strings")
	ErrDecodeManifest       = errors.New("posts: failed to decode manifest")
	ErrNoContainer          = errors.New("posts: container not found")
)
