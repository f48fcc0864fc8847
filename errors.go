package sitekit

import "errors"

var (
	ErrAlreadyBooted = errors.New("sitekit: page already booted")
	ErrOpenPage      = errors.New("sitekit: failed to open page")
)
