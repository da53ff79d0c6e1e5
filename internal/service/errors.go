package service

import "errors"

// ErrValidation marks failures caused by a malformed request; handlers map it
// to a 400 instead of a 5xx.
var ErrValidation = errors.New("invalid request")
