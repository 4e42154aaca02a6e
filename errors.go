package colortool

import "errors"

// Error kinds. Every error returned from this package wraps exactly one of them.
var (
	ErrUsage = errors.New("usage error")
	ErrParse = errors.New("parse error")
	ErrRange = errors.New("range error")
	ErrWrite = errors.New("write error")
)
