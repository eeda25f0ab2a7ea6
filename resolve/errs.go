package resolve

import (
	"errors"

	"github.com/fixcik/yexp/parse"
)

var (
	ErrParse                  = parse.ErrParse
	ErrNotFound               = errors.New("not found")
	ErrIO                     = errors.New("io error")
	ErrInvalidDirective       = errors.New("invalid extend directive")
	ErrInvalidInclusionTarget = errors.New("invalid include target")
	ErrNotAMapping            = errors.New("not a mapping")
	ErrCyclicReference        = errors.New("cyclic reference")
	ErrMaxDepth               = errors.New("reference depth limit exceeded")
)
