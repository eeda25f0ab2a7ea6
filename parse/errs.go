package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrMultiDoc     = fmt.Errorf("%w: more than one document", ErrParse)
	ErrAliasExpand  = fmt.Errorf("%w: alias expansion too large", ErrParse)
	ErrTrailingJSON = fmt.Errorf("%w: trailing data after json value", ErrParse)
)
