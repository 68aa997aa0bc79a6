package rectangle

import "errors"

var (
	ErrNameInvalid = errors.New("traverser: names must only contains alphanum, dashes, dots and be less than 128 chars")
	ErrInvalidCfg  = errors.New("traverser: invalid options")

	ErrInvalidDimension  = errors.New("rectangle: invalid dimension")
	ErrUnknownDimension  = errors.New("rectangle: unknown dimension")
	ErrDimensionOrder    = errors.New("rectangle: dimensions out of order")
	ErrMissingDimension  = errors.New("rectangle: missing dimension")
	ErrTrailingDimension = errors.New("rectangle: unexpected dimension after the width")
)
