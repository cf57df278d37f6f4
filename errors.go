package urlx

import "github.com/VolodymyrBor/urlx/internal/errorutil"

// Error is the type of the package error sentinels.
type Error = errorutil.Error

const (
	// ErrEmptyInput is returned when parsing an empty input.
	ErrEmptyInput Error = "empty input"
	// ErrMalformedInput is returned when the input does not follow the URL grammar.
	// The wrapping error message names the missing separator or the bad component.
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}
