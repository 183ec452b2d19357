package ogdl

import "errors"

// ErrParse is returned by Parse when the input is not a valid OGDL document.
// Grammar rules report failure as a bare no-match, so there is no position,
// expected-token set, or partial result to attach.
var ErrParse = errors.New("ogdl: invalid document")
