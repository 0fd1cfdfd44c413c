package services

import "errors"

// ErrExtraction is returned when the completion holds no JSON object. Its
// message is sent to clients as is.
var ErrExtraction = errors.New("Failed to parse AI response")

type ErrorKind int

const (
	KindUpstream ErrorKind = iota + 1
	KindExtraction
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindUpstream:
		return "upstream"
	case KindExtraction:
		return "extraction"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// ReflectionError reports which generation step failed. Error returns the
// underlying message unchanged.
type ReflectionError struct {
	Kind ErrorKind
	Err  error
}

func (e *ReflectionError) Error() string {
	return e.Err.Error()
}

func (e *ReflectionError) Unwrap() error {
	return e.Err
}
