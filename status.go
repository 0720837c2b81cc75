package opcuaview

import "fmt"

// StatusCode is the closed set of OPC UA status codes this package can
// return, named the way gopcua's ua.StatusCode constants are.
type StatusCode uint32

const (
	StatusOK StatusCode = iota
	StatusBadNothingToDo
	StatusBadViewIDUnknown
	StatusBadNodeIDUnknown
	StatusBadBrowseDirectionInvalid
	StatusBadReferenceTypeIDInvalid
	StatusBadNoContinuationPoints
	StatusBadContinuationPointInvalid
	StatusBadBrowseNameInvalid
	StatusBadNoMatch
	StatusBadOutOfMemory
)

func (s StatusCode) String() string {
	switch s {
	case StatusOK:
		return "Good"
	case StatusBadNothingToDo:
		return "BadNothingToDo"
	case StatusBadViewIDUnknown:
		return "BadViewIdUnknown"
	case StatusBadNodeIDUnknown:
		return "BadNodeIdUnknown"
	case StatusBadBrowseDirectionInvalid:
		return "BadBrowseDirectionInvalid"
	case StatusBadReferenceTypeIDInvalid:
		return "BadReferenceTypeIdInvalid"
	case StatusBadNoContinuationPoints:
		return "BadNoContinuationPoints"
	case StatusBadContinuationPointInvalid:
		return "BadContinuationPointInvalid"
	case StatusBadBrowseNameInvalid:
		return "BadBrowseNameInvalid"
	case StatusBadNoMatch:
		return "BadNoMatch"
	case StatusBadOutOfMemory:
		return "BadOutOfMemory"
	default:
		return fmt.Sprintf("StatusCode(%d)", uint32(s))
	}
}

// IsGood reports whether s is StatusOK.
func (s StatusCode) IsGood() bool {
	return s == StatusOK
}

// StatusError wraps a StatusCode as an error, so call sites can either
// inspect the code directly (err.(*StatusError).Code) or use errors.Is
// against one of the sentinel Err* values below.
type StatusError struct {
	Code StatusCode
}

func (e *StatusError) Error() string {
	return e.Code.String()
}

// Is lets errors.Is(err, ErrNodeIDUnknown) match any *StatusError carrying
// that code, including ones built independently of the sentinel values.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && t.Code == e.Code
}

func statusErr(code StatusCode) error {
	if code == StatusOK {
		return nil
	}
	return &StatusError{Code: code}
}

// Sentinel errors for errors.Is comparisons against this package's results.
var (
	ErrNothingToDo              = &StatusError{Code: StatusBadNothingToDo}
	ErrViewIDUnknown            = &StatusError{Code: StatusBadViewIDUnknown}
	ErrNodeIDUnknown            = &StatusError{Code: StatusBadNodeIDUnknown}
	ErrBrowseDirectionInvalid   = &StatusError{Code: StatusBadBrowseDirectionInvalid}
	ErrReferenceTypeIDInvalid   = &StatusError{Code: StatusBadReferenceTypeIDInvalid}
	ErrNoContinuationPoints     = &StatusError{Code: StatusBadNoContinuationPoints}
	ErrContinuationPointInvalid = &StatusError{Code: StatusBadContinuationPointInvalid}
	ErrBrowseNameInvalid        = &StatusError{Code: StatusBadBrowseNameInvalid}
	ErrNoMatch                  = &StatusError{Code: StatusBadNoMatch}
	ErrOutOfMemory              = &StatusError{Code: StatusBadOutOfMemory}
)

// StatusFromErr extracts the StatusCode carried by err. Every error this
// package returns is a *StatusError; any other error reaching here would be
// a bug, so it maps to StatusBadOutOfMemory rather than panicking.
func StatusFromErr(err error) StatusCode {
	if err == nil {
		return StatusOK
	}
	if se, ok := err.(*StatusError); ok {
		return se.Code
	}
	return StatusBadOutOfMemory
}
