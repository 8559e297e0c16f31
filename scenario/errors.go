package scenario

import "github.com/percona/fwdlist/errors"

// Precondition errors. The list package never returns them: the runner checks
// list preconditions before each operation and reports violations with these.
var (
	ErrUnknownList   = errors.New("unknown list")
	ErrUnknownOp     = errors.New("unknown operation")
	ErrEmptyList     = errors.New("list is empty")
	ErrNoSuccessor   = errors.New("no element after position")
	ErrPositionRange = errors.New("position out of range")
	ErrExpectation   = errors.New("expectation failed")
)
