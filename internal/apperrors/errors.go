// Package apperrors defines the coded errors shared by the scorecard forms
// and the strict round validator.
package apperrors

import "fmt"

// Error codes
const (
	CodeUnknownBidder    = 1001
	CodeInvalidBid       = 1002
	CodeUnknownPartner   = 1003
	CodeDuplicatePartner = 1004
	CodeBidderNotPartner = 1005
	CodePartnerCount     = 1006
	CodeInvalidWinners   = 1007
	CodeTooFewPlayers    = 2001
)

// ValidationError is a rejected user input.
type ValidationError struct {
	Code    int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError carrying the same code, so errors built
// with Withf still compare equal to their sentinel.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Withf returns a copy of e with a formatted message.
func (e *ValidationError) Withf(format string, args ...any) *ValidationError {
	return &ValidationError{Code: e.Code, Message: fmt.Sprintf(format, args...)}
}

// Predefined errors
var (
	ErrUnknownBidder    = &ValidationError{Code: CodeUnknownBidder, Message: "please select a bidder"}
	ErrInvalidBid       = &ValidationError{Code: CodeInvalidBid, Message: "bid amount must be greater than 0"}
	ErrUnknownPartner   = &ValidationError{Code: CodeUnknownPartner, Message: "partner is not in this game"}
	ErrDuplicatePartner = &ValidationError{Code: CodeDuplicatePartner, Message: "partner listed more than once"}
	ErrBidderNotPartner = &ValidationError{Code: CodeBidderNotPartner, Message: "bidder must be one of the partners"}
	ErrPartnerCount     = &ValidationError{Code: CodePartnerCount, Message: "wrong number of partners"}
	ErrInvalidWinners   = &ValidationError{Code: CodeInvalidWinners, Message: "winners must be partners or non-partners"}
	ErrTooFewPlayers    = &ValidationError{Code: CodeTooFewPlayers, Message: "not enough players"}
)
