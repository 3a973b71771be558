package escrow

import "errors"

// ErrorKind classifies a rejected operation
type ErrorKind int

const (
	// KindUnknown for errors not produced by this package
	KindUnknown ErrorKind = 0

	// KindAuthorization when the caller is not allowed to run the operation
	KindAuthorization ErrorKind = 1

	// KindLifecycle when the campaign status does not permit the operation
	KindLifecycle ErrorKind = 2

	// KindAmount for amounts below minimum, above escrow or empty balances
	KindAmount ErrorKind = 3

	// KindReference for unknown tokens, campaigns or recipients
	KindReference ErrorKind = 4
)

// String ...
func (k ErrorKind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindLifecycle:
		return "lifecycle"
	case KindAmount:
		return "amount"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Error is a rejected operation, state is left unchanged
type Error struct {
	Kind ErrorKind
	msg  string
}

// NewError ...
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Error ...
func (e *Error) Error() string {
	return e.msg
}

// KindOf returns the kind of a rejection, KindUnknown for other errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Authorization errors
var (
	// ErrNotCreator ...
	ErrNotCreator = NewError(KindAuthorization, "only creator can execute this")

	// ErrNotTokenOwner ...
	ErrNotTokenOwner = NewError(KindAuthorization, "caller is not badge owner nor approved")

	// ErrEmptyCaller ...
	ErrEmptyCaller = NewError(KindAuthorization, "caller address must not be empty")
)

// Lifecycle errors
var (
	// ErrGoalAlreadyMet ...
	ErrGoalAlreadyMet = NewError(KindLifecycle, "goal has been met, no more can be contributed")

	// ErrDeadlinePassed ...
	ErrDeadlinePassed = NewError(KindLifecycle, "deadline to contribute has passed")

	// ErrCampaignCancelled ...
	ErrCampaignCancelled = NewError(KindLifecycle, "campaign has been cancelled, no more can be contributed")

	// ErrNotSuccessful ...
	ErrNotSuccessful = NewError(KindLifecycle, "creator can only withdraw funds if campaign is a success")

	// ErrNotRefundable ...
	ErrNotRefundable = NewError(KindLifecycle,
		"for refund, campaign must be either cancelled or go past deadline and not reach the goal")

	// ErrAlreadySuccessful ...
	ErrAlreadySuccessful = NewError(KindLifecycle, "can only cancel a campaign if the goal has not been met yet")

	// ErrPastDeadline ...
	ErrPastDeadline = NewError(KindLifecycle, "can only cancel before deadline")

	// ErrAlreadyCancelled ...
	ErrAlreadyCancelled = NewError(KindLifecycle, "campaign is already cancelled")
)

// Amount errors
var (
	// ErrBelowMinimum ...
	ErrBelowMinimum = NewError(KindAmount, "contribution must be 0.01 or greater")

	// ErrInsufficientEscrow ...
	ErrInsufficientEscrow = NewError(KindAmount, "creator cannot request more than available amount")

	// ErrInvalidAmount ...
	ErrInvalidAmount = NewError(KindAmount, "amount must be greater than 0")

	// ErrAmountPrecision ...
	ErrAmountPrecision = NewError(KindAmount, "amount must have at most 18 decimal places")

	// ErrNoBalance ...
	ErrNoBalance = NewError(KindAmount, "contributor must have a balance greater than 0 to get refund")
)

// Reference errors
var (
	// ErrUnknownToken ...
	ErrUnknownToken = NewError(KindReference, "unknown badge token")

	// ErrWrongFrom ...
	ErrWrongFrom = NewError(KindReference, "transfer from incorrect owner")

	// ErrInvalidRecipient ...
	ErrInvalidRecipient = NewError(KindReference, "transfer to the empty address")

	// ErrApproveToOwner ...
	ErrApproveToOwner = NewError(KindReference, "approval to current owner")
)
