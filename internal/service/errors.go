package service

import "fmt"

// Error handling principles:
// 1. Service methods return domain sentinel errors for expected conditions
//    (domain.ErrCardNotFound, domain.ErrInvalidRating, domain.ErrEmptyAttemptTarget)
// 2. Unexpected errors are wrapped in ServiceError with the failing operation attached
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes

// ServiceError represents an error that occurred during a service operation.
// It provides structured information about the error, including the operation
// that failed and the underlying cause.
type ServiceError struct {
	// Operation is the name of the operation that failed
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewEvaluateAttemptError returns a new ServiceError for the evaluate_attempt operation.
func NewEvaluateAttemptError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "evaluate_attempt",
		Message:   message,
		Err:       err,
	}
}

// NewEvaluateCardError returns a new ServiceError for the evaluate_card operation.
func NewEvaluateCardError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "evaluate_card",
		Message:   message,
		Err:       err,
	}
}

// NewSubmitReviewError returns a new ServiceError for the submit_review operation.
func NewSubmitReviewError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "submit_review",
		Message:   message,
		Err:       err,
	}
}

// NewDueCardsError returns a new ServiceError for the due_cards operation.
func NewDueCardsError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "due_cards",
		Message:   message,
		Err:       err,
	}
}

// NewCardProgressError returns a new ServiceError for the card_progress operation.
func NewCardProgressError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "card_progress",
		Message:   message,
		Err:       err,
	}
}

// NewSummaryError returns a new ServiceError for the summary operation.
func NewSummaryError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "summary",
		Message:   message,
		Err:       err,
	}
}

// NewResetProgressError returns a new ServiceError for the reset_progress operation.
func NewResetProgressError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "reset_progress",
		Message:   message,
		Err:       err,
	}
}
