package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// NotFoundError indicates the target of an operation does not exist.
// Batch operations report it per entry and keep going; it never aborts
// the enclosing transaction.
type NotFoundError struct {
	*DomainError
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s %s not found", entity, id)},
		Entity:      entity,
		ID:          id,
	}
}

// InvalidRequestError indicates a caller-side precondition was violated.
// No partial effects are applied when it is returned.
type InvalidRequestError struct {
	*DomainError
}

func NewInvalidRequestError(message string) *InvalidRequestError {
	return &InvalidRequestError{DomainError: &DomainError{Message: message}}
}

// InsufficientStockError is the invalid-request case where a stock decrement
// exceeds the held quantity, distinguished for clearer messaging.
type InsufficientStockError struct {
	*InvalidRequestError
	Requested int64
	Available int64
}

func NewInsufficientStockError(requested, available int64) *InsufficientStockError {
	return &InsufficientStockError{
		InvalidRequestError: NewInvalidRequestError(
			fmt.Sprintf("insufficient stock: need %d, have %d", requested, available)),
		Requested: requested,
		Available: available,
	}
}

// InvalidAmountError indicates a negative amount was passed to an increment.
// That is a caller bug, not a gameplay condition.
type InvalidAmountError struct {
	*DomainError
	Amount int64
}

func NewInvalidAmountError(amount int64) *InvalidAmountError {
	return &InvalidAmountError{
		DomainError: &DomainError{Message: fmt.Sprintf("amount must be non-negative, got %d", amount)},
		Amount:      amount,
	}
}

// ConflictError indicates the store detected a conflicting concurrent
// transaction. Callers may retry the whole operation.
type ConflictError struct {
	*DomainError
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{DomainError: &DomainError{Message: message}}
}

// StoreError indicates a transaction infrastructure failure. It is surfaced
// as-is; the core never retries internally.
type StoreError struct {
	*DomainError
	Cause error
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s: %v", message, cause)},
		Cause:       cause,
	}
}
