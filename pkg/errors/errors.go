package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrDonationNotFound        = errors.New("donation not found")
	ErrDonationAlreadyExists   = errors.New("donation already exists")
	ErrInvalidDonationValue    = errors.New("invalid donation value")
	ErrInvalidInstallmentCount = errors.New("invalid installment count")
	ErrInvalidPaymentValue     = errors.New("invalid payment value")
	ErrDonationNotActive       = errors.New("donation is not active")
	ErrInstallmentNotFound     = errors.New("installment not found")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeDonationNotFound        = "DONATION_NOT_FOUND"
	ErrCodeDonationAlreadyExists   = "DONATION_ALREADY_EXISTS"
	ErrCodeInvalidDonationValue    = "INVALID_DONATION_VALUE"
	ErrCodeInvalidInstallmentCount = "INVALID_INSTALLMENT_COUNT"
	ErrCodeInvalidPaymentValue     = "INVALID_PAYMENT_VALUE"
	ErrCodeDonationNotActive       = "DONATION_NOT_ACTIVE"
	ErrCodeInstallmentNotFound     = "INSTALLMENT_NOT_FOUND"
	ErrCodeValidationError         = "VALIDATION_ERROR"
	ErrCodeDatabaseError           = "DATABASE_ERROR"
	ErrCodeCacheError              = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapDonationNotFound(donationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeDonationNotFound,
		fmt.Sprintf("Donation with ID %s not found", donationID),
		ErrDonationNotFound,
	)
}

func WrapDonationAlreadyExists(donationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeDonationAlreadyExists,
		fmt.Sprintf("Donation with ID %s already exists", donationID),
		ErrDonationAlreadyExists,
	)
}

func WrapInvalidInstallmentCount(count int) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidInstallmentCount,
		fmt.Sprintf("Installment count %d is invalid, must be at least 1", count),
		ErrInvalidInstallmentCount,
	)
}

func WrapInvalidDonationValue(value string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDonationValue,
		fmt.Sprintf("Donation value %s is invalid, must be positive", value),
		ErrInvalidDonationValue,
	)
}

func WrapInvalidPaymentValue(value string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidPaymentValue,
		fmt.Sprintf("Payment value %s is invalid, must be positive", value),
		ErrInvalidPaymentValue,
	)
}

func WrapDonationNotActive(donationID string) *BusinessError {
	return NewBusinessError(
		ErrCodeDonationNotActive,
		fmt.Sprintf("Donation with ID %s is not active", donationID),
		ErrDonationNotActive,
	)
}

func WrapInstallmentNotFound(donationID string, number int) *BusinessError {
	return NewBusinessError(
		ErrCodeInstallmentNotFound,
		fmt.Sprintf("Installment %d of donation %s not found", number, donationID),
		ErrInstallmentNotFound,
	)
}

func WrapValidationError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeValidationError,
		"request validation failed",
		err,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"Cache operation failed",
		err,
	)
}
