package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Slot errors
	ErrSlotNotFound      = errors.New("slot not found")
	ErrInvalidSlotRange  = errors.New("slot end must be after slot start")
	ErrRangeTooLarge     = errors.New("slot range exceeds 31 days")
	ErrInvalidRangeDates = errors.New("range end date must not be before start date")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoPackages       = errors.New("at least one package is required")
	ErrTerminalStatus   = errors.New("booking status is terminal")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPackageNotFound  = errors.New("package not found")

	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
