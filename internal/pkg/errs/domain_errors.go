package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Follow-up errors
	ErrFollowUpNotFound   = errors.New("follow-up not found")
	ErrDuplicateFollowUp  = errors.New("duplicate follow-up")
	ErrFollowUpNotPending = errors.New("follow-up is not pending")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrTemplateNotFound   = errors.New("template not found")

	// Billing errors
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnknownCustomer  = errors.New("unknown billing customer")

	// XP errors
	ErrUnknownXPAction = errors.New("unknown xp action")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
