package services

import "errors"

// Domain errors returned by the service layer. Handlers map these to
// HTTP status codes; anything else is a 500.
var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPlan means the referenced plan is unknown or inactive.
	ErrInvalidPlan = errors.New("invalid or inactive plan")

	// ErrOwnershipMismatch means the caller does not own the entity and
	// is not an admin.
	ErrOwnershipMismatch = errors.New("subscription does not belong to caller")

	// ErrNotActive means the operation requires an active subscription.
	ErrNotActive = errors.New("subscription is not active")

	// ErrAlreadyScheduled means a pending downgrade already exists.
	ErrAlreadyScheduled = errors.New("a downgrade is already scheduled")

	// ErrNoLowerTier means the target plan is not a lower tier than the
	// current plan.
	ErrNoLowerTier = errors.New("target plan is not a lower tier")

	// ErrNoHigherTier means the target plan is not a higher tier than
	// the current plan.
	ErrNoHigherTier = errors.New("target plan is not a higher tier")

	// ErrInvalidSignature means a webhook signature did not match.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
