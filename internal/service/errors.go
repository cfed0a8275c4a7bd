package service

import "errors"

// Failure kinds matched with errors.Is at the HTTP boundary. Anything
// not listed here propagates as a fatal 500.
var (
	// ErrEmailTaken: the normalized email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPetNotFound covers both a nonexistent pet and a pet owned by
	// someone else.
	ErrPetNotFound = errors.New("pet not found")
	// ErrRoleMissing means the role catalog was never seeded. A
	// deployment fault, not a user error.
	ErrRoleMissing = errors.New("default role not seeded")
	// ErrOwnerMissing means an authenticated principal has no matching
	// credential row. Gate and store disagree; treat as a bug.
	ErrOwnerMissing = errors.New("authenticated user not found")
)
