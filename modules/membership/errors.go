package membership

import "errors"

var (
	ErrDuplicateMember    = errors.New("member with this email or phone already exists")
	ErrStoreUnavailable   = errors.New("member store unavailable")
	ErrFailedToSave       = errors.New("failed to save submission")
	ErrRegistrationClosed = errors.New("member registration is disabled")
)
