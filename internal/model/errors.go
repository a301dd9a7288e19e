package model

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrCorruptDocument = errors.New("document is corrupt")

	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid verification token")

	ErrMissingFeature     = errors.New("missing feature")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrFeatureCount       = errors.New("wrong number of features")
	ErrInvalidArtifact    = errors.New("invalid model artifact")
	ErrPredictorNotLoaded = errors.New("predictor is not loaded")
)

// WeakPasswordError carries the first password policy rule that failed.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return e.Reason
}

// Is reports ErrWeakPassword as a match so callers can use errors.Is.
func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}
