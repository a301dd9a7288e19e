package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/diagnosis-server/internal/model"
)

func handleError(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var weak *model.WeakPasswordError
	switch {
	case errors.As(err, &weak):
		return status.Error(codes.InvalidArgument, weak.Reason)
	case errors.Is(err, model.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, "Email already registered")
	case errors.Is(err, model.ErrInvalidEmail):
		return status.Error(codes.InvalidArgument, "Invalid email format")
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "Invalid credentials")
	case errors.Is(err, model.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "Invalid verification token")
	case errors.Is(err, model.ErrUserNotFound):
		return status.Error(codes.NotFound, "User not found")
	case errors.Is(err, model.ErrMissingFeature),
		errors.Is(err, model.ErrUnknownFeature),
		errors.Is(err, model.ErrFeatureCount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrPredictorNotLoaded):
		return status.Error(codes.Unavailable, "diagnosis model is not loaded")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
