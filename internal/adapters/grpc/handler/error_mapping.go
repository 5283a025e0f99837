package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/irs-timesheet/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/irs-timesheet/internal/core/account"
	"github.com/ogurasousui/irs-timesheet/internal/core/auth"
	"github.com/ogurasousui/irs-timesheet/internal/core/timesheet"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, account.ErrInvalidEmail),
		errors.Is(err, account.ErrInvalidName),
		errors.Is(err, account.ErrInvalidSecret),
		errors.Is(err, account.ErrInvalidRole),
		errors.Is(err, account.ErrInvalidStatus),
		errors.Is(err, account.ErrInvalidID),
		errors.Is(err, timesheet.ErrInvalidDaySlot),
		errors.Is(err, timesheet.ErrInvalidHours),
		errors.Is(err, timesheet.ErrInvalidDecision),
		errors.Is(err, timesheet.ErrInvalidStatus),
		errors.Is(err, timesheet.ErrInvalidID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, account.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, account.ErrAccountNotFound), errors.Is(err, timesheet.ErrWeekNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, account.ErrPermissionDenied),
		errors.Is(err, timesheet.ErrPermissionDenied),
		errors.Is(err, auth.ErrAccountBlocked):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, timesheet.ErrStateConflict),
		errors.Is(err, timesheet.ErrNoHoursEntered),
		errors.Is(err, timesheet.ErrCommentRequired),
		errors.Is(err, auth.ErrProfileIncomplete):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrAccountNotFound),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func actorFromContext(ctx context.Context) (account.Actor, error) {
	actor, ok := interceptor.ActorFromContext(ctx)
	if !ok {
		return account.Actor{}, status.Error(codes.Unauthenticated, "authenticated actor is required")
	}
	return actor, nil
}
