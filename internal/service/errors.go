package service

import (
	"errors"

	"github.com/restodesk/backoffice/internal/repository"
)

var (
	ErrRestaurantNotFound      = repository.ErrRestaurantNotFound
	ErrTeamMemberNotFound      = repository.ErrTeamMemberNotFound
	ErrTeamMemberEmailExists   = repository.ErrTeamMemberEmailExists
	ErrTableNotFound           = repository.ErrTableNotFound
	ErrTableNumberExists       = repository.ErrTableNumberExists
	ErrSnapshotVersionConflict = repository.ErrSnapshotVersionConflict

	// ErrInvalidArgument marks input the caller can fix. The wrapped message
	// is safe to show.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIntegrationFailed marks a failing third party (payment provider,
	// SMS gateway).
	ErrIntegrationFailed = errors.New("integration failed")

	ErrDeleteConfirmationMismatch = errors.New("confirmation does not match the restaurant name")
)
