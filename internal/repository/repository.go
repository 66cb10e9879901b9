// Package repository exposes the relational store to the services layer.
//
// Each repository is an interface backed by GORM so services and their
// tests can swap in other implementations. Storage failures are returned
// as apperrors.ErrInternalServer wrapping the driver error; missing rows
// map to the entity's not-found sentinel.
package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
)

// storeError converts a GORM error into an AppError. notFound is returned
// for gorm.ErrRecordNotFound; every other error is logged and wrapped.
func storeError(err error, notFound *apperrors.AppError, op string) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	logger.Get().Errorw("store operation failed", "op", op, "error", err)
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
