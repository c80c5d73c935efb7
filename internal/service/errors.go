package service

import (
	"database/sql"
	"errors"

	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

// mapStoreErr converts repository failures into the error taxonomy. Missing
// rows become NotFound; already-typed errors (transient classification from
// the repository layer) pass through; anything else is a store failure.
func mapStoreErr(err error, notFoundMsg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFoundMsg)
	}
	var typed *appErrors.Error
	if errors.As(err, &typed) {
		return typed
	}
	return appErrors.Wrap(err, appErrors.ErrStore.Code, appErrors.ErrStore.Status, "store operation failed")
}
