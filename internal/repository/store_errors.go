package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/patent-lifecycle-api/pkg/errors"
)

// ErrReviewCompleted signals a decision submission against an assignment that
// is already Completed. The row is terminal for that reviewer.
var ErrReviewCompleted = errors.New("review already completed")

// wrapStoreErr wraps a store failure, classifying serialization failures,
// deadlocks and lock timeouts as retryable transient errors. Every write here
// runs in a single transaction, so callers can re-invoke the whole operation
// after a transient failure.
func wrapStoreErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "40001", "40P01", "55P03":
			return appErrors.Wrap(err, appErrors.ErrTransientStore.Code, appErrors.ErrTransientStore.Status, op+": transaction conflict")
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
