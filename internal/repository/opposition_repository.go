package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// OppositionRepository persists third-party oppositions. The patent reference
// stays a literal title string; no foreign key is enforced.
type OppositionRepository struct {
	db *sqlx.DB
}

// NewOppositionRepository constructs the repository.
func NewOppositionRepository(db *sqlx.DB) *OppositionRepository {
	return &OppositionRepository{db: db}
}

// Create inserts an opposition and stores the generated id.
func (r *OppositionRepository) Create(ctx context.Context, opposition *models.Opposition) error {
	const query = `INSERT INTO Patents_Opposition (Email, Patent_Title, O_Date, Reason)
VALUES ($1, $2, $3, $4)
RETURNING O_ID`
	if err := r.db.GetContext(ctx, &opposition.ID, query,
		opposition.Email, opposition.PatentTitle, opposition.Date, opposition.Reason); err != nil {
		return wrapStoreErr("insert opposition", err)
	}
	return nil
}

// ListLatest returns the most recent oppositions.
func (r *OppositionRepository) ListLatest(ctx context.Context, limit int) ([]models.Opposition, error) {
	const query = `SELECT O_ID, Email, Patent_Title, O_Date, Reason
FROM Patents_Opposition
ORDER BY O_Date DESC
LIMIT $1`
	var oppositions []models.Opposition
	if err := r.db.SelectContext(ctx, &oppositions, query, limit); err != nil {
		return nil, wrapStoreErr("list oppositions", err)
	}
	return oppositions, nil
}
