package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// InventorRepository persists inventor accounts.
type InventorRepository struct {
	db *sqlx.DB
}

// NewInventorRepository constructs the repository.
func NewInventorRepository(db *sqlx.DB) *InventorRepository {
	return &InventorRepository{db: db}
}

// Create inserts an inventor and stores the generated id on the model.
func (r *InventorRepository) Create(ctx context.Context, inventor *models.Inventor) error {
	const query = `INSERT INTO Inventors (Name, Organization, Email, Phone_No, Password)
VALUES ($1, $2, $3, $4, $5)
RETURNING I_ID`
	if err := r.db.GetContext(ctx, &inventor.ID, query,
		inventor.Name, inventor.Organization, inventor.Email, inventor.PhoneNo, inventor.PasswordHash); err != nil {
		return wrapStoreErr("insert inventor", err)
	}
	return nil
}

// FindByEmail returns the inventor with the given email or sql.ErrNoRows.
func (r *InventorRepository) FindByEmail(ctx context.Context, email string) (*models.Inventor, error) {
	const query = `SELECT I_ID, Name, Organization, Email, Phone_No, Password FROM Inventors WHERE Email = $1`
	var inventor models.Inventor
	if err := r.db.GetContext(ctx, &inventor, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapStoreErr("get inventor by email", err)
	}
	return &inventor, nil
}

// FindByID returns the inventor or sql.ErrNoRows.
func (r *InventorRepository) FindByID(ctx context.Context, id int64) (*models.Inventor, error) {
	const query = `SELECT I_ID, Name, Organization, Email, Phone_No, Password FROM Inventors WHERE I_ID = $1`
	var inventor models.Inventor
	if err := r.db.GetContext(ctx, &inventor, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapStoreErr("get inventor", err)
	}
	return &inventor, nil
}

// EmailExists reports whether the email is already registered.
func (r *InventorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT COUNT(*) FROM Inventors WHERE Email = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, email); err != nil {
		return false, wrapStoreErr("count inventor email", err)
	}
	return count > 0, nil
}
