package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/patent-lifecycle-api/internal/models"
)

// PatentRepository persists patents and their ownership links.
type PatentRepository struct {
	db *sqlx.DB
}

// NewPatentRepository constructs the repository.
func NewPatentRepository(db *sqlx.DB) *PatentRepository {
	return &PatentRepository{db: db}
}

// CreateWithOwner inserts the patent and its ownership link in one
// transaction. A patent must never exist without at least one owner.
func (r *PatentRepository) CreateWithOwner(ctx context.Context, patent *models.Patent, inventorID int64) (id int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, wrapStoreErr("begin create patent", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertPatent = `INSERT INTO Patents (Appl_Name, Filing_Date, Domain, Status, Patent_Type, Title, Description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING P_ID`
	if err = tx.GetContext(ctx, &id, insertPatent,
		patent.ApplName, patent.FilingDate, patent.Domain, patent.Status, patent.PatentType, patent.Title, patent.Description); err != nil {
		return 0, wrapStoreErr("insert patent", err)
	}

	const insertLink = `INSERT INTO Inventor_Patents (I_ID, P_ID) VALUES ($1, $2)`
	if _, err = tx.ExecContext(ctx, insertLink, inventorID, id); err != nil {
		return 0, wrapStoreErr("insert ownership link", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, wrapStoreErr("commit create patent", err)
	}
	patent.ID = id
	return id, nil
}

// FindByID returns a single patent or sql.ErrNoRows.
func (r *PatentRepository) FindByID(ctx context.Context, id int64) (*models.Patent, error) {
	const query = `SELECT P_ID, Appl_Name, Filing_Date, Domain, Status, Patent_Type, Title, Description
FROM Patents WHERE P_ID = $1`
	var patent models.Patent
	if err := r.db.GetContext(ctx, &patent, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, wrapStoreErr("get patent", err)
	}
	return &patent, nil
}

// List returns the full patent register ordered by title.
func (r *PatentRepository) List(ctx context.Context) ([]models.Patent, error) {
	const query = `SELECT P_ID, Appl_Name, Filing_Date, Domain, Status, Patent_Type, Title, Description
FROM Patents ORDER BY Title`
	var patents []models.Patent
	if err := r.db.SelectContext(ctx, &patents, query); err != nil {
		return nil, wrapStoreErr("list patents", err)
	}
	return patents, nil
}

// ListByInventor returns the patents owned by an inventor, newest filing first.
func (r *PatentRepository) ListByInventor(ctx context.Context, inventorID int64) ([]models.Patent, error) {
	const query = `SELECT P.P_ID, P.Appl_Name, P.Filing_Date, P.Domain, P.Status, P.Patent_Type, P.Title, P.Description
FROM Patents P
JOIN Inventor_Patents IP ON P.P_ID = IP.P_ID
WHERE IP.I_ID = $1
ORDER BY P.Filing_Date DESC`
	var patents []models.Patent
	if err := r.db.SelectContext(ctx, &patents, query, inventorID); err != nil {
		return nil, wrapStoreErr("list inventor patents", err)
	}
	return patents, nil
}

// CountByInventor counts distinct patents owned by an inventor.
func (r *PatentRepository) CountByInventor(ctx context.Context, inventorID int64) (int, error) {
	const query = `SELECT COUNT(DISTINCT IP.P_ID) FROM Inventor_Patents IP WHERE IP.I_ID = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, inventorID); err != nil {
		return 0, wrapStoreErr("count inventor patents", err)
	}
	return count, nil
}

// ListByDomain filters patents on an exact domain match, newest filing first.
func (r *PatentRepository) ListByDomain(ctx context.Context, domain string) ([]models.Patent, error) {
	const query = `SELECT P_ID, Appl_Name, Filing_Date, Domain, Status, Patent_Type, Title, Description
FROM Patents WHERE Domain = $1 ORDER BY Filing_Date DESC`
	var patents []models.Patent
	if err := r.db.SelectContext(ctx, &patents, query, domain); err != nil {
		return nil, wrapStoreErr("list patents by domain", err)
	}
	return patents, nil
}

// Domains lists the distinct non-null domains in the register.
func (r *PatentRepository) Domains(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT Domain FROM Patents WHERE Domain IS NOT NULL ORDER BY Domain`
	var domains []string
	if err := r.db.SelectContext(ctx, &domains, query); err != nil {
		return nil, wrapStoreErr("list domains", err)
	}
	return domains, nil
}

// Update replaces every editable field of the patent row.
func (r *PatentRepository) Update(ctx context.Context, patent *models.Patent) error {
	const query = `UPDATE Patents
SET Appl_Name = $1, Filing_Date = $2, Domain = $3, Status = $4, Patent_Type = $5, Title = $6, Description = $7
WHERE P_ID = $8`
	result, err := r.db.ExecContext(ctx, query,
		patent.ApplName, patent.FilingDate, patent.Domain, patent.Status, patent.PatentType, patent.Title, patent.Description, patent.ID)
	if err != nil {
		return wrapStoreErr("update patent", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStoreErr("check updated patent rows", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus sets the patent status. Enum validation happens above the
// store; no transition-legality check is applied here.
func (r *PatentRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	const query = `UPDATE Patents SET Status = $1 WHERE P_ID = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return wrapStoreErr("update patent status", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStoreErr("check updated status rows", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
