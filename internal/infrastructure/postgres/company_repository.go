package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyCols = `id, name, description, is_active, deleted, created_by, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// El borrado es lógico (columna deleted); no hay DELETE físico.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para compañías. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva compañía.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Description, company.IsActive,
		company.Deleted, company.CreatedBy, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una compañía por ID, incluidas las borradas.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getOne(`SELECT `+companyCols+` FROM companies WHERE id = $1`, id)
}

// GetByName obtiene una compañía por nombre y creador, sin distinguir mayúsculas.
func (r *CompanyRepo) GetByName(name, createdBy string) (*entity.Company, error) {
	return r.getOne(
		`SELECT `+companyCols+` FROM companies WHERE lower(name) = lower($1) AND created_by = $2 AND deleted = false`,
		name, createdBy,
	)
}

// Update actualiza una compañía existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, description = $3, is_active = $4, deleted = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Description, company.IsActive,
		company.Deleted, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista compañías no borradas dentro del filtro de alcance.
func (r *CompanyRepo) List(f scope.Filter) ([]*entity.Company, error) {
	var args []any
	conds, args := scopeConds(f, "created_by", "", args)
	conds = append(conds, "deleted = false")
	query := `SELECT ` + companyCols + ` FROM companies` + whereClause(conds) + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) getOne(query string, args ...any) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.IsActive, &c.Deleted,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
