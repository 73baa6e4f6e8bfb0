package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userCols = `id, name, last_name, email, password_hash, role, is_active, avatar, phone, created_by, companies, active_company, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// Las membresías van en la columna companies (text[]).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.LastName, user.Email, user.PasswordHash,
		user.Role, user.IsActive, user.Avatar, user.Phone, user.CreatedBy,
		user.Companies, user.ActiveCompany, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userCols+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas). El
// email es único global; el índice de la tabla respalda el pre-chequeo.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userCols+` FROM users WHERE lower(email) = lower($1)`, email)
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, last_name = $3, email = $4, password_hash = $5,
			role = $6, is_active = $7, avatar = $8, phone = $9, companies = $10,
			active_company = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.LastName, user.Email, user.PasswordHash,
		user.Role, user.IsActive, user.Avatar, user.Phone, user.Companies,
		user.ActiveCompany, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios aplicando el filtro de alcance y los filtros opcionales.
func (r *UserRepo) List(q repository.UserQuery) ([]*entity.User, error) {
	var args []any
	conds, args := scopeConds(q.Scope, "created_by", "", args)
	if q.Role != "" {
		args = append(args, q.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if q.Company != "" {
		args = append(args, q.Company)
		conds = append(conds, fmt.Sprintf("$%d = ANY(companies)", len(args)))
	}
	query := `SELECT ` + userCols + ` FROM users` + whereClause(conds) + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete elimina definitivamente un usuario.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) getOne(query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.Avatar, &u.Phone, &u.CreatedBy, &u.Companies,
		&u.ActiveCompany, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
