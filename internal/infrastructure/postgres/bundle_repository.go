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

var _ repository.BundleRepository = (*BundleRepo)(nil)

const bundleCols = `id, name, description, sku, company_id, category_id, created_by,
	products, price, discount, quantity, published, is_active, free_shipping,
	warranty, rating, images, specs, created_at, updated_at`

// BundleRepo implementación del puerto BundleRepository sobre PostgreSQL.
// Los productos incluidos van en la columna products (text[]).
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador de persistencia para paquetes. Pasar pool o tx (Querier).
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// Create persiste un nuevo paquete.
func (r *BundleRepo) Create(bundle *entity.Bundle) error {
	images, specs, err := marshalMedia(bundle.Images, bundle.Specs)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bundles (` + bundleCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = r.q.Exec(context.Background(), query,
		bundle.ID, bundle.Name, bundle.Description, bundle.SKU, bundle.CompanyID,
		bundle.CategoryID, bundle.CreatedBy, bundle.Products, bundle.Price,
		bundle.Discount, bundle.Quantity, bundle.Published, bundle.IsActive,
		bundle.FreeShipping, bundle.Warranty, bundle.Rating, images, specs,
		bundle.CreatedAt, bundle.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bundle: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete por ID.
func (r *BundleRepo) GetByID(id string) (*entity.Bundle, error) {
	return r.getOne(`SELECT `+bundleCols+` FROM bundles WHERE id = $1`, id)
}

// GetBySKU obtiene un paquete por SKU. El SKU es único global.
func (r *BundleRepo) GetBySKU(sku string) (*entity.Bundle, error) {
	return r.getOne(`SELECT `+bundleCols+` FROM bundles WHERE sku = $1`, sku)
}

// Update actualiza un paquete existente.
func (r *BundleRepo) Update(bundle *entity.Bundle) error {
	images, specs, err := marshalMedia(bundle.Images, bundle.Specs)
	if err != nil {
		return err
	}
	query := `
		UPDATE bundles SET name = $2, description = $3, sku = $4, category_id = $5,
			products = $6, price = $7, discount = $8, quantity = $9, published = $10,
			is_active = $11, free_shipping = $12, warranty = $13, rating = $14,
			images = $15, specs = $16, updated_at = $17
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		bundle.ID, bundle.Name, bundle.Description, bundle.SKU, bundle.CategoryID,
		bundle.Products, bundle.Price, bundle.Discount, bundle.Quantity,
		bundle.Published, bundle.IsActive, bundle.FreeShipping, bundle.Warranty,
		bundle.Rating, images, specs, bundle.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update bundle: %w", err)
	}
	return nil
}

// List lista paquetes según los criterios de catálogo, con paginación.
func (r *BundleRepo) List(q repository.CatalogQuery) ([]*entity.Bundle, error) {
	var args []any
	conds, args := catalogConds(q, args)
	query := `SELECT ` + bundleCols + ` FROM bundles` + whereClause(conds) + ` ORDER BY created_at DESC`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bundles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bundle
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Count cuenta los paquetes que satisfacen los criterios, sin paginación.
func (r *BundleRepo) Count(q repository.CatalogQuery) (int, error) {
	var args []any
	conds, args := catalogConds(q, args)
	query := `SELECT count(*) FROM bundles` + whereClause(conds)
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bundles: %w", err)
	}
	return n, nil
}

func (r *BundleRepo) getOne(query string, args ...any) (*entity.Bundle, error) {
	b, err := scanBundle(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bundle: %w", err)
	}
	return b, nil
}

func scanBundle(row pgx.Row) (*entity.Bundle, error) {
	var b entity.Bundle
	var images, specs []byte
	err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.SKU, &b.CompanyID, &b.CategoryID, &b.CreatedBy,
		&b.Products, &b.Price, &b.Discount, &b.Quantity, &b.Published, &b.IsActive,
		&b.FreeShipping, &b.Warranty, &b.Rating, &images, &specs, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalMedia(images, specs, &b.Images, &b.Specs); err != nil {
		return nil, err
	}
	return &b, nil
}
