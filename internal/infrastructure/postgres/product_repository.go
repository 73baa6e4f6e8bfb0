package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productCols = `id, name, description, sku, company_id, category_id, created_by,
	price, cost, tax, discount, quantity, unlimited, include_tax, published, is_active,
	free_shipping, warranty, color, size, rating, images, specs, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Imágenes y especificaciones van como JSONB.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	images, specs, err := marshalMedia(product.Images, product.Specs)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (` + productCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU, product.CompanyID,
		product.CategoryID, product.CreatedBy, product.Price, product.Cost, product.Tax,
		product.Discount, product.Quantity, product.Unlimited, product.IncludeTax,
		product.Published, product.IsActive, product.FreeShipping, product.Warranty,
		product.Color, product.Size, product.Rating, images, specs,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productCols+` FROM products WHERE id = $1`, id)
}

// GetBySKU obtiene un producto por SKU. El SKU es único global.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productCols+` FROM products WHERE sku = $1`, sku)
}

// GetByIDs obtiene un lote de productos por sus IDs.
func (r *ProductRepo) GetByIDs(ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productCols+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return collectProducts(rows)
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	images, specs, err := marshalMedia(product.Images, product.Specs)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET name = $2, description = $3, sku = $4, category_id = $5,
			price = $6, cost = $7, tax = $8, discount = $9, quantity = $10, unlimited = $11,
			include_tax = $12, published = $13, is_active = $14, free_shipping = $15,
			warranty = $16, color = $17, size = $18, rating = $19, images = $20, specs = $21,
			updated_at = $22
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.SKU, product.CategoryID,
		product.Price, product.Cost, product.Tax, product.Discount, product.Quantity,
		product.Unlimited, product.IncludeTax, product.Published, product.IsActive,
		product.FreeShipping, product.Warranty, product.Color, product.Size,
		product.Rating, images, specs, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos según los criterios de catálogo, con paginación.
func (r *ProductRepo) List(q repository.CatalogQuery) ([]*entity.Product, error) {
	var args []any
	conds, args := catalogConds(q, args)
	query := `SELECT ` + productCols + ` FROM products` + whereClause(conds) + ` ORDER BY created_at DESC`
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
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// Count cuenta los productos que satisfacen los criterios, sin paginación.
func (r *ProductRepo) Count(q repository.CatalogQuery) (int, error) {
	var args []any
	conds, args := catalogConds(q, args)
	query := `SELECT count(*) FROM products` + whereClause(conds)
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var images, specs []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.CompanyID, &p.CategoryID, &p.CreatedBy,
		&p.Price, &p.Cost, &p.Tax, &p.Discount, &p.Quantity, &p.Unlimited, &p.IncludeTax,
		&p.Published, &p.IsActive, &p.FreeShipping, &p.Warranty, &p.Color, &p.Size,
		&p.Rating, &images, &specs, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalMedia(images, specs, &p.Images, &p.Specs); err != nil {
		return nil, err
	}
	return &p, nil
}

// marshalMedia serializa imágenes y especificaciones a JSONB. nil serializa
// como lista vacía.
func marshalMedia(images []entity.Image, specs []entity.Spec) ([]byte, []byte, error) {
	if images == nil {
		images = []entity.Image{}
	}
	if specs == nil {
		specs = []entity.Spec{}
	}
	imgData, err := json.Marshal(images)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal images: %w", err)
	}
	specData, err := json.Marshal(specs)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal specs: %w", err)
	}
	return imgData, specData, nil
}

func unmarshalMedia(imgData, specData []byte, images *[]entity.Image, specs *[]entity.Spec) error {
	if len(imgData) > 0 {
		if err := json.Unmarshal(imgData, images); err != nil {
			return fmt.Errorf("unmarshal images: %w", err)
		}
	}
	if len(specData) > 0 {
		if err := json.Unmarshal(specData, specs); err != nil {
			return fmt.Errorf("unmarshal specs: %w", err)
		}
	}
	return nil
}
