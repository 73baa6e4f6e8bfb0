package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/internal/search"
)

// ProductUseCase catálogo de productos de la compañía activa del solicitante.
// El SKU se normaliza y es único global; el borrado es lógico e idempotente.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo, companyRepo: companyRepo}
}

// Create crea un producto en la compañía activa del solicitante.
func (uc *ProductUseCase) Create(c scope.Caller, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	f, err := scope.Catalog(c)
	if err != nil {
		return nil, err
	}
	sku := search.NormalizeSKU(in.SKU)
	name := strings.TrimSpace(in.Name)
	if sku == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Size != "" && !entity.ValidSize(in.Size) {
		return nil, domain.ErrInvalidInput
	}
	if err := validImages(in.Images); err != nil {
		return nil, err
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || !category.IsActive {
			return nil, domain.ErrCategoryNotFound
		}
	}
	tax := decimal.Zero
	if in.Tax != nil {
		tax = *in.Tax
	}
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}
	includeTax := true
	if in.IncludeTax != nil {
		includeTax = *in.IncludeTax
	}
	published := false
	if in.Published != nil {
		published = *in.Published
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         name,
		Description:  in.Description,
		Price:        in.Price,
		Cost:         in.Cost,
		Quantity:     in.Quantity,
		Unlimited:    in.Unlimited,
		Color:        in.Color,
		Size:         in.Size,
		Tax:          tax,
		IncludeTax:   includeTax,
		Discount:     discount,
		FreeShipping: in.FreeShipping,
		Warranty:     in.Warranty,
		Published:    published,
		IsActive:     true,
		Images:       in.Images,
		Specs:        in.Specs,
		CategoryID:   in.CategoryID,
		CompanyID:    f.CompanyID,
		CreatedBy:    c.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(product), nil
}

// List lista productos de la compañía activa con filtros y paginación.
func (uc *ProductUseCase) List(c scope.Caller, q dto.ProductListQuery) ([]dto.ProductResponse, *dto.Pagination, error) {
	f, err := scope.Catalog(c)
	if err != nil {
		return nil, nil, err
	}
	q.Normalize()
	query := repository.CatalogQuery{
		Scope:      f,
		CategoryID: q.CategoryID,
		Search:     search.Fold(q.Search),
		Limit:      q.Limit,
		Offset:     q.Offset(),
	}
	products, err := uc.productRepo.List(query)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.productRepo.Count(query)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *uc.toProductResponse(p))
	}
	page := dto.NewPagination(q.Page, q.Limit, total)
	return items, &page, nil
}

// GetByID obtiene un producto de la compañía activa.
func (uc *ProductUseCase) GetByID(c scope.Caller, id string) (*dto.ProductResponse, error) {
	product, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toProductResponse(product), nil
}

// GetByIDs obtiene un lote de productos; los que quedan fuera del alcance se
// omiten sin error.
func (uc *ProductUseCase) GetByIDs(c scope.Caller, ids []string) ([]dto.ProductResponse, error) {
	f, err := scope.Catalog(c)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if p.CompanyID != f.CompanyID {
			continue
		}
		if f.OnlyActive && !p.IsActive {
			continue
		}
		items = append(items, *uc.toProductResponse(p))
	}
	return items, nil
}

// Update aplica cambios parciales a un producto de la compañía activa.
func (uc *ProductUseCase) Update(c scope.Caller, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil {
		sku := search.NormalizeSKU(*in.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		if sku != product.SKU {
			existing, err := uc.productRepo.GetBySKU(sku)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
			product.SKU = sku
		}
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Unlimited != nil {
		product.Unlimited = *in.Unlimited
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Size != nil {
		if *in.Size != "" && !entity.ValidSize(*in.Size) {
			return nil, domain.ErrInvalidInput
		}
		product.Size = *in.Size
	}
	if in.Tax != nil {
		product.Tax = *in.Tax
	}
	if in.IncludeTax != nil {
		product.IncludeTax = *in.IncludeTax
	}
	if in.Discount != nil {
		product.Discount = *in.Discount
	}
	if in.FreeShipping != nil {
		product.FreeShipping = *in.FreeShipping
	}
	if in.Warranty != nil {
		product.Warranty = *in.Warranty
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		product.Rating = *in.Rating
	}
	if in.Published != nil {
		product.Published = *in.Published
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.Images != nil {
		if err := validImages(in.Images); err != nil {
			return nil, err
		}
		product.Images = in.Images
	}
	if in.Specs != nil {
		product.Specs = in.Specs
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil || !category.IsActive {
				return nil, domain.ErrCategoryNotFound
			}
		}
		product.CategoryID = *in.CategoryID
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toProductResponse(product), nil
}

// Delete desactiva un producto. Repetir la operación no es error.
func (uc *ProductUseCase) Delete(c scope.Caller, id string) error {
	f, err := scope.Catalog(c)
	if err != nil {
		return err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != f.CompanyID {
		return domain.ErrNotFound
	}
	if !product.IsActive {
		return nil
	}
	product.IsActive = false
	product.Published = false
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

func (uc *ProductUseCase) inScope(c scope.Caller, id string) (*entity.Product, error) {
	f, err := scope.Catalog(c)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.CompanyID != f.CompanyID {
		return nil, nil
	}
	if f.OnlyActive && !product.IsActive {
		return nil, nil
	}
	return product, nil
}

func validImages(images []entity.Image) error {
	if len(images) > entity.MaxImages {
		return domain.ErrInvalidInput
	}
	for _, img := range images {
		if !img.Valid() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func (uc *ProductUseCase) toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := baseProductResponse(p)
	if p.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(p.CategoryID)
		if err == nil && category != nil {
			resp.Category = &dto.CategoryRef{
				ID:          category.ID,
				Name:        category.Name,
				Description: category.Description,
				IsActive:    category.IsActive,
			}
		}
	}
	if p.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(p.CompanyID)
		if err == nil && company != nil {
			resp.Company = &dto.CompanyRef{
				ID:          company.ID,
				Name:        company.Name,
				Description: company.Description,
				IsActive:    company.IsActive,
			}
		}
	}
	return resp
}

func baseProductResponse(p *entity.Product) *dto.ProductResponse {
	images := p.Images
	if images == nil {
		images = []entity.Image{}
	}
	specs := p.Specs
	if specs == nil {
		specs = []entity.Spec{}
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Cost:         p.Cost,
		Quantity:     p.Quantity,
		Unlimited:    p.Unlimited,
		Color:        p.Color,
		Size:         p.Size,
		Tax:          p.Tax,
		IncludeTax:   p.IncludeTax,
		Discount:     p.Discount,
		FreeShipping: p.FreeShipping,
		Warranty:     p.Warranty,
		Rating:       p.Rating,
		Published:    p.Published,
		IsActive:     p.IsActive,
		Images:       images,
		Specs:        specs,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
