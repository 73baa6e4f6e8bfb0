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

// BundleUseCase paquetes de productos vendidos como unidad. Todos los
// productos del paquete deben pertenecer a la misma compañía activa.
type BundleUseCase struct {
	bundleRepo   repository.BundleRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(bundleRepo repository.BundleRepository, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, companyRepo repository.CompanyRepository) *BundleUseCase {
	return &BundleUseCase{bundleRepo: bundleRepo, productRepo: productRepo, categoryRepo: categoryRepo, companyRepo: companyRepo}
}

// Create crea un paquete en la compañía activa del solicitante.
func (uc *BundleUseCase) Create(c scope.Caller, in dto.CreateBundleRequest) (*dto.BundleResponse, error) {
	f, err := scope.Catalog(c)
	if err != nil {
		return nil, err
	}
	sku := search.NormalizeSKU(in.SKU)
	name := strings.TrimSpace(in.Name)
	if sku == "" || name == "" || len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.bundleRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := validImages(in.Images); err != nil {
		return nil, err
	}
	if err := uc.validProducts(f.CompanyID, in.Products); err != nil {
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
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}
	published := false
	if in.Published != nil {
		published = *in.Published
	}
	now := time.Now()
	bundle := &entity.Bundle{
		ID:           uuid.New().String(),
		SKU:          sku,
		Name:         name,
		Description:  in.Description,
		CompanyID:    f.CompanyID,
		CategoryID:   in.CategoryID,
		CreatedBy:    c.ID,
		Products:     in.Products,
		Price:        in.Price,
		Discount:     discount,
		Quantity:     in.Quantity,
		Published:    published,
		IsActive:     true,
		FreeShipping: in.FreeShipping,
		Warranty:     in.Warranty,
		Images:       in.Images,
		Specs:        in.Specs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.bundleRepo.Create(bundle); err != nil {
		return nil, err
	}
	return uc.toBundleResponse(bundle), nil
}

// List lista paquetes de la compañía activa con paginación.
func (uc *BundleUseCase) List(c scope.Caller, q dto.ProductListQuery) ([]dto.BundleResponse, *dto.Pagination, error) {
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
	bundles, err := uc.bundleRepo.List(query)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.bundleRepo.Count(query)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.BundleResponse, 0, len(bundles))
	for _, b := range bundles {
		items = append(items, *uc.toBundleResponse(b))
	}
	page := dto.NewPagination(q.Page, q.Limit, total)
	return items, &page, nil
}

// GetByID obtiene un paquete de la compañía activa.
func (uc *BundleUseCase) GetByID(c scope.Caller, id string) (*dto.BundleResponse, error) {
	bundle, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}
	return uc.toBundleResponse(bundle), nil
}

// Update aplica cambios parciales a un paquete de la compañía activa.
func (uc *BundleUseCase) Update(c scope.Caller, id string, in dto.UpdateBundleRequest) (*dto.BundleResponse, error) {
	bundle, err := uc.inScope(c, id)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}
	if in.SKU != nil {
		sku := search.NormalizeSKU(*in.SKU)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		if sku != bundle.SKU {
			existing, err := uc.bundleRepo.GetBySKU(sku)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != bundle.ID {
				return nil, domain.ErrDuplicate
			}
			bundle.SKU = sku
		}
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		bundle.Name = name
	}
	if in.Description != nil {
		bundle.Description = *in.Description
	}
	if in.Price != nil {
		bundle.Price = *in.Price
	}
	if in.Quantity != nil {
		bundle.Quantity = *in.Quantity
	}
	if in.Discount != nil {
		bundle.Discount = *in.Discount
	}
	if in.FreeShipping != nil {
		bundle.FreeShipping = *in.FreeShipping
	}
	if in.Warranty != nil {
		bundle.Warranty = *in.Warranty
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		bundle.Rating = *in.Rating
	}
	if in.Published != nil {
		bundle.Published = *in.Published
	}
	if in.IsActive != nil {
		bundle.IsActive = *in.IsActive
	}
	if in.Images != nil {
		if err := validImages(in.Images); err != nil {
			return nil, err
		}
		bundle.Images = in.Images
	}
	if in.Specs != nil {
		bundle.Specs = in.Specs
	}
	if in.Products != nil {
		if len(*in.Products) == 0 {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.validProducts(bundle.CompanyID, *in.Products); err != nil {
			return nil, err
		}
		bundle.Products = *in.Products
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
		bundle.CategoryID = *in.CategoryID
	}
	bundle.UpdatedAt = time.Now()
	if err := uc.bundleRepo.Update(bundle); err != nil {
		return nil, err
	}
	return uc.toBundleResponse(bundle), nil
}

// Delete desactiva un paquete. Repetir la operación no es error.
func (uc *BundleUseCase) Delete(c scope.Caller, id string) error {
	f, err := scope.Catalog(c)
	if err != nil {
		return err
	}
	bundle, err := uc.bundleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bundle == nil || bundle.CompanyID != f.CompanyID {
		return domain.ErrNotFound
	}
	if !bundle.IsActive {
		return nil
	}
	bundle.IsActive = false
	bundle.Published = false
	bundle.UpdatedAt = time.Now()
	return uc.bundleRepo.Update(bundle)
}

// validProducts verifica que cada producto exista, esté activo y pertenezca a
// la compañía indicada.
func (uc *BundleUseCase) validProducts(companyID string, ids []string) error {
	products, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	found := make(map[string]bool, len(products))
	for _, p := range products {
		if p.CompanyID != companyID || !p.IsActive {
			return domain.ErrInvalidInput
		}
		found[p.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func (uc *BundleUseCase) inScope(c scope.Caller, id string) (*entity.Bundle, error) {
	f, err := scope.Catalog(c)
	if err != nil {
		return nil, err
	}
	bundle, err := uc.bundleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, nil
	}
	if bundle.CompanyID != f.CompanyID {
		return nil, nil
	}
	if f.OnlyActive && !bundle.IsActive {
		return nil, nil
	}
	return bundle, nil
}

func (uc *BundleUseCase) toBundleResponse(b *entity.Bundle) *dto.BundleResponse {
	if b == nil {
		return nil
	}
	images := b.Images
	if images == nil {
		images = []entity.Image{}
	}
	specs := b.Specs
	if specs == nil {
		specs = []entity.Spec{}
	}
	resp := &dto.BundleResponse{
		ID:           b.ID,
		SKU:          b.SKU,
		Name:         b.Name,
		Description:  b.Description,
		Price:        b.Price,
		Quantity:     b.Quantity,
		Discount:     b.Discount,
		FreeShipping: b.FreeShipping,
		Warranty:     b.Warranty,
		Rating:       b.Rating,
		Published:    b.Published,
		IsActive:     b.IsActive,
		Images:       images,
		Specs:        specs,
		Products:     []dto.ProductResponse{},
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	products, err := uc.productRepo.GetByIDs(b.Products)
	if err == nil {
		for _, p := range products {
			resp.Products = append(resp.Products, *baseProductResponse(p))
		}
	}
	if b.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(b.CategoryID)
		if err == nil && category != nil {
			resp.Category = &dto.CategoryRef{
				ID:          category.ID,
				Name:        category.Name,
				Description: category.Description,
				IsActive:    category.IsActive,
			}
		}
	}
	if b.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(b.CompanyID)
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
