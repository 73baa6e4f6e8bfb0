package usecase

import (
	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/internal/search"
)

// StorefrontUseCase lecturas públicas de la tienda: solo productos publicados
// y activos de compañías activas. Nunca expone costos ni datos internos.
type StorefrontUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	companyRepo  repository.CompanyRepository
}

// NewStorefrontUseCase construye el caso de uso.
func NewStorefrontUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, companyRepo repository.CompanyRepository) *StorefrontUseCase {
	return &StorefrontUseCase{productRepo: productRepo, categoryRepo: categoryRepo, companyRepo: companyRepo}
}

// Catalog lista el catálogo público de una compañía con búsqueda y paginación.
// El término de búsqueda se pliega para que los acentos no afecten el resultado.
func (uc *StorefrontUseCase) Catalog(companyID string, q dto.StorefrontQuery) (*dto.StorefrontCatalog, *dto.Pagination, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil || company.Deleted || !company.IsActive {
		return nil, nil, domain.ErrNotFound
	}
	q.Normalize()
	query := repository.CatalogQuery{
		Scope:         scope.Filter{CompanyID: companyID, OnlyActive: true},
		CategoryID:    q.CategoryID,
		Search:        search.Fold(q.SearchTerm),
		OnlyPublished: true,
		Limit:         q.Limit,
		Offset:        q.Offset(),
	}
	products, err := uc.productRepo.List(query)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.productRepo.Count(query)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.StorefrontItem, 0, len(products))
	for _, p := range products {
		items = append(items, *uc.toStorefrontItem(p))
	}
	catalog := &dto.StorefrontCatalog{
		Company: dto.PublicCompanyResponse{
			ID:          company.ID,
			Name:        company.Name,
			Description: company.Description,
		},
		Products: items,
	}
	page := dto.NewPagination(q.Page, q.Limit, total)
	return catalog, &page, nil
}

// Detail obtiene el detalle público de un producto publicado.
func (uc *StorefrontUseCase) Detail(productID string) (*dto.StorefrontItem, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive || !product.Published {
		return nil, nil
	}
	company, err := uc.companyRepo.GetByID(product.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Deleted || !company.IsActive {
		return nil, nil
	}
	return uc.toStorefrontItem(product), nil
}

func (uc *StorefrontUseCase) toStorefrontItem(p *entity.Product) *dto.StorefrontItem {
	images := p.Images
	if images == nil {
		images = []entity.Image{}
	}
	specs := p.Specs
	if specs == nil {
		specs = []entity.Spec{}
	}
	item := &dto.StorefrontItem{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Unlimited:    p.Unlimited,
		Color:        p.Color,
		Size:         p.Size,
		Discount:     p.Discount,
		FreeShipping: p.FreeShipping,
		Warranty:     p.Warranty,
		Rating:       p.Rating,
		Images:       images,
		Specs:        specs,
	}
	if p.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(p.CategoryID)
		if err == nil && category != nil {
			item.Category = &dto.CategoryRef{ID: category.ID, Name: category.Name, IsActive: category.IsActive}
		}
	}
	return item
}
