package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
)

func newStorefrontEnv(t *testing.T) (*StorefrontUseCase, *ProductUseCase) {
	t.Helper()
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	companies := newFakeCompanyRepo()
	require.NoError(t, companies.Create(&entity.Company{
		ID: "c-1", Name: "Acme", Description: "tienda de ropa", IsActive: true, CreatedBy: "adm-1",
	}))
	require.NoError(t, companies.Create(&entity.Company{
		ID: "c-off", Name: "Cerrada", IsActive: false, CreatedBy: "adm-2",
	}))
	suc := NewStorefrontUseCase(products, categories, companies)
	puc := NewProductUseCase(products, categories, companies)
	return suc, puc
}

func TestStorefrontCatalog_SoloPublicados(t *testing.T) {
	suc, puc := newStorefrontEnv(t)

	yes := true
	_, err := puc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa", Price: decimal.NewFromInt(350), Published: &yes,
	})
	require.NoError(t, err)
	_, err = puc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "BOR-01", Name: "Borrador",
	})
	require.NoError(t, err)

	catalog, page, err := suc.Catalog("c-1", dto.StorefrontQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Acme", catalog.Company.Name)
	require.Len(t, catalog.Products, 1)
	assert.Equal(t, "CAM-01", catalog.Products[0].SKU)
	assert.Equal(t, 1, page.TotalCount)
}

func TestStorefrontCatalog_CompaniaInactivaONoExiste(t *testing.T) {
	suc, _ := newStorefrontEnv(t)

	_, _, err := suc.Catalog("c-off", dto.StorefrontQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = suc.Catalog("no-existe", dto.StorefrontQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorefrontCatalog_BusquedaIgnoraAcentos(t *testing.T) {
	suc, puc := newStorefrontEnv(t)

	yes := true
	_, err := puc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa clásica", Published: &yes,
	})
	require.NoError(t, err)
	_, err = puc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "PAN-01", Name: "Pantalón", Published: &yes,
	})
	require.NoError(t, err)

	catalog, _, err := suc.Catalog("c-1", dto.StorefrontQuery{SearchTerm: "CLÁSICA"})
	require.NoError(t, err)
	require.Len(t, catalog.Products, 1)
	assert.Equal(t, "CAM-01", catalog.Products[0].SKU)
}

func TestStorefrontItem_NoExponeCostos(t *testing.T) {
	suc, puc := newStorefrontEnv(t)

	yes := true
	created, err := puc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa",
		Price: decimal.NewFromInt(350), Cost: decimal.NewFromInt(120),
		Published: &yes,
	})
	require.NoError(t, err)

	item, err := suc.Detail(created.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(350)))
}

func TestStorefrontDetail_NoPublicadoEsNoEncontrado(t *testing.T) {
	suc, puc := newStorefrontEnv(t)

	created, err := puc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)

	item, err := suc.Detail(created.ID)
	require.NoError(t, err)
	assert.Nil(t, item)
}
