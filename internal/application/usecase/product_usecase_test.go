package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djengua/ecommerce-api/internal/application/dto"
	"github.com/djengua/ecommerce-api/internal/domain"
	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

func newProductEnv(t *testing.T) (*ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeCompanyRepo) {
	t.Helper()
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	companies := newFakeCompanyRepo()
	require.NoError(t, companies.Create(&entity.Company{ID: "c-1", Name: "Acme", IsActive: true, CreatedBy: "adm-1"}))
	require.NoError(t, companies.Create(&entity.Company{ID: "c-2", Name: "Otra", IsActive: true, CreatedBy: "adm-2"}))
	return NewProductUseCase(products, categories, companies), products, categories, companies
}

func adminIn(company string) scope.Caller {
	return scope.Caller{ID: "adm-1", Role: entity.RoleAdmin, ActiveCompany: company}
}

func TestProductCreate_NormalizaSKU(t *testing.T) {
	uc, products, _, _ := newProductEnv(t)

	created, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU:   " cam-azúl 01 ",
		Name:  "Camisa azul",
		Price: decimal.NewFromInt(350),
	})
	require.NoError(t, err)
	assert.Equal(t, "CAM-AZUL01", created.SKU)

	stored, _ := products.GetByID(created.ID)
	assert.Equal(t, "c-1", stored.CompanyID)
	assert.True(t, stored.IsActive)
}

func TestProductCreate_SKUDuplicadoGlobal(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	_, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)

	// incluso desde otra compañía el sku choca
	other := scope.Caller{ID: "adm-2", Role: entity.RoleAdmin, ActiveCompany: "c-2"}
	_, err = uc.Create(other, dto.CreateProductRequest{SKU: "cam-01", Name: "Copia"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_SinCompaniaActiva(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	_, err := uc.Create(adminIn(""), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa"})
	assert.ErrorIs(t, err, domain.ErrNoActiveCompany)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	_, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa", CategoryID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductCreate_TallaInvalida(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	_, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa", Size: "GIGANTE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_DemasiadasImagenes(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	images := make([]entity.Image, entity.MaxImages+1)
	for i := range images {
		images[i] = entity.Image{Filename: "f.jpg", URL: "/img/f.jpg", ContentType: "image/jpeg"}
	}
	_, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa", Images: images,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID_AisladoPorCompania(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	created, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)

	// mismo admin con otra compañía activa no lo ve
	got, err := uc.GetByID(adminIn("c-2"), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = uc.GetByID(adminIn("c-1"), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Company)
	assert.Equal(t, "c-1", got.Company.ID)
}

func TestProductUpdate_ParcialNoTocaOtrosCampos(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	created, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa", Price: decimal.NewFromInt(350), Quantity: 10,
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(399)
	updated, err := uc.Update(adminIn("c-1"), created.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(399)))
	assert.Equal(t, "Camisa", updated.Name)
	assert.Equal(t, 10, updated.Quantity)
}

func TestProductUpdate_RatingFueraDeRango(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	created, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)

	seis := 6
	_, err = uc.Update(adminIn("c-1"), created.ID, dto.UpdateProductRequest{Rating: &seis})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_LogicoEIdempotente(t *testing.T) {
	uc, products, _, _ := newProductEnv(t)

	yes := true
	created, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{
		SKU: "CAM-01", Name: "Camisa", Published: &yes,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(adminIn("c-1"), created.ID))
	require.NoError(t, uc.Delete(adminIn("c-1"), created.ID))

	stored, _ := products.GetByID(created.ID)
	assert.False(t, stored.IsActive)
	// al desactivar también sale de la tienda
	assert.False(t, stored.Published)
}

func TestProductList_BusquedaIgnoraAcentos(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	_, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa clásica"})
	require.NoError(t, err)
	_, err = uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "PAN-01", Name: "Pantalón"})
	require.NoError(t, err)

	items, _, err := uc.List(adminIn("c-1"), dto.ProductListQuery{Search: "clasica"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CAM-01", items[0].SKU)
}

func TestProductList_Paginacion(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	for _, sku := range []string{"A-1", "A-2", "A-3"} {
		_, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: sku, Name: "Prod " + sku})
		require.NoError(t, err)
	}

	items, page, err := uc.List(adminIn("c-1"), dto.ProductListQuery{
		PageRequest: dto.PageRequest{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	require.NotNil(t, page)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 2, *page.NextPage)
	assert.Nil(t, page.PrevPage)
}

func TestProductGetByIDs_OmiteFueraDeAlcance(t *testing.T) {
	uc, _, _, _ := newProductEnv(t)

	mine, err := uc.Create(adminIn("c-1"), dto.CreateProductRequest{SKU: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)
	other := scope.Caller{ID: "adm-2", Role: entity.RoleAdmin, ActiveCompany: "c-2"}
	foreign, err := uc.Create(other, dto.CreateProductRequest{SKU: "PAN-01", Name: "Pantalón"})
	require.NoError(t, err)

	items, err := uc.GetByIDs(adminIn("c-1"), []string{mine.ID, foreign.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].ID)
}
