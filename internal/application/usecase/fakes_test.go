package usecase

import (
	"sort"
	"strings"

	"github.com/djengua/ecommerce-api/internal/domain/entity"
	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/internal/search"
)

// Repos en memoria para las pruebas del paquete. Aplican los filtros igual
// que la capa de persistencia para que las pruebas de alcance sean reales.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]*entity.User{}} }

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) List(q repository.UserQuery) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range f.users {
		if q.Scope.CreatedBy != "" && u.CreatedBy != q.Scope.CreatedBy {
			continue
		}
		if q.Scope.OnlyActive && !u.IsActive {
			continue
		}
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		if q.Company != "" && !u.MemberOf(q.Company) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return f.companies[id], nil }

func (f *fakeCompanyRepo) GetByName(name, createdBy string) (*entity.Company, error) {
	for _, c := range f.companies {
		if strings.EqualFold(c.Name, name) && c.CreatedBy == createdBy {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) List(fl scope.Filter) ([]*entity.Company, error) {
	out := []*entity.Company{}
	for _, c := range f.companies {
		if fl.CreatedBy != "" && c.CreatedBy != fl.CreatedBy {
			continue
		}
		if fl.OnlyActive && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) GetByName(name, userID string) (*entity.Category, error) {
	for _, c := range f.categories {
		if strings.EqualFold(c.Name, name) && c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByIDs(ids []string) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) List(fl scope.Filter) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range f.categories {
		if fl.CreatedBy != "" && c.UserID != fl.CreatedBy {
			continue
		}
		if fl.OnlyActive && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(ids []string) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) matches(p *entity.Product, q repository.CatalogQuery) bool {
	if q.Scope.CompanyID != "" && p.CompanyID != q.Scope.CompanyID {
		return false
	}
	if q.Scope.OnlyActive && !p.IsActive {
		return false
	}
	if q.OnlyPublished && !p.Published {
		return false
	}
	if q.CategoryID != "" && p.CategoryID != q.CategoryID {
		return false
	}
	if q.Search != "" {
		hay := search.Fold(p.Name) + " " + search.Fold(p.SKU) + " " + search.Fold(p.Description)
		if !strings.Contains(hay, q.Search) {
			return false
		}
	}
	return true
}

func (f *fakeProductRepo) List(q repository.CatalogQuery) ([]*entity.Product, error) {
	all := []*entity.Product{}
	for _, p := range f.products {
		if f.matches(p, q) {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if q.Offset >= len(all) {
		return []*entity.Product{}, nil
	}
	all = all[q.Offset:]
	if q.Limit > 0 && q.Limit < len(all) {
		all = all[:q.Limit]
	}
	return all, nil
}

func (f *fakeProductRepo) Count(q repository.CatalogQuery) (int, error) {
	n := 0
	for _, p := range f.products {
		if f.matches(p, q) {
			n++
		}
	}
	return n, nil
}

type fakeBundleRepo struct {
	bundles map[string]*entity.Bundle
}

func newFakeBundleRepo() *fakeBundleRepo {
	return &fakeBundleRepo{bundles: map[string]*entity.Bundle{}}
}

func (f *fakeBundleRepo) Create(b *entity.Bundle) error {
	f.bundles[b.ID] = b
	return nil
}

func (f *fakeBundleRepo) GetByID(id string) (*entity.Bundle, error) { return f.bundles[id], nil }

func (f *fakeBundleRepo) GetBySKU(sku string) (*entity.Bundle, error) {
	for _, b := range f.bundles {
		if b.SKU == sku {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBundleRepo) Update(b *entity.Bundle) error {
	f.bundles[b.ID] = b
	return nil
}

func (f *fakeBundleRepo) matches(b *entity.Bundle, q repository.CatalogQuery) bool {
	if q.Scope.CompanyID != "" && b.CompanyID != q.Scope.CompanyID {
		return false
	}
	if q.Scope.OnlyActive && !b.IsActive {
		return false
	}
	if q.OnlyPublished && !b.Published {
		return false
	}
	if q.CategoryID != "" && b.CategoryID != q.CategoryID {
		return false
	}
	if q.Search != "" {
		hay := search.Fold(b.Name) + " " + search.Fold(b.SKU) + " " + search.Fold(b.Description)
		if !strings.Contains(hay, q.Search) {
			return false
		}
	}
	return true
}

func (f *fakeBundleRepo) List(q repository.CatalogQuery) ([]*entity.Bundle, error) {
	all := []*entity.Bundle{}
	for _, b := range f.bundles {
		if f.matches(b, q) {
			all = append(all, b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if q.Offset >= len(all) {
		return []*entity.Bundle{}, nil
	}
	all = all[q.Offset:]
	if q.Limit > 0 && q.Limit < len(all) {
		all = all[:q.Limit]
	}
	return all, nil
}

func (f *fakeBundleRepo) Count(q repository.CatalogQuery) (int, error) {
	n := 0
	for _, b := range f.bundles {
		if f.matches(b, q) {
			n++
		}
	}
	return n, nil
}
