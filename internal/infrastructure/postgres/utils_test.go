package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
	"github.com/djengua/ecommerce-api/internal/search"
)

// La tabla de translate debe producir exactamente lo mismo que search.Fold
// para cada carácter acentuado; si divergen, un nombre como "Café" deja de
// encontrarse con el término plegado "cafe".
func TestFoldExpr_TablaAlineadaConFold(t *testing.T) {
	from := []rune(sqlFoldFrom)
	to := []rune(sqlFoldTo)
	require.Equal(t, len(from), len(to))
	for i, r := range from {
		assert.Equal(t, string(to[i]), search.Fold(string(r)), "carácter %q", r)
	}
}

func TestCatalogConds_BusquedaPliegaLaColumna(t *testing.T) {
	q := repository.CatalogQuery{
		Scope:  scope.Filter{CompanyID: "comp-1"},
		Search: search.Fold("Café"),
	}
	conds, args := catalogConds(q, nil)

	require.Len(t, conds, 2)
	assert.Contains(t, conds[1], "translate(lower(name)")
	assert.Contains(t, conds[1], "translate(lower(sku)")
	assert.Contains(t, conds[1], "translate(lower(description)")
	assert.NotContains(t, conds[1], "ILIKE")
	require.Len(t, args, 2)
	assert.Equal(t, "%cafe%", args[1])
}

func TestCatalogConds_FiltrosDeCatalogo(t *testing.T) {
	q := repository.CatalogQuery{
		Scope:         scope.Filter{CompanyID: "comp-1", OnlyActive: true},
		CategoryID:    "cat-1",
		OnlyPublished: true,
	}
	conds, args := catalogConds(q, nil)

	require.Len(t, conds, 4)
	assert.Equal(t, "company_id = $1", conds[0])
	assert.Equal(t, "is_active = true", conds[1])
	assert.Equal(t, "category_id = $2", conds[2])
	assert.Equal(t, "published = true", conds[3])
	assert.Equal(t, []any{"comp-1", "cat-1"}, args)
}

func TestWhereClause_VacioYCompuesto(t *testing.T) {
	assert.Equal(t, "", whereClause(nil))
	got := whereClause([]string{"a = $1", "b = $2"})
	assert.True(t, strings.HasPrefix(got, " WHERE "))
	assert.Contains(t, got, "a = $1 AND b = $2")
}
