package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/djengua/ecommerce-api/internal/domain/repository"
	"github.com/djengua/ecommerce-api/internal/domain/scope"
)

// Querier es el subconjunto de pgx que usan los repos; lo satisfacen tanto
// *pgxpool.Pool como pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// whereClause arma el WHERE a partir de condiciones ya parametrizadas; vacío si
// no hay ninguna.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// scopeConds traduce un filtro de alcance a condiciones SQL sobre las columnas
// indicadas. Devuelve las condiciones y los argumentos acumulados.
func scopeConds(f scope.Filter, creatorCol, companyCol string, args []any) ([]string, []any) {
	var conds []string
	if f.CreatedBy != "" && creatorCol != "" {
		args = append(args, f.CreatedBy)
		conds = append(conds, fmt.Sprintf("%s = $%d", creatorCol, len(args)))
	}
	if f.CompanyID != "" && companyCol != "" {
		args = append(args, f.CompanyID)
		conds = append(conds, fmt.Sprintf("%s = $%d", companyCol, len(args)))
	}
	if f.OnlyActive {
		conds = append(conds, "is_active = true")
	}
	return conds, args
}

// sqlFoldFrom y sqlFoldTo replican en SQL el plegado de search.Fold para los
// caracteres acentuados del catálogo; deben mantenerse alineados rune a rune.
const (
	sqlFoldFrom = "áàâäãéèêëíìîïóòôöõúùûüñç"
	sqlFoldTo   = "aaaaaeeeeiiiiooooouuuunc"
)

// foldExpr pliega una columna igual que search.Fold pliega el término: en
// minúsculas y sin acentos, para que la búsqueda sea insensible a ambos.
func foldExpr(col string) string {
	return fmt.Sprintf("translate(lower(%s), '%s', '%s')", col, sqlFoldFrom, sqlFoldTo)
}

// catalogConds traduce criterios de catálogo (alcance, categoría, búsqueda,
// publicados) a condiciones SQL para products y bundles. El término de
// búsqueda ya llega plegado desde la capa de aplicación.
func catalogConds(q repository.CatalogQuery, args []any) ([]string, []any) {
	conds, args := scopeConds(q.Scope, "created_by", "company_id", args)
	if q.CategoryID != "" {
		args = append(args, q.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if q.OnlyPublished {
		conds = append(conds, "published = true")
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(%s LIKE $%d OR %s LIKE $%d OR %s LIKE $%d)",
			foldExpr("name"), n, foldExpr("sku"), n, foldExpr("description"), n))
	}
	return conds, args
}
