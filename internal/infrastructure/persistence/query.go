package persistence

import (
	"strings"

	"github.com/aims/backend/internal/domain/shared"
	"github.com/aims/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// applySearch ORs a case-insensitive substring match across columns.
// Columns are SQL expressions taken from fixed lists, never from input.
func applySearch(query *gorm.DB, search string, columns []string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := containsPattern(search)
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// applyOrder sorts by a whitelisted column, breaking ties on id.
func applyOrder(query *gorm.DB, filter shared.Filter, columns map[string]string, idColumn string) *gorm.DB {
	col := ValidateSortColumn(filter.OrderBy, columns, shared.DefaultSortField)
	dir := ValidateSortOrder(filter.OrderDir)
	return query.Order(col + " " + dir).Order(idColumn + " ASC")
}

// applyPage applies offset and limit for the filter's page.
func applyPage(query *gorm.DB, filter shared.Filter) *gorm.DB {
	return query.Offset(filter.Offset()).Limit(filter.PageSize)
}

// excludeIDCond skips the record being updated in uniqueness checks.
func excludeIDCond(query *gorm.DB, column string, id uuid.UUID) *gorm.DB {
	return query.Where(column+" <> ?", id)
}

// exists reports whether the query matches at least one row.
func exists(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// listRefs loads id/name pairs ordered by name.
func listRefs(query *gorm.DB) ([]shared.NamedRef, error) {
	var rows []models.NamedRefRow
	if err := query.Select("id", "name").Order("name ASC").Order("id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	refs := make([]shared.NamedRef, len(rows))
	for i, row := range rows {
		refs[i] = row.ToDomain()
	}
	return refs, nil
}
