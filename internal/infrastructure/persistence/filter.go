package persistence

import (
	"strings"

	"github.com/myvegiz/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// commonSortFields contains fields common to every soft-deletable table
var commonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// validateSortOrder normalizes the sort order to ASC or DESC, defaulting
// to DESC
func validateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// validateSortField validates the sort field against a whitelist, falling
// back to created_at. Sort fields are interpolated into the ORDER BY clause
// so they must never pass through unchecked.
func validateSortField(sortField string, allowedFields map[string]bool) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] || commonSortFields[trimmed] {
		return trimmed
	}
	return "created_at"
}

// scopeAlive narrows a query to rows that have not been soft-deleted
func scopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("is_delete = ?", false)
}

// applyFilter applies soft-delete scoping, the active flag, ordering and
// pagination to a list query
func applyFilter(db *gorm.DB, filter shared.Filter, allowedSortFields map[string]bool) *gorm.DB {
	query := scopeAlive(db)

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	field := validateSortField(filter.OrderBy, allowedSortFields)
	query = query.Order(field + " " + validateSortOrder(filter.OrderDir))

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}

// countFiltered counts rows matching the filter without pagination
func countFiltered(db *gorm.DB, filter shared.Filter) (int64, error) {
	query := scopeAlive(db)
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
