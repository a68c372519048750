package scope

import "gorm.io/gorm"

// NotDeleted filters out soft-deleted rows. Applied explicitly by every
// repository query instead of relying on an always-on gorm DeletedAt filter,
// so each query path states whether tombstoned rows are visible.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}
