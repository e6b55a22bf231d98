package services

import "gorm.io/gorm"

const DefaultPageSize = 10

// NormalizePage clamps page to a minimum of 1 and falls back to the
// default page size, so page=0 and page=1 request the same window.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// Paginate is a gorm scope applying the (page, pageSize) window with a
// stable order by primary key, so repeated pagination of an unchanged
// set never skips or repeats rows.
func Paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
