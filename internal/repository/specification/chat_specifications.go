package specification

import "gorm.io/gorm"

// ChronologicalOrder orders chat records oldest-first, with id as a
// tie-breaker so concurrent appends within the same timestamp still
// read back in a stable commit order.
type ChronologicalOrder struct{}

func (s ChronologicalOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}
