package specification

import "gorm.io/gorm"

// Specification is one composable query predicate or modifier.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
