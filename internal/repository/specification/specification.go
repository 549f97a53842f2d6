package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications. Specs are
// ANDed together by the repositories that apply them.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
