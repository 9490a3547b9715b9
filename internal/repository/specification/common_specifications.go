package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// Equals is an exact comparison, used for numeric, boolean and uuid filters.
type Equals struct {
	Field string
	Value interface{}
}

func (s Equals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s = ?", s.Field), s.Value)
}

// Like is a case-insensitive substring comparison, used for string filters.
type Like struct {
	Field string
	Value string
}

func (s Like) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s ILIKE ?", s.Field), "%"+s.Value+"%")
}

// Since is a greater-or-equal comparison, used for date/datetime filters.
type Since struct {
	Field string
	Value time.Time
}

func (s Since) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s >= ?", s.Field), s.Value)
}

// OwnedBy scopes to one user's rows.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// NotDeletedFlag excludes flag-soft-deleted rows (users). Listing policy
// belongs to callers, the repositories never apply this on their own.
type NotDeletedFlag struct{}

func (s NotDeletedFlag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}

// OrderBy applies ordering.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Page applies zero-based page/page_size pagination.
type Page struct {
	Page     int
	PageSize int
}

func (s Page) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.PageSize).Offset(s.Page * s.PageSize)
}
