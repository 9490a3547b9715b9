package specification

import "gorm.io/gorm"

// ByEmailOrName matches the login identifier against either column.
type ByEmailOrName struct {
	Identifier string
}

func (s ByEmailOrName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ? OR name = ?", s.Identifier, s.Identifier)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByDocument struct {
	Document string
}

func (s ByDocument) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document = ?", s.Document)
}

// UserFields is the filter schema for GET /users.
var UserFields = FieldSchema{
	"id":            UUID,
	"name":          String,
	"email":         String,
	"document":      String,
	"document_type": String,
	"role":          String,
	"deleted":       Bool,
	"birthdate":     Time,
	"created_at":    Time,
	"updated_at":    Time,
}
