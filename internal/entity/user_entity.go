package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

type User struct {
	Id                  uuid.UUID
	Name                string
	Email               string
	PasswordHash        string
	PhotoObject         *string
	Birthdate           time.Time
	PrivacyTerms        bool
	DataProtectionTerms bool
	Document            string
	DocumentType        string
	MedicalDocument     *string
	MedicalDocumentType *string
	Role                UserRole
	Deleted             bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
