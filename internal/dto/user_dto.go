package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Birthdate           string  `json:"birthdate"` // YYYY-MM-DD
	PrivacyTerms        bool    `json:"privacy_terms"`
	DataProtectionTerms bool    `json:"data_protection_terms"`
	Document            string  `json:"document"`
	DocumentType        string  `json:"document_type"`
	MedicalDocument     *string `json:"medical_document,omitempty"`
	MedicalDocumentType *string `json:"medical_document_type,omitempty"`
}

// UpdateUserRequest is the explicit optional-variant DTO: nil means "leave
// untouched". Password changes ride along and require OldPassword.
type UpdateUserRequest struct {
	Id                  *uuid.UUID `json:"id,omitempty"` // defaults to the token user
	Name                *string    `json:"name,omitempty"`
	Email               *string    `json:"email,omitempty"`
	Birthdate           *string    `json:"birthdate,omitempty"`
	MedicalDocument     *string    `json:"medical_document,omitempty"`
	MedicalDocumentType *string    `json:"medical_document_type,omitempty"`
	OldPassword         *string    `json:"old_password,omitempty"`
	Password            *string    `json:"password,omitempty"`
}

type UserResponse struct {
	Id                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Birthdate           string    `json:"birthdate"`
	PrivacyTerms        bool      `json:"privacy_terms"`
	DataProtectionTerms bool      `json:"data_protection_terms"`
	Document            string    `json:"document"`
	DocumentType        string    `json:"document_type"`
	MedicalDocument     *string   `json:"medical_document,omitempty"`
	MedicalDocumentType *string   `json:"medical_document_type,omitempty"`
	Role                string    `json:"role"`
	Deleted             bool      `json:"deleted"`
	PhotoObject         *string   `json:"photo_object,omitempty"`
	PhotoURL            *string   `json:"photo_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PhotoUploadResponse struct {
	ObjectKey string  `json:"object_name"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}
