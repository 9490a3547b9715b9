package mapper

import (
	"medichat-be/internal/entity"
	"medichat-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                  u.Id,
		Name:                u.Name,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		PhotoObject:         u.PhotoObject,
		Birthdate:           u.Birthdate,
		PrivacyTerms:        u.PrivacyTerms,
		DataProtectionTerms: u.DataProtectionTerms,
		Document:            u.Document,
		DocumentType:        u.DocumentType,
		MedicalDocument:     u.MedicalDocument,
		MedicalDocumentType: u.MedicalDocumentType,
		Role:                entity.UserRole(u.Role),
		Deleted:             u.Deleted,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                  u.Id,
		Name:                u.Name,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		PhotoObject:         u.PhotoObject,
		Birthdate:           u.Birthdate,
		PrivacyTerms:        u.PrivacyTerms,
		DataProtectionTerms: u.DataProtectionTerms,
		Document:            u.Document,
		DocumentType:        u.DocumentType,
		MedicalDocument:     u.MedicalDocument,
		MedicalDocumentType: u.MedicalDocumentType,
		Role:                string(u.Role),
		Deleted:             u.Deleted,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
