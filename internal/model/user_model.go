package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(255);not null;index"`
	Email               string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	PhotoObject         *string   `gorm:"type:varchar(250)"` // object key in the photo bucket
	Birthdate           time.Time `gorm:"type:date;not null;index"`
	PrivacyTerms        bool      `gorm:"not null"`
	DataProtectionTerms bool      `gorm:"not null"`
	Document            string    `gorm:"type:varchar(18);uniqueIndex;not null"`
	DocumentType        string    `gorm:"type:varchar(10);not null"`
	MedicalDocument     *string   `gorm:"type:varchar(20);index"`
	MedicalDocumentType *string   `gorm:"type:varchar(18);default:'crm'"`
	Role                string    `gorm:"type:varchar(30);not null;default:'customer'"`
	Deleted             bool      `gorm:"not null;default:false;index"` // logical removal, rows are never dropped
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
