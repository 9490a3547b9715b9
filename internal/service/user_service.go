package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"medichat-be/internal/apperror"
	"medichat-be/internal/config"
	"medichat-be/internal/dto"
	"medichat-be/internal/entity"
	"medichat-be/internal/pkg/logger"
	"medichat-be/internal/repository/specification"
	"medichat-be/internal/repository/unitofwork"
	"medichat-be/pkg/storage"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

const birthdateLayout = "2006-01-02"

type IUserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	List(ctx context.Context, filters map[string]string) ([]*dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest, callerId uuid.UUID) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadPhoto(ctx context.Context, userId uuid.UUID, filename, contentType string, data []byte) (*dto.PhotoUploadResponse, error)
}

type userService struct {
	uowFactory    unitofwork.RepositoryFactory
	store         storage.ObjectStore
	storageConfig config.StorageConfig
	presignCache  *gocache.Cache
	log           logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	store storage.ObjectStore,
	storageConfig config.StorageConfig,
	log logger.ILogger,
) IUserService {
	ttl := time.Duration(storageConfig.PresignTTLSec) * time.Second
	return &userService{
		uowFactory:    uowFactory,
		store:         store,
		storageConfig: storageConfig,
		presignCache:  gocache.New(ttl/2, ttl),
		log:           log,
	}
}

// Register creates an account. Both consent flags are mandatory, email and
// document must be unique among all accounts including soft-deleted ones.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if !req.PrivacyTerms || !req.DataProtectionTerms {
		return nil, apperror.Unauthorized("privacy and data protection terms must be accepted")
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		return nil, apperror.InvalidFilterValue("birthdate", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	if existing, err := users.FindOne(ctx, specification.ByEmail{Email: req.Email}); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.AlreadyExists("email already registered")
	}
	if existing, err := users.FindOne(ctx, specification.ByDocument{Document: req.Document}); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.AlreadyExists("document already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &entity.User{
		Id:                  uuid.New(),
		Name:                req.Name,
		Email:               req.Email,
		PasswordHash:        string(hash),
		Birthdate:           birthdate,
		PrivacyTerms:        req.PrivacyTerms,
		DataProtectionTerms: req.DataProtectionTerms,
		Document:            req.Document,
		DocumentType:        req.DocumentType,
		MedicalDocument:     req.MedicalDocument,
		MedicalDocumentType: req.MedicalDocumentType,
		Role:                entity.UserRoleCustomer,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.toUserResponse(ctx, user), nil
}

// List filters users through the registered field schema; soft-deleted
// accounts stay visible unless the caller filters them out.
func (s *userService) List(ctx context.Context, filters map[string]string) ([]*dto.UserResponse, error) {
	specs, err := specification.ParseFilters(specification.UserFields, filters)
	if err != nil {
		return nil, err
	}
	page, err := specification.ParsePage(filters)
	if err != nil {
		return nil, err
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true}, page)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, s.toUserResponse(ctx, user))
	}
	return responses, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return s.toUserResponse(ctx, user), nil
}

// Update applies the non-nil fields. A password change is only honored when
// the current password is supplied and matches the stored hash.
func (s *userService) Update(ctx context.Context, req *dto.UpdateUserRequest, callerId uuid.UUID) (*dto.UserResponse, error) {
	targetId := callerId
	if req.Id != nil {
		targetId = *req.Id
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	user, err := users.FindOne(ctx, specification.ByID{ID: targetId}, specification.NotDeletedFlag{})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		if existing, err := users.FindOne(ctx, specification.ByEmail{Email: *req.Email}); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, apperror.AlreadyExists("email already registered")
		}
		fields["email"] = *req.Email
	}
	if req.Birthdate != nil {
		birthdate, err := time.Parse(birthdateLayout, *req.Birthdate)
		if err != nil {
			return nil, apperror.InvalidFilterValue("birthdate", err)
		}
		fields["birthdate"] = birthdate
	}
	if req.MedicalDocument != nil {
		fields["medical_document"] = *req.MedicalDocument
	}
	if req.MedicalDocumentType != nil {
		fields["medical_document_type"] = *req.MedicalDocumentType
	}

	if req.Password != nil {
		if req.OldPassword == nil {
			return nil, apperror.Unauthorized("current password required")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*req.OldPassword)); err != nil {
			return nil, apperror.Unauthorized("current password does not match")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		fields["password_hash"] = string(hash)
	}

	if len(fields) > 0 {
		if err := users.UpdateFields(ctx, targetId, fields); err != nil {
			return nil, err
		}
	}

	updated, err := users.FindOne(ctx, specification.ByID{ID: targetId})
	if err != nil {
		return nil, err
	}
	return s.toUserResponse(ctx, updated), nil
}

// Delete flips the deletion flag; the row and its history stay in place.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	user, err := users.FindOne(ctx, specification.ByID{ID: id}, specification.NotDeletedFlag{})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}
	return users.MarkDeleted(ctx, id)
}

// UploadPhoto stores the new object before touching the user row, so a
// failed upload leaves the previous photo reachable. The old object is
// removed only after the pointer moved.
func (s *userService) UploadPhoto(ctx context.Context, userId uuid.UUID, filename, contentType string, data []byte) (*dto.PhotoUploadResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.PhotoInvalid(fmt.Sprintf("unsupported content type %q", contentType))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	user, err := users.FindOne(ctx, specification.ByID{ID: userId}, specification.NotDeletedFlag{})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectKey := fmt.Sprintf("%s/user_id:%s/%s%s", s.storageConfig.Folder, userId, uuid.New(), ext)

	if err := s.store.Upload(ctx, objectKey, contentType, bytes.NewReader(data), false); err != nil {
		return nil, err
	}
	if err := users.UpdatePhotoObject(ctx, userId, &objectKey); err != nil {
		return nil, err
	}

	if user.PhotoObject != nil && *user.PhotoObject != objectKey {
		if err := s.store.Delete(ctx, *user.PhotoObject); err != nil {
			s.log.Warn("user", "failed to remove previous photo object", map[string]interface{}{
				"user_id":    userId.String(),
				"object_key": *user.PhotoObject,
				"error":      err.Error(),
			})
		}
		s.presignCache.Delete(*user.PhotoObject)
	}

	return &dto.PhotoUploadResponse{
		ObjectKey: objectKey,
		PhotoURL:  s.presignObject(ctx, objectKey),
	}, nil
}

// presignObject returns a cached short-lived download URL, or nil when the
// store refuses; a missing URL never fails the surrounding operation.
func (s *userService) presignObject(ctx context.Context, objectKey string) *string {
	if cached, ok := s.presignCache.Get(objectKey); ok {
		url := cached.(string)
		return &url
	}

	ttl := time.Duration(s.storageConfig.PresignTTLSec) * time.Second
	url, err := s.store.PresignGet(ctx, objectKey, ttl)
	if err != nil {
		s.log.Warn("user", "failed to presign photo object", map[string]interface{}{
			"object_key": objectKey,
			"error":      err.Error(),
		})
		return nil
	}
	s.presignCache.Set(objectKey, url, gocache.DefaultExpiration)
	return &url
}

func (s *userService) toUserResponse(ctx context.Context, user *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		Id:                  user.Id,
		Name:                user.Name,
		Email:               user.Email,
		Birthdate:           user.Birthdate.Format(birthdateLayout),
		PrivacyTerms:        user.PrivacyTerms,
		DataProtectionTerms: user.DataProtectionTerms,
		Document:            user.Document,
		DocumentType:        user.DocumentType,
		MedicalDocument:     user.MedicalDocument,
		MedicalDocumentType: user.MedicalDocumentType,
		Role:                string(user.Role),
		Deleted:             user.Deleted,
		PhotoObject:         user.PhotoObject,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
	if user.PhotoObject != nil {
		resp.PhotoURL = s.presignObject(ctx, *user.PhotoObject)
	}
	return resp
}
