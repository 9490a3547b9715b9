package crud

import (
	"context"
	"errors"

	"medichat-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the generic CRUD engine: parameterized persistence over any
// model/entity pair, with query shape supplied as typed specifications.
// Entity repositories embed it and add their business lookups.
type Repository[M any, E any] struct {
	db       *gorm.DB
	toModel  func(*E) *M
	toEntity func(*M) *E
}

func New[M any, E any](db *gorm.DB, toModel func(*E) *M, toEntity func(*M) *E) *Repository[M, E] {
	return &Repository[M, E]{
		db:       db,
		toModel:  toModel,
		toEntity: toEntity,
	}
}

func (r *Repository[M, E]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *Repository[M, E]) Create(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *r.toEntity(m)
	return nil
}

func (r *Repository[M, E]) Save(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*e = *r.toEntity(m)
	return nil
}

// UpdateFields applies a partial update: only the provided columns change.
func (r *Repository[M, E]) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	var m M
	return r.db.WithContext(ctx).Model(&m).Where("id = ?", id).Updates(fields).Error
}

// DeleteById is a soft delete when the model carries gorm.DeletedAt,
// otherwise it removes the row.
func (r *Repository[M, E]) DeleteById(ctx context.Context, id uuid.UUID) error {
	var m M
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&m).Error
}

func (r *Repository[M, E]) HardDeleteById(ctx context.Context, id uuid.UUID) error {
	var m M
	return r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&m).Error
}

// FindOne returns (nil, nil) when no row matches.
func (r *Repository[M, E]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *Repository[M, E]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = r.toEntity(m)
	}
	return entities, nil
}

func (r *Repository[M, E]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var m M
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&m), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
