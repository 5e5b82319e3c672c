package repository

import (
	"errors"
	"time"

	"taskmanager-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		task.ID = id.String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByIDForOwner(id, ownerID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByOwner(ownerID string, q domain.ListQuery) ([]*domain.Task, error) {
	tasks := []*domain.Task{}

	query := r.db.Model(&domain.Task{}).Where("owner_id = ?", ownerID)

	if q.Completed != nil {
		query = query.Where("completed = ?", *q.Completed)
	}

	// id breaks ties so skip/limit pages are stable
	if q.Sort != nil {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort.Field.Column()}, Desc: q.Sort.Desc})
	}
	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Skip > 0 {
		query = query.Offset(q.Skip)
	}

	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Model(task).
		Select("description", "completed", "updated_at").
		Updates(task).Error
}

func (r *gormTaskRepository) DeleteForOwner(id, ownerID string) (*domain.Task, error) {
	var deleted *domain.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var task domain.Task
		if err := tx.Where("id = ? AND owner_id = ?", id, ownerID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&domain.Task{}, "id = ?", task.ID).Error; err != nil {
			return err
		}
		deleted = &task
		return nil
	})
	return deleted, err
}

func (r *gormTaskRepository) DeleteByOwner(ownerID string) (int64, error) {
	result := r.db.Where("owner_id = ?", ownerID).Delete(&domain.Task{})
	return result.RowsAffected, result.Error
}
