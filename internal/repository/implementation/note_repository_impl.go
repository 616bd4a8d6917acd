package implementation

import (
	"context"
	"errors"

	"notes-backend/internal/entity"
	"notes-backend/internal/mapper"
	"notes-backend/internal/model"
	"notes-backend/internal/repository/contract"

	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) Save(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

// SaveAll hands the whole batch to the database in one statement; the driver
// reports assigned ids back in input order.
func (r *NoteRepositoryImpl) SaveAll(ctx context.Context, notes []*entity.Note) error {
	if len(notes) == 0 {
		return nil
	}
	models := r.mapper.ToModels(notes)
	if err := r.db.WithContext(ctx).Save(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*notes[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *NoteRepositoryImpl) FindById(ctx context.Context, id int64) (*entity.Note, error) {
	var m model.Note
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Note, error) {
	var models []*model.Note
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) DeleteById(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}
