package repository

import (
	"errors"
	"fmt"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event model.Event) (model.Event, error)
	GetByID(id uint) (model.Event, error)
	Save(event model.Event) (model.Event, error)
	DeleteByID(id uint) error
	DeleteByUserID(userID uint) error
	FindAllRanked() ([]model.Event, error)
	FindRankedPage(page, size int) ([]model.Event, error)
	Count() (int64, error)
}

type event struct {
	db *gorm.DB
}

func newEventRepository(db *gorm.DB) EventRepository {
	return &event{
		db: db,
	}
}

func (e *event) Create(event model.Event) (model.Event, error) {
	result := e.db.Create(&event)
	if result.Error != nil {
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) GetByID(id uint) (model.Event, error) {
	var event model.Event
	result := e.db.First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Event{}, fmt.Errorf("%w: event %d", dto.ErrNotFound, id)
		}
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) Save(event model.Event) (model.Event, error) {
	result := e.db.Save(&event)
	if result.Error != nil {
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) DeleteByID(id uint) error {
	result := e.db.Delete(&model.Event{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func (e *event) DeleteByUserID(userID uint) error {
	result := e.db.Where("user_id = ?", userID).Delete(&model.Event{})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func (e *event) FindAllRanked() ([]model.Event, error) {
	var events []model.Event
	result := e.db.Order("rank asc, vote_score desc").Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return events, nil
}

// FindRankedPage returns the 1-indexed page of the ranked listing.
func (e *event) FindRankedPage(page, size int) ([]model.Event, error) {
	var events []model.Event
	result := e.db.
		Order("rank asc, vote_score desc").
		Offset((page - 1) * size).
		Limit(size).
		Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return events, nil
}

func (e *event) Count() (int64, error) {
	var count int64
	result := e.db.Model(&model.Event{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}
