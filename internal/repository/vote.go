package repository

import (
	"fmt"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote model.Vote) (model.Vote, error)
	FindByEventID(eventID uint) ([]model.Vote, error)
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

func (v *vote) Create(vote model.Vote) (model.Vote, error) {
	result := v.db.Create(&vote)
	if result.Error != nil {
		return model.Vote{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return vote, nil
}

func (v *vote) FindByEventID(eventID uint) ([]model.Vote, error) {
	var votes []model.Vote
	result := v.db.Where("event_id = ?", eventID).Order("voted_at asc").Find(&votes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return votes, nil
}
