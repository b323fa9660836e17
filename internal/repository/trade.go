package repository

import (
	"errors"
	"fmt"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"gorm.io/gorm"
)

type TradeRepository interface {
	Create(trade model.Trade) (model.Trade, error)
	// FindHighestByRank returns the reigning bid for a rank slot, the trade
	// with the greatest amount ever recorded at that rank. dto.ErrNotFound
	// when the rank has never been sold.
	FindHighestByRank(rank int) (model.Trade, error)
}

type trade struct {
	db *gorm.DB
}

func newTradeRepository(db *gorm.DB) TradeRepository {
	return &trade{
		db: db,
	}
}

func (t *trade) Create(trade model.Trade) (model.Trade, error) {
	result := t.db.Create(&trade)
	if result.Error != nil {
		return model.Trade{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return trade, nil
}

func (t *trade) FindHighestByRank(rank int) (model.Trade, error) {
	var trade model.Trade
	result := t.db.Where("rank = ?", rank).Order("amount desc").First(&trade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Trade{}, fmt.Errorf("%w: no trade at rank %d", dto.ErrNotFound, rank)
		}
		return model.Trade{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return trade, nil
}
