package model

import "time"

// Trade is an immutable bid record; the trade history is the source of
// truth for the highest winning bid at a rank.
type Trade struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Amount    float64 `gorm:"not null"`
	Rank      int     `gorm:"not null"`
	EventID   uint    `gorm:"not null"`
}
