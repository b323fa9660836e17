package model

import (
	"time"
)

type Event struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	EventName string `gorm:"not null"`
	Keyword   string
	Rank      int  `gorm:"not null"`
	VoteScore int  `gorm:"not null"`
	UserID    uint `gorm:"not null"`
}
