package model

import "time"

type Vote struct {
	ID      uint `gorm:"primarykey"`
	EventID uint `gorm:"not null"`
	UserID  uint `gorm:"not null"`
	Amount  int  `gorm:"not null"`
	VotedAt time.Time
}
