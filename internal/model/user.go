package model

import (
	"time"
)

type User struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UserName   string `gorm:"not null"`
	Gender     string
	Age        int
	Phone      string
	Email      string `gorm:"not null"`
	VoteBudget int    `gorm:"not null"`
}
