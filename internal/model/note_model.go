package model

import (
	"time"
)

type Note struct {
	Id         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  *time.Time
	OwnerName  string `gorm:"type:varchar(255)"`
	OwnerEmail string `gorm:"type:varchar(255)"`
}

func (Note) TableName() string {
	return "notes"
}
