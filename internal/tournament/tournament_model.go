package tournament

import (
	"time"

	"gorm.io/gorm"
)

type Tournament struct {
	gorm.Model
	Name string    `json:"name" gorm:"not null"`
	Date time.Time `json:"date" gorm:"index"`
}
