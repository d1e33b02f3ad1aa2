// team/model.go
package team

import (
	"strings"

	"gorm.io/gorm"
)

// Team is a side that can be scheduled into matches. Teams are never updated once created.
type Team struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	NameKey string `json:"-" gorm:"not null;uniqueIndex"` // lower-cased Name
	Address string `json:"address"`
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (t *Team) BeforeSave(tx *gorm.DB) error {
	t.NameKey = nameKey(t.Name)
	return nil
}
