package model

import "time"

// Venue is the club every other row is scoped to.
type Venue struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Timezone  string    `json:"timezone" gorm:"size:64;not null;default:'Europe/Madrid'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
