package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the storage and wire format of reservation and headcount dates.
const DateLayout = "2006-01-02"

// Reservation is a table booking for one night and one time slot.
type Reservation struct {
	ID              uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	VenueID         uint           `json:"venue_id" gorm:"not null;index:idx_reservation_slot,priority:1"`
	Name            string         `json:"name" gorm:"size:120;not null"`
	Contact         string         `json:"contact" gorm:"size:255;not null"`
	Date            string         `json:"date" gorm:"type:char(10);not null;index:idx_reservation_slot,priority:2"`
	TimeSlot        string         `json:"time_slot" gorm:"size:5;not null;index:idx_reservation_slot,priority:3"`
	PartySize       int            `json:"party_size" gorm:"not null"`
	Notes           string         `json:"notes,omitempty" gorm:"size:500"`
	WantsNewsletter bool           `json:"wants_newsletter" gorm:"default:false;index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	Venue Venue `json:"-" gorm:"foreignKey:VenueID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
