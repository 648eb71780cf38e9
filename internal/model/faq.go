package model

// FAQEntry is a question shown on the public FAQ page.
type FAQEntry struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	VenueID  uint   `json:"-" gorm:"not null;index"`
	Question string `json:"question" gorm:"size:255;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
	Position int    `json:"position" gorm:"not null;default:0"`
}
