package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "nocturna/internal/errors"
)

const (
	maxNameLength  = 120
	maxNotesLength = 500
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
	slotPattern  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ReservationValidator validates reservation form input.
type ReservationValidator struct {
	validate *validator.Validate
	calendar *Calendar
	slots    map[string]struct{}
}

// NewReservationValidator creates a validator accepting only the given time slots.
func NewReservationValidator(calendar *Calendar, timeSlots []string) *ReservationValidator {
	slots := make(map[string]struct{}, len(timeSlots))
	for _, slot := range timeSlots {
		slots[slot] = struct{}{}
	}
	return &ReservationValidator{
		validate: validator.New(),
		calendar: calendar,
		slots:    slots,
	}
}

// Normalize trims free-text fields in place.
func (v *ReservationValidator) Normalize(input *ReservationInput) {
	input.Name = strings.TrimSpace(input.Name)
	input.Contact = strings.TrimSpace(input.Contact)
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
	input.Notes = strings.TrimSpace(input.Notes)
}

// ValidateGuest checks name, contact and notes.
func (v *ReservationValidator) ValidateGuest(input ReservationInput) error {
	if input.Name == "" || utf8.RuneCountInString(input.Name) > maxNameLength {
		return apperrors.ErrInvalidName
	}
	if !v.ValidContact(input.Contact) {
		return apperrors.ErrInvalidContact
	}
	if utf8.RuneCountInString(input.Notes) > maxNotesLength {
		return apperrors.ErrNotesTooLong
	}
	return nil
}

// ValidContact accepts an email address or a phone number.
func (v *ReservationValidator) ValidContact(contact string) bool {
	if contact == "" {
		return false
	}
	if strings.Contains(contact, "@") {
		return v.validate.Var(contact, "email") == nil
	}
	if !phonePattern.MatchString(contact) {
		return false
	}
	digits := 0
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// ValidatePartySize checks 1 <= size <= max.
func (v *ReservationValidator) ValidatePartySize(size, max int) error {
	if size < 1 || size > max {
		return apperrors.ErrInvalidPartySize
	}
	return nil
}

// ValidateSlot checks the slot is a well formed time offered by the venue.
func (v *ReservationValidator) ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return apperrors.ErrInvalidSlot
	}
	if _, ok := v.slots[slot]; !ok {
		return apperrors.ErrInvalidSlot
	}
	return nil
}

// ValidateDateFormat checks the date parses as YYYY-MM-DD.
func (v *ReservationValidator) ValidateDateFormat(date string) error {
	if _, err := v.calendar.ParseDate(date); err != nil {
		return apperrors.ErrInvalidDate
	}
	return nil
}

// ValidateBookableDate checks the date is today or later and within horizonDays.
func (v *ReservationValidator) ValidateBookableDate(date string, horizonDays int) error {
	day, err := v.calendar.ParseDate(date)
	if err != nil {
		return apperrors.ErrInvalidDate
	}
	offset := v.calendar.DaysFromToday(day)
	if offset < 0 {
		return apperrors.ErrInvalidDate
	}
	if horizonDays > 0 && offset > horizonDays {
		return apperrors.ErrInvalidDate
	}
	return nil
}
