package service

// SlotAvailability is the seat situation of one time slot.
type SlotAvailability struct {
	TimeSlot  string `json:"time_slot"`
	Limit     int    `json:"limit"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

// ComputeAvailability derives free seats from the slot limit and booked seats.
// Available never goes negative, even if the slot was over-booked by hand.
func ComputeAvailability(timeSlot string, limit, booked int) SlotAvailability {
	if booked < 0 {
		booked = 0
	}
	available := limit - booked
	if available < 0 {
		available = 0
	}
	return SlotAvailability{
		TimeSlot:  timeSlot,
		Limit:     limit,
		Booked:    booked,
		Available: available,
	}
}

// Fits reports whether a party of size can still be seated.
func (a SlotAvailability) Fits(size int) bool {
	return size <= a.Available
}
