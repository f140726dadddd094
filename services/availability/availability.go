package availability

import "time"

// timeSlots is the fixed set of bookable slot labels per day.
var timeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
}

// TimeSlots returns the fixed slot catalog.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidSlot reports whether label is one of the catalog slots.
func ValidSlot(label string) bool {
	for _, s := range timeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// Source answers whether a slot is already taken on a given date.
//
// Note that the static schedule below and the live booking store are
// two independent sources of truth for "is this slot taken". They are
// kept separate on purpose; merging them later only needs a new Source
// implementation fed from the booking repository.
type Source interface {
	IsBooked(date, slot string) bool
}

// SlotStatus pairs a slot label with its occupancy on a date.
type SlotStatus struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// SlotsFor reports every catalog slot for the date with its occupancy
// according to the given source.
func SlotsFor(src Source, date string) []SlotStatus {
	out := make([]SlotStatus, 0, len(timeSlots))
	for _, t := range timeSlots {
		out = append(out, SlotStatus{Time: t, Booked: src.IsBooked(date, t)})
	}
	return out
}

// StaticSchedule is a seed fixture mapping a calendar date string to
// the set of slot labels already occupied on that day. It is mock
// data, not derived from the live booking store.
type StaticSchedule struct {
	booked map[string][]string
}

// NewStaticSchedule builds a schedule from an explicit occupancy table.
func NewStaticSchedule(booked map[string][]string) *StaticSchedule {
	if booked == nil {
		booked = map[string][]string{}
	}
	return &StaticSchedule{booked: booked}
}

// DefaultSchedule seeds the demo occupancy: a partially booked
// tomorrow, a lightly booked day after, and a fully booked day next
// week.
func DefaultSchedule() *StaticSchedule {
	return NewStaticSchedule(map[string][]string{
		futureDate(1): {"9:00 AM", "1:00 PM"},
		futureDate(2): {"11:00 AM"},
		futureDate(5): TimeSlots(),
	})
}

// IsBooked reports whether the slot is occupied on the date. Unknown
// dates have no occupied slots.
func (s *StaticSchedule) IsBooked(date, slot string) bool {
	for _, taken := range s.booked[date] {
		if taken == slot {
			return true
		}
	}
	return false
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}
