package entity

import "time"

// BookingWindowDays is how many calendar days ahead of today appointments
// can be requested. Today itself is never offered.
const BookingWindowDays = 14

// slotTemplate is the fixed set of daily consultation times, in order.
var slotTemplate = []string{
	"09:00", "10:00", "11:00", "12:00",
	"15:00", "16:00", "17:00", "18:00",
}

// SlotTemplate returns the ordered daily slot template.
func SlotTemplate() []string {
	slots := make([]string, len(slotTemplate))
	copy(slots, slotTemplate)
	return slots
}

// ValidSlot reports whether t is one of the template times.
func ValidSlot(t string) bool {
	for _, s := range slotTemplate {
		if s == t {
			return true
		}
	}
	return false
}

// EligibleDates returns the bookable dates as of now: the next
// BookingWindowDays calendar days, today excluded, Saturdays and Sundays
// filtered out.
func EligibleDates(now time.Time) []string {
	dates := make([]string, 0, BookingWindowDays)
	for i := 1; i <= BookingWindowDays; i++ {
		d := now.AddDate(0, 0, i)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

// EligibleDate reports whether date is in the current booking window.
func EligibleDate(now time.Time, date string) bool {
	for _, d := range EligibleDates(now) {
		if d == date {
			return true
		}
	}
	return false
}

// AvailableSlots returns the ordered subset of the slot template whose
// times are not in booked. Order of the template is preserved; booked
// times outside the template are ignored.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}
	available := make([]string, 0, len(slotTemplate))
	for _, s := range slotTemplate {
		if _, ok := taken[s]; !ok {
			available = append(available, s)
		}
	}
	return available
}
