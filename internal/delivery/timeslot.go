package delivery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cape/internal/models"
)

// The five fixed delivery windows of a day.
var timeRanges = []string{
	"11:00-13:00",
	"13:00-15:00",
	"15:00-17:00",
	"17:00-19:00",
	"19:00-21:00",
}

var ruMonths = []string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

const dateLayout = "2006-01-02"

// GenerateDeliveryTimeSlots builds the bookable windows for today and
// tomorrow relative to now. A window today is included only when its
// start is at least the minimum lead time away; tomorrow's windows are
// always included.
func GenerateDeliveryTimeSlots(now time.Time) []models.DeliveryTimeSlot {
	slots := []models.DeliveryTimeSlot{}
	today := now.Format(dateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)

	nowMinutes := now.Hour()*60 + now.Minute()
	for i, timeRange := range timeRanges {
		startHour := DeliveryStartHour + i*SlotDurationHours
		if startHour*60-nowMinutes < MinLeadTimeMinutes {
			continue
		}
		slots = append(slots, models.DeliveryTimeSlot{
			ID:        fmt.Sprintf("today-%d", i),
			Date:      today,
			TimeRange: timeRange,
			Available: true,
		})
	}

	for i, timeRange := range timeRanges {
		slots = append(slots, models.DeliveryTimeSlot{
			ID:        fmt.Sprintf("tomorrow-%d", i),
			Date:      tomorrow,
			TimeRange: timeRange,
			Available: true,
		})
	}

	return slots
}

// IsTimeSlotAvailable reports whether a slot can still be booked at the
// given moment. Future dates trust the slot's own flag, today applies
// the lead-time rule, past dates are never available.
func IsTimeSlotAvailable(slot models.DeliveryTimeSlot, now time.Time) bool {
	slotDate, err := time.ParseInLocation(dateLayout, slot.Date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if slotDate.After(today) {
		return slot.Available
	}

	if slotDate.Equal(today) {
		startHour, startMinute, ok := slotStart(slot.TimeRange)
		if !ok {
			return false
		}
		minutesUntil := startHour*60 + startMinute - (now.Hour()*60 + now.Minute())
		return slot.Available && minutesUntil >= MinLeadTimeMinutes
	}

	return false
}

// slotStart extracts the start hour and minute from a range like
// "11:00-13:00".
func slotStart(timeRange string) (hour, minute int, ok bool) {
	start, _, found := strings.Cut(timeRange, "-")
	if !found {
		return 0, 0, false
	}
	h, m, found := strings.Cut(start, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// GroupTimeSlotsByDate buckets slots by their date string, preserving
// slot order within each bucket.
func GroupTimeSlotsByDate(slots []models.DeliveryTimeSlot) map[string][]models.DeliveryTimeSlot {
	groups := map[string][]models.DeliveryTimeSlot{}
	for _, slot := range slots {
		groups[slot.Date] = append(groups[slot.Date], slot)
	}
	return groups
}

// DateDisplayLabel renders a date as "Сегодня", "Завтра" or a long-form
// day and month.
func DateDisplayLabel(date string, now time.Time) string {
	parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return date
	}

	switch date {
	case now.Format(dateLayout):
		return "Сегодня"
	case now.AddDate(0, 0, 1).Format(dateLayout):
		return "Завтра"
	}
	return fmt.Sprintf("%d %s", parsed.Day(), ruMonths[parsed.Month()-1])
}

// FormatDeliveryTimeSlot renders a slot as "{day label}, {time range}".
func FormatDeliveryTimeSlot(slot models.DeliveryTimeSlot, now time.Time) string {
	return fmt.Sprintf("%s, %s", DateDisplayLabel(slot.Date, now), slot.TimeRange)
}

// FindSlotByID regenerates the current slots and returns the one with
// the given id, if it exists.
func FindSlotByID(id string, now time.Time) (models.DeliveryTimeSlot, bool) {
	for _, slot := range GenerateDeliveryTimeSlots(now) {
		if slot.ID == id {
			return slot, true
		}
	}
	return models.DeliveryTimeSlot{}, false
}
