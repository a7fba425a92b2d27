package services

import (
	"time"

	"clinic-inventory-service/models"
)

// DateLayout is the calendar-date form used throughout the state blob.
const DateLayout = "2006-01-02"

// Today returns the current calendar date with the time of day dropped.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// FormatDate renders a calendar date for storage.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// defaultDailyUsage estimates a consumption rate when no real usage signal
// exists: amount_needed spread over a one-week turnover, at least 1.
func defaultDailyUsage(item models.Item) int {
	if item.AmountNeeded > 0 {
		est := (item.AmountNeeded + 6) / 7
		if est < 1 {
			est = 1
		}
		return est
	}
	return 1
}

// EstimateDepletionDate estimates when the item's stock reaches zero.
// A nil or non-positive dailyUsage falls back to the heuristic rate. The
// result is never earlier than today and the rate is always at least 1.
func EstimateDepletionDate(item models.Item, dailyUsage *int) time.Time {
	today := Today()
	if item.CurrentAmount <= 0 {
		return today
	}
	rate := defaultDailyUsage(item)
	if dailyUsage != nil && *dailyUsage > 0 {
		rate = *dailyUsage
	}
	days := (item.CurrentAmount + rate - 1) / rate
	return today.AddDate(0, 0, days)
}

// EstimateRefillDateToTarget estimates when a refill to targetAmount is
// required and how much is short. targetAmount defaults to the item's
// needed amount. When stock already covers the target the date is the
// depletion estimate; otherwise the refill is needed today. The amount is
// never negative.
func EstimateRefillDateToTarget(item models.Item, targetAmount, dailyUsage *int) (time.Time, int) {
	target := item.AmountNeeded
	if targetAmount != nil {
		target = *targetAmount
	}
	shortfall := target - item.CurrentAmount
	if shortfall < 0 {
		shortfall = 0
	}
	if item.CurrentAmount >= target {
		return EstimateDepletionDate(item, dailyUsage), shortfall
	}
	return Today(), shortfall
}
