package reportservice

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"sundayschool/models"
)

const (
	day  = 24 * time.Hour
	year = time.Duration(365.25 * float64(day))
)

const (
	WarrantyActive  = "Active"
	WarrantyExpired = "Expired"
)

const (
	MaintenanceOverdue   = "Overdue"
	MaintenanceUpcoming  = "Upcoming"
	MaintenanceScheduled = "Scheduled"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// AssetAge returns whole years since purchase. ok is false when the purchase date is unknown.
// Purchase dates after now count as zero years.
func AssetAge(purchase *time.Time, now time.Time) (years int, ok bool) {
	if purchase == nil {
		return 0, false
	}
	elapsed := now.Sub(*purchase)
	if elapsed <= 0 {
		return 0, true
	}
	return int(math.Floor(float64(elapsed) / float64(year))), true
}

// DaysSince returns floor((now - t) / 1 day).
func DaysSince(t *time.Time, now time.Time) (int, bool) {
	if t == nil {
		return 0, false
	}
	return floorDays(now.Sub(*t)), true
}

// DaysUntil returns floor((t - now) / 1 day). Overdue dates give negative values.
func DaysUntil(t *time.Time, now time.Time) (int, bool) {
	if t == nil {
		return 0, false
	}
	return floorDays(t.Sub(now)), true
}

func floorDays(d time.Duration) int {
	return int(math.Floor(float64(d) / float64(day)))
}

// overdue and dueSoon split whole days until the next maintenance. A date later today
// (day 0) is already overdue, so the two never overlap.
func overdue(daysUntil int) bool {
	return daysUntil <= 0
}

func dueSoon(daysUntil, windowDays int) bool {
	return daysUntil > 0 && daysUntil <= windowDays
}

// MaintenancePriority ranks upkeep urgency. Tiers are evaluated from High down and the
// first matching rule wins, so an overdue asset is High whatever its condition and a poor
// asset is High whatever its schedule. Without a scheduled date only the condition rules apply.
func MaintenancePriority(condition models.AssetCondition, daysUntil int, scheduled bool, windowDays int) Priority {
	switch {
	case condition == models.ConditionPoor:
		return PriorityHigh
	case scheduled && overdue(daysUntil):
		return PriorityHigh
	case condition == models.ConditionFair:
		return PriorityMedium
	case scheduled && dueSoon(daysUntil, windowDays):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func WarrantyStatus(expiry *time.Time, now time.Time) string {
	switch {
	case expiry == nil:
		return NoWarranty
	case expiry.Before(now):
		return WarrantyExpired
	default:
		return WarrantyActive
	}
}

func MaintenanceStatus(next *time.Time, now time.Time, windowDays int) string {
	days, ok := DaysUntil(next, now)
	switch {
	case !ok:
		return NotScheduled
	case overdue(days):
		return MaintenanceOverdue
	case dueSoon(days, windowDays):
		return MaintenanceUpcoming
	default:
		return MaintenanceScheduled
	}
}

// DepreciatedValue applies straight-line depreciation: price * max(0, 1 - rate*age).
func DepreciatedValue(price decimal.Decimal, ageYears int, rate float64) decimal.Decimal {
	if ageYears < 0 {
		ageYears = 0
	}
	remaining := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(ageYears))))
	if !remaining.IsPositive() {
		return decimal.Zero
	}
	if remaining.GreaterThan(decimal.NewFromInt(1)) {
		remaining = decimal.NewFromInt(1)
	}
	return price.Mul(remaining).Round(2)
}
