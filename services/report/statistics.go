package reportservice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sundayschool/models"
)

type CategoryCount struct {
	Category string
	Count    int
}

// Statistics aggregates the whole input set of a report run.
type Statistics struct {
	TotalAssets   int
	Available     int
	Assigned      int
	InMaintenance int
	Retired       int

	TotalValue   decimal.Decimal
	AverageValue decimal.Decimal

	Excellent int
	Good      int
	Fair      int
	Poor      int

	// Categories keeps the order in which each category first appears in the input.
	Categories []CategoryCount

	MaintenanceDueSoon int
	WithWarranty       int
	ExpiredWarranty    int
	AverageAgeYears    float64
}

func computeStatistics(assets []models.Asset, now time.Time, windowDays int) Statistics {
	stats := Statistics{
		TotalAssets:  len(assets),
		TotalValue:   decimal.Zero,
		AverageValue: decimal.Zero,
		Categories:   []CategoryCount{},
	}

	categoryIndex := make(map[string]int)
	ageSum, aged := 0, 0

	for _, a := range assets {
		switch a.Status {
		case models.StatusAvailable:
			stats.Available++
		case models.StatusAssigned:
			stats.Assigned++
		case models.StatusMaintenance:
			stats.InMaintenance++
		case models.StatusRetired:
			stats.Retired++
		}

		switch a.Condition {
		case models.ConditionExcellent:
			stats.Excellent++
		case models.ConditionGood:
			stats.Good++
		case models.ConditionFair:
			stats.Fair++
		case models.ConditionPoor:
			stats.Poor++
		}

		stats.TotalValue = stats.TotalValue.Add(a.PurchasePrice)

		if i, ok := categoryIndex[a.Category]; ok {
			stats.Categories[i].Count++
		} else {
			categoryIndex[a.Category] = len(stats.Categories)
			stats.Categories = append(stats.Categories, CategoryCount{Category: a.Category, Count: 1})
		}

		if days, ok := DaysUntil(a.NextMaintenanceDate, now); ok && dueSoon(days, windowDays) {
			stats.MaintenanceDueSoon++
		}

		if a.WarrantyExpiry != nil {
			stats.WithWarranty++
			if a.WarrantyExpiry.Before(now) {
				stats.ExpiredWarranty++
			}
		}

		if age, ok := AssetAge(a.PurchaseDate, now); ok {
			ageSum += age
			aged++
		}
	}

	if len(assets) > 0 {
		stats.AverageValue = stats.TotalValue.Div(decimal.NewFromInt(int64(len(assets))))
	}
	if aged > 0 {
		stats.AverageAgeYears = float64(ageSum) / float64(aged)
	}
	return stats
}

// pairs lays the block out as metric/value rows for the two-column statistics sheet.
func (s Statistics) pairs(f formatter, windowDays int) [][2]any {
	rows := [][2]any{
		{"Metric", "Value"},
		{"Total Assets", s.TotalAssets},
		{"Available", s.Available},
		{"Assigned", s.Assigned},
		{"In Maintenance", s.InMaintenance},
		{"Retired", s.Retired},
		{"Total Value", f.money(s.TotalValue)},
		{"Average Value", f.money(s.AverageValue)},
		{"Excellent Condition", s.Excellent},
		{"Good Condition", s.Good},
		{"Fair Condition", s.Fair},
		{"Poor Condition", s.Poor},
		{fmt.Sprintf("Maintenance Due (%d days)", windowDays), s.MaintenanceDueSoon},
		{"With Warranty", s.WithWarranty},
		{"Expired Warranty", s.ExpiredWarranty},
		{"Average Age (Years)", round1(s.AverageAgeYears)},
	}
	for _, c := range s.Categories {
		rows = append(rows, [2]any{"Category: " + c.Category, c.Count})
	}
	return rows
}
