package reportservice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"sundayschool/models"
)

var testNow = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestAssetAge(t *testing.T) {
	tests := []struct {
		name     string
		purchase *time.Time
		wantAge  int
		wantOK   bool
	}{
		{name: "no purchase date", purchase: nil, wantAge: 0, wantOK: false},
		{name: "bought today", purchase: datePtr(testNow), wantAge: 0, wantOK: true},
		{name: "eleven months ago", purchase: datePtr(testNow.AddDate(0, -11, 0)), wantAge: 0, wantOK: true},
		{name: "three years ago", purchase: datePtr(testNow.AddDate(-3, 0, 0)), wantAge: 3, wantOK: true},
		{name: "ten years and a half ago", purchase: datePtr(testNow.AddDate(-10, -6, 0)), wantAge: 10, wantOK: true},
		{name: "future purchase date", purchase: datePtr(testNow.AddDate(1, 0, 0)), wantAge: 0, wantOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			age, ok := AssetAge(tc.purchase, testNow)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantAge, age)
			assert.GreaterOrEqual(t, age, 0)
		})
	}
}

func TestDaysSinceAndUntil(t *testing.T) {
	t.Run("absent dates", func(t *testing.T) {
		_, ok := DaysSince(nil, testNow)
		assert.False(t, ok)
		_, ok = DaysUntil(nil, testNow)
		assert.False(t, ok)
	})

	t.Run("days since last maintenance", func(t *testing.T) {
		days, ok := DaysSince(datePtr(testNow.AddDate(0, 0, -45)), testNow)
		assert.True(t, ok)
		assert.Equal(t, 45, days)
	})

	t.Run("overdue is negative", func(t *testing.T) {
		days, ok := DaysUntil(datePtr(testNow.AddDate(0, 0, -1)), testNow)
		assert.True(t, ok)
		assert.Equal(t, -1, days)
	})

	t.Run("partial days are floored", func(t *testing.T) {
		days, _ := DaysUntil(datePtr(testNow.Add(36*time.Hour)), testNow)
		assert.Equal(t, 1, days)
		days, _ = DaysUntil(datePtr(testNow.Add(-2*time.Hour)), testNow)
		assert.Equal(t, -1, days)
	})
}

func TestMaintenancePriority(t *testing.T) {
	tests := []struct {
		name      string
		condition models.AssetCondition
		daysUntil int
		scheduled bool
		want      Priority
	}{
		{"poor and far away", models.ConditionPoor, 200, true, PriorityHigh},
		{"poor and unscheduled", models.ConditionPoor, 0, false, PriorityHigh},
		{"good and overdue", models.ConditionGood, -1, true, PriorityHigh},
		{"excellent and due today", models.ConditionExcellent, 0, true, PriorityHigh},
		{"fair and overdue", models.ConditionFair, -5, true, PriorityHigh},
		{"fair and far away", models.ConditionFair, 120, true, PriorityMedium},
		{"fair and unscheduled", models.ConditionFair, 0, false, PriorityMedium},
		{"good inside window", models.ConditionGood, 30, true, PriorityMedium},
		{"good outside window", models.ConditionGood, 31, true, PriorityLow},
		{"excellent and unscheduled", models.ConditionExcellent, 0, false, PriorityLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaintenancePriority(tc.condition, tc.daysUntil, tc.scheduled, 30))
		})
	}

	assert.Equal(t, "High", PriorityHigh.String())
	assert.Equal(t, "Medium", PriorityMedium.String())
	assert.Equal(t, "Low", PriorityLow.String())
}

func TestWarrantyStatus(t *testing.T) {
	assert.Equal(t, WarrantyActive, WarrantyStatus(datePtr(testNow.AddDate(1, 0, 0)), testNow))
	assert.Equal(t, WarrantyExpired, WarrantyStatus(datePtr(testNow.AddDate(-1, 0, 0)), testNow))
	assert.Equal(t, NoWarranty, WarrantyStatus(nil, testNow))
}

func TestMaintenanceStatus(t *testing.T) {
	assert.Equal(t, NotScheduled, MaintenanceStatus(nil, testNow, 30))
	assert.Equal(t, MaintenanceOverdue, MaintenanceStatus(datePtr(testNow.AddDate(0, 0, -3)), testNow, 30))
	assert.Equal(t, MaintenanceUpcoming, MaintenanceStatus(datePtr(testNow.AddDate(0, 0, 10)), testNow, 30))
	assert.Equal(t, MaintenanceScheduled, MaintenanceStatus(datePtr(testNow.AddDate(0, 0, 90)), testNow, 30))

	t.Run("later today is overdue like its priority", func(t *testing.T) {
		next := datePtr(testNow.Add(2 * time.Hour))
		days, _ := DaysUntil(next, testNow)
		assert.Equal(t, 0, days)
		assert.Equal(t, MaintenanceOverdue, MaintenanceStatus(next, testNow, 30))
		assert.Equal(t, PriorityHigh, MaintenancePriority(models.ConditionGood, days, true, 30))
	})

	t.Run("partial day past the window edge floors into it", func(t *testing.T) {
		next := datePtr(testNow.AddDate(0, 0, 30).Add(12 * time.Hour))
		days, _ := DaysUntil(next, testNow)
		assert.Equal(t, 30, days)
		assert.Equal(t, MaintenanceUpcoming, MaintenanceStatus(next, testNow, 30))
		assert.Equal(t, PriorityMedium, MaintenancePriority(models.ConditionGood, days, true, 30))
	})

	t.Run("first whole day past the window", func(t *testing.T) {
		next := datePtr(testNow.AddDate(0, 0, 31))
		assert.Equal(t, MaintenanceScheduled, MaintenanceStatus(next, testNow, 30))
	})
}

func TestDepreciatedValue(t *testing.T) {
	price := decimal.NewFromInt(1000)

	assert.True(t, decimal.NewFromInt(1000).Equal(DepreciatedValue(price, 0, 0.10)))
	assert.True(t, decimal.NewFromInt(700).Equal(DepreciatedValue(price, 3, 0.10)))
	assert.True(t, decimal.Zero.Equal(DepreciatedValue(price, 10, 0.10)))
	assert.True(t, decimal.Zero.Equal(DepreciatedValue(price, 25, 0.10)))
	assert.True(t, decimal.NewFromInt(800).Equal(DepreciatedValue(price, 1, 0.20)))

	t.Run("never increases with age and never goes negative", func(t *testing.T) {
		prev := DepreciatedValue(price, 0, 0.15)
		for age := 1; age <= 30; age++ {
			v := DepreciatedValue(price, age, 0.15)
			assert.False(t, v.IsNegative(), "age %d", age)
			assert.True(t, v.LessThanOrEqual(prev), "age %d", age)
			prev = v
		}
	})
}
