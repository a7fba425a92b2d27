package services_test

import (
	"testing"

	"clinic-inventory-service/models"
	"clinic-inventory-service/services"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestEstimateDepletionDateDepletedStock(t *testing.T) {
	item := models.Item{CurrentAmount: 0, AmountNeeded: 100}
	got := services.EstimateDepletionDate(item, nil)
	assert.Equal(t, services.Today(), got)

	item.CurrentAmount = -5
	got = services.EstimateDepletionDate(item, nil)
	assert.Equal(t, services.Today(), got)
}

func TestEstimateDepletionDateExplicitUsage(t *testing.T) {
	item := models.Item{CurrentAmount: 30, AmountNeeded: 100}
	got := services.EstimateDepletionDate(item, intPtr(10))
	assert.Equal(t, services.Today().AddDate(0, 0, 3), got)

	// 31 units at 10/day rounds up to 4 days
	item.CurrentAmount = 31
	got = services.EstimateDepletionDate(item, intPtr(10))
	assert.Equal(t, services.Today().AddDate(0, 0, 4), got)
}

func TestEstimateDepletionDateHeuristicRate(t *testing.T) {
	// amount_needed 0 means rate 1: one day per unit
	item := models.Item{CurrentAmount: 5, AmountNeeded: 0}
	got := services.EstimateDepletionDate(item, nil)
	assert.Equal(t, services.Today().AddDate(0, 0, 5), got)

	// amount_needed 70 means rate ceil(70/7) = 10
	item = models.Item{CurrentAmount: 30, AmountNeeded: 70}
	got = services.EstimateDepletionDate(item, nil)
	assert.Equal(t, services.Today().AddDate(0, 0, 3), got)
}

func TestEstimateDepletionDateIgnoresNonPositiveUsage(t *testing.T) {
	item := models.Item{CurrentAmount: 5, AmountNeeded: 0}
	got := services.EstimateDepletionDate(item, intPtr(0))
	assert.Equal(t, services.Today().AddDate(0, 0, 5), got)

	got = services.EstimateDepletionDate(item, intPtr(-3))
	assert.Equal(t, services.Today().AddDate(0, 0, 5), got)
}

func TestEstimateDepletionDateNeverBeforeToday(t *testing.T) {
	items := []models.Item{
		{CurrentAmount: 0, AmountNeeded: 0},
		{CurrentAmount: 1, AmountNeeded: 1000},
		{CurrentAmount: 500, AmountNeeded: 7},
	}
	for _, item := range items {
		got := services.EstimateDepletionDate(item, nil)
		assert.False(t, got.Before(services.Today()), "item %+v", item)
	}
}

func TestEstimateRefillDateToTargetShortfall(t *testing.T) {
	item := models.Item{CurrentAmount: 30, AmountNeeded: 100}
	date, amount := services.EstimateRefillDateToTarget(item, nil, nil)
	assert.Equal(t, services.Today(), date)
	assert.Equal(t, 70, amount)
}

func TestEstimateRefillDateToTargetSufficientStock(t *testing.T) {
	item := models.Item{CurrentAmount: 100, AmountNeeded: 100}
	date, amount := services.EstimateRefillDateToTarget(item, nil, intPtr(10))
	assert.Equal(t, services.Today().AddDate(0, 0, 10), date)
	assert.Equal(t, 0, amount)

	// stock above target never yields a negative refill amount
	item.CurrentAmount = 150
	_, amount = services.EstimateRefillDateToTarget(item, nil, nil)
	assert.Equal(t, 0, amount)
}

func TestEstimateRefillDateToTargetExplicitTarget(t *testing.T) {
	item := models.Item{CurrentAmount: 30, AmountNeeded: 100}
	date, amount := services.EstimateRefillDateToTarget(item, intPtr(50), nil)
	assert.Equal(t, services.Today(), date)
	assert.Equal(t, 20, amount)
}
