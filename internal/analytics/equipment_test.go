package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentMetrics(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		snap := EquipmentMetrics(nil, nil)

		assert.Empty(t, snap.Utilization)
		assert.Empty(t, snap.CriticalItems)
		assert.Zero(t, snap.StockoutFrequency)
	})

	t.Run("utilization counts usages across orders", func(t *testing.T) {
		orders := []WorkOrder{
			{EquipmentUsed: []string{"drill", "ladder"}},
			{EquipmentUsed: []string{"drill", ""}},
		}

		snap := EquipmentMetrics(orders, nil)

		assert.Equal(t, 2, snap.Utilization["drill"])
		assert.Equal(t, 1, snap.Utilization["ladder"])
		assert.NotContains(t, snap.Utilization, "")
	})

	t.Run("critical items and stockout frequency", func(t *testing.T) {
		items := []WarehouseItem{
			{Name: "Copper Pipe", Quantity: 0, MinimumStock: 10},
			{Name: "Filters", Quantity: 3, MinimumStock: 5},
			{Name: "Duct Tape", Quantity: 50, MinimumStock: 5},
			{Name: "Sealant", Quantity: 0, MinimumStock: 2},
		}

		snap := EquipmentMetrics(nil, items)

		assert.Equal(t, 50.0, snap.StockoutFrequency)
		assert.Len(t, snap.CriticalItems, 3)

		assert.Equal(t, UrgencyCritical, snap.CriticalItems[0].Urgency)
		assert.Equal(t, "Copper Pipe", snap.CriticalItems[0].Name)
		assert.Equal(t, UrgencyWarning, snap.CriticalItems[1].Urgency)
		assert.Equal(t, "Filters", snap.CriticalItems[1].Name)
	})

	t.Run("quantity at minimum is a warning", func(t *testing.T) {
		items := []WarehouseItem{
			{Name: "Filters", Quantity: 5, MinimumStock: 5},
		}

		snap := EquipmentMetrics(nil, items)

		assert.Len(t, snap.CriticalItems, 1)
		assert.Equal(t, UrgencyWarning, snap.CriticalItems[0].Urgency)
	})
}
