package analytics

// Urgency levels for critical warehouse items.
const (
	UrgencyCritical = "critical"
	UrgencyWarning  = "warning"
)

// EquipmentMetrics tallies equipment usage across work orders and flags
// warehouse items at or below their minimum stock.
func EquipmentMetrics(orders []WorkOrder, items []WarehouseItem) EquipmentSnapshot {
	snap := EquipmentSnapshot{
		Utilization:   make(map[string]int),
		CriticalItems: []CriticalItem{},
	}

	for _, o := range orders {
		for _, eq := range o.EquipmentUsed {
			if eq == "" {
				continue
			}
			snap.Utilization[eq]++
		}
	}

	stockouts := 0
	for _, item := range items {
		if item.Quantity == 0 {
			stockouts++
		}
		if item.Quantity > item.MinimumStock {
			continue
		}
		urgency := UrgencyWarning
		if item.Quantity == 0 {
			urgency = UrgencyCritical
		}
		snap.CriticalItems = append(snap.CriticalItems, CriticalItem{
			Name:         item.Name,
			CurrentStock: item.Quantity,
			MinimumStock: item.MinimumStock,
			Urgency:      urgency,
		})
	}

	snap.StockoutFrequency = percent(float64(stockouts), float64(len(items)))
	return snap
}
