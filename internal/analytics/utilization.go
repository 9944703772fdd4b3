package analytics

const standardDayHours = 8.0

// TechnicianUtilization aggregates time entries and schedule events into
// per-technician utilization snapshots for the given date range.
//
// Entries without a technician id cannot be grouped and are skipped.
// Schedule hours only accrue to technicians that logged at least one time
// entry; a technician present only in the schedule is omitted.
func TechnicianUtilization(entries []TimeEntry, schedule []ScheduleEvent, dr DateRange) map[string]UtilizationSnapshot {
	acc := make(map[string]*UtilizationSnapshot)
	order := make([]string, 0)

	for _, e := range entries {
		if e.Technician == "" {
			continue
		}
		snap, ok := acc[e.Technician]
		if !ok {
			snap = &UtilizationSnapshot{}
			acc[e.Technician] = snap
			order = append(order, e.Technician)
		}
		snap.TotalHours += e.Hours
		if e.Billable {
			snap.BillableHours += e.Hours
		}
	}

	for _, ev := range schedule {
		snap, ok := acc[ev.Technician]
		if !ok {
			continue
		}
		if ev.End.After(ev.Start) {
			snap.ScheduledHours += ev.End.Sub(ev.Start).Hours()
		}
	}

	capacity := standardDayHours * dr.WorkingDays()
	out := make(map[string]UtilizationSnapshot, len(order))
	for _, tech := range order {
		snap := acc[tech]
		snap.CapacityHours = capacity
		snap.Efficiency = percent(snap.BillableHours, snap.TotalHours)
		snap.Productivity = percent(snap.TotalHours, snap.ScheduledHours)
		if over := snap.TotalHours - capacity; over > 0 {
			snap.OvertimeHours = over
		}
		out[tech] = *snap
	}
	return out
}
