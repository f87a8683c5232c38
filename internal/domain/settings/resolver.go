package settings

// ResolveActive selects the snapshot that currently applies: the active one
// with the most recent update timestamp. It also returns how many active
// snapshots were seen so the caller can flag the data-integrity anomaly of
// more than one being active; the resolver itself never mutates anything.
// With no active snapshot the hardcoded Default applies.
func ResolveActive(snapshots []Settings) (Settings, int) {
	var (
		resolved    Settings
		activeCount int
	)

	for _, s := range snapshots {
		if !s.IsActive {
			continue
		}
		activeCount++
		if activeCount == 1 || s.UpdatedAt.After(resolved.UpdatedAt) {
			resolved = s
		}
	}

	if activeCount == 0 {
		return Default(), 0
	}
	return resolved, activeCount
}
