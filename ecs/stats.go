package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount   int
	ComponentTypeCount int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats counts the live instances of one component type.
type ComponentStats struct {
	Type  string
	Count int
}

// CollectStats gathers entity, component and singleton counts. Breakdown
// entries are sorted by type name.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalEntityCount: s.live,
		SingletonCount:   len(s.singletons),
	}

	for t, store := range s.stores {
		count := len(store.entities())
		if count == 0 {
			continue
		}
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:  t.String(),
			Count: count,
		})
	}
	stats.ComponentTypeCount = len(stats.ComponentBreakdown)
	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		return stats.ComponentBreakdown[i].Type < stats.ComponentBreakdown[j].Type
	})

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
