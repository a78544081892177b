// Package issues implements the known-issue override feed: an external,
// authoritative per-equipment status that takes precedence over the engine's
// computed heuristics.
package issues

import (
	"strings"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// Entry is one record in an issue feed, keyed by asset and an equipment
// descriptor the feed operator typed in.
type Entry struct {
	AssetID   string
	Equipment string
	Issue     domain.KnownIssue
}

// Match reports whether a feed equipment descriptor refers to the named
// equipment item. Matching is a case-insensitive substring test on the first
// word of the equipment name, mirroring how operators abbreviate items
// ("Hoist wire rope" matches a feed entry for "hoist").
func Match(feedEquipment, equipmentName string) bool {
	fields := strings.Fields(equipmentName)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(fields[0])
	return strings.Contains(strings.ToLower(feedEquipment), first) ||
		strings.Contains(first, strings.ToLower(feedEquipment))
}

// StaticLookup is an in-memory issue feed for local mode and tests.
type StaticLookup struct {
	entries []Entry
}

func NewStaticLookup(entries ...Entry) *StaticLookup {
	return &StaticLookup{entries: entries}
}

// Lookup returns the first matching issue for the asset, or nil.
func (s *StaticLookup) Lookup(assetID, equipmentName string) (*domain.KnownIssue, error) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.AssetID == assetID && Match(e.Equipment, equipmentName) {
			issue := e.Issue
			return &issue, nil
		}
	}
	return nil, nil
}
