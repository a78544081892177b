package oem

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
)

// Store holds the immutable per-type OEM reference data. Profiles are loaded
// once at process start and read-only thereafter, so lookups need no locking.
type Store struct {
	profiles map[string]domain.EquipmentProfile
}

// NewStore returns a store seeded with the built-in marine catalog.
func NewStore() *Store {
	s := &Store{profiles: make(map[string]domain.EquipmentProfile)}
	for _, p := range builtinCatalog() {
		s.profiles[p.Type] = p
	}
	return s
}

// LoadCatalog merges profiles from a YAML catalog file on top of the
// built-in set. Profiles with the same type replace the built-in entry.
func (s *Store) LoadCatalog(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read oem catalog: %w", err)
	}
	var doc struct {
		Profiles []domain.EquipmentProfile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse oem catalog: %w", err)
	}
	for _, p := range doc.Profiles {
		if err := validateProfile(p); err != nil {
			return fmt.Errorf("profile %q: %w", p.Type, err)
		}
		s.profiles[p.Type] = p
	}
	return nil
}

// Profile returns the profile for an equipment type. An unknown type is a
// caller configuration error and is reported loudly; every downstream
// fallback assumes a profile exists.
func (s *Store) Profile(equipmentType string) (*domain.EquipmentProfile, error) {
	p, ok := s.profiles[equipmentType]
	if !ok {
		return nil, fmt.Errorf("no OEM profile for equipment type %q", equipmentType)
	}
	return &p, nil
}

// Types lists the catalogued equipment types, sorted.
func (s *Store) Types() []string {
	out := make([]string, 0, len(s.profiles))
	for t := range s.profiles {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func validateProfile(p domain.EquipmentProfile) error {
	if p.Type == "" {
		return fmt.Errorf("missing type")
	}
	for i := 1; i < len(p.WearCurve); i++ {
		prev, cur := p.WearCurve[i-1], p.WearCurve[i]
		if cur.Cycles <= prev.Cycles {
			return fmt.Errorf("wear curve cycles not strictly ascending at index %d", i)
		}
		if cur.Health > prev.Health {
			return fmt.Errorf("wear curve health increases at index %d", i)
		}
	}
	return nil
}
