package oem

import "github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"

// builtinCatalog is the shipped OEM reference data for common vessel and
// crane equipment. Figures follow manufacturer datasheets and class-society
// guidance; a site-specific catalog can override any entry via LoadCatalog.
func builtinCatalog() []domain.EquipmentProfile {
	return []domain.EquipmentProfile{
		{
			Type:         "wire_rope",
			Manufacturer: "Bridon-Bekaert",
			Model:        "Tiger Blue 2160",
			Specs: domain.EquipmentSpecs{
				RatedCapacity:       45,
				MaxOperatingHours:   20000,
				MaintenanceInterval: 500,
				ExpectedLifeCycles:  15000,
				MaxVibration:        12,
				MTBFHours:           18000,
			},
			WearCurve: []domain.WearPoint{
				{Cycles: 0, Health: 100},
				{Cycles: 3000, Health: 95},
				{Cycles: 6000, Health: 85},
				{Cycles: 9000, Health: 70},
				{Cycles: 12000, Health: 50},
				{Cycles: 15000, Health: 25},
			},
			FailureModes: []domain.FailureMode{
				{
					Name:            "broken wire accumulation",
					BaseProbability: 0.25,
					WarningSignals:  []string{"visible broken wires", "diameter reduction", "increased vibration during hoisting"},
					MTBFHours:       16000,
				},
				{
					Name:            "core deterioration",
					BaseProbability: 0.15,
					WarningSignals:  []string{"lay length change", "internal corrosion traces"},
					MTBFHours:       20000,
				},
			},
			MaintenanceTasks: []domain.MaintenanceTask{
				{Name: "visual rope inspection (ISO 4309)", IntervalHours: 500, DurationHours: 2, RequiredParts: []string{"rope dressing lubricant"}},
				{Name: "magnetic rope test", IntervalHours: 2000, DurationHours: 6, RequiredParts: nil},
			},
		},
		{
			Type:         "crane_winch",
			Manufacturer: "MacGregor",
			Model:        "GLBE-450",
			Specs: domain.EquipmentSpecs{
				RatedCapacity:       45,
				MaxOperatingHours:   40000,
				MaintenanceInterval: 1000,
				ExpectedLifeCycles:  120000,
				MaxTemperature:      85,
				MaxVibration:        9,
				MTBFHours:           32000,
			},
			WearCurve: []domain.WearPoint{
				{Cycles: 0, Health: 100},
				{Cycles: 20000, Health: 92},
				{Cycles: 50000, Health: 80},
				{Cycles: 80000, Health: 62},
				{Cycles: 120000, Health: 35},
			},
			FailureModes: []domain.FailureMode{
				{
					Name:            "gearbox bearing wear",
					BaseProbability: 0.3,
					WarningSignals:  []string{"rising vibration signature", "metallic noise under load"},
					MTBFHours:       28000,
				},
				{
					Name:            "brake band glazing",
					BaseProbability: 0.2,
					WarningSignals:  []string{"load drift", "heat smell after lowering", "excess drum temperature"},
					MTBFHours:       24000,
				},
			},
			MaintenanceTasks: []domain.MaintenanceTask{
				{Name: "gearbox oil change", IntervalHours: 2000, DurationHours: 4, RequiredParts: []string{"ISO VG 220 gear oil", "drain plug seal"}},
				{Name: "brake adjustment and wear check", IntervalHours: 1000, DurationHours: 3, RequiredParts: []string{"brake lining kit"}},
			},
		},
		{
			Type:         "hydraulic_pump",
			Manufacturer: "Bosch Rexroth",
			Model:        "A4VSO 250",
			Specs: domain.EquipmentSpecs{
				RatedCapacity:       250,
				MaxOperatingHours:   30000,
				MaintenanceInterval: 750,
				MaxTemperature:      80,
				MaxVibration:        7,
				MTBFHours:           25000,
			},
			WearCurve: []domain.WearPoint{
				{Cycles: 0, Health: 100},
				{Cycles: 500000, Health: 90},
				{Cycles: 1200000, Health: 75},
				{Cycles: 2000000, Health: 55},
				{Cycles: 2600000, Health: 30},
			},
			FailureModes: []domain.FailureMode{
				{
					Name:            "swash plate wear",
					BaseProbability: 0.28,
					WarningSignals:  []string{"pressure ripple", "case drain flow increase", "vibration at pump frequency"},
					MTBFHours:       22000,
				},
				{
					Name:            "cavitation erosion",
					BaseProbability: 0.18,
					WarningSignals:  []string{"whining noise", "aerated return oil", "fluid overheating"},
					MTBFHours:       26000,
				},
			},
			MaintenanceTasks: []domain.MaintenanceTask{
				{Name: "hydraulic oil sampling", IntervalHours: 750, DurationHours: 1, RequiredParts: []string{"sample bottles"}},
				{Name: "filter element replacement", IntervalHours: 1500, DurationHours: 2, RequiredParts: []string{"pressure filter element", "return filter element"}},
			},
		},
		{
			Type:         "main_engine",
			Manufacturer: "Wärtsilä",
			Model:        "W32",
			Specs: domain.EquipmentSpecs{
				RatedCapacity:       4500,
				MaxOperatingHours:   60000,
				MaintenanceInterval: 2000,
				MaxTemperature:      95,
				MaxVibration:        11,
				MTBFHours:           45000,
			},
			WearCurve: []domain.WearPoint{
				{Cycles: 0, Health: 100},
				{Cycles: 5000, Health: 94},
				{Cycles: 15000, Health: 84},
				{Cycles: 30000, Health: 68},
				{Cycles: 45000, Health: 48},
				{Cycles: 60000, Health: 25},
			},
			FailureModes: []domain.FailureMode{
				{
					Name:            "cylinder liner wear",
					BaseProbability: 0.22,
					WarningSignals:  []string{"rising lube oil consumption", "blow-by increase", "exhaust temperature spread"},
					MTBFHours:       40000,
				},
				{
					Name:            "main bearing damage",
					BaseProbability: 0.12,
					WarningSignals:  []string{"crankcase vibration", "bearing temperature rise", "metal particles in oil"},
					MTBFHours:       48000,
				},
			},
			MaintenanceTasks: []domain.MaintenanceTask{
				{Name: "lube oil and filter service", IntervalHours: 2000, DurationHours: 8, RequiredParts: []string{"lube oil filters", "SAE 40 engine oil"}},
				{Name: "injector overhaul", IntervalHours: 6000, DurationHours: 16, RequiredParts: []string{"injector nozzle set", "sealing rings"}},
			},
		},
		{
			Type:         "diesel_generator",
			Manufacturer: "Caterpillar",
			Model:        "C32",
			Specs: domain.EquipmentSpecs{
				RatedCapacity:       940,
				MaxOperatingHours:   50000,
				MaintenanceInterval: 1000,
				MaxTemperature:      98,
				MaxVibration:        10,
				MTBFHours:           38000,
			},
			WearCurve: []domain.WearPoint{
				{Cycles: 0, Health: 100},
				{Cycles: 10000, Health: 90},
				{Cycles: 25000, Health: 76},
				{Cycles: 40000, Health: 55},
				{Cycles: 50000, Health: 35},
			},
			FailureModes: []domain.FailureMode{
				{
					Name:            "turbocharger fouling",
					BaseProbability: 0.26,
					WarningSignals:  []string{"exhaust temperature rise", "boost pressure drop", "surging"},
					MTBFHours:       30000,
				},
				{
					Name:            "alternator winding insulation breakdown",
					BaseProbability: 0.1,
					WarningSignals:  []string{"winding temperature alarms", "insulation resistance decline"},
					MTBFHours:       42000,
				},
			},
			MaintenanceTasks: []domain.MaintenanceTask{
				{Name: "fuel filter and oil service", IntervalHours: 1000, DurationHours: 4, RequiredParts: []string{"fuel filters", "oil filters", "15W-40 oil"}},
				{Name: "turbocharger inspection", IntervalHours: 4000, DurationHours: 10, RequiredParts: []string{"turbo gasket kit"}},
			},
		},
		{
			Type:         "bow_thruster",
			Manufacturer: "Kongsberg",
			Model:        "TT2200",
			Specs: domain.EquipmentSpecs{
				RatedCapacity:       1500,
				MaxOperatingHours:   35000,
				MaintenanceInterval: 1500,
				ExpectedLifeCycles:  60000,
				MaxTemperature:      75,
				MaxVibration:        8,
				MTBFHours:           30000,
			},
			WearCurve: []domain.WearPoint{
				{Cycles: 0, Health: 100},
				{Cycles: 10000, Health: 93},
				{Cycles: 25000, Health: 81},
				{Cycles: 45000, Health: 60},
				{Cycles: 60000, Health: 38},
			},
			FailureModes: []domain.FailureMode{
				{
					Name:            "propeller shaft seal leak",
					BaseProbability: 0.24,
					WarningSignals:  []string{"oil sheen at tunnel", "header tank level drop"},
					MTBFHours:       26000,
				},
				{
					Name:            "gear tooth pitting",
					BaseProbability: 0.16,
					WarningSignals:  []string{"vibration during thrust reversal", "gear noise", "particles in gear oil"},
					MTBFHours:       32000,
				},
			},
			MaintenanceTasks: []domain.MaintenanceTask{
				{Name: "gear oil analysis and top-up", IntervalHours: 1500, DurationHours: 3, RequiredParts: []string{"EP gear oil", "sample bottles"}},
				{Name: "seal and anode renewal (dry dock)", IntervalHours: 15000, DurationHours: 48, RequiredParts: []string{"shaft seal kit", "sacrificial anodes"}},
			},
		},
	}
}
