package plants

import "time"

func Seed(now time.Time) ([]Plant, []Production) {
	plants := []Plant{
		{ID: 1, Name: "Planta 1", Location: "VITTRIO", Capacity: 17, Status: StatusActive, Manager: "Ing. KJDABJSKDA",
			Phone: "+1-555-0101", Email: "PLANTA1@concreto.com", MixesAvailable: []string{"C-20", "C-25", "C-30", "C-35"},
			Transport: "Bombeo", LastMaintenance: now.AddDate(0, 0, -15)},
		{ID: 2, Name: "Planta 2", Location: "VITTRIO", Capacity: 24, Status: StatusActive, Manager: "Ing. MANUELA",
			Phone: "+1-555-0102", Email: "PLANTA2@concreto.com", MixesAvailable: []string{"C-20", "C-25"},
			Transport: "Torregrúa", LastMaintenance: now.AddDate(0, 0, -30)},
		{ID: 3, Name: "Planta 3", Location: "VIVALTA", Capacity: 17, Status: StatusMaintenance, Manager: "Ing. JUAN PULGARIN",
			Phone: "+1-555-0103", Email: "PLANTA3@concreto.com", MixesAvailable: []string{"C-20", "C-30"},
			Transport: "Placing boom", LastMaintenance: now.AddDate(0, 0, -5)},
		{ID: 4, Name: "Planta 4", Location: "N/A", Capacity: 30, Status: StatusInactive, Manager: "SIN REGENTE",
			Phone: "+1-555-0104", Email: "PLANTA4@concreto.com", MixesAvailable: []string{"C-25", "C-30", "C-35"},
			Transport: "N/A", LastMaintenance: now.AddDate(0, 0, -45)},
	}
	production := []Production{
		{PlantID: 1, Date: now, TotalProduction: 450.5, TrucksDispatched: 22,
			MixesProduced: map[string]float64{"C-20": 120, "C-25": 180.5, "C-30": 100, "C-35": 50}},
		{PlantID: 2, Date: now, TotalProduction: 320, TrucksDispatched: 18,
			MixesProduced: map[string]float64{"C-20": 200, "C-25": 120}},
	}
	return plants, production
}
