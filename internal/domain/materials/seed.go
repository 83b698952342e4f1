package materials

import "time"

func daysAgo(now time.Time, n int) time.Time { return now.AddDate(0, 0, -n) }

// Seed returns the plant's opening stock and this week's consumption.
func Seed(now time.Time) ([]Material, []Usage) {
	mats := []Material{
		{ID: 1, Name: "ARENA", Description: "Arena de río para concreto", CurrentStock: 1250.5, MinStock: 200, MaxStock: 1500,
			Unit: UnitM3, CostPerUnit: 45.50, Supplier: "Arenera del Norte S.A.", LastRestock: daysAgo(now, 5)},
		{ID: 2, Name: "AGUA", Description: "Agua potable para mezcla", CurrentStock: 800, MinStock: 100, MaxStock: 1000,
			Unit: UnitM3, CostPerUnit: 2.50, Supplier: "Municipalidad Local", LastRestock: daysAgo(now, 1)},
		{ID: 3, Name: "ADT1", Description: "Aditivo 1 - Acelerante de fraguado", CurrentStock: 850, MinStock: 200, MaxStock: 1000,
			Unit: UnitKg, CostPerUnit: 15.75, Supplier: "Químicos Constructores", LastRestock: daysAgo(now, 15)},
		{ID: 4, Name: "ADT2", Description: "Aditivo 2 - Plastificante", CurrentStock: 420.5, MinStock: 150, MaxStock: 800,
			Unit: UnitKg, CostPerUnit: 22.30, Supplier: "Químicos Constructores", LastRestock: daysAgo(now, 20)},
		{ID: 5, Name: "CMTO", Description: "Cemento Portland Tipo I", CurrentStock: 3200, MinStock: 1000, MaxStock: 5000,
			Unit: UnitKg, CostPerUnit: 0.35, Supplier: "Cementos Nacionales", LastRestock: daysAgo(now, 3)},
		{ID: 6, Name: "ADIC", Description: "Aditivo especial - Impermeabilizante", CurrentStock: 180, MinStock: 50, MaxStock: 300,
			Unit: UnitKg, CostPerUnit: 45.00, Supplier: "Tecnología en Concreto", LastRestock: daysAgo(now, 25)},
		{ID: 7, Name: "GRAVA", Description: "Grava triturada 3/4''", CurrentStock: 980, MinStock: 300, MaxStock: 1200,
			Unit: UnitM3, CostPerUnit: 65.00, Supplier: "Cantera Central", LastRestock: daysAgo(now, 7)},
	}
	usage := []Usage{
		{MaterialID: 1, Date: now, QuantityUsed: 45.5, Project: "Torre Norte", MixType: "C-30"},
		{MaterialID: 2, Date: now, QuantityUsed: 22.8, Project: "Centro Comercial Plaza", MixType: "C-25"},
		{MaterialID: 5, Date: now, QuantityUsed: 1200, Project: "Hospital Regional", MixType: "C-35"},
	}
	return mats, usage
}
