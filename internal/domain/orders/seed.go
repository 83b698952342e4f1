package orders

import "time"

func Seed(now time.Time) []Order {
	completedAt := now.Add(-6 * time.Hour)
	return []Order{
		{ID: 1, ProjectID: 101, ProjectName: "Torre Norte", Client: "Constructora ABC", MixType: "C-30", Volume: 45.5,
			Status: StatusScheduled, ScheduledTime: now.Add(3 * time.Hour), Address: "Av. Constructores 123, Zona Industrial",
			Priority: PriorityHigh, AssignedPlant: "Planta 1", EstimatedDuration: 4.5, CreatedAt: now.AddDate(0, 0, -1),
			Notes: "Requiere bomba de 42 metros"},
		{ID: 2, ProjectID: 102, ProjectName: "Centro Comercial Plaza", Client: "Desarrolladora XYZ", MixType: "C-25", Volume: 28,
			Status: StatusInProgress, ScheduledTime: now, Address: "Centro Ciudad, Calle Principal 456",
			Priority: PriorityMedium, AssignedPlant: "Planta 2", EstimatedDuration: 3, CreatedAt: now.Add(-6 * time.Hour),
			Notes: "Coordinación con jefe de obra necesaria"},
		{ID: 3, ProjectID: 103, ProjectName: "Residencial Jardines", Client: "Inmobiliaria Sur", MixType: "C-20", Volume: 15,
			Status: StatusCompleted, ScheduledTime: now.Add(-8 * time.Hour), Address: "Sector Residencial Norte, Manzana 5",
			Priority: PriorityLow, AssignedPlant: "Planta 3", EstimatedDuration: 2, CreatedAt: now.AddDate(0, 0, -1),
			CompletedAt: &completedAt, Notes: "Vaciado completado satisfactoriamente"},
		{ID: 4, ProjectID: 104, ProjectName: "Hospital Regional", Client: "Gobierno Estatal", MixType: "C-35", Volume: 60,
			Status: StatusPreparing, ScheduledTime: now.AddDate(0, 0, 1), Address: "Zona Médica, Av. Salud 789",
			Priority: PriorityHigh, AssignedPlant: "Planta 1", EstimatedDuration: 6, CreatedAt: now.Add(-2 * time.Hour),
			Notes: "Concreto especial para cimientos hospitalarios"},
		{ID: 5, ProjectID: 105, ProjectName: "Edificio Corporativo", Client: "Empresa Global S.A.", MixType: "C-30", Volume: 35,
			Status: StatusCancelled, ScheduledTime: now.AddDate(0, 0, 2), Address: "Distrito Financiero, Torre B",
			Priority: PriorityMedium, AssignedPlant: "Planta 4", EstimatedDuration: 4, CreatedAt: now.AddDate(0, 0, -3),
			Notes: "Cancelado por condiciones climáticas"},
	}
}
