package checklists

import "time"

func Seed(now time.Time) []Checklist {
	completedAt := now.Add(-6 * time.Hour)
	return []Checklist{
		{ID: 1, OrderID: 2, ProjectName: "Centro Comercial Plaza", Supervisor: "Ing. Roberto Jiménez",
			ScheduledTime: now, Status: StatusInProgress, CreatedAt: now.Add(-2 * time.Hour),
			Items: []Item{
				{ID: 1, Category: CategoryPrePour, Description: "Verificar limpieza y preparación del área de vaciado", Completed: true, Notes: "Área limpia y preparada correctamente"},
				{ID: 2, Category: CategoryPrePour, Description: "Confirmar disponibilidad de mezcla C-25", Completed: true, Notes: "Mezcla confirmada en Planta 2"},
				{ID: 3, Category: CategoryPrePour, Description: "Verificar equipo de bombeo y mangueras", Completed: true, Notes: "Equipo en óptimas condiciones"},
				{ID: 4, Category: CategorySafety, Description: "Verificar EPP del personal (casco, chaleco, botas)", Completed: true, Notes: "Todo el personal cuenta con EPP completo"},
				{ID: 5, Category: CategorySafety, Description: "Delimitación y señalización del área de trabajo", Notes: "Pendiente colocar conos de seguridad"},
				{ID: 6, Category: CategoryQuality, Description: "Toma de muestra para cilindros de prueba", Notes: "Programado para inicio del vaciado"},
			}},
		{ID: 2, OrderID: 1, ProjectName: "Torre Norte", Supervisor: "Ing. Carlos Mendoza",
			ScheduledTime: now.Add(2 * time.Hour), Status: StatusPending, CreatedAt: now.AddDate(0, 0, -1),
			Items: []Item{
				{ID: 1, Category: CategoryPrePour, Description: "Verificar limpieza y preparación del área de vaciado"},
				{ID: 2, Category: CategoryPrePour, Description: "Confirmar disponibilidad de mezcla C-30", Completed: true, Notes: "Mezcla confirmada en Planta 1"},
				{ID: 3, Category: CategoryPrePour, Description: "Verificar equipo de bombeo de 42 metros", Completed: true, Notes: "Bomba confirmada y en ruta"},
			}},
		{ID: 3, OrderID: 3, ProjectName: "Residencial Jardines", Supervisor: "Téc. Ana López",
			ScheduledTime: now.Add(-8 * time.Hour), Status: StatusCompleted, CreatedAt: now.AddDate(0, 0, -1), CompletedAt: &completedAt,
			Items: []Item{
				{ID: 1, Category: CategoryPrePour, Description: "Verificar limpieza y preparación del área de vaciado", Completed: true, Notes: "Área preparada según especificaciones"},
				{ID: 2, Category: CategoryPrePour, Description: "Confirmar disponibilidad de mezcla C-20", Completed: true, Notes: "Mezcla entregada según programación"},
				{ID: 3, Category: CategorySafety, Description: "Verificar EPP del personal", Completed: true, Notes: "Todo el personal con EPP adecuado"},
				{ID: 4, Category: CategoryQuality, Description: "Toma de muestra para cilindros de prueba", Completed: true, Notes: "3 cilindros tomados correctamente"},
				{ID: 5, Category: CategoryPostPour, Description: "Limpieza final del área", Completed: true, Notes: "Área limpiada y equipos guardados"},
			}},
	}
}
