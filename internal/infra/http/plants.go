package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Spok95/concretrack/internal/domain/plants"
)

func (a *api) plantRoutes(r *mux.Router) {
	r.HandleFunc("", a.listPlants).Methods(http.MethodGet)
	r.HandleFunc("/active", a.activePlants).Methods(http.MethodGet)
	r.HandleFunc("/summary", a.plantSummary).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", a.getPlant).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}/status", a.updatePlantStatus).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}/production", a.plantProduction).Methods(http.MethodGet)
}

func (a *api) listPlants(w http.ResponseWriter, r *http.Request) {
	st := r.URL.Query().Get("status")
	if st == "" {
		writeJSON(w, http.StatusOK, a.Plants.All())
		return
	}
	if !plants.Status(st).Valid() {
		writeError(w, r, a.Log, plants.ErrInvalidStatus)
		return
	}
	writeJSON(w, http.StatusOK, a.Plants.ByStatus(plants.Status(st)))
}

func (a *api) activePlants(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Plants.Active())
}

func (a *api) plantSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Plants.Summary())
}

func (a *api) getPlant(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	p, err := a.Plants.Get(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type plantStatusRequest struct {
	Status plants.Status `json:"status"`
}

func (a *api) updatePlantStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	var req plantStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	p, err := a.Plants.UpdateStatus(id, req.Status)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	a.Log.Info("plant status updated", "plant_id", p.ID, "status", p.Status)
	writeJSON(w, http.StatusOK, p)
}

func (a *api) plantProduction(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	prod, err := a.Plants.Production(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, prod)
}
