package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/recipes"
	"github.com/Spok95/concretrack/internal/infra/excel"
)

const maxUpload = 10 << 20

func (a *api) inventoryRoutes(r *mux.Router) {
	r.HandleFunc("/materials", a.listMaterials).Methods(http.MethodGet)
	r.HandleFunc("/materials/{id:[0-9]+}", a.getMaterial).Methods(http.MethodGet)
	r.HandleFunc("/materials/{id:[0-9]+}/stock", a.updateStock).Methods(http.MethodPut)
	r.HandleFunc("/materials/{id:[0-9]+}/usage", a.usageStats).Methods(http.MethodGet)
	r.HandleFunc("/materials/{id:[0-9]+}/usage", a.recordUsage).Methods(http.MethodPost)
	r.HandleFunc("/summary", a.inventorySummary).Methods(http.MethodGet)
	r.HandleFunc("/requirements", a.requirements).Methods(http.MethodGet)
	r.HandleFunc("/export", a.exportInventory).Methods(http.MethodGet)
	r.HandleFunc("/import", a.importInventory).Methods(http.MethodPost)
}

func (a *api) listMaterials(w http.ResponseWriter, r *http.Request) {
	st := r.URL.Query().Get("status")
	if st == "" {
		writeJSON(w, http.StatusOK, a.Materials.All())
		return
	}
	if !materials.Status(st).Valid() {
		writeError(w, r, a.Log, fmt.Errorf("%w: unknown status %q", errBadRequest, st))
		return
	}
	writeJSON(w, http.StatusOK, a.Materials.ByStatus(materials.Status(st)))
}

func (a *api) getMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	m, err := a.Materials.Get(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type stockRequest struct {
	CurrentStock *float64 `json:"current_stock"`
}

func (a *api) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	var req stockRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	if req.CurrentStock == nil {
		writeError(w, r, a.Log, fmt.Errorf("%w: current_stock is required", errBadRequest))
		return
	}

	m, err := a.Materials.UpdateStock(id, *req.CurrentStock)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	a.Metrics.StockUpdates.WithLabelValues(string(m.Status)).Inc()
	a.Log.Info("stock updated", "material_id", m.ID, "stock", m.CurrentStock, "status", m.Status)
	a.Alerts.Check(r.Context(), m)
	writeJSON(w, http.StatusOK, m)
}

func (a *api) usageStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	st, err := a.Materials.UsageStats(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type usageRequest struct {
	QuantityUsed float64   `json:"quantity_used"`
	Project      string    `json:"project"`
	MixType      string    `json:"mix_type"`
	Date         time.Time `json:"date"`
}

func (a *api) recordUsage(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	var req usageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	u := materials.Usage{
		MaterialID:   id,
		Date:         req.Date,
		QuantityUsed: req.QuantityUsed,
		Project:      req.Project,
		MixType:      req.MixType,
	}
	if err := a.Materials.RecordUsage(u); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	a.Log.Info("usage recorded", "material_id", id, "quantity", req.QuantityUsed)
	st, err := a.Materials.UsageStats(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (a *api) inventorySummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Materials.Summary())
}

type requirementsResponse struct {
	MixType      string                `json:"mix_type"`
	Volume       float64               `json:"volume"`
	Requirements []recipes.Requirement `json:"requirements"`
	Availability recipes.Availability  `json:"availability"`
}

func (a *api) computeRequirements(mix string, volume float64) (requirementsResponse, error) {
	reqs, ok, err := a.Recipes.ComputeRequirements(mix, volume)
	if err != nil {
		return requirementsResponse{}, err
	}
	if !ok {
		return requirementsResponse{}, fmt.Errorf("%w: no recipe for mix type %q", errBadRequest, mix)
	}
	return requirementsResponse{
		MixType:      mix,
		Volume:       volume,
		Requirements: reqs,
		Availability: a.Recipes.CheckAvailability(reqs),
	}, nil
}

func (a *api) requirements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	volume, err := strconv.ParseFloat(q.Get("volume"), 64)
	if err != nil {
		writeError(w, r, a.Log, fmt.Errorf("%w: invalid volume %q", errBadRequest, q.Get("volume")))
		return
	}
	resp, err := a.computeRequirements(q.Get("mix_type"), volume)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) exportInventory(w http.ResponseWriter, r *http.Request) {
	data, err := excel.ExportInventory(a.Materials.All())
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	name := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(data)
}

type importResponse struct {
	Updated   int                  `json:"updated"`
	Materials []materials.Material `json:"materials"`
}

// importInventory applies a stock count. Every id is checked before any
// stock is written, so an unknown id leaves the ledger untouched.
func (a *api) importInventory(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUpload))
	if err != nil {
		writeError(w, r, a.Log, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	counts, err := excel.ParseStockCounts(data)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	for _, c := range counts {
		if _, err := a.Materials.Get(c.ID); err != nil {
			writeError(w, r, a.Log, fmt.Errorf("row %d: material %d: %w", c.Row, c.ID, err))
			return
		}
	}

	out := make([]materials.Material, 0, len(counts))
	for _, c := range counts {
		m, err := a.Materials.UpdateStock(c.ID, c.Stock)
		if err != nil {
			writeError(w, r, a.Log, fmt.Errorf("row %d: %w", c.Row, err))
			return
		}
		a.Metrics.StockUpdates.WithLabelValues(string(m.Status)).Inc()
		out = append(out, m)
	}
	a.Log.Info("stock count imported", "rows", len(out))
	a.Alerts.CheckBatch(r.Context(), out)
	writeJSON(w, http.StatusOK, importResponse{Updated: len(out), Materials: out})
}
