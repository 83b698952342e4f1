package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Spok95/concretrack/internal/domain/checklists"
)

func (a *api) checklistRoutes(r *mux.Router) {
	r.HandleFunc("", a.listChecklists).Methods(http.MethodGet)
	r.HandleFunc("", a.createChecklist).Methods(http.MethodPost)
	r.HandleFunc("/today", a.todaysChecklists).Methods(http.MethodGet)
	r.HandleFunc("/summary", a.checklistSummary).Methods(http.MethodGet)
	r.HandleFunc("/categories", a.checklistCategories).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", a.getChecklist).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}/items/{item_id:[0-9]+}", a.setItem).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}/complete", a.completeChecklist).Methods(http.MethodPost)
}

func (a *api) listChecklists(w http.ResponseWriter, r *http.Request) {
	st := r.URL.Query().Get("status")
	if st == "" {
		writeJSON(w, http.StatusOK, a.Checklists.All())
		return
	}
	if !checklists.Status(st).Valid() {
		writeError(w, r, a.Log, fmt.Errorf("%w: unknown status %q", errBadRequest, st))
		return
	}
	writeJSON(w, http.StatusOK, a.Checklists.ByStatus(checklists.Status(st)))
}

func (a *api) todaysChecklists(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Checklists.Today())
}

func (a *api) checklistSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Checklists.Summary())
}

func (a *api) checklistCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Checklists.Categories())
}

func (a *api) getChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	cl, err := a.Checklists.Get(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, cl)
}

func (a *api) createChecklist(w http.ResponseWriter, r *http.Request) {
	var req checklists.CreateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	cl := a.Checklists.Create(req)
	a.Metrics.ChecklistsOpened.Inc()
	a.Log.Info("checklist created", "checklist_id", cl.ID, "order_id", cl.OrderID, "items", len(cl.Items))
	writeJSON(w, http.StatusCreated, cl)
}

type itemRequest struct {
	Completed bool `json:"completed"`
}

func (a *api) setItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["item_id"])
	if err != nil {
		writeError(w, r, a.Log, fmt.Errorf("%w: invalid item_id", errBadRequest))
		return
	}
	var req itemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	cl, err := a.Checklists.SetItemCompletion(id, itemID, req.Completed)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	if req.Completed {
		a.Metrics.ItemsChecked.Inc()
	}
	a.Log.Info("checklist item updated", "checklist_id", id, "item_id", itemID, "completed", req.Completed)
	writeJSON(w, http.StatusOK, cl)
}

func (a *api) completeChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	cl, err := a.Checklists.Complete(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	a.Log.Info("checklist completed", "checklist_id", id)
	writeJSON(w, http.StatusOK, cl)
}
