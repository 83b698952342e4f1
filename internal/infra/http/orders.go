package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Spok95/concretrack/internal/domain/orders"
)

func (a *api) orderRoutes(r *mux.Router) {
	r.HandleFunc("", a.listOrders).Methods(http.MethodGet)
	r.HandleFunc("", a.createOrder).Methods(http.MethodPost)
	r.HandleFunc("/today", a.todaysOrders).Methods(http.MethodGet)
	r.HandleFunc("/summary", a.orderSummary).Methods(http.MethodGet)
	r.HandleFunc("/projects", a.availableProjects).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", a.getOrder).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}/status", a.updateOrderStatus).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}/requirements", a.orderRequirements).Methods(http.MethodGet)
}

func (a *api) listOrders(w http.ResponseWriter, r *http.Request) {
	st := r.URL.Query().Get("status")
	if st == "" {
		writeJSON(w, http.StatusOK, a.Orders.All())
		return
	}
	if !orders.Status(st).Valid() {
		writeError(w, r, a.Log, fmt.Errorf("%w: %q", orders.ErrInvalidStatus, st))
		return
	}
	writeJSON(w, http.StatusOK, a.Orders.ByStatus(orders.Status(st)))
}

func (a *api) todaysOrders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Orders.Today())
}

func (a *api) orderSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.Orders.Summary())
}

func (a *api) availableProjects(w http.ResponseWriter, r *http.Request) {
	ps, err := a.Orders.AvailableProjects(r.Context())
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (a *api) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	o, err := a.Orders.Get(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (a *api) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orders.CreateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	o, err := a.Orders.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	a.Metrics.OrdersCreated.Inc()
	a.Log.Info("order created", "order_id", o.ID, "project_id", o.ProjectID, "mix_type", o.MixType, "volume", o.Volume)
	writeJSON(w, http.StatusCreated, o)
}

type orderStatusRequest struct {
	Status orders.Status `json:"status"`
}

func (a *api) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	var req orderStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	o, err := a.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	a.Metrics.OrderStatus.WithLabelValues(string(o.Status)).Inc()
	a.Log.Info("order status updated", "order_id", o.ID, "status", o.Status)
	writeJSON(w, http.StatusOK, o)
}

func (a *api) orderRequirements(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	o, err := a.Orders.Get(id)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	resp, err := a.computeRequirements(o.MixType, o.Volume)
	if err != nil {
		writeError(w, r, a.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
