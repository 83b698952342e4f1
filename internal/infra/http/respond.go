package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Spok95/concretrack/internal/domain/checklists"
	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/domain/orders"
	"github.com/Spok95/concretrack/internal/domain/plants"
	"github.com/Spok95/concretrack/internal/domain/projects"
	"github.com/Spok95/concretrack/internal/domain/recipes"
	"github.com/Spok95/concretrack/internal/infra/excel"
)

var errBadRequest = errors.New("bad request")

var notFound = []error{
	materials.ErrNotFound,
	orders.ErrNotFound,
	checklists.ErrNotFound,
	checklists.ErrItemNotFound,
	plants.ErrNotFound,
	plants.ErrNoProductionRecord,
	projects.ErrNotFound,
}

var invalid = []error{
	errBadRequest,
	materials.ErrNegativeStock,
	materials.ErrInvalidUsage,
	recipes.ErrInvalidVolume,
	orders.ErrProjectNotFound,
	orders.ErrUnsupportedMix,
	orders.ErrInvalidVolume,
	orders.ErrInvalidStatus,
	orders.ErrInvalidPriority,
	plants.ErrInvalidStatus,
	excel.ErrBadFile,
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func statusOf(err error) int {
	for _, e := range notFound {
		if errors.Is(err, e) {
			return http.StatusNotFound
		}
	}
	for _, e := range invalid {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code := statusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		log.Error("request failed", "err", err, "path", r.URL.Path, "request_id", RequestID(r.Context()))
		msg = "internal error"
	}
	writeJSON(w, code, errorBody{Error: msg, RequestID: RequestID(r.Context())})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func pathInt(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, name, raw)
	}
	return v, nil
}
