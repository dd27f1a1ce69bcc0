package routes

import (
	"net/http"
	"time"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/model"
	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/planlog"
)

// NewLogHandler returns an HTTP handler exposing the planning history via
// GET /api/plans/logs. Requests must include an Authorization header with
// "Bearer <token>" when token is non-empty.
func NewLogHandler(store planlog.Store, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		params := r.URL.Query()
		q := planlog.Query{
			Kind:       params.Get("kind"),
			Category:   model.VehicleCategory(params.Get("category")),
			VehicleID:  params.Get("vehicle_id"),
			Infeasible: params.Get("infeasible") == "true",
		}
		for name, dst := range map[string]*time.Time{"start": &q.Start, "end": &q.End} {
			s := params.Get(name)
			if s == "" {
				continue
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{Error: name + ": " + err.Error()})
				return
			}
			*dst = t
		}
		records, err := store.Query(r.Context(), q)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}
		if records == nil {
			records = []planlog.Record{}
		}
		writeJSON(w, http.StatusOK, records)
	})
}
