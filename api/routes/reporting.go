package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/monitoring"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.wrote {
		return
	}
	r.status = code
	r.wrote = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wrote = true
	return r.ResponseWriter.Write(b)
}

// Reporting wraps next so that panics and 5xx answers reach rep. A panic is
// answered with 500 unless the handler already started its response.
func Reporting(next http.Handler, rep monitoring.Reporter, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		tags := map[string]string{"handler": name, "method": r.Method}
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				rep.Report(r.Context(), fmt.Errorf("panic: %v", v), tags)
				if !rec.wrote {
					writeJSON(rec, http.StatusInternalServerError, errorBody{Error: "internal error"})
				}
			}
		}()
		next.ServeHTTP(rec, r)
		if rec.status >= http.StatusInternalServerError {
			rep.Report(r.Context(), errors.New(http.StatusText(rec.status)), tags)
		}
	})
}
