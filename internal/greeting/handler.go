// Package greeting serves the static hello endpoint that sits next to the
// viewer. It shares no state with the UI.
package greeting

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio/internal/logging"
)

const (
	HelloPath    = "/api/hello"
	HelloMessage = "hello hi"
)

type helloResponse struct {
	Message string `json:"message"`
}

// NewHandler routes GET /api/hello. Other methods on the path get 405 and
// unknown paths 404.
func NewHandler(logger *logging.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+HelloPath, handleHello)
	return logRequests(logger, mux)
}

func handleHello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, helloResponse{Message: HelloMessage})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func logRequests(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		observer := &statusObserver{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(observer, r)
		logger.Info("http request",
			logging.Field("method", r.Method),
			logging.Field("path", r.URL.Path),
			logging.Field("status", observer.status),
			logging.Field("duration", time.Since(started)),
			logging.Field("remote", r.RemoteAddr),
		)
	})
}

type statusObserver struct {
	http.ResponseWriter
	status int
}

func (o *statusObserver) WriteHeader(status int) {
	o.status = status
	o.ResponseWriter.WriteHeader(status)
}
