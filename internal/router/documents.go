package router

import (
	"net/http"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/handlers"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/middleware"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"

	"github.com/gorilla/mux"
)

func NewRouter(docHandler *handlers.DocumentHandler, corsOrigins []string, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(corsOrigins))
	r.Use(middleware.Recovery(logger))

	// Routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Document analysis
	api.HandleFunc("/analyze", docHandler.AnalyzeDocument).Methods(http.MethodPost, http.MethodOptions)

	return r
}
