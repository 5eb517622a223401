package rest

import (
	"net/http"
	"os"

	"elimpostor/internal/service"
	"elimpostor/internal/transport/rest/handler"
	"elimpostor/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService *service.SessionService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(c.SessionService)
	shareHandler := handler.NewShareHandler()
	wsHandler := ws.NewHandler(c.WSHub, c.SessionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{code}", sessionHandler.End).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/join", sessionHandler.Join).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/start", sessionHandler.StartRound).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/next-round", sessionHandler.NextRound).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/reveal", sessionHandler.Reveal).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/leave", sessionHandler.Leave).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/players/{playerId}", sessionHandler.Rename).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{code}/qr", shareHandler.JoinQR).Methods("GET")

	// WebSocket subscription
	v1.HandleFunc("/ws/sessions/{code}", wsHandler.Subscribe).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
