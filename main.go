package main

import (
	"net/http"

	"github.com/glrs/connect/internal/config"
	"github.com/glrs/connect/pkg/logger"
	"github.com/glrs/connect/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// The server only delivers the WASM client and its resources. All
// application state lives in the browser.
func main() {
	// .env is optional; the environment wins.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init()

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger.Log))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	router.PathPrefix("/").Handler(&app.Handler{
		Name:            "GLRS Recovery Connect",
		ShortName:       "GLRS Connect",
		Description:     "Peer support, daily check-ins and milestones for the recovery journey.",
		Styles:          []string{"/web/app.css"},
		ThemeColor:      "#3b82f6",
		BackgroundColor: "#f3f4f6",
	})

	logger.Log.WithFields(map[string]any{
		"addr": cfg.Addr,
		"env":  cfg.Env,
	}).Info("GLRS Connect listening")

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
