package main

import (
	"log"
	"net/http"
	"os"

	"github.com/plantvision/leaf-disease-api/internal/config"
	"github.com/plantvision/leaf-disease-api/internal/handlers"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/default.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	handler := handlers.NewHandler(cfg.MaxUploadMB)

	wrap := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if cfg.CORSEnabled {
		wrap = enableCORS
	}

	http.HandleFunc("/health", wrap(handler.Health))
	http.HandleFunc("/predict", wrap(handler.Predict))
	http.HandleFunc("/predict/image", wrap(handler.PredictFromImage))

	log.Printf("Server starting on port %s", cfg.Port)
	log.Println("Endpoints:")
	log.Println("  GET  /health        - Health check")
	log.Println("  POST /predict       - Predict from base64 JSON payload")
	log.Println("  POST /predict/image - Predict from image upload")
	log.Printf("\n💡 Upload test: curl -X POST -F \"image=@leaf.jpg\" http://localhost:%s/predict/image\n\n", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
