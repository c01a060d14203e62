package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/plantvision/leaf-disease-api/internal/predictor"
)

type PredictionRequest struct {
	Image string `json:"image"`
}

type Handler struct {
	maxUploadBytes int64
}

func NewHandler(maxUploadMB int) *Handler {
	return &Handler{
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "leaf-disease-api",
	})
}

// Predict accepts a JSON body carrying a base64-encoded image and
// responds with the detection verdict. Detection failures still return
// 200: errors ride in the result body, matching the CLI contract.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req PredictionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Image == "" {
		http.Error(w, "No image data provided. Use 'image' as the JSON field name", http.StatusBadRequest)
		return
	}

	result := predictor.Predict(req.Image)
	h.writeResult(w, requestID, result)
}

// PredictFromImage accepts a multipart upload and runs the same
// pipeline on the raw file bytes.
func (h *Handler) PredictFromImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "No image file provided. Use 'image' as the form field name", http.StatusBadRequest)
		return
	}
	defer file.Close()

	log.Printf("[%s] received file: %s, size: %d bytes", requestID, header.Filename, header.Size)

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	result := predictor.PredictBytes(imageBytes)
	h.writeResult(w, requestID, result)
}

func (h *Handler) writeResult(w http.ResponseWriter, requestID string, result predictor.Result) {
	if result.Success {
		log.Printf("[%s] predicted %s / %s (confidence %d)", requestID, result.Plant, result.Disease, result.Confidence)
	} else {
		log.Printf("[%s] prediction failed: %s", requestID, result.Error)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("[%s] error encoding response: %v", requestID, err)
	}
}
