package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Arbache-Consulting/arbache-go-sdk/models"
)

const serverVersion = "2.0.0"

// HealthCheckHandler reports liveness plus the size of the section registry.
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"version":   serverVersion,
		"sections":  len(models.SectionOrder),
		"timestamp": time.Now(),
	})
}
