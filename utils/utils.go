package utils

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Manuelc122/saber-pro-dashboard/models"
)

func RespondWithError(w http.ResponseWriter, status int, error models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(error); err != nil {
		log.Printf("Failed to encode error JSON: %v", err)
	}
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
	}
}

// ScoreParam reads and validates the score query parameter, defaulting to
// quantitative reasoning as the dashboard's initial selection does.
func ScoreParam(r *http.Request) (string, bool) {
	score := r.URL.Query().Get("score")
	if score == "" {
		score = "quant_reasoning"
	}
	_, ok := models.ScoreColumns[score]
	return score, ok
}

// PeriodoParam reads the optional period filter. Periods in the dataset are
// strings like "2022" or "20221"; anything non-numeric is rejected.
func PeriodoParam(r *http.Request) (string, bool) {
	periodo := strings.TrimSpace(r.URL.Query().Get("periodo"))
	if periodo == "" {
		return "", true
	}
	if _, err := strconv.Atoi(periodo); err != nil {
		return "", false
	}
	return periodo, true
}

func StrToInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	return strconv.Atoi(s)
}
