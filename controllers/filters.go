package controllers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/Manuelc122/saber-pro-dashboard/models"
	"github.com/Manuelc122/saber-pro-dashboard/utils"
)

type FiltersController struct{}

// ScoreOption pairs a score type key with its display label for the
// dropdown.
type ScoreOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// scoreOptions keeps the dropdown order stable; map iteration would shuffle
// it between requests.
var scoreOptions = []ScoreOption{
	{Value: "quant_reasoning", Label: "Quantitative Reasoning"},
	{Value: "critical_reading", Label: "Critical Reading"},
	{Value: "english", Label: "English"},
	{Value: "citizenship", Label: "Citizenship Skills"},
}

// Filters serves the values that drive the page's controls: the periods
// present in the data and the selectable score types.
func (fc FiltersController) Filters(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query("SELECT DISTINCT periodo FROM saber_pro ORDER BY periodo")
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get filter values"})
			return
		}
		defer rows.Close()

		periods := []string{}
		for rows.Next() {
			var p string
			if err := rows.Scan(&p); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to parse filter values"})
				return
			}
			periods = append(periods, p)
		}
		if err := rows.Err(); err != nil {
			log.Println("SQL Rows Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get filter values"})
			return
		}

		utils.ResponseJSON(w, struct {
			Periods    []string      `json:"periods"`
			ScoreTypes []ScoreOption `json:"score_types"`
		}{Periods: periods, ScoreTypes: scoreOptions})
	}
}

type HealthController struct{}

// Health reports whether the database is reachable and loaded.
func (hc HealthController) Health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			utils.RespondWithError(w, http.StatusServiceUnavailable, models.Error{Message: "Database unavailable"})
			return
		}
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM saber_pro").Scan(&count); err != nil {
			utils.RespondWithError(w, http.StatusServiceUnavailable, models.Error{Message: "saber_pro table missing"})
			return
		}
		utils.ResponseJSON(w, struct {
			Status string `json:"status"`
			Rows   int    `json:"rows"`
		}{Status: "ok", Rows: count})
	}
}
