package controllers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/Manuelc122/saber-pro-dashboard/charts"
	"github.com/Manuelc122/saber-pro-dashboard/models"
	"github.com/Manuelc122/saber-pro-dashboard/utils"
)

type DepartmentController struct{}

// DepartmentAverages serves the average of the selected module score by
// institution department, descending, optionally filtered to one period.
func (dc DepartmentController) DepartmentAverages(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, ok := utils.ScoreParam(r)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Unknown score type"})
			return
		}
		periodo, ok := utils.PeriodoParam(r)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid periodo"})
			return
		}
		label := models.ScoreLabels[score]
		column := models.ScoreColumns[score]

		// The score column name comes from the fixed ScoreColumns map, never
		// from the request.
		query := fmt.Sprintf(`
			SELECT
				estu_inst_departamento,
				AVG(%s) AS avg_score,
				COUNT(*) AS students
			FROM saber_pro
			WHERE estu_inst_departamento IS NOT NULL AND estu_inst_departamento <> ''`, column)
		args := []interface{}{}
		if periodo != "" {
			query += " AND periodo = ?"
			args = append(args, periodo)
		}
		query += `
			GROUP BY estu_inst_departamento
			ORDER BY avg_score DESC`

		rows, err := db.Query(query, args...)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get department averages"})
			return
		}
		defer rows.Close()

		var results []models.DepartmentAverage
		for rows.Next() {
			var d models.DepartmentAverage
			var avg sql.NullFloat64
			if err := rows.Scan(&d.Departamento, &avg, &d.Students); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to parse department averages"})
				return
			}
			d.AvgScore = avg.Float64
			results = append(results, d)
		}
		if err := rows.Err(); err != nil {
			log.Println("SQL Rows Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get department averages"})
			return
		}

		title := fmt.Sprintf("Average %s Score by Department", label)
		if len(results) == 0 {
			utils.ResponseJSON(w, ChartResponse{
				Chart:          charts.Empty(title, "No data available"),
				Interpretation: "No data available for department analysis",
			})
			return
		}

		points := make([]charts.Point, 0, len(results))
		for _, d := range results {
			points = append(points, charts.Point{Label: d.Departamento, Value: d.AvgScore})
		}

		top := results[0]
		bottom := results[len(results)-1]
		interpretation := fmt.Sprintf(
			"Across %d departments, %s has the highest average %s score (%.1f) and %s the lowest (%.1f).",
			len(results), top.Departamento, label, top.AvgScore, bottom.Departamento, bottom.AvgScore)

		utils.ResponseJSON(w, ChartResponse{
			Chart:          charts.Bar(title, "Department", "Average Score", label, points),
			Interpretation: interpretation,
		})
	}
}
