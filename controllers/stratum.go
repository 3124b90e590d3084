package controllers

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/Manuelc122/saber-pro-dashboard/charts"
	"github.com/Manuelc122/saber-pro-dashboard/models"
	"github.com/Manuelc122/saber-pro-dashboard/utils"
)

type StratumController struct{}

// StratumAverages serves the average of the selected module score grouped by
// socioeconomic stratum and gender as a grouped bar chart.
func (sc StratumController) StratumAverages(db *sql.DB) http.HandlerFunc {
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

		query := fmt.Sprintf(`
			SELECT
				fami_estratovivienda,
				estu_genero,
				AVG(%s) AS avg_score,
				COUNT(*) AS students
			FROM saber_pro
			WHERE fami_estratovivienda LIKE 'Estrato %%'
			  AND estu_genero IN ('F', 'M')`, column)
		args := []interface{}{}
		if periodo != "" {
			query += " AND periodo = ?"
			args = append(args, periodo)
		}
		query += `
			GROUP BY fami_estratovivienda, estu_genero
			ORDER BY fami_estratovivienda, estu_genero`

		rows, err := db.Query(query, args...)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get stratum averages"})
			return
		}
		defer rows.Close()

		var results []models.StratumAverage
		for rows.Next() {
			var s models.StratumAverage
			var avg sql.NullFloat64
			if err := rows.Scan(&s.Estrato, &s.Genero, &avg, &s.Students); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to parse stratum averages"})
				return
			}
			s.AvgScore = avg.Float64
			results = append(results, s)
		}
		if err := rows.Err(); err != nil {
			log.Println("SQL Rows Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get stratum averages"})
			return
		}

		title := fmt.Sprintf("%s Score by Socioeconomic Stratum and Gender", label)
		if len(results) == 0 {
			utils.ResponseJSON(w, ChartResponse{
				Chart:          charts.Empty(title, "No data available"),
				Interpretation: "No data available for stratum analysis",
			})
			return
		}

		var femalePoints, malePoints []charts.Point
		for _, s := range results {
			point := charts.Point{Label: s.Estrato, Value: s.AvgScore}
			if s.Genero == "F" {
				femalePoints = append(femalePoints, point)
			} else {
				malePoints = append(malePoints, point)
			}
		}

		chart := charts.GroupedBar(title, "Stratum", "Average Score", []charts.Series{
			{Name: "Female", Color: charts.GenderFemaleColor, Data: femalePoints},
			{Name: "Male", Color: charts.GenderMaleColor, Data: malePoints},
		})
		utils.ResponseJSON(w, ChartResponse{
			Chart:          chart,
			Interpretation: stratumGapInterpretation(results, label),
		})
	}
}

// stratumGapInterpretation reports the spread between the highest and lowest
// stratum averages, genders pooled by simple mean.
func stratumGapInterpretation(results []models.StratumAverage, label string) string {
	byStratum := map[string][]float64{}
	for _, s := range results {
		byStratum[s.Estrato] = append(byStratum[s.Estrato], s.AvgScore)
	}
	var topName, bottomName string
	top, bottom := math.Inf(-1), math.Inf(1)
	for name, scores := range byStratum {
		var sum float64
		for _, v := range scores {
			sum += v
		}
		mean := sum / float64(len(scores))
		if mean > top {
			top, topName = mean, name
		}
		if mean < bottom {
			bottom, bottomName = mean, name
		}
	}
	return fmt.Sprintf(
		"%s students average the highest %s score (%.1f), %.1f points above %s (%.1f).",
		topName, label, top, top-bottom, bottomName, bottom)
}
