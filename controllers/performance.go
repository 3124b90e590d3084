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

type PerformanceController struct{}

// periodPerformanceQuery is shared by the yearly and temporal panels: average
// module scores and test-taker count per period.
const periodPerformanceQuery = `
	SELECT
		periodo,
		AVG(mod_razona_cuantitat_punt) AS avg_quant_reasoning,
		AVG(mod_lectura_critica_punt) AS avg_critical_reading,
		AVG(mod_ingles_punt) AS avg_english,
		AVG(mod_competen_ciudada_punt) AS avg_citizenship,
		COUNT(*) AS students
	FROM saber_pro
	GROUP BY periodo
	ORDER BY periodo`

func queryPeriodPerformance(db *sql.DB) ([]models.PeriodPerformance, error) {
	rows, err := db.Query(periodPerformanceQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.PeriodPerformance
	for rows.Next() {
		var p models.PeriodPerformance
		var quant, reading, english, citizen sql.NullFloat64
		if err := rows.Scan(&p.Periodo, &quant, &reading, &english, &citizen, &p.Students); err != nil {
			return nil, err
		}
		p.AvgQuantReasoning = quant.Float64
		p.AvgCriticalReading = reading.Float64
		p.AvgEnglish = english.Float64
		p.AvgCitizenship = citizen.Float64
		results = append(results, p)
	}
	return results, rows.Err()
}

// scoreOf selects one of the four averaged columns by score type key.
func scoreOf(p models.PeriodPerformance, score string) float64 {
	switch score {
	case "critical_reading":
		return p.AvgCriticalReading
	case "english":
		return p.AvgEnglish
	case "citizenship":
		return p.AvgCitizenship
	default:
		return p.AvgQuantReasoning
	}
}

// YearlyPerformance serves the average score per period for one module as a
// line chart with a trend interpretation.
func (pc PerformanceController) YearlyPerformance(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, ok := utils.ScoreParam(r)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Unknown score type"})
			return
		}
		label := models.ScoreLabels[score]

		results, err := queryPeriodPerformance(db)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get yearly performance"})
			return
		}
		title := fmt.Sprintf("Average %s Score by Year", label)
		if len(results) == 0 {
			utils.ResponseJSON(w, ChartResponse{
				Chart:          charts.Empty(title, "No data available"),
				Interpretation: "No data available for analysis",
			})
			return
		}

		points := make([]charts.Point, 0, len(results))
		for _, p := range results {
			points = append(points, charts.Point{Label: p.Periodo, Value: scoreOf(p, score)})
		}

		first := scoreOf(results[0], score)
		latest := scoreOf(results[len(results)-1], score)
		pctChange := 0.0
		if first != 0 {
			pctChange = (latest - first) / first * 100
		}
		trend := "increased"
		if pctChange < 0 {
			trend = "decreased"
		}
		interpretation := fmt.Sprintf(
			"From %s to %s, the average %s score has %s by %.1f%%. The latest average score is %.1f.",
			results[0].Periodo, results[len(results)-1].Periodo, label, trend,
			math.Abs(pctChange), latest)

		utils.ResponseJSON(w, ChartResponse{
			Chart:          charts.Line(title, "Year", "Average Score", label, points),
			Interpretation: interpretation,
		})
	}
}

// TemporalPatterns serves the score trend alongside the test-taker count, the
// two-row subplot of the original dashboard flattened into two series.
func (pc PerformanceController) TemporalPatterns(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, ok := utils.ScoreParam(r)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Unknown score type"})
			return
		}
		label := models.ScoreLabels[score]

		results, err := queryPeriodPerformance(db)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get temporal patterns"})
			return
		}
		title := fmt.Sprintf("Temporal Analysis: %s", label)
		if len(results) == 0 {
			utils.ResponseJSON(w, ChartResponse{
				Chart:          charts.Empty(title, "No data available"),
				Interpretation: "No data available for temporal analysis",
			})
			return
		}

		scorePoints := make([]charts.Point, 0, len(results))
		countPoints := make([]charts.Point, 0, len(results))
		for _, p := range results {
			scorePoints = append(scorePoints, charts.Point{Label: p.Periodo, Value: scoreOf(p, score)})
			countPoints = append(countPoints, charts.Point{Label: p.Periodo, Value: float64(p.Students)})
		}

		scoreTrend := scoreOf(results[len(results)-1], score) - scoreOf(results[0], score)
		studentTrend := results[len(results)-1].Students - results[0].Students
		scoreDir := "increased"
		if scoreTrend < 0 {
			scoreDir = "decreased"
		}
		studentDir := "increased"
		if studentTrend < 0 {
			studentDir = "decreased"
		}
		interpretation := fmt.Sprintf(
			"Over the analyzed period, %s scores have %s by %.1f points. The number of test takers has %s by %d students.",
			label, scoreDir, math.Abs(scoreTrend), studentDir, abs(studentTrend))

		chart := charts.MultiLine(title, "Period", "Average Score", []charts.Series{
			{Name: "Average Score", Data: scorePoints},
			{Name: "Number of Students", Data: countPoints},
		})
		utils.ResponseJSON(w, ChartResponse{Chart: chart, Interpretation: interpretation})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
