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

type GenderController struct{}

const genderPerformanceQuery = `
	SELECT
		periodo,
		estu_genero,
		AVG(mod_razona_cuantitat_punt) AS avg_quant_reasoning,
		AVG(mod_lectura_critica_punt) AS avg_critical_reading,
		AVG(mod_ingles_punt) AS avg_english,
		AVG(mod_competen_ciudada_punt) AS avg_citizenship,
		COUNT(*) AS students
	FROM saber_pro
	WHERE estu_genero IN ('F', 'M')
	GROUP BY periodo, estu_genero
	ORDER BY periodo, estu_genero`

func queryGenderPerformance(db *sql.DB) ([]models.GenderPerformance, error) {
	rows, err := db.Query(genderPerformanceQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.GenderPerformance
	for rows.Next() {
		var g models.GenderPerformance
		var quant, reading, english, citizen sql.NullFloat64
		if err := rows.Scan(&g.Periodo, &g.Genero, &quant, &reading, &english, &citizen, &g.Students); err != nil {
			return nil, err
		}
		g.AvgQuantReasoning = quant.Float64
		g.AvgCriticalReading = reading.Float64
		g.AvgEnglish = english.Float64
		g.AvgCitizenship = citizen.Float64
		results = append(results, g)
	}
	return results, rows.Err()
}

func genderScoreOf(g models.GenderPerformance, score string) float64 {
	switch score {
	case "critical_reading":
		return g.AvgCriticalReading
	case "english":
		return g.AvgEnglish
	case "citizenship":
		return g.AvgCitizenship
	default:
		return g.AvgQuantReasoning
	}
}

// GenderDistribution serves one line per gender across periods for the
// selected module, with the latest-period gap as interpretation.
func (gc GenderController) GenderDistribution(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, ok := utils.ScoreParam(r)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Unknown score type"})
			return
		}
		label := models.ScoreLabels[score]

		results, err := queryGenderPerformance(db)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get gender distribution"})
			return
		}
		title := fmt.Sprintf("Gender Comparison: %s Scores", label)
		if len(results) == 0 {
			utils.ResponseJSON(w, ChartResponse{
				Chart:          charts.Empty(title, "No data available"),
				Interpretation: "No data available for gender analysis",
			})
			return
		}

		var femalePoints, malePoints []charts.Point
		for _, g := range results {
			point := charts.Point{Label: g.Periodo, Value: genderScoreOf(g, score)}
			if g.Genero == "F" {
				femalePoints = append(femalePoints, point)
			} else {
				malePoints = append(malePoints, point)
			}
		}

		interpretation := genderGapInterpretation(results, score, label)
		chart := charts.MultiLine(title, "Year", "Average Score", []charts.Series{
			{Name: "Female", Color: charts.GenderFemaleColor, Data: femalePoints},
			{Name: "Male", Color: charts.GenderMaleColor, Data: malePoints},
		})
		utils.ResponseJSON(w, ChartResponse{Chart: chart, Interpretation: interpretation})
	}
}

// genderGapInterpretation compares female and male averages in the most
// recent period. Rows arrive ordered by periodo, so the latest period sits at
// the tail.
func genderGapInterpretation(results []models.GenderPerformance, score, label string) string {
	latest := results[len(results)-1].Periodo
	var female, male float64
	var haveFemale, haveMale bool
	for _, g := range results {
		if g.Periodo != latest {
			continue
		}
		if g.Genero == "F" {
			female = genderScoreOf(g, score)
			haveFemale = true
		} else if g.Genero == "M" {
			male = genderScoreOf(g, score)
			haveMale = true
		}
	}
	if !haveFemale || !haveMale {
		return fmt.Sprintf("Not enough data to compare genders in the most recent period (%s).", latest)
	}
	diff := female - male
	direction := "higher"
	if diff < 0 {
		direction = "lower"
	}
	return fmt.Sprintf(
		"In the most recent period (%s), female students scored %.1f points %s than male students in %s.",
		latest, math.Abs(diff), direction, label)
}
