package etl

import (
	"database/sql"

	"github.com/pkg/errors"
)

// PeriodCount is one row of the period distribution.
type PeriodCount struct {
	Periodo string `json:"periodo"`
	Count   int    `json:"count"`
}

// PeriodScores holds rounded average scores for one period.
type PeriodScores struct {
	Periodo    string  `json:"periodo"`
	AvgMath    float64 `json:"avg_math"`
	AvgReading float64 `json:"avg_reading"`
	AvgEnglish float64 `json:"avg_english"`
}

// BasicStats summarizes a finished load: how many rows per period and the
// rounded average scores. Printed by cmd/load-data after a full run.
type BasicStats struct {
	PeriodDistribution []PeriodCount  `json:"period_distribution"`
	AverageScores      []PeriodScores `json:"average_scores"`
}

func GetBasicStats(db *sql.DB) (*BasicStats, error) {
	stats := &BasicStats{}

	rows, err := db.Query(`
		SELECT periodo, COUNT(*) AS count
		FROM saber_pro
		GROUP BY periodo
		ORDER BY periodo`)
	if err != nil {
		return nil, errors.Wrap(err, "period distribution")
	}
	defer rows.Close()
	for rows.Next() {
		var pc PeriodCount
		if err := rows.Scan(&pc.Periodo, &pc.Count); err != nil {
			return nil, errors.Wrap(err, "scan period distribution")
		}
		stats.PeriodDistribution = append(stats.PeriodDistribution, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "period distribution rows")
	}

	scoreRows, err := db.Query(`
		SELECT
			periodo,
			ROUND(AVG(mod_razona_cuantitat_punt), 2) AS avg_math,
			ROUND(AVG(mod_lectura_critica_punt), 2) AS avg_reading,
			ROUND(AVG(mod_ingles_punt), 2) AS avg_english
		FROM saber_pro
		GROUP BY periodo
		ORDER BY periodo`)
	if err != nil {
		return nil, errors.Wrap(err, "average scores")
	}
	defer scoreRows.Close()
	for scoreRows.Next() {
		var ps PeriodScores
		var math, reading, english sql.NullFloat64
		if err := scoreRows.Scan(&ps.Periodo, &math, &reading, &english); err != nil {
			return nil, errors.Wrap(err, "scan average scores")
		}
		ps.AvgMath = math.Float64
		ps.AvgReading = reading.Float64
		ps.AvgEnglish = english.Float64
		stats.AverageScores = append(stats.AverageScores, ps)
	}
	if err := scoreRows.Err(); err != nil {
		return nil, errors.Wrap(err, "average score rows")
	}

	return stats, nil
}
