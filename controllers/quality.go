package controllers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/Manuelc122/saber-pro-dashboard/models"
	"github.com/Manuelc122/saber-pro-dashboard/utils"
)

type QualityController struct{}

// dataQualityQuery surfaces every §3 data-quality expectation as one counted
// violation column. NULLs are absent values, not violations; only present
// values outside the enumerated domain are counted. Scores are valid in
// [0, 300].
const dataQualityQuery = `
	SELECT
		COUNT(*) AS total_rows,
		SUM(CASE WHEN mod_razona_cuantitat_punt NOT BETWEEN 0 AND 300 THEN 1 ELSE 0 END) AS quant_out,
		SUM(CASE WHEN mod_lectura_critica_punt NOT BETWEEN 0 AND 300 THEN 1 ELSE 0 END) AS reading_out,
		SUM(CASE WHEN mod_ingles_punt NOT BETWEEN 0 AND 300 THEN 1 ELSE 0 END) AS english_out,
		SUM(CASE WHEN mod_competen_ciudada_punt NOT BETWEEN 0 AND 300 THEN 1 ELSE 0 END) AS citizen_out,
		SUM(CASE WHEN mod_comuni_escrita_punt NOT BETWEEN 0 AND 300 THEN 1 ELSE 0 END) AS written_out,
		SUM(CASE WHEN estu_genero IS NOT NULL AND estu_genero NOT IN ('F', 'M') THEN 1 ELSE 0 END) AS bad_gender,
		SUM(CASE WHEN fami_tieneinternet IS NOT NULL AND fami_tieneinternet NOT IN ('Si', 'No') THEN 1 ELSE 0 END) AS bad_internet,
		SUM(CASE WHEN fami_tienecomputador IS NOT NULL AND fami_tienecomputador NOT IN ('Si', 'No') THEN 1 ELSE 0 END) AS bad_computer,
		SUM(CASE WHEN (estu_pagomatriculapropio IS NOT NULL AND estu_pagomatriculapropio NOT IN ('Si', 'No'))
			OR (estu_pagomatriculapadres IS NOT NULL AND estu_pagomatriculapadres NOT IN ('Si', 'No'))
			OR (estu_pagomatriculabeca IS NOT NULL AND estu_pagomatriculabeca NOT IN ('Si', 'No'))
			OR (estu_pagomatriculacredito IS NOT NULL AND estu_pagomatriculacredito NOT IN ('Si', 'No'))
			THEN 1 ELSE 0 END) AS bad_payment,
		SUM(CASE WHEN fami_estratovivienda IS NOT NULL
			AND fami_estratovivienda NOT GLOB 'Estrato [1-6]' THEN 1 ELSE 0 END) AS bad_stratum,
		SUM(CASE WHEN estu_consecutivo IS NULL OR estu_consecutivo = '' THEN 1 ELSE 0 END) AS missing_id,
		(SELECT COUNT(*) FROM (
			SELECT estu_consecutivo FROM saber_pro
			WHERE estu_consecutivo IS NOT NULL AND estu_consecutivo <> ''
			GROUP BY estu_consecutivo HAVING COUNT(*) > 1
		)) AS duplicate_id
	FROM saber_pro`

// QueryQualityReport runs the data-quality check. Shared with the ETL summary
// output.
func QueryQualityReport(db *sql.DB) (models.QualityReport, error) {
	var q models.QualityReport
	// SUM over zero rows yields NULL, so every count scans through NullInt64.
	var quant, reading, english, citizen, written,
		gender, internet, computer, payment, stratum, missing, dup sql.NullInt64
	err := db.QueryRow(dataQualityQuery).Scan(
		&q.TotalRows, &quant, &reading, &english, &citizen, &written,
		&gender, &internet, &computer, &payment, &stratum, &missing, &dup)
	if err != nil {
		return q, err
	}
	q.QuantReasoningOutRange = int(quant.Int64)
	q.CriticalReadingOutRang = int(reading.Int64)
	q.EnglishOutRange = int(english.Int64)
	q.CitizenshipOutRange = int(citizen.Int64)
	q.WrittenCommOutRange = int(written.Int64)
	q.InvalidGender = int(gender.Int64)
	q.InvalidInternetFlag = int(internet.Int64)
	q.InvalidComputerFlag = int(computer.Int64)
	q.InvalidPaymentFlags = int(payment.Int64)
	q.InvalidStratum = int(stratum.Int64)
	q.MissingStudentID = int(missing.Int64)
	q.DuplicateStudentID = int(dup.Int64)
	return q, nil
}

// DataQuality serves the quality report with a pass/fail flag for the panel
// header.
func (qc QualityController) DataQuality(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := QueryQualityReport(db)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to run data quality check"})
			return
		}
		utils.ResponseJSON(w, struct {
			Report models.QualityReport `json:"report"`
			Clean  bool                 `json:"clean"`
		}{Report: report, Clean: report.Clean()})
	}
}
