package controllers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/Manuelc122/saber-pro-dashboard/models"
	"github.com/Manuelc122/saber-pro-dashboard/utils"
)

type RegressionController struct{}

// regressionFeaturesQuery recodes the socioeconomic covariates to numeric
// form and averages the four scored modules per student. Rows missing any
// input are excluded so the extraction is regression-ready as returned.
const regressionFeaturesQuery = `
	SELECT
		CAST(SUBSTR(fami_estratovivienda, 9, 1) AS INTEGER) AS estrato,
		CASE WHEN inst_origen = 'OFICIAL' THEN 1 ELSE 0 END AS is_public,
		CASE WHEN estu_genero = 'M' THEN 1 ELSE 0 END AS is_male,
		CASE fami_educacionpadre
			WHEN 'Ninguno' THEN 0
			WHEN 'Primaria incompleta' THEN 1
			WHEN 'Primaria completa' THEN 2
			WHEN 'Secundaria (Bachillerato) incompleta' THEN 3
			WHEN 'Secundaria (Bachillerato) completa' THEN 4
			WHEN 'Técnica o tecnológica incompleta' THEN 5
			WHEN 'Técnica o tecnológica completa' THEN 6
			WHEN 'Educación profesional incompleta' THEN 7
			WHEN 'Educación profesional completa' THEN 8
			WHEN 'Postgrado' THEN 9
		END AS father_education,
		CASE fami_educacionmadre
			WHEN 'Ninguno' THEN 0
			WHEN 'Primaria incompleta' THEN 1
			WHEN 'Primaria completa' THEN 2
			WHEN 'Secundaria (Bachillerato) incompleta' THEN 3
			WHEN 'Secundaria (Bachillerato) completa' THEN 4
			WHEN 'Técnica o tecnológica incompleta' THEN 5
			WHEN 'Técnica o tecnológica completa' THEN 6
			WHEN 'Educación profesional incompleta' THEN 7
			WHEN 'Educación profesional completa' THEN 8
			WHEN 'Postgrado' THEN 9
		END AS mother_education,
		CASE WHEN fami_tieneinternet = 'Si' THEN 1 ELSE 0 END AS has_internet,
		CASE WHEN fami_tienecomputador = 'Si' THEN 1 ELSE 0 END AS has_computer,
		CASE WHEN estu_pagomatriculapropio = 'Si' THEN 1 ELSE 0 END AS self_paid,
		CASE WHEN estu_pagomatriculapadres = 'Si' THEN 1 ELSE 0 END AS parent_paid,
		(mod_razona_cuantitat_punt + mod_lectura_critica_punt +
		 mod_ingles_punt + mod_competen_ciudada_punt) / 4.0 AS avg_score
	FROM saber_pro
	WHERE fami_estratovivienda GLOB 'Estrato [1-6]'
	  AND inst_origen IS NOT NULL
	  AND estu_genero IN ('F', 'M')
	  AND fami_educacionpadre IN (
		'Ninguno', 'Primaria incompleta', 'Primaria completa',
		'Secundaria (Bachillerato) incompleta', 'Secundaria (Bachillerato) completa',
		'Técnica o tecnológica incompleta', 'Técnica o tecnológica completa',
		'Educación profesional incompleta', 'Educación profesional completa', 'Postgrado')
	  AND fami_educacionmadre IN (
		'Ninguno', 'Primaria incompleta', 'Primaria completa',
		'Secundaria (Bachillerato) incompleta', 'Secundaria (Bachillerato) completa',
		'Técnica o tecnológica incompleta', 'Técnica o tecnológica completa',
		'Educación profesional incompleta', 'Educación profesional completa', 'Postgrado')
	  AND fami_tieneinternet IN ('Si', 'No')
	  AND fami_tienecomputador IN ('Si', 'No')
	  AND estu_pagomatriculapropio IN ('Si', 'No')
	  AND estu_pagomatriculapadres IN ('Si', 'No')
	  AND mod_razona_cuantitat_punt IS NOT NULL
	  AND mod_lectura_critica_punt IS NOT NULL
	  AND mod_ingles_punt IS NOT NULL
	  AND mod_competen_ciudada_punt IS NOT NULL`

// RegressionFeatures serves the cleaned observation matrix for the
// socioeconomic regression. A limit of 0 returns every row.
func (rc RegressionController) RegressionFeatures(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := utils.StrToInt(raw)
			if err != nil || n < 0 {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid limit"})
				return
			}
			limit = n
		}

		query := regressionFeaturesQuery
		args := []interface{}{}
		if limit > 0 {
			query += " LIMIT ?"
			args = append(args, limit)
		}

		rows, err := db.Query(query, args...)
		if err != nil {
			log.Println("SQL Select Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get regression features"})
			return
		}
		defer rows.Close()

		features := []models.RegressionFeatures{}
		for rows.Next() {
			var f models.RegressionFeatures
			if err := rows.Scan(&f.Estrato, &f.IsPublic, &f.IsMale,
				&f.FatherEducation, &f.MotherEducation,
				&f.HasInternet, &f.HasComputer,
				&f.SelfPaid, &f.ParentPaid, &f.AvgScore); err != nil {
				log.Println("SQL Scan Error:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to parse regression features"})
				return
			}
			features = append(features, f)
		}
		if err := rows.Err(); err != nil {
			log.Println("SQL Rows Error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to get regression features"})
			return
		}

		utils.ResponseJSON(w, struct {
			Count    int                         `json:"count"`
			Features []models.RegressionFeatures `json:"features"`
		}{Count: len(features), Features: features})
	}
}
