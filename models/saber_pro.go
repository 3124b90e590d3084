package models

import "database/sql"

// SaberProRecord is one row of the saber_pro table: a single test-taker in a
// single application period. Score columns are nullable because the public
// export leaves them blank for absent modules.
type SaberProRecord struct {
	Periodo               string          `json:"periodo"`
	EstuConsecutivo       string          `json:"estu_consecutivo"`
	EstuGenero            string          `json:"estu_genero"`
	EstuInstDepartamento  sql.NullString  `json:"estu_inst_departamento"`
	InstNombreInstitucion sql.NullString  `json:"inst_nombre_institucion"`
	EstuPrgmAcademico     sql.NullString  `json:"estu_prgm_academico"`
	InstOrigen            sql.NullString  `json:"inst_origen"`
	EstuValorMatricula    sql.NullString  `json:"estu_valormatriculauniversidad"`
	EstuHorasTrabaja      sql.NullString  `json:"estu_horassemanatrabaja"`
	FamiEstratoVivienda   sql.NullString  `json:"fami_estratovivienda"`
	FamiEducacionPadre    sql.NullString  `json:"fami_educacionpadre"`
	FamiEducacionMadre    sql.NullString  `json:"fami_educacionmadre"`
	FamiTieneInternet     sql.NullString  `json:"fami_tieneinternet"`
	FamiTieneComputador   sql.NullString  `json:"fami_tienecomputador"`
	PagoMatriculaPropio   sql.NullString  `json:"estu_pagomatriculapropio"`
	PagoMatriculaPadres   sql.NullString  `json:"estu_pagomatriculapadres"`
	PagoMatriculaBeca     sql.NullString  `json:"estu_pagomatriculabeca"`
	PagoMatriculaCredito  sql.NullString  `json:"estu_pagomatriculacredito"`
	RazonaCuantitativo    sql.NullFloat64 `json:"mod_razona_cuantitat_punt"`
	LecturaCritica        sql.NullFloat64 `json:"mod_lectura_critica_punt"`
	Ingles                sql.NullFloat64 `json:"mod_ingles_punt"`
	CompetenciasCiudada   sql.NullFloat64 `json:"mod_competen_ciudada_punt"`
	ComunicacionEscrita   sql.NullFloat64 `json:"mod_comuni_escrita_punt"`
}

// ScoreColumns maps the score type keys accepted by the API to the
// underlying saber_pro columns. Keys are the only values the handlers accept.
var ScoreColumns = map[string]string{
	"quant_reasoning":  "mod_razona_cuantitat_punt",
	"critical_reading": "mod_lectura_critica_punt",
	"english":          "mod_ingles_punt",
	"citizenship":      "mod_competen_ciudada_punt",
}

// ScoreLabels holds the display names shown in chart titles and dropdowns.
var ScoreLabels = map[string]string{
	"quant_reasoning":  "Quantitative Reasoning",
	"critical_reading": "Critical Reading",
	"english":          "English",
	"citizenship":      "Citizenship Skills",
}
