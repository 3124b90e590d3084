package controllers

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const testSchema = `
CREATE TABLE saber_pro (
	periodo TEXT,
	estu_consecutivo TEXT,
	estu_genero TEXT,
	estu_inst_departamento TEXT,
	inst_nombre_institucion TEXT,
	estu_prgm_academico TEXT,
	inst_origen TEXT,
	estu_valormatriculauniversidad TEXT,
	estu_horassemanatrabaja TEXT,
	fami_estratovivienda TEXT,
	fami_educacionpadre TEXT,
	fami_educacionmadre TEXT,
	fami_tieneinternet TEXT,
	fami_tienecomputador TEXT,
	estu_pagomatriculapropio TEXT,
	estu_pagomatriculapadres TEXT,
	estu_pagomatriculabeca TEXT,
	estu_pagomatriculacredito TEXT,
	mod_razona_cuantitat_punt REAL,
	mod_lectura_critica_punt REAL,
	mod_ingles_punt REAL,
	mod_competen_ciudada_punt REAL,
	mod_comuni_escrita_punt REAL
)`

// testRow carries the subset of columns the fixtures vary; everything else
// seeds with sane defaults.
type testRow struct {
	periodo      string
	consecutivo  string
	genero       string
	departamento string
	origen       string
	estrato      string
	quant        float64
	reading      float64
	english      float64
	citizen      float64
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saber_pro.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("create test schema: %v", err)
	}
	return db
}

func seedRows(t *testing.T, db *sql.DB, rows []testRow) {
	t.Helper()
	const insert = `
		INSERT INTO saber_pro (
			periodo, estu_consecutivo, estu_genero, estu_inst_departamento,
			inst_nombre_institucion, estu_prgm_academico, inst_origen,
			fami_estratovivienda, fami_educacionpadre, fami_educacionmadre,
			fami_tieneinternet, fami_tienecomputador,
			estu_pagomatriculapropio, estu_pagomatriculapadres,
			estu_pagomatriculabeca, estu_pagomatriculacredito,
			mod_razona_cuantitat_punt, mod_lectura_critica_punt,
			mod_ingles_punt, mod_competen_ciudada_punt
		) VALUES (?, ?, ?, ?, 'Universidad Nacional', 'INGENIERIA', ?, ?,
			'Primaria completa', 'Postgrado', 'Si', 'Si', 'No', 'Si', 'No', 'No',
			?, ?, ?, ?)`
	for _, r := range rows {
		if _, err := db.Exec(insert,
			r.periodo, r.consecutivo, r.genero, r.departamento, r.origen,
			r.estrato, r.quant, r.reading, r.english, r.citizen); err != nil {
			t.Fatalf("seed row: %v", err)
		}
	}
}

// defaultRows spans two periods, both genders, two departments and two
// strata so every panel has something to aggregate.
func defaultRows() []testRow {
	return []testRow{
		{"2021", "EST000001", "F", "BOGOTA", "NO OFICIAL", "Estrato 3", 150, 145, 140, 135},
		{"2021", "EST000002", "M", "BOGOTA", "OFICIAL", "Estrato 2", 140, 150, 130, 145},
		{"2021", "EST000003", "F", "ANTIOQUIA", "OFICIAL", "Estrato 1", 120, 125, 110, 115},
		{"2022", "EST000004", "F", "BOGOTA", "NO OFICIAL", "Estrato 3", 160, 155, 150, 145},
		{"2022", "EST000005", "M", "ANTIOQUIA", "OFICIAL", "Estrato 2", 130, 135, 120, 125},
		{"2022", "EST000006", "M", "ANTIOQUIA", "OFICIAL", "Estrato 1", 110, 115, 100, 105},
	}
}
