package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Manuelc122/saber-pro-dashboard/models"
)

type regressionResponse struct {
	Count    int                         `json:"count"`
	Features []models.RegressionFeatures `json:"features"`
}

func TestRegressionFeatures(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())

	handler := RegressionController{}.RegressionFeatures(db)
	req := httptest.NewRequest("GET", "/api/regression/features", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp regressionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 6 {
		t.Fatalf("expected 6 complete rows, got %d", resp.Count)
	}

	first := resp.Features[0]
	// EST000001: Estrato 3, NO OFICIAL, F, father 'Primaria completa',
	// mother 'Postgrado', internet/computer Si, self No, parent Si.
	if first.Estrato != 3 || first.IsPublic != 0 || first.IsMale != 0 {
		t.Fatalf("unexpected categorical recoding: %+v", first)
	}
	if first.FatherEducation != 2 || first.MotherEducation != 9 {
		t.Fatalf("unexpected education ranks: %+v", first)
	}
	if first.HasInternet != 1 || first.HasComputer != 1 || first.SelfPaid != 0 || first.ParentPaid != 1 {
		t.Fatalf("unexpected flag recoding: %+v", first)
	}
	// (150+145+140+135)/4
	if first.AvgScore != 142.5 {
		t.Fatalf("avg score = %v, want 142.5", first.AvgScore)
	}
}

func TestRegressionFeaturesExcludesIncompleteRows(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())
	// Missing english score: must be dropped, not defaulted.
	if _, err := db.Exec(`INSERT INTO saber_pro (periodo, estu_consecutivo, estu_genero,
		inst_origen, fami_estratovivienda, fami_educacionpadre, fami_educacionmadre,
		fami_tieneinternet, fami_tienecomputador, estu_pagomatriculapropio, estu_pagomatriculapadres,
		mod_razona_cuantitat_punt, mod_lectura_critica_punt, mod_competen_ciudada_punt)
		VALUES ('2022', 'EST200001', 'M', 'OFICIAL', 'Estrato 4', 'Ninguno', 'Ninguno',
			'Si', 'No', 'Si', 'No', 100, 100, 100)`); err != nil {
		t.Fatalf("insert incomplete row: %v", err)
	}

	handler := RegressionController{}.RegressionFeatures(db)
	req := httptest.NewRequest("GET", "/api/regression/features", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp regressionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 6 {
		t.Fatalf("incomplete row leaked into features: got %d rows", resp.Count)
	}
}

func TestRegressionFeaturesLimit(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())

	handler := RegressionController{}.RegressionFeatures(db)
	req := httptest.NewRequest("GET", "/api/regression/features?limit=2", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp regressionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("limit ignored: got %d rows", resp.Count)
	}

	req = httptest.NewRequest("GET", "/api/regression/features?limit=-1", nil)
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400 for negative limit, got %d", rec.Code)
	}
}
