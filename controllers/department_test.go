package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDepartmentAverages(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())

	handler := DepartmentController{}.DepartmentAverages(db)
	req := httptest.NewRequest("GET", "/api/averages/department?score=quant_reasoning", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ChartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	points := resp.Chart.Series[0].Data
	if len(points) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(points))
	}
	// BOGOTA quant: (150+140+160)/3 = 150; ANTIOQUIA: (120+130+110)/3 = 120.
	// Descending order puts BOGOTA first.
	if points[0].Label != "BOGOTA" || points[0].Value != 150 {
		t.Fatalf("unexpected top department: %+v", points[0])
	}
	if points[1].Label != "ANTIOQUIA" || points[1].Value != 120 {
		t.Fatalf("unexpected bottom department: %+v", points[1])
	}
	if !strings.Contains(resp.Interpretation, "BOGOTA") {
		t.Fatalf("unexpected interpretation: %q", resp.Interpretation)
	}
}

func TestDepartmentAveragesPeriodFilter(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())

	handler := DepartmentController{}.DepartmentAverages(db)
	req := httptest.NewRequest("GET", "/api/averages/department?score=quant_reasoning&periodo=2022", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp ChartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	points := resp.Chart.Series[0].Data
	// 2022 only: BOGOTA 160, ANTIOQUIA (130+110)/2 = 120.
	if points[0].Value != 160 || points[1].Value != 120 {
		t.Fatalf("period filter not applied: %+v", points)
	}
}

func TestDepartmentAveragesInvalidPeriod(t *testing.T) {
	db := newTestDB(t)
	handler := DepartmentController{}.DepartmentAverages(db)
	req := httptest.NewRequest("GET", "/api/averages/department?periodo=20x2", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400 for invalid periodo, got %d", rec.Code)
	}
}
