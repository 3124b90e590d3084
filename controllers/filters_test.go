package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestFilters(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())

	handler := FiltersController{}.Filters(db)
	req := httptest.NewRequest("GET", "/api/filters", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Periods    []string      `json:"periods"`
		ScoreTypes []ScoreOption `json:"score_types"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Periods) != 2 || resp.Periods[0] != "2021" || resp.Periods[1] != "2022" {
		t.Fatalf("unexpected periods: %v", resp.Periods)
	}
	if len(resp.ScoreTypes) != 4 || resp.ScoreTypes[0].Value != "quant_reasoning" {
		t.Fatalf("unexpected score types: %v", resp.ScoreTypes)
	}
}

func TestHealth(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db, defaultRows())

	handler := HealthController{}.Health(db)
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Status string `json:"status"`
		Rows   int    `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Rows != 6 {
		t.Fatalf("unexpected health response: %+v", resp)
	}
}
