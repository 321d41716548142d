package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 201, "Created", map[string]string{"name": "Aspirin"})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	body := decodeBody(t, rec)
	if body["message"] != "Created" {
		t.Errorf("message = %v", body["message"])
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok || data["name"] != "Aspirin" {
		t.Errorf("data = %v", body["data"])
	}
	if _, present := body["errors"]; present {
		t.Error("errors should be omitted on success")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		write      func(rec *httptest.ResponseRecorder)
		wantStatus int
		wantMsg    string
	}{
		{"bad request default", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "") }, 400, "Bad request"},
		{"bad request custom", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "Invalid request body") }, 400, "Invalid request body"},
		{"unauthorized", func(rec *httptest.ResponseRecorder) { Unauthorized(rec, "") }, 401, "Unauthorized"},
		{"forbidden", func(rec *httptest.ResponseRecorder) { Forbidden(rec, "") }, 403, "Forbidden"},
		{"not found", func(rec *httptest.ResponseRecorder) { NotFound(rec, "No customers found") }, 404, "No customers found"},
		{"internal", func(rec *httptest.ResponseRecorder) { InternalServerError(rec, "") }, 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeBody(t, rec)
			if body["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMsg)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Email": "Email is required"})

	if rec.Code != 422 {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Validation failed" {
		t.Errorf("message = %v", body["message"])
	}
	errs, ok := body["errors"].(map[string]interface{})
	if !ok || errs["Email"] != "Email is required" {
		t.Errorf("errors = %v", body["errors"])
	}
}
