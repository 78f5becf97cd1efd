package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusConflict, "Could not record deposit", errors.New("insufficient funds"))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	body := decodeBody(t, w)
	if body["message"] != "Could not record deposit" {
		t.Errorf("message = %v", body["message"])
	}
	if body["error"] != "insufficient funds" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestErrorOmitsNilError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "User not found", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	body := decodeBody(t, w)
	if _, ok := body["error"]; ok {
		t.Errorf("error key present for nil error: %v", body)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, "Stock loaded", []int{1, 2})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Stock loaded" {
		t.Errorf("message = %v", body["message"])
	}
	if _, ok := body["data"]; !ok {
		t.Error("data key missing")
	}
}
