package testutil

import (
	"encoding/json"
	"net/http"
	"testing"
)

// Helpers for faking the upstream API envelope in httptest handlers.

type envelope struct {
	Success       bool   `json:"success"`
	Result        any    `json:"result"`
	Message       string `json:"message,omitempty"`
	CurrentPage   int    `json:"currentPage,omitempty"`
	TotalPages    int    `json:"totalPages,omitempty"`
	PageSize      int    `json:"pageSize,omitempty"`
	TotalElements int64  `json:"totalElements,omitempty"`
}

// WriteResult writes a successful envelope around result.
func WriteResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	writeEnvelope(t, w, http.StatusOK, envelope{Success: true, Result: result})
}

// WritePagedResult writes a successful envelope with paging metadata.
func WritePagedResult(t *testing.T, w http.ResponseWriter, result any, currentPage, totalPages, pageSize int, totalElements int64) {
	t.Helper()
	writeEnvelope(t, w, http.StatusOK, envelope{
		Success:       true,
		Result:        result,
		CurrentPage:   currentPage,
		TotalPages:    totalPages,
		PageSize:      pageSize,
		TotalElements: totalElements,
	})
}

// WriteFailure writes a failed envelope with the given HTTP status.
func WriteFailure(t *testing.T, w http.ResponseWriter, statusCode int, message string) {
	t.Helper()
	writeEnvelope(t, w, statusCode, envelope{Success: false, Message: message})
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, statusCode int, env envelope) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		t.Fatalf("encoding envelope: %v", err)
	}
}
