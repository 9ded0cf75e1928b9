package json

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	err := Write(rec, map[string]string{"message": "ok"})
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}

func TestWriteErrorShape(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bad_request",
			write:      func(w http.ResponseWriter) { WriteBadRequest(w, "Token is required") },
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Token is required"}`,
		},
		{
			name:       "unauthorized",
			write:      func(w http.ResponseWriter) { WriteUnauthorized(w, "Invalid Google token") },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid Google token"}`,
		},
		{
			name:       "internal",
			write:      func(w http.ResponseWriter) { WriteInternalServerError(w, "Internal server error") },
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
