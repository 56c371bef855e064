package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekdesk/shared/constant"
	"trekdesk/shared/failure"
	"trekdesk/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		wantKind string
	}{
		{
			name:     "wrapped duplicate keeps its own message",
			err:      fmt.Errorf("failed to create trek: %w", failure.Duplicate("trek already exists")),
			wantCode: http.StatusConflict,
			wantMsg:  "trek already exists",
			wantKind: "duplicate_entity",
		},
		{
			name:     "protected batch conflict",
			err:      failure.ProtectedBatchConflict("batch 3 has bookings"),
			wantCode: http.StatusConflict,
			wantMsg:  "batch 3 has bookings",
			wantKind: "protected_batch_conflict",
		},
		{
			name:     "transient storage failure hides the cause",
			err:      failure.StorageFailure(errors.New("pq: too many connections for role trekdesk"), true),
			wantCode: http.StatusServiceUnavailable,
			wantMsg:  constant.ResponseErrorStorageUnavailable,
			wantKind: "storage_failure",
		},
		{
			name:     "permanent storage failure hides the cause",
			err:      failure.StorageFailure(errors.New("pq: relation missing"), false),
			wantCode: http.StatusInternalServerError,
			wantMsg:  constant.ResponseErrorInternal,
			wantKind: "storage_failure",
		},
		{
			name:     "unclassified error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Equal(t, tt.wantKind, body["kind"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":7}}`, recorder.Body.String())
}
