package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekdesk/internal/domains/batch/model"
	"trekdesk/internal/domains/batch/model/dto"
	"trekdesk/shared/failure"
	"trekdesk/shared/validator"
)

func batchRequest(id int64, status string) dto.BatchRequest {
	return dto.BatchRequest{
		ID:             id,
		StartDate:      "2026-11-01",
		EndDate:        "2026-11-04",
		AvailableSlots: 5,
		Status:         status,
	}
}

func TestBatchRequest_ValidateStatus(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.BatchRequest
		wantErr bool
	}{
		{name: "stored completed batch echoed back", req: batchRequest(3, model.StatusCompleted)},
		{name: "new batch cannot start completed", req: batchRequest(0, model.StatusCompleted), wantErr: true},
		{name: "inactive batch", req: batchRequest(4, model.StatusInactive)},
		{name: "empty status", req: batchRequest(0, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(1)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindValidation, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.NoError(t, validator.ValidateStruct(&tt.req))
		})
	}
}

func TestBatchRequest_ToUpdateFields(t *testing.T) {
	tests := []struct {
		name    string
		current string
		sent    string
		want    string
	}{
		{name: "completed stays completed", current: model.StatusCompleted, sent: model.StatusCompleted, want: model.StatusCompleted},
		{name: "completed ignores a reopen", current: model.StatusCompleted, sent: model.StatusActive, want: model.StatusCompleted},
		{name: "open batch is not completed by an edit", current: model.StatusActive, sent: model.StatusCompleted, want: model.StatusActive},
		{name: "empty keeps current", current: model.StatusInactive, sent: "", want: model.StatusInactive},
		{name: "open batch takes the sent status", current: model.StatusActive, sent: model.StatusInactive, want: model.StatusInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := batchRequest(3, tt.sent)

			fields := req.ToUpdateFields(model.Batch{ID: 3, Status: tt.current})

			assert.Equal(t, tt.want, fields[model.FieldStatus])
		})
	}
}

func TestBatchRequest_ToModelNeverCompleted(t *testing.T) {
	req := batchRequest(3, model.StatusCompleted)

	batch := req.ToModel(7)

	assert.Equal(t, model.StatusActive, batch.Status)
	assert.Equal(t, int64(7), batch.TrekID)
}
