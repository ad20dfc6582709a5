package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/classtrack/coaching-backend-go/internal/domain/attendance"
	"github.com/classtrack/coaching-backend-go/internal/domain/shift"
	"github.com/classtrack/coaching-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessWithMeta(rec, []string{"a", "b"}, &Meta{
		Page:       2,
		Limit:      20,
		TotalItems: 41,
		TotalPages: 3,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.Limit)
	assert.Equal(t, int64(41), resp.Meta.TotalItems)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"scope required", attendance.ErrSessionScopeRequired, http.StatusBadRequest, "BAD_REQUEST"},
		{"already submitted", attendance.ErrAlreadySubmitted, http.StatusConflict, "CONFLICT"},
		{"record not found", attendance.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"shift not found", shift.ErrShiftNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unmapped", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantCode, rec.Code)

			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, c.wantErr, resp.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "date must be in YYYY-MM-DD format", resp.Error.Details["date"])
}
