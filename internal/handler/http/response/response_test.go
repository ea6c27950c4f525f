package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssms/hrms-backend-go/internal/domain/attendance"
	"github.com/sssms/hrms-backend-go/internal/domain/auth"
	"github.com/sssms/hrms-backend-go/internal/pkg/validator"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var body Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Success(rr, map[string]string{"id": "rec-1"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := decode(t, rr)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}

func TestValidationErrorEnvelope(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	ValidationError(rr, map[string]string{"page": "page must be at least 1"})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	body := decode(t, rr)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "page must be at least 1", body.Error.Details["page"])
}

func TestHandleError_StatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validator.ValidationErrors{{Field: "limit", Message: "limit must be between 1 and 100"}}, http.StatusUnprocessableEntity},
		{"weekend punch", attendance.ErrWeekendPunch, http.StatusConflict},
		{"double punch-in", attendance.ErrAlreadyPunchedIn, http.StatusConflict},
		{"double punch-out", attendance.ErrAlreadyPunchedOut, http.StatusConflict},
		{"punch-out without punch-in", attendance.ErrNotPunchedIn, http.StatusNotFound},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrTokenExpired, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			HandleError(rr, tt.err)
			assert.Equal(t, tt.code, rr.Code)

			body := decode(t, rr)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}
