package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullseye-app/bullseye/internal/http/auth"
)

var secret = []byte("test-secret")

func protected(t *testing.T, capture *uuid.UUID) http.Handler {
	return auth.Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.MemberID(r.Context())
		require.NotNil(t, id)

		*capture = *id

		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddleware(t *testing.T) {
	memberID := uuid.New()

	token, err := auth.Sign(secret, memberID, time.Hour)
	require.NoError(t, err)

	var got uuid.UUID

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	protected(t, &got).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, memberID, got)
}

func TestMiddleware_Rejects(t *testing.T) {
	expired, err := auth.Sign(secret, uuid.New(), -time.Hour)
	require.NoError(t, err)

	wrongKey, err := auth.Sign([]byte("other-secret"), uuid.New(), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "MissingHeader", header: ""},
		{name: "NotBearer", header: "Basic abc"},
		{name: "Garbage", header: "Bearer not.a.token"},
		{name: "Expired", header: "Bearer " + expired},
		{name: "WrongKey", header: "Bearer " + wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()

			var got uuid.UUID
			protected(t, &got).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestMemberID_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, auth.MemberID(req.Context()))
}
