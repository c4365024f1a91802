package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	apicontext "github.com/dtroode/sessiond/internal/api/context"
	"github.com/dtroode/sessiond/internal/mocks"
	"github.com/dtroode/sessiond/internal/model"
	"github.com/dtroode/sessiond/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name    string
		header  string
		token   string
		svcID   uuid.UUID
		svcErr  error
		wantMsg string
	}{
		{name: "no metadata", wantMsg: "missing authorization token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantMsg: "missing authorization token"},
		{name: "rejected token", header: "Bearer stale", token: "stale", svcErr: model.ErrUnauthorized, wantMsg: "invalid authorization token"},
		{name: "nil subject", header: "Bearer odd", token: "odd", svcID: uuid.Nil, wantMsg: "invalid authorization token"},
		{name: "accepted", header: "bearer good", token: "good", svcID: userID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctxMgr := apicontext.NewManager()
			svc := mocks.NewTokenService(t)
			if tt.token != "" {
				svc.On("GetUserID", mock.Anything, tt.token).Return(tt.svcID, tt.svcErr)
			}

			ctx := context.Background()
			if tt.header != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.header))
			}

			got, err := NewAuthenticate(svc, ctxMgr, testutil.MakeNoopLogger()).AuthFunc(ctx)

			if tt.wantMsg != "" {
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Equal(t, tt.wantMsg, st.Message())
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			id, ok := ctxMgr.GetUserIDFromContext(got)
			require.True(t, ok)
			assert.Equal(t, userID, id)
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken(""))
}
