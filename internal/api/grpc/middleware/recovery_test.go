package middleware

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/sessiond/internal/testutil"
)

func TestRecoveryHandler(t *testing.T) {
	t.Parallel()

	interceptor := recovery.UnaryServerInterceptor(
		recovery.WithRecoveryHandlerContext(RecoveryHandler(testutil.MakeNoopLogger())),
	)

	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
	_, err := interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})

	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal server error", st.Message())
}
