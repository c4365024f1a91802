package router

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	apicontext "github.com/dtroode/sessiond/internal/api/context"
	sessiondv1 "github.com/dtroode/sessiond/api/sessiond/v1"
	"github.com/dtroode/sessiond/internal/mocks"
	"github.com/dtroode/sessiond/internal/password"
	"github.com/dtroode/sessiond/internal/repository/memory"
	"github.com/dtroode/sessiond/internal/service"
	"github.com/dtroode/sessiond/internal/testutil"
	"github.com/dtroode/sessiond/internal/token"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewAuthService(t), mocks.NewTokenService(t), mocks.NewContextManager(t), testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, sessiondv1.Auth_ServiceDesc.ServiceName)
	assert.Contains(t, info, healthpb.Health_ServiceDesc.ServiceName)
}

func dialRouter(t *testing.T) *grpc.ClientConn {
	t.Helper()
	lg := testutil.MakeNoopLogger()

	manager, err := token.NewJWT("access-secret", "refresh-secret")
	require.NoError(t, err)
	tokens := service.NewTokenService(manager, memory.NewRefreshTokenRepository(), lg)
	auth := service.NewAuth(memory.NewUserRepository(), password.NewBcrypt(4), tokens, lg)

	s := New(auth, tokens, apicontext.NewManager(), lg).Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestRouter_AuthFlow(t *testing.T) {
	t.Parallel()

	conn := dialRouter(t)
	client := sessiondv1.NewAuthClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	signedUp, err := client.SignUp(ctx, &sessiondv1.SignUpRequest{Email: "grpc@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, signedUp.AccessToken)
	assert.NotEmpty(t, signedUp.UserId)
	assert.Equal(t, int64(1800), signedUp.ExpiresIn)

	_, err = client.SignUp(ctx, &sessiondv1.SignUpRequest{Email: "grpc@example.com", Password: "password123"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.Me(ctx, &sessiondv1.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+signedUp.AccessToken)
	profile, err := client.Me(authed, &sessiondv1.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, signedUp.UserId, profile.UserId)
	assert.Equal(t, "grpc", profile.Name)

	rotated, err := client.RefreshToken(ctx, &sessiondv1.RefreshTokenRequest{RefreshToken: signedUp.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, signedUp.UserId, rotated.UserId)

	_, err = client.RefreshToken(ctx, &sessiondv1.RefreshTokenRequest{RefreshToken: signedUp.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.RevokeToken(ctx, &sessiondv1.RevokeTokenRequest{RefreshToken: rotated.RefreshToken})
	require.NoError(t, err)

	_, err = client.RefreshToken(ctx, &sessiondv1.RefreshTokenRequest{RefreshToken: rotated.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	signedIn, err := client.SignIn(ctx, &sessiondv1.SignInRequest{Email: "grpc@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, signedUp.UserId, signedIn.UserId)

	_, err = client.SignIn(ctx, &sessiondv1.SignInRequest{Email: "grpc@example.com", Password: "wrong-password"})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "INVALID_PASSWORD", st.Message())
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	conn := dialRouter(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: sessiondv1.Auth_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestRouter_ProtobufWire(t *testing.T) {
	t.Parallel()

	conn := dialRouter(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Default codec, no content-subtype: what any stock gRPC client sends.
	out := &sessiondv1.Session{}
	err := conn.Invoke(ctx, sessiondv1.Auth_SignUp_FullMethodName,
		&sessiondv1.SignUpRequest{Email: "wire@example.com", Password: "password123"}, out)
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.UserId)

	err = conn.Invoke(ctx, sessiondv1.Auth_SignIn_FullMethodName,
		&sessiondv1.SignInRequest{Email: "wire@example.com", Password: "password123"}, out,
		grpc.CallContentSubtype("json"))
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRouter_ServiceDescriptor(t *testing.T) {
	t.Parallel()

	d, err := protoregistry.GlobalFiles.FindDescriptorByName("sessiond.v1.Auth")
	require.NoError(t, err)

	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, sessiondv1.Auth_ServiceDesc.ServiceName, string(svc.FullName()))

	methods := svc.Methods()
	require.Equal(t, len(sessiondv1.Auth_ServiceDesc.Methods), methods.Len())
	for _, m := range sessiondv1.Auth_ServiceDesc.Methods {
		assert.NotNil(t, methods.ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
	assert.Equal(t, protoreflect.FullName("sessiond.v1.Session"), methods.ByName("SignUp").Output().FullName())
	assert.Equal(t, protoreflect.FullName("sessiond.v1.RevokeTokenResponse"), methods.ByName("RevokeToken").Output().FullName())
}
