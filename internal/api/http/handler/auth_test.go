package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/sessiond/internal/api/context"
	"github.com/dtroode/sessiond/internal/apierrors"
	"github.com/dtroode/sessiond/internal/mocks"
	"github.com/dtroode/sessiond/internal/model"
	"github.com/dtroode/sessiond/internal/testutil"
)

func newRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierrors.ErrorBody {
	t.Helper()
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestAuth_SignUp(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	userID := uuid.New()
	svc.On("SignUp", mock.Anything, model.SignUpParams{Email: "a@b.c", Password: "password123", Name: "A"}).
		Return(model.Session{TokenPair: model.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 1800}, UserID: userID}, nil)

	h := NewAuth(svc, mocks.NewTokenService(t), apicontext.NewManager(), testutil.MakeNoopLogger())
	rr := httptest.NewRecorder()
	h.SignUp(rr, newRequest(http.MethodPost, `{"email":"a@b.c","password":"password123","name":"A"}`))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"accessToken":"acc","refreshToken":"ref","expiresIn":1800,"userId":"`+userID.String()+`"}`, rr.Body.String())
}

func TestAuth_SignUp_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantMsg: "INVALID_DATA"},
		{name: "unknown field", body: `{"email":"a@b.c","password":"password123","admin":true}`, wantStatus: http.StatusBadRequest, wantMsg: "INVALID_DATA"},
		{name: "validation", body: `{"email":"a","password":"x"}`, svcErr: model.ErrInvalidData, wantStatus: http.StatusBadRequest, wantMsg: "INVALID_DATA"},
		{name: "email exists", body: `{"email":"a@b.c","password":"password123"}`, svcErr: model.ErrEmailExists, wantStatus: http.StatusBadRequest, wantMsg: "EMAIL_EXISTS"},
		{name: "internal", body: `{"email":"a@b.c","password":"password123"}`, svcErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			if tt.svcErr != nil {
				svc.On("SignUp", mock.Anything, mock.Anything).Return(model.Session{}, tt.svcErr)
			}

			h := NewAuth(svc, mocks.NewTokenService(t), apicontext.NewManager(), testutil.MakeNoopLogger())
			rr := httptest.NewRecorder()
			h.SignUp(rr, newRequest(http.MethodPost, tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

func TestAuth_SignIn(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	userID := uuid.New()
	svc.On("SignIn", mock.Anything, "a@b.c", "password123").
		Return(model.Session{TokenPair: model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, UserID: userID}, nil).Once()
	svc.On("SignIn", mock.Anything, "missing@b.c", "password123").
		Return(model.Session{}, model.ErrEmailNotFound).Once()

	h := NewAuth(svc, mocks.NewTokenService(t), apicontext.NewManager(), testutil.MakeNoopLogger())

	rr := httptest.NewRecorder()
	h.SignIn(rr, newRequest(http.MethodPost, `{"email":"a@b.c","password":"password123"}`))
	require.Equal(t, http.StatusOK, rr.Code)
	var out sessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, userID, out.UserID)

	rr = httptest.NewRecorder()
	h.SignIn(rr, newRequest(http.MethodPost, `{"email":"missing@b.c","password":"password123"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "EMAIL_NOT_FOUND", decodeError(t, rr).Message)
}

func TestAuth_RefreshToken(t *testing.T) {
	t.Parallel()

	tokens := mocks.NewTokenService(t)
	userID := uuid.New()
	tokens.On("Rotate", mock.Anything, "ref").
		Return(model.Session{TokenPair: model.TokenPair{AccessToken: "acc2", RefreshToken: "ref2", ExpiresIn: 1800}, UserID: userID}, nil).Once()
	tokens.On("Rotate", mock.Anything, "used").Return(model.Session{}, model.ErrUnauthorized).Once()
	tokens.On("Rotate", mock.Anything, "boom").Return(model.Session{}, assert.AnError).Once()

	h := NewAuth(mocks.NewAuthService(t), tokens, apicontext.NewManager(), testutil.MakeNoopLogger())

	rr := httptest.NewRecorder()
	h.RefreshToken(rr, newRequest(http.MethodPost, `{"refresh_token":"ref"}`))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"accessToken":"acc2","refreshToken":"ref2","expiresIn":1800,"userId":"`+userID.String()+`"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.RefreshToken(rr, newRequest(http.MethodPost, `{"refresh_token":"used"}`))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rr).Message)

	rr = httptest.NewRecorder()
	h.RefreshToken(rr, newRequest(http.MethodPost, `{"refresh_token":"boom"}`))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	for _, body := range []string{`{}`, `not json`, `{"refreshToken":"ref"}`} {
		rr = httptest.NewRecorder()
		h.RefreshToken(rr, newRequest(http.MethodPost, body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, body)
	}
}

func TestAuth_RevokeToken(t *testing.T) {
	t.Parallel()

	tokens := mocks.NewTokenService(t)
	tokens.On("RevokeByToken", mock.Anything, "ref").Return(nil).Once()
	tokens.On("RevokeByToken", mock.Anything, "gone").Return(model.ErrUnauthorized).Once()

	h := NewAuth(mocks.NewAuthService(t), tokens, apicontext.NewManager(), testutil.MakeNoopLogger())

	rr := httptest.NewRecorder()
	h.RevokeToken(rr, newRequest(http.MethodPost, `{"refresh_token":"ref"}`))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = httptest.NewRecorder()
	h.RevokeToken(rr, newRequest(http.MethodPost, `{"refresh_token":"gone"}`))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	ctxMgr := apicontext.NewManager()
	userID := uuid.New()
	svc.On("Profile", mock.Anything, userID).Return(model.User{ID: userID, Email: "a@b.c", Name: "a", Image: "img"}, nil)

	h := NewAuth(svc, mocks.NewTokenService(t), ctxMgr, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctxMgr.SetUserIDToContext(req.Context(), userID))
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"userId":"`+userID.String()+`","email":"a@b.c","name":"a","image":"img"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.Me(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
