package handler

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/internal/delivery/http/validator"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccountUsecase struct {
	view     *usecase.AccountView
	err      error
	called   bool
	loginErr error
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	s.called = true

	return s.view, s.err
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountView, error) {
	s.called = true

	return s.view, s.loginErr
}

type stubProfileUsecase struct {
	view       *usecase.AccountView
	err        error
	gotID      uuid.UUID
	gotAvatar  []byte
	gotProfile *usecase.UpdateProfileInput
}

func (s *stubProfileUsecase) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.AccountView, error) {
	s.gotID = accountID
	s.gotProfile = input

	return s.view, s.err
}

func (s *stubProfileUsecase) AssignAvatar(ctx context.Context, accountID uuid.UUID, imageData []byte) (*usecase.AccountView, error) {
	s.gotID = accountID
	s.gotAvatar = imageData

	return s.view, s.err
}

type stubResetUsecase struct {
	output     *usecase.RequestResetOutput
	requestErr error
	confirmErr error
}

func (s *stubResetUsecase) RequestReset(ctx context.Context, input *usecase.RequestResetInput) (*usecase.RequestResetOutput, error) {
	return s.output, s.requestErr
}

func (s *stubResetUsecase) ConfirmReset(ctx context.Context, input *usecase.ConfirmResetInput) error {
	return s.confirmErr
}

type handlerFixtures struct {
	handler   *AccountHandler
	accountUC *stubAccountUsecase
	profileUC *stubProfileUsecase
	resetUC   *stubResetUsecase
	echo      *echo.Echo
}

func createTestHandler(t *testing.T) handlerFixtures {
	t.Helper()

	accountUC := &stubAccountUsecase{}
	profileUC := &stubProfileUsecase{}
	resetUC := &stubResetUsecase{}

	h := NewAccountHandler(AccountHandlerParams{
		AccountUC: accountUC,
		ProfileUC: profileUC,
		ResetUC:   resetUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	e.Validator = validator.New()

	return handlerFixtures{
		handler:   h,
		accountUC: accountUC,
		profileUC: profileUC,
		resetUC:   resetUC,
		echo:      e,
	}
}

func (f handlerFixtures) request(method, target, body string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	fixtures := createTestHandler(t)
	fixtures.accountUC.view = &usecase.AccountView{
		ID:       uuid.New(),
		Email:    "alice@example.com",
		FullName: "Alice Smith",
	}

	c, rec := fixtures.request(http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"s3cretpass","full_name":"Alice Smith"}`, nil)

	require.NoError(t, fixtures.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_Register_ValidationFailure(t *testing.T) {
	fixtures := createTestHandler(t)

	c, rec := fixtures.request(http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"short","full_name":""}`, nil)

	require.NoError(t, fixtures.handler.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.False(t, fixtures.accountUC.called, "invalid input never reaches the usecase")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	fixtures := createTestHandler(t)
	fixtures.accountUC.loginErr = domainerrors.ErrInvalidCredentials

	c, rec := fixtures.request(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrongpass99"}`, nil)

	require.NoError(t, fixtures.handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAccountHandler_UpdateProfile_MissingIdentityHeader(t *testing.T) {
	fixtures := createTestHandler(t)

	c, rec := fixtures.request(http.MethodPatch, "/account/profile", `{"bio":"hello"}`, nil)

	require.NoError(t, fixtures.handler.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "X-User-Id")
}

func TestAccountHandler_UpdateProfile_EmptyPatch(t *testing.T) {
	fixtures := createTestHandler(t)

	c, rec := fixtures.request(http.MethodPatch, "/account/profile", `{}`,
		map[string]string{HeaderXUserID: uuid.NewString()})

	require.NoError(t, fixtures.handler.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_UpdateProfile_Success(t *testing.T) {
	fixtures := createTestHandler(t)
	accountID := uuid.New()
	fixtures.profileUC.view = &usecase.AccountView{ID: accountID, Email: "alice@example.com", Bio: "hello"}

	c, rec := fixtures.request(http.MethodPatch, "/account/profile", `{"bio":"hello"}`,
		map[string]string{HeaderXUserID: accountID.String()})

	require.NoError(t, fixtures.handler.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, fixtures.profileUC.gotID)
	require.NotNil(t, fixtures.profileUC.gotProfile.Bio)
	assert.Equal(t, "hello", *fixtures.profileUC.gotProfile.Bio)
	assert.Nil(t, fixtures.profileUC.gotProfile.FullName)
}

func TestAccountHandler_UploadAvatar_DecodesDataURI(t *testing.T) {
	fixtures := createTestHandler(t)
	accountID := uuid.New()
	imageData := []byte("fake-png-bytes")
	fixtures.profileUC.view = &usecase.AccountView{ID: accountID}

	payload := `{"avatar_data":"data:image/png;base64,` + base64.StdEncoding.EncodeToString(imageData) + `"}`
	c, rec := fixtures.request(http.MethodPost, "/account/avatar", payload,
		map[string]string{HeaderXUserID: accountID.String()})

	require.NoError(t, fixtures.handler.UploadAvatar(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, imageData, fixtures.profileUC.gotAvatar)
}

func TestAccountHandler_UploadAvatar_RejectsBadBase64(t *testing.T) {
	fixtures := createTestHandler(t)

	c, rec := fixtures.request(http.MethodPost, "/account/avatar", `{"avatar_data":"%%%not-base64%%%"}`,
		map[string]string{HeaderXUserID: uuid.NewString()})

	require.NoError(t, fixtures.handler.UploadAvatar(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, fixtures.profileUC.gotAvatar)
}

func TestAccountHandler_ConfirmReset_TokenGone(t *testing.T) {
	fixtures := createTestHandler(t)
	fixtures.resetUC.confirmErr = domainerrors.ErrResetTokenExpired

	c, rec := fixtures.request(http.MethodPost, "/auth/confirm-reset",
		`{"token":"some-token","new_password":"brandnewpass"}`, nil)

	require.NoError(t, fixtures.handler.ConfirmReset(c))
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESET_TOKEN_EXPIRED")
}

func TestHealthCheck(t *testing.T) {
	fixtures := createTestHandler(t)

	c, rec := fixtures.request(http.MethodGet, "/health", "", nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestAccountHandler_UpdateProfile_EmptyStringsRejected(t *testing.T) {
	fixtures := createTestHandler(t)

	c, rec := fixtures.request(http.MethodPatch, "/account/profile", `{"full_name":"","phone":"","bio":""}`,
		map[string]string{HeaderXUserID: uuid.NewString()})

	require.NoError(t, fixtures.handler.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Nil(t, fixtures.profileUC.gotProfile, "empty strings never reach the usecase")
}
