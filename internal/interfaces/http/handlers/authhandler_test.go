package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpit/licensedesk/internal/application/user/dto"
	"github.com/corpit/licensedesk/internal/application/user/usecases"
	"github.com/corpit/licensedesk/internal/interfaces/http/handlers/testutil"
	"github.com/corpit/licensedesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockRegisterUC struct {
	result *dto.UserResponse
	err    error
}

func (m *mockRegisterUC) Execute(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.result, m.err
}

type mockLoginUC struct {
	result  *dto.LoginResponse
	err     error
	lastCmd usecases.LoginWithPasswordCommand
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*dto.LoginResponse, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockChangeUsernameUC struct {
	result     *dto.UserResponse
	err        error
	lastUserID uint
}

func (m *mockChangeUsernameUC) Execute(ctx context.Context, userID uint, req dto.ChangeUsernameRequest) (*dto.UserResponse, error) {
	m.lastUserID = userID
	return m.result, m.err
}

type mockChangePasswordUC struct {
	err error
}

func (m *mockChangePasswordUC) Execute(ctx context.Context, userID uint, req dto.ChangePasswordRequest) error {
	return m.err
}

type mockDeleteAccountUC struct {
	err error
}

func (m *mockDeleteAccountUC) Execute(ctx context.Context, userID uint, req dto.DeleteAccountRequest) error {
	return m.err
}

func testUserResponse() *dto.UserResponse {
	return &dto.UserResponse{
		ID:        1,
		Username:  "alice",
		Email:     "alice@corpit.local",
		Role:      "admin",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// =====================================================================
// AuthHandler
// =====================================================================

func TestAuthHandler_Register_Success(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{result: testUserResponse()}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"username":         "alice",
		"email":            "alice@corpit.local",
		"password":         "s3cretpass",
		"confirm_password": "s3cretpass",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "alice", user.Username)
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"username":         "alice",
		"email":            "alice@corpit.local",
		"password":         "s3cretpass",
		"confirm_password": "different",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Contains(t, resp.Error.Details, "confirm_password")
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	handler := NewAuthHandler(&mockRegisterUC{err: errors.NewConflictError("username already taken")}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", map[string]string{
		"username":         "alice",
		"email":            "alice@corpit.local",
		"password":         "s3cretpass",
		"confirm_password": "s3cretpass",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_PassesClientIP(t *testing.T) {
	loginUC := &mockLoginUC{result: &dto.LoginResponse{
		AccessToken: "token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		User:        *testUserResponse(),
	}}
	handler := NewAuthHandler(nil, loginUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
		"username": "alice",
		"password": "s3cretpass",
	})
	c.Request.RemoteAddr = "10.1.2.3:54321"

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", loginUC.lastCmd.Username)
	assert.Equal(t, "10.1.2.3", loginUC.lastCmd.IPAddress)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad credentials", errors.NewUnauthorizedError("invalid username or password"), http.StatusUnauthorized},
		{"throttled", errors.NewRateLimitedError("too many login attempts"), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(nil, &mockLoginUC{err: tt.err}, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", map[string]string{
				"username": "alice",
				"password": "wrong",
			})

			handler.Login(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAuthHandler_Login_MalformedJSON(t *testing.T) {
	handler := NewAuthHandler(nil, &mockLoginUC{}, testutil.NewMockLogger())
	c, w := testutil.NewRawTestContext(http.MethodPost, "/auth/login", `{"username":`)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// SettingsHandler
// =====================================================================

func TestSettingsHandler_ChangeUsername(t *testing.T) {
	uc := &mockChangeUsernameUC{result: testUserResponse()}
	handler := NewSettingsHandler(uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/settings/username", map[string]string{
		"new_username": "alice2",
		"password":     "s3cretpass",
	})
	testutil.SetAuthContext(c, 42)

	handler.ChangeUsername(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), uc.lastUserID)
}

func TestSettingsHandler_ChangeUsername_Unauthenticated(t *testing.T) {
	handler := NewSettingsHandler(&mockChangeUsernameUC{}, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/settings/username", map[string]string{
		"new_username": "alice2",
		"password":     "s3cretpass",
	})

	handler.ChangeUsername(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSettingsHandler_ChangePassword(t *testing.T) {
	body := map[string]string{
		"current_password": "oldpassword",
		"new_password":     "newpassword",
		"confirm_password": "newpassword",
	}

	t.Run("success", func(t *testing.T) {
		handler := NewSettingsHandler(nil, &mockChangePasswordUC{}, nil, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPut, "/settings/password", body)
		testutil.SetAuthContext(c, 1)

		handler.ChangePassword(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		handler := NewSettingsHandler(nil, &mockChangePasswordUC{err: errors.NewUnauthorizedError("current password is incorrect")}, nil, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPut, "/settings/password", body)
		testutil.SetAuthContext(c, 1)

		handler.ChangePassword(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("too short", func(t *testing.T) {
		handler := NewSettingsHandler(nil, &mockChangePasswordUC{}, nil, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPut, "/settings/password", map[string]string{
			"current_password": "oldpassword",
			"new_password":     "short",
			"confirm_password": "short",
		})
		testutil.SetAuthContext(c, 1)

		handler.ChangePassword(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSettingsHandler_DeleteAccount(t *testing.T) {
	handler := NewSettingsHandler(nil, nil, &mockDeleteAccountUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodDelete, "/settings/account", map[string]string{"password": "s3cretpass"})
	testutil.SetAuthContext(c, 9)

	handler.DeleteAccount(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
