package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/mock"
	"github.com/unidesk/challan-desk/models"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockPortalAdapter, *mock.MockSessionService) {
	t.Helper()

	mockAdapter := mock.NewMockPortalAdapter(ctrl)
	mockSessions := mock.NewMockSessionService(ctrl)
	svc := NewAuthService(mockAdapter, mockSessions, logger.Nop())

	return svc, mockAdapter, mockSessions
}

// Blank fields and password mismatches must be rejected before any
// request leaves the client; no adapter expectations are registered.
func TestAuthService_Register_ValidationNeverCallsPortal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	cases := []struct {
		testName                               string
		name, gmail, password, confirmPassword string
		wantErr                                error
	}{
		{"blank name", "  ", "a@uni.edu", "pw", "pw", ErrValidationBlankFields},
		{"blank gmail", "Alice", "", "pw", "pw", ErrValidationBlankFields},
		{"blank password", "Alice", "a@uni.edu", "", "pw", ErrValidationBlankFields},
		{"blank confirmation", "Alice", "a@uni.edu", "pw", "   ", ErrValidationBlankFields},
		{"password mismatch", "Alice", "a@uni.edu", "pw", "other", ErrPasswordsDoNotMatch},
	}

	for _, tc := range cases {
		t.Run(tc.testName, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.name, tc.gmail, tc.password, tc.confirmPassword)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAuthService_Register_Success_NoSessionEstablished(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Signup(ctx, models.SignupRequest{
			Name:            "Alice",
			Gmail:           "alice@uni.edu",
			Password:        "secret",
			ConfirmPassword: "secret",
		}).
		Return(models.SignupResponse{Message: "User registered successfully"}, nil)

	// No Establish expectation: registration must not log the user in.
	msg, err := svc.Register(ctx, "Alice", "alice@uni.edu", "secret", "secret")

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", msg)
}

func TestAuthService_Register_PortalRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Signup(ctx, gomock.Any()).
		Return(models.SignupResponse{}, adapter.ErrConflict)

	_, err := svc.Register(ctx, "Alice", "alice@uni.edu", "secret", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().
			Login(ctx, models.LoginRequest{Gmail: "alice@uni.edu", Password: "secret"}).
			Return(models.LoginResponse{Token: "issued-token", Message: "Login successful"}, nil),
		mockSessions.EXPECT().
			Establish(ctx, "issued-token", "alice@uni.edu").
			Return(nil),
	)

	require.NoError(t, svc.Login(ctx, "alice@uni.edu", "secret"))
}

func TestAuthService_Login_BlankFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Login(ctx, "", "secret"), ErrValidationBlankFields)
	assert.ErrorIs(t, svc.Login(ctx, "alice@uni.edu", "   "), ErrValidationBlankFields)
}

func TestAuthService_Login_EmptyTokenIssued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.LoginResponse{Token: "   "}, nil)

	assert.ErrorIs(t, svc.Login(ctx, "alice@uni.edu", "secret"), ErrEmptyTokenIssued)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	err := svc.Login(ctx, "alice@uni.edu", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestAuthService_Login_EstablishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	persistErr := errors.New("disk full")

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.LoginResponse{Token: "issued-token"}, nil)
	mockSessions.EXPECT().
		Establish(ctx, "issued-token", "alice@uni.edu").
		Return(persistErr)

	assert.ErrorIs(t, svc.Login(ctx, "alice@uni.edu", "secret"), persistErr)
}
