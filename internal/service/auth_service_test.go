package service

import (
	"context"
	"testing"

	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"
	"github.com/venkatesh141/Ecom/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *utils.JWTUtil) {
	t.Helper()
	db := setupTestDB(t)
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	return NewAuthService(dao.NewUserDao(db), jwtUtil), jwtUtil
}

func TestRegisterAndLogin(t *testing.T) {
	svc, jwtUtil := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{
		Name:        "Venky",
		Email:       "Venky@Example.com",
		Password:    "secret123",
		PhoneNumber: "9080123987",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	// Emails are normalized to lower case.
	assert.Equal(t, "venky@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	loggedIn, token, err := svc.Login(ctx, "venky@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := jwtUtil.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleCustomer, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	req := RegisterRequest{Name: "Venky", Email: "v@example.com", Password: "pw", PhoneNumber: "1"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, e.ERROR_USER_EXISTS, e.AsAppError(err).Code)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "v@example.com"})
	require.Error(t, err)
	assert.Equal(t, 400, e.AsAppError(err).Status)
}

func TestLogin_Failures(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "nobody@example.com", "pw")
	assert.Equal(t, 404, e.AsAppError(err).Status)

	_, err = svc.Register(ctx, RegisterRequest{Name: "V", Email: "v@example.com", Password: "right", PhoneNumber: "1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "v@example.com", "wrong")
	assert.Equal(t, e.ERROR_PASSWORD, e.AsAppError(err).Code)
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "admin", "admin@example.com", "12345", "1"))
	require.NoError(t, svc.SeedAdmin(ctx, "admin", "admin@example.com", "12345", "1"))

	admin, token, err := svc.Login(ctx, "admin@example.com", "12345")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NotEmpty(t, token)
}
