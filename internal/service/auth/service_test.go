package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrack/attendance-backend-go/internal/domain/auth"
	"github.com/timetrack/attendance-backend-go/internal/pkg/database"
	"github.com/timetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/timetrack/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var testAuthDB *database.DB

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func authTestInit(t *testing.T) {
	if testAuthDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	_, err := testAuthDB.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)
}

func createAuthTestUser(t *testing.T, ctx context.Context, password string) (id, username string) {
	username = fmt.Sprintf("admin-%d", time.Now().UnixNano())
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	err = testAuthDB.QueryRow(ctx, `
		INSERT INTO users (id, username, password_hash, full_name)
		VALUES (gen_random_uuid(), $1, $2, 'Test Admin')
		RETURNING id
	`, username, string(hashed)).Scan(&id)
	require.NoError(t, err)
	return id, username
}

func newTestAuthService() auth.AuthService {
	return NewAuthService(
		postgresql.NewUserRepository(testAuthDB),
		jwt.NewJWTService(testSecret, testAccessExp),
	)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	id, username := createAuthTestUser(t, ctx, "password123")
	svc := newTestAuthService()

	tokenResponse, err := svc.Login(ctx, auth.LoginRequest{
		Username: username,
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tokenResponse.AccessToken)
	assert.Greater(t, tokenResponse.AccessTokenExpiresIn, time.Now().Unix())
	assert.Equal(t, id, tokenResponse.User.ID)
	assert.Equal(t, username, tokenResponse.User.Username)
	assert.Equal(t, "Test Admin", tokenResponse.User.FullName)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	_, username := createAuthTestUser(t, ctx, "password123")
	svc := newTestAuthService()

	_, err := svc.Login(ctx, auth.LoginRequest{
		Username: username,
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	_, err := svc.Login(ctx, auth.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})

	// Indistinguishable from a wrong password
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	_, err := svc.Login(ctx, auth.LoginRequest{
		Username: "",
		Password: "",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	id, username := createAuthTestUser(t, ctx, "password123")
	svc := newTestAuthService()

	verified, err := svc.Verify(ctx, id)
	require.NoError(t, err)
	assert.True(t, verified.Valid)
	assert.Equal(t, username, verified.User.Username)

	_, err = svc.Verify(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
