package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

func TestAccountService_SignUpAndLogin(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewAccountRepository(db)
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)

	account, err := repo.FindByEmail(context.Background(), "alex@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alex@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
}

func TestAccountService_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	req := request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "s3cret-pass",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), req))

	err := svc.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestAccountService_LoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repositories.NewAccountRepository(db))

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "s3cret-pass",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
