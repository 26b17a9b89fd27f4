package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/employee-service/internal/config"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

func newAuthService(repo *fakeManagerRepo) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
			BcryptCost:      bcrypt.MinCost,
		},
	}
	return NewAuthService(cfg, AuthDependencies{ManagerRepo: repo})
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeManagerRepo{})

	manager, err := svc.Register(context.Background(), RegisterInput{
		Name:       "A",
		Email:      "a@x.com",
		Password:   "Passw0rd",
		Department: "Engineering",
	})
	require.NoError(t, err)
	require.NotEmpty(t, manager.ID)
	require.Equal(t, "a@x.com", manager.Email)
	require.NotEqual(t, "Passw0rd", manager.PasswordHash)
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeManagerRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:  "A",
		Email: "a@x.com",
	})
	require.Error(t, err)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "VALIDATION_FAILED", de.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &fakeManagerRepo{}
	svc := newAuthService(repo)

	input := RegisterInput{Name: "A", Email: "a@x.com", Password: "Passw0rd", Department: "Engineering"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "CONFLICT", de.Code)
	require.Len(t, repo.managers, 1, "second record must not be created")
}

func TestLogin_TokenDecodesToManagerID(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeManagerRepo{})

	registered, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@x.com", Password: "Passw0rd", Department: "Engineering",
	})
	require.NoError(t, err)

	manager, token, _, err := svc.Login(context.Background(), "a@x.com", "Passw0rd")
	require.NoError(t, err)
	require.Equal(t, registered.ID, manager.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, claims.ManagerID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeManagerRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@x.com", Password: "Passw0rd", Department: "Engineering",
	})
	require.NoError(t, err)

	_, token, _, err := svc.Login(context.Background(), "a@x.com", "wrong")
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "UNAUTHORIZED", de.Code)
	require.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeManagerRepo{})

	_, _, _, err := svc.Login(context.Background(), "nobody@x.com", "Passw0rd")
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "UNAUTHORIZED", de.Code)
	require.Equal(t, "invalid credentials", de.Message)
}
