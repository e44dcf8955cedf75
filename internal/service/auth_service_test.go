package service

import (
	"fmt"
	"testing"

	"github.com/prajwalb/sameeksha/config"
	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	nextID uint
	users  []*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func (r *stubUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *stubUserRepo) FindByID(id uint) (*model.User, error) {
	for _, stored := range r.users {
		if stored.ID == id {
			found := *stored
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, stored := range r.users {
		if stored.Email == email {
			found := *stored
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, stored := range r.users {
		if stored.Username != nil && *stored.Username == username {
			found := *stored
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubSigner struct{}

func (stubSigner) SignToken(userID uint, role string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

func TestRegisterFieldValidation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	_, err := svc.Register(dto.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "shrt",
	})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "username")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "password")
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	result, err := svc.Register(dto.RegisterRequest{
		Username: "user1",
		Email:    "user1@gmail.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, model.RoleUser, result.User.Role, "role defaults to user")
	assert.Equal(t, "user1@gmail.com", result.User.Email)

	_, err = svc.Register(dto.RegisterRequest{
		Username: "someone-else",
		Email:    "user1@gmail.com",
		Password: "secret2",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicate))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	_, err := svc.Register(dto.RegisterRequest{Username: "asha", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterRequest{Username: "asha", Email: "b@example.com", Password: "secret1"})
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicate))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	_, err := svc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	_, err := svc.Register(dto.RegisterRequest{Email: "a@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequest{Email: "a@example.com", Password: "wrong-horse"})
	assert.True(t, apperror.IsKind(err, apperror.KindAuth))
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	_, err := svc.Register(dto.RegisterRequest{Username: "kiran", Email: "k@example.com", Password: "secret1"})
	require.NoError(t, err)

	result, err := svc.Login(dto.LoginRequest{Email: "k@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token-1-user", result.Token)
	require.NotNil(t, result.User.Username)
	assert.Equal(t, "kiran", *result.User.Username)
}

func TestSeedAdminAndLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, stubSigner{})

	admin := config.Admin{Email: "admin@sameeksha.org", Password: "bootstrap-pass"}
	require.NoError(t, svc.SeedAdmin(admin))
	// Seeding again is a no-op.
	require.NoError(t, svc.SeedAdmin(admin))
	require.Len(t, repo.users, 1)

	result, err := svc.Login(dto.LoginRequest{Email: admin.Email, Password: admin.Password})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, result.User.Role)
	assert.Equal(t, model.ProjectAdmin, result.User.Project)
}

func TestSeedAdminSkipsWhenUnconfigured(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, stubSigner{})

	require.NoError(t, svc.SeedAdmin(config.Admin{}))
	assert.Empty(t, repo.users)
}

func TestGetCurrentUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), stubSigner{})

	registered, err := svc.Register(dto.RegisterRequest{Email: "me@example.com", Password: "secret1"})
	require.NoError(t, err)

	profile, err := svc.GetCurrentUser(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", profile.Email)

	_, err = svc.GetCurrentUser(9999)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
