package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/prajwalb/sameeksha/config"
	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/prajwalb/sameeksha/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
	bcryptCost     = 10
)

var validate = validator.New()

// TokenSigner issues the bearer token embedded in auth responses.
// Satisfied by middleware.Auth.
type TokenSigner interface {
	SignToken(userID uint, role string) (string, error)
}

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginRequest) (*dto.AuthResponseDTO, error)
	GetCurrentUser(userID uint) (*dto.UserProfileDTO, error)
	// SeedAdmin creates the administrator account at provisioning time, so
	// login stays a uniform lookup path with no special-cased credentials.
	SeedAdmin(admin config.Admin) error
}

type authService struct {
	userRepo repository.UserRepository
	signer   TokenSigner
}

func NewAuthService(userRepo repository.UserRepository, signer TokenSigner) AuthService {
	return &authService{userRepo: userRepo, signer: signer}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponseDTO, error) {
	fields := map[string]string{}

	username := strings.TrimSpace(req.Username)
	if username != "" && utf8.RuneCountInString(username) < minUsernameLen {
		fields["username"] = fmt.Sprintf("username must be at least %d characters", minUsernameLen)
	}
	email := strings.TrimSpace(req.Email)
	if err := validate.Var(email, "required,email"); err != nil {
		fields["email"] = "a valid email address is required"
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLen {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLen)
	}
	if len(fields) > 0 {
		return nil, apperror.Validation("invalid registration data", fields)
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperror.Duplicate("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Register: email lookup failed")
		return nil, apperror.Store(err)
	}
	if username != "" {
		if _, err := s.userRepo.FindByUsername(username); err == nil {
			return nil, apperror.Duplicate("username already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Register: username lookup failed")
			return nil, apperror.Store(err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Store(err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	project := req.Project
	if project == "" {
		project = model.ProjectOne
	}

	user := model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Project:      project,
	}
	if username != "" {
		user.Username = &username
	}

	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Register: failed to create user")
		return nil, apperror.Store(err)
	}

	token, err := s.signer.SignToken(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Store(err)
	}

	log.Info().Uint("userID", user.ID).Str("role", user.Role).Msg("User registered")
	return &dto.AuthResponseDTO{Token: token, User: profileOf(&user)}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponseDTO, error) {
	email := strings.TrimSpace(req.Email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		log.Error().Err(err).Msg("Login: email lookup failed")
		return nil, apperror.Store(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Auth("invalid credentials")
	}

	token, err := s.signer.SignToken(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.AuthResponseDTO{Token: token, User: profileOf(user)}, nil
}

func (s *authService) GetCurrentUser(userID uint) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Store(err)
	}
	profile := profileOf(user)
	return &profile, nil
}

func (s *authService) SeedAdmin(admin config.Admin) error {
	if admin.Email == "" || admin.Password == "" {
		log.Warn().Msg("SeedAdmin: ADMIN_EMAIL/ADMIN_PASSWORD not configured, skipping")
		return nil
	}

	if _, err := s.userRepo.FindByEmail(admin.Email); err == nil {
		return nil // already provisioned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.Store(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcryptCost)
	if err != nil {
		return apperror.Store(err)
	}

	username := "admin"
	user := model.User{
		Username:     &username,
		Email:        admin.Email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Project:      model.ProjectAdmin,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return apperror.Store(err)
	}

	log.Info().Str("email", admin.Email).Msg("Administrator account seeded")
	return nil
}

func profileOf(user *model.User) dto.UserProfileDTO {
	var profile dto.UserProfileDTO
	if err := copier.Copy(&profile, user); err != nil {
		log.Error().Err(err).Msg("Failed to copy User model to profile DTO")
	}
	return profile
}
