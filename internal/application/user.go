package application

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/linskybing/bootcamp-go/internal/api/middleware"
	"github.com/linskybing/bootcamp-go/internal/domain/user"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos    *repository.Repos
	tokenTTL time.Duration
}

func NewUserService(repos *repository.Repos, tokenTTL time.Duration) *UserService {
	return &UserService{
		Repos:    repos,
		tokenTTL: tokenTTL,
	}
}

func (s *UserService) TokenTTL() time.Duration { return s.tokenTTL }

// Login issues a token for any active account. Whether the account may
// moderate is decided per request by the admin middleware.
func (s *UserService) Login(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.HashedPassword), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", ErrInactiveUser
	}

	token, err := middleware.GenerateToken(usr, s.tokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) Create(input user.CreateUserInput) (user.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	taken, err := s.Repos.User.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return user.User{}, err
	}
	if taken {
		return user.User{}, ErrUserTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHash
	}

	usr := user.User{
		Username:       username,
		Email:          email,
		FullName:       strings.TrimSpace(input.FullName),
		HashedPassword: string(hashed),
		IsActive:       true,
		IsAdmin:        input.IsAdmin,
	}
	if input.IsActive != nil {
		usr.IsActive = *input.IsActive
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrUserTaken
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) List(skip, limit int) ([]user.User, error) {
	return s.Repos.User.ListUsers(skip, limit)
}

func (s *UserService) Get(id string) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	return usr, notFound(err)
}

func (s *UserService) Update(id string, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Get(id)
	if err != nil {
		return user.User{}, err
	}

	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHash
		}
		usr.HashedPassword = string(hashed)
	}
	if input.Email != nil {
		usr.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.FullName != nil {
		usr.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.IsActive != nil {
		usr.IsActive = *input.IsActive
	}
	if input.IsAdmin != nil {
		usr.IsAdmin = *input.IsAdmin
	}
	now := time.Now()
	usr.UpdatedAt = &now

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) Delete(id, actorID string) error {
	if id == actorID {
		return ErrDeleteSelf
	}
	return notFound(s.Repos.User.DeleteUser(id))
}

// SeedAdmin creates the initial administrator when username is set and no
// account with that name exists yet.
func (s *UserService) SeedAdmin(username, password, email string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := s.Repos.User.GetUserByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if email == "" {
		email = username + "@localhost"
	}
	_, err = s.Create(user.CreateUserInput{
		Username: username,
		Email:    email,
		FullName: "Administrator",
		Password: password,
		IsAdmin:  true,
	})
	if err == nil {
		log.Printf("Seeded admin user %q", username)
	}
	return err
}
