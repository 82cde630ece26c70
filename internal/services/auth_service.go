package services

import (
	"database/sql"
	"errors"

	"driveline/internal/apperr"
	"driveline/internal/domain"
	"driveline/internal/models"
	"driveline/internal/repos"
	"driveline/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users}
}

// Session pairs the public user record with the opaque token the client
// presents on later requests.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Signup registers a user. Unknown role strings are rejected rather than
// silently downgraded to customer, and the stored password is always the
// bcrypt hash, never the plaintext.
func (s *AuthService) Signup(email, password, name, role string) (Session, error) {
	email, ok := validate.Email(email)
	if !ok {
		return Session{}, apperr.Validation("email, password, and name are required")
	}
	if !validate.Password(password) {
		return Session{}, apperr.Validation("password must be 8-72 characters")
	}
	name, ok = validate.Name(name)
	if !ok {
		return Session{}, apperr.Validation("email, password, and name are required")
	}
	role, ok = validate.Role(role)
	if !ok {
		return Session{}, apperr.Validation("role must be customer or admin")
	}

	exists, err := s.Users.ExistsByEmail(email)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	if exists {
		return Session{}, apperr.Conflict("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	created, err := s.Users.Create(domain.UserRecord{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return Session{}, apperr.Internal(err)
	}

	return s.openSession(created)
}

// Login verifies credentials and issues a fresh token. Every failure mode
// reports the same message so the response doesn't reveal which field was
// wrong.
func (s *AuthService) Login(email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, apperr.Validation("email and password are required")
	}
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, apperr.Unauthorized("invalid email or password")
	}
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Session{}, apperr.Unauthorized("invalid email or password")
	}
	return s.openSession(*u)
}

// CurrentUser resolves a bearer token to its user.
func (s *AuthService) CurrentUser(token string) (models.User, error) {
	if token == "" {
		return models.User{}, apperr.Unauthorized("authentication required")
	}
	u, err := s.Users.SessionUser(token)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperr.Unauthorized("authentication required")
	}
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}
	return models.UserFromRecord(*u), nil
}

func (s *AuthService) openSession(u domain.UserRecord) (Session, error) {
	token := uuid.NewString()
	if err := s.Users.BindSession(token, u.ID); err != nil {
		return Session{}, apperr.Internal(err)
	}
	return Session{User: models.UserFromRecord(u), Token: token}, nil
}
