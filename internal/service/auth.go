package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aicad-labs/backend/internal/events"
	"github.com/aicad-labs/backend/internal/hash"
	"github.com/aicad-labs/backend/internal/logging"
	"github.com/aicad-labs/backend/internal/models"
	"github.com/aicad-labs/backend/internal/repo"
	"github.com/aicad-labs/backend/internal/tokens"
)

var (
	ErrValidation         = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens tokens.Service
	Events *events.Producer
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Company  string
	Bio      string
}

type AuthResult struct {
	User  *models.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, ErrValidation
	}

	if _, err := s.Repo.UserByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	username, err := s.deriveUsername(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	digest, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        in.Email,
		PasswordHash: digest,
		Name:         in.Name,
		Company:      in.Company,
		Bio:          in.Bio,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// unique-index backstop for a concurrent register with the
			// same email or derived username
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TopicUserEvents, strconv.FormatUint(uint64(user.ID), 10), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &AuthResult{User: &user, Token: token}, nil
}

// deriveUsername takes the local part of the email and appends an
// incrementing integer suffix until the store reports no collision.
func (s *AuthService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := email
	if i := strings.Index(email, "@"); i >= 0 {
		base = email[:i]
	}

	candidate := base
	for n := 1; ; n++ {
		taken, err := s.Repo.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(n)
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, ErrValidation
	}

	// unknown email and wrong password collapse into one error so the
	// response cannot be used to enumerate accounts
	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	l.Info("login_successful", "user_id", user.ID)
	s.publish(ctx, events.TopicUserEvents, strconv.FormatUint(uint64(user.ID), 10), map[string]any{
		"type":     "user_logged_in",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &AuthResult{User: user, Token: token}, nil
}

type UpdateProfileInput struct {
	Name    *string
	Email   *string
	Company *string
	Bio     *string
}

// UpdateProfile applies the fields present in the input. The username is
// never updatable through this path.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User, in UpdateProfileInput) (*models.User, error) {
	if in.Email != nil {
		taken, err := s.Repo.EmailTaken(ctx, *in.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Contact(ctx context.Context, email, message string) error {
	if email == "" || message == "" {
		return ErrValidation
	}

	msg := models.ContactMessage{Email: email, Message: message}
	if err := s.Repo.CreateContactMessage(ctx, &msg); err != nil {
		return err
	}

	s.publish(ctx, events.TopicLeadEvents, email, map[string]any{
		"type":  "contact_received",
		"email": email,
	})
	return nil
}

// JoinWaitlist is idempotent: an email already on the list is a success.
func (s *AuthService) JoinWaitlist(ctx context.Context, email string) error {
	if email == "" {
		return ErrValidation
	}

	if on, err := s.Repo.OnWaitlist(ctx, email); err != nil {
		return err
	} else if on {
		return nil
	}

	entry := models.WaitlistEntry{Email: email}
	if err := s.Repo.AddToWaitlist(ctx, &entry); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil
		}
		return err
	}

	s.publish(ctx, events.TopicLeadEvents, email, map[string]any{
		"type":  "waitlist_joined",
		"email": email,
	})
	return nil
}

// publish sends a domain event best-effort: failures are logged and the
// request still succeeds.
func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if !s.Events.Enabled() {
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.Events.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "error", err)
	}
}
