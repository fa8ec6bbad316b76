package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/ai_translator/internal/events"
	"github.com/Skotchmaster/ai_translator/internal/logging"
	"github.com/Skotchmaster/ai_translator/internal/repo"
	"github.com/Skotchmaster/ai_translator/internal/secret"
	"github.com/Skotchmaster/ai_translator/internal/token"
)

// ErrInvalidCredentials covers every verification outcome the caller is not
// allowed to distinguish: unknown user, wrong credential, and store failure.
var ErrInvalidCredentials = errors.New("invalid username or password")

type Identity struct {
	Username string
}

type AuthService struct {
	Repo     repo.UserRepo
	Secrets  *secret.Provider
	Producer *events.Producer
}

// Verify checks the supplied credential against the stored record with an
// exact string comparison. The client sends a pre-hashed value and the
// server never re-hashes; the comparison algorithm is part of the wire
// contract and must not change.
func (s *AuthService) Verify(ctx context.Context, username, credential string) (*Identity, error) {
	l := logging.FromContext(ctx).With("svc", "auth.verify", "username", username)

	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login failed", "reason", "user not found")
			return nil, ErrInvalidCredentials
		}
		// Store failures degrade to an auth failure externally, but are
		// logged with their cause so they stay visible to alerting.
		l.Error("login failed", "reason", "store error", "error", err)
		return nil, ErrInvalidCredentials
	}

	if user.PasswordHash != credential {
		l.Warn("login failed", "reason", "invalid credential")
		return nil, ErrInvalidCredentials
	}

	l.Info("credentials verified")
	return &Identity{Username: user.Username}, nil
}

// Login runs the full flow: verify, load the signing secret, issue a token.
// Verification runs first, so bad credentials yield ErrInvalidCredentials
// even when the secret is missing.
func (s *AuthService) Login(ctx context.Context, username, credential string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	id, err := s.Verify(ctx, username, credential)
	if err != nil {
		return "", err
	}

	signingSecret, err := s.Secrets.Get()
	if err != nil {
		l.Error("login failed", "reason", "configuration error", "error", err)
		return "", err
	}

	signed, err := token.Issue(id.Username, signingSecret)
	if err != nil {
		return "", fmt.Errorf("token issue: %w", err)
	}

	s.publish(ctx, id.Username, "user_logged_in")

	return signed, nil
}

func (s *AuthService) publish(ctx context.Context, username, eventType string) {
	event := map[string]interface{}{
		"type":     eventType,
		"username": username,
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.Producer.PublishEvent(pubCtx, username, event); err != nil {
		logging.FromContext(ctx).Error("event publish error", "type", eventType, "error", err)
	}
}
