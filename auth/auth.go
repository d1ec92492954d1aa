// Package auth implements the dashboard's deliberately simple credential
// flow: users live in the local user collection, the seeded admin keeps a
// fixed password, and registered members carry no stored credential at all.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/legaldesk/legal-case-api/models"
)

const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// ErrDuplicateUsername is the business error for a registration against an
// already-taken username. It is produced before any persistence attempt.
var ErrDuplicateUsername = errors.New("username already exists")

// UserStore is the slice of the local store the auth flow needs.
type UserStore interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, u models.User) error
}

// Service resolves logins and registrations against the user collection.
type Service struct {
	Users UserStore
}

// Login returns the matching user, or nil when the credentials do not
// resolve. Only the seeded admin has a real password check; other users
// pass on presence alone in this design.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	users, err := s.Users.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		if users[i].Username == adminUsername && password != adminPassword {
			return nil, nil
		}
		return &users[i], nil
	}
	return nil, nil
}

// Register creates a MEMBER user with a generated id and avatar. The
// duplicate check runs before anything is persisted.
func (s *Service) Register(ctx context.Context, fullName, username string) (*models.User, error) {
	users, err := s.Users.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	for _, u := range users {
		if u.Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	user := models.User{
		ID:        "u_" + uuid.NewString(),
		Username:  username,
		FullName:  fullName,
		Role:      models.RoleMember,
		AvatarURL: avatarURL(fullName),
	}
	if err := s.Users.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}
	zap.S().Infow("registered user", "username", username, "id", user.ID)
	return &user, nil
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
