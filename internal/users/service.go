package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/identity"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/models"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/logger"
)

// ErrProfileFetch is returned when the one-time avatar conversion fails;
// the login attempt fails as a whole and no partial user is created.
var ErrProfileFetch = errors.New("profile fetch failed")

// AvatarFetcher converts a provider picture URL into a stored text encoding.
type AvatarFetcher interface {
	FetchBase64(ctx context.Context, url string) (string, error)
}

// Service maps verified email addresses to durable user records,
// creating a record on first sight.
type Service struct {
	repo    UserRepository
	avatars AvatarFetcher
}

func NewService(r UserRepository, a AvatarFetcher) *Service {
	return &Service{repo: r, avatars: a}
}

// ResolveOrCreate looks up the user for the verified claims by email,
// creating one on first sight. An existing record is returned unchanged;
// provider-side name/picture drift is not synced.
func (s *Service) ResolveOrCreate(ctx context.Context, claims *identity.Claims) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	var picture string
	if claims.Picture != "" {
		picture, err = s.avatars.FetchBase64(ctx, claims.Picture)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
		}
	}

	u = &models.User{Name: claims.Name, Email: claims.Email, Picture: picture}
	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			// lost a concurrent first-login race; the stored record wins
			logger.Debugf("concurrent signup for %s, re-reading", claims.Email)
			existing, lookupErr := s.repo.GetByEmail(ctx, claims.Email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if existing == nil {
				return nil, fmt.Errorf("%w: user vanished after duplicate insert", ErrProfileFetch)
			}
			return existing, nil
		}
		return nil, err
	}
	logger.Infof("new user created: %s", created.Email)
	return created, nil
}

// GetByID returns the user for the given identifier, or nil when absent.
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
