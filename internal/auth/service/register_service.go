package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ezov86/nto-users/internal/auth/domain"
	"github.com/ezov86/nto-users/internal/auth/strategy"
)

// RegistrationService creates new users together with their first auth
// account.
type RegistrationService struct {
	users         domain.UserRepository
	tx            domain.TxManager
	log           *zap.Logger
	defaultScopes []string
}

func NewRegistrationService(users domain.UserRepository, tx domain.TxManager, log *zap.Logger, defaultScopes []string) *RegistrationService {
	return &RegistrationService{
		users:         users,
		tx:            tx,
		log:           log,
		defaultScopes: defaultScopes,
	}
}

// Register creates a user with the configured default scopes and attaches
// the strategy's auth account to it. Both writes happen in one transaction:
// if attachment fails the user is not persisted. A taken username surfaces
// as ErrAlreadyExists; concurrent registrations of the same name are
// resolved by the storage layer's uniqueness constraint, not by locking
// here.
func (s *RegistrationService) Register(
	ctx context.Context,
	username string,
	strat strategy.Strategy,
	data strategy.AttachData,
) (*domain.User, error) {
	user := &domain.User{
		Name:         username,
		IsDisabled:   false,
		Scopes:       s.defaultScopes,
		RegisteredAt: time.Now().UTC(),
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, user)
		if err != nil {
			return err
		}
		user = created

		return strat.AttachToUser(ctx, user, data)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered",
		zap.String("user", user.Name), zap.String("strategy", strat.Name()))

	return user, nil
}
