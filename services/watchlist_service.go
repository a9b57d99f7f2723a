//go:generate go run go.uber.org/mock/mockgen -source=watchlist_service.go -destination=../mocks/mock_watchlist_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"modwatch/domain"
	"modwatch/errors"
	"modwatch/repositories"
	"sync"

	"github.com/go-playground/validator/v10"
)

type AddOutcome string

const (
	Added          AddOutcome = "added"
	AlreadyPresent AddOutcome = "already_present"
)

type RemoveOutcome string

const (
	Removed    RemoveOutcome = "removed"
	NotPresent RemoveOutcome = "not_present"
)

type IWatchlistService interface {
	Add(guildID, userID string) (AddOutcome, error)
	Remove(guildID, userID string) (RemoveOutcome, error)
	IsMonitored(guildID, userID string) (bool, error)
	List(guildID string) ([]string, error)
}

var validate = validator.New()

// watchRequest carries the identifiers of one mutation for validation.
// A user id is a platform snowflake: digits only, 17 to 20 of them.
type watchRequest struct {
	GuildID string `validate:"required"`
	UserID  string `validate:"required,number,min=17,max=20"`
}

// WatchlistService owns every read and mutation of the watchlist table.
// Mutations run a load-mutate-save cycle serialized per guild, so two
// concurrent commands on the same guild cannot drop each other's write.
type WatchlistService struct {
	repository repositories.IWatchlistRepository
	log        *slog.Logger

	mu         sync.Mutex
	guildLocks map[string]*sync.Mutex
}

func NewWatchlistService(repository repositories.IWatchlistRepository, log *slog.Logger) *WatchlistService {
	return &WatchlistService{
		repository: repository,
		log:        log,
		guildLocks: make(map[string]*sync.Mutex),
	}
}

// Add puts a user on the guild watchlist. Idempotent: a second call for the
// same pair reports AlreadyPresent and touches nothing.
// A failed save is reported through ErrPersistenceFailure while the
// outcome still reflects the in-memory mutation the caller observed.
func (s *WatchlistService) Add(guildID, userID string) (AddOutcome, error) {
	if err := validateIdentifiers(guildID, userID); err != nil {
		return "", err
	}
	unlock := s.lockGuild(guildID)
	defer unlock()

	table := s.load()
	if !table.Add(guildID, userID) {
		return AlreadyPresent, nil
	}
	if err := s.repository.Save(table); err != nil {
		return Added, fmt.Errorf("%w: %v", errors.ErrPersistenceFailure, err)
	}
	return Added, nil
}

// Remove takes a user off the guild watchlist, idempotently.
func (s *WatchlistService) Remove(guildID, userID string) (RemoveOutcome, error) {
	if err := validateIdentifiers(guildID, userID); err != nil {
		return "", err
	}
	unlock := s.lockGuild(guildID)
	defer unlock()

	table := s.load()
	if !table.Remove(guildID, userID) {
		return NotPresent, nil
	}
	if err := s.repository.Save(table); err != nil {
		return Removed, fmt.Errorf("%w: %v", errors.ErrPersistenceFailure, err)
	}
	return Removed, nil
}

// IsMonitored is a pure read, no persistence side effect.
func (s *WatchlistService) IsMonitored(guildID, userID string) (bool, error) {
	table, err := s.repository.Load()
	if err != nil {
		return false, err
	}
	return table.Contains(guildID, userID), nil
}

// List returns the monitored user ids of a guild in insertion order.
// A guild with no entries yields an empty slice, not an error.
func (s *WatchlistService) List(guildID string) ([]string, error) {
	table, err := s.repository.Load()
	if err != nil {
		return nil, err
	}
	return table.Users(guildID), nil
}

// load falls back to an empty table when the store cannot be read, per the
// store contract. The failure is logged, not propagated: moderation
// commands must keep working on a fresh table.
func (s *WatchlistService) load() domain.WatchlistTable {
	table, err := s.repository.Load()
	if err != nil {
		s.log.Warn("Watchlist load failed, starting from an empty table", "err", err)
		return domain.WatchlistTable{}
	}
	return table
}

func (s *WatchlistService) lockGuild(guildID string) func() {
	s.mu.Lock()
	lock, ok := s.guildLocks[guildID]
	if !ok {
		lock = &sync.Mutex{}
		s.guildLocks[guildID] = lock
	}
	s.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}

func validateIdentifiers(guildID, userID string) error {
	req := watchRequest{GuildID: guildID, UserID: userID}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidIdentifier, err)
	}
	return nil
}
