//go:generate go run go.uber.org/mock/mockgen -source=watchlist.go -destination=../mocks/mock_watchlist_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"modwatch/domain"
	"os"
	"path/filepath"
)

type IWatchlistRepository interface {
	Load() (domain.WatchlistTable, error)
	Save(table domain.WatchlistTable) error
}

// WatchlistRepository persists the watchlist as a human-readable JSON
// document mapping guild id to an array of user id strings.
type WatchlistRepository struct {
	path string
	log  *slog.Logger
}

// NewWatchlistRepository creates an empty document on first run so the
// system always starts from a well-defined state.
func NewWatchlistRepository(path string, log *slog.Logger) (WatchlistRepository, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeAtomic(path, domain.WatchlistTable{}); err != nil {
			return WatchlistRepository{}, fmt.Errorf("initialize watchlist document: %w", err)
		}
	}
	return WatchlistRepository{path: path, log: log}, nil
}

// Load reads the persisted table. An absent or unparsable document yields
// an empty table instead of an error: the bot must always come up.
func (r WatchlistRepository) Load() (domain.WatchlistTable, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.WatchlistTable{}, nil
		}
		return domain.WatchlistTable{}, fmt.Errorf("read watchlist document: %w", err)
	}
	var table domain.WatchlistTable
	if err := json.Unmarshal(data, &table); err != nil {
		r.log.Warn("Watchlist document is corrupted, starting from an empty table", "path", r.path, "err", err)
		return domain.WatchlistTable{}, nil
	}
	if table == nil {
		table = domain.WatchlistTable{}
	}
	return table, nil
}

// Save rewrites the whole document. The write goes to a temp file in the
// same directory followed by a rename, so a concurrent Load never observes
// a half-written table.
func (r WatchlistRepository) Save(table domain.WatchlistTable) error {
	if err := writeAtomic(r.path, table); err != nil {
		return fmt.Errorf("write watchlist document: %w", err)
	}
	return nil
}

func writeAtomic(path string, table domain.WatchlistTable) error {
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
