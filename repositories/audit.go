//go:generate go run go.uber.org/mock/mockgen -source=audit.go -destination=../mocks/mock_audit_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"modwatch/domain"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IAuditRepository interface {
	StoreRecord(record domain.AuditRecord) error
	GetRecords(guildID string, limit int) ([]domain.AuditRecord, error)
}

// AuditRepository keeps a local archive of every delivered audit record
// so the viewer can report history without the platform.
type AuditRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAuditRepository(db *badger.DB, log *slog.Logger) AuditRepository {
	return AuditRepository{db: db, log: log}
}

// diskRecord is the stored shape of an audit record.
type diskRecord struct {
	ID          string           `json:"id"`
	GuildID     string           `json:"guild_id"`
	ChannelID   string           `json:"channel_id"`
	MessageID   string           `json:"message_id"`
	AuthorID    string           `json:"author_id"`
	AuthorName  string           `json:"author_name"`
	AvatarURL   string           `json:"avatar_url,omitempty"`
	Content     string           `json:"content,omitempty"`
	Attachments []diskAttachment `json:"attachments,omitempty"`
	Permalink   string           `json:"permalink,omitempty"`
	PostedAt    int64            `json:"posted_at"`
}

type diskAttachment struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
}

// StoreRecord persists one record in BadgerDB.
// The key is formatted as "audit:{guild_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the record UUID as a collision
//     disconnector if two records land on the same nanosecond.
func (a AuditRepository) StoreRecord(record domain.AuditRecord) error {
	key := fmt.Sprintf("audit:%s:%019d:%s",
		record.GuildID,
		record.PostedAt.UnixNano(),
		record.ID,
	)
	bytes, err := json.Marshal(fromRecord(record))
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetRecords retrieves the most recent records of a guild via a reverse
// prefix scan. The padded timestamp in the key keeps them time-sorted.
func (a AuditRepository) GetRecords(guildID string, limit int) ([]domain.AuditRecord, error) {
	var rawRecords [][]byte
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("audit:%s:", guildID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible timestamp, then walk backwards.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(rawRecords) == limit {
				a.log.Debug(fmt.Sprintf("Maximum of %d records reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				rawRecords = append(rawRecords, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var records []domain.AuditRecord
	for _, raw := range rawRecords {
		var stored diskRecord
		if err = json.Unmarshal(raw, &stored); err != nil {
			return nil, err
		}
		record, err := toRecord(stored)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func fromRecord(record domain.AuditRecord) diskRecord {
	return diskRecord{
		ID:         record.ID.String(),
		GuildID:    record.GuildID,
		ChannelID:  record.ChannelID,
		MessageID:  record.MessageID,
		AuthorID:   record.Author.ID,
		AuthorName: record.Author.Name,
		AvatarURL:  record.Author.AvatarURL,
		Content:    record.Content,
		Attachments: lo.Map(record.Attachments, func(att domain.Attachment, _ int) diskAttachment {
			return diskAttachment{Filename: att.Filename, URL: att.URL, ContentType: att.ContentType}
		}),
		Permalink: record.Permalink,
		PostedAt:  record.PostedAt.UnixNano(),
	}
}

func toRecord(stored diskRecord) (domain.AuditRecord, error) {
	parsedID, err := uuid.Parse(stored.ID)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	return domain.AuditRecord{
		ID:        parsedID,
		GuildID:   stored.GuildID,
		ChannelID: stored.ChannelID,
		MessageID: stored.MessageID,
		Author: domain.User{
			ID:        stored.AuthorID,
			Name:      stored.AuthorName,
			AvatarURL: stored.AvatarURL,
		},
		Content: stored.Content,
		Attachments: lo.Map(stored.Attachments, func(att diskAttachment, _ int) domain.Attachment {
			return domain.Attachment{Filename: att.Filename, URL: att.URL, ContentType: att.ContentType}
		}),
		Permalink: stored.Permalink,
		PostedAt:  time.Unix(0, stored.PostedAt).UTC(),
	}, nil
}
