// Package storage persists user profiles through a JSON-file datastore.
// The datastore autosaves in the background, but every profile write here is
// flushed explicitly so a role change is durable before the caller returns.
package storage

import (
	"context"
	"fmt"

	"github.com/keshon/datastore"

	"github.com/Nateu/dotty/internal/security"
	"github.com/Nateu/dotty/internal/user"
)

const profilesKey = "profiles"

type profileRecord struct {
	Identifier    string `json:"identifier"`
	SecurityLevel int    `json:"security_level"`
}

// ProfileStorage implements user.ProfileStore on top of a datastore file.
type ProfileStorage struct {
	ds *datastore.DataStore
}

func New(filePath string) (*ProfileStorage, error) {
	ds, err := datastore.New(context.Background(), filePath)
	if err != nil {
		return nil, fmt.Errorf("open datastore: %w", err)
	}
	return &ProfileStorage{ds: ds}, nil
}

func (s *ProfileStorage) Close() error {
	return s.ds.Close()
}

// RetrieveProfiles loads the complete user set. A missing key means a fresh
// store, not an error.
func (s *ProfileStorage) RetrieveProfiles() ([]*user.User, error) {
	var records []profileRecord
	exists, err := s.ds.Get(profilesKey, &records)
	if err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	if !exists {
		return nil, nil
	}

	users := make([]*user.User, 0, len(records))
	for _, rec := range records {
		level, err := security.FromValue(rec.SecurityLevel)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", rec.Identifier, err)
		}
		users = append(users, user.New(rec.Identifier, level))
	}
	return users, nil
}

// StoreProfiles overwrites the persisted user set and flushes it to disk.
func (s *ProfileStorage) StoreProfiles(users []*user.User) error {
	records := make([]profileRecord, 0, len(users))
	for _, u := range users {
		records = append(records, profileRecord{
			Identifier:    u.Identifier(),
			SecurityLevel: u.ClearanceLevel().Value(),
		})
	}
	if err := s.ds.Set(profilesKey, records); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	if err := s.ds.Flush(); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

// EnsureOwner seeds the owner profile on a store that has no owner yet, so a
// first run starts with somebody in charge.
func (s *ProfileStorage) EnsureOwner(identifier string) error {
	users, err := s.RetrieveProfiles()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Identifier() == identifier && u.ClearanceLevel() == security.Owner {
			return nil
		}
	}
	return s.StoreProfiles(append(users, user.New(identifier, security.Owner)))
}
