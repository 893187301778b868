// Package store persists operator accounts in a single-file bbolt
// database, which is plenty for a panel administering one host.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/dockpanel/dockpanel/internal/core/domain"
	"github.com/dockpanel/dockpanel/internal/core/ports"
)

var usersBucket = []byte("users")

// BoltStore implements ports.UserStore on top of bbolt. Keys are
// usernames, so uniqueness is the bucket's key uniqueness.
type BoltStore struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database file and ensures the users
// bucket exists. The returned store is safe for concurrent use and must be
// closed on shutdown.
func Open(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(usersBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init user store: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Create stores a new user. The existence check and the write happen in
// one transaction, so two concurrent registrations of the same name
// cannot both succeed.
func (s *BoltStore) Create(username, passwordHash string) (domain.User, error) {
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(usersBucket)
		if b.Get([]byte(username)) != nil {
			return ports.ErrUsernameTaken
		}
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put([]byte(username), raw)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByUsername looks a user up by the bucket key.
func (s *BoltStore) GetByUsername(username string) (domain.User, error) {
	var user domain.User
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(usersBucket).Get([]byte(username))
		if raw == nil {
			return ports.ErrUserNotFound
		}
		return json.Unmarshal(raw, &user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByID scans for a user by id. The bucket is keyed by username, but
// the panel's user counts make a scan a non-issue.
func (s *BoltStore) GetByID(id string) (domain.User, error) {
	var user domain.User
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(usersBucket).ForEach(func(_, raw []byte) error {
			var u domain.User
			if err := json.Unmarshal(raw, &u); err != nil {
				return err
			}
			if u.ID == id {
				user = u
				found = true
			}
			return nil
		})
	})
	if err != nil {
		return domain.User{}, err
	}
	if !found {
		return domain.User{}, ports.ErrUserNotFound
	}
	return user, nil
}

// UpdatePassword replaces the stored hash for the given user id.
func (s *BoltStore) UpdatePassword(id, passwordHash string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(usersBucket)
		var key []byte
		var user domain.User
		err := b.ForEach(func(k, raw []byte) error {
			var u domain.User
			if err := json.Unmarshal(raw, &u); err != nil {
				return err
			}
			if u.ID == id {
				key = append([]byte(nil), k...)
				user = u
			}
			return nil
		})
		if err != nil {
			return err
		}
		if key == nil {
			return ports.ErrUserNotFound
		}
		user.PasswordHash = passwordHash
		raw, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put(key, raw)
	})
}
