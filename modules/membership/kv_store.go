package membership

import (
	"context"
	"errors"
	"strings"

	"github.com/mcucsya/portal/pkg/storage"
)

// KVStore keeps each collection as a single JSON array in a storage.Store,
// the layout the site document's storage keys describe.
type KVStore struct {
	store       storage.Store
	membersKey  string
	contactsKey string
}

// NewKVStore creates a KVStore over store using the given collection keys.
func NewKVStore(store storage.Store, membersKey, contactsKey string) *KVStore {
	return &KVStore{store: store, membersKey: membersKey, contactsKey: contactsKey}
}

func (s *KVStore) Create(ctx context.Context, m Member) error {
	var members []Member
	err := s.store.Update(ctx, s.membersKey, &members, func(bool) error {
		for _, existing := range members {
			if strings.EqualFold(existing.Email, m.Email) || existing.Phone == m.Phone {
				return ErrDuplicateMember
			}
		}
		members = append(members, m)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateMember) {
			return err
		}
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *KVStore) members(ctx context.Context) ([]Member, error) {
	var members []Member
	if _, err := s.store.Get(ctx, s.membersKey, &members); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return members, nil
}

func (s *KVStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	members, err := s.members(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if strings.EqualFold(m.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *KVStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	members, err := s.members(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *KVStore) List(ctx context.Context, offset, limit int) ([]Member, error) {
	members, err := s.members(ctx)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= len(members) || limit <= 0 {
		return []Member{}, nil
	}
	end := min(offset+limit, len(members))
	return members[offset:end], nil
}

func (s *KVStore) Count(ctx context.Context) (int, error) {
	members, err := s.members(ctx)
	if err != nil {
		return 0, err
	}
	return len(members), nil
}

func (s *KVStore) CountByConstituency(ctx context.Context) (map[string]int, error) {
	members, err := s.members(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, m := range members {
		counts[m.Constituency]++
	}
	return counts, nil
}

func (s *KVStore) SaveContact(ctx context.Context, c Contact) error {
	var contacts []Contact
	err := s.store.Update(ctx, s.contactsKey, &contacts, func(bool) error {
		contacts = append(contacts, c)
		return nil
	})
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

// Contacts returns every stored contact message.
func (s *KVStore) Contacts(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	if _, err := s.store.Get(ctx, s.contactsKey, &contacts); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return contacts, nil
}
