package handler_test

// In-memory fakes for the handler store interfaces. They reproduce the
// semantics the Mongo repositories promise: sentinel errors, owner-scoped
// matching, excludeUID on uniqueness probes and the non-empty rule in
// HasEmailOrPhone.

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/contact-book/internal/model"
	"github.com/iliyamo/contact-book/internal/repository"
)

type fakeUserStore struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) NextUID(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.users[u.UID] = &cp
	return nil
}

func (f *fakeUserStore) FindByUID(_ context.Context, uid int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByAccount(_ context.Context, account string) (*model.User, error) {
	account = strings.TrimSpace(account)
	f.mu.Lock()
	defer f.mu.Unlock()
	if uid, err := strconv.ParseInt(account, 10, 64); err == nil {
		if u, ok := f.users[uid]; ok {
			cp := *u
			return &cp, nil
		}
		return nil, repository.ErrUserNotFound
	}
	for _, u := range f.users {
		if u.Email == account || u.Phone == account || u.Name == account {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) EmailTaken(_ context.Context, email string, excludeUID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email && u.UID != excludeUID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) PhoneTaken(_ context.Context, phone string, excludeUID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Phone == phone && u.UID != excludeUID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, uid int64, p model.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return repository.ErrUserNotFound
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, uid int64, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Password = hash
	return nil
}

type fakeContactStore struct {
	mu       sync.Mutex
	contacts []*model.Contact
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{}
}

func (f *fakeContactStore) ListByOwner(_ context.Context, owner int64) ([]model.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]model.Contact, 0)
	for _, ct := range f.contacts {
		if ct.OwnerUID == owner {
			items = append(items, *ct)
		}
	}
	return items, nil
}

func (f *fakeContactStore) Insert(_ context.Context, ct *model.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ct.ID = primitive.NewObjectID()
	cp := *ct
	f.contacts = append(f.contacts, &cp)
	return nil
}

func (f *fakeContactStore) Update(_ context.Context, id string, owner int64, fields model.ContactFields) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrContactNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ct := range f.contacts {
		if ct.ID.Hex() == id && ct.OwnerUID == owner {
			ct.Name = fields.Name
			ct.Email = fields.Email
			ct.Phone = fields.Phone
			ct.Address = fields.Address
			return nil
		}
	}
	return repository.ErrContactNotFound
}

func (f *fakeContactStore) Delete(_ context.Context, id string, owner int64) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrContactNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ct := range f.contacts {
		if ct.ID.Hex() == id && ct.OwnerUID == owner {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrContactNotFound
}

func (f *fakeContactStore) HasEmailOrPhone(_ context.Context, owner int64, email, phone string) (bool, error) {
	if email == "" && phone == "" {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ct := range f.contacts {
		if ct.OwnerUID != owner {
			continue
		}
		if (email != "" && ct.Email == email) || (phone != "" && ct.Phone == phone) {
			return true, nil
		}
	}
	return false, nil
}
