package service_test

import (
	"context"
	"sort"

	"github.com/questboard/questboard-api/internal/domain"
	"github.com/questboard/questboard-api/internal/store"
)

// fakeQuestStore is an in-memory store.QuestStore that counts write calls
// so tests can assert which paths never reach persistence.
type fakeQuestStore struct {
	quests      map[int64]*domain.Quest
	createCalls int
	updateCalls int
	deleteCalls int
	failWith    error
}

func newFakeQuestStore() *fakeQuestStore {
	return &fakeQuestStore{quests: make(map[int64]*domain.Quest)}
}

func (f *fakeQuestStore) GetAll(_ context.Context) ([]*domain.Quest, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	all := make([]*domain.Quest, 0, len(f.quests))
	for _, q := range f.quests {
		quest := *q
		all = append(all, &quest)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (f *fakeQuestStore) GetByID(_ context.Context, id int64) (*domain.Quest, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	q, ok := f.quests[id]
	if !ok {
		return nil, store.ErrQuestNotFound
	}
	quest := *q
	return &quest, nil
}

func (f *fakeQuestStore) GetByCategory(_ context.Context, categoryID int64) ([]*domain.Quest, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	matches := make([]*domain.Quest, 0)
	for _, q := range f.quests {
		if q.CategoryID == categoryID {
			quest := *q
			matches = append(matches, &quest)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (f *fakeQuestStore) Create(_ context.Context, quest *domain.Quest) error {
	f.createCalls++
	if f.failWith != nil {
		return f.failWith
	}

	if _, ok := f.quests[quest.ID]; ok {
		return store.ErrQuestIDExists
	}
	stored := *quest
	f.quests[quest.ID] = &stored
	return nil
}

func (f *fakeQuestStore) Update(_ context.Context, quest *domain.Quest) error {
	f.updateCalls++
	if f.failWith != nil {
		return f.failWith
	}

	if _, ok := f.quests[quest.ID]; !ok {
		return store.ErrNoChange
	}
	stored := *quest
	f.quests[quest.ID] = &stored
	return nil
}

func (f *fakeQuestStore) Delete(_ context.Context, id int64) error {
	f.deleteCalls++
	if f.failWith != nil {
		return f.failWith
	}

	if _, ok := f.quests[id]; !ok {
		return store.ErrNoChange
	}
	delete(f.quests, id)
	return nil
}

// fakeUserStore is an in-memory store.UserStore assigning sequential IDs.
type fakeUserStore struct {
	users       map[int64]*domain.User
	nextID      int64
	updateCalls int
	deleteCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*domain.User)}
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*domain.User, error) {
	all := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		user := *u
		all = append(all, &user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := *u
	return &user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	f.updateCalls++
	if _, ok := f.users[user.ID]; !ok {
		return store.ErrNoChange
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	f.deleteCalls++
	if _, ok := f.users[id]; !ok {
		return store.ErrNoChange
	}
	delete(f.users, id)
	return nil
}

// fakeRoleStore serves a fixed set of roles.
type fakeRoleStore struct {
	roles map[string]*domain.Role
}

func newFakeRoleStore(names ...string) *fakeRoleStore {
	roles := make(map[string]*domain.Role, len(names))
	for _, name := range names {
		roles[name] = &domain.Role{Name: name}
	}
	return &fakeRoleStore{roles: roles}
}

func (f *fakeRoleStore) GetByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, store.ErrRoleNotFound
	}
	return role, nil
}
