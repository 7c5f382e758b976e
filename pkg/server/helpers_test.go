package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"marwood.io/WhiskeyVault/pkg/auth"
	"marwood.io/WhiskeyVault/pkg/model"
	"marwood.io/WhiskeyVault/pkg/repository"
)

// In-memory fakes standing in for the repository. Each implements just the
// interface slice the server under test consumes.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*model.User{}}
}

func (f *fakeUserRepo) GetUser(_ context.Context, userID uint) (*model.User, error) {
	user, found := f.users[userID]
	if !found {
		return nil, repository.ErrNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ListUsers(_ context.Context, offset int, limit int) ([]*model.User, error) {
	var users []*model.User

	for id := uint(1); id < f.nextID; id++ {
		if user, found := f.users[id]; found {
			users = append(users, user)
		}
	}

	if offset >= len(users) {
		return nil, nil
	}

	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}

	return users, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = &user

	return &user, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, userID uint, mutate func(*model.User)) (*model.User, error) {
	user, found := f.users[userID]
	if !found {
		return nil, repository.ErrNotFound
	}

	mutate(user)

	return user, nil
}

type fakeDistilleryRepo struct {
	nextID       uint
	distilleries map[uint]*model.Distillery
}

func newFakeDistilleryRepo() *fakeDistilleryRepo {
	return &fakeDistilleryRepo{nextID: 1, distilleries: map[uint]*model.Distillery{}}
}

func (f *fakeDistilleryRepo) GetDistillery(_ context.Context, distilleryID uint) (*model.Distillery, error) {
	distillery, found := f.distilleries[distilleryID]
	if !found {
		return nil, repository.ErrNotFound
	}

	return distillery, nil
}

func (f *fakeDistilleryRepo) GetDistilleryByName(_ context.Context, name string) (*model.Distillery, error) {
	for _, distillery := range f.distilleries {
		if distillery.Name == name {
			return distillery, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (f *fakeDistilleryRepo) ListDistilleries(_ context.Context, _ int, _ int) ([]*model.Distillery, error) {
	var distilleries []*model.Distillery

	for id := uint(1); id < f.nextID; id++ {
		if distillery, found := f.distilleries[id]; found {
			distilleries = append(distilleries, distillery)
		}
	}

	return distilleries, nil
}

func (f *fakeDistilleryRepo) CreateDistillery(_ context.Context, distillery model.Distillery) (*model.Distillery, error) {
	distillery.ID = f.nextID
	f.nextID++
	f.distilleries[distillery.ID] = &distillery

	return &distillery, nil
}

func (f *fakeDistilleryRepo) UpdateDistillery(_ context.Context, distilleryID uint, patch model.DistilleryPatch) (*model.Distillery, error) {
	distillery, found := f.distilleries[distilleryID]
	if !found {
		return nil, repository.ErrNotFound
	}

	patch.Apply(distillery)

	return distillery, nil
}

func (f *fakeDistilleryRepo) DeleteDistillery(_ context.Context, distilleryID uint) (*model.Distillery, error) {
	distillery, found := f.distilleries[distilleryID]
	if !found {
		return nil, repository.ErrNotFound
	}

	delete(f.distilleries, distilleryID)

	return distillery, nil
}

type fakeCollectionRepo struct {
	nextID  uint
	entries map[uint]*model.UserWhiskey
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{nextID: 1, entries: map[uint]*model.UserWhiskey{}}
}

func (f *fakeCollectionRepo) GetUserWhiskey(_ context.Context, entryID uint, userID uint) (*model.UserWhiskey, error) {
	entry, found := f.entries[entryID]
	if !found || entry.UserID != userID {
		return nil, repository.ErrNotFound
	}

	return entry, nil
}

func (f *fakeCollectionRepo) ListUserWhiskeys(_ context.Context, userID uint, _ int, _ int) ([]*model.UserWhiskey, error) {
	var entries []*model.UserWhiskey

	for id := uint(1); id < f.nextID; id++ {
		if entry, found := f.entries[id]; found && entry.UserID == userID {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (f *fakeCollectionRepo) CreateUserWhiskey(_ context.Context, entry model.UserWhiskey, userID uint) (*model.UserWhiskey, error) {
	entry.ID = f.nextID
	entry.UserID = userID
	f.nextID++
	f.entries[entry.ID] = &entry

	return &entry, nil
}

func (f *fakeCollectionRepo) UpdateUserWhiskey(_ context.Context, entryID uint, userID uint, patch model.UserWhiskeyPatch) (*model.UserWhiskey, error) {
	entry, found := f.entries[entryID]
	if !found || entry.UserID != userID {
		return nil, repository.ErrNotFound
	}

	patch.Apply(entry)

	return entry, nil
}

func (f *fakeCollectionRepo) DeleteUserWhiskey(_ context.Context, entryID uint, userID uint) (*model.UserWhiskey, error) {
	entry, found := f.entries[entryID]
	if !found || entry.UserID != userID {
		return nil, repository.ErrNotFound
	}

	delete(f.entries, entryID)

	return entry, nil
}

type fakeTastingRepo struct {
	nextID   uint
	tastings map[uint]*model.Tasting
}

func newFakeTastingRepo() *fakeTastingRepo {
	return &fakeTastingRepo{nextID: 1, tastings: map[uint]*model.Tasting{}}
}

func (f *fakeTastingRepo) GetTasting(_ context.Context, tastingID uint, userID uint) (*model.Tasting, error) {
	tasting, found := f.tastings[tastingID]
	if !found || tasting.UserID != userID {
		return nil, repository.ErrNotFound
	}

	return tasting, nil
}

func (f *fakeTastingRepo) ListTastings(_ context.Context, userID uint, _ int, _ int) ([]*model.Tasting, error) {
	var tastings []*model.Tasting

	for id := uint(1); id < f.nextID; id++ {
		if tasting, found := f.tastings[id]; found && tasting.UserID == userID {
			tastings = append(tastings, tasting)
		}
	}

	return tastings, nil
}

func (f *fakeTastingRepo) ListTastingsForUserWhiskey(_ context.Context, userWhiskeyID uint, userID uint, _ int, _ int) ([]*model.Tasting, error) {
	var tastings []*model.Tasting

	for id := uint(1); id < f.nextID; id++ {
		if tasting, found := f.tastings[id]; found && tasting.UserID == userID && tasting.UserWhiskeyID == userWhiskeyID {
			tastings = append(tastings, tasting)
		}
	}

	return tastings, nil
}

func (f *fakeTastingRepo) CreateTasting(_ context.Context, tasting model.Tasting, userID uint) (*model.Tasting, error) {
	tasting.ID = f.nextID
	tasting.UserID = userID
	f.nextID++
	f.tastings[tasting.ID] = &tasting

	return &tasting, nil
}

func (f *fakeTastingRepo) UpdateTasting(_ context.Context, tastingID uint, userID uint, patch model.TastingPatch) (*model.Tasting, error) {
	tasting, found := f.tastings[tastingID]
	if !found || tasting.UserID != userID {
		return nil, repository.ErrNotFound
	}

	patch.Apply(tasting)

	return tasting, nil
}

func (f *fakeTastingRepo) DeleteTasting(_ context.Context, tastingID uint, userID uint) (*model.Tasting, error) {
	tasting, found := f.tastings[tastingID]
	if !found || tasting.UserID != userID {
		return nil, repository.ErrNotFound
	}

	delete(f.tastings, tastingID)

	return tasting, nil
}

type fakeInsight struct {
	info           *model.WhiskeyInfo
	analysis       string
	recommendation string
	err            error
}

func (f *fakeInsight) LookupWhiskey(_ context.Context, _ string) (*model.WhiskeyInfo, error) {
	return f.info, f.err
}

func (f *fakeInsight) AnalyzeCollection(_ context.Context, _ string) (string, error) {
	return f.analysis, f.err
}

func (f *fakeInsight) Recommend(_ context.Context, _ string) (string, error) {
	return f.recommendation, f.err
}

// Request helpers.

func jsonRequest(method string, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)

	request := httptest.NewRequest(method, target, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	return request
}

func withPathID(request *http.Request, id string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add("id", id)

	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func asUser(request *http.Request, user *model.User) *http.Request {
	return request.WithContext(context.WithValue(request.Context(), auth.UserKey{}, user))
}
