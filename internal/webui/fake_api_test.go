package webui

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"user-management-service/pkg/client"
)

var errAPIDown = errors.New("api down")

// fakeAPI keeps users in memory and records calls.
type fakeAPI struct {
	mu     sync.Mutex
	users  []client.User
	nextID int64
	calls  []string
	fail   map[string]bool
}

func newFakeAPI(users ...client.User) *fakeAPI {
	f := &fakeAPI{fail: map[string]bool{}, nextID: 1}
	for _, u := range users {
		f.users = append(f.users, u)
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
	}
	return f
}

func (f *fakeAPI) record(call string) error {
	f.calls = append(f.calls, call)
	if f.fail[call] {
		return errAPIDown
	}
	return nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]client.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("list"); err != nil {
		return nil, err
	}
	out := make([]client.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeAPI) find(id int64) int {
	for i, u := range f.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeAPI) GetUser(_ context.Context, id int64) (client.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("get"); err != nil {
		return client.User{}, err
	}
	i := f.find(id)
	if i < 0 {
		return client.User{}, client.APIError{Status: http.StatusNotFound, Message: "User not found"}
	}
	return f.users[i], nil
}

func (f *fakeAPI) CreateUser(_ context.Context, in client.UserInput) (client.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("create"); err != nil {
		return client.User{}, err
	}
	u := client.User{ID: f.nextID, Name: in.Name, Email: in.Email}
	f.nextID++
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, in client.UserInput) (client.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("update"); err != nil {
		return client.User{}, err
	}
	i := f.find(id)
	if i < 0 {
		return client.User{}, client.APIError{Status: http.StatusNotFound, Message: "User not found"}
	}
	f.users[i].Name, f.users[i].Email = in.Name, in.Email
	return f.users[i], nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int64) (client.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("delete"); err != nil {
		return client.User{}, err
	}
	i := f.find(id)
	if i < 0 {
		return client.User{}, client.APIError{Status: http.StatusNotFound, Message: "User not found"}
	}
	u := f.users[i]
	f.users = append(f.users[:i], f.users[i+1:]...)
	return u, nil
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
