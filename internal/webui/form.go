package webui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"user-management-service/pkg/client"
)

// API is the part of the user API the UI talks to.
type API interface {
	ListUsers(ctx context.Context) ([]client.User, error)
	GetUser(ctx context.Context, id int64) (client.User, error)
	CreateUser(ctx context.Context, in client.UserInput) (client.User, error)
	UpdateUser(ctx context.Context, id int64, in client.UserInput) (client.User, error)
	DeleteUser(ctx context.Context, id int64) (client.User, error)
}

// FormState is either CreateMode or EditingMode.
type FormState interface {
	formState()
}

// CreateMode submits a new user.
type CreateMode struct{}

// EditingMode submits an update of the user with ID.
type EditingMode struct {
	ID int64
}

func (CreateMode) formState()  {}
func (EditingMode) formState() {}

// Form is the single user form of the page.
type Form struct {
	State FormState
	Name  string
	Email string
}

// NewForm returns an empty form in create mode.
func NewForm() Form {
	return Form{State: CreateMode{}}
}

// EditForm returns a form populated from u in editing mode.
func EditForm(u client.User) Form {
	return Form{
		State: EditingMode{ID: u.ID},
		Name:  u.Name,
		Email: u.Email,
	}
}

// ParseForm rebuilds a Form from submitted fields. An id of 0 or an empty id
// means create mode.
func ParseForm(id, name, email string) (Form, error) {
	f := Form{State: CreateMode{}, Name: name, Email: email}

	id = strings.TrimSpace(id)
	if id == "" || id == "0" {
		return f, nil
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n < 0 {
		return f, fmt.Errorf("invalid user id %q", id)
	}
	f.State = EditingMode{ID: n}
	return f, nil
}

// Editing reports the id being edited, if any.
func (f Form) Editing() (int64, bool) {
	if m, ok := f.State.(EditingMode); ok {
		return m.ID, true
	}
	return 0, false
}

// ID is the id carried in the hidden form field, 0 in create mode.
func (f Form) ID() int64 {
	id, _ := f.Editing()
	return id
}

// IsEditing reports whether the form is in editing mode.
func (f Form) IsEditing() bool {
	_, ok := f.Editing()
	return ok
}

// SubmitLabel is the caption of the submit button.
func (f Form) SubmitLabel() string {
	if f.IsEditing() {
		return "Edit"
	}
	return "Add"
}

// Submit creates or updates the user depending on the form state.
func (f Form) Submit(ctx context.Context, api API) (client.User, error) {
	in := client.UserInput{Name: f.Name, Email: f.Email}

	switch s := f.State.(type) {
	case EditingMode:
		u, err := api.UpdateUser(ctx, s.ID, in)
		if err != nil {
			return client.User{}, fmt.Errorf("update user %d: %w", s.ID, err)
		}
		return u, nil
	case CreateMode, nil:
		u, err := api.CreateUser(ctx, in)
		if err != nil {
			return client.User{}, fmt.Errorf("create user: %w", err)
		}
		return u, nil
	default:
		return client.User{}, fmt.Errorf("unknown form state %T", s)
	}
}
