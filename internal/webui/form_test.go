package webui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-management-service/pkg/client"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    FormState
		wantErr bool
	}{
		{name: "empty id is create", id: "", want: CreateMode{}},
		{name: "zero id is create", id: "0", want: CreateMode{}},
		{name: "positive id is editing", id: "12", want: EditingMode{ID: 12}},
		{name: "garbage id", id: "x", want: CreateMode{}, wantErr: true},
		{name: "negative id", id: "-3", want: CreateMode{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseForm(tt.id, "Ann", "a@x.com")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, f.State)
			assert.Equal(t, "Ann", f.Name)
			assert.Equal(t, "a@x.com", f.Email)
		})
	}
}

func TestForm_Labels(t *testing.T) {
	create := NewForm()
	assert.False(t, create.IsEditing())
	assert.Equal(t, int64(0), create.ID())
	assert.Equal(t, "Add", create.SubmitLabel())

	edit := EditForm(client.User{ID: 4, Name: "Ann", Email: "a@x.com"})
	assert.True(t, edit.IsEditing())
	assert.Equal(t, int64(4), edit.ID())
	assert.Equal(t, "Edit", edit.SubmitLabel())
	assert.Equal(t, "Ann", edit.Name)
}

func TestForm_SubmitCreate(t *testing.T) {
	api := newFakeAPI()

	u, err := Form{State: CreateMode{}, Name: "Ann", Email: "a@x.com"}.Submit(context.Background(), api)
	require.NoError(t, err)

	assert.Equal(t, client.User{ID: 1, Name: "Ann", Email: "a@x.com"}, u)
	assert.Equal(t, []string{"create"}, api.Calls())
}

func TestForm_SubmitZeroValueCreates(t *testing.T) {
	api := newFakeAPI()

	_, err := Form{Name: "Ann"}.Submit(context.Background(), api)
	require.NoError(t, err)
	assert.Equal(t, []string{"create"}, api.Calls())
}

func TestForm_SubmitEdit(t *testing.T) {
	api := newFakeAPI(client.User{ID: 3, Name: "Ann", Email: "a@x.com"})

	u, err := Form{State: EditingMode{ID: 3}, Name: "Ann B", Email: "a@x.com"}.Submit(context.Background(), api)
	require.NoError(t, err)

	assert.Equal(t, client.User{ID: 3, Name: "Ann B", Email: "a@x.com"}, u)
	assert.Equal(t, []string{"update"}, api.Calls())
}

func TestForm_SubmitFailure(t *testing.T) {
	api := newFakeAPI()
	api.fail["create"] = true

	_, err := NewForm().Submit(context.Background(), api)
	assert.ErrorIs(t, err, errAPIDown)
	assert.ErrorContains(t, err, "create user")
}

func TestNewPage_ReversesWithoutMutating(t *testing.T) {
	users := []client.User{{ID: 1}, {ID: 2}, {ID: 3}}

	page := NewPage(users, NewForm())

	assert.Equal(t, []client.User{{ID: 3}, {ID: 2}, {ID: 1}}, page.Users)
	assert.Equal(t, []client.User{{ID: 1}, {ID: 2}, {ID: 3}}, users)
}

func TestNewPage_NilIsEmpty(t *testing.T) {
	page := NewPage(nil, NewForm())
	assert.NotNil(t, page.Users)
	assert.Empty(t, page.Users)
}
