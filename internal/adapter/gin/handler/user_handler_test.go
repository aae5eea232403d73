package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	usecase "user-management-service/internal/usecase/user"
	pkgerrors "user-management-service/pkg/errors"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]usecase.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.User), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, req usecase.GetUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, req usecase.UpdateUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, req usecase.DeleteUserRequest) (*usecase.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.User), args.Error(1)
}

func setupTest(t *testing.T) (*gin.Engine, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	handler := NewUserHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/users", handler.ListUsers)
	r.GET("/users/:id", handler.GetUser)
	r.POST("/users", handler.CreateUser)
	r.PUT("/users/:id", handler.UpdateUser)
	r.DELETE("/users/:id", handler.DeleteUser)

	t.Cleanup(func() { mockUsecase.AssertExpectations(t) })
	return r, mockUsecase
}

func doRequest(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewBuffer(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

var notFound = pkgerrors.NewNotFoundError("user", usecase.NotFoundMessage)

func TestListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("ListUsers", mock.Anything).Return([]usecase.User{
			{ID: 1, Name: "Ann", Email: "a@x.com"},
			{ID: 2, Name: "Bob", Email: "b@x.com"},
		}, nil)

		w := doRequest(r, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Ann","email":"a@x.com"},{"id":2,"name":"Bob","email":"b@x.com"}]`, w.Body.String())
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("ListUsers", mock.Anything).Return([]usecase.User{}, nil)

		w := doRequest(r, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("ListUsers", mock.Anything).Return(nil, pkgerrors.NewInternalError("storage failure", errors.New("db down")))

		w := doRequest(r, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "storage failure: db down", decodeMessage(t, w))
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 1}).
			Return(&usecase.User{ID: 1, Name: "Ann", Email: "a@x.com"}, nil)

		w := doRequest(r, http.MethodGet, "/users/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Ann","email":"a@x.com"}`, w.Body.String())
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 9}).Return(nil, notFound)

		w := doRequest(r, http.MethodGet, "/users/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
	})

	t.Run("Non integer id", func(t *testing.T) {
		r, _ := setupTest(t)

		w := doRequest(r, http.MethodGet, "/users/abc", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decodeMessage(t, w), `"abc"`)
	})

	t.Run("Untyped error is internal", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("GetUser", mock.Anything, usecase.GetUserRequest{ID: 1}).Return(nil, errors.New("unexpected"))

		w := doRequest(r, http.MethodGet, "/users/1", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "unexpected", decodeMessage(t, w))
	})
}

func strp(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("CreateUser", mock.Anything, usecase.CreateUserRequest{Name: "Ann", Email: "a@x.com"}).
			Return(&usecase.User{ID: 1, Name: "Ann", Email: "a@x.com"}, nil)

		w := doRequest(r, http.MethodPost, "/users", `{"name":"Ann","email":"a@x.com"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Ann","email":"a@x.com"}`, w.Body.String())
	})

	t.Run("Empty strings are accepted", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("CreateUser", mock.Anything, usecase.CreateUserRequest{}).
			Return(&usecase.User{ID: 2}, nil)

		w := doRequest(r, http.MethodPost, "/users", `{"name":"","email":""}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"name":"Ann"}`, `{"email":"a@x.com"}`} {
			r, _ := setupTest(t)

			w := doRequest(r, http.MethodPost, "/users", body)

			assert.Equal(t, http.StatusInternalServerError, w.Code, body)
			assert.Contains(t, decodeMessage(t, w), "required", body)
		}
	})

	t.Run("Invalid Request Body", func(t *testing.T) {
		r, _ := setupTest(t)

		w := doRequest(r, http.MethodPost, "/users", "invalid json")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decodeMessage(t, w), "validation failed: body")
	})

	t.Run("Constraint violation", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, pkgerrors.NewInternalError("storage failure", errors.New("UNIQUE constraint failed: users.email")))

		w := doRequest(r, http.MethodPost, "/users", `{"name":"Ann","email":"a@x.com"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decodeMessage(t, w), "UNIQUE constraint failed")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("UpdateUser", mock.Anything, usecase.UpdateUserRequest{ID: 1, Name: strp("Ann B"), Email: strp("a@x.com")}).
			Return(&usecase.User{ID: 1, Name: "Ann B", Email: "a@x.com"}, nil)

		w := doRequest(r, http.MethodPut, "/users/1", `{"name":"Ann B","email":"a@x.com"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Ann B","email":"a@x.com"}`, w.Body.String())
	})

	t.Run("Omitted field is passed as nil", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("UpdateUser", mock.Anything, usecase.UpdateUserRequest{ID: 1, Name: strp("Ann B")}).
			Return(&usecase.User{ID: 1, Name: "Ann B", Email: "a@x.com"}, nil)

		w := doRequest(r, http.MethodPut, "/users/1", `{"name":"Ann B"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing id is 404", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("UpdateUser", mock.Anything, mock.Anything).Return(nil, notFound)

		w := doRequest(r, http.MethodPut, "/users/42", `{"name":"Ghost","email":"g@x.com"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
	})

	t.Run("Non integer id", func(t *testing.T) {
		r, _ := setupTest(t)

		w := doRequest(r, http.MethodPut, "/users/abc", `{}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("DeleteUser", mock.Anything, usecase.DeleteUserRequest{ID: 1}).
			Return(&usecase.User{ID: 1, Name: "Ann", Email: "a@x.com"}, nil)

		w := doRequest(r, http.MethodDelete, "/users/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Ann","email":"a@x.com"}`, w.Body.String())
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupTest(t)
		mockUsecase.On("DeleteUser", mock.Anything, usecase.DeleteUserRequest{ID: 3}).Return(nil, notFound)

		w := doRequest(r, http.MethodDelete, "/users/3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
