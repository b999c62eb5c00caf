package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	createUserFunc func(ctx context.Context, req CreateUserRequest) (*User, error)
	getUserFunc    func(ctx context.Context, id string) (*User, error)
	listUsersFunc  func(ctx context.Context) ([]User, error)
	updateUserFunc func(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	deleteUserFunc func(ctx context.Context, id string, confirmed bool) error
}

func (m *mockService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) GetUser(ctx context.Context, id string) (*User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) ListUsers(ctx context.Context) ([]User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) DeleteUser(ctx context.Context, id string, confirmed bool) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(ctx, id, confirmed)
	}
	return errors.New("not implemented")
}

// TestHandlerCreateUser_Success tests successful user creation
func TestHandlerCreateUser_Success(t *testing.T) {
	handler := NewHandler(&mockService{
		createUserFunc: func(ctx context.Context, req CreateUserRequest) (*User, error) {
			return &User{ID: "u1", Name: req.Name, Username: req.Username, Role: req.Role}, nil
		},
	})

	body, _ := json.Marshal(CreateUserRequest{Name: "Sam", Username: "sam", Password: "p", Role: RoleSecretary})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	handler.CreateUser(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rr.Code)
	}
	var raw map[string]interface{}
	json.NewDecoder(rr.Body).Decode(&raw)
	if _, ok := raw["password"]; ok {
		t.Error("Expected no password field in response")
	}
}

// TestHandlerCreateUser_Errors tests error to status mapping
func TestHandlerCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing name", ErrMissingName, http.StatusBadRequest},
		{"invalid role", ErrInvalidRole, http.StatusBadRequest},
		{"taken", ErrUsernameTaken, http.StatusConflict},
		{"unexpected", errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&mockService{
				createUserFunc: func(ctx context.Context, req CreateUserRequest) (*User, error) {
					return nil, tt.err
				},
			})
			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(`{}`)))
			rr := httptest.NewRecorder()
			handler.CreateUser(rr, req)
			if rr.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, rr.Code)
			}
		})
	}
}

// TestHandlerListUsers tests listing accounts
func TestHandlerListUsers(t *testing.T) {
	handler := NewHandler(&mockService{
		listUsersFunc: func(ctx context.Context) ([]User, error) {
			return []User{{ID: "1"}, {ID: "2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	handler.ListUsers(rr, req)

	var got UserListResponse
	json.NewDecoder(rr.Body).Decode(&got)
	if rr.Code != http.StatusOK || got.Count != 2 {
		t.Errorf("Unexpected response %d %+v", rr.Code, got)
	}
}

// TestHandlerDeleteUser_LastAdmin tests that the last admin maps to 409
func TestHandlerDeleteUser_LastAdmin(t *testing.T) {
	handler := NewHandler(&mockService{
		deleteUserFunc: func(ctx context.Context, id string, confirmed bool) error {
			if !confirmed {
				t.Error("Expected confirm=true to be passed")
			}
			return ErrLastAdmin
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1?confirm=true", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rr := httptest.NewRecorder()
	handler.DeleteUser(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rr.Code)
	}
	var got map[string]string
	json.NewDecoder(rr.Body).Decode(&got)
	if got["error"] != "last_admin" {
		t.Errorf("Expected last_admin error, got %v", got)
	}
}

// TestHandlerUpdateUser_NotFound tests updating a missing account
func TestHandlerUpdateUser_NotFound(t *testing.T) {
	handler := NewHandler(&mockService{
		updateUserFunc: func(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
			return nil, ErrUserNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/users/9", bytes.NewReader([]byte(`{"name":"x"}`)))
	req = mux.SetURLVars(req, map[string]string{"id": "9"})
	rr := httptest.NewRecorder()
	handler.UpdateUser(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
