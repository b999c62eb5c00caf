package users

import "strings"

// Roles
const (
	RoleAdmin     = "ADMIN"
	RoleSecretary = "SECRETARY"
	RoleDoctor    = "DOCTOR"
)

// User is a local staff account. Password is stored in clear text and is
// never returned by the API.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Sanitized returns a copy without the password.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// SameUsername compares usernames case-insensitively.
func (u User) SameUsername(username string) bool {
	return strings.EqualFold(u.Username, username)
}

// IsValidRole checks whether role is one of the staff roles
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSecretary, RoleDoctor:
		return true
	}
	return false
}

// IsLastAdmin reports whether removing id would leave no administrator. A
// directory holding a single administrator refuses every delete.
func IsLastAdmin(users []User, id string) bool {
	if len(users) == 1 && users[0].Role == RoleAdmin {
		return true
	}
	admins, target := 0, false
	for _, u := range users {
		if u.Role != RoleAdmin {
			continue
		}
		admins++
		if u.ID == id {
			target = true
		}
	}
	return target && admins == 1
}

// CreateUserRequest represents the request to provision a staff account
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Validate validates the create user request
func (r *CreateUserRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Username == "" {
		return ErrMissingUsername
	}
	if r.Password == "" {
		return ErrMissingPassword
	}
	if r.Role == "" {
		r.Role = RoleSecretary
	}
	if !IsValidRole(r.Role) {
		return ErrInvalidRole
	}
	return nil
}

// UpdateUserRequest represents the request to edit an account. An empty
// password keeps the current one.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Validate validates the update user request
func (r *UpdateUserRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	if r.Username == "" {
		return ErrMissingUsername
	}
	if !IsValidRole(r.Role) {
		return ErrInvalidRole
	}
	return nil
}

// UserListResponse represents the list of accounts
type UserListResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}

// Seed returns the accounts written on first start.
func Seed() []User {
	return []User{
		{ID: "1", Name: "System Administrator", Username: "admin", Password: "admin", Role: RoleAdmin, Email: "admin@medcore.com"},
		{ID: "2", Name: "Clinic Secretary", Username: "secretary", Password: "password", Role: RoleSecretary, Email: "sarah@medcore.com"},
	}
}
