package models

import (
	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/internal/types"
)

// User is a row of the users table without its password hash.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// Identity is what a token carries for this user.
func (u *User) Identity() types.UserContext {
	return types.UserContext{Username: u.Username, IsAdmin: u.IsAdmin}
}

// UserDetail is a user with the ids of the jobs applied to.
type UserDetail struct {
	User
	Applications []int `json:"applications"`
}

// NewUser carries a plain-text password into the repository, which hashes it.
type NewUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// Columns maps request field names to user columns.
var Columns = query.Columns{
	"firstName": "first_name",
	"lastName":  "last_name",
}

// LoginRequest is the body of POST /auth/token.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=30"`
	Password string `json:"password" validate:"required,min=5,max=20"`
}

// RegisterRequest is the body of POST /auth/register. Self-registered users
// are never admins.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=30"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" validate:"required,min=1,max=30"`
	Email     string `json:"email" validate:"required,email,min=6,max=60"`
}

// NewUser converts the request.
func (r *RegisterRequest) NewUser() *NewUser {
	return &NewUser{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// CreateUserRequest is the body of POST /users, used by admins.
type CreateUserRequest struct {
	RegisterRequest
	IsAdmin bool `json:"isAdmin"`
}

// NewUser converts the request.
func (r *CreateUserRequest) NewUser() *NewUser {
	u := r.RegisterRequest.NewUser()
	u.IsAdmin = r.IsAdmin
	return u
}

// UpdateUserRequest is the body of PATCH /users/:username.
type UpdateUserRequest struct {
	Password  *string `json:"password" validate:"omitempty,min=5,max=20"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=30"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=30"`
	Email     *string `json:"email" validate:"omitempty,email,min=6,max=60"`
}

// Updates lists the supplied fields in declaration order. The password is
// still plain text here.
func (r *UpdateUserRequest) Updates() query.FieldUpdates {
	var updates query.FieldUpdates
	if r.Password != nil {
		updates = updates.Add("password", *r.Password)
	}
	if r.FirstName != nil {
		updates = updates.Add("firstName", *r.FirstName)
	}
	if r.LastName != nil {
		updates = updates.Add("lastName", *r.LastName)
	}
	if r.Email != nil {
		updates = updates.Add("email", *r.Email)
	}
	return updates
}
