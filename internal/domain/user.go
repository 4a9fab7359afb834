package domain

import "time"

// User is an account in the recruitment platform. Users are created by
// HR/Manager actions and mutated via update; deactivation is the normal
// retirement path, hard deletion only through an explicit delete.
type User struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity is the authenticated principal for a session. Stores receive it
// explicitly; nothing reads session state from ambient storage.
type Identity struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// Session is the result of a successful login: a bearer token plus the
// authenticated identity.
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateUserRequest is the payload for creating a platform user.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
}

// UpdateUserRequest carries the mutable user fields. Nil fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// RegisterRequest is the payload for candidate self-registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}
