package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleVenue Role = "venue"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVenue, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           Role       `json:"role"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Phone          string     `json:"phone"`
	Balance        int64      `json:"balance"`
	TelegramChatID *int64     `json:"telegram_chat_id,omitempty"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateUserInput struct {
	Email          string
	Password       string
	Role           Role
	FirstName      string
	LastName       string
	Phone          string
	TelegramChatID *int64
}

// UpdateUserInput carries only the fields being changed; nil means keep.
type UpdateUserInput struct {
	ID        string
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *Role
}

type UserFilter struct {
	Role *Role
	IDs  []string
}
