package transport

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAgent   Role = "agent"
)

type ListUsersRequest struct {
	Role   *Role `form:"role" validate:"omitempty,oneof=admin manager agent"`
	Active *bool `form:"active"`
	Limit  int   `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset int   `form:"offset" validate:"omitempty,min=0"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserListResponse struct {
	Items  []UserResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
