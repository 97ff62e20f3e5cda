package response

import (
	"time"

	"movie-db/internal/data/entity"
	"movie-db/pkg/utils"
)

// AuthPage is the context for the login and signup forms. Fields echoes the
// submitted values back so a failed form re-renders filled in.
type AuthPage struct {
	Title  string            `json:"title"`
	Fields map[string]string `json:"fields,omitempty"`
	Notice *utils.Flash      `json:"notice,omitempty"`
}

type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converter
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
