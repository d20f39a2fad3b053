package response

import (
	"petminder/internal/core/domain/user"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainType(du user.User) {
	u.ID = string(du.ID)
	u.Email = string(du.Email)
	u.FirstName = du.FirstName
	u.LastName = du.LastName
	u.Role = du.Role.String()
	u.CreatedAt = du.CreatedAt
}
