package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USUARIO"
	RoleCourier Role = "REPARTIDOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleCourier:
		return true
	}

	return false
}

// User: профиль покупателя, курьера или администратора.
type User struct {
	ID        string
	Name      string
	Phone     string
	Role      Role
	BirthDate string
	CreatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
