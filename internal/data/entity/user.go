package entity

type UserRole string

const (
	RoleMember   UserRole = "member"
	RoleOperator UserRole = "operator"
)

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
