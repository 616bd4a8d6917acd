package entity

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// User is keyed by Name. PasswordHash always holds a bcrypt hash, never the
// raw secret; read responses at the boundary must not echo it.
type User struct {
	Name         string
	PasswordHash string
	Role         UserRole
	Active       bool
}
