package models

type UserRole string

const (
	RoleGuest     UserRole = "guest"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// UserStatus tracks a pending role change. Empty means nothing is pending.
type UserStatus string

const (
	StatusRequested UserStatus = "Requested"
	StatusVerified  UserStatus = "Verified"
)

// User is a profile keyed by email. Timestamp is milliseconds since epoch and
// is refreshed on every upsert or update.
type User struct {
	ID        string     `json:"_id,omitempty"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Image     string     `json:"image,omitempty"`
	Role      UserRole   `json:"role,omitempty"`
	Status    UserStatus `json:"status,omitempty"`
	Timestamp int64      `json:"timestamp,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
