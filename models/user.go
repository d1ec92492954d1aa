package models

// UserRole is the access level of a dashboard user.
type UserRole string

// Roles. Role is immutable after creation.
const (
	RoleAdmin  UserRole = "ADMIN"
	RoleMember UserRole = "MEMBER"
)

// User holds the structure for a dashboard user. Users are created at
// registration or by seed and are never deleted in this design.
type User struct {
	ID        string   `json:"id" bson:"_id"`
	Username  string   `json:"username" bson:"username"`
	FullName  string   `json:"fullName" bson:"fullName"`
	Role      UserRole `json:"role" bson:"role"`
	AvatarURL string   `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
}
