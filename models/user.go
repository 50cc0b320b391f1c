package models

import "time"

const UserTable = "laf_users"

// Roles. Resolved once at registration/login and carried in the session
// context; handlers never compare emails against literals.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName  string `gorm:"size:255" json:"displayName"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`
	LastLoginIP string     `gorm:"size:45" json:"-"`
	LastLoginUA string     `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }

// Identity is the value recorded in claimant lists: the display name when
// set, the email otherwise.
func (u *User) Identity() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
