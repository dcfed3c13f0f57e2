package entity

import "time"

// Role is the authorization role carried in token claims.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

func (r Role) IsModerator() bool { return r == RoleModerator }

// User is the aggregate root for accounts. Password holds a bcrypt hash.
// Users are never hard-deleted; bans flip a flag and keep the record.
type User struct {
	ID           int64
	Email        string
	Password     string
	Username     string
	Role         Role
	AvatarURL    string
	Bio          string
	SteamID      string
	DiscordID    string
	Banned       bool
	BanReason    string
	BannedAt     *time.Time
	Online       bool
	LastSeenAt   time.Time
	PostCount    int
	MessageCount int
	ReportCount  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
