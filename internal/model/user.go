package model

type UserRole string

const (
	Creator UserRole = "creator"
	Player  UserRole = "player"
)

// Valid reports whether the role is one of the closed set. Roles arrive as
// free-form strings from registration payloads and JWT claims.
func (r UserRole) Valid() bool {
	switch r {
	case Creator, Player:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('creator','player');default:'player'" json:"role"`
	Score    int      `gorm:"default:0" json:"score"` // running total across quiz attempts
	Avatar   string   `gorm:"size:255" json:"avatar"`
}

func (User) TableName() string {
	return "users"
}
