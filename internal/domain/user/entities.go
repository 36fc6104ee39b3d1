package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// Profile holds ledger-owned per-user state. The credit score deliberately
// does not live here: it is re-read from the oracle on every loan request,
// never cached.
type Profile struct {
	UserID    string    `gorm:"column:user_id;type:char(32);primaryKey"`
	Verified  bool      `gorm:"column:verified;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string { return "users" }
