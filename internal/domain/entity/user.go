package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RoleList stores the user's role identifiers as a JSON-encoded column,
// matching the `users.roles` schema.
type RoleList []string

// Value implements driver.Valuer.
func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		r = RoleList{}
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *RoleList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = RoleList{}
		return nil
	default:
		return fmt.Errorf("cannot scan roles from %T", src)
	}
}

// Has reports whether the list contains the given role.
func (r RoleList) Has(role string) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}
	return false
}

// User is an authenticated principal. Email is globally unique and Password
// holds an opaque bcrypt hash.
type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Email    string   `json:"email" gorm:"type:varchar(180);not null;uniqueIndex"`
	Roles    RoleList `json:"roles" gorm:"type:json;not null"`
	Password string   `json:"-" gorm:"type:varchar(255);not null"`
}

func (User) TableName() string {
	return "users"
}
