package model

import "time"

// UserRole values stored on the users table.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	PhoneNumber  string    `gorm:"size:20" json:"phone_number"`
	Role         string    `gorm:"size:20;not null;default:CUSTOMER" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Address    *Address    `gorm:"foreignKey:UserID" json:"address,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:UserID" json:"order_item_list,omitempty"`
}

func (*User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
