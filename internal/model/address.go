package model

import "time"

// Address is a user's single shipping address. Saving again replaces the
// existing row for that user.
type Address struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	Street    string    `gorm:"size:255" json:"street"`
	City      string    `gorm:"size:100" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	ZipCode   string    `gorm:"size:20" json:"zip_code"`
	Country   string    `gorm:"size:100" json:"country"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (*Address) TableName() string {
	return "addresses"
}
