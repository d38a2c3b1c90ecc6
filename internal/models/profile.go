package models

// ProfileID is the fixed primary key of the singleton profile row.
const ProfileID uint = 1

// Profile is the owner of the dataset. Exactly one row exists at all times;
// it is seeded at schema initialization and only ever updated in place.
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Currency string `gorm:"type:char(3);not null;check:length(currency) = 3" json:"currency"`
}
