package entities

import "time"

// Video represents the persisted video metadata. Records are created once and
// read back for the owner's gallery; there are no in-app updates or deletes.
type Video struct {
	ID             string `gorm:"type:varchar(40);primaryKey"`
	UserID         string `gorm:"type:varchar(64);index;not null"`
	Title          string `gorm:"type:varchar(255);not null"`
	Description    string `gorm:"type:text"`
	PublicID       string `gorm:"type:varchar(255);not null"`
	OriginalSize   string `gorm:"type:varchar(32);not null"`
	CompressedSize string `gorm:"type:varchar(32);not null"`
	Duration       float64
	Bytes          int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Video) TableName() string {
	return "videos"
}
