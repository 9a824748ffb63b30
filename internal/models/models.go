package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"     json:"username"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Name         string    `gorm:"not null"                 json:"name"`
	Company      string    `json:"company"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"not null"   json:"email"`
	Message   string    `gorm:"not null"   json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey"           json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
