package domain

// User Model
type User struct {
	ID     uint    `gorm:"primaryKey" json:"id"`               // Primary key
	Cedula string  `gorm:"uniqueIndex;not null" json:"cedula"` // Unique national ID (natural key)
	Nombre string  `gorm:"not null" json:"nombre"`             // Full name
	Email  *string `json:"email"`                              // Optional email
}
