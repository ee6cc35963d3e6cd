package store

import (
	"errors"                 // Sentinel error definitions
	"qr_api/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Domain outcomes returned by the store, translated to status codes at the API layer
var (
	ErrCedulaExists = errors.New("cedula already registered") // Duplicate cedula on create
	ErrUserNotFound = errors.New("user not found")            // No user for the given cedula
)

// UserStore persists users in the relational database
type UserStore struct {
	db *gorm.DB // Database handle
}

// NewUserStore creates a UserStore backed by db
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. The existence pre-check gives the friendly
// duplicate path; the unique index on cedula is the source of truth, so a
// constraint violation from a concurrent create also maps to ErrCedulaExists.
func (s *UserStore) Create(cedula, nombre string, email *string) (*domain.User, error) {
	user := domain.User{Cedula: cedula, Nombre: nombre, Email: email}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.User // Pre-check for an existing cedula
		err := tx.Where("cedula = ?", cedula).First(&existing).Error
		if err == nil {
			return ErrCedulaExists // Already registered, nothing inserted
		}
		// Any error other than "not found" is a real storage failure
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// Insert the new row
		if err := tx.Create(&user).Error; err != nil {
			// A concurrent create may win the race; the unique index reports it
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCedulaExists
			}
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	// Log successful creation
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,     // Assigned primary key
		"cedula":  user.Cedula, // Natural key
	}).Info("User created")
	return &user, nil // Return the row including its assigned ID
}

// GetByCedula returns the user with the given cedula, or ErrUserNotFound
func (s *UserStore) GetByCedula(cedula string) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.Where("cedula = ?", cedula).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound // No such user
		}
		return nil, err // Storage failure
	}
	return &user, nil
}

// List returns users in insertion order (primary key ascending).
// No upper bound is enforced on limit; that is the caller's concern.
func (s *UserStore) List(offset, limit int) ([]domain.User, error) {
	users := make([]domain.User, 0) // Empty slice so the API serializes [] not null
	if err := s.db.Order("id asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err // Storage failure
	}
	return users, nil
}
