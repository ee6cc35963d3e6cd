package store

import (
	"fmt"
	"sync"
	"testing"

	"qr_api/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory sqlite database with the users schema.
// A single connection keeps the in-memory database shared and serializes
// writers, so concurrent creates exercise the same path as production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func strPtr(s string) *string { return &s }

func TestUserStore_CreateAssignsID(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	user, err := s.Create("123456789", "Test User", strPtr("test@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "123456789", user.Cedula)
	assert.Equal(t, "Test User", user.Nombre)
	require.NotNil(t, user.Email)
	assert.Equal(t, "test@example.com", *user.Email)
}

func TestUserStore_CreateWithoutEmail(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	user, err := s.Create("111", "Sin Correo", nil)
	require.NoError(t, err)
	assert.Nil(t, user.Email)
}

func TestUserStore_CreateDuplicateCedula(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	_, err := s.Create("123456789", "Test User", nil)
	require.NoError(t, err)

	_, err = s.Create("123456789", "Otro Nombre", nil)
	assert.ErrorIs(t, err, ErrCedulaExists)

	// The losing create must not leave a second row behind
	users, err := s.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStore_GetByCedula(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	created, err := s.Create("123456789", "Test User", nil)
	require.NoError(t, err)

	found, err := s.GetByCedula("123456789")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Test User", found.Nombre)

	_, err = s.GetByCedula("999999999")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_ListOrderAndPagination(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	for i := 1; i <= 5; i++ {
		_, err := s.Create(fmt.Sprintf("cedula-%d", i), fmt.Sprintf("User %d", i), nil)
		require.NoError(t, err)
	}

	all, err := s.List(0, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)
	// Insertion order, primary key ascending
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].ID, all[i-1].ID)
	}

	page, err := s.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[2].ID, page[0].ID)
	assert.Equal(t, all[3].ID, page[1].ID)
}

func TestUserStore_ListEmpty(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	users, err := s.List(0, 100)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserStore_ConcurrentDuplicateCreates(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create("123456789", "Test User", nil)
		}(i)
	}
	wg.Wait()

	var created, duplicated int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case assert.ErrorIs(t, err, ErrCedulaExists):
			duplicated++
		}
	}
	assert.Equal(t, 1, created, "exactly one concurrent create may succeed")
	assert.Equal(t, workers-1, duplicated)

	users, err := s.List(0, 100)
	require.NoError(t, err)
	assert.Len(t, users, 1, "no duplicate rows may persist")
}
