package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolvault/toolvault/internal/entities"
)

func setupTestDatabase(t *testing.T) *Database {
	t.Helper()

	dbPath := "./test_database_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

func TestNewDatabase_SeedsDefaults(t *testing.T) {
	db := setupTestDatabase(t)

	var bookmarks []entities.Bookmark
	err := db.DB.Order("id ASC").Find(&bookmarks).Error
	require.NoError(t, err)
	require.Len(t, bookmarks, DefaultBookmarkCount())

	// Spot check literal seed values survive the round trip.
	assert.Equal(t, "Canva", bookmarks[0].Name)
	assert.Equal(t, "https://www.canva.com", bookmarks[0].URL)
	assert.Equal(t, "Design anything — social media graphics, presentations, posters & more.", bookmarks[0].Description)
	assert.Equal(t, "https://img.icons8.com/fluency/96/canva.png", bookmarks[0].Logo)

	assert.Equal(t, "DeepSeek", bookmarks[len(bookmarks)-1].Name)
	assert.Equal(t, "https://chat.deepseek.com", bookmarks[len(bookmarks)-1].URL)

	for _, b := range bookmarks {
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.URL)
	}
}

func TestEnsureSeeded_Idempotent(t *testing.T) {
	db := setupTestDatabase(t)

	// NewDatabase already seeded once; two further calls must not insert again.
	require.NoError(t, db.EnsureSeeded())
	require.NoError(t, db.EnsureSeeded())

	var count int64
	err := db.DB.Model(&entities.Bookmark{}).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultBookmarkCount()), count)
}

func TestEnsureSeeded_SkipsNonEmptyStore(t *testing.T) {
	db := setupTestDatabase(t)

	// Delete everything but one record; the seed guard is a count check,
	// so a partially populated store must stay untouched.
	err := db.DB.Where("name <> ?", "GitHub").Delete(&entities.Bookmark{}).Error
	require.NoError(t, err)

	require.NoError(t, db.EnsureSeeded())

	var count int64
	err = db.DB.Model(&entities.Bookmark{}).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
