package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabase_InitializeForDirectory(t *testing.T) {
	a := require.New(t)

	sut := NewDatabase()
	dir := t.TempDir()

	err := sut.InitializeForDirectory(dir, "test.db")
	a.Nil(err)

	err = sut.session.Ping()
	a.Nil(err)
	a.FileExists(filepath.Join(dir, ImageCullerDir, "test.db"))

	sut.Close()
}

func TestDatabase_MigrateDB(t *testing.T) {
	a := require.New(t)

	sut := NewDatabase()
	err := sut.InitializeForDirectory(t.TempDir(), "test.db")
	a.Nil(err)

	t.Run("First migration", func(t *testing.T) {
		exists, err := sut.Migrate()
		a.Nil(err)
		a.Equal(TableNotExist, exists)
	})
	t.Run("Second migration", func(t *testing.T) {
		exists, err := sut.Migrate()
		a.Nil(err)
		a.Equal(TableExists, exists)
	})

	sut.Close()
}
