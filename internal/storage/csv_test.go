package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/teledex/internal/models"
)

func testRecords() []models.Record {
	return []models.Record{
		{ID: 1, Fields: map[string]string{
			models.FieldSurname:      "Ivanov",
			models.FieldGivenName:    "Ivan",
			models.FieldPatronymic:   "Ivanovich",
			models.FieldOrganization: "Acme",
			models.FieldWorkPhone:    "1234567",
			models.FieldMobilePhone:  "7654321",
		}},
		{ID: 2, Fields: map[string]string{
			models.FieldSurname:      "Petrova",
			models.FieldGivenName:    "Anna",
			models.FieldPatronymic:   "Sergeevna",
			models.FieldOrganization: "Globex, Ltd", // comma must survive CSV quoting
			models.FieldWorkPhone:    "7654321",
			models.FieldMobilePhone:  "1234567",
		}},
	}
}

func TestCSVStore_LoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewCSVStore(filepath.Join(t.TempDir(), "records.csv"))
	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.csv")
	store := NewCSVStore(path)

	require.NoError(t, store.Save(testRecords()))

	// A fresh adapter over the same file reproduces the collection
	loaded, err := NewCSVStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, testRecords(), loaded)
}

func TestCSVStore_WritesSchemaHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, NewCSVStore(path).Save(testRecords()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, models.Schema, rows[0])
	assert.Len(t, rows, 3)
}

func TestCSVStore_SaveIsSnapshotOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.csv")
	store := NewCSVStore(path)

	require.NoError(t, store.Save(testRecords()))
	require.NoError(t, store.Save(testRecords()[:1]))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].ID)
}

func TestCSVStore_SaveCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "records.csv")
	require.NoError(t, NewCSVStore(path).Save(testRecords()))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestCSVStore_EmptySnapshotKeepsHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.csv")
	store := NewCSVStore(path)

	require.NoError(t, store.Save(nil))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
