package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase.dev/internal/content"
	"showcase.dev/internal/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "showcase.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func sampleSection() *models.Section {
	return &models.Section{
		Title:       "Featured Work",
		Description: "Things I built",
		Projects: []models.Project{
			{
				ID: "zeta", Title: "Zeta", Description: "Last alphabetically, first in order",
				Image: "https://img.example.com/z.png", Tags: []string{"go", "sqlite", "htmx"},
				GitHub: "https://github.com/example/zeta", Video: "https://drive.example.com/file/d/z/view?usp=sharing",
			},
			{
				ID: "alpha", Title: "Alpha", Description: "Second",
				Image: "https://img.example.com/a.png", Tags: []string{},
				APK: "https://example.com/alpha.apk",
			},
		},
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestStore_LoadBeforeSave(t *testing.T) {
	store := openStore(t)

	_, err := store.LoadSection(context.Background())
	assert.ErrorIs(t, err, ErrNoSection)
}

func TestStore_SaveAndLoadPreservesOrder(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSection(ctx, sampleSection()))

	got, err := store.LoadSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleSection(), got)
}

func TestStore_SaveReplacesContent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveSection(ctx, sampleSection()))

	replacement := &models.Section{
		Title:    "Work",
		Projects: []models.Project{{ID: "only", Title: "Only", Tags: []string{"solo"}}},
	}
	require.NoError(t, store.SaveSection(ctx, replacement))

	got, err := store.LoadSection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Title)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, []string{"solo"}, got.Projects[0].Tags)
}

func TestStore_EmptySection(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveSection(ctx, &models.Section{Title: "Empty"}))

	got, err := store.LoadSection(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got.Projects)
	assert.Empty(t, got.Projects)
}

func TestStore_ReopenKeepsDataAndSkipsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.db")
	ctx := context.Background()

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveSection(ctx, sampleSection()))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.LoadSection(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Projects, 2)
}

func TestStore_CanceledContext(t *testing.T) {
	store := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.SaveSection(ctx, sampleSection()), context.Canceled)
	_, err := store.LoadSection(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractUp(t *testing.T) {
	assert.Equal(t, "\nCREATE TABLE a (x);\n", extractUp("-- +migrate Up\nCREATE TABLE a (x);\n-- +migrate Down\nDROP TABLE a;"))
	assert.Equal(t, "CREATE TABLE b (y);", extractUp("CREATE TABLE b (y);"))
}

func TestStore_LoadedSectionEncodesAsContent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveSection(ctx, sampleSection()))

	loaded, err := store.LoadSection(ctx)
	require.NoError(t, err)

	data, err := content.Encode(loaded, content.FormatYAML)
	require.NoError(t, err)
	decoded, err := content.Decode(data, content.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, loaded, decoded)
}
