package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRepository_Exists(t *testing.T) {
	dir := t.TempDir()
	repo := NewMetadataRepository(dir)

	assert.False(t, repo.Exists())

	require.NoError(t, repo.Save(domain.ExampleMetadata()))
	assert.True(t, repo.Exists())
}

func TestMetadataRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewMetadataRepository(dir)

	want := domain.ExampleMetadata()
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMetadataRepository_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	repo := NewMetadataRepository(dir)

	want := &domain.Metadata{
		Accounts:      []string{"b", "a", "c"},
		Categories:    []string{"z", ""},
		Subcategories: []string{"", "y"},
	}
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMetadataRepository_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", "{"},
		{"unknown key", `{"accounts": [], "categories": [], "subcategories": [], "budgets": []}`},
		{"missing key", `{"accounts": [], "categories": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, MetadataFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewMetadataRepository(dir).Load()
			assert.ErrorIs(t, err, domain.ErrStorage)
		})
	}
}

func TestMetadataRepository_Load_MissingFile(t *testing.T) {
	_, err := NewMetadataRepository(t.TempDir()).Load()
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestMetadataRepository_Save_PrettyPrints(t *testing.T) {
	dir := t.TempDir()
	repo := NewMetadataRepository(dir)

	require.NoError(t, repo.Save(domain.ExampleMetadata()))

	data, err := os.ReadFile(filepath.Join(dir, MetadataFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"accounts\"")
}
