package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedem-p/BudgetApp2.0/internal/domain"
)

// MetadataFileName is the name of the metadata file inside the data directory.
const MetadataFileName = "metadata.json"

// MetadataRepository persists the metadata aggregate as a JSON document with
// exactly the keys accounts, categories and subcategories.
type MetadataRepository struct {
	path string
}

// NewMetadataRepository creates a MetadataRepository rooted at dataDir.
func NewMetadataRepository(dataDir string) *MetadataRepository {
	return &MetadataRepository{path: filepath.Join(dataDir, MetadataFileName)}
}

// Exists reports whether the metadata file is present.
func (r *MetadataRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Load reads the metadata document. Unknown or missing keys are treated as a
// malformed file.
func (r *MetadataRepository) Load() (*domain.Metadata, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrStorage, r.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var meta domain.Metadata
	if err := dec.Decode(&meta); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrStorage, r.path, err)
	}
	if meta.Accounts == nil || meta.Categories == nil || meta.Subcategories == nil {
		return nil, fmt.Errorf("%w: %s: accounts, categories and subcategories are all required", domain.ErrStorage, r.path)
	}
	return &meta, nil
}

// Save replaces the metadata file, pretty-printed with stable indentation.
func (r *MetadataRepository) Save(meta *domain.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, r.path, err)
	}
	if err := writeAtomic(r.path, append(data, '\n')); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, r.path, err)
	}
	return nil
}
