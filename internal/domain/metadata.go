package domain

// Metadata is the aggregate of account, category and subcategory names.
// Order is preserved across load and save. The empty string is a legal
// category and subcategory value, used for "uncategorized".
type Metadata struct {
	Accounts      []string `json:"accounts"`
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
}

// Clone returns a deep copy of the metadata.
func (m *Metadata) Clone() *Metadata {
	c := &Metadata{
		Accounts:      make([]string, len(m.Accounts)),
		Categories:    make([]string, len(m.Categories)),
		Subcategories: make([]string, len(m.Subcategories)),
	}
	copy(c.Accounts, m.Accounts)
	copy(c.Categories, m.Categories)
	copy(c.Subcategories, m.Subcategories)
	return c
}

// MetadataRepository persists the metadata aggregate as a single document.
type MetadataRepository interface {
	Exists() bool
	Load() (*Metadata, error)
	Save(meta *Metadata) error
}
