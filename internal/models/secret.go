package models

// Category identifies one of the four discipline notebooks in the secrets
// library. The set is closed; operations on any other value are rejected.
type Category string

const (
	CategoryJiuJitsu Category = "jiuJitsu"
	CategoryNoGi     Category = "noGi"
	CategoryMMA      Category = "mma"
	CategoryMuayThai Category = "muayThai"
)

// Categories lists the discipline notebooks in display order.
func Categories() []Category {
	return []Category{CategoryJiuJitsu, CategoryNoGi, CategoryMMA, CategoryMuayThai}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryJiuJitsu, CategoryNoGi, CategoryMMA, CategoryMuayThai:
		return true
	}
	return false
}

// Secret is a user-authored technique note. Title and technique are
// mandatory; the rest is free-form context.
type Secret struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Technique string `json:"technique"`
	Situation string `json:"situation,omitempty"`
	Details   string `json:"details,omitempty"`
	Reminder  string `json:"reminder,omitempty"`
	Favorite  bool   `json:"favorite"`
	CreatedAt string `json:"created_at"`           // RFC3339
	UpdatedAt string `json:"updated_at,omitempty"` // RFC3339
}

// SecretInput carries the user-supplied fields for a new secret.
type SecretInput struct {
	Title     string `json:"title"`
	Technique string `json:"technique"`
	Situation string `json:"situation,omitempty"`
	Details   string `json:"details,omitempty"`
	Reminder  string `json:"reminder,omitempty"`
	Favorite  bool   `json:"favorite"`
}

// SecretPatch carries optional edits to an existing secret. Nil fields are
// left untouched.
type SecretPatch struct {
	Title     *string `json:"title,omitempty"`
	Technique *string `json:"technique,omitempty"`
	Situation *string `json:"situation,omitempty"`
	Details   *string `json:"details,omitempty"`
	Reminder  *string `json:"reminder,omitempty"`
}

// SecretsLibrary holds the per-category ordered note lists.
type SecretsLibrary map[Category][]Secret

// NewSecretsLibrary returns an empty library with every category present.
func NewSecretsLibrary() SecretsLibrary {
	lib := make(SecretsLibrary, len(Categories()))
	for _, c := range Categories() {
		lib[c] = []Secret{}
	}
	return lib
}
