package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gcosta/fightlog/internal/models"
)

var (
	// ErrUnknownCategory rejects operations on a category outside the
	// closed discipline set. Unknown categories are never created.
	ErrUnknownCategory = errors.New("unknown secret category")

	// ErrSecretNotFound rejects operations on an id absent from the
	// category's list.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretIncomplete rejects a new secret missing its mandatory
	// fields. Enforcement lives here so every calling surface gets it.
	ErrSecretIncomplete = errors.New("secret requires a title and a technique")
)

// AddSecret appends a new note to the category's list, assigning it a unique
// id and a creation timestamp.
func (s *Store) AddSecret(category models.Category, input models.SecretInput) (models.Secret, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.Valid() {
		return models.Secret{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	if input.Title == "" || input.Technique == "" {
		return models.Secret{}, ErrSecretIncomplete
	}

	secret := models.Secret{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Technique: input.Technique,
		Situation: input.Situation,
		Details:   input.Details,
		Reminder:  input.Reminder,
		Favorite:  input.Favorite,
		CreatedAt: s.clock().Format(time.RFC3339),
	}
	s.state.Secrets[category] = append(s.state.Secrets[category], secret)

	s.persist()
	return secret, nil
}

// UpdateSecret merges the patch into the identified note and stamps it.
func (s *Store) UpdateSecret(category models.Category, id string, patch models.SecretPatch) (models.Secret, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.Valid() {
		return models.Secret{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	for i := range s.state.Secrets[category] {
		if s.state.Secrets[category][i].ID != id {
			continue
		}

		// Merge into a copy so a rejected patch leaves the note untouched.
		merged := s.state.Secrets[category][i]
		if patch.Title != nil {
			merged.Title = *patch.Title
		}
		if patch.Technique != nil {
			merged.Technique = *patch.Technique
		}
		if patch.Situation != nil {
			merged.Situation = *patch.Situation
		}
		if patch.Details != nil {
			merged.Details = *patch.Details
		}
		if patch.Reminder != nil {
			merged.Reminder = *patch.Reminder
		}
		if merged.Title == "" || merged.Technique == "" {
			return models.Secret{}, ErrSecretIncomplete
		}
		merged.UpdatedAt = s.clock().Format(time.RFC3339)
		s.state.Secrets[category][i] = merged

		s.persist()
		return merged, nil
	}

	return models.Secret{}, fmt.Errorf("%w: %s/%s", ErrSecretNotFound, category, id)
}

// DeleteSecret removes the identified note from the category's list.
func (s *Store) DeleteSecret(category models.Category, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	list := s.state.Secrets[category]
	for i, sec := range list {
		if sec.ID == id {
			s.state.Secrets[category] = append(list[:i], list[i+1:]...)
			s.persist()
			return nil
		}
	}

	return fmt.Errorf("%w: %s/%s", ErrSecretNotFound, category, id)
}

// ToggleSecretFavorite flips the favorite flag and returns the new value.
func (s *Store) ToggleSecretFavorite(category models.Category, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.Valid() {
		return false, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	for i := range s.state.Secrets[category] {
		sec := &s.state.Secrets[category][i]
		if sec.ID == id {
			sec.Favorite = !sec.Favorite
			s.persist()
			return sec.Favorite, nil
		}
	}

	return false, fmt.Errorf("%w: %s/%s", ErrSecretNotFound, category, id)
}

// SecretsFor returns a copy of the category's ordered note list.
func (s *Store) SecretsFor(category models.Category) ([]models.Secret, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !category.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return append([]models.Secret{}, s.state.Secrets[category]...), nil
}

// Secrets returns a copy of the whole library.
func (s *Store) Secrets() models.SecretsLibrary {
	s.mu.Lock()
	defer s.mu.Unlock()

	lib := models.NewSecretsLibrary()
	for _, c := range models.Categories() {
		lib[c] = append(lib[c], s.state.Secrets[c]...)
	}
	return lib
}
