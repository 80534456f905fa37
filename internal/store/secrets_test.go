package store

import (
	"errors"
	"testing"

	"github.com/gcosta/fightlog/internal/models"
)

func TestAddSecret(t *testing.T) {
	t.Run("title and technique are enough", func(t *testing.T) {
		s, _ := setupTestStore(t)

		secret, err := s.AddSecret(models.CategoryJiuJitsu, models.SecretInput{
			Title:     "Collar drag setup",
			Technique: "Collar drag to single",
		})
		if err != nil {
			t.Fatalf("AddSecret() returned unexpected error: %v", err)
		}
		if secret.ID == "" {
			t.Error("AddSecret() assigned no id")
		}
		if secret.CreatedAt == "" {
			t.Error("AddSecret() assigned no creation timestamp")
		}

		other, err := s.AddSecret(models.CategoryJiuJitsu, models.SecretInput{
			Title:     "Grip break",
			Technique: "Two-on-one grip break",
		})
		if err != nil {
			t.Fatalf("AddSecret() returned unexpected error: %v", err)
		}
		if other.ID == secret.ID {
			t.Error("AddSecret() reused an id")
		}
	})

	t.Run("missing technique is rejected", func(t *testing.T) {
		s, _ := setupTestStore(t)

		_, err := s.AddSecret(models.CategoryMMA, models.SecretInput{Title: "Feint entry"})
		if !errors.Is(err, ErrSecretIncomplete) {
			t.Errorf("AddSecret() error = %v, want ErrSecretIncomplete", err)
		}

		secrets, _ := s.SecretsFor(models.CategoryMMA)
		if len(secrets) != 0 {
			t.Errorf("len(secrets) = %d, want 0 after a rejected add", len(secrets))
		}
	})

	t.Run("unknown category is rejected, not created", func(t *testing.T) {
		s, _ := setupTestStore(t)

		_, err := s.AddSecret("karate", models.SecretInput{Title: "Kick", Technique: "Roundhouse"})
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("AddSecret() error = %v, want ErrUnknownCategory", err)
		}
		if _, ok := s.Secrets()["karate"]; ok {
			t.Error("rejected add created a new category")
		}
	})
}

func TestUpdateSecret(t *testing.T) {
	s, _ := setupTestStore(t)

	secret, err := s.AddSecret(models.CategoryNoGi, models.SecretInput{
		Title:     "Leg entry",
		Technique: "K-guard to backside 50/50",
		Details:   "Only off a collar tie",
	})
	if err != nil {
		t.Fatalf("AddSecret() returned unexpected error: %v", err)
	}

	title := "Leg entry v2"
	updated, err := s.UpdateSecret(models.CategoryNoGi, secret.ID, models.SecretPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateSecret() returned unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("Title = %q, want %q", updated.Title, title)
	}
	if updated.Details != secret.Details {
		t.Errorf("Details = %q, want untouched %q", updated.Details, secret.Details)
	}
	if updated.UpdatedAt == "" {
		t.Error("UpdateSecret() left no update timestamp")
	}

	t.Run("blanking a mandatory field is rejected", func(t *testing.T) {
		empty := ""
		_, err := s.UpdateSecret(models.CategoryNoGi, secret.ID, models.SecretPatch{Technique: &empty})
		if !errors.Is(err, ErrSecretIncomplete) {
			t.Errorf("UpdateSecret() error = %v, want ErrSecretIncomplete", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.UpdateSecret(models.CategoryNoGi, "nope", models.SecretPatch{Title: &title})
		if !errors.Is(err, ErrSecretNotFound) {
			t.Errorf("UpdateSecret() error = %v, want ErrSecretNotFound", err)
		}
	})
}

func TestDeleteSecret(t *testing.T) {
	s, _ := setupTestStore(t)

	first, _ := s.AddSecret(models.CategoryMuayThai, models.SecretInput{Title: "Sweep", Technique: "Catch and sweep"})
	second, _ := s.AddSecret(models.CategoryMuayThai, models.SecretInput{Title: "Elbow", Technique: "Up elbow in the clinch"})

	if err := s.DeleteSecret(models.CategoryMuayThai, first.ID); err != nil {
		t.Fatalf("DeleteSecret() returned unexpected error: %v", err)
	}

	secrets, _ := s.SecretsFor(models.CategoryMuayThai)
	if len(secrets) != 1 || secrets[0].ID != second.ID {
		t.Errorf("secrets = %+v, want only the second entry left", secrets)
	}

	if err := s.DeleteSecret(models.CategoryMuayThai, first.ID); !errors.Is(err, ErrSecretNotFound) {
		t.Errorf("DeleteSecret() error = %v, want ErrSecretNotFound on a deleted id", err)
	}
}

func TestToggleSecretFavorite(t *testing.T) {
	s, _ := setupTestStore(t)

	secret, _ := s.AddSecret(models.CategoryMMA, models.SecretInput{Title: "Wall work", Technique: "Underhook off the cage"})

	fav, err := s.ToggleSecretFavorite(models.CategoryMMA, secret.ID)
	if err != nil {
		t.Fatalf("ToggleSecretFavorite() returned unexpected error: %v", err)
	}
	if !fav {
		t.Error("ToggleSecretFavorite() = false, want true on first toggle")
	}

	fav, err = s.ToggleSecretFavorite(models.CategoryMMA, secret.ID)
	if err != nil {
		t.Fatalf("ToggleSecretFavorite() returned unexpected error: %v", err)
	}
	if fav {
		t.Error("ToggleSecretFavorite() = true, want false on second toggle")
	}
}
