package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appetiteclub/apt"
	"github.com/go-chi/chi/v5"

	"github.com/menusnap/menusnap/internal/event"
)

func newTestHandler(repo *MockRepo, pub *MockPublisher) (*Handler, chi.Router) {
	deps := HandlerDeps{Repo: repo}
	if pub != nil {
		deps.Publisher = pub
	}
	h := NewHandler(deps, apt.NewConfig(), nil)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return h, r
}

func TestGetThemeDefaultWhenMissing(t *testing.T) {
	_, r := newTestHandler(NewMockRepo(), nil)

	req := httptest.NewRequest(http.MethodGet, "/settings/theme", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestGetThemeStored(t *testing.T) {
	repo := NewMockRepo()
	stored := Default(DefaultRestaurantID)
	stored.Name = "Chez Nous"
	_ = repo.Save(context.Background(), stored)

	_, r := newTestHandler(repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/settings/theme", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Chez Nous")) {
		t.Errorf("body missing stored name: %s", rec.Body.String())
	}
}

func TestUpdateTheme(t *testing.T) {
	repo := NewMockRepo()
	pub := NewMockPublisher()
	_, r := newTestHandler(repo, pub)

	payload := `{"name":"Chez Nous","main_color":"#0f0f0f"}`
	req := httptest.NewRequest(http.MethodPut, "/settings/theme", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	saved, _ := repo.Get(context.Background(), DefaultRestaurantID)
	if saved == nil {
		t.Fatal("settings not saved")
	}
	if saved.Name != "Chez Nous" {
		t.Errorf("saved name = %q", saved.Name)
	}
	if saved.MainColor != "#0f0f0f" {
		t.Errorf("saved main color = %q", saved.MainColor)
	}
	// Untouched fields keep their defaults
	if saved.AccentColor != AccentColorOptions[0].Value {
		t.Errorf("accent color = %q, want default", saved.AccentColor)
	}

	if len(pub.Topics) != 1 || pub.Topics[0] != event.ThemeTopic {
		t.Fatalf("published topics = %v", pub.Topics)
	}
	var evt event.ThemeEvent
	if err := json.Unmarshal(pub.Msgs[0], &evt); err != nil {
		t.Fatalf("cannot decode event: %v", err)
	}
	if evt.EventType != event.EventThemeUpdated {
		t.Errorf("event type = %q, want %q", evt.EventType, event.EventThemeUpdated)
	}
	if evt.RestaurantID != DefaultRestaurantID {
		t.Errorf("event restaurant id = %q", evt.RestaurantID)
	}
}

func TestUpdateThemeMergesWithStored(t *testing.T) {
	repo := NewMockRepo()
	stored := Default(DefaultRestaurantID)
	stored.Name = "Old Name"
	stored.FontFamily = "Georgia"
	_ = repo.Save(context.Background(), stored)

	_, r := newTestHandler(repo, nil)

	req := httptest.NewRequest(http.MethodPut, "/settings/theme", bytes.NewBufferString(`{"name":"New Name"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	saved, _ := repo.Get(context.Background(), DefaultRestaurantID)
	if saved.Name != "New Name" {
		t.Errorf("saved name = %q", saved.Name)
	}
	if saved.FontFamily != "Georgia" {
		t.Errorf("font family = %q, want stored value kept", saved.FontFamily)
	}
}

func TestUpdateThemeInvalidJSON(t *testing.T) {
	repo := NewMockRepo()
	pub := NewMockPublisher()
	_, r := newTestHandler(repo, pub)

	req := httptest.NewRequest(http.MethodPut, "/settings/theme", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got, _ := repo.Get(context.Background(), DefaultRestaurantID); got != nil {
		t.Error("invalid payload reached the repo")
	}
	if len(pub.Topics) != 0 {
		t.Error("invalid payload published an event")
	}
}

func TestGetThemePresets(t *testing.T) {
	_, r := newTestHandler(NewMockRepo(), nil)

	req := httptest.NewRequest(http.MethodGet, "/settings/theme/presets", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"main_color_options", "accent_color_options", "Charcoal", "Gold"} {
		if !bytes.Contains([]byte(body), []byte(want)) {
			t.Errorf("presets body missing %q: %s", want, body)
		}
	}
}
