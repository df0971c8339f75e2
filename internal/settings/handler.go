package settings

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"

	"github.com/menusnap/menusnap/internal/event"
)

const MaxBodyBytes = 1 << 20

// Handler handles HTTP requests for theme settings
type Handler struct {
	repo         Repo
	publisher    events.Publisher
	restaurantID string
	logger       apt.Logger
	config       *apt.Config
	tlm          *telemetry.HTTP
}

type HandlerDeps struct {
	Repo      Repo
	Publisher events.Publisher
}

// NewHandler creates a new Handler for theme settings operations
func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	restaurantID := config.GetStringOrDef("restaurant.id", DefaultRestaurantID)

	return &Handler{
		repo:         hd.Repo,
		publisher:    hd.Publisher,
		restaurantID: restaurantID,
		logger:       logger,
		config:       config,
		tlm:          telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for theme settings
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/theme", h.GetTheme)
		r.Put("/theme", h.UpdateTheme)
		r.Get("/theme/presets", h.GetThemePresets)
	})
}

// GetTheme handles GET /settings/theme
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetTheme")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	s, err := h.repo.Get(ctx, h.restaurantID)
	if err != nil {
		log.Error("error loading theme settings", "error", err, "id", h.restaurantID)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s == nil {
		s = Default(h.restaurantID)
	}

	apt.RespondSuccess(w, s)
}

// UpdateTheme handles PUT /settings/theme
func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateTheme")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	in, ok := h.decodeSettingsPayload(w, r, log)
	if !ok {
		return
	}

	current, err := h.repo.Get(ctx, h.restaurantID)
	if err != nil {
		log.Error("error loading theme settings", "error", err, "id", h.restaurantID)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if current == nil {
		current = Default(h.restaurantID)
	}

	current.ApplyUpdates(in)

	if err := h.repo.Save(ctx, current); err != nil {
		log.Error("cannot save theme settings", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishThemeUpdated(r, current)
	apt.RespondSuccess(w, current)
}

// GetThemePresets handles GET /settings/theme/presets
func (h *Handler) GetThemePresets(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetThemePresets")
	defer finish()

	apt.RespondSuccess(w, map[string][]ColorOption{
		"main_color_options":   MainColorOptions,
		"accent_color_options": AccentColorOptions,
	})
}

// Helper methods

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) decodeSettingsPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (*Settings, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var s Settings
	if err := json.Unmarshal(body, &s); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &s, true
}

// publishThemeUpdated is best-effort; a failed publish is logged and never
// fails the request.
func (h *Handler) publishThemeUpdated(r *http.Request, s *Settings) {
	if h.publisher == nil {
		return
	}

	evt := event.ThemeEvent{
		EventType:    event.EventThemeUpdated,
		OccurredAt:   time.Now(),
		RestaurantID: s.ID,
	}

	msg, err := json.Marshal(evt)
	if err != nil {
		h.logger.Errorf("Cannot marshal theme event: %v", err)
		return
	}

	if err := h.publisher.Publish(r.Context(), event.ThemeTopic, msg); err != nil {
		h.logger.Errorf("Cannot publish theme event: %v", err)
	}
}
