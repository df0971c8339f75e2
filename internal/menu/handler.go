package menu

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/menusnap/menusnap/internal/event"
	"github.com/menusnap/menusnap/internal/i18n"
	"github.com/menusnap/menusnap/internal/settings"
)

const MaxBodyBytes = 1 << 20

// Handler handles HTTP requests for the menu service
type Handler struct {
	itemRepo     MenuItemRepo
	settingsRepo settings.Repo
	publisher    events.Publisher
	restaurantID string
	logger       apt.Logger
	config       *apt.Config
	tlm          *telemetry.HTTP
}

type HandlerDeps struct {
	ItemRepo     MenuItemRepo
	SettingsRepo settings.Repo
	Publisher    events.Publisher
}

// NewHandler creates a new Handler for menu operations
func NewHandler(hd HandlerDeps, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}

	restaurantID := config.GetStringOrDef("restaurant.id", settings.DefaultRestaurantID)

	return &Handler{
		itemRepo:     hd.ItemRepo,
		settingsRepo: hd.SettingsRepo,
		publisher:    hd.Publisher,
		restaurantID: restaurantID,
		logger:       logger,
		config:       config,
		tlm:          telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for the menu service
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/menu", func(r chi.Router) {
		// Public board
		r.Get("/board", h.GetBoard)
		r.Get("/locales", h.ListLocales)

		// Admin item routes
		r.Route("/items", func(r chi.Router) {
			r.Post("/", h.CreateMenuItem)
			r.Get("/", h.ListMenuItems)
			r.Get("/{id}", h.GetMenuItem)
			r.Put("/{id}", h.UpdateMenuItem)
			r.Delete("/{id}", h.DeleteMenuItem)
		})
	})
}

// GetBoard handles GET /menu/board
//
// Query parameters: locale (defaults to en), active (previously selected
// category, repaired when it no longer exists) and all=true for the admin
// variant, which keeps unavailable items visible and skips label translation.
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetBoard")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	items, err := h.itemRepo.List(ctx)
	if err != nil {
		log.Error("cannot list menu items", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	theme, err := h.settingsRepo.Get(ctx, h.restaurantID)
	if err != nil {
		log.Error("cannot load theme settings", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if theme == nil {
		theme = settings.Default(h.restaurantID)
	}

	board := BuildBoard(items, BoardOptions{
		Locale: i18n.Parse(r.URL.Query().Get("locale")),
		Active: r.URL.Query().Get("active"),
		All:    r.URL.Query().Get("all") == "true",
		Theme:  theme,
	})

	apt.RespondSuccess(w, board)
}

// ListLocales handles GET /menu/locales
func (h *Handler) ListLocales(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListLocales")
	defer finish()

	apt.RespondSuccess(w, i18n.Locales())
}

// CreateMenuItem handles POST /menu/items
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	item, ok := h.decodeMenuItemPayload(w, r, log)
	if !ok {
		return
	}

	item.EnsureID()
	item.BeforeCreate()

	if validationErrors := ValidateMenuItem(item); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.itemRepo.Create(ctx, item); err != nil {
		log.Error("cannot create menu item", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishItemEvent(r, event.EventMenuItemCreated, item)

	links := apt.RESTfulLinksFor(item)
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, item, links...)
}

// GetMenuItem handles GET /menu/items/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	item, err := h.itemRepo.Get(ctx, id)
	if err != nil {
		log.Error("error loading menu item", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if item == nil {
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	links := apt.RESTfulLinksFor(item)
	apt.RespondSuccess(w, item, links...)
}

// ListMenuItems handles GET /menu/items
func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListMenuItems")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	availableOnly := r.URL.Query().Get("available") == "true"

	var items []*MenuItem
	var err error

	if availableOnly {
		items, err = h.itemRepo.ListAvailable(ctx)
	} else {
		items, err = h.itemRepo.List(ctx)
	}

	if err != nil {
		log.Error("cannot list menu items", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	apt.RespondCollection(w, items, "menu/items")
}

// UpdateMenuItem handles PUT /menu/items/{id}
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.UpdateMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	item, ok := h.decodeMenuItemPayload(w, r, log)
	if !ok {
		return
	}

	item.ID = id
	item.BeforeUpdate()

	if validationErrors := ValidateMenuItem(item); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	if err := h.itemRepo.Save(ctx, item); err != nil {
		log.Error("cannot update menu item", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishItemEvent(r, event.EventMenuItemUpdated, item)

	links := apt.RESTfulLinksFor(item)
	apt.RespondSuccess(w, item, links...)
}

// DeleteMenuItem handles DELETE /menu/items/{id}
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteMenuItem")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	// Load first so the deletion event carries the item's name and category.
	item, err := h.itemRepo.Get(ctx, id)
	if err != nil {
		log.Error("error loading menu item", "error", err, "id", id.String())
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	if err := h.itemRepo.Delete(ctx, id); err != nil {
		log.Error("cannot delete menu item", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publishItemEvent(r, event.EventMenuItemDeleted, item)

	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr, "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decodeMenuItemPayload(w http.ResponseWriter, r *http.Request, log apt.Logger) (*MenuItem, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var item MenuItem
	if err := json.Unmarshal(body, &item); err != nil {
		log.Debug("error decoding JSON", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &item, true
}

func (h *Handler) respondValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"errors": errors,
	})
}

// publishItemEvent is best-effort; a failed publish is logged and never
// fails the request.
func (h *Handler) publishItemEvent(r *http.Request, eventType string, item *MenuItem) {
	if h.publisher == nil {
		return
	}

	evt := event.MenuItemEvent{
		EventType:  eventType,
		OccurredAt: time.Now(),
		MenuItemID: item.ID.String(),
		Name:       item.Name,
		Category:   item.EffectiveCategory(),
	}

	msg, err := json.Marshal(evt)
	if err != nil {
		h.logger.Errorf("Cannot marshal menu item event: %v", err)
		return
	}

	if err := h.publisher.Publish(r.Context(), event.MenuItemsTopic, msg); err != nil {
		h.logger.Errorf("Cannot publish menu item event: %v", err)
	}
}
