package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"items-api/models"
	"items-api/storage"
)

// ItemController translates HTTP requests into store calls. It depends
// only on the Store interface; which backend sits behind it is decided
// once at startup.
type ItemController struct {
	store  storage.Store
	kind   string
	logger *zap.Logger
}

func NewItemController(store storage.Store, kind string, logger *zap.Logger) *ItemController {
	return &ItemController{store: store, kind: kind, logger: logger}
}

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (c *ItemController) ok(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, response{Success: true, Data: data, Message: message})
}

func (c *ItemController) fail(w http.ResponseWriter, status int, err string) {
	writeJSON(w, status, response{Success: false, Error: err})
}

func (c *ItemController) serverError(w http.ResponseWriter, err error) {
	c.logger.Error("storage failure", zap.Error(err))
	c.fail(w, http.StatusInternalServerError, err.Error())
}

func pathID(r *http.Request) int64 {
	// The route pattern constrains {id} to digits, so this cannot fail
	// for requests that reached the handler.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

// List handles GET /api/items/.
func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.store.GetAll(r.Context())
	if err != nil {
		c.serverError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.ok(w, http.StatusOK, items,
		fmt.Sprintf("Items retrieved successfully from %s database", c.kind))
}

// Detail handles GET /api/items/{id}/.
func (c *ItemController) Detail(w http.ResponseWriter, r *http.Request) {
	item, err := c.store.GetByID(r.Context(), pathID(r))
	if err != nil {
		c.serverError(w, err)
		return
	}
	if item == nil {
		c.fail(w, http.StatusNotFound, "Item not found")
		return
	}
	c.ok(w, http.StatusOK, item,
		fmt.Sprintf("Item retrieved successfully from %s database", c.kind))
}

// Create handles POST /api/items/create/.
func (c *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.fail(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	if patch.Name == nil || *patch.Name == "" {
		c.fail(w, http.StatusBadRequest, "Name is required")
		return
	}

	item, err := c.store.Create(r.Context(), patch)
	if err != nil {
		c.serverError(w, err)
		return
	}
	c.ok(w, http.StatusCreated, item,
		fmt.Sprintf("Item created successfully in %s database", c.kind))
}

// Update handles PUT /api/items/{id}/update/.
func (c *ItemController) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.fail(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	item, err := c.store.Update(r.Context(), pathID(r), patch)
	if err != nil {
		c.serverError(w, err)
		return
	}
	if item == nil {
		c.fail(w, http.StatusNotFound, "Item not found")
		return
	}
	c.ok(w, http.StatusOK, item,
		fmt.Sprintf("Item updated successfully in %s database", c.kind))
}

// Delete handles DELETE /api/items/{id}/delete/.
func (c *ItemController) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.store.Delete(r.Context(), pathID(r))
	if err != nil {
		c.serverError(w, err)
		return
	}
	if !deleted {
		c.fail(w, http.StatusNotFound, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: fmt.Sprintf("Item deleted successfully from %s database", c.kind),
	})
}

// Search handles GET /api/items/search/?q=term. The empty-term check
// lives here so blank queries never reach the storage layer.
func (c *ItemController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		c.fail(w, http.StatusBadRequest, "Search term is required")
		return
	}

	items, err := c.store.Search(r.Context(), term)
	if err != nil {
		c.serverError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.ok(w, http.StatusOK, items,
		fmt.Sprintf("Found %d items matching %q in %s database", len(items), term, c.kind))
}
