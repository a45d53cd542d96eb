package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Stefanlynn/zinraicreativesuite/internal/models"
	"github.com/Stefanlynn/zinraicreativesuite/internal/store"
	"github.com/Stefanlynn/zinraicreativesuite/internal/validate"
)

type ContentHandler struct {
	store *store.Store
}

func NewContentHandler(store *store.Store) *ContentHandler {
	return &ContentHandler{store: store}
}

// List serves the catalog. Query parameters are applied in precedence
// order search > featured > category: the first one present wins and the
// rest are ignored even when also supplied.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var items []models.ContentItem
	if search := query.Get("search"); search != "" {
		items = h.store.SearchContentItems(search)
	} else if query.Get("featured") == "true" {
		items = h.store.FeaturedContentItems()
	} else {
		items = h.store.ContentItems(query.Get("category"))
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	item, ok := h.store.ContentItem(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.InsertContentItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.ContentItem(in); len(errs) > 0 {
		respondValidationErrors(w, "Invalid content data", errs)
		return
	}
	item := h.store.CreateContentItem(in)
	respondJSON(w, http.StatusCreated, item)
}

func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	var updates models.ContentItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.ContentItemUpdate(updates); len(errs) > 0 {
		respondValidationErrors(w, "Invalid content data", errs)
		return
	}
	item, ok := h.store.UpdateContentItem(id, updates)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	if !h.store.DeleteContentItem(id) {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Content item deleted successfully"})
}

type downloadResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

// Download records a download event and bumps the item's counter. Only
// metadata is returned; no file bytes are served here.
func (h *ContentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}
	item, ok := h.store.ContentItem(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Content item not found")
		return
	}

	h.store.CreateDownload(id, r.UserAgent(), clientIP(r))
	h.store.IncrementDownloadCount(id)

	respondJSON(w, http.StatusOK, downloadResponse{
		Message:  "Download recorded successfully",
		FileURL:  item.FileURL,
		FileName: fmt.Sprintf("%s.%s", item.Title, models.FileExtension(item.Type)),
	})
}

type downloadStat struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	DownloadCount int    `json:"downloadCount"`
	Category      string `json:"category"`
}

// DownloadStats reports per-item download counters for the dashboard.
func (h *ContentHandler) DownloadStats(w http.ResponseWriter, r *http.Request) {
	items := h.store.ContentItems("")
	stats := make([]downloadStat, 0, len(items))
	for _, item := range items {
		stats = append(stats, downloadStat{
			ID:            item.ID,
			Title:         item.Title,
			DownloadCount: item.DownloadCount,
			Category:      item.Category,
		})
	}
	respondJSON(w, http.StatusOK, stats)
}
