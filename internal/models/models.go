package models

import "time"

// Content categories shown as catalog tabs.
const (
	CategorySocialMedia = "social-media"
	CategoryFieldTools  = "field-tools"
	CategoryEvents      = "events"
	CategoryStore       = "store"
	CategoryGeneral     = "general"
)

// Content types.
const (
	TypeVideo    = "video"
	TypeGraphic  = "graphic"
	TypeTemplate = "template"
	TypeBundle   = "bundle"
	TypeMockup   = "mockup"
)

var Categories = map[string]bool{
	CategorySocialMedia: true,
	CategoryFieldTools:  true,
	CategoryEvents:      true,
	CategoryStore:       true,
	CategoryGeneral:     true,
}

var ContentTypes = map[string]bool{
	TypeVideo:    true,
	TypeGraphic:  true,
	TypeTemplate: true,
	TypeBundle:   true,
	TypeMockup:   true,
}

// fileExtensions maps a content type to the extension used for the
// suggested download filename. Types without an entry fall back to zip.
var fileExtensions = map[string]string{
	TypeVideo:   "mp4",
	TypeGraphic: "jpg",
}

// FileExtension returns the download extension for a content type.
func FileExtension(contentType string) string {
	if ext, ok := fileExtensions[contentType]; ok {
		return ext
	}
	return "zip"
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Password is stored in plaintext. The admin account is the only user
	// in practice and the store is memory-resident.
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type ContentItem struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	FileURL       string    `json:"fileUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	DownloadCount int       `json:"downloadCount"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InsertContentItem is the caller-supplied subset of a content item.
// ID, download count and creation time are always server-assigned.
type InsertContentItem struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Category     string  `json:"category"`
	Type         string  `json:"type"`
	FileURL      string  `json:"fileUrl"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Featured     bool    `json:"featured"`
}

// ContentItemUpdate carries a partial update. Nil fields are left alone.
type ContentItemUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Type         *string `json:"type"`
	FileURL      *string `json:"fileUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Featured     *bool   `json:"featured"`
}

// Project request statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var RequestStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

type ProjectRequest struct {
	ID             int       `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	ProjectType    string    `json:"projectType"`
	Timeline       string    `json:"timeline"`
	DueDate        string    `json:"dueDate"`
	Description    string    `json:"description"`
	ContactMethod  string    `json:"contactMethod"`
	ReferenceFiles []string  `json:"referenceFiles"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type InsertProjectRequest struct {
	FullName       string   `json:"fullName"`
	Email          string   `json:"email"`
	ProjectType    string   `json:"projectType"`
	Timeline       string   `json:"timeline"`
	DueDate        string   `json:"dueDate"`
	Description    string   `json:"description"`
	ContactMethod  string   `json:"contactMethod"`
	ReferenceFiles []string `json:"referenceFiles"`
}

// ProjectRequestUpdate carries a partial update, typically to status.
type ProjectRequestUpdate struct {
	FullName       *string   `json:"fullName"`
	Email          *string   `json:"email"`
	ProjectType    *string   `json:"projectType"`
	Timeline       *string   `json:"timeline"`
	DueDate        *string   `json:"dueDate"`
	Description    *string   `json:"description"`
	ContactMethod  *string   `json:"contactMethod"`
	ReferenceFiles *[]string `json:"referenceFiles"`
	Status         *string   `json:"status"`
}

// Download is an append-only log record, one per tracked download.
type Download struct {
	ID            int       `json:"id"`
	ContentItemID *int      `json:"contentItemId"`
	UserAgent     *string   `json:"userAgent"`
	IPAddress     *string   `json:"ipAddress"`
	DownloadedAt  time.Time `json:"downloadedAt"`
}
