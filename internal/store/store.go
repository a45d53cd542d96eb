package store

import (
	"strings"
	"sync"
	"time"

	"github.com/Stefanlynn/zinraicreativesuite/internal/models"
)

// Store holds all entities in memory for the lifetime of the process.
// Ids are per-collection monotonic counters starting at 1 and are never
// reused, even after deletion. Listings come back in insertion order.
//
// Store operations never fail; absence is reported with a false second
// return value and callers turn that into a not-found response.
type Store struct {
	mu sync.RWMutex

	users     map[int]models.User
	content   map[int]models.ContentItem
	requests  map[int]models.ProjectRequest
	downloads map[int]models.Download

	userOrder    []int
	contentOrder []int
	requestOrder []int

	nextUserID     int
	nextContentID  int
	nextRequestID  int
	nextDownloadID int
}

func NewStore() *Store {
	return &Store{
		users:          make(map[int]models.User),
		content:        make(map[int]models.ContentItem),
		requests:       make(map[int]models.ProjectRequest),
		downloads:      make(map[int]models.Download),
		nextUserID:     1,
		nextContentID:  1,
		nextRequestID:  1,
		nextDownloadID: 1,
	}
}

// SeedAdmin creates the initial admin account. The password is kept in
// plaintext; there is exactly one admin and the store never persists.
func (s *Store) SeedAdmin(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: username,
		Password: password,
		IsAdmin:  true,
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user
}

// CreateUser stores a regular (non-admin) user. Username uniqueness is
// not checked; lookups scan in insertion order and the first match wins.
func (s *Store) CreateUser(username, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: username,
		Password: password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user
}

func (s *Store) User(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

func (s *Store) UserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return s.users[id], true
		}
	}
	return models.User{}, false
}

// Authenticate compares the plaintext password of the first user with a
// matching username. No rate limiting, no hashing.
func (s *Store) Authenticate(username, password string) (models.User, bool) {
	user, ok := s.UserByUsername(username)
	if !ok || user.Password != password {
		return models.User{}, false
	}
	return user, true
}

// ContentItems lists the catalog, optionally filtered by exact category.
func (s *Store) ContentItems(category string) []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.ContentItem, 0, len(s.contentOrder))
	for _, id := range s.contentOrder {
		item := s.content[id]
		if category != "" && item.Category != category {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (s *Store) ContentItem(id int) (models.ContentItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.content[id]
	return item, ok
}

func (s *Store) CreateContentItem(in models.InsertContentItem) models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.ContentItem{
		ID:           s.nextContentID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Type:         in.Type,
		FileURL:      in.FileURL,
		ThumbnailURL: in.ThumbnailURL,
		Featured:     in.Featured,
		CreatedAt:    time.Now(),
	}
	s.nextContentID++
	s.content[item.ID] = item
	s.contentOrder = append(s.contentOrder, item.ID)
	return item
}

// UpdateContentItem merges non-nil fields over the stored item. The
// download count is only mutated by the download-tracking path, never
// through updates.
func (s *Store) UpdateContentItem(id int, updates models.ContentItemUpdate) (models.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.content[id]
	if !ok {
		return models.ContentItem{}, false
	}
	if updates.Title != nil {
		item.Title = *updates.Title
	}
	if updates.Description != nil {
		item.Description = updates.Description
	}
	if updates.Category != nil {
		item.Category = *updates.Category
	}
	if updates.Type != nil {
		item.Type = *updates.Type
	}
	if updates.FileURL != nil {
		item.FileURL = *updates.FileURL
	}
	if updates.ThumbnailURL != nil {
		item.ThumbnailURL = *updates.ThumbnailURL
	}
	if updates.Featured != nil {
		item.Featured = *updates.Featured
	}
	s.content[id] = item
	return item, true
}

func (s *Store) DeleteContentItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.content[id]; !ok {
		return false
	}
	delete(s.content, id)
	for i, existing := range s.contentOrder {
		if existing == id {
			s.contentOrder = append(s.contentOrder[:i], s.contentOrder[i+1:]...)
			break
		}
	}
	return true
}

// SearchContentItems does a case-insensitive substring match against
// title, description, category and type. An empty query matches all.
func (s *Store) SearchContentItems(query string) []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	items := make([]models.ContentItem, 0)
	for _, id := range s.contentOrder {
		item := s.content[id]
		if strings.Contains(strings.ToLower(item.Title), q) ||
			(item.Description != nil && strings.Contains(strings.ToLower(*item.Description), q)) ||
			strings.Contains(strings.ToLower(item.Category), q) ||
			strings.Contains(strings.ToLower(item.Type), q) {
			items = append(items, item)
		}
	}
	return items
}

func (s *Store) FeaturedContentItems() []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.ContentItem, 0)
	for _, id := range s.contentOrder {
		if s.content[id].Featured {
			items = append(items, s.content[id])
		}
	}
	return items
}

// IncrementDownloadCount adds one to an item's download count. The
// read-modify-write runs under the write lock so concurrent downloads of
// the same item cannot lose increments. Unknown ids are ignored.
func (s *Store) IncrementDownloadCount(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.content[id]
	if !ok {
		return
	}
	item.DownloadCount++
	s.content[id] = item
}

func (s *Store) ProjectRequests() []models.ProjectRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.ProjectRequest, 0, len(s.requestOrder))
	for _, id := range s.requestOrder {
		requests = append(requests, s.requests[id])
	}
	return requests
}

func (s *Store) ProjectRequest(id int) (models.ProjectRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[id]
	return request, ok
}

func (s *Store) CreateProjectRequest(in models.InsertProjectRequest) models.ProjectRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := models.ProjectRequest{
		ID:             s.nextRequestID,
		FullName:       in.FullName,
		Email:          in.Email,
		ProjectType:    in.ProjectType,
		Timeline:       in.Timeline,
		DueDate:        in.DueDate,
		Description:    in.Description,
		ContactMethod:  in.ContactMethod,
		ReferenceFiles: in.ReferenceFiles,
		Status:         models.StatusPending,
		CreatedAt:      time.Now(),
	}
	s.nextRequestID++
	s.requests[request.ID] = request
	s.requestOrder = append(s.requestOrder, request.ID)
	return request
}

func (s *Store) UpdateProjectRequest(id int, updates models.ProjectRequestUpdate) (models.ProjectRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok {
		return models.ProjectRequest{}, false
	}
	if updates.FullName != nil {
		request.FullName = *updates.FullName
	}
	if updates.Email != nil {
		request.Email = *updates.Email
	}
	if updates.ProjectType != nil {
		request.ProjectType = *updates.ProjectType
	}
	if updates.Timeline != nil {
		request.Timeline = *updates.Timeline
	}
	if updates.DueDate != nil {
		request.DueDate = *updates.DueDate
	}
	if updates.Description != nil {
		request.Description = *updates.Description
	}
	if updates.ContactMethod != nil {
		request.ContactMethod = *updates.ContactMethod
	}
	if updates.ReferenceFiles != nil {
		request.ReferenceFiles = *updates.ReferenceFiles
	}
	if updates.Status != nil {
		request.Status = *updates.Status
	}
	s.requests[id] = request
	return request, true
}

// CreateDownload appends a download log record. Empty user-agent and IP
// are stored as null, matching the best-effort capture at the edge.
func (s *Store) CreateDownload(contentItemID int, userAgent, ipAddress string) models.Download {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.Download{
		ID:            s.nextDownloadID,
		ContentItemID: &contentItemID,
		DownloadedAt:  time.Now(),
	}
	if userAgent != "" {
		record.UserAgent = &userAgent
	}
	if ipAddress != "" {
		record.IPAddress = &ipAddress
	}
	s.nextDownloadID++
	s.downloads[record.ID] = record
	return record
}

// DownloadStats counts download records for a content item. This is
// independent of the item's downloadCount field.
func (s *Store) DownloadStats(contentItemID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, record := range s.downloads {
		if record.ContentItemID != nil && *record.ContentItemID == contentItemID {
			count++
		}
	}
	return count
}

// DownloadCount reports how many download records exist in total.
func (s *Store) DownloadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.downloads)
}
