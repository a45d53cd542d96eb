package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stefanlynn/zinraicreativesuite/internal/models"
)

func strptr(s string) *string { return &s }

func insertItem(title, category, contentType string) models.InsertContentItem {
	return models.InsertContentItem{
		Title:        title,
		Category:     category,
		Type:         contentType,
		FileURL:      "/assets/" + title,
		ThumbnailURL: "/assets/thumbs/" + title,
	}
}

func TestCreateContentItem_AssignsMonotonicIDs(t *testing.T) {
	s := NewStore()

	first := s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))
	second := s.CreateContentItem(insertItem("b", models.CategoryEvents, models.TypeGraphic))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	require.True(t, s.DeleteContentItem(second.ID))

	// Deleted ids are never reused.
	third := s.CreateContentItem(insertItem("c", models.CategoryEvents, models.TypeGraphic))
	assert.Equal(t, 3, third.ID)
}

func TestCreateContentItem_ServerAssignedDefaults(t *testing.T) {
	s := NewStore()

	item := s.CreateContentItem(insertItem("Flyer", models.CategoryEvents, models.TypeGraphic))

	assert.Equal(t, 0, item.DownloadCount)
	assert.False(t, item.Featured)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Nil(t, item.Description)
}

func TestContentItems_FilterByCategoryInInsertionOrder(t *testing.T) {
	s := NewStore()
	s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))
	s.CreateContentItem(insertItem("b", models.CategoryStore, models.TypeMockup))
	s.CreateContentItem(insertItem("c", models.CategoryEvents, models.TypeVideo))

	events := s.ContentItems(models.CategoryEvents)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].Title)
	assert.Equal(t, "c", events[1].Title)

	all := s.ContentItems("")
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestSearchContentItems(t *testing.T) {
	s := NewStore()
	withDesc := insertItem("Event Flyer", models.CategoryEvents, models.TypeGraphic)
	withDesc.Description = strptr("Networking event design")
	s.CreateContentItem(withDesc)
	s.CreateContentItem(insertItem("Reel Template", models.CategorySocialMedia, models.TypeVideo))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"case-insensitive title", "FLYER", 1},
		{"description match", "networking", 1},
		{"category match", "social", 1},
		{"type match", "video", 1},
		{"no match", "mockup", 0},
		{"empty query matches all", "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, s.SearchContentItems(tt.query), tt.want)
		})
	}
}

func TestUpdateContentItem_PartialMerge(t *testing.T) {
	s := NewStore()
	created := s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))

	featured := true
	updated, ok := s.UpdateContentItem(created.ID, models.ContentItemUpdate{
		Title:    strptr("renamed"),
		Featured: &featured,
	})
	require.True(t, ok)
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, updated.Featured)
	// Untouched fields survive the merge.
	assert.Equal(t, models.CategoryEvents, updated.Category)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, ok = s.UpdateContentItem(999, models.ContentItemUpdate{Title: strptr("x")})
	assert.False(t, ok)
}

func TestDeleteContentItem(t *testing.T) {
	s := NewStore()
	item := s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))

	assert.True(t, s.DeleteContentItem(item.ID))
	assert.False(t, s.DeleteContentItem(item.ID))

	_, ok := s.ContentItem(item.ID)
	assert.False(t, ok)
	assert.Empty(t, s.ContentItems(""))
}

func TestFeaturedContentItems(t *testing.T) {
	s := NewStore()
	featured := insertItem("a", models.CategoryEvents, models.TypeGraphic)
	featured.Featured = true
	s.CreateContentItem(featured)
	s.CreateContentItem(insertItem("b", models.CategoryEvents, models.TypeGraphic))

	items := s.FeaturedContentItems()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Title)
}

func TestIncrementDownloadCount_Sequential(t *testing.T) {
	s := NewStore()
	item := s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))

	for i := 0; i < 3; i++ {
		s.IncrementDownloadCount(item.ID)
	}

	got, ok := s.ContentItem(item.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.DownloadCount)

	// Unknown id is a no-op.
	s.IncrementDownloadCount(999)
}

func TestIncrementDownloadCount_Concurrent(t *testing.T) {
	// The increment runs under the store's write lock, so unlike the
	// original's unguarded read-modify-write no updates are lost.
	s := NewStore()
	item := s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			s.IncrementDownloadCount(item.ID)
		}()
	}
	wg.Wait()

	got, _ := s.ContentItem(item.ID)
	assert.Equal(t, workers, got.DownloadCount)
}

func TestAuthenticate(t *testing.T) {
	s := NewStore()
	admin := s.SeedAdmin("admin", "secret")

	user, ok := s.Authenticate("admin", "secret")
	require.True(t, ok)
	assert.Equal(t, admin.ID, user.ID)
	assert.True(t, user.IsAdmin)

	_, ok = s.Authenticate("admin", "wrong")
	assert.False(t, ok)
	_, ok = s.Authenticate("nobody", "secret")
	assert.False(t, ok)
}

func TestUserByUsername_FirstMatchWins(t *testing.T) {
	// Uniqueness is not enforced on write; lookups scan in insertion
	// order and return the first match.
	s := NewStore()
	first := s.CreateUser("dup", "one")
	s.CreateUser("dup", "two")

	user, ok := s.UserByUsername("dup")
	require.True(t, ok)
	assert.Equal(t, first.ID, user.ID)
	assert.Equal(t, "one", user.Password)
}

func TestCreateUser_NeverAdmin(t *testing.T) {
	s := NewStore()
	user := s.CreateUser("visitor", "pw")
	assert.False(t, user.IsAdmin)
}

func TestCreateProjectRequest_Defaults(t *testing.T) {
	s := NewStore()
	request := s.CreateProjectRequest(models.InsertProjectRequest{
		FullName:      "Jane Roe",
		Email:         "jane@example.com",
		ProjectType:   "logo",
		Timeline:      "standard",
		DueDate:       "2026-12-01",
		Description:   "A new logo for the store front",
		ContactMethod: "email",
	})

	assert.Equal(t, 1, request.ID)
	assert.Equal(t, models.StatusPending, request.Status)
	assert.False(t, request.CreatedAt.IsZero())
	assert.Nil(t, request.ReferenceFiles)
}

func TestUpdateProjectRequest_Status(t *testing.T) {
	s := NewStore()
	request := s.CreateProjectRequest(models.InsertProjectRequest{FullName: "Jane Roe"})

	status := models.StatusInProgress
	updated, ok := s.UpdateProjectRequest(request.ID, models.ProjectRequestUpdate{Status: &status})
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "Jane Roe", updated.FullName)

	_, ok = s.UpdateProjectRequest(999, models.ProjectRequestUpdate{Status: &status})
	assert.False(t, ok)
}

func TestCreateDownload_AndStats(t *testing.T) {
	s := NewStore()
	item := s.CreateContentItem(insertItem("a", models.CategoryEvents, models.TypeGraphic))

	record := s.CreateDownload(item.ID, "agent/1.0", "10.0.0.1")
	require.NotNil(t, record.ContentItemID)
	assert.Equal(t, item.ID, *record.ContentItemID)
	require.NotNil(t, record.UserAgent)
	assert.Equal(t, "agent/1.0", *record.UserAgent)

	// Missing user-agent and IP are stored as null.
	bare := s.CreateDownload(item.ID, "", "")
	assert.Nil(t, bare.UserAgent)
	assert.Nil(t, bare.IPAddress)

	s.CreateDownload(999, "agent/1.0", "10.0.0.1")

	assert.Equal(t, 2, s.DownloadStats(item.ID))
	assert.Equal(t, 3, s.DownloadCount())
}

func TestSeedDemoContent(t *testing.T) {
	s := NewStore()
	s.SeedDemoContent()

	items := s.ContentItems("")
	assert.NotEmpty(t, items)
	assert.NotEmpty(t, s.FeaturedContentItems())
	for _, item := range items {
		assert.True(t, models.Categories[item.Category], "category %q", item.Category)
		assert.True(t, models.ContentTypes[item.Type], "type %q", item.Type)
	}
}
