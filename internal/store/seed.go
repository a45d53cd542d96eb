package store

import "github.com/Stefanlynn/zinraicreativesuite/internal/models"

func ptr(s string) *string { return &s }

// SeedDemoContent loads a small sample catalog. The default deployment
// starts with an empty catalog; this is enabled through configuration
// for demos and local development.
func (s *Store) SeedDemoContent() {
	items := []models.InsertContentItem{
		{
			Title:        "Business Card Template",
			Description:  ptr("Professional business card design"),
			Category:     models.CategoryGeneral,
			Type:         models.TypeTemplate,
			FileURL:      "/assets/business-card-template.psd",
			ThumbnailURL: "/assets/thumbs/business-card-template.jpg",
			Featured:     true,
		},
		{
			Title:        "Instagram Reels Template",
			Description:  ptr("Motivational quote design"),
			Category:     models.CategorySocialMedia,
			Type:         models.TypeVideo,
			FileURL:      "/assets/sample-reel.mp4",
			ThumbnailURL: "/assets/thumbs/sample-reel.jpg",
			Featured:     true,
		},
		{
			Title:        "Facebook Post Graphic",
			Description:  ptr("Brand awareness design"),
			Category:     models.CategorySocialMedia,
			Type:         models.TypeGraphic,
			FileURL:      "/assets/facebook-post.jpg",
			ThumbnailURL: "/assets/thumbs/facebook-post.jpg",
		},
		{
			Title:        "Training Video Series",
			Description:  ptr("Leadership development modules"),
			Category:     models.CategoryFieldTools,
			Type:         models.TypeVideo,
			FileURL:      "/assets/training-video.mp4",
			ThumbnailURL: "/assets/thumbs/training-video.jpg",
			Featured:     true,
		},
		{
			Title:        "Event Flyer",
			Description:  ptr("Networking event design"),
			Category:     models.CategoryEvents,
			Type:         models.TypeGraphic,
			FileURL:      "/assets/event-flyer.jpg",
			ThumbnailURL: "/assets/thumbs/event-flyer.jpg",
		},
		{
			Title:        "Social Media Kit",
			Description:  ptr("Complete event package"),
			Category:     models.CategoryEvents,
			Type:         models.TypeBundle,
			FileURL:      "/assets/social-media-kit.zip",
			ThumbnailURL: "/assets/thumbs/social-media-kit.jpg",
		},
		{
			Title:        "T-Shirt Mockup",
			Description:  ptr("Brand merchandise design"),
			Category:     models.CategoryStore,
			Type:         models.TypeMockup,
			FileURL:      "/assets/tshirt-mockup.psd",
			ThumbnailURL: "/assets/thumbs/tshirt-mockup.jpg",
		},
	}

	for _, item := range items {
		s.CreateContentItem(item)
	}
}
