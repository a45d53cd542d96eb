// Package validate holds the request validators. Each entity kind has an
// explicit validator returning field-level errors; handlers report every
// failing field in one response.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Stefanlynn/zinraicreativesuite/internal/models"
)

// MinNoticeDays is the minimum lead time for a project request due date.
const MinNoticeDays = 21

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContentItem checks an admin-submitted content item.
func ContentItem(in models.InsertContentItem) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{"title", "Title is required"})
	}
	if in.Category == "" {
		errs = append(errs, FieldError{"category", "Category is required"})
	} else if !models.Categories[in.Category] {
		errs = append(errs, FieldError{"category", fmt.Sprintf("Unknown category %q", in.Category)})
	}
	if in.Type == "" {
		errs = append(errs, FieldError{"type", "Type is required"})
	} else if !models.ContentTypes[in.Type] {
		errs = append(errs, FieldError{"type", fmt.Sprintf("Unknown type %q", in.Type)})
	}
	if strings.TrimSpace(in.FileURL) == "" {
		errs = append(errs, FieldError{"fileUrl", "File URL is required"})
	}
	if strings.TrimSpace(in.ThumbnailURL) == "" {
		errs = append(errs, FieldError{"thumbnailUrl", "Thumbnail URL is required"})
	}
	return errs
}

// ContentItemUpdate checks the fields present in a partial update.
func ContentItemUpdate(in models.ContentItemUpdate) []FieldError {
	var errs []FieldError

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		errs = append(errs, FieldError{"title", "Title must not be empty"})
	}
	if in.Category != nil && !models.Categories[*in.Category] {
		errs = append(errs, FieldError{"category", fmt.Sprintf("Unknown category %q", *in.Category)})
	}
	if in.Type != nil && !models.ContentTypes[*in.Type] {
		errs = append(errs, FieldError{"type", fmt.Sprintf("Unknown type %q", *in.Type)})
	}
	if in.FileURL != nil && strings.TrimSpace(*in.FileURL) == "" {
		errs = append(errs, FieldError{"fileUrl", "File URL must not be empty"})
	}
	if in.ThumbnailURL != nil && strings.TrimSpace(*in.ThumbnailURL) == "" {
		errs = append(errs, FieldError{"thumbnailUrl", "Thumbnail URL must not be empty"})
	}
	return errs
}

// ProjectRequest checks a public project submission. The due date must be
// at least MinNoticeDays days out from the submission time.
func ProjectRequest(in models.InsertProjectRequest, now time.Time) []FieldError {
	var errs []FieldError

	if len(strings.TrimSpace(in.FullName)) < 2 {
		errs = append(errs, FieldError{"fullName", "Full name must be at least 2 characters"})
	}
	if !emailPattern.MatchString(in.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}
	if in.ProjectType == "" {
		errs = append(errs, FieldError{"projectType", "Please select a project type"})
	}
	if in.Timeline == "" {
		errs = append(errs, FieldError{"timeline", "Please select a timeline"})
	}
	if in.DueDate == "" {
		errs = append(errs, FieldError{"dueDate", "Due date is required"})
	} else if due, err := time.Parse("2006-01-02", in.DueDate); err != nil {
		errs = append(errs, FieldError{"dueDate", "Due date must be a valid date (YYYY-MM-DD)"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if due.Before(today.AddDate(0, 0, MinNoticeDays)) {
			errs = append(errs, FieldError{"dueDate", fmt.Sprintf("Due date must be at least %d days out", MinNoticeDays)})
		}
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		errs = append(errs, FieldError{"description", "Description must be at least 10 characters"})
	}
	if in.ContactMethod == "" {
		errs = append(errs, FieldError{"contactMethod", "Please select a contact method"})
	}
	return errs
}

// ProjectRequestUpdate checks the fields present in a partial update.
func ProjectRequestUpdate(in models.ProjectRequestUpdate) []FieldError {
	var errs []FieldError

	if in.Status != nil && !models.RequestStatuses[*in.Status] {
		errs = append(errs, FieldError{"status", fmt.Sprintf("Unknown status %q", *in.Status)})
	}
	if in.Email != nil && !emailPattern.MatchString(*in.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email address"})
	}
	return errs
}
