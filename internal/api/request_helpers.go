package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/recruit-api/internal/api/shared"
	"github.com/phrazzld/recruit-api/internal/domain"
)

// getPathIndex extracts a 1-based list index from the URL path parameters.
// Returns ErrInvalidIndex if the parameter is missing or not a positive integer.
func getPathIndex(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	index, err := strconv.Atoi(raw)
	if err != nil || index < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, raw)
	}
	return index, nil
}

// pick returns the element at 1-based index of the displayed list.
func pick[T any](displayed []T, index int) (T, error) {
	if index < 1 || index > len(displayed) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(displayed))
	}
	return displayed[index-1], nil
}

// decodeAndValidate decodes the body into req and validates it.
func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequestBody, err)
	}
	return shared.ValidateRequest(req)
}

// parseDateTime parses an interview start in DateTimeLayout, in loc.
func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDateTime, raw)
	}
	return t, nil
}

// parseTags converts raw labels to domain tags.
func parseTags(raw []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(raw))
	for _, label := range raw {
		tag, err := domain.NewTag(label)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
