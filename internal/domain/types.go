package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Frequency represents how often a chart publishes a new ranking
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// IsValidFrequency checks if a frequency is valid
func IsValidFrequency(f Frequency) bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// Step returns the scheduling interval for a frequency.
// Monthly charts use calendar-month arithmetic, not a fixed duration; callers
// that walk ranking dates should use Previous/Next instead.
func (f Frequency) Step() time.Duration {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	case FrequencyMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Previous returns the ranking date one period before t
func (f Frequency) Previous(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, -1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, -7)
	case FrequencyMonthly:
		return t.AddDate(0, -1, 0)
	default:
		return t.AddDate(0, 0, -1)
	}
}

// Next returns the ranking date one period after t
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// PlatformCategory tags a platform with the kind of audience data it carries
type PlatformCategory string

const (
	PlatformCategoryStreaming PlatformCategory = "streaming"
	PlatformCategorySocial    PlatformCategory = "social"
	PlatformCategoryRadio     PlatformCategory = "radio"
)

// PlatformSpec describes a platform the pipeline fetches audience data for,
// including which audience series the provider exposes for it.
type PlatformSpec struct {
	Slug     string
	Name     string
	Category PlatformCategory
	// TrackAudience reports whether the provider exposes track-level
	// audience series for this platform
	TrackAudience bool
	// ArtistAudience reports whether the provider exposes artist-level
	// audience series for this platform
	ArtistAudience bool
}

// defaultPlatforms is the fixed platform set tracked by the product.
// Radio platforms have no per-entity audience series upstream; they exist
// only as chart hosts.
var defaultPlatforms = []PlatformSpec{
	{Slug: "spotify", Name: "Spotify", Category: PlatformCategoryStreaming, TrackAudience: true, ArtistAudience: true},
	{Slug: "apple-music", Name: "Apple Music", Category: PlatformCategoryStreaming, TrackAudience: true, ArtistAudience: false},
	{Slug: "youtube", Name: "YouTube", Category: PlatformCategorySocial, TrackAudience: true, ArtistAudience: true},
	{Slug: "instagram", Name: "Instagram", Category: PlatformCategorySocial, TrackAudience: false, ArtistAudience: true},
	{Slug: "tiktok", Name: "TikTok", Category: PlatformCategorySocial, TrackAudience: false, ArtistAudience: true},
	{Slug: "airplay", Name: "Airplay", Category: PlatformCategoryRadio, TrackAudience: false, ArtistAudience: false},
}

// DefaultPlatforms returns the fixed platform set tracked by the product
func DefaultPlatforms() []PlatformSpec {
	specs := make([]PlatformSpec, len(defaultPlatforms))
	copy(specs, defaultPlatforms)
	return specs
}

// LookupPlatform resolves a platform spec by slug
func LookupPlatform(slug string) (PlatformSpec, bool) {
	for _, spec := range defaultPlatforms {
		if spec.Slug == slug {
			return spec, true
		}
	}
	return PlatformSpec{}, false
}

// TrackAudiencePlatforms returns the platforms that carry track-level audience series
func TrackAudiencePlatforms() []PlatformSpec {
	var specs []PlatformSpec
	for _, spec := range defaultPlatforms {
		if spec.TrackAudience {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ArtistAudiencePlatforms returns the platforms that carry artist-level audience series
func ArtistAudiencePlatforms() []PlatformSpec {
	var specs []PlatformSpec
	for _, spec := range defaultPlatforms {
		if spec.ArtistAudience {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ValidProviderUUID checks that a provider-supplied entity identifier is a
// well-formed UUID. Rows with malformed identifiers are skipped during ingest.
func ValidProviderUUID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}

// Slugify normalizes a display name into a provider-style slug.
// Used only as a fallback when the provider omits the slug field.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
