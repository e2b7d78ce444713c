// Package chartdata wraps the third-party chart/metadata/audience API.
package chartdata

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/ratelimit"
)

const PROVIDER_NAME = "chartdata"

// MaxAudienceSpanDays is the longest date range the provider accepts on a
// single audience call. Longer ranges must be batched by the caller.
const MaxAudienceSpanDays = 90

// DateLayout is the wire format of all provider dates
const DateLayout = "2006-01-02"

// TrackRef is the minimal track payload embedded in a ranking item
type TrackRef struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CreditName string `json:"creditName"`
	ImageURL   string `json:"imageUrl"`
}

// RankingItem is one ranked position in a ranking response
type RankingItem struct {
	Position          int      `json:"position"`
	OldPosition       *int     `json:"oldPosition"`
	PositionEvolution *int     `json:"positionEvolution"`
	PeakPosition      *int     `json:"peakPosition"`
	TimeOnChart       *int     `json:"timeOnChart"`
	Metric            *float64 `json:"metric"`
	EntryDate         string   `json:"entryDate"`
	Track             TrackRef `json:"track"`
}

// RankingResponse is the response of the ranking endpoint
type RankingResponse struct {
	Total     int           `json:"total"`
	Frequency string        `json:"frequency"`
	Items     []RankingItem `json:"items"`
}

// GenrePair names a root genre and an optional sub genre
type GenrePair struct {
	Root string `json:"root"`
	Sub  string `json:"sub"`
}

// ArtistRef is the minimal artist payload embedded in track metadata
type ArtistRef struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl"`
}

// TrackMetadata is the response of the track metadata endpoint
type TrackMetadata struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	CreditName  string      `json:"creditName"`
	ReleaseDate *string     `json:"releaseDate"`
	Duration    *int        `json:"duration"`
	ISRC        *string     `json:"isrc"`
	Label       *string     `json:"label"`
	Genres      []GenrePair `json:"genres"`
	Artists     []ArtistRef `json:"artists"`
}

// ArtistMetadata is the response of the artist metadata endpoint
type ArtistMetadata struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Biography   *string     `json:"biography"`
	CareerStage *string     `json:"careerStage"`
	CountryCode *string     `json:"countryCode"`
	Genres      []GenrePair `json:"genres"`
}

// AudiencePoint is one dated value of an audience series
type AudiencePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// EntityKind selects the audience endpoint
type EntityKind string

const (
	EntityKindTrack  EntityKind = "track"
	EntityKindArtist EntityKind = "artist"
)

// Client defines the interface for chart data provider operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/chartdata_client.go -package=mocks -mock_names=Client=MockChartDataClient
type Client interface {
	// FetchRanking fetches one chart snapshot for a ranking date
	FetchRanking(ctx context.Context, chartSlug string, date time.Time) (*RankingResponse, error)
	// FetchTrackMetadata fetches enriched metadata for a track
	FetchTrackMetadata(ctx context.Context, trackUUID string) (*TrackMetadata, error)
	// FetchArtistMetadata fetches enriched metadata for an artist
	FetchArtistMetadata(ctx context.Context, artistUUID string) (*ArtistMetadata, error)
	// FetchAudience fetches an audience series for an entity on one platform.
	// The span between start and end must not exceed MaxAudienceSpanDays.
	FetchAudience(ctx context.Context, kind EntityKind, entityUUID, platformSlug string, start, end time.Time) ([]AudiencePoint, error)
}

// ChartDataClient implements the provider client
type ChartDataClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	apiURL     string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new chart data provider client
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, apiURL, apiKey string, json adapter.JSON) Client {
	return &ChartDataClient{
		httpClient: httpClient,
		limiter:    limiter,
		apiURL:     apiURL,
		apiKey:     apiKey,
		json:       json,
	}
}

func (c *ChartDataClient) headers() map[string]string {
	return map[string]string{
		"X-API-KEY": c.apiKey,
	}
}

func (c *ChartDataClient) get(ctx context.Context, endpoint string, out interface{}) error {
	if err := c.limiter.Wait(ctx, PROVIDER_NAME); err != nil {
		return err
	}

	respBody, err := c.httpClient.GetBytes(ctx, endpoint, c.headers())
	if err != nil {
		return err
	}

	if err := c.json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderMalformed, err)
	}

	return nil
}

// FetchRanking fetches one chart snapshot for a ranking date
func (c *ChartDataClient) FetchRanking(ctx context.Context, chartSlug string, date time.Time) (*RankingResponse, error) {
	endpoint := fmt.Sprintf("%s/charts/%s/ranking/%s",
		c.apiURL,
		url.PathEscape(chartSlug),
		date.Format(DateLayout),
	)

	var response RankingResponse
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch ranking for chart %s: %w", chartSlug, err)
	}

	return &response, nil
}

// FetchTrackMetadata fetches enriched metadata for a track
func (c *ChartDataClient) FetchTrackMetadata(ctx context.Context, trackUUID string) (*TrackMetadata, error) {
	endpoint := fmt.Sprintf("%s/tracks/%s", c.apiURL, url.PathEscape(trackUUID))

	var metadata TrackMetadata
	if err := c.get(ctx, endpoint, &metadata); err != nil {
		return nil, fmt.Errorf("failed to fetch track metadata for %s: %w", trackUUID, err)
	}

	return &metadata, nil
}

// FetchArtistMetadata fetches enriched metadata for an artist
func (c *ChartDataClient) FetchArtistMetadata(ctx context.Context, artistUUID string) (*ArtistMetadata, error) {
	endpoint := fmt.Sprintf("%s/artists/%s", c.apiURL, url.PathEscape(artistUUID))

	var metadata ArtistMetadata
	if err := c.get(ctx, endpoint, &metadata); err != nil {
		return nil, fmt.Errorf("failed to fetch artist metadata for %s: %w", artistUUID, err)
	}

	return &metadata, nil
}

// FetchAudience fetches an audience series for an entity on one platform
func (c *ChartDataClient) FetchAudience(ctx context.Context, kind EntityKind, entityUUID, platformSlug string, start, end time.Time) ([]AudiencePoint, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("audience range end %s before start %s", end.Format(DateLayout), start.Format(DateLayout))
	}
	if int(end.Sub(start).Hours()/24) > MaxAudienceSpanDays {
		return nil, fmt.Errorf("audience range exceeds %d days", MaxAudienceSpanDays)
	}

	endpoint := fmt.Sprintf("%s/%ss/%s/audience?platform=%s&start=%s&end=%s",
		c.apiURL,
		kind,
		url.PathEscape(entityUUID),
		url.QueryEscape(platformSlug),
		start.Format(DateLayout),
		end.Format(DateLayout),
	)

	var points []AudiencePoint
	if err := c.get(ctx, endpoint, &points); err != nil {
		return nil, fmt.Errorf("failed to fetch %s audience for %s on %s: %w", kind, entityUUID, platformSlug, err)
	}

	return points, nil
}
