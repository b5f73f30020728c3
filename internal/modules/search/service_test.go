package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillsconnect/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	records []domain.Artisan
}

func (s *stubSource) List(ctx context.Context) ([]domain.Artisan, error) {
	out := make([]domain.Artisan, len(s.records))
	copy(out, s.records)
	return out, nil
}

type stubLogWriter struct {
	entries chan *domain.SearchRequestLog
}

func newStubLogWriter() *stubLogWriter {
	return &stubLogWriter{entries: make(chan *domain.SearchRequestLog, 8)}
}

func (w *stubLogWriter) Create(ctx context.Context, entry *domain.SearchRequestLog) error {
	w.entries <- entry
	return nil
}

func artisan(id int64, rating string, reviews int, verified bool, location string, services ...string) domain.Artisan {
	return domain.Artisan{
		ID:          id,
		Rating:      rating,
		ReviewCount: reviews,
		Verified:    verified,
		Location:    location,
		Services:    services,
	}
}

func johannesburgDirectory() []domain.Artisan {
	return []domain.Artisan{
		artisan(1, "4.9", 30, true, "Johannesburg, Gauteng", "builders"),
		artisan(2, "4.5", 50, true, "Johannesburg, Gauteng", "builders"),
		artisan(3, "4.8", 12, true, "Johannesburg, Gauteng", "builders"),
		artisan(4, "5.00", 99, false, "Johannesburg, Gauteng", "builders"),
	}
}

func TestResultLimit(t *testing.T) {
	assert.Equal(t, 3, ResultLimit("basic"))
	assert.Equal(t, 5, ResultLimit("premium"))
	assert.Equal(t, 10, ResultLimit("enterprise"))
	assert.Equal(t, 3, ResultLimit(""))
	assert.Equal(t, 3, ResultLimit("platinum"))
	assert.Equal(t, 5, ResultLimit("  Premium "))
}

func TestSearch_OrdersByRatingThenReviews_ExcludesUnverified(t *testing.T) {
	svc := NewService(&stubSource{records: johannesburgDirectory()}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{
		Service:  "builders",
		Location: "Johannesburg",
		Tier:     "basic",
	})
	require.NoError(t, err)

	require.Equal(t, 3, result.Count)
	assert.Equal(t, []int64{1, 3, 2}, ids(result.Artisans))
	for _, a := range result.Artisans {
		assert.True(t, a.Verified)
	}
}

func TestSearch_TierCapsNeverExceeded(t *testing.T) {
	var records []domain.Artisan
	for i := int64(1); i <= 20; i++ {
		records = append(records, artisan(i, "4.0", int(i), true, "Durban, KwaZulu-Natal", "plumbers"))
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	for _, tier := range []string{"basic", "premium", "enterprise", "bogus"} {
		result, err := svc.Search(context.Background(), Query{Service: "plumbers", Location: "Durban", Tier: tier})
		require.NoError(t, err)
		assert.LessOrEqual(t, result.Count, ResultLimit(tier), "tier %q", tier)
		assert.Equal(t, ResultLimit(tier), result.Limit)
	}
}

func TestSearch_CountBelowLimitIsNotAnError(t *testing.T) {
	records := []domain.Artisan{
		artisan(1, "4.2", 7, true, "Durban, KwaZulu-Natal", "electricians"),
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{Service: "electricians", Location: "Durban", Tier: "premium"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 5, result.Limit)
}

func TestSearch_LocationAlias(t *testing.T) {
	svc := NewService(&stubSource{records: johannesburgDirectory()}, newStubLogWriter())

	byName, err := svc.Search(context.Background(), Query{Service: "builders", Location: "Johannesburg", Tier: "basic"})
	require.NoError(t, err)

	for _, alias := range []string{"JHB", "joburg"} {
		byAlias, err := svc.Search(context.Background(), Query{Service: "builders", Location: alias, Tier: "basic"})
		require.NoError(t, err)
		assert.Equal(t, ids(byName.Artisans), ids(byAlias.Artisans), "alias %q", alias)
	}
}

func TestSearch_EmptyServiceSkipsServiceFilter(t *testing.T) {
	records := []domain.Artisan{
		artisan(1, "4.6", 10, true, "Cape Town, Western Cape", "painters"),
		artisan(2, "4.1", 3, true, "Cape Town, Western Cape", "tilers"),
		artisan(3, "3.9", 2, true, "Cape Town, Western Cape", "carpenters"),
		artisan(4, "4.8", 20, true, "Cape Town, Western Cape", "plumbers"),
		artisan(5, "4.0", 1, true, "Pretoria, Gauteng", "plumbers"),
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{Service: "", Location: "Cape Town", Tier: "basic"})
	require.NoError(t, err)

	// All four Cape Town records are eligible, capped at 3
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, []int64{4, 1, 2}, ids(result.Artisans))
}

func TestSearch_ServiceAllSentinel(t *testing.T) {
	records := []domain.Artisan{
		artisan(1, "4.6", 10, true, "Cape Town, Western Cape", "painters"),
		artisan(2, "4.1", 3, true, "Cape Town, Western Cape", "tilers"),
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{Service: "all", Location: "Cape Town", Tier: "basic"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestSearch_ServiceSubstringMatch(t *testing.T) {
	records := []domain.Artisan{
		artisan(1, "4.6", 10, true, "Pretoria, Gauteng", "builders"),
		artisan(2, "4.1", 3, true, "Pretoria, Gauteng", "plumbers"),
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{Service: "build", Location: "Pretoria", Tier: "basic"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, int64(1), result.Artisans[0].ID)
}

func TestSearch_EmptyLocationSkipsLocationFilter(t *testing.T) {
	records := []domain.Artisan{
		artisan(1, "4.6", 10, true, "Cape Town, Western Cape", "plumbers"),
		artisan(2, "4.1", 3, true, "Pretoria, Gauteng", "plumbers"),
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{Service: "plumbers", Location: "", Tier: "basic"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestSearch_Idempotent(t *testing.T) {
	svc := NewService(&stubSource{records: johannesburgDirectory()}, newStubLogWriter())
	q := Query{Service: "builders", Location: "Johannesburg, Gauteng", Tier: "enterprise"}

	first, err := svc.Search(context.Background(), q)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, ids(first.Artisans), ids(second.Artisans))
}

func TestSearch_UnparsableRatingRanksAsZero(t *testing.T) {
	records := []domain.Artisan{
		artisan(1, "not-a-number", 99, true, "Durban", "plumbers"),
		artisan(2, "0.10", 1, true, "Durban", "plumbers"),
	}
	svc := NewService(&stubSource{records: records}, newStubLogWriter())

	result, err := svc.Search(context.Background(), Query{Service: "plumbers", Location: "Durban", Tier: "basic"})
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, int64(2), result.Artisans[0].ID)
}

func TestSearch_WritesAuditLogEntry(t *testing.T) {
	logWriter := newStubLogWriter()
	svc := NewService(&stubSource{records: johannesburgDirectory()}, logWriter)

	_, err := svc.Search(context.Background(), Query{Service: "builders", Location: "JHB", Tier: "Premium"})
	require.NoError(t, err)

	select {
	case entry := <-logWriter.entries:
		assert.Equal(t, "builders", entry.Service)
		assert.Equal(t, "JHB", entry.Location)
		assert.Equal(t, "premium", entry.Tier)
	case <-time.After(2 * time.Second):
		t.Fatal("audit log entry was never written")
	}
}

type failingLogWriter struct{}

func (failingLogWriter) Create(ctx context.Context, entry *domain.SearchRequestLog) error {
	return assert.AnError
}

func TestSearch_LogFailureDoesNotFailSearch(t *testing.T) {
	svc := NewService(&stubSource{records: johannesburgDirectory()}, failingLogWriter{})

	result, err := svc.Search(context.Background(), Query{Service: "builders", Location: "Johannesburg", Tier: "basic"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
}

func TestHandler_MissingParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(&stubSource{records: johannesburgDirectory()}, newStubLogWriter())

	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	cases := []struct {
		name string
		url  string
		code int
	}{
		{"no params", "/api/v1/search", http.StatusBadRequest},
		{"service only", "/api/v1/search?service=builders", http.StatusBadRequest},
		{"location only", "/api/v1/search?location=Durban", http.StatusBadRequest},
		{"empty values are present", "/api/v1/search?service=&location=", http.StatusOK},
		{"full query", "/api/v1/search?service=builders&location=JHB&tier=premium", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tc.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusBadRequest {
				assert.Contains(t, w.Body.String(), "MISSING_PARAMETER")
			}
		})
	}
}

func TestHandler_ResponseShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(&stubSource{records: johannesburgDirectory()}, newStubLogWriter())

	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search?service=builders&location=Johannesburg&tier=basic", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Artisans []domain.Artisan `json:"artisans"`
			Tier     string           `json:"tier"`
			Limit    int              `json:"limit"`
			Count    int              `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "basic", body.Data.Tier)
	assert.Equal(t, 3, body.Data.Limit)
	assert.Equal(t, 3, body.Data.Count)
	assert.Len(t, body.Data.Artisans, 3)
}

func ids(artisans []domain.Artisan) []int64 {
	out := make([]int64, len(artisans))
	for i, a := range artisans {
		out[i] = a.ID
	}
	return out
}
