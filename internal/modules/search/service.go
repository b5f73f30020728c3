package search

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"skillsconnect/internal/domain"
)

// ServiceAll is the sentinel that disables service filtering.
const ServiceAll = "all"

// locationAliases maps common shorthand for South African cities to the
// canonical name used in artisan location strings.
var locationAliases = map[string]string{
	"joburg": "johannesburg",
	"jhb":    "johannesburg",
	"pta":    "pretoria",
	"cpt":    "cape town",
}

type Service struct {
	artisans ArtisanSource
	queryLog QueryLogWriter
}

func NewService(artisans ArtisanSource, queryLog QueryLogWriter) *Service {
	return &Service{artisans: artisans, queryLog: queryLog}
}

// ResultLimit maps a requested tier to a result-count cap. Total
// function: unknown tiers degrade to the most restrictive cap.
func ResultLimit(tier string) int {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "premium":
		return 5
	case "enterprise":
		return 10
	default:
		return 3
	}
}

// Search runs the filter/rank/truncate pipeline over the directory
// snapshot and records one audit log entry per call. Logging runs after
// the result is computed and its failure never reaches the caller.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	records, err := s.artisans.List(ctx)
	if err != nil {
		return nil, err
	}

	tier := strings.ToLower(strings.TrimSpace(q.Tier))
	limit := ResultLimit(tier)

	matched := filterRecords(records, q.Service, q.Location)
	rankRecords(matched)

	if len(matched) > limit {
		matched = matched[:limit]
	}

	s.logQuery(q.Service, q.Location, tier)

	return &Result{
		Artisans: matched,
		Tier:     tier,
		Limit:    limit,
		Count:    len(matched),
	}, nil
}

func (s *Service) logQuery(service, location, tier string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entry := &domain.SearchRequestLog{
			Service:  service,
			Location: location,
			Tier:     tier,
		}
		if err := s.queryLog.Create(ctx, entry); err != nil {
			log.Printf("search_log_write_failed service=%q location=%q tier=%q error=%v",
				service, location, tier, err)
		}
	}()
}

// filterRecords applies the verification gate, then service and
// location matching. Only verified records are ever eligible; the tier
// affects result count, not this gate.
func filterRecords(records []domain.Artisan, service, location string) []domain.Artisan {
	svc := strings.ToLower(strings.TrimSpace(service))
	terms := locationTerms(location)

	out := make([]domain.Artisan, 0, len(records))
	for _, rec := range records {
		if !rec.Verified {
			continue
		}
		if svc != "" && svc != ServiceAll && !matchesService(rec.Services, svc) {
			continue
		}
		if len(terms) > 0 && !matchesLocation(rec.Location, terms) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesService reports whether any service tag contains the query as
// a substring ("build" matches "builders").
func matchesService(services []string, query string) bool {
	for _, tag := range services {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// locationTerms splits a location query on commas and whitespace into
// lowercase terms. An empty result means the location filter is skipped.
func locationTerms(location string) []string {
	fields := strings.FieldsFunc(strings.ToLower(location), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}

// matchesLocation keeps a record when its location contains any query
// term, or a term is a known alias for a city named in the location.
// Loose recall-favoring match; there is no geocoding anywhere.
func matchesLocation(location string, terms []string) bool {
	loc := strings.ToLower(location)
	for _, term := range terms {
		if strings.Contains(loc, term) {
			return true
		}
		if canonical, ok := locationAliases[term]; ok && strings.Contains(loc, canonical) {
			return true
		}
	}
	return false
}

// rankRecords orders by rating descending, then review count
// descending. Stable so full ties keep their original relative order.
func rankRecords(records []domain.Artisan) {
	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := parseRating(records[i].Rating), parseRating(records[j].Rating)
		if ri != rj {
			return ri > rj
		}
		return records[i].ReviewCount > records[j].ReviewCount
	})
}

// parseRating converts the stored decimal string; unparsable or missing
// ratings rank as zero.
func parseRating(rating string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
	if err != nil {
		return 0
	}
	return v
}
