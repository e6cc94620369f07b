// Package service runs projections on behalf of the transport layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"lifeplan-engine/internal/cache"
	"lifeplan-engine/internal/engine"
	"lifeplan-engine/internal/insights"
	"lifeplan-engine/internal/metrics"
	"lifeplan-engine/internal/model"
)

var ErrInvalidRequest = errors.New("invalid projection request")

// ValidationError carries the messages that made a request unprojectable.
type ValidationError struct {
	Messages []model.CalculationMessage
}

func (e *ValidationError) Error() string {
	for _, m := range e.Messages {
		if m.Level == model.LevelCritical {
			return fmt.Sprintf("%s: %s", ErrInvalidRequest, m.Message)
		}
	}
	return ErrInvalidRequest.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

type ProjectionService struct {
	cache   cache.Cache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewProjectionService wires a service; c and m may be nil to disable caching
// and metrics.
func NewProjectionService(c cache.Cache, m *metrics.Metrics) *ProjectionService {
	return &ProjectionService{cache: c, metrics: m, now: time.Now}
}

// cachedProjection is what the cache stores; metadata is rebuilt per request.
type cachedProjection struct {
	Projection model.ProjectionResult `json:"projection"`
	Insights   []model.Insight        `json:"insights"`
}

// Project validates the request, then returns the projection and its
// insights, from cache when an identical input was seen before.
func (s *ProjectionService) Project(ctx context.Context, req *model.ProjectionRequest) (*model.ProjectionResponse, error) {
	start := s.now()

	in, msgs := BuildInput(req, start)
	if hasCritical(msgs) {
		s.metrics.ObserveProjection(model.OutcomeFailure, s.now().Sub(start))
		return nil, &ValidationError{Messages: msgs}
	}

	key, err := cacheKey(in)
	if err != nil {
		return nil, fmt.Errorf("hashing projection input: %w", err)
	}

	out, cached := s.lookup(ctx, key)
	if !cached {
		result := engine.Project(in)
		if i, ok := firstNonFinite(result.Monthly); ok {
			s.metrics.ObserveProjection(model.OutcomeFailure, s.now().Sub(start))
			text := fmt.Sprintf("net worth is not a finite number from %s; check rates and amounts",
				result.Monthly[i].Date.Format("2006-01"))
			msgs = append(msgs, model.CalculationMessage{
				ID:      len(msgs),
				Level:   model.LevelCritical,
				Code:    "NON_FINITE_PROJECTION",
				Message: text,
			})
			return nil, &ValidationError{Messages: msgs}
		}
		out = cachedProjection{
			Projection: result,
			Insights:   insights.Generate(result, in.Profile, in.Settings),
		}
		s.store(ctx, key, out)
	}

	horizon := engine.HorizonMonths(in.Now, in.Profile)
	s.metrics.ObserveHorizon(horizon)

	elapsed := s.now().Sub(start)
	s.metrics.ObserveProjection(model.OutcomeSuccess, elapsed)

	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}

	return &model.ProjectionResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			ScenarioID:             req.ScenarioID,
			CalculationStartedAt:   start.UTC().Format(time.RFC3339),
			CalculationCompletedAt: start.Add(elapsed).UTC().Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     model.OutcomeSuccess,
			HorizonMonths:          horizon,
			Cached:                 cached,
		},
		Messages:   msgs,
		Projection: out.Projection,
		Insights:   out.Insights,
	}, nil
}

func (s *ProjectionService) lookup(ctx context.Context, key string) (cachedProjection, bool) {
	var out cachedProjection
	if s.cache == nil {
		return out, false
	}
	b, ok := s.cache.Get(ctx, key)
	if !ok {
		s.metrics.ObserveCache(metrics.CacheMiss)
		return out, false
	}
	if err := json.Unmarshal(b, &out); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		s.metrics.ObserveCache(metrics.CacheMiss)
		return cachedProjection{}, false
	}
	s.metrics.ObserveCache(metrics.CacheHit)
	return out, true
}

func (s *ProjectionService) store(ctx context.Context, key string, out cachedProjection) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(out)
	if err != nil {
		log.Printf("Warning: failed to encode projection for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, b); err != nil {
		log.Printf("Warning: failed to cache projection: %v", err)
	}
}

// cacheKey hashes the canonical JSON encoding of the resolved input.
func cacheKey(in model.ProjectionInput) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// firstNonFinite returns the index of the first month whose figures
// overflowed or went NaN.
func firstNonFinite(monthly []model.MonthlyPoint) (int, bool) {
	for i, p := range monthly {
		for _, v := range [...]float64{p.NetWorth, p.RealNetWorth, p.Income, p.Expenses, p.Contribution, p.Returns} {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return i, true
			}
		}
	}
	return 0, false
}

func hasCritical(msgs []model.CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}
