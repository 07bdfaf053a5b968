package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/celesia/flight-insights/internal/domain"
)

const (
	searchKeyPrefix = "flight:search:"
	trendsKeyPrefix = "flight:trends:"

	// DefaultTTL applies when NewCachedService is given a non-positive TTL.
	DefaultTTL = 5 * time.Minute

	// FetchTimeout bounds a shared upstream call. It no longer follows any
	// single caller's deadline once several callers wait on it.
	FetchTimeout = 30 * time.Second
)

// CachedService decorates a FlightSearchService with a response cache.
// Concurrent identical calls share one upstream request; a caller that gives
// up stops waiting without failing the others. Only successful responses are
// cached, and store failures never fail a call.
type CachedService struct {
	next  domain.FlightSearchService
	store Store
	ttl   time.Duration
	group singleflight.Group
	log   zerolog.Logger
}

// NewCachedService wraps next with store.
func NewCachedService(next domain.FlightSearchService, store Store, ttl time.Duration, log zerolog.Logger) *CachedService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedService{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   log.With().Str("component", "cache").Logger(),
	}
}

// SearchFlights implements domain.FlightSearchService.
func (s *CachedService) SearchFlights(ctx context.Context, req domain.SearchRequest) ([]domain.FlightOffer, error) {
	return cached(ctx, s, searchKey(req), func(ctx context.Context) ([]domain.FlightOffer, error) {
		return s.next.SearchFlights(ctx, req)
	})
}

// GetPriceTrends implements domain.FlightSearchService.
func (s *CachedService) GetPriceTrends(ctx context.Context, origin, destination string, daysBack int) ([]domain.PricePoint, error) {
	key := fmt.Sprintf("%s%s:%s:%d", trendsKeyPrefix, origin, destination, daysBack)
	return cached(ctx, s, key, func(ctx context.Context) ([]domain.PricePoint, error) {
		return s.next.GetPriceTrends(ctx, origin, destination, daysBack)
	})
}

func cached[T any](ctx context.Context, s *CachedService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if data, ok, err := s.store.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	} else if ok {
		var out []T
		if err := json.Unmarshal(data, &out); err == nil {
			s.log.Debug().Str("key", key).Msg("cache hit")
			return out, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	}

	ch := s.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FetchTimeout)
		defer cancel()

		res, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		s.save(fetchCtx, key, res)
		return res, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		if r.Shared {
			s.log.Debug().Str("key", key).Msg("shared in-flight upstream call")
		}
		return r.Val.([]T), nil
	}
}

func (s *CachedService) save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := s.store.Set(context.WithoutCancel(ctx), key, data, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// searchKey hashes every field of the canonical request, including the
// optional return date.
func searchKey(req domain.SearchRequest) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		Passengers    int
	}{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
	}
	if req.ReturnDate != nil {
		keyData.ReturnDate = *req.ReturnDate
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return searchKeyPrefix + hex.EncodeToString(hash[:])
}

var _ domain.FlightSearchService = (*CachedService)(nil)
