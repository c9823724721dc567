package location

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	locationerrors "github.com/JSON-FX/lgu-sso/internal/location/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// cacheTTL matches how often PSGC actually changes, which is almost never.
const cacheTTL = 24 * time.Hour

const (
	LevelRegions   = "regions"
	LevelProvinces = "provinces"
	LevelCities    = "cities-municipalities"
	LevelBarangays = "barangays"
)

func validLevel(level string) bool {
	switch level {
	case LevelRegions, LevelProvinces, LevelCities, LevelBarangays:
		return true
	}
	return false
}

//go:generate mockgen -source=location_service.go -destination=mock/location_service_mock.go -package=mock
type Service interface {
	Regions(ctx context.Context) ([]Place, error)
	Provinces(ctx context.Context, regionCode string) ([]Place, error)
	Cities(ctx context.Context, provinceCode string) ([]Place, error)
	Barangays(ctx context.Context, cityCode string) ([]Place, error)

	// ResolveName maps a PSGC code at the given level to its display name.
	// Backs the employee module's address validation.
	ResolveName(ctx context.Context, level, code string) (string, error)
}

type service struct {
	client Client
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(client Client, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{
		client: client,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *service) Regions(ctx context.Context) ([]Place, error) {
	return s.list(ctx, "regions")
}

func (s *service) Provinces(ctx context.Context, regionCode string) ([]Place, error) {
	return s.list(ctx, fmt.Sprintf("regions/%s/provinces", regionCode))
}

func (s *service) Cities(ctx context.Context, provinceCode string) ([]Place, error) {
	return s.list(ctx, fmt.Sprintf("provinces/%s/cities-municipalities", provinceCode))
}

func (s *service) Barangays(ctx context.Context, cityCode string) ([]Place, error) {
	return s.list(ctx, fmt.Sprintf("cities-municipalities/%s/barangays", cityCode))
}

func (s *service) ResolveName(ctx context.Context, level, code string) (string, error) {
	if !validLevel(level) || code == "" {
		return "", locationerrors.ErrLocationNotFound
	}

	path := fmt.Sprintf("%s/%s", level, code)
	cacheKey := "psgc:" + path

	if name, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil && name != "" {
		return name, nil
	}

	// Collapse concurrent misses for the same code into one upstream call.
	result, err, _ := s.group.Do(path, func() (interface{}, error) {
		place, err := s.client.Get(ctx, path)
		if err != nil {
			return nil, err
		}
		return place.Name, nil
	})
	if err != nil {
		return "", err
	}

	name := result.(string)
	if err := s.rdb.Set(ctx, cacheKey, name, cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache psgc name", zap.String("path", path), zap.Error(err))
	}
	return name, nil
}

func (s *service) list(ctx context.Context, path string) ([]Place, error) {
	cacheKey := "psgc:list:" + path

	if raw, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var places []Place
		if err := json.Unmarshal(raw, &places); err == nil {
			return places, nil
		}
	}

	result, err, _ := s.group.Do(path, func() (interface{}, error) {
		return s.client.List(ctx, path)
	})
	if err != nil {
		return nil, err
	}

	places := result.([]Place)
	if raw, err := json.Marshal(places); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
			s.logger.Warn("failed to cache psgc list", zap.String("path", path), zap.Error(err))
		}
	}
	return places, nil
}
