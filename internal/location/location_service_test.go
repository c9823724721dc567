package location_test

import (
	"context"
	"testing"
	"time"

	"github.com/JSON-FX/lgu-sso/internal/location"
	locationerrors "github.com/JSON-FX/lgu-sso/internal/location/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeClient struct {
	ListFn func(ctx context.Context, path string) ([]location.Place, error)
	GetFn  func(ctx context.Context, path string) (location.Place, error)
}

func (f *fakeClient) List(ctx context.Context, path string) ([]location.Place, error) {
	return f.ListFn(ctx, path)
}

func (f *fakeClient) Get(ctx context.Context, path string) (location.Place, error) {
	return f.GetFn(ctx, path)
}

func TestLocationService_ResolveName(t *testing.T) {
	ctx := context.Background()

	t.Run("success - cache hit skips upstream", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		client := &fakeClient{
			GetFn: func(_ context.Context, _ string) (location.Place, error) {
				t.Fatal("upstream must not be called on a cache hit")
				return location.Place{}, nil
			},
		}
		svc := location.NewService(client, rdb, zap.NewNop())

		mock.ExpectGet("psgc:provinces/1043000000").SetVal("Misamis Oriental")

		name, err := svc.ResolveName(ctx, location.LevelProvinces, "1043000000")

		assert.NoError(t, err)
		assert.Equal(t, "Misamis Oriental", name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - cache miss fetches and caches", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		client := &fakeClient{
			GetFn: func(_ context.Context, path string) (location.Place, error) {
				assert.Equal(t, "provinces/1043000000", path)
				return location.Place{Code: "1043000000", Name: "Misamis Oriental"}, nil
			},
		}
		svc := location.NewService(client, rdb, zap.NewNop())

		mock.ExpectGet("psgc:provinces/1043000000").RedisNil()
		mock.ExpectSet("psgc:provinces/1043000000", "Misamis Oriental", 24*time.Hour).SetVal("OK")

		name, err := svc.ResolveName(ctx, location.LevelProvinces, "1043000000")

		assert.NoError(t, err)
		assert.Equal(t, "Misamis Oriental", name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative - unrecognized level", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		svc := location.NewService(&fakeClient{}, rdb, zap.NewNop())

		_, err := svc.ResolveName(ctx, "districts", "1043000000")

		assert.ErrorIs(t, err, locationerrors.ErrLocationNotFound)
	})

	t.Run("negative - unknown code passes the lookup error through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		client := &fakeClient{
			GetFn: func(_ context.Context, _ string) (location.Place, error) {
				return location.Place{}, locationerrors.ErrLocationNotFound
			},
		}
		svc := location.NewService(client, rdb, zap.NewNop())

		mock.ExpectGet("psgc:barangays/9999999999").RedisNil()

		_, err := svc.ResolveName(ctx, location.LevelBarangays, "9999999999")

		assert.ErrorIs(t, err, locationerrors.ErrLocationNotFound)
	})
}

func TestLocationService_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("success - cached list served without upstream", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		client := &fakeClient{
			ListFn: func(_ context.Context, _ string) ([]location.Place, error) {
				t.Fatal("upstream must not be called on a cache hit")
				return nil, nil
			},
		}
		svc := location.NewService(client, rdb, zap.NewNop())

		mock.ExpectGet("psgc:list:regions").
			SetVal(`[{"code":"1000000000","name":"Region X (Northern Mindanao)"}]`)

		places, err := svc.Regions(ctx)

		assert.NoError(t, err)
		assert.Len(t, places, 1)
		assert.Equal(t, "Region X (Northern Mindanao)", places[0].Name)
	})

	t.Run("success - miss fetches provinces and caches the list", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		client := &fakeClient{
			ListFn: func(_ context.Context, path string) ([]location.Place, error) {
				assert.Equal(t, "regions/1000000000/provinces", path)
				return []location.Place{{Code: "1043000000", Name: "Misamis Oriental"}}, nil
			},
		}
		svc := location.NewService(client, rdb, zap.NewNop())

		mock.ExpectGet("psgc:list:regions/1000000000/provinces").RedisNil()
		mock.Regexp().
			ExpectSet(`psgc:list:regions/1000000000/provinces`, `.*`, 24*time.Hour).
			SetVal("OK")

		places, err := svc.Provinces(ctx, "1000000000")

		assert.NoError(t, err)
		assert.Len(t, places, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - cache write failure does not fail the request", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		client := &fakeClient{
			ListFn: func(_ context.Context, _ string) ([]location.Place, error) {
				return []location.Place{{Code: "1000000000", Name: "Region X (Northern Mindanao)"}}, nil
			},
		}
		svc := location.NewService(client, rdb, zap.NewNop())

		mock.ExpectGet("psgc:list:regions").RedisNil()
		// Set expectation intentionally left errored
		mock.Regexp().ExpectSet(`psgc:list:regions`, `.*`, 24*time.Hour).SetErr(assert.AnError)

		places, err := svc.Regions(ctx)

		assert.NoError(t, err)
		assert.Len(t, places, 1)
	})
}
