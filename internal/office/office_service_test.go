package office_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JSON-FX/lgu-sso/internal/office"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeOfficeRepo struct {
	FindAllFn  func(ctx context.Context) ([]office.Office, error)
	FindByIDFn func(ctx context.Context, id int64) (*office.Office, error)
	ExistsFn   func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeOfficeRepo) FindAll(ctx context.Context) ([]office.Office, error) {
	return f.FindAllFn(ctx)
}

func (f *fakeOfficeRepo) FindByID(ctx context.Context, id int64) (*office.Office, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeOfficeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.ExistsFn(ctx, id)
}

func TestOfficeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeOfficeRepo{}
		repo.FindAllFn = func(_ context.Context) ([]office.Office, error) {
			return []office.Office{
				{ID: 1, Name: "Office of the Mayor", Abbreviation: "OM"},
				{ID: 2, Name: "Human Resource Management Office", Abbreviation: "HRMO"},
			}, nil
		}

		resp, err := office.NewService(repo).List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "HRMO", resp[1].Abbreviation)
	})
}

func TestOfficeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeOfficeRepo{}
		repo.FindByIDFn = func(_ context.Context, id int64) (*office.Office, error) {
			assert.Equal(t, int64(2), id)
			return &office.Office{ID: 2, Name: "Human Resource Management Office", Abbreviation: "HRMO"}, nil
		}

		resp, err := office.NewService(repo).Get(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Human Resource Management Office", resp.Name)
	})

	t.Run("negative - not found", func(t *testing.T) {
		repo := &fakeOfficeRepo{}
		repo.FindByIDFn = func(_ context.Context, _ int64) (*office.Office, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := office.NewService(repo).Get(ctx, 99)

		assert.ErrorIs(t, err, office.ErrOfficeNotFound)
	})

	t.Run("negative - other repository errors pass through", func(t *testing.T) {
		repo := &fakeOfficeRepo{}
		repo.FindByIDFn = func(_ context.Context, _ int64) (*office.Office, error) {
			return nil, errors.New("database connection lost")
		}

		_, err := office.NewService(repo).Get(ctx, 2)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, office.ErrOfficeNotFound)
	})
}
