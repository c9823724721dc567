package office

import (
	"context"
	"errors"
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"

	"gorm.io/gorm"
)

var ErrOfficeNotFound = apperror.New(
	apperror.CodeNotFound,
	"Office not found.",
	http.StatusNotFound,
)

type OfficeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

//go:generate mockgen -source=office_service.go -destination=mock/office_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]OfficeResponse, error)
	Get(ctx context.Context, id int64) (OfficeResponse, error)

	// Exists backs the employee module's office assignment check.
	Exists(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]OfficeResponse, error) {
	offices, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OfficeResponse, 0, len(offices))
	for _, o := range offices {
		responses = append(responses, OfficeResponse{
			ID:           o.ID,
			Name:         o.Name,
			Abbreviation: o.Abbreviation,
		})
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id int64) (OfficeResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OfficeResponse{}, ErrOfficeNotFound
		}
		return OfficeResponse{}, err
	}

	return OfficeResponse{
		ID:           o.ID,
		Name:         o.Name,
		Abbreviation: o.Abbreviation,
	}, nil
}

func (s *service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
