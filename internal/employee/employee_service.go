package employee

import (
	"context"
	"strings"
	"time"

	"github.com/JSON-FX/lgu-sso/internal/audit"
	employeeerrors "github.com/JSON-FX/lgu-sso/internal/employee/errors"
	"github.com/JSON-FX/lgu-sso/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPerPage = 15
	maxPerPage     = 100
	dateLayout     = "2006-01-02"
)

// LocationResolver resolves a PSGC code to its display name. Implemented by
// the location package on top of the psgc.cloud proxy cache.
type LocationResolver interface {
	ResolveName(ctx context.Context, level, code string) (string, error)
}

// OfficeFinder checks office reference data without pulling in the whole
// office package.
type OfficeFinder interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, int64, error)
	Get(ctx context.Context, uuid string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, uuid string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, uuid string) error
}

type service struct {
	repo      Repository
	locations LocationResolver
	offices   OfficeFinder
	recorder  audit.Recorder
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	locations LocationResolver,
	offices OfficeFinder,
	recorder audit.Recorder,
	logger *zap.Logger,
) Service {
	return &service{
		repo:      repo,
		locations: locations,
		offices:   offices,
		recorder:  recorder,
		logger:    logger,
	}
}

func (s *service) List(ctx context.Context, query ListEmployeesQuery) ([]EmployeeResponse, int64, error) {
	params := ListParams{
		Search:  strings.TrimSpace(query.Search),
		Status:  query.Status,
		Page:    query.Page,
		PerPage: query.PerPage,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 {
		params.PerPage = defaultPerPage
	}
	if params.PerPage > maxPerPage {
		params.PerPage = maxPerPage
	}

	employees, total, err := s.repo.List(ctx, params)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, empl := range employees {
		resp[i] = mapToResponse(empl)
	}

	return resp, total, nil
}

func (s *service) Get(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeUUID
	}

	empl, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	l.Info("creating employee", zap.String("email", req.Email))

	birthday, err := time.Parse(dateLayout, req.Birthday)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBirthday
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		UUID:          uuid.New(),
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Suffix:        req.Suffix,
		Birthday:      birthday,
		CivilStatus:   req.CivilStatus,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  string(hashed),
		IsActive:      true,
		Nationality:   req.Nationality,
		Residence:     req.Residence,
		BlockNumber:   req.BlockNumber,
		BuildingFloor: req.BuildingFloor,
		HouseNumber:   req.HouseNumber,
	}

	if req.Position != "" {
		empl.Position = &req.Position
	}

	if empl.DateEmployed, err = parseOptionalDate(req.DateEmployed); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	if empl.DateTerminated, err = parseOptionalDate(req.DateTerminated); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	if err := s.applyAddress(ctx, empl, req.ProvinceCode, req.CityCode, req.BarangayCode); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.applyOffice(ctx, empl, req.OfficeID); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		l.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:       audit.ActionEmployeeCreated,
		EmployeeUUID: &empl.UUID,
		Metadata:     map[string]any{"email": empl.Email},
	})

	l.Info("employee created", zap.String("employee_uuid", empl.UUID.String()))
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	empl, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.FirstName != nil {
		empl.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		empl.MiddleName = emptyToNil(req.MiddleName)
	}
	if req.LastName != nil {
		empl.LastName = *req.LastName
	}
	if req.Suffix != nil {
		empl.Suffix = emptyToNil(req.Suffix)
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(dateLayout, *req.Birthday)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidBirthday
		}
		empl.Birthday = birthday
	}
	if req.CivilStatus != nil {
		empl.CivilStatus = *req.CivilStatus
	}
	if req.Email != nil {
		empl.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.IsActive != nil {
		empl.IsActive = *req.IsActive
	}
	if req.Nationality != nil {
		empl.Nationality = *req.Nationality
	}
	if req.Residence != nil {
		empl.Residence = *req.Residence
	}
	if req.BlockNumber != nil {
		empl.BlockNumber = emptyToNil(req.BlockNumber)
	}
	if req.BuildingFloor != nil {
		empl.BuildingFloor = emptyToNil(req.BuildingFloor)
	}
	if req.HouseNumber != nil {
		empl.HouseNumber = emptyToNil(req.HouseNumber)
	}
	if req.Position != nil {
		empl.Position = emptyToNil(req.Position)
	}
	if req.DateEmployed != nil {
		if empl.DateEmployed, err = parseOptionalDate(req.DateEmployed); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDate
		}
	}
	if req.DateTerminated != nil {
		if empl.DateTerminated, err = parseOptionalDate(req.DateTerminated); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDate
		}
	}

	if req.ProvinceCode != nil || req.CityCode != nil || req.BarangayCode != nil {
		if err := s.applyAddress(ctx, empl, req.ProvinceCode, req.CityCode, req.BarangayCode); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if req.OfficeID != nil {
		if err := s.applyOffice(ctx, empl, req.OfficeID); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		l.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:       audit.ActionEmployeeUpdated,
		EmployeeUUID: &empl.UUID,
	})

	l.Info("employee updated", zap.String("employee_uuid", empl.UUID.String()))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	empl, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.recorder.Record(ctx, audit.Entry{
		Action:       audit.ActionEmployeeDeleted,
		EmployeeUUID: &empl.UUID,
		Metadata:     map[string]any{"email": empl.Email},
	})

	l.Info("employee deleted", zap.String("employee_uuid", id))
	return nil
}

// applyAddress resolves the given PSGC codes to names and stores both. A code
// that fails to resolve is a validation error, not a lookup pass-through.
func (s *service) applyAddress(ctx context.Context, empl *Employee, provinceCode, cityCode, barangayCode *string) error {
	set := func(level string, code *string, outCode, outName **string) error {
		if code == nil || *code == "" {
			*outCode = nil
			*outName = nil
			return nil
		}
		if s.locations == nil {
			*outCode = code
			return nil
		}
		name, err := s.locations.ResolveName(ctx, level, *code)
		if err != nil {
			return employeeerrors.ErrUnknownLocationCode
		}
		*outCode = code
		*outName = &name
		return nil
	}

	if err := set("provinces", provinceCode, &empl.ProvinceCode, &empl.ProvinceName); err != nil {
		return err
	}
	if err := set("cities-municipalities", cityCode, &empl.CityCode, &empl.CityName); err != nil {
		return err
	}
	return set("barangays", barangayCode, &empl.BarangayCode, &empl.BarangayName)
}

func (s *service) applyOffice(ctx context.Context, empl *Employee, officeID *int64) error {
	if officeID == nil {
		empl.OfficeID = nil
		empl.Office = nil
		return nil
	}
	if s.offices != nil {
		ok, err := s.offices.Exists(ctx, *officeID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrUnknownOffice
		}
	}
	empl.OfficeID = officeID
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		UUID:          empl.UUID.String(),
		FirstName:     empl.FirstName,
		MiddleName:    empl.MiddleName,
		LastName:      empl.LastName,
		Suffix:        empl.Suffix,
		FullName:      empl.FullName(),
		Initials:      empl.Initials(),
		Birthday:      empl.Birthday.Format(dateLayout),
		Age:           empl.Age(time.Now()),
		CivilStatus:   empl.CivilStatus,
		Email:         empl.Email,
		IsActive:      empl.IsActive,
		Nationality:   empl.Nationality,
		Residence:     empl.Residence,
		BlockNumber:   empl.BlockNumber,
		BuildingFloor: empl.BuildingFloor,
		HouseNumber:   empl.HouseNumber,
		CreatedAt:     empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     empl.UpdatedAt.UTC().Format(time.RFC3339),
	}

	resp.Province = locationResponse(empl.ProvinceCode, empl.ProvinceName)
	resp.City = locationResponse(empl.CityCode, empl.CityName)
	resp.Barangay = locationResponse(empl.BarangayCode, empl.BarangayName)

	if empl.Office != nil {
		resp.Office = &OfficeResponse{
			ID:           empl.Office.ID,
			Name:         empl.Office.Name,
			Abbreviation: empl.Office.Abbreviation,
		}
	}

	resp.Position = empl.Position

	if empl.DateEmployed != nil {
		d := empl.DateEmployed.Format(dateLayout)
		resp.DateEmployed = &d
	}
	if empl.DateTerminated != nil {
		d := empl.DateTerminated.Format(dateLayout)
		resp.DateTerminated = &d
	}

	return resp
}

func locationResponse(code, name *string) *LocationResponse {
	if code == nil {
		return nil
	}
	loc := &LocationResponse{Code: *code}
	if name != nil {
		loc.Name = *name
	}
	return loc
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func emptyToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
