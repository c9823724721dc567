package employee

type ListEmployeesQuery struct {
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"per_page,default=15"`
	Search  string `form:"search"`
	Status  string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateEmployeeRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`
	MiddleName     *string `json:"middle_name"`
	LastName       string  `json:"last_name" binding:"required"`
	Suffix         *string `json:"suffix"`
	Birthday       string  `json:"birthday" binding:"required"`
	CivilStatus    string  `json:"civil_status" binding:"required,oneof=single married widowed separated divorced"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Nationality    string  `json:"nationality" binding:"required"`
	Residence      string  `json:"residence" binding:"required"`
	BlockNumber    *string `json:"block_number"`
	BuildingFloor  *string `json:"building_floor"`
	HouseNumber    *string `json:"house_number"`
	RegionCode     *string `json:"region_code"`
	ProvinceCode   *string `json:"province_code"`
	CityCode       *string `json:"city_code"`
	BarangayCode   *string `json:"barangay_code"`
	OfficeID       *int64  `json:"office_id"`
	Position       string  `json:"position" binding:"required"`
	DateEmployed   *string `json:"date_employed"`
	DateTerminated *string `json:"date_terminated"`
}

type UpdateEmployeeRequest struct {
	FirstName      *string `json:"first_name"`
	MiddleName     *string `json:"middle_name"`
	LastName       *string `json:"last_name"`
	Suffix         *string `json:"suffix"`
	Birthday       *string `json:"birthday"`
	CivilStatus    *string `json:"civil_status" binding:"omitempty,oneof=single married widowed separated divorced"`
	Email          *string `json:"email" binding:"omitempty,email"`
	IsActive       *bool   `json:"is_active"`
	Nationality    *string `json:"nationality"`
	Residence      *string `json:"residence"`
	BlockNumber    *string `json:"block_number"`
	BuildingFloor  *string `json:"building_floor"`
	HouseNumber    *string `json:"house_number"`
	RegionCode     *string `json:"region_code"`
	ProvinceCode   *string `json:"province_code"`
	CityCode       *string `json:"city_code"`
	BarangayCode   *string `json:"barangay_code"`
	OfficeID       *int64  `json:"office_id"`
	Position       *string `json:"position"`
	DateEmployed   *string `json:"date_employed"`
	DateTerminated *string `json:"date_terminated"`
}

type LocationResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type OfficeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type EmployeeResponse struct {
	UUID           string            `json:"uuid"`
	FirstName      string            `json:"first_name"`
	MiddleName     *string           `json:"middle_name"`
	LastName       string            `json:"last_name"`
	Suffix         *string           `json:"suffix"`
	FullName       string            `json:"full_name"`
	Initials       string            `json:"initials"`
	Birthday       string            `json:"birthday"`
	Age            int               `json:"age"`
	CivilStatus    string            `json:"civil_status"`
	Email          string            `json:"email"`
	IsActive       bool              `json:"is_active"`
	Nationality    string            `json:"nationality"`
	Residence      string            `json:"residence"`
	BlockNumber    *string           `json:"block_number"`
	BuildingFloor  *string           `json:"building_floor"`
	HouseNumber    *string           `json:"house_number"`
	Province       *LocationResponse `json:"province"`
	City           *LocationResponse `json:"city"`
	Barangay       *LocationResponse `json:"barangay"`
	Office         *OfficeResponse   `json:"office"`
	Position       *string           `json:"position"`
	DateEmployed   *string           `json:"date_employed"`
	DateTerminated *string           `json:"date_terminated"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}
