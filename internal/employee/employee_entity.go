package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	UUID          uuid.UUID `gorm:"column:uuid;type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName     string    `gorm:"column:first_name;type:varchar(100);not null"`
	MiddleName    *string   `gorm:"column:middle_name;type:varchar(100)"`
	LastName      string    `gorm:"column:last_name;type:varchar(100);not null"`
	Suffix        *string   `gorm:"column:suffix;type:varchar(20)"`
	Birthday      time.Time `gorm:"column:birthday;type:date;not null"`
	CivilStatus   string    `gorm:"column:civil_status;type:varchar(20);not null"`
	Email         string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employees_email"`
	PasswordHash  string    `gorm:"column:password;type:varchar(255);not null"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	Nationality   string    `gorm:"column:nationality;type:varchar(100);not null"`
	Residence     string    `gorm:"column:residence;type:varchar(255);not null"`
	BlockNumber   *string   `gorm:"column:block_number;type:varchar(50)"`
	BuildingFloor *string   `gorm:"column:building_floor;type:varchar(50)"`
	HouseNumber   *string   `gorm:"column:house_number;type:varchar(50)"`

	ProvinceCode *string `gorm:"column:province_code;type:varchar(20)"`
	ProvinceName *string `gorm:"column:province_name;type:varchar(100)"`
	CityCode     *string `gorm:"column:city_code;type:varchar(20)"`
	CityName     *string `gorm:"column:city_name;type:varchar(100)"`
	BarangayCode *string `gorm:"column:barangay_code;type:varchar(20)"`
	BarangayName *string `gorm:"column:barangay_name;type:varchar(100)"`

	OfficeID *int64  `gorm:"column:office_id"`
	Position *string `gorm:"column:position;type:varchar(150)"`

	DateEmployed   *time.Time `gorm:"column:date_employed;type:date"`
	DateTerminated *time.Time `gorm:"column:date_terminated;type:date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Office *OfficeRef `gorm:"foreignKey:OfficeID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// OfficeRef is a minimal join projection of the offices table.
type OfficeRef struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Abbreviation string `gorm:"column:abbreviation"`
}

func (OfficeRef) TableName() string {
	return "offices"
}

// FullName joins the name parts, skipping absent ones.
func (e Employee) FullName() string {
	parts := make([]string, 0, 4)
	parts = append(parts, e.FirstName)
	if e.MiddleName != nil && *e.MiddleName != "" {
		parts = append(parts, *e.MiddleName)
	}
	parts = append(parts, e.LastName)
	if e.Suffix != nil && *e.Suffix != "" {
		parts = append(parts, *e.Suffix)
	}
	return strings.Join(parts, " ")
}

// Initials joins the first letter of each present name part with dots,
// e.g. "J.D.R".
func (e Employee) Initials() string {
	letters := make([]string, 0, 3)
	if e.FirstName != "" {
		letters = append(letters, string([]rune(e.FirstName)[0]))
	}
	if e.MiddleName != nil && *e.MiddleName != "" {
		letters = append(letters, string([]rune(*e.MiddleName)[0]))
	}
	if e.LastName != "" {
		letters = append(letters, string([]rune(e.LastName)[0]))
	}
	return strings.Join(letters, ".")
}

// Age computes whole years from the birthday as of now.
func (e Employee) Age(now time.Time) int {
	age := now.Year() - e.Birthday.Year()
	if now.YearDay() < e.Birthday.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}
