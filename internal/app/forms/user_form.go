package forms

import (
	"fmt"
	"strconv"

	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
)

// UserFormData binds the add/edit member form. Fields marked required
// block submission at the binding layer; the API validates independently,
// so this is advisory UX rather than a security boundary. University
// sub-record inputs are prefixed with "university." in the templates.
type UserFormData struct {
	StudentID     string `form:"studentid" binding:"required,studentid"`
	FirstName     string `form:"firstname" binding:"required"`
	MiddleName    string `form:"middlename"`
	LastName      string `form:"lastname" binding:"required"`
	BaptismalName string `form:"baptismalname"`
	Gender        string `form:"gender" binding:"required"`
	Birthdate     string `form:"birthdate" binding:"required"`
	Phone         string `form:"phone" binding:"required,phone"`
	Email         string `form:"useremail" binding:"omitempty,email"`
	Telegram      string `form:"telegram"`
	Nationality   string `form:"nationality"`
	RegionNumber  int    `form:"regionnumber"`
	ZoneName      string `form:"zonename"`
	MotherTongue  string `form:"mothertongue"`
	Disability    string `form:"disability"`

	DepartmentName   string `form:"university.departmentname" binding:"required"`
	SponsorshipType  string `form:"university.sponsorshiptype"`
	Participation    string `form:"university.participation"`
	Batch            int    `form:"university.batch" binding:"required"`
	ConfessionFather string `form:"university.confessionfather"`
	MealCard         string `form:"university.mealcard"`
	HasAdvisor       bool   `form:"university.advisors"`
	Role             string `form:"university.role"`
	CafeteriaAccess  bool   `form:"university.cafeteriaaccess"`
	HolidayAccess    bool   `form:"university.holidayaccess"`
	CourseTaken      bool   `form:"university.coursetaken"`
	ActivityLevel    string `form:"university.activitylevel"`
}

// DefaultUser is the documented default record seeding the add form.
func DefaultUser() models.User {
	return models.User{
		Gender:       models.GenderMale,
		Nationality:  "Ethiopian",
		RegionNumber: 10,
		MotherTongue: models.TongueNotSpecified,
		Disability:   models.DisabilityNone,
		University: &models.UniversityUser{
			SponsorshipType: models.SponsorshipGovernment,
			Participation:   models.SectionNone,
			Batch:           2016,
			HasAdvisor:      true,
			Role:            models.RoleMember,
			CafeteriaAccess: true,
			ActivityLevel:   models.ActivityNotActive,
		},
	}
}

// User converts the bound form into a complete entity (add mode).
func (f *UserFormData) User() models.User {
	u := models.User{
		StudentID:     f.StudentID,
		FirstName:     f.FirstName,
		MiddleName:    f.MiddleName,
		LastName:      f.LastName,
		BaptismalName: f.BaptismalName,
		Gender:        models.Gender(f.Gender),
		Birthdate:     f.Birthdate,
		Phone:         f.Phone,
		Email:         f.Email,
		Telegram:      f.Telegram,
		Nationality:   f.Nationality,
		RegionNumber:  f.RegionNumber,
		ZoneName:      f.ZoneName,
		MotherTongue:  models.MotherTongue(f.MotherTongue),
		Disability:    models.DisabilityCategory(f.Disability),
		University: &models.UniversityUser{
			DepartmentName:   f.DepartmentName,
			SponsorshipType:  models.SponsorshipType(f.SponsorshipType),
			Participation:    models.ParticipationSection(f.Participation),
			Batch:            f.Batch,
			ConfessionFather: f.ConfessionFather,
			MealCard:         f.MealCard,
			HasAdvisor:       f.HasAdvisor,
			Role:             models.MemberRole(f.Role),
			CafeteriaAccess:  f.CafeteriaAccess,
			HolidayAccess:    f.HolidayAccess,
			CourseTaken:      f.CourseTaken,
			ActivityLevel:    models.ActivityLevel(f.ActivityLevel),
		},
	}
	return u
}

// Merge applies the form onto an existing entity (edit mode), preserving
// what the form does not carry (server-assigned record IDs). Each field
// goes through the typed field-path union, so nested university updates
// never discard sibling nested fields.
func (f *UserFormData) Merge(existing models.User) (models.User, error) {
	draft := existing
	if existing.University != nil {
		// Clone the sub-record so edits never alias the cached entity.
		clone := *existing.University
		draft.University = &clone
	}

	changes := []struct {
		field UserField
		value string
	}{
		{FieldStudentID, f.StudentID},
		{FieldFirstName, f.FirstName},
		{FieldMiddleName, f.MiddleName},
		{FieldLastName, f.LastName},
		{FieldBaptismalName, f.BaptismalName},
		{FieldGender, f.Gender},
		{FieldBirthdate, f.Birthdate},
		{FieldPhone, f.Phone},
		{FieldEmail, f.Email},
		{FieldTelegram, f.Telegram},
		{FieldNationality, f.Nationality},
		{FieldRegionNumber, strconv.Itoa(f.RegionNumber)},
		{FieldZoneName, f.ZoneName},
		{FieldMotherTongue, f.MotherTongue},
		{FieldDisability, f.Disability},
		{FieldDepartmentName, f.DepartmentName},
		{FieldSponsorshipType, f.SponsorshipType},
		{FieldParticipation, f.Participation},
		{FieldBatch, strconv.Itoa(f.Batch)},
		{FieldConfessionFather, f.ConfessionFather},
		{FieldMealCard, f.MealCard},
		{FieldHasAdvisor, strconv.FormatBool(f.HasAdvisor)},
		{FieldRole, f.Role},
		{FieldCafeteriaAccess, strconv.FormatBool(f.CafeteriaAccess)},
		{FieldHolidayAccess, strconv.FormatBool(f.HolidayAccess)},
		{FieldCourseTaken, strconv.FormatBool(f.CourseTaken)},
		{FieldActivityLevel, f.ActivityLevel},
	}

	for _, ch := range changes {
		if err := ApplyUserField(&draft, ch.field, ch.value); err != nil {
			return existing, fmt.Errorf("merge %s: %w", ch.field, err)
		}
	}
	return draft, nil
}

// UserField names one editable field of a member record. Nested
// university fields use the wire record's compound name; unknown names
// are rejected rather than interpreted at runtime.
type UserField string

const (
	FieldStudentID     UserField = "studentid"
	FieldFirstName     UserField = "firstname"
	FieldMiddleName    UserField = "middlename"
	FieldLastName      UserField = "lastname"
	FieldBaptismalName UserField = "baptismalname"
	FieldGender        UserField = "gender"
	FieldBirthdate     UserField = "birthdate"
	FieldPhone         UserField = "phone"
	FieldEmail         UserField = "useremail"
	FieldTelegram      UserField = "telegram_username"
	FieldNationality   UserField = "nationality"
	FieldRegionNumber  UserField = "regionnumber"
	FieldZoneName      UserField = "zonename"
	FieldMotherTongue  UserField = "mothertongue"
	FieldDisability    UserField = "isphysicallydisabled"

	FieldDepartmentName   UserField = "universityusers.departmentname"
	FieldSponsorshipType  UserField = "universityusers.sponsorshiptype"
	FieldParticipation    UserField = "universityusers.participation"
	FieldBatch            UserField = "universityusers.batch"
	FieldConfessionFather UserField = "universityusers.confessionfather"
	FieldMealCard         UserField = "universityusers.mealcard"
	FieldHasAdvisor       UserField = "universityusers.advisors"
	FieldRole             UserField = "universityusers.role"
	FieldCafeteriaAccess  UserField = "universityusers.cafeteriaaccess"
	FieldHolidayAccess    UserField = "universityusers.holidayaccess"
	FieldCourseTaken      UserField = "universityusers.coursetaken"
	FieldActivityLevel    UserField = "universityusers.activitylevel"
)

// ApplyUserField sets one field on the draft. University fields allocate
// the sub-record when absent and merge into it in place, leaving sibling
// nested fields untouched.
func ApplyUserField(u *models.User, field UserField, value string) error {
	switch field {
	case FieldStudentID:
		u.StudentID = value
	case FieldFirstName:
		u.FirstName = value
	case FieldMiddleName:
		u.MiddleName = value
	case FieldLastName:
		u.LastName = value
	case FieldBaptismalName:
		u.BaptismalName = value
	case FieldGender:
		u.Gender = models.Gender(value)
	case FieldBirthdate:
		u.Birthdate = value
	case FieldPhone:
		u.Phone = value
	case FieldEmail:
		u.Email = value
	case FieldTelegram:
		u.Telegram = value
	case FieldNationality:
		u.Nationality = value
	case FieldRegionNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: regionnumber %q", apperrors.ErrValidationFailed, value)
		}
		u.RegionNumber = n
	case FieldZoneName:
		u.ZoneName = value
	case FieldMotherTongue:
		u.MotherTongue = models.MotherTongue(value)
	case FieldDisability:
		u.Disability = models.DisabilityCategory(value)

	case FieldDepartmentName, FieldSponsorshipType, FieldParticipation,
		FieldBatch, FieldConfessionFather, FieldMealCard, FieldHasAdvisor,
		FieldRole, FieldCafeteriaAccess, FieldHolidayAccess,
		FieldCourseTaken, FieldActivityLevel:
		return applyUniversityField(u, field, value)

	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownField, field)
	}
	return nil
}

func applyUniversityField(u *models.User, field UserField, value string) error {
	if u.University == nil {
		u.University = &models.UniversityUser{}
	}
	uu := u.University

	switch field {
	case FieldDepartmentName:
		uu.DepartmentName = value
	case FieldSponsorshipType:
		uu.SponsorshipType = models.SponsorshipType(value)
	case FieldParticipation:
		uu.Participation = models.ParticipationSection(value)
	case FieldBatch:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: batch %q", apperrors.ErrValidationFailed, value)
		}
		uu.Batch = n
	case FieldConfessionFather:
		uu.ConfessionFather = value
	case FieldMealCard:
		uu.MealCard = value
	case FieldHasAdvisor:
		uu.HasAdvisor = value == "true" || value == "on" || value == "Yes"
	case FieldRole:
		uu.Role = models.MemberRole(value)
	case FieldCafeteriaAccess:
		uu.CafeteriaAccess = value == "true" || value == "on"
	case FieldHolidayAccess:
		uu.HolidayAccess = value == "true" || value == "on"
	case FieldCourseTaken:
		uu.CourseTaken = value == "true" || value == "on"
	case FieldActivityLevel:
		uu.ActivityLevel = models.ActivityLevel(value)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownField, field)
	}
	return nil
}
