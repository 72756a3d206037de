package models

// User defines a roster member as served by the membership API.
// The API is the system of record; instances held by the console are a
// transient cache rebuilt on every successful fetch or mutation.
type User struct {
	ID            string             `json:"id,omitempty" example:"42"`                       // Server-assigned identifier
	StudentID     string             `json:"studentid" example:"UGR-1234-16"`                 // Natural key, format PREFIX-####-##
	FirstName     string             `json:"firstname" example:"John"`                        // First name
	MiddleName    string             `json:"middlename,omitempty" example:"Marcus"`           // Middle name
	LastName      string             `json:"lastname" example:"Doe"`                          // Last name
	BaptismalName string             `json:"baptismalname,omitempty" example:"Welde Amanuel"` // Baptismal name
	Gender        Gender             `json:"gender" example:"Male"`
	Birthdate     string             `json:"birthdate" example:"2002-05-14"` // ISO date (yyyy-mm-dd)
	Phone         string             `json:"phone" example:"+251912345678"`  // Required contact number
	Email         string             `json:"useremail,omitempty" example:"johndoe@gmail.com"`
	Telegram      string             `json:"telegram_username,omitempty" example:"@johndoe"`
	Nationality   string             `json:"nationality" example:"Ethiopian"`
	RegionNumber  int                `json:"regionnumber,omitempty" example:"10"`
	ZoneName      string             `json:"zonename,omitempty" example:"Addis Ababa"`
	MotherTongue  MotherTongue       `json:"mothertongue" example:"Amharic"`
	Disability    DisabilityCategory `json:"isphysicallydisabled" example:"None"`
	University    *UniversityUser    `json:"universityusers,omitempty"` // Embedded campus sub-record
}

// UniversityUser is the campus-specific sub-record embedded in a User.
type UniversityUser struct {
	ID               string               `json:"id,omitempty"`
	DepartmentName   string               `json:"departmentname" example:"Computer Science"`
	SponsorshipType  SponsorshipType      `json:"sponsorshiptype" example:"Government"`
	Participation    ParticipationSection `json:"participation" example:"Hymns_and_Arts_Section"`
	Batch            int                  `json:"batch" example:"2016"` // Entry year
	ConfessionFather string               `json:"confessionfather,omitempty"`
	MealCard         string               `json:"mealcard,omitempty"`
	HasAdvisor       bool                 `json:"advisors"`
	Role             MemberRole           `json:"role" example:"Member"`
	CafeteriaAccess  bool                 `json:"cafeteriaaccess"`
	HolidayAccess    bool                 `json:"holidayaccess"`
	CourseTaken      bool                 `json:"coursetaken"`
	ActivityLevel    ActivityLevel        `json:"activitylevel" example:"Active"`
}

// FullName joins the member's name parts, skipping an empty middle name.
func (u *User) FullName() string {
	name := u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
