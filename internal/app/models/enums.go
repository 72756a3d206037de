package models

// Gender of a member
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// MotherTongue is the member's first language
type MotherTongue string

const (
	TongueAmharic      MotherTongue = "Amharic"
	TongueOromifa      MotherTongue = "Oromifa"
	TongueTigregna     MotherTongue = "Tigregna"
	TongueEnglish      MotherTongue = "English"
	TongueNotSpecified MotherTongue = "Not_Specified"
	TongueOther        MotherTongue = "Other"
)

// DisabilityCategory classifies physical disability status
type DisabilityCategory string

const (
	DisabilityNone    DisabilityCategory = "None"
	DisabilityVisual  DisabilityCategory = "Visual"
	DisabilityHearing DisabilityCategory = "Hearing"
	DisabilityMotor   DisabilityCategory = "Motor"
	DisabilityOther   DisabilityCategory = "Other"
)

// SponsorshipType describes how the member's studies are funded
type SponsorshipType string

const (
	SponsorshipGovernment SponsorshipType = "Government"
	SponsorshipPrivate    SponsorshipType = "Private"
)

// ParticipationSection is the service section a member participates in
type ParticipationSection string

const (
	SectionBatchCoordination     ParticipationSection = "Batch_and_Programs_Coordination_Section"
	SectionSecretariat           ParticipationSection = "Gbi_Gubaye_Secretariat"
	SectionAuditInspection       ParticipationSection = "Audit_and_Inspection_Section"
	SectionEducationApostolic    ParticipationSection = "Education_and_Apostolic_Service_Section"
	SectionAccountingAssets      ParticipationSection = "Accounting_and_Assets_Section"
	SectionIncomeCollection      ParticipationSection = "Development_and_Income_Collection_Section"
	SectionLanguagesInterests    ParticipationSection = "Languages_and_Special_Interests_Section"
	SectionHymnsArts             ParticipationSection = "Hymns_and_Arts_Section"
	SectionInformationManagement ParticipationSection = "Planning_Monitoring_Reports_and_Information_Management_Section"
	SectionCommunityDevelopment  ParticipationSection = "Professional_and_Community_Development_Section"
	SectionMemberCare            ParticipationSection = "Member_Care_Advice_and_Capacity_Building_Section"
	SectionNone                  ParticipationSection = "None"
)

// MemberRole is the member's role within their class or subclass
type MemberRole string

const (
	RoleMember            MemberRole = "Member"
	RoleClassSecretary    MemberRole = "ClassSecretary"
	RoleClassTeamLead     MemberRole = "ClassTeamLead"
	RoleClassManager      MemberRole = "ClassManager"
	RoleSubclassSecretary MemberRole = "SubclassSecretary"
	RoleSubclassTeamLead  MemberRole = "SubclassTeamLead"
	RoleSubclassManager   MemberRole = "SubclassManager"
	RoleNone              MemberRole = "None"
)

// ActivityLevel grades how actively a member participates
type ActivityLevel string

const (
	ActivityNotActive  ActivityLevel = "Not_Active"
	ActivityLessActive ActivityLevel = "Less_Active"
	ActivityActive     ActivityLevel = "Active"
	ActivityVeryActive ActivityLevel = "Very_Active"
)
