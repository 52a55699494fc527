package domain

import "time"

// PetType is the species category of a pet.
type PetType string

const (
	PetTypeCat     PetType = "CAT"
	PetTypeDog     PetType = "DOG"
	PetTypeLizard  PetType = "LIZARD"
	PetTypeBird    PetType = "BIRD"
	PetTypeFish    PetType = "FISH"
	PetTypeSnake   PetType = "SNAKE"
	PetTypeReptile PetType = "REPTILE"
	PetTypeOther   PetType = "OTHER"
)

func (p PetType) String() string { return string(p) }

func (p PetType) IsValid() bool {
	switch p {
	case PetTypeCat, PetTypeDog, PetTypeLizard, PetTypeBird,
		PetTypeFish, PetTypeSnake, PetTypeReptile, PetTypeOther:
		return true
	}
	return false
}

// EmployeeSkill is a capability tag. Schedules use the same tags for their activities.
type EmployeeSkill string

const (
	SkillPetting    EmployeeSkill = "PETTING"
	SkillWalking    EmployeeSkill = "WALKING"
	SkillFeeding    EmployeeSkill = "FEEDING"
	SkillMedicating EmployeeSkill = "MEDICATING"
	SkillShaving    EmployeeSkill = "SHAVING"
)

func (s EmployeeSkill) String() string { return string(s) }

func (s EmployeeSkill) IsValid() bool {
	switch s {
	case SkillPetting, SkillWalking, SkillFeeding, SkillMedicating, SkillShaving:
		return true
	}
	return false
}

// DayOfWeek is an ISO day name, MONDAY..SUNDAY.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var weekdays = [...]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func (d DayOfWeek) String() string { return string(d) }

func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DayOf returns the day of week of t in t's own location.
func DayOf(t time.Time) DayOfWeek {
	return weekdays[t.Weekday()]
}

// EntityKind identifies an entity type in error messages and logs.
type EntityKind string

const (
	KindCustomer EntityKind = "CUSTOMER"
	KindPet      EntityKind = "PET"
	KindEmployee EntityKind = "EMPLOYEE"
	KindSchedule EntityKind = "SCHEDULE"
)

func (k EntityKind) String() string { return string(k) }

// Label is the lower-case noun used in user-facing messages.
func (k EntityKind) Label() string {
	switch k {
	case KindCustomer:
		return "customer"
	case KindPet:
		return "pet"
	case KindEmployee:
		return "employee"
	case KindSchedule:
		return "schedule"
	}
	return "entity"
}
