package domain

import (
	"slices"
	"time"
)

// Schedule assigns pets and employees to a set of activities on a date.
// PetIDs and EmployeeIDs keep submission order; duplicates are preserved.
type Schedule struct {
	ID          int64
	Date        time.Time
	Activities  []EmployeeSkill
	PetIDs      []int64
	EmployeeIDs []int64
}

// ScheduleFields are the attributes of a schedule save request.
type ScheduleFields struct {
	Date        time.Time
	Activities  []EmployeeSkill
	PetIDs      []int64
	EmployeeIDs []int64
}

// Apply overwrites every attribute of s except the id.
func (f ScheduleFields) Apply(s *Schedule) {
	s.Date = f.Date
	s.Activities = UniqueSkills(f.Activities)
	s.PetIDs = append([]int64(nil), f.PetIDs...)
	s.EmployeeIDs = append([]int64(nil), f.EmployeeIDs...)
}

// HasPet reports whether the schedule lists the pet.
func (s *Schedule) HasPet(petID int64) bool {
	return slices.Contains(s.PetIDs, petID)
}

// HasEmployee reports whether the schedule lists the employee.
func (s *Schedule) HasEmployee(employeeID int64) bool {
	return slices.Contains(s.EmployeeIDs, employeeID)
}
