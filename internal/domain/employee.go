package domain

import "slices"

// Employee has a skill set and the weekdays they can work.
// DaysAvailable is nil until availability has been set.
type Employee struct {
	ID            int64
	Name          string
	Skills        []EmployeeSkill
	DaysAvailable []DayOfWeek
}

// EmployeeFields are the attributes of an employee save request.
// A nil Skills or DaysAvailable keeps the stored value.
type EmployeeFields struct {
	Name          string
	Skills        []EmployeeSkill
	DaysAvailable []DayOfWeek
}

// Apply merges f into e. A blank Name keeps e.Name.
func (f EmployeeFields) Apply(e *Employee) {
	if f.Name != "" {
		e.Name = f.Name
	}
	if f.Skills != nil {
		e.Skills = UniqueSkills(f.Skills)
	}
	if f.DaysAvailable != nil {
		e.DaysAvailable = UniqueDays(f.DaysAvailable)
	}
}

// HasSkill reports whether e has skill s.
func (e *Employee) HasSkill(s EmployeeSkill) bool {
	return slices.Contains(e.Skills, s)
}

// AvailableOn reports whether e works on day d.
func (e *Employee) AvailableOn(d DayOfWeek) bool {
	return slices.Contains(e.DaysAvailable, d)
}

// CanServe reports whether e has every one of skills and is available on day.
func (e *Employee) CanServe(skills []EmployeeSkill, day DayOfWeek) bool {
	if !e.AvailableOn(day) {
		return false
	}
	for _, s := range skills {
		if !e.HasSkill(s) {
			return false
		}
	}
	return true
}

// UniqueSkills drops repeated skills, keeping first occurrences. nil stays nil.
func UniqueSkills(in []EmployeeSkill) []EmployeeSkill {
	return unique(in)
}

// UniqueDays drops repeated days, keeping first occurrences. nil stays nil.
func UniqueDays(in []DayOfWeek) []DayOfWeek {
	return unique(in)
}

func unique[T comparable](in []T) []T {
	if in == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
