package entity

import "slices"

// Career is one of the fixed career tracks a bootcamp can offer.
type Career string

const (
	CareerWebDevelopment    Career = "Web Development"
	CareerMobileDevelopment Career = "Mobile development"
	CareerUIUX              Career = "UI/UX"
	CareerDataScience       Career = "Data science"
	CareerBusiness          Career = "Business"
	CareerOther             Career = "Other"
)

// Careers lists every accepted career value.
var Careers = []Career{
	CareerWebDevelopment,
	CareerMobileDevelopment,
	CareerUIUX,
	CareerDataScience,
	CareerBusiness,
	CareerOther,
}

// IsValid checks if the Career is one of the accepted values.
func (c Career) IsValid() bool {
	return slices.Contains(Careers, c)
}

// CareersFromStrings converts raw values without validating them.
func CareersFromStrings(ss []string) []Career {
	result := make([]Career, len(ss))
	for i, s := range ss {
		result[i] = Career(s)
	}

	return result
}

// CareerStrings converts careers back to plain strings for storage.
func CareerStrings(cs []Career) []string {
	result := make([]string, len(cs))
	for i, c := range cs {
		result[i] = string(c)
	}

	return result
}
