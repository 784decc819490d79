// Package query translates list-endpoint query strings into structured store queries.
package query

// Kind describes how a query-string value is converted for a field.
type Kind int

const (
	// KindString compares raw strings.
	KindString Kind = iota
	// KindNumber converts values to float64.
	KindNumber
	// KindBool converts values with strconv.ParseBool.
	KindBool
	// KindStringList is an array of strings; an exact match means "contains".
	KindStringList
	// KindTime converts RFC3339 timestamps or YYYY-MM-DD dates.
	KindTime
	// KindID is an opaque store identifier.
	KindID
	// KindObject can be projected and sorted but never filtered.
	KindObject
)

// IDField is the identifier field; it is always part of a projection.
const IDField = "_id"

// Schema is the allow-list of fields a list endpoint accepts.
type Schema struct {
	fields   map[string]Kind
	populate map[string]struct{}
}

// NewSchema creates a schema from field kinds and the names of joinable relations.
func NewSchema(fields map[string]Kind, populate ...string) *Schema {
	s := &Schema{
		fields:   make(map[string]Kind, len(fields)+1),
		populate: make(map[string]struct{}, len(populate)),
	}
	for name, kind := range fields {
		s.fields[name] = kind
	}
	s.fields[IDField] = KindID
	for _, p := range populate {
		s.populate[p] = struct{}{}
	}

	return s
}

// Kind returns the kind of a field and whether the field is known.
func (s *Schema) Kind(field string) (Kind, bool) {
	kind, ok := s.fields[field]

	return kind, ok
}

// CanPopulate reports whether the relation can be joined.
func (s *Schema) CanPopulate(relation string) bool {
	_, ok := s.populate[relation]

	return ok
}

// Bootcamp field names shared by the stores and the response layer.
const (
	BootcampName          = "name"
	BootcampSlug          = "slug"
	BootcampDescription   = "description"
	BootcampWebsite       = "website"
	BootcampPhone         = "phone"
	BootcampEmail         = "email"
	BootcampAddress       = "address"
	BootcampLocation      = "location"
	BootcampCareers       = "careers"
	BootcampAverageRating = "averageRating"
	BootcampAverageCost   = "averageCost"
	BootcampPhoto         = "photo"
	BootcampHousing       = "housing"
	BootcampJobAssistance = "jobAssistance"
	BootcampJobGuarantee  = "jobGuarantee"
	BootcampAcceptGi      = "acceptGi"
	FieldCreatedAt        = "createdAt"
	FieldUpdatedAt        = "updatedAt"

	// PopulateCourses joins each bootcamp's courses.
	PopulateCourses = "courses"
)

// Course field names shared by the stores and the response layer.
const (
	CourseTitle                = "title"
	CourseDescription          = "description"
	CourseWeeks                = "weeks"
	CourseTuition              = "tuition"
	CourseMinimumSkill         = "minimumSkill"
	CourseScholarshipAvailable = "scholarshipAvailable"
	CourseBootcamp             = "bootcamp"
)

// BootcampSchema lists every field a bootcamp list request may reference.
var BootcampSchema = NewSchema(map[string]Kind{
	BootcampName:                KindString,
	BootcampSlug:                KindString,
	BootcampDescription:         KindString,
	BootcampWebsite:             KindString,
	BootcampPhone:               KindString,
	BootcampEmail:               KindString,
	BootcampAddress:             KindString,
	BootcampLocation:            KindObject,
	"location.street":           KindString,
	"location.city":             KindString,
	"location.state":            KindString,
	"location.zipcode":          KindString,
	"location.country":          KindString,
	"location.formattedAddress": KindString,
	BootcampCareers:             KindStringList,
	BootcampAverageRating:       KindNumber,
	BootcampAverageCost:         KindNumber,
	BootcampPhoto:               KindString,
	BootcampHousing:             KindBool,
	BootcampJobAssistance:       KindBool,
	BootcampJobGuarantee:        KindBool,
	BootcampAcceptGi:            KindBool,
	FieldCreatedAt:              KindTime,
	FieldUpdatedAt:              KindTime,
}, PopulateCourses)

// CourseSchema lists every field a course list request may reference.
var CourseSchema = NewSchema(map[string]Kind{
	CourseTitle:                KindString,
	CourseDescription:          KindString,
	CourseWeeks:                KindString,
	CourseTuition:              KindNumber,
	CourseMinimumSkill:         KindString,
	CourseScholarshipAvailable: KindBool,
	CourseBootcamp:             KindID,
	FieldCreatedAt:             KindTime,
	FieldUpdatedAt:             KindTime,
})
