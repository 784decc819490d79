package response

import (
	"time"

	"bootcamper/internal/domain/entity"
)

// LocationResponse is the GeoJSON-like location rendered on bootcamps.
type LocationResponse struct {
	Type             string    `json:"type"`
	Coordinates      []float64 `json:"coordinates"`
	FormattedAddress string    `json:"formattedAddress"`
	Street           string    `json:"street"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zipcode          string    `json:"zipcode"`
	Country          string    `json:"country"`
}

// BootcampResponse is the public shape of a bootcamp.
type BootcampResponse struct {
	ID            string            `json:"_id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Website       string            `json:"website,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	Address       string            `json:"address"`
	Location      *LocationResponse `json:"location,omitempty"`
	Careers       []string          `json:"careers"`
	AverageRating *float64          `json:"averageRating,omitempty"`
	AverageCost   *float64          `json:"averageCost,omitempty"`
	Photo         string            `json:"photo"`
	Housing       bool              `json:"housing"`
	JobAssistance bool              `json:"jobAssistance"`
	JobGuarantee  bool              `json:"jobGuarantee"`
	AcceptGi      bool              `json:"acceptGi"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	// Courses is nil unless they were populated, so an empty page still renders [].
	Courses *[]CourseResponse `json:"courses,omitempty"`
}

// BootcampSummaryResponse is the populated parent of a course.
type BootcampSummaryResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CourseResponse is the public shape of a course. Bootcamp is either the id or its summary.
type CourseResponse struct {
	ID                   string    `json:"_id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Weeks                string    `json:"weeks"`
	Tuition              float64   `json:"tuition"`
	MinimumSkill         string    `json:"minimumSkill"`
	ScholarshipAvailable bool      `json:"scholarshipAvailable"`
	Bootcamp             any       `json:"bootcamp"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBootcampResponse maps a bootcamp entity.
func NewBootcampResponse(b *entity.Bootcamp) *BootcampResponse {
	resp := &BootcampResponse{
		ID:            b.ID,
		Name:          b.Name,
		Slug:          b.Slug,
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Address:       b.Address,
		Careers:       entity.CareerStrings(b.Careers),
		AverageRating: b.AverageRating,
		AverageCost:   b.AverageCost,
		Photo:         b.Photo,
		Housing:       b.Housing,
		JobAssistance: b.JobAssistance,
		JobGuarantee:  b.JobGuarantee,
		AcceptGi:      b.AcceptGi,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if l := b.Location; l != nil {
		resp.Location = &LocationResponse{
			Type:             l.Type,
			Coordinates:      []float64{l.Lng(), l.Lat()},
			FormattedAddress: l.FormattedAddress,
			Street:           l.Street,
			City:             l.City,
			State:            l.State,
			Zipcode:          l.Zipcode,
			Country:          l.Country,
		}
	}

	if b.Courses != nil {
		courses := NewCourseResponses(b.Courses)
		resp.Courses = &courses
	}

	return resp
}

// NewBootcampResponses maps a list of bootcamps.
func NewBootcampResponses(bootcamps []*entity.Bootcamp) []*BootcampResponse {
	out := make([]*BootcampResponse, 0, len(bootcamps))
	for _, b := range bootcamps {
		out = append(out, NewBootcampResponse(b))
	}

	return out
}

// NewCourseResponse maps a course entity, rendering the populated bootcamp when present.
func NewCourseResponse(c *entity.Course) CourseResponse {
	resp := CourseResponse{
		ID:                   c.ID,
		Title:                c.Title,
		Description:          c.Description,
		Weeks:                c.Weeks,
		Tuition:              c.Tuition,
		MinimumSkill:         string(c.MinimumSkill),
		ScholarshipAvailable: c.ScholarshipAvailable,
		Bootcamp:             c.BootcampID,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}

	if s := c.Bootcamp; s != nil {
		resp.Bootcamp = &BootcampSummaryResponse{ID: s.ID, Name: s.Name, Description: s.Description}
	}

	return resp
}

// NewCourseResponses maps a list of courses.
func NewCourseResponses(courses []*entity.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}

	return out
}

// NewUserResponse maps a user, leaving the password hash behind.
func NewUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}
