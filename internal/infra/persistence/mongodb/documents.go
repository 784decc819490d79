package mongodb

import (
	"time"

	"bootcamper/internal/domain/entity"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// locationDocument is stored as a GeoJSON point so the 2dsphere index applies.
type locationDocument struct {
	Type             string    `bson:"type"`
	Coordinates      []float64 `bson:"coordinates"`
	FormattedAddress string    `bson:"formattedAddress,omitempty"`
	Street           string    `bson:"street,omitempty"`
	City             string    `bson:"city,omitempty"`
	State            string    `bson:"state,omitempty"`
	Zipcode          string    `bson:"zipcode,omitempty"`
	Country          string    `bson:"country,omitempty"`
}

type bootcampDocument struct {
	ID            bson.ObjectID     `bson:"_id,omitempty"`
	Name          string            `bson:"name"`
	Slug          string            `bson:"slug"`
	Description   string            `bson:"description"`
	Website       string            `bson:"website,omitempty"`
	Phone         string            `bson:"phone,omitempty"`
	Email         string            `bson:"email,omitempty"`
	Address       string            `bson:"address"`
	Location      *locationDocument `bson:"location,omitempty"`
	Careers       []string          `bson:"careers"`
	AverageRating *float64          `bson:"averageRating,omitempty"`
	AverageCost   *float64          `bson:"averageCost,omitempty"`
	Photo         string            `bson:"photo"`
	Housing       bool              `bson:"housing"`
	JobAssistance bool              `bson:"jobAssistance"`
	JobGuarantee  bool              `bson:"jobGuarantee"`
	AcceptGi      bool              `bson:"acceptGi"`
	CreatedAt     time.Time         `bson:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt"`
}

type courseDocument struct {
	ID                   bson.ObjectID `bson:"_id,omitempty"`
	Title                string        `bson:"title"`
	Description          string        `bson:"description"`
	Weeks                string        `bson:"weeks"`
	Tuition              float64       `bson:"tuition"`
	MinimumSkill         string        `bson:"minimumSkill"`
	ScholarshipAvailable bool          `bson:"scholarshipAvailable"`
	Bootcamp             bson.ObjectID `bson:"bootcamp"`
	CreatedAt            time.Time     `bson:"createdAt"`
	UpdatedAt            time.Time     `bson:"updatedAt"`
}

type userDocument struct {
	ID                  bson.ObjectID `bson:"_id,omitempty"`
	Username            string        `bson:"username"`
	Email               string        `bson:"email"`
	Password            string        `bson:"password"`
	Role                string        `bson:"role"`
	ResetPasswordToken  string        `bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpire *time.Time    `bson:"resetPasswordExpire,omitempty"`
	CreatedAt           time.Time     `bson:"createdAt"`
}

// objectID parses a hex identifier; malformed input reports false.
func objectID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, false
	}

	return oid, true
}

func hexOrEmpty(id bson.ObjectID) string {
	if id.IsZero() {
		return ""
	}

	return id.Hex()
}

// now is truncated to the millisecond precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func fromLocationEntity(l *entity.Location) *locationDocument {
	if l == nil {
		return nil
	}

	return &locationDocument{
		Type:             entity.LocationTypePoint,
		Coordinates:      []float64{l.Coordinates.Lon(), l.Coordinates.Lat()},
		FormattedAddress: l.FormattedAddress,
		Street:           l.Street,
		City:             l.City,
		State:            l.State,
		Zipcode:          l.Zipcode,
		Country:          l.Country,
	}
}

func (d *locationDocument) toEntity() *entity.Location {
	if d == nil {
		return nil
	}

	l := &entity.Location{
		Type:             d.Type,
		FormattedAddress: d.FormattedAddress,
		Street:           d.Street,
		City:             d.City,
		State:            d.State,
		Zipcode:          d.Zipcode,
		Country:          d.Country,
	}
	if len(d.Coordinates) == 2 {
		l.Coordinates = orb.Point{d.Coordinates[0], d.Coordinates[1]}
	}

	return l
}

func fromBootcampEntity(b *entity.Bootcamp) *bootcampDocument {
	doc := &bootcampDocument{
		Name:          b.Name,
		Slug:          b.Slug,
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Address:       b.Address,
		Location:      fromLocationEntity(b.Location),
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
	if oid, ok := objectID(b.ID); ok {
		doc.ID = oid
	}

	return doc
}

func (d *bootcampDocument) toEntity() *entity.Bootcamp {
	return &entity.Bootcamp{
		ID:            hexOrEmpty(d.ID),
		Name:          d.Name,
		Slug:          d.Slug,
		Description:   d.Description,
		Website:       d.Website,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		Location:      d.Location.toEntity(),
		Careers:       entity.CareersFromStrings(d.Careers),
		AverageRating: d.AverageRating,
		AverageCost:   d.AverageCost,
		Photo:         d.Photo,
		Housing:       d.Housing,
		JobAssistance: d.JobAssistance,
		JobGuarantee:  d.JobGuarantee,
		AcceptGi:      d.AcceptGi,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func fromCourseEntity(c *entity.Course) *courseDocument {
	doc := &courseDocument{
		Title:                c.Title,
		Description:          c.Description,
		Weeks:                c.Weeks,
		Tuition:              c.Tuition,
		MinimumSkill:         string(c.MinimumSkill),
		ScholarshipAvailable: c.ScholarshipAvailable,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
	if oid, ok := objectID(c.ID); ok {
		doc.ID = oid
	}
	if oid, ok := objectID(c.BootcampID); ok {
		doc.Bootcamp = oid
	}

	return doc
}

func (d *courseDocument) toEntity() *entity.Course {
	return &entity.Course{
		ID:                   hexOrEmpty(d.ID),
		Title:                d.Title,
		Description:          d.Description,
		Weeks:                d.Weeks,
		Tuition:              d.Tuition,
		MinimumSkill:         entity.Skill(d.MinimumSkill),
		ScholarshipAvailable: d.ScholarshipAvailable,
		BootcampID:           hexOrEmpty(d.Bootcamp),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func fromUserEntity(u *entity.User) *userDocument {
	doc := &userDocument{
		Username:            u.Username,
		Email:               u.Email,
		Password:            u.PasswordHash,
		Role:                u.Role.String(),
		ResetPasswordToken:  u.ResetPasswordToken,
		ResetPasswordExpire: u.ResetPasswordExpire,
		CreatedAt:           u.CreatedAt,
	}
	if oid, ok := objectID(u.ID); ok {
		doc.ID = oid
	}

	return doc
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:                  hexOrEmpty(d.ID),
		Username:            d.Username,
		Email:               d.Email,
		PasswordHash:        d.Password,
		Role:                entity.RoleOrDefault(entity.Role(d.Role)),
		ResetPasswordToken:  d.ResetPasswordToken,
		ResetPasswordExpire: d.ResetPasswordExpire,
		CreatedAt:           d.CreatedAt,
	}
}
