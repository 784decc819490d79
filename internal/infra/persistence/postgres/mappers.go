package postgres

import (
	"bootcamper/internal/domain/entity"
	"bootcamper/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/paulmach/orb"
)

func fromBootcampDomain(b *entity.Bootcamp) *model.BootcampModel {
	m := &model.BootcampModel{
		ID:            b.ID,
		Name:          b.Name,
		Slug:          b.Slug,
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Address:       b.Address,
		Careers:       pq.StringArray(entity.CareerStrings(b.Careers)),
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
		lng, lat := l.Lng(), l.Lat()
		m.LocationType = entity.LocationTypePoint
		m.Longitude = &lng
		m.Latitude = &lat
		m.FormattedAddress = l.FormattedAddress
		m.Street = l.Street
		m.City = l.City
		m.State = l.State
		m.Zipcode = l.Zipcode
		m.Country = l.Country
	}

	return m
}

func toBootcampDomain(m *model.BootcampModel) *entity.Bootcamp {
	b := &entity.Bootcamp{
		ID:            m.ID,
		Name:          m.Name,
		Slug:          m.Slug,
		Description:   m.Description,
		Website:       m.Website,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		Careers:       entity.CareersFromStrings(m.Careers),
		AverageRating: m.AverageRating,
		AverageCost:   m.AverageCost,
		Photo:         m.Photo,
		Housing:       m.Housing,
		JobAssistance: m.JobAssistance,
		JobGuarantee:  m.JobGuarantee,
		AcceptGi:      m.AcceptGi,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.Longitude != nil && m.Latitude != nil {
		b.Location = &entity.Location{
			Type:             m.LocationType,
			Coordinates:      orb.Point{*m.Longitude, *m.Latitude},
			FormattedAddress: m.FormattedAddress,
			Street:           m.Street,
			City:             m.City,
			State:            m.State,
			Zipcode:          m.Zipcode,
			Country:          m.Country,
		}
	}

	return b
}

func toBootcampDomains(models []*model.BootcampModel) []*entity.Bootcamp {
	out := make([]*entity.Bootcamp, 0, len(models))
	for _, m := range models {
		out = append(out, toBootcampDomain(m))
	}

	return out
}

func fromCourseDomain(c *entity.Course) *model.CourseModel {
	return &model.CourseModel{
		ID:                   c.ID,
		Title:                c.Title,
		Description:          c.Description,
		Weeks:                c.Weeks,
		Tuition:              c.Tuition,
		MinimumSkill:         string(c.MinimumSkill),
		ScholarshipAvailable: c.ScholarshipAvailable,
		BootcampID:           c.BootcampID,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func toCourseDomain(m *model.CourseModel) *entity.Course {
	return &entity.Course{
		ID:                   m.ID,
		Title:                m.Title,
		Description:          m.Description,
		Weeks:                m.Weeks,
		Tuition:              m.Tuition,
		MinimumSkill:         entity.Skill(m.MinimumSkill),
		ScholarshipAvailable: m.ScholarshipAvailable,
		BootcampID:           m.BootcampID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func toCourseDomains(models []*model.CourseModel) []*entity.Course {
	out := make([]*entity.Course, 0, len(models))
	for _, m := range models {
		out = append(out, toCourseDomain(m))
	}

	return out
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		Password:            u.PasswordHash,
		Role:                u.Role.String(),
		ResetPasswordToken:  u.ResetPasswordToken,
		ResetPasswordExpire: u.ResetPasswordExpire,
		CreatedAt:           u.CreatedAt,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:                  m.ID,
		Username:            m.Username,
		Email:               m.Email,
		PasswordHash:        m.Password,
		Role:                entity.RoleOrDefault(entity.Role(m.Role)),
		ResetPasswordToken:  m.ResetPasswordToken,
		ResetPasswordExpire: m.ResetPasswordExpire,
		CreatedAt:           m.CreatedAt,
	}
}
