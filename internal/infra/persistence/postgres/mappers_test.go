package postgres

import (
	"testing"

	"bootcamper/internal/domain/entity"
	"bootcamper/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootcampMapping_FlattensLocation(t *testing.T) {
	bootcamp := &entity.Bootcamp{
		ID:   "0b5e3a5c-1d8f-4f3c-9e0d-2a8d1f7c3b11",
		Name: "ModernTech Bootcamp",
		Location: &entity.Location{
			Type:        entity.LocationTypePoint,
			Coordinates: orb.Point{-71.525909, 41.483657},
			City:        "Kingston",
			Zipcode:     "02881",
		},
		Careers: []entity.Career{entity.CareerUIUX, entity.CareerMobileDevelopment},
		Photo:   entity.DefaultPhoto,
	}

	m := fromBootcampDomain(bootcamp)
	require.NotNil(t, m.Longitude)
	require.NotNil(t, m.Latitude)
	assert.Equal(t, -71.525909, *m.Longitude)
	assert.Equal(t, 41.483657, *m.Latitude)
	assert.Equal(t, "Point", m.LocationType)
	assert.Equal(t, []string{"UI/UX", "Mobile development"}, []string(m.Careers))

	back := toBootcampDomain(m)
	assert.Equal(t, bootcamp.Location, back.Location)
	assert.Equal(t, bootcamp.Careers, back.Careers)
}

func TestBootcampMapping_NoCoordinates(t *testing.T) {
	back := toBootcampDomain(&model.BootcampModel{Name: "No location"})
	assert.Nil(t, back.Location)
}

func TestUserMapping_DefaultRole(t *testing.T) {
	user := toUserDomain(&model.UserModel{Email: "a@b.co", Password: "hash"})
	assert.Equal(t, entity.RoleUser, user.Role)

	m := fromUserDomain(&entity.User{Role: entity.RolePublisher, PasswordHash: "x"})
	assert.Equal(t, "publisher", m.Role)
	assert.Equal(t, "x", m.Password)
}
