package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_NoSelectionReturnsValue(t *testing.T) {
	b := &BootcampResponse{ID: "1", Name: "Devworks"}

	got, err := Project(b, nil)

	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestProject_KeepsSelectedFieldsAndID(t *testing.T) {
	items := []*BootcampResponse{
		{
			ID:          "1",
			Name:        "Devworks",
			Description: "Full stack",
			Careers:     []string{"Web Development"},
			Location:    &LocationResponse{City: "Boston", State: "MA", Coordinates: []float64{-71.1, 42.3}},
			CreatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	got, err := Project(items, []string{"name", "location.city"})
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"_id":"1","name":"Devworks","location":{"city":"Boston"}}]`, string(raw))
}

func TestProject_WholeObjectWinsOverNestedPath(t *testing.T) {
	item := &BootcampResponse{ID: "1", Location: &LocationResponse{City: "Boston", State: "MA"}}

	got, err := Project(item, []string{"location.city", "location"})
	require.NoError(t, err)

	location := got.(map[string]any)["location"].(map[string]any)
	assert.Equal(t, "Boston", location["city"])
	assert.Equal(t, "MA", location["state"])
}

func TestProject_KeepsPopulatedRelation(t *testing.T) {
	courses := []CourseResponse{{ID: "c1", Title: "Front End"}}
	item := &BootcampResponse{ID: "1", Name: "Devworks", Courses: &courses}

	got, err := Project(item, []string{"name"}, "courses")
	require.NoError(t, err)

	m := got.(map[string]any)
	assert.Equal(t, "Devworks", m["name"])
	assert.Len(t, m["courses"], 1)
	assert.NotContains(t, m, "description")
}
