package mongodb

import (
	"testing"
	"time"

	"bootcamper/internal/domain/query"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildFilter(t *testing.T) {
	oid := bson.NewObjectID()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		conditions []query.Condition
		want       bson.D
		wantOK     bool
	}{
		{
			name:       "no conditions",
			conditions: nil,
			want:       bson.D{},
			wantOK:     true,
		},
		{
			name: "exact match on nested field",
			conditions: []query.Condition{
				{Field: "location.state", Op: query.OpEq, Value: "MA"},
			},
			want:   bson.D{{Key: "location.state", Value: bson.D{{Key: "$eq", Value: "MA"}}}},
			wantOK: true,
		},
		{
			name: "range on one field is merged",
			conditions: []query.Condition{
				{Field: "averageCost", Op: query.OpGte, Value: 5000.0},
				{Field: "averageCost", Op: query.OpLt, Value: 10000.0},
				{Field: "createdAt", Op: query.OpGt, Value: since},
			},
			want: bson.D{
				{Key: "averageCost", Value: bson.D{{Key: "$gte", Value: 5000.0}, {Key: "$lt", Value: 10000.0}}},
				{Key: "createdAt", Value: bson.D{{Key: "$gt", Value: since}}},
			},
			wantOK: true,
		},
		{
			name: "in on careers",
			conditions: []query.Condition{
				{Field: "careers", Op: query.OpIn, Value: []any{"Business", "UI/UX"}},
			},
			want:   bson.D{{Key: "careers", Value: bson.D{{Key: "$in", Value: []any{"Business", "UI/UX"}}}}},
			wantOK: true,
		},
		{
			name: "bootcamp id is converted",
			conditions: []query.Condition{
				{Field: "bootcamp", Op: query.OpEq, Value: oid.Hex()},
			},
			want:   bson.D{{Key: "bootcamp", Value: bson.D{{Key: "$eq", Value: oid}}}},
			wantOK: true,
		},
		{
			name: "in on ids drops malformed entries",
			conditions: []query.Condition{
				{Field: "_id", Op: query.OpIn, Value: []any{"nope", oid.Hex()}},
			},
			want:   bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: []bson.ObjectID{oid}}}}},
			wantOK: true,
		},
		{
			name: "malformed id never matches",
			conditions: []query.Condition{
				{Field: "_id", Op: query.OpEq, Value: "123"},
			},
			wantOK: false,
		},
		{
			name: "in with only malformed ids never matches",
			conditions: []query.Condition{
				{Field: "bootcamp", Op: query.OpIn, Value: []any{"a", "b"}},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := buildFilter(tt.conditions)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildSort(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}},
		buildSort([]query.SortField{{Field: "createdAt", Desc: true}}),
	)
	assert.Equal(t,
		bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: -1}},
		buildSort([]query.SortField{{Field: "name"}, {Field: "_id", Desc: true}}),
	)
}

func TestBuildProjection(t *testing.T) {
	assert.Nil(t, buildProjection(nil))
	assert.Equal(t,
		bson.D{{Key: "_id", Value: 1}, {Key: "name", Value: 1}, {Key: "location", Value: 1}},
		buildProjection([]string{"_id", "name", "location.city", "location", "name"}),
	)
}

func TestWithinRadius(t *testing.T) {
	got := withinRadius(orb.Point{-71.1, 42.3}, 0.0025)
	want := bson.D{{Key: "location", Value: bson.D{
		{Key: "$geoWithin", Value: bson.D{
			{Key: "$centerSphere", Value: bson.A{bson.A{-71.1, 42.3}, 0.0025}},
		}},
	}}}
	assert.Equal(t, want, got)
}
