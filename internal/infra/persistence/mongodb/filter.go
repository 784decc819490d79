package mongodb

import (
	"strings"

	"bootcamper/internal/domain/query"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// idFields are stored as ObjectIDs rather than strings.
var idFields = map[string]bool{
	query.IDField:        true,
	query.CourseBootcamp: true,
}

var operators = map[query.Operator]string{
	query.OpEq:  "$eq",
	query.OpLt:  "$lt",
	query.OpLte: "$lte",
	query.OpGt:  "$gt",
	query.OpGte: "$gte",
	query.OpIn:  "$in",
}

// buildFilter turns conditions into a filter document, merging operators on the
// same field. ok is false when an identifier condition can never match.
func buildFilter(conditions []query.Condition) (filter bson.D, ok bool) {
	filter = bson.D{}
	positions := make(map[string]int, len(conditions))

	for _, c := range conditions {
		value, valid := filterValue(c)
		if !valid {
			return nil, false
		}

		clause := bson.E{Key: operators[c.Op], Value: value}
		if i, seen := positions[c.Field]; seen {
			existing, _ := filter[i].Value.(bson.D)
			filter[i].Value = append(existing, clause)

			continue
		}

		positions[c.Field] = len(filter)
		filter = append(filter, bson.E{Key: c.Field, Value: bson.D{clause}})
	}

	return filter, true
}

func filterValue(c query.Condition) (any, bool) {
	if !idFields[c.Field] {
		return c.Value, true
	}

	switch v := c.Value.(type) {
	case string:
		oid, ok := objectID(v)

		return oid, ok
	case []any:
		ids := make([]bson.ObjectID, 0, len(v))
		for _, item := range v {
			s, _ := item.(string)
			if oid, ok := objectID(s); ok {
				ids = append(ids, oid)
			}
		}

		return ids, len(ids) > 0
	default:
		return nil, false
	}
}

// buildSort appends _id as a tiebreaker so pages stay stable.
func buildSort(fields []query.SortField) bson.D {
	sort := make(bson.D, 0, len(fields)+1)
	hasID := false
	for _, f := range fields {
		direction := 1
		if f.Desc {
			direction = -1
		}
		sort = append(sort, bson.E{Key: f.Field, Value: direction})
		hasID = hasID || f.Field == query.IDField
	}
	if !hasID {
		sort = append(sort, bson.E{Key: query.IDField, Value: 1})
	}

	return sort
}

// buildProjection drops duplicates and sub-paths of selected parents, which
// the server rejects as path collisions.
func buildProjection(fields []string) bson.D {
	if len(fields) == 0 {
		return nil
	}

	projection := make(bson.D, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if seen[field] || coveredByParent(field, fields) {
			continue
		}
		seen[field] = true
		projection = append(projection, bson.E{Key: field, Value: 1})
	}

	return projection
}

func coveredByParent(field string, fields []string) bool {
	for _, other := range fields {
		if other != field && strings.HasPrefix(field, other+".") {
			return true
		}
	}

	return false
}

func findOptions(q *query.Query) *options.FindOptionsBuilder {
	opts := options.Find().
		SetSort(buildSort(q.Sort)).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))
	if projection := buildProjection(q.Projection()); projection != nil {
		opts.SetProjection(projection)
	}

	return opts
}

// withinRadius matches locations inside the spherical cap; radius is in radians.
func withinRadius(center orb.Point, radius float64) bson.D {
	return bson.D{{Key: "location", Value: bson.D{
		{Key: "$geoWithin", Value: bson.D{
			{Key: "$centerSphere", Value: bson.A{bson.A{center.Lon(), center.Lat()}, radius}},
		}},
	}}}
}
