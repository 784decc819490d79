package postgres

import (
	"slices"

	"bootcamper/internal/domain/query"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// columnMap maps query field names onto table columns.
type columnMap struct {
	columns map[string][]string
	arrays  map[string]bool
	ids     map[string]bool
}

var locationColumns = []string{
	"formatted_address", "location_type", "longitude", "latitude",
	"street", "city", "state", "zipcode", "country",
}

var bootcampColumns = columnMap{
	columns: map[string][]string{
		query.IDField:               {"id"},
		query.BootcampName:          {"name"},
		query.BootcampSlug:          {"slug"},
		query.BootcampDescription:   {"description"},
		query.BootcampWebsite:       {"website"},
		query.BootcampPhone:         {"phone"},
		query.BootcampEmail:         {"email"},
		query.BootcampAddress:       {"address"},
		query.BootcampLocation:      locationColumns,
		"location.street":           {"street"},
		"location.city":             {"city"},
		"location.state":            {"state"},
		"location.zipcode":          {"zipcode"},
		"location.country":          {"country"},
		"location.formattedAddress": {"formatted_address"},
		query.BootcampCareers:       {"careers"},
		query.BootcampAverageRating: {"average_rating"},
		query.BootcampAverageCost:   {"average_cost"},
		query.BootcampPhoto:         {"photo"},
		query.BootcampHousing:       {"housing"},
		query.BootcampJobAssistance: {"job_assistance"},
		query.BootcampJobGuarantee:  {"job_guarantee"},
		query.BootcampAcceptGi:      {"accept_gi"},
		query.FieldCreatedAt:        {"created_at"},
		query.FieldUpdatedAt:        {"updated_at"},
	},
	arrays: map[string]bool{query.BootcampCareers: true},
	ids:    map[string]bool{query.IDField: true},
}

var courseColumns = columnMap{
	columns: map[string][]string{
		query.IDField:                    {"id"},
		query.CourseTitle:                {"title"},
		query.CourseDescription:          {"description"},
		query.CourseWeeks:                {"weeks"},
		query.CourseTuition:              {"tuition"},
		query.CourseMinimumSkill:         {"minimum_skill"},
		query.CourseScholarshipAvailable: {"scholarship_available"},
		query.CourseBootcamp:             {"bootcamp_id"},
		query.FieldCreatedAt:             {"created_at"},
		query.FieldUpdatedAt:             {"updated_at"},
	},
	ids: map[string]bool{query.IDField: true, query.CourseBootcamp: true},
}

// where builds the condition expressions. ok is false when an identifier
// condition holds no valid UUID and so can never match.
func (m columnMap) where(conditions []query.Condition) (exprs []clause.Expression, ok bool) {
	exprs = make([]clause.Expression, 0, len(conditions))
	for _, c := range conditions {
		columns, known := m.columns[c.Field]
		if !known {
			continue
		}
		column := clause.Column{Name: columns[0]}

		value := c.Value
		if m.ids[c.Field] {
			if value, ok = validIDs(value); !ok {
				return nil, false
			}
		}

		if m.arrays[c.Field] {
			exprs = append(exprs, arrayExpr(column, c.Op, value))

			continue
		}

		switch c.Op {
		case query.OpEq:
			exprs = append(exprs, clause.Eq{Column: column, Value: value})
		case query.OpLt:
			exprs = append(exprs, clause.Lt{Column: column, Value: value})
		case query.OpLte:
			exprs = append(exprs, clause.Lte{Column: column, Value: value})
		case query.OpGt:
			exprs = append(exprs, clause.Gt{Column: column, Value: value})
		case query.OpGte:
			exprs = append(exprs, clause.Gte{Column: column, Value: value})
		case query.OpIn:
			values, _ := value.([]any)
			exprs = append(exprs, clause.IN{Column: column, Values: values})
		}
	}

	return exprs, true
}

// arrayExpr matches membership for eq and overlap for in.
func arrayExpr(column clause.Column, op query.Operator, value any) clause.Expression {
	if op == query.OpIn {
		values, _ := value.([]any)
		items := make(pq.StringArray, 0, len(values))
		for _, v := range values {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}

		return clause.Expr{SQL: "? && ?", Vars: []any{column, items}}
	}

	return clause.Expr{SQL: "? = ANY(?)", Vars: []any{value, column}}
}

func validIDs(value any) (any, bool) {
	switch v := value.(type) {
	case string:
		return v, isUUID(v)
	case []any:
		kept := make([]any, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && isUUID(s) {
				kept = append(kept, s)
			}
		}

		return kept, len(kept) > 0
	default:
		return nil, false
	}
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)

	return err == nil
}

// orderBy appends id as a tiebreaker so pages stay stable.
func (m columnMap) orderBy(fields []query.SortField) clause.OrderBy {
	order := clause.OrderBy{}
	hasID := false
	for _, f := range fields {
		columns, ok := m.columns[f.Field]
		if !ok {
			continue
		}
		order.Columns = append(order.Columns, clause.OrderByColumn{Column: clause.Column{Name: columns[0]}, Desc: f.Desc})
		hasID = hasID || f.Field == query.IDField
	}
	if !hasID {
		order.Columns = append(order.Columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	return order
}

// selectColumns returns nil when every column is selected.
func (m columnMap) selectColumns(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}

	var out []string
	for _, f := range fields {
		for _, column := range m.columns[f] {
			if !slices.Contains(out, column) {
				out = append(out, column)
			}
		}
	}

	return out
}

// apply scopes db to the query's filter, order, projection and page. ok is false
// when the filter can never match.
func (m columnMap) apply(db *gorm.DB, q *query.Query) (*gorm.DB, bool) {
	exprs, ok := m.where(q.Conditions)
	if !ok {
		return db, false
	}
	if len(exprs) > 0 {
		db = db.Clauses(clause.Where{Exprs: exprs})
	}
	if columns := m.selectColumns(q.Projection()); columns != nil {
		db = db.Select(columns)
	}

	return db.Clauses(m.orderBy(q.Sort)).Offset(q.Skip()).Limit(q.Limit), true
}
