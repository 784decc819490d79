package postgres

import (
	"testing"

	"bootcamper/internal/domain/query"
	"bootcamper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func bootcampSQL(t *testing.T, q *query.Query) (string, bool) {
	t.Helper()

	matched := true
	sql := dryRunDB(t).ToSQL(func(tx *gorm.DB) *gorm.DB {
		scoped, ok := bootcampColumns.apply(tx.Model(&model.BootcampModel{}), q)
		matched = ok

		return scoped.Find(&[]*model.BootcampModel{})
	})

	return sql, matched
}

func TestBootcampColumns_Apply(t *testing.T) {
	q := query.New().
		Where(query.BootcampAverageCost, query.OpGte, 5000.0).
		Where("location.state", query.OpEq, "MA").
		Where(query.BootcampCareers, query.OpEq, "Business")
	q.Page = 3
	q.Limit = 5

	sql, ok := bootcampSQL(t, q)
	require.True(t, ok)

	assert.Contains(t, sql, `FROM "bootcamps"`)
	assert.Contains(t, sql, `"average_cost" >= 5000`)
	assert.Contains(t, sql, `"state" = 'MA'`)
	assert.Contains(t, sql, `'Business' = ANY("careers")`)
	assert.Contains(t, sql, `ORDER BY "created_at" DESC,"id"`)
	assert.Contains(t, sql, "LIMIT 5")
	assert.Contains(t, sql, "OFFSET 10")
}

func TestBootcampColumns_InOnCareersUsesOverlap(t *testing.T) {
	q := query.New().Where(query.BootcampCareers, query.OpIn, []any{"Business", "UI/UX"})

	sql, ok := bootcampSQL(t, q)
	require.True(t, ok)
	assert.Contains(t, sql, `"careers" && `)
	assert.Contains(t, sql, "Business")
	assert.Contains(t, sql, "UI/UX")
}

func TestBootcampColumns_SelectExpandsLocation(t *testing.T) {
	q := query.New()
	q.Select = []string{query.BootcampName, query.BootcampLocation}

	assert.Equal(t,
		append([]string{"id", "name"}, locationColumns...),
		bootcampColumns.selectColumns(q.Projection()),
	)
	assert.Nil(t, bootcampColumns.selectColumns(nil))
}

func TestCourseColumns_IDConditions(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name       string
		conditions []query.Condition
		wantOK     bool
		wantLen    int
	}{
		{
			name:       "valid bootcamp id",
			conditions: []query.Condition{{Field: query.CourseBootcamp, Op: query.OpEq, Value: id}},
			wantOK:     true,
			wantLen:    1,
		},
		{
			name:       "malformed id never matches",
			conditions: []query.Condition{{Field: query.IDField, Op: query.OpEq, Value: "5d713995b721c3bb38c1f5d0"}},
			wantOK:     false,
		},
		{
			name:       "in keeps valid ids",
			conditions: []query.Condition{{Field: query.CourseBootcamp, Op: query.OpIn, Value: []any{"bad", id}}},
			wantOK:     true,
			wantLen:    1,
		},
		{
			name: "skill in list",
			conditions: []query.Condition{
				{Field: query.CourseMinimumSkill, Op: query.OpIn, Value: []any{"beginner", "advanced"}},
				{Field: query.CourseTuition, Op: query.OpLt, Value: 10000.0},
			},
			wantOK:  true,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprs, ok := courseColumns.where(tt.conditions)
			require.Equal(t, tt.wantOK, ok)
			assert.Len(t, exprs, tt.wantLen)
		})
	}
}

func TestCourseColumns_SQL(t *testing.T) {
	id := uuid.NewString()
	q := query.New().
		Where(query.CourseBootcamp, query.OpEq, id).
		Where(query.CourseMinimumSkill, query.OpIn, []any{"beginner", "advanced"})
	q.Sort = []query.SortField{{Field: query.CourseTuition}}

	sql := dryRunDB(t).ToSQL(func(tx *gorm.DB) *gorm.DB {
		scoped, _ := courseColumns.apply(tx.Model(&model.CourseModel{}), q)

		return scoped.Find(&[]*model.CourseModel{})
	})

	assert.Contains(t, sql, `"bootcamp_id" = '`+id+`'`)
	assert.Contains(t, sql, `"minimum_skill" IN ('beginner','advanced')`)
	assert.Contains(t, sql, `ORDER BY "tuition","id"`)
}
