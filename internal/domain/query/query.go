package query

import (
	"math"
	"net/url"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	domainerrors "bootcamper/internal/domain/errors"
)

const (
	// DefaultPage is used when page is missing or malformed.
	DefaultPage = 1
	// DefaultLimit is used when limit is missing, malformed or below one.
	DefaultLimit = 10

	keySelect   = "select"
	keySort     = "sort"
	keyPage     = "page"
	keyLimit    = "limit"
	keyPopulate = "populate"
)

// Operator is a structured comparison understood by every store.
type Operator string

const (
	OpEq  Operator = "eq"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpIn  Operator = "in"
)

var (
	reservedKeys = []string{keySelect, keySort, keyPage, keyLimit, keyPopulate}
	operatorKey  = regexp.MustCompile(`^([A-Za-z0-9_.]+)\[([a-z]+)\]$`)
	operators    = map[string]Operator{
		"lt":  OpLt,
		"lte": OpLte,
		"gt":  OpGt,
		"gte": OpGte,
		"in":  OpIn,
	}
)

// Condition is one filter clause. Value holds the converted value, or []any for OpIn.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// SortField orders results by one field.
type SortField struct {
	Field string
	Desc  bool
}

// Query is the structured form of a list request.
type Query struct {
	Conditions []Condition
	Select     []string
	Sort       []SortField
	Populate   []string
	Page       int
	Limit      int
}

// New returns an unfiltered query with default paging and newest-first order.
func New() *Query {
	return &Query{
		Sort:  defaultSort(),
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}
}

// Skip is the number of records before the requested page.
func (q *Query) Skip() int {
	return (q.Page - 1) * q.Limit
}

// Where appends a condition and returns the query for chaining.
func (q *Query) Where(field string, op Operator, value any) *Query {
	q.Conditions = append(q.Conditions, Condition{Field: field, Op: op, Value: value})

	return q
}

// Populates reports whether the relation was requested.
func (q *Query) Populates(relation string) bool {
	return slices.Contains(q.Populate, relation)
}

// Projection returns the selected fields including the identifier, or nil when everything is selected.
func (q *Query) Projection() []string {
	if len(q.Select) == 0 {
		return nil
	}
	if slices.Contains(q.Select, IDField) {
		return q.Select
	}

	return append([]string{IDField}, q.Select...)
}

// Parse converts query-string values into a Query validated against the schema.
func Parse(values url.Values, schema *Schema) (*Query, error) {
	q := New()
	q.Page = parsePositive(values.Get(keyPage), DefaultPage)
	q.Limit = parsePositive(values.Get(keyLimit), DefaultLimit)
	// page*limit must stay representable for Skip and the pagination neighbours.
	q.Page = min(q.Page, math.MaxInt/q.Limit)

	if raw := values.Get(keySelect); raw != "" {
		fields, err := parseFieldList(raw, schema)
		if err != nil {
			return nil, err
		}
		q.Select = fields
	}

	if raw := values.Get(keySort); raw != "" {
		sortFields, err := parseSort(raw, schema)
		if err != nil {
			return nil, err
		}
		q.Sort = sortFields
	}

	if raw := values.Get(keyPopulate); raw != "" {
		for _, relation := range splitList(raw) {
			if !schema.CanPopulate(relation) {
				return nil, domainerrors.ErrInvalidQuery.WithMessagef("Cannot populate %s", relation)
			}
			q.Populate = append(q.Populate, relation)
		}
	}

	conditions, err := parseConditions(values, schema)
	if err != nil {
		return nil, err
	}
	q.Conditions = conditions

	return q, nil
}

func defaultSort() []SortField {
	return []SortField{{Field: FieldCreatedAt, Desc: true}}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}

	return n
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func parseFieldList(raw string, schema *Schema) ([]string, error) {
	fields := splitList(raw)
	for _, field := range fields {
		if _, ok := schema.Kind(field); !ok {
			return nil, domainerrors.ErrInvalidQuery.WithMessagef("Unknown field %s", field)
		}
	}

	return fields, nil
}

func parseSort(raw string, schema *Schema) ([]SortField, error) {
	var out []SortField
	for _, item := range splitList(raw) {
		field, desc := strings.CutPrefix(item, "-")
		if _, ok := schema.Kind(field); !ok {
			return nil, domainerrors.ErrInvalidQuery.WithMessagef("Unknown sort field %s", field)
		}
		out = append(out, SortField{Field: field, Desc: desc})
	}
	if len(out) == 0 {
		return defaultSort(), nil
	}

	return out, nil
}

func parseConditions(values url.Values, schema *Schema) ([]Condition, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		if !slices.Contains(reservedKeys, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	conditions := make([]Condition, 0, len(keys))
	for _, key := range keys {
		field, op, err := splitKey(key)
		if err != nil {
			return nil, err
		}

		kind, ok := schema.Kind(field)
		if !ok || kind == KindObject {
			return nil, domainerrors.ErrInvalidQuery.WithMessagef("Unknown filter field %s", field)
		}

		raw := values[key]
		if op == OpEq && len(raw) > 1 {
			op = OpIn
			raw = []string{strings.Join(raw, ",")}
		}

		value, err := convertValue(field, kind, op, raw[len(raw)-1])
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, Condition{Field: field, Op: op, Value: value})
	}

	return conditions, nil
}

func splitKey(key string) (string, Operator, error) {
	match := operatorKey.FindStringSubmatch(key)
	if match == nil {
		if strings.ContainsAny(key, "[]") {
			return "", "", domainerrors.ErrInvalidQuery.WithMessagef("Malformed filter %s", key)
		}

		return key, OpEq, nil
	}

	op, ok := operators[match[2]]
	if !ok {
		return "", "", domainerrors.ErrInvalidQuery.WithMessagef("Unsupported operator %s", match[2])
	}

	return match[1], op, nil
}

func convertValue(field string, kind Kind, op Operator, raw string) (any, error) {
	if op == OpIn {
		items := splitList(raw)
		out := make([]any, 0, len(items))
		for _, item := range items {
			v, err := convertScalar(field, kind, item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	}

	if op != OpEq && (kind == KindBool || kind == KindStringList || kind == KindID) {
		return nil, domainerrors.ErrInvalidQuery.WithMessagef("Operator %s is not supported for %s", op, field)
	}

	return convertScalar(field, kind, raw)
}

func convertScalar(field string, kind Kind, raw string) (any, error) {
	switch kind {
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, domainerrors.ErrInvalidQuery.WithMessagef("%s must be a number", field)
		}

		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidQuery.WithMessagef("%s must be true or false", field)
		}

		return b, nil
	case KindTime:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidQuery.WithMessagef("%s must be a date", field)
		}

		return t, nil
	default:
		return raw, nil
	}
}
