// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strconv"
	"strings"

	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/repository"
	"groove/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// crud is the shared GORM implementation behind every entity repository.
// M is the persistence model, E the domain entity; toEntity/toModel map
// between them. columns whitelists the filterable/sortable API field names
// and maps them onto table columns.
type crud[M any, E any] struct {
	db       *gorm.DB
	toEntity func(*M) *E
	toModel  func(*E) *M
	columns  map[string]string
	notFound error
}

// Create persists a new entity and copies the generated id and timestamps back.
func (r *crud[M, E]) Create(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateConstraintError(err)
	}
	*e = *r.toEntity(m)

	return nil
}

// FindByID retrieves a single entity, mapping a miss to the repository's
// not-found sentinel.
func (r *crud[M, E]) FindByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}

		return nil, errors.Wrap(err, "failed to find by id")
	}

	return r.toEntity(&m), nil
}

// Find returns one page of entities matching the query. Filter keys outside
// the column whitelist are ignored; a malformed UUID value against an id
// column yields an empty page rather than a cast error.
func (r *crud[M, E]) Find(ctx context.Context, q repository.Query) (*repository.Page[E], error) {
	limit := normalizeLimit(q.Limit)
	page := normalizePage(q.Page)

	tx := r.db.WithContext(ctx).Model(new(M))
	for field, value := range q.Filter {
		column, ok := r.columns[field]
		if !ok {
			continue
		}
		if !columnValueOK(column, value) {
			return &repository.Page[E]{Results: []*E{}, Page: page, Limit: limit}, nil
		}
		tx = tx.Where(column+" = ?", value)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count results")
	}

	for _, clause := range r.orderClauses(q.SortBy) {
		tx = tx.Order(clause)
	}

	var ms []*M
	if err := tx.Offset((page - 1) * limit).Limit(limit).Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find results")
	}

	results := make([]*E, 0, len(ms))
	for _, m := range ms {
		results = append(results, r.toEntity(m))
	}

	return &repository.Page[E]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages(total, limit),
		TotalResults: total,
	}, nil
}

// normalizeLimit applies the default page size and the hard cap.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}

	return limit
}

// normalizePage treats anything below the first page as the first page.
func normalizePage(page int) int {
	if page <= 0 {
		return 1
	}

	return page
}

// totalPages is ceil(total / limit).
func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// Update saves the full entity state back to its row.
func (r *crud[M, E]) Update(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateConstraintError(err)
	}
	*e = *r.toEntity(m)

	return nil
}

// Delete removes an entity row by id.
func (r *crud[M, E]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete")
	}

	return nil
}

// orderClauses parses a "field:asc|desc" comma-separated sort list against the
// column whitelist. Unknown fields are dropped; no valid key falls back to
// insertion order.
func (r *crud[M, E]) orderClauses(sortBy string) []string {
	clauses := make([]string, 0, 2)
	for _, key := range strings.Split(sortBy, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		field, direction, _ := strings.Cut(key, ":")
		column, ok := r.columns[field]
		if !ok {
			continue
		}

		if strings.EqualFold(direction, "desc") {
			clauses = append(clauses, column+" DESC")
		} else {
			clauses = append(clauses, column+" ASC")
		}
	}

	if len(clauses) == 0 {
		return []string{"created_at ASC"}
	}

	return clauses
}

// findAllBy loads every row matching one column, used by the cascade helpers.
func findAllBy[M any, E any](ctx context.Context, r *crud[M, E], column string, id uuid.UUID) ([]*E, error) {
	var ms []*M
	if err := r.db.WithContext(ctx).Find(&ms, column+" = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find by "+column)
	}

	results := make([]*E, 0, len(ms))
	for _, m := range ms {
		results = append(results, r.toEntity(m))
	}

	return results, nil
}

// deleteAllBy removes every row matching one column, used by the cascade helpers.
func deleteAllBy[M any, E any](ctx context.Context, r *crud[M, E], column string, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(new(M), column+" = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete by "+column)
	}

	return nil
}

func isIDColumn(column string) bool {
	return column == "id" || strings.HasSuffix(column, "_id")
}

// integerColumns and booleanColumns list every non-text filterable column in
// the schema, so unparseable values never reach postgres as a cast error.
var (
	integerColumns = map[string]struct{}{
		"release_year": {},
		"year":         {},
		"stock":        {},
	}
	floatColumns = map[string]struct{}{
		"price": {},
	}
	booleanColumns = map[string]struct{}{
		"new":   {},
		"alive": {},
	}
)

// columnValueOK reports whether a filter value can be compared against its
// column's type. A mismatch reads the same as the malformed-UUID case: no row
// can match, so the caller returns an empty page.
func columnValueOK(column, value string) bool {
	switch {
	case isIDColumn(column):
		_, err := uuid.Parse(value)

		return err == nil
	case hasColumn(integerColumns, column):
		_, err := strconv.Atoi(value)

		return err == nil
	case hasColumn(floatColumns, column):
		_, err := strconv.ParseFloat(value, 64)

		return err == nil
	case hasColumn(booleanColumns, column):
		_, err := strconv.ParseBool(value)

		return err == nil
	default:
		return true
	}
}

func hasColumn(set map[string]struct{}, column string) bool {
	_, ok := set[column]

	return ok
}

// translateConstraintError converts storage constraint violations into the
// application error taxonomy. Duplicate-key and foreign-key violations are
// schema constraint failures, so they surface as 400s.
func translateConstraintError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrDuplicateKey.WrapMessage("unique constraint violated")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid foreign key reference")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required field")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "unexpected persistence failure")
	}
}
