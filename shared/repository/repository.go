package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"linka/infras/otel"
	"linka/infras/postgres"
	"linka/shared/constant"
	"linka/shared/dto"
	"linka/shared/logger"
	"linka/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// ArgNow is filled with the current time for every ExecTx statement.
const ArgNow = "now"

var errRequiredFilter = errors.New("required filter")

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Repository is a generic sqlx repository over one table. Columns come from
// the `db` tags of T, including embedded structs such as model.Metadata.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
	insertQuery   string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	columns := dbColumns(reflect.TypeFor[T]())

	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", ")),
	}
}

func (repo *Repository[T]) span(ctx context.Context, op, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))

	if query != constant.Empty {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	}

	return ctx, scope
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, "Insert", repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	return repo.insert(ctx, "InsertTx", tx, model)
}

func (repo *Repository[T]) insert(ctx context.Context, op string, exec execer, model T) error {
	ctx, scope := repo.span(ctx, op, repo.insertQuery)
	defer scope.End()

	if _, err := exec.NamedExecContext(ctx, repo.insertQuery, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.selectList(columns), repo.table, where)

	ctx, scope := repo.span(ctx, "Get", query)
	defer scope.End()

	var model T

	err := repo.readOne(ctx, query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.where(filter)

	var tail strings.Builder

	if params.SortBy != constant.Empty && params.SortDir != constant.Empty {
		fmt.Fprintf(&tail, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		tail.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			tail.WriteString(" OFFSET :offset")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s%s", repo.selectList(columns), repo.table, where, tail.String())

	ctx, scope := repo.span(ctx, "GetAll", query)
	defer scope.End()

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "list data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.where(filter)
	if where == constant.Empty {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)

	ctx, scope := repo.span(ctx, "Exist", query)
	defer scope.End()

	var exist bool
	if err := repo.readOne(ctx, query, args, &exist); err != nil {
		return false, repo.fail(scope, "check existence", err)
	}

	return exist, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.where(filter)
	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s%s", repo.primaryColumn, repo.table, where)

	ctx, scope := repo.span(ctx, "Count", query)
	defer scope.End()

	var count int
	if err := repo.readOne(ctx, query, args, &count); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, "Update", repo.db.Write, fields, filter)

	return err
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, "UpdateTx", tx, fields, filter)

	return err
}

// UpdateCountTx reports how many rows matched, so a filter on the current
// status turns the update into a compare-and-set.
func (repo *Repository[T]) UpdateCountTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, "UpdateCountTx", tx, fields, filter)
}

func (repo *Repository[T]) update(ctx context.Context, op string, exec execer, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	where, args := repo.where(filter)
	if where == constant.Empty {
		return 0, errRequiredFilter
	}

	assignments := make([]string, 0, len(fields))

	for _, col := range slices.Sorted(maps.Keys(fields)) {
		if _, clash := args[col]; clash {
			return 0, fmt.Errorf("update column %q collides with a filter argument (%s)", col, repo.entity)
		}

		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)
	maps.Copy(args, fields)

	return repo.exec(ctx, op, exec, query, args)
}

// ExecTx runs a hand-written named statement inside tx and returns the
// affected row count. The :now argument is always available.
func (repo *Repository[T]) ExecTx(ctx context.Context, tx *sqlx.Tx, op, query string, args map[string]any) (int64, error) {
	args[ArgNow] = timezone.Now()

	return repo.exec(ctx, op, tx, query, args)
}

func (repo *Repository[T]) exec(ctx context.Context, op string, exec execer, query string, args map[string]any) (int64, error) {
	ctx, scope := repo.span(ctx, op, query)
	defer scope.End()

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "execute "+op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

func (repo *Repository[T]) readOne(ctx context.Context, query string, args map[string]any, dest any) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) selectList(only []string) string {
	if len(only) == 0 {
		return strings.Join(repo.columns, ", ")
	}

	picked := make([]string, 0, len(only))
	for _, col := range repo.columns {
		if slices.Contains(only, col) {
			picked = append(picked, col)
		}
	}

	return strings.Join(picked, ", ")
}

func (repo *Repository[T]) where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == constant.Empty {
		return constant.Empty, map[string]any{}
	}

	return " WHERE " + clause, args
}

func dbColumns(t reflect.Type) []string {
	var columns []string

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != constant.Empty && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}
