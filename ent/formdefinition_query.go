// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
	"github.com/formstate/formstate/ent/predicate"
	"github.com/google/uuid"
)

// FormDefinitionQuery is the builder for querying FormDefinition entities.
type FormDefinitionQuery struct {
	config
	ctx           *QueryContext
	order         []formdefinition.OrderOption
	inters        []Interceptor
	predicates    []predicate.FormDefinition
	withBehaviors *FormBehaviorQuery
	withEntries   *FormEntryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FormDefinitionQuery builder.
func (_q *FormDefinitionQuery) Where(ps ...predicate.FormDefinition) *FormDefinitionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FormDefinitionQuery) Limit(limit int) *FormDefinitionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FormDefinitionQuery) Offset(offset int) *FormDefinitionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FormDefinitionQuery) Unique(unique bool) *FormDefinitionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FormDefinitionQuery) Order(o ...formdefinition.OrderOption) *FormDefinitionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBehaviors chains the current query on the "behaviors" edge.
func (_q *FormDefinitionQuery) QueryBehaviors() *FormBehaviorQuery {
	query := (&FormBehaviorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(formdefinition.Table, formdefinition.FieldID, selector),
			sqlgraph.To(formbehavior.Table, formbehavior.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, formdefinition.BehaviorsTable, formdefinition.BehaviorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntries chains the current query on the "entries" edge.
func (_q *FormDefinitionQuery) QueryEntries() *FormEntryQuery {
	query := (&FormEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(formdefinition.Table, formdefinition.FieldID, selector),
			sqlgraph.To(formentry.Table, formentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, formdefinition.EntriesTable, formdefinition.EntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FormDefinition entity from the query.
// Returns a *NotFoundError when no FormDefinition was found.
func (_q *FormDefinitionQuery) First(ctx context.Context) (*FormDefinition, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{formdefinition.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FormDefinitionQuery) FirstX(ctx context.Context) *FormDefinition {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FormDefinition ID from the query.
// Returns a *NotFoundError when no FormDefinition ID was found.
func (_q *FormDefinitionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{formdefinition.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FormDefinitionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FormDefinition entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FormDefinition entity is found.
// Returns a *NotFoundError when no FormDefinition entities are found.
func (_q *FormDefinitionQuery) Only(ctx context.Context) (*FormDefinition, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{formdefinition.Label}
	default:
		return nil, &NotSingularError{formdefinition.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FormDefinitionQuery) OnlyX(ctx context.Context) *FormDefinition {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FormDefinition ID in the query.
// Returns a *NotSingularError when more than one FormDefinition ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FormDefinitionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{formdefinition.Label}
	default:
		err = &NotSingularError{formdefinition.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FormDefinitionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FormDefinitions.
func (_q *FormDefinitionQuery) All(ctx context.Context) ([]*FormDefinition, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FormDefinition, *FormDefinitionQuery]()
	return withInterceptors[[]*FormDefinition](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FormDefinitionQuery) AllX(ctx context.Context) []*FormDefinition {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FormDefinition IDs.
func (_q *FormDefinitionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(formdefinition.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FormDefinitionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FormDefinitionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FormDefinitionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FormDefinitionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FormDefinitionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *FormDefinitionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FormDefinitionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FormDefinitionQuery) Clone() *FormDefinitionQuery {
	if _q == nil {
		return nil
	}
	return &FormDefinitionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]formdefinition.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.FormDefinition{}, _q.predicates...),
		withBehaviors: _q.withBehaviors.Clone(),
		withEntries:   _q.withEntries.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBehaviors tells the query-builder to eager-load the nodes that are connected to
// the "behaviors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FormDefinitionQuery) WithBehaviors(opts ...func(*FormBehaviorQuery)) *FormDefinitionQuery {
	query := (&FormBehaviorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBehaviors = query
	return _q
}

// WithEntries tells the query-builder to eager-load the nodes that are connected to
// the "entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FormDefinitionQuery) WithEntries(opts ...func(*FormEntryQuery)) *FormDefinitionQuery {
	query := (&FormEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntries = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FormDefinition.Query().
//		GroupBy(formdefinition.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FormDefinitionQuery) GroupBy(field string, fields ...string) *FormDefinitionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FormDefinitionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = formdefinition.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.FormDefinition.Query().
//		Select(formdefinition.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *FormDefinitionQuery) Select(fields ...string) *FormDefinitionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FormDefinitionSelect{FormDefinitionQuery: _q}
	sbuild.label = formdefinition.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FormDefinitionSelect configured with the given aggregations.
func (_q *FormDefinitionQuery) Aggregate(fns ...AggregateFunc) *FormDefinitionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FormDefinitionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !formdefinition.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *FormDefinitionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FormDefinition, error) {
	var (
		nodes       = []*FormDefinition{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withBehaviors != nil,
			_q.withEntries != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FormDefinition).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FormDefinition{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withBehaviors; query != nil {
		if err := _q.loadBehaviors(ctx, query, nodes,
			func(n *FormDefinition) { n.Edges.Behaviors = []*FormBehavior{} },
			func(n *FormDefinition, e *FormBehavior) { n.Edges.Behaviors = append(n.Edges.Behaviors, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEntries; query != nil {
		if err := _q.loadEntries(ctx, query, nodes,
			func(n *FormDefinition) { n.Edges.Entries = []*FormEntry{} },
			func(n *FormDefinition, e *FormEntry) { n.Edges.Entries = append(n.Edges.Entries, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FormDefinitionQuery) loadBehaviors(ctx context.Context, query *FormBehaviorQuery, nodes []*FormDefinition, init func(*FormDefinition), assign func(*FormDefinition, *FormBehavior)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*FormDefinition)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.FormBehavior(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(formdefinition.BehaviorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.form_definition_behaviors
		if fk == nil {
			return fmt.Errorf(`foreign-key "form_definition_behaviors" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "form_definition_behaviors" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FormDefinitionQuery) loadEntries(ctx context.Context, query *FormEntryQuery, nodes []*FormDefinition, init func(*FormDefinition), assign func(*FormDefinition, *FormEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*FormDefinition)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.FormEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(formdefinition.EntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.form_definition_entries
		if fk == nil {
			return fmt.Errorf(`foreign-key "form_definition_entries" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "form_definition_entries" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *FormDefinitionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FormDefinitionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(formdefinition.Table, formdefinition.Columns, sqlgraph.NewFieldSpec(formdefinition.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formdefinition.FieldID)
		for i := range fields {
			if fields[i] != formdefinition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *FormDefinitionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(formdefinition.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = formdefinition.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FormDefinitionGroupBy is the group-by builder for FormDefinition entities.
type FormDefinitionGroupBy struct {
	selector
	build *FormDefinitionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FormDefinitionGroupBy) Aggregate(fns ...AggregateFunc) *FormDefinitionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FormDefinitionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FormDefinitionQuery, *FormDefinitionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FormDefinitionGroupBy) sqlScan(ctx context.Context, root *FormDefinitionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FormDefinitionSelect is the builder for selecting fields of FormDefinition entities.
type FormDefinitionSelect struct {
	*FormDefinitionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FormDefinitionSelect) Aggregate(fns ...AggregateFunc) *FormDefinitionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FormDefinitionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FormDefinitionQuery, *FormDefinitionSelect](ctx, _s.FormDefinitionQuery, _s, _s.inters, v)
}

func (_s *FormDefinitionSelect) sqlScan(ctx context.Context, root *FormDefinitionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
