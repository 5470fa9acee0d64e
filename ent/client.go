// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/formstate/formstate/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/ent/formentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FormBehavior is the client for interacting with the FormBehavior builders.
	FormBehavior *FormBehaviorClient
	// FormDefinition is the client for interacting with the FormDefinition builders.
	FormDefinition *FormDefinitionClient
	// FormEntry is the client for interacting with the FormEntry builders.
	FormEntry *FormEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FormBehavior = NewFormBehaviorClient(c.config)
	c.FormDefinition = NewFormDefinitionClient(c.config)
	c.FormEntry = NewFormEntryClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		FormBehavior:   NewFormBehaviorClient(cfg),
		FormDefinition: NewFormDefinitionClient(cfg),
		FormEntry:      NewFormEntryClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		FormBehavior:   NewFormBehaviorClient(cfg),
		FormDefinition: NewFormDefinitionClient(cfg),
		FormEntry:      NewFormEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FormBehavior.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.FormBehavior.Use(hooks...)
	c.FormDefinition.Use(hooks...)
	c.FormEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FormBehavior.Intercept(interceptors...)
	c.FormDefinition.Intercept(interceptors...)
	c.FormEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FormBehaviorMutation:
		return c.FormBehavior.mutate(ctx, m)
	case *FormDefinitionMutation:
		return c.FormDefinition.mutate(ctx, m)
	case *FormEntryMutation:
		return c.FormEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FormBehaviorClient is a client for the FormBehavior schema.
type FormBehaviorClient struct {
	config
}

// NewFormBehaviorClient returns a client for the FormBehavior from the given config.
func NewFormBehaviorClient(c config) *FormBehaviorClient {
	return &FormBehaviorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `formbehavior.Hooks(f(g(h())))`.
func (c *FormBehaviorClient) Use(hooks ...Hook) {
	c.hooks.FormBehavior = append(c.hooks.FormBehavior, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `formbehavior.Intercept(f(g(h())))`.
func (c *FormBehaviorClient) Intercept(interceptors ...Interceptor) {
	c.inters.FormBehavior = append(c.inters.FormBehavior, interceptors...)
}

// Create returns a builder for creating a FormBehavior entity.
func (c *FormBehaviorClient) Create() *FormBehaviorCreate {
	mutation := newFormBehaviorMutation(c.config, OpCreate)
	return &FormBehaviorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FormBehavior entities.
func (c *FormBehaviorClient) CreateBulk(builders ...*FormBehaviorCreate) *FormBehaviorCreateBulk {
	return &FormBehaviorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FormBehaviorClient) MapCreateBulk(slice any, setFunc func(*FormBehaviorCreate, int)) *FormBehaviorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FormBehaviorCreateBulk{err: fmt.Errorf("calling to FormBehaviorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FormBehaviorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FormBehaviorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FormBehavior.
func (c *FormBehaviorClient) Update() *FormBehaviorUpdate {
	mutation := newFormBehaviorMutation(c.config, OpUpdate)
	return &FormBehaviorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FormBehaviorClient) UpdateOne(_m *FormBehavior) *FormBehaviorUpdateOne {
	mutation := newFormBehaviorMutation(c.config, OpUpdateOne, withFormBehavior(_m))
	return &FormBehaviorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FormBehaviorClient) UpdateOneID(id uuid.UUID) *FormBehaviorUpdateOne {
	mutation := newFormBehaviorMutation(c.config, OpUpdateOne, withFormBehaviorID(id))
	return &FormBehaviorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FormBehavior.
func (c *FormBehaviorClient) Delete() *FormBehaviorDelete {
	mutation := newFormBehaviorMutation(c.config, OpDelete)
	return &FormBehaviorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FormBehaviorClient) DeleteOne(_m *FormBehavior) *FormBehaviorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FormBehaviorClient) DeleteOneID(id uuid.UUID) *FormBehaviorDeleteOne {
	builder := c.Delete().Where(formbehavior.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FormBehaviorDeleteOne{builder}
}

// Query returns a query builder for FormBehavior.
func (c *FormBehaviorClient) Query() *FormBehaviorQuery {
	return &FormBehaviorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFormBehavior},
		inters: c.Interceptors(),
	}
}

// Get returns a FormBehavior entity by its id.
func (c *FormBehaviorClient) Get(ctx context.Context, id uuid.UUID) (*FormBehavior, error) {
	return c.Query().Where(formbehavior.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FormBehaviorClient) GetX(ctx context.Context, id uuid.UUID) *FormBehavior {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryForm queries the form edge of a FormBehavior.
func (c *FormBehaviorClient) QueryForm(_m *FormBehavior) *FormDefinitionQuery {
	query := (&FormDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(formbehavior.Table, formbehavior.FieldID, id),
			sqlgraph.To(formdefinition.Table, formdefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, formbehavior.FormTable, formbehavior.FormColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FormBehaviorClient) Hooks() []Hook {
	return c.hooks.FormBehavior
}

// Interceptors returns the client interceptors.
func (c *FormBehaviorClient) Interceptors() []Interceptor {
	return c.inters.FormBehavior
}

func (c *FormBehaviorClient) mutate(ctx context.Context, m *FormBehaviorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FormBehaviorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FormBehaviorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FormBehaviorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FormBehaviorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FormBehavior mutation op: %q", m.Op())
	}
}

// FormDefinitionClient is a client for the FormDefinition schema.
type FormDefinitionClient struct {
	config
}

// NewFormDefinitionClient returns a client for the FormDefinition from the given config.
func NewFormDefinitionClient(c config) *FormDefinitionClient {
	return &FormDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `formdefinition.Hooks(f(g(h())))`.
func (c *FormDefinitionClient) Use(hooks ...Hook) {
	c.hooks.FormDefinition = append(c.hooks.FormDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `formdefinition.Intercept(f(g(h())))`.
func (c *FormDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FormDefinition = append(c.inters.FormDefinition, interceptors...)
}

// Create returns a builder for creating a FormDefinition entity.
func (c *FormDefinitionClient) Create() *FormDefinitionCreate {
	mutation := newFormDefinitionMutation(c.config, OpCreate)
	return &FormDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FormDefinition entities.
func (c *FormDefinitionClient) CreateBulk(builders ...*FormDefinitionCreate) *FormDefinitionCreateBulk {
	return &FormDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FormDefinitionClient) MapCreateBulk(slice any, setFunc func(*FormDefinitionCreate, int)) *FormDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FormDefinitionCreateBulk{err: fmt.Errorf("calling to FormDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FormDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FormDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FormDefinition.
func (c *FormDefinitionClient) Update() *FormDefinitionUpdate {
	mutation := newFormDefinitionMutation(c.config, OpUpdate)
	return &FormDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FormDefinitionClient) UpdateOne(_m *FormDefinition) *FormDefinitionUpdateOne {
	mutation := newFormDefinitionMutation(c.config, OpUpdateOne, withFormDefinition(_m))
	return &FormDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FormDefinitionClient) UpdateOneID(id uuid.UUID) *FormDefinitionUpdateOne {
	mutation := newFormDefinitionMutation(c.config, OpUpdateOne, withFormDefinitionID(id))
	return &FormDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FormDefinition.
func (c *FormDefinitionClient) Delete() *FormDefinitionDelete {
	mutation := newFormDefinitionMutation(c.config, OpDelete)
	return &FormDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FormDefinitionClient) DeleteOne(_m *FormDefinition) *FormDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FormDefinitionClient) DeleteOneID(id uuid.UUID) *FormDefinitionDeleteOne {
	builder := c.Delete().Where(formdefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FormDefinitionDeleteOne{builder}
}

// Query returns a query builder for FormDefinition.
func (c *FormDefinitionClient) Query() *FormDefinitionQuery {
	return &FormDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFormDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a FormDefinition entity by its id.
func (c *FormDefinitionClient) Get(ctx context.Context, id uuid.UUID) (*FormDefinition, error) {
	return c.Query().Where(formdefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FormDefinitionClient) GetX(ctx context.Context, id uuid.UUID) *FormDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBehaviors queries the behaviors edge of a FormDefinition.
func (c *FormDefinitionClient) QueryBehaviors(_m *FormDefinition) *FormBehaviorQuery {
	query := (&FormBehaviorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(formdefinition.Table, formdefinition.FieldID, id),
			sqlgraph.To(formbehavior.Table, formbehavior.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, formdefinition.BehaviorsTable, formdefinition.BehaviorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a FormDefinition.
func (c *FormDefinitionClient) QueryEntries(_m *FormDefinition) *FormEntryQuery {
	query := (&FormEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(formdefinition.Table, formdefinition.FieldID, id),
			sqlgraph.To(formentry.Table, formentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, formdefinition.EntriesTable, formdefinition.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FormDefinitionClient) Hooks() []Hook {
	return c.hooks.FormDefinition
}

// Interceptors returns the client interceptors.
func (c *FormDefinitionClient) Interceptors() []Interceptor {
	return c.inters.FormDefinition
}

func (c *FormDefinitionClient) mutate(ctx context.Context, m *FormDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FormDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FormDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FormDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FormDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FormDefinition mutation op: %q", m.Op())
	}
}

// FormEntryClient is a client for the FormEntry schema.
type FormEntryClient struct {
	config
}

// NewFormEntryClient returns a client for the FormEntry from the given config.
func NewFormEntryClient(c config) *FormEntryClient {
	return &FormEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `formentry.Hooks(f(g(h())))`.
func (c *FormEntryClient) Use(hooks ...Hook) {
	c.hooks.FormEntry = append(c.hooks.FormEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `formentry.Intercept(f(g(h())))`.
func (c *FormEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.FormEntry = append(c.inters.FormEntry, interceptors...)
}

// Create returns a builder for creating a FormEntry entity.
func (c *FormEntryClient) Create() *FormEntryCreate {
	mutation := newFormEntryMutation(c.config, OpCreate)
	return &FormEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FormEntry entities.
func (c *FormEntryClient) CreateBulk(builders ...*FormEntryCreate) *FormEntryCreateBulk {
	return &FormEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FormEntryClient) MapCreateBulk(slice any, setFunc func(*FormEntryCreate, int)) *FormEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FormEntryCreateBulk{err: fmt.Errorf("calling to FormEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FormEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FormEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FormEntry.
func (c *FormEntryClient) Update() *FormEntryUpdate {
	mutation := newFormEntryMutation(c.config, OpUpdate)
	return &FormEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FormEntryClient) UpdateOne(_m *FormEntry) *FormEntryUpdateOne {
	mutation := newFormEntryMutation(c.config, OpUpdateOne, withFormEntry(_m))
	return &FormEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FormEntryClient) UpdateOneID(id uuid.UUID) *FormEntryUpdateOne {
	mutation := newFormEntryMutation(c.config, OpUpdateOne, withFormEntryID(id))
	return &FormEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FormEntry.
func (c *FormEntryClient) Delete() *FormEntryDelete {
	mutation := newFormEntryMutation(c.config, OpDelete)
	return &FormEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FormEntryClient) DeleteOne(_m *FormEntry) *FormEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FormEntryClient) DeleteOneID(id uuid.UUID) *FormEntryDeleteOne {
	builder := c.Delete().Where(formentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FormEntryDeleteOne{builder}
}

// Query returns a query builder for FormEntry.
func (c *FormEntryClient) Query() *FormEntryQuery {
	return &FormEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFormEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a FormEntry entity by its id.
func (c *FormEntryClient) Get(ctx context.Context, id uuid.UUID) (*FormEntry, error) {
	return c.Query().Where(formentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FormEntryClient) GetX(ctx context.Context, id uuid.UUID) *FormEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryForm queries the form edge of a FormEntry.
func (c *FormEntryClient) QueryForm(_m *FormEntry) *FormDefinitionQuery {
	query := (&FormDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(formentry.Table, formentry.FieldID, id),
			sqlgraph.To(formdefinition.Table, formdefinition.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, formentry.FormTable, formentry.FormColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FormEntryClient) Hooks() []Hook {
	return c.hooks.FormEntry
}

// Interceptors returns the client interceptors.
func (c *FormEntryClient) Interceptors() []Interceptor {
	return c.inters.FormEntry
}

func (c *FormEntryClient) mutate(ctx context.Context, m *FormEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FormEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FormEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FormEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FormEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FormEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FormBehavior, FormDefinition, FormEntry []ent.Hook
	}
	inters struct {
		FormBehavior, FormDefinition, FormEntry []ent.Interceptor
	}
)
