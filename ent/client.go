// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mpetrov/caliber/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mpetrov/caliber/ent/adaptationevent"
	"github.com/mpetrov/caliber/ent/attemptevent"
	"github.com/mpetrov/caliber/ent/statesnapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AdaptationEvent is the client for interacting with the AdaptationEvent builders.
	AdaptationEvent *AdaptationEventClient
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// StateSnapshot is the client for interacting with the StateSnapshot builders.
	StateSnapshot *StateSnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AdaptationEvent = NewAdaptationEventClient(c.config)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.StateSnapshot = NewStateSnapshotClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AdaptationEvent: NewAdaptationEventClient(cfg),
		AttemptEvent:    NewAttemptEventClient(cfg),
		StateSnapshot:   NewStateSnapshotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AdaptationEvent: NewAdaptationEventClient(cfg),
		AttemptEvent:    NewAttemptEventClient(cfg),
		StateSnapshot:   NewStateSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AdaptationEvent.
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
	c.AdaptationEvent.Use(hooks...)
	c.AttemptEvent.Use(hooks...)
	c.StateSnapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AdaptationEvent.Intercept(interceptors...)
	c.AttemptEvent.Intercept(interceptors...)
	c.StateSnapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdaptationEventMutation:
		return c.AdaptationEvent.mutate(ctx, m)
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *StateSnapshotMutation:
		return c.StateSnapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdaptationEventClient is a client for the AdaptationEvent schema.
type AdaptationEventClient struct {
	config
}

// NewAdaptationEventClient returns a client for the AdaptationEvent from the given config.
func NewAdaptationEventClient(c config) *AdaptationEventClient {
	return &AdaptationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `adaptationevent.Hooks(f(g(h())))`.
func (c *AdaptationEventClient) Use(hooks ...Hook) {
	c.hooks.AdaptationEvent = append(c.hooks.AdaptationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `adaptationevent.Intercept(f(g(h())))`.
func (c *AdaptationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AdaptationEvent = append(c.inters.AdaptationEvent, interceptors...)
}

// Create returns a builder for creating a AdaptationEvent entity.
func (c *AdaptationEventClient) Create() *AdaptationEventCreate {
	mutation := newAdaptationEventMutation(c.config, OpCreate)
	return &AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AdaptationEvent entities.
func (c *AdaptationEventClient) CreateBulk(builders ...*AdaptationEventCreate) *AdaptationEventCreateBulk {
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdaptationEventClient) MapCreateBulk(slice any, setFunc func(*AdaptationEventCreate, int)) *AdaptationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdaptationEventCreateBulk{err: fmt.Errorf("calling to AdaptationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdaptationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdaptationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AdaptationEvent.
func (c *AdaptationEventClient) Update() *AdaptationEventUpdate {
	mutation := newAdaptationEventMutation(c.config, OpUpdate)
	return &AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdaptationEventClient) UpdateOne(_m *AdaptationEvent) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEvent(_m))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdaptationEventClient) UpdateOneID(id int) *AdaptationEventUpdateOne {
	mutation := newAdaptationEventMutation(c.config, OpUpdateOne, withAdaptationEventID(id))
	return &AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AdaptationEvent.
func (c *AdaptationEventClient) Delete() *AdaptationEventDelete {
	mutation := newAdaptationEventMutation(c.config, OpDelete)
	return &AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdaptationEventClient) DeleteOne(_m *AdaptationEvent) *AdaptationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdaptationEventClient) DeleteOneID(id int) *AdaptationEventDeleteOne {
	builder := c.Delete().Where(adaptationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdaptationEventDeleteOne{builder}
}

// Query returns a query builder for AdaptationEvent.
func (c *AdaptationEventClient) Query() *AdaptationEventQuery {
	return &AdaptationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdaptationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AdaptationEvent entity by its id.
func (c *AdaptationEventClient) Get(ctx context.Context, id int) (*AdaptationEvent, error) {
	return c.Query().Where(adaptationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdaptationEventClient) GetX(ctx context.Context, id int) *AdaptationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AdaptationEventClient) Hooks() []Hook {
	return c.hooks.AdaptationEvent
}

// Interceptors returns the client interceptors.
func (c *AdaptationEventClient) Interceptors() []Interceptor {
	return c.inters.AdaptationEvent
}

func (c *AdaptationEventClient) mutate(ctx context.Context, m *AdaptationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdaptationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdaptationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdaptationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdaptationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AdaptationEvent mutation op: %q", m.Op())
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// StateSnapshotClient is a client for the StateSnapshot schema.
type StateSnapshotClient struct {
	config
}

// NewStateSnapshotClient returns a client for the StateSnapshot from the given config.
func NewStateSnapshotClient(c config) *StateSnapshotClient {
	return &StateSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statesnapshot.Hooks(f(g(h())))`.
func (c *StateSnapshotClient) Use(hooks ...Hook) {
	c.hooks.StateSnapshot = append(c.hooks.StateSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statesnapshot.Intercept(f(g(h())))`.
func (c *StateSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateSnapshot = append(c.inters.StateSnapshot, interceptors...)
}

// Create returns a builder for creating a StateSnapshot entity.
func (c *StateSnapshotClient) Create() *StateSnapshotCreate {
	mutation := newStateSnapshotMutation(c.config, OpCreate)
	return &StateSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateSnapshot entities.
func (c *StateSnapshotClient) CreateBulk(builders ...*StateSnapshotCreate) *StateSnapshotCreateBulk {
	return &StateSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateSnapshotClient) MapCreateBulk(slice any, setFunc func(*StateSnapshotCreate, int)) *StateSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateSnapshotCreateBulk{err: fmt.Errorf("calling to StateSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateSnapshot.
func (c *StateSnapshotClient) Update() *StateSnapshotUpdate {
	mutation := newStateSnapshotMutation(c.config, OpUpdate)
	return &StateSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateSnapshotClient) UpdateOne(_m *StateSnapshot) *StateSnapshotUpdateOne {
	mutation := newStateSnapshotMutation(c.config, OpUpdateOne, withStateSnapshot(_m))
	return &StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateSnapshotClient) UpdateOneID(id int) *StateSnapshotUpdateOne {
	mutation := newStateSnapshotMutation(c.config, OpUpdateOne, withStateSnapshotID(id))
	return &StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateSnapshot.
func (c *StateSnapshotClient) Delete() *StateSnapshotDelete {
	mutation := newStateSnapshotMutation(c.config, OpDelete)
	return &StateSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateSnapshotClient) DeleteOne(_m *StateSnapshot) *StateSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateSnapshotClient) DeleteOneID(id int) *StateSnapshotDeleteOne {
	builder := c.Delete().Where(statesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateSnapshotDeleteOne{builder}
}

// Query returns a query builder for StateSnapshot.
func (c *StateSnapshotClient) Query() *StateSnapshotQuery {
	return &StateSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a StateSnapshot entity by its id.
func (c *StateSnapshotClient) Get(ctx context.Context, id int) (*StateSnapshot, error) {
	return c.Query().Where(statesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateSnapshotClient) GetX(ctx context.Context, id int) *StateSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateSnapshotClient) Hooks() []Hook {
	return c.hooks.StateSnapshot
}

// Interceptors returns the client interceptors.
func (c *StateSnapshotClient) Interceptors() []Interceptor {
	return c.inters.StateSnapshot
}

func (c *StateSnapshotClient) mutate(ctx context.Context, m *StateSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateSnapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AdaptationEvent, AttemptEvent, StateSnapshot []ent.Hook
	}
	inters struct {
		AdaptationEvent, AttemptEvent, StateSnapshot []ent.Interceptor
	}
)
