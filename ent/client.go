// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/answerrecord"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/audioasset"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/evaluationevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/listeningtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/llmrequestevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/readingtest"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/speakingpart"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/writingtask"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerRecord is the client for interacting with the AnswerRecord builders.
	AnswerRecord *AnswerRecordClient
	// AudioAsset is the client for interacting with the AudioAsset builders.
	AudioAsset *AudioAssetClient
	// EvaluationEvent is the client for interacting with the EvaluationEvent builders.
	EvaluationEvent *EvaluationEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ListeningTest is the client for interacting with the ListeningTest builders.
	ListeningTest *ListeningTestClient
	// ReadingTest is the client for interacting with the ReadingTest builders.
	ReadingTest *ReadingTestClient
	// SpeakingPart is the client for interacting with the SpeakingPart builders.
	SpeakingPart *SpeakingPartClient
	// TestSession is the client for interacting with the TestSession builders.
	TestSession *TestSessionClient
	// WritingTask is the client for interacting with the WritingTask builders.
	WritingTask *WritingTaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerRecord = NewAnswerRecordClient(c.config)
	c.AudioAsset = NewAudioAssetClient(c.config)
	c.EvaluationEvent = NewEvaluationEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ListeningTest = NewListeningTestClient(c.config)
	c.ReadingTest = NewReadingTestClient(c.config)
	c.SpeakingPart = NewSpeakingPartClient(c.config)
	c.TestSession = NewTestSessionClient(c.config)
	c.WritingTask = NewWritingTaskClient(c.config)
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
		AnswerRecord:    NewAnswerRecordClient(cfg),
		AudioAsset:      NewAudioAssetClient(cfg),
		EvaluationEvent: NewEvaluationEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ListeningTest:   NewListeningTestClient(cfg),
		ReadingTest:     NewReadingTestClient(cfg),
		SpeakingPart:    NewSpeakingPartClient(cfg),
		TestSession:     NewTestSessionClient(cfg),
		WritingTask:     NewWritingTaskClient(cfg),
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
		AnswerRecord:    NewAnswerRecordClient(cfg),
		AudioAsset:      NewAudioAssetClient(cfg),
		EvaluationEvent: NewEvaluationEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ListeningTest:   NewListeningTestClient(cfg),
		ReadingTest:     NewReadingTestClient(cfg),
		SpeakingPart:    NewSpeakingPartClient(cfg),
		TestSession:     NewTestSessionClient(cfg),
		WritingTask:     NewWritingTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerRecord.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AnswerRecord, c.AudioAsset, c.EvaluationEvent, c.LLMRequestEvent,
		c.ListeningTest, c.ReadingTest, c.SpeakingPart, c.TestSession, c.WritingTask,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerRecord, c.AudioAsset, c.EvaluationEvent, c.LLMRequestEvent,
		c.ListeningTest, c.ReadingTest, c.SpeakingPart, c.TestSession, c.WritingTask,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerRecordMutation:
		return c.AnswerRecord.mutate(ctx, m)
	case *AudioAssetMutation:
		return c.AudioAsset.mutate(ctx, m)
	case *EvaluationEventMutation:
		return c.EvaluationEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ListeningTestMutation:
		return c.ListeningTest.mutate(ctx, m)
	case *ReadingTestMutation:
		return c.ReadingTest.mutate(ctx, m)
	case *SpeakingPartMutation:
		return c.SpeakingPart.mutate(ctx, m)
	case *TestSessionMutation:
		return c.TestSession.mutate(ctx, m)
	case *WritingTaskMutation:
		return c.WritingTask.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerRecordClient is a client for the AnswerRecord schema.
type AnswerRecordClient struct {
	config
}

// NewAnswerRecordClient returns a client for the AnswerRecord from the given config.
func NewAnswerRecordClient(c config) *AnswerRecordClient {
	return &AnswerRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerrecord.Hooks(f(g(h())))`.
func (c *AnswerRecordClient) Use(hooks ...Hook) {
	c.hooks.AnswerRecord = append(c.hooks.AnswerRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerrecord.Intercept(f(g(h())))`.
func (c *AnswerRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerRecord = append(c.inters.AnswerRecord, interceptors...)
}

// Create returns a builder for creating a AnswerRecord entity.
func (c *AnswerRecordClient) Create() *AnswerRecordCreate {
	mutation := newAnswerRecordMutation(c.config, OpCreate)
	return &AnswerRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerRecord entities.
func (c *AnswerRecordClient) CreateBulk(builders ...*AnswerRecordCreate) *AnswerRecordCreateBulk {
	return &AnswerRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerRecordClient) MapCreateBulk(slice any, setFunc func(*AnswerRecordCreate, int)) *AnswerRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerRecordCreateBulk{err: fmt.Errorf("calling to AnswerRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerRecord.
func (c *AnswerRecordClient) Update() *AnswerRecordUpdate {
	mutation := newAnswerRecordMutation(c.config, OpUpdate)
	return &AnswerRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerRecordClient) UpdateOne(_m *AnswerRecord) *AnswerRecordUpdateOne {
	mutation := newAnswerRecordMutation(c.config, OpUpdateOne, withAnswerRecord(_m))
	return &AnswerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerRecordClient) UpdateOneID(id int) *AnswerRecordUpdateOne {
	mutation := newAnswerRecordMutation(c.config, OpUpdateOne, withAnswerRecordID(id))
	return &AnswerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerRecord.
func (c *AnswerRecordClient) Delete() *AnswerRecordDelete {
	mutation := newAnswerRecordMutation(c.config, OpDelete)
	return &AnswerRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerRecordClient) DeleteOne(_m *AnswerRecord) *AnswerRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerRecordClient) DeleteOneID(id int) *AnswerRecordDeleteOne {
	builder := c.Delete().Where(answerrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerRecordDeleteOne{builder}
}

// Query returns a query builder for AnswerRecord.
func (c *AnswerRecordClient) Query() *AnswerRecordQuery {
	return &AnswerRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerRecord entity by its id.
func (c *AnswerRecordClient) Get(ctx context.Context, id int) (*AnswerRecord, error) {
	return c.Query().Where(answerrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerRecordClient) GetX(ctx context.Context, id int) *AnswerRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerRecordClient) Hooks() []Hook {
	return c.hooks.AnswerRecord
}

// Interceptors returns the client interceptors.
func (c *AnswerRecordClient) Interceptors() []Interceptor {
	return c.inters.AnswerRecord
}

func (c *AnswerRecordClient) mutate(ctx context.Context, m *AnswerRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerRecord mutation op: %q", m.Op())
	}
}

// AudioAssetClient is a client for the AudioAsset schema.
type AudioAssetClient struct {
	config
}

// NewAudioAssetClient returns a client for the AudioAsset from the given config.
func NewAudioAssetClient(c config) *AudioAssetClient {
	return &AudioAssetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audioasset.Hooks(f(g(h())))`.
func (c *AudioAssetClient) Use(hooks ...Hook) {
	c.hooks.AudioAsset = append(c.hooks.AudioAsset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audioasset.Intercept(f(g(h())))`.
func (c *AudioAssetClient) Intercept(interceptors ...Interceptor) {
	c.inters.AudioAsset = append(c.inters.AudioAsset, interceptors...)
}

// Create returns a builder for creating a AudioAsset entity.
func (c *AudioAssetClient) Create() *AudioAssetCreate {
	mutation := newAudioAssetMutation(c.config, OpCreate)
	return &AudioAssetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AudioAsset entities.
func (c *AudioAssetClient) CreateBulk(builders ...*AudioAssetCreate) *AudioAssetCreateBulk {
	return &AudioAssetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AudioAssetClient) MapCreateBulk(slice any, setFunc func(*AudioAssetCreate, int)) *AudioAssetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AudioAssetCreateBulk{err: fmt.Errorf("calling to AudioAssetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AudioAssetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AudioAssetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AudioAsset.
func (c *AudioAssetClient) Update() *AudioAssetUpdate {
	mutation := newAudioAssetMutation(c.config, OpUpdate)
	return &AudioAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AudioAssetClient) UpdateOne(_m *AudioAsset) *AudioAssetUpdateOne {
	mutation := newAudioAssetMutation(c.config, OpUpdateOne, withAudioAsset(_m))
	return &AudioAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AudioAssetClient) UpdateOneID(id int) *AudioAssetUpdateOne {
	mutation := newAudioAssetMutation(c.config, OpUpdateOne, withAudioAssetID(id))
	return &AudioAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AudioAsset.
func (c *AudioAssetClient) Delete() *AudioAssetDelete {
	mutation := newAudioAssetMutation(c.config, OpDelete)
	return &AudioAssetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AudioAssetClient) DeleteOne(_m *AudioAsset) *AudioAssetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AudioAssetClient) DeleteOneID(id int) *AudioAssetDeleteOne {
	builder := c.Delete().Where(audioasset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AudioAssetDeleteOne{builder}
}

// Query returns a query builder for AudioAsset.
func (c *AudioAssetClient) Query() *AudioAssetQuery {
	return &AudioAssetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudioAsset},
		inters: c.Interceptors(),
	}
}

// Get returns a AudioAsset entity by its id.
func (c *AudioAssetClient) Get(ctx context.Context, id int) (*AudioAsset, error) {
	return c.Query().Where(audioasset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AudioAssetClient) GetX(ctx context.Context, id int) *AudioAsset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AudioAssetClient) Hooks() []Hook {
	return c.hooks.AudioAsset
}

// Interceptors returns the client interceptors.
func (c *AudioAssetClient) Interceptors() []Interceptor {
	return c.inters.AudioAsset
}

func (c *AudioAssetClient) mutate(ctx context.Context, m *AudioAssetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AudioAssetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AudioAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AudioAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AudioAssetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AudioAsset mutation op: %q", m.Op())
	}
}

// EvaluationEventClient is a client for the EvaluationEvent schema.
type EvaluationEventClient struct {
	config
}

// NewEvaluationEventClient returns a client for the EvaluationEvent from the given config.
func NewEvaluationEventClient(c config) *EvaluationEventClient {
	return &EvaluationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationevent.Hooks(f(g(h())))`.
func (c *EvaluationEventClient) Use(hooks ...Hook) {
	c.hooks.EvaluationEvent = append(c.hooks.EvaluationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationevent.Intercept(f(g(h())))`.
func (c *EvaluationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationEvent = append(c.inters.EvaluationEvent, interceptors...)
}

// Create returns a builder for creating a EvaluationEvent entity.
func (c *EvaluationEventClient) Create() *EvaluationEventCreate {
	mutation := newEvaluationEventMutation(c.config, OpCreate)
	return &EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationEvent entities.
func (c *EvaluationEventClient) CreateBulk(builders ...*EvaluationEventCreate) *EvaluationEventCreateBulk {
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationEventClient) MapCreateBulk(slice any, setFunc func(*EvaluationEventCreate, int)) *EvaluationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationEventCreateBulk{err: fmt.Errorf("calling to EvaluationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationEvent.
func (c *EvaluationEventClient) Update() *EvaluationEventUpdate {
	mutation := newEvaluationEventMutation(c.config, OpUpdate)
	return &EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationEventClient) UpdateOne(_m *EvaluationEvent) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEvent(_m))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationEventClient) UpdateOneID(id int) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEventID(id))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationEvent.
func (c *EvaluationEventClient) Delete() *EvaluationEventDelete {
	mutation := newEvaluationEventMutation(c.config, OpDelete)
	return &EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationEventClient) DeleteOne(_m *EvaluationEvent) *EvaluationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationEventClient) DeleteOneID(id int) *EvaluationEventDeleteOne {
	builder := c.Delete().Where(evaluationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationEventDeleteOne{builder}
}

// Query returns a query builder for EvaluationEvent.
func (c *EvaluationEventClient) Query() *EvaluationEventQuery {
	return &EvaluationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationEvent entity by its id.
func (c *EvaluationEventClient) Get(ctx context.Context, id int) (*EvaluationEvent, error) {
	return c.Query().Where(evaluationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationEventClient) GetX(ctx context.Context, id int) *EvaluationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluationEventClient) Hooks() []Hook {
	return c.hooks.EvaluationEvent
}

// Interceptors returns the client interceptors.
func (c *EvaluationEventClient) Interceptors() []Interceptor {
	return c.inters.EvaluationEvent
}

func (c *EvaluationEventClient) mutate(ctx context.Context, m *EvaluationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ListeningTestClient is a client for the ListeningTest schema.
type ListeningTestClient struct {
	config
}

// NewListeningTestClient returns a client for the ListeningTest from the given config.
func NewListeningTestClient(c config) *ListeningTestClient {
	return &ListeningTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listeningtest.Hooks(f(g(h())))`.
func (c *ListeningTestClient) Use(hooks ...Hook) {
	c.hooks.ListeningTest = append(c.hooks.ListeningTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listeningtest.Intercept(f(g(h())))`.
func (c *ListeningTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ListeningTest = append(c.inters.ListeningTest, interceptors...)
}

// Create returns a builder for creating a ListeningTest entity.
func (c *ListeningTestClient) Create() *ListeningTestCreate {
	mutation := newListeningTestMutation(c.config, OpCreate)
	return &ListeningTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ListeningTest entities.
func (c *ListeningTestClient) CreateBulk(builders ...*ListeningTestCreate) *ListeningTestCreateBulk {
	return &ListeningTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListeningTestClient) MapCreateBulk(slice any, setFunc func(*ListeningTestCreate, int)) *ListeningTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListeningTestCreateBulk{err: fmt.Errorf("calling to ListeningTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListeningTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListeningTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ListeningTest.
func (c *ListeningTestClient) Update() *ListeningTestUpdate {
	mutation := newListeningTestMutation(c.config, OpUpdate)
	return &ListeningTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListeningTestClient) UpdateOne(_m *ListeningTest) *ListeningTestUpdateOne {
	mutation := newListeningTestMutation(c.config, OpUpdateOne, withListeningTest(_m))
	return &ListeningTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListeningTestClient) UpdateOneID(id int) *ListeningTestUpdateOne {
	mutation := newListeningTestMutation(c.config, OpUpdateOne, withListeningTestID(id))
	return &ListeningTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ListeningTest.
func (c *ListeningTestClient) Delete() *ListeningTestDelete {
	mutation := newListeningTestMutation(c.config, OpDelete)
	return &ListeningTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListeningTestClient) DeleteOne(_m *ListeningTest) *ListeningTestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListeningTestClient) DeleteOneID(id int) *ListeningTestDeleteOne {
	builder := c.Delete().Where(listeningtest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListeningTestDeleteOne{builder}
}

// Query returns a query builder for ListeningTest.
func (c *ListeningTestClient) Query() *ListeningTestQuery {
	return &ListeningTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListeningTest},
		inters: c.Interceptors(),
	}
}

// Get returns a ListeningTest entity by its id.
func (c *ListeningTestClient) Get(ctx context.Context, id int) (*ListeningTest, error) {
	return c.Query().Where(listeningtest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListeningTestClient) GetX(ctx context.Context, id int) *ListeningTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ListeningTestClient) Hooks() []Hook {
	return c.hooks.ListeningTest
}

// Interceptors returns the client interceptors.
func (c *ListeningTestClient) Interceptors() []Interceptor {
	return c.inters.ListeningTest
}

func (c *ListeningTestClient) mutate(ctx context.Context, m *ListeningTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListeningTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListeningTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListeningTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListeningTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ListeningTest mutation op: %q", m.Op())
	}
}

// ReadingTestClient is a client for the ReadingTest schema.
type ReadingTestClient struct {
	config
}

// NewReadingTestClient returns a client for the ReadingTest from the given config.
func NewReadingTestClient(c config) *ReadingTestClient {
	return &ReadingTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `readingtest.Hooks(f(g(h())))`.
func (c *ReadingTestClient) Use(hooks ...Hook) {
	c.hooks.ReadingTest = append(c.hooks.ReadingTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `readingtest.Intercept(f(g(h())))`.
func (c *ReadingTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReadingTest = append(c.inters.ReadingTest, interceptors...)
}

// Create returns a builder for creating a ReadingTest entity.
func (c *ReadingTestClient) Create() *ReadingTestCreate {
	mutation := newReadingTestMutation(c.config, OpCreate)
	return &ReadingTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReadingTest entities.
func (c *ReadingTestClient) CreateBulk(builders ...*ReadingTestCreate) *ReadingTestCreateBulk {
	return &ReadingTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReadingTestClient) MapCreateBulk(slice any, setFunc func(*ReadingTestCreate, int)) *ReadingTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReadingTestCreateBulk{err: fmt.Errorf("calling to ReadingTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReadingTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReadingTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReadingTest.
func (c *ReadingTestClient) Update() *ReadingTestUpdate {
	mutation := newReadingTestMutation(c.config, OpUpdate)
	return &ReadingTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReadingTestClient) UpdateOne(_m *ReadingTest) *ReadingTestUpdateOne {
	mutation := newReadingTestMutation(c.config, OpUpdateOne, withReadingTest(_m))
	return &ReadingTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReadingTestClient) UpdateOneID(id int) *ReadingTestUpdateOne {
	mutation := newReadingTestMutation(c.config, OpUpdateOne, withReadingTestID(id))
	return &ReadingTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReadingTest.
func (c *ReadingTestClient) Delete() *ReadingTestDelete {
	mutation := newReadingTestMutation(c.config, OpDelete)
	return &ReadingTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReadingTestClient) DeleteOne(_m *ReadingTest) *ReadingTestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReadingTestClient) DeleteOneID(id int) *ReadingTestDeleteOne {
	builder := c.Delete().Where(readingtest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReadingTestDeleteOne{builder}
}

// Query returns a query builder for ReadingTest.
func (c *ReadingTestClient) Query() *ReadingTestQuery {
	return &ReadingTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReadingTest},
		inters: c.Interceptors(),
	}
}

// Get returns a ReadingTest entity by its id.
func (c *ReadingTestClient) Get(ctx context.Context, id int) (*ReadingTest, error) {
	return c.Query().Where(readingtest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReadingTestClient) GetX(ctx context.Context, id int) *ReadingTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReadingTestClient) Hooks() []Hook {
	return c.hooks.ReadingTest
}

// Interceptors returns the client interceptors.
func (c *ReadingTestClient) Interceptors() []Interceptor {
	return c.inters.ReadingTest
}

func (c *ReadingTestClient) mutate(ctx context.Context, m *ReadingTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReadingTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReadingTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReadingTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReadingTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReadingTest mutation op: %q", m.Op())
	}
}

// SpeakingPartClient is a client for the SpeakingPart schema.
type SpeakingPartClient struct {
	config
}

// NewSpeakingPartClient returns a client for the SpeakingPart from the given config.
func NewSpeakingPartClient(c config) *SpeakingPartClient {
	return &SpeakingPartClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `speakingpart.Hooks(f(g(h())))`.
func (c *SpeakingPartClient) Use(hooks ...Hook) {
	c.hooks.SpeakingPart = append(c.hooks.SpeakingPart, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `speakingpart.Intercept(f(g(h())))`.
func (c *SpeakingPartClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpeakingPart = append(c.inters.SpeakingPart, interceptors...)
}

// Create returns a builder for creating a SpeakingPart entity.
func (c *SpeakingPartClient) Create() *SpeakingPartCreate {
	mutation := newSpeakingPartMutation(c.config, OpCreate)
	return &SpeakingPartCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpeakingPart entities.
func (c *SpeakingPartClient) CreateBulk(builders ...*SpeakingPartCreate) *SpeakingPartCreateBulk {
	return &SpeakingPartCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpeakingPartClient) MapCreateBulk(slice any, setFunc func(*SpeakingPartCreate, int)) *SpeakingPartCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpeakingPartCreateBulk{err: fmt.Errorf("calling to SpeakingPartClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpeakingPartCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpeakingPartCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpeakingPart.
func (c *SpeakingPartClient) Update() *SpeakingPartUpdate {
	mutation := newSpeakingPartMutation(c.config, OpUpdate)
	return &SpeakingPartUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpeakingPartClient) UpdateOne(_m *SpeakingPart) *SpeakingPartUpdateOne {
	mutation := newSpeakingPartMutation(c.config, OpUpdateOne, withSpeakingPart(_m))
	return &SpeakingPartUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpeakingPartClient) UpdateOneID(id int) *SpeakingPartUpdateOne {
	mutation := newSpeakingPartMutation(c.config, OpUpdateOne, withSpeakingPartID(id))
	return &SpeakingPartUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpeakingPart.
func (c *SpeakingPartClient) Delete() *SpeakingPartDelete {
	mutation := newSpeakingPartMutation(c.config, OpDelete)
	return &SpeakingPartDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpeakingPartClient) DeleteOne(_m *SpeakingPart) *SpeakingPartDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpeakingPartClient) DeleteOneID(id int) *SpeakingPartDeleteOne {
	builder := c.Delete().Where(speakingpart.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpeakingPartDeleteOne{builder}
}

// Query returns a query builder for SpeakingPart.
func (c *SpeakingPartClient) Query() *SpeakingPartQuery {
	return &SpeakingPartQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpeakingPart},
		inters: c.Interceptors(),
	}
}

// Get returns a SpeakingPart entity by its id.
func (c *SpeakingPartClient) Get(ctx context.Context, id int) (*SpeakingPart, error) {
	return c.Query().Where(speakingpart.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpeakingPartClient) GetX(ctx context.Context, id int) *SpeakingPart {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SpeakingPartClient) Hooks() []Hook {
	return c.hooks.SpeakingPart
}

// Interceptors returns the client interceptors.
func (c *SpeakingPartClient) Interceptors() []Interceptor {
	return c.inters.SpeakingPart
}

func (c *SpeakingPartClient) mutate(ctx context.Context, m *SpeakingPartMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpeakingPartCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpeakingPartUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpeakingPartUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpeakingPartDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpeakingPart mutation op: %q", m.Op())
	}
}

// TestSessionClient is a client for the TestSession schema.
type TestSessionClient struct {
	config
}

// NewTestSessionClient returns a client for the TestSession from the given config.
func NewTestSessionClient(c config) *TestSessionClient {
	return &TestSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testsession.Hooks(f(g(h())))`.
func (c *TestSessionClient) Use(hooks ...Hook) {
	c.hooks.TestSession = append(c.hooks.TestSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testsession.Intercept(f(g(h())))`.
func (c *TestSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestSession = append(c.inters.TestSession, interceptors...)
}

// Create returns a builder for creating a TestSession entity.
func (c *TestSessionClient) Create() *TestSessionCreate {
	mutation := newTestSessionMutation(c.config, OpCreate)
	return &TestSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestSession entities.
func (c *TestSessionClient) CreateBulk(builders ...*TestSessionCreate) *TestSessionCreateBulk {
	return &TestSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestSessionClient) MapCreateBulk(slice any, setFunc func(*TestSessionCreate, int)) *TestSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestSessionCreateBulk{err: fmt.Errorf("calling to TestSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestSession.
func (c *TestSessionClient) Update() *TestSessionUpdate {
	mutation := newTestSessionMutation(c.config, OpUpdate)
	return &TestSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestSessionClient) UpdateOne(_m *TestSession) *TestSessionUpdateOne {
	mutation := newTestSessionMutation(c.config, OpUpdateOne, withTestSession(_m))
	return &TestSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestSessionClient) UpdateOneID(id string) *TestSessionUpdateOne {
	mutation := newTestSessionMutation(c.config, OpUpdateOne, withTestSessionID(id))
	return &TestSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestSession.
func (c *TestSessionClient) Delete() *TestSessionDelete {
	mutation := newTestSessionMutation(c.config, OpDelete)
	return &TestSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestSessionClient) DeleteOne(_m *TestSession) *TestSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestSessionClient) DeleteOneID(id string) *TestSessionDeleteOne {
	builder := c.Delete().Where(testsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestSessionDeleteOne{builder}
}

// Query returns a query builder for TestSession.
func (c *TestSessionClient) Query() *TestSessionQuery {
	return &TestSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestSession},
		inters: c.Interceptors(),
	}
}

// Get returns a TestSession entity by its id.
func (c *TestSessionClient) Get(ctx context.Context, id string) (*TestSession, error) {
	return c.Query().Where(testsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestSessionClient) GetX(ctx context.Context, id string) *TestSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestSessionClient) Hooks() []Hook {
	return c.hooks.TestSession
}

// Interceptors returns the client interceptors.
func (c *TestSessionClient) Interceptors() []Interceptor {
	return c.inters.TestSession
}

func (c *TestSessionClient) mutate(ctx context.Context, m *TestSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestSession mutation op: %q", m.Op())
	}
}

// WritingTaskClient is a client for the WritingTask schema.
type WritingTaskClient struct {
	config
}

// NewWritingTaskClient returns a client for the WritingTask from the given config.
func NewWritingTaskClient(c config) *WritingTaskClient {
	return &WritingTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `writingtask.Hooks(f(g(h())))`.
func (c *WritingTaskClient) Use(hooks ...Hook) {
	c.hooks.WritingTask = append(c.hooks.WritingTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `writingtask.Intercept(f(g(h())))`.
func (c *WritingTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.WritingTask = append(c.inters.WritingTask, interceptors...)
}

// Create returns a builder for creating a WritingTask entity.
func (c *WritingTaskClient) Create() *WritingTaskCreate {
	mutation := newWritingTaskMutation(c.config, OpCreate)
	return &WritingTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WritingTask entities.
func (c *WritingTaskClient) CreateBulk(builders ...*WritingTaskCreate) *WritingTaskCreateBulk {
	return &WritingTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WritingTaskClient) MapCreateBulk(slice any, setFunc func(*WritingTaskCreate, int)) *WritingTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WritingTaskCreateBulk{err: fmt.Errorf("calling to WritingTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WritingTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WritingTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WritingTask.
func (c *WritingTaskClient) Update() *WritingTaskUpdate {
	mutation := newWritingTaskMutation(c.config, OpUpdate)
	return &WritingTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WritingTaskClient) UpdateOne(_m *WritingTask) *WritingTaskUpdateOne {
	mutation := newWritingTaskMutation(c.config, OpUpdateOne, withWritingTask(_m))
	return &WritingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WritingTaskClient) UpdateOneID(id int) *WritingTaskUpdateOne {
	mutation := newWritingTaskMutation(c.config, OpUpdateOne, withWritingTaskID(id))
	return &WritingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WritingTask.
func (c *WritingTaskClient) Delete() *WritingTaskDelete {
	mutation := newWritingTaskMutation(c.config, OpDelete)
	return &WritingTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WritingTaskClient) DeleteOne(_m *WritingTask) *WritingTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WritingTaskClient) DeleteOneID(id int) *WritingTaskDeleteOne {
	builder := c.Delete().Where(writingtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WritingTaskDeleteOne{builder}
}

// Query returns a query builder for WritingTask.
func (c *WritingTaskClient) Query() *WritingTaskQuery {
	return &WritingTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWritingTask},
		inters: c.Interceptors(),
	}
}

// Get returns a WritingTask entity by its id.
func (c *WritingTaskClient) Get(ctx context.Context, id int) (*WritingTask, error) {
	return c.Query().Where(writingtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WritingTaskClient) GetX(ctx context.Context, id int) *WritingTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WritingTaskClient) Hooks() []Hook {
	return c.hooks.WritingTask
}

// Interceptors returns the client interceptors.
func (c *WritingTaskClient) Interceptors() []Interceptor {
	return c.inters.WritingTask
}

func (c *WritingTaskClient) mutate(ctx context.Context, m *WritingTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WritingTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WritingTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WritingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WritingTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WritingTask mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerRecord, AudioAsset, EvaluationEvent, LLMRequestEvent, ListeningTest,
		ReadingTest, SpeakingPart, TestSession, WritingTask []ent.Hook
	}
	inters struct {
		AnswerRecord, AudioAsset, EvaluationEvent, LLMRequestEvent, ListeningTest,
		ReadingTest, SpeakingPart, TestSession, WritingTask []ent.Interceptor
	}
)
