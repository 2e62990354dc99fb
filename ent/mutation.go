// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/ent/appsetting"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/message"
	"github.com/skein-dev/skein/ent/pipelinerun"
	"github.com/skein-dev/skein/ent/predicate"
	"github.com/skein-dev/skein/ent/project"
	"github.com/skein-dev/skein/ent/snapshot"
	"github.com/skein-dev/skein/ent/tokenusage"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution = "AgentExecution"
	TypeAppSetting     = "AppSetting"
	TypeBillingLedger  = "BillingLedger"
	TypeChat           = "Chat"
	TypeMessage        = "Message"
	TypePipelineRun    = "PipelineRun"
	TypeProject        = "Project"
	TypeSnapshot       = "Snapshot"
	TypeTokenUsage     = "TokenUsage"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	run_id          *string
	agent_name      *string
	status          *agentexecution.Status
	input           *string
	output          *string
	error           *string
	retry_count     *int
	addretry_count  *int
	started_at      *int64
	addstarted_at   *int64
	completed_at    *int64
	addcompleted_at *int64
	clearedFields   map[string]struct{}
	chat            *string
	clearedchat     bool
	done            bool
	oldValue        func(context.Context) (*AgentExecution, error)
	predicates      []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *AgentExecutionMutation) SetChatID(s string) {
	m.chat = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *AgentExecutionMutation) ChatID() (r string, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *AgentExecutionMutation) ResetChatID() {
	m.chat = nil
}

// SetRunID sets the "run_id" field.
func (m *AgentExecutionMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentExecutionMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *AgentExecutionMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[agentexecution.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *AgentExecutionMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentExecutionMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, agentexecution.FieldRunID)
}

// SetAgentName sets the "agent_name" field.
func (m *AgentExecutionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentExecutionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentExecutionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetInput sets the "input" field.
func (m *AgentExecutionMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *AgentExecutionMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *AgentExecutionMutation) ResetInput() {
	m.input = nil
}

// SetOutput sets the "output" field.
func (m *AgentExecutionMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentExecutionMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentexecution.FieldOutput)
}

// SetError sets the "error" field.
func (m *AgentExecutionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *AgentExecutionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *AgentExecutionMutation) ClearError() {
	m.error = nil
	m.clearedFields[agentexecution.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *AgentExecutionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, agentexecution.FieldError)
}

// SetRetryCount sets the "retry_count" field.
func (m *AgentExecutionMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *AgentExecutionMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *AgentExecutionMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *AgentExecutionMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *AgentExecutionMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(i int64) {
	m.started_at = &i
	m.addstarted_at = nil
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r int64, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// AddStartedAt adds i to the "started_at" field.
func (m *AgentExecutionMutation) AddStartedAt(i int64) {
	if m.addstarted_at != nil {
		*m.addstarted_at += i
	} else {
		m.addstarted_at = &i
	}
}

// AddedStartedAt returns the value that was added to the "started_at" field in this mutation.
func (m *AgentExecutionMutation) AddedStartedAt() (r int64, exists bool) {
	v := m.addstarted_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	m.addstarted_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(i int64) {
	m.completed_at = &i
	m.addcompleted_at = nil
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r int64, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// AddCompletedAt adds i to the "completed_at" field.
func (m *AgentExecutionMutation) AddCompletedAt(i int64) {
	if m.addcompleted_at != nil {
		*m.addcompleted_at += i
	} else {
		m.addcompleted_at = &i
	}
}

// AddedCompletedAt returns the value that was added to the "completed_at" field in this mutation.
func (m *AgentExecutionMutation) AddedCompletedAt() (r int64, exists bool) {
	v := m.addcompleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *AgentExecutionMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[agentexecution.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *AgentExecutionMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *AgentExecutionMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.chat != nil {
		fields = append(fields, agentexecution.FieldChatID)
	}
	if m.run_id != nil {
		fields = append(fields, agentexecution.FieldRunID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentexecution.FieldAgentName)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.input != nil {
		fields = append(fields, agentexecution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, agentexecution.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, agentexecution.FieldError)
	}
	if m.retry_count != nil {
		fields = append(fields, agentexecution.FieldRetryCount)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldChatID:
		return m.ChatID()
	case agentexecution.FieldRunID:
		return m.RunID()
	case agentexecution.FieldAgentName:
		return m.AgentName()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldInput:
		return m.Input()
	case agentexecution.FieldOutput:
		return m.Output()
	case agentexecution.FieldError:
		return m.Error()
	case agentexecution.FieldRetryCount:
		return m.RetryCount()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldChatID:
		return m.OldChatID(ctx)
	case agentexecution.FieldRunID:
		return m.OldRunID(ctx)
	case agentexecution.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldInput:
		return m.OldInput(ctx)
	case agentexecution.FieldOutput:
		return m.OldOutput(ctx)
	case agentexecution.FieldError:
		return m.OldError(ctx)
	case agentexecution.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case agentexecution.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentexecution.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case agentexecution.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentexecution.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case agentexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, agentexecution.FieldRetryCount)
	}
	if m.addstarted_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.addcompleted_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldRetryCount:
		return m.AddedRetryCount()
	case agentexecution.FieldStartedAt:
		return m.AddedStartedAt()
	case agentexecution.FieldCompletedAt:
		return m.AddedCompletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldRunID) {
		fields = append(fields, agentexecution.FieldRunID)
	}
	if m.FieldCleared(agentexecution.FieldOutput) {
		fields = append(fields, agentexecution.FieldOutput)
	}
	if m.FieldCleared(agentexecution.FieldError) {
		fields = append(fields, agentexecution.FieldError)
	}
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldRunID:
		m.ClearRunID()
		return nil
	case agentexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case agentexecution.FieldError:
		m.ClearError()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldChatID:
		m.ResetChatID()
		return nil
	case agentexecution.FieldRunID:
		m.ResetRunID()
		return nil
	case agentexecution.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldInput:
		m.ResetInput()
		return nil
	case agentexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case agentexecution.FieldError:
		m.ResetError()
		return nil
	case agentexecution.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, agentexecution.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, agentexecution.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	case agentexecution.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// AppSettingMutation represents an operation that mutates the AppSetting nodes in the graph.
type AppSettingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AppSetting, error)
	predicates    []predicate.AppSetting
}

var _ ent.Mutation = (*AppSettingMutation)(nil)

// appsettingOption allows management of the mutation configuration using functional options.
type appsettingOption func(*AppSettingMutation)

// newAppSettingMutation creates new mutation for the AppSetting entity.
func newAppSettingMutation(c config, op Op, opts ...appsettingOption) *AppSettingMutation {
	m := &AppSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeAppSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppSettingID sets the ID field of the mutation.
func withAppSettingID(id string) appsettingOption {
	return func(m *AppSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *AppSetting
		)
		m.oldValue = func(ctx context.Context) (*AppSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AppSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppSetting sets the old AppSetting of the mutation.
func withAppSetting(node *AppSetting) appsettingOption {
	return func(m *AppSettingMutation) {
		m.oldValue = func(context.Context) (*AppSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AppSetting entities.
func (m *AppSettingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppSettingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppSettingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AppSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *AppSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *AppSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the AppSetting entity.
// If the AppSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *AppSettingMutation) ResetValue() {
	m.value = nil
}

// Where appends a list predicates to the AppSettingMutation builder.
func (m *AppSettingMutation) Where(ps ...predicate.AppSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AppSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AppSetting).
func (m *AppSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppSettingMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.value != nil {
		fields = append(fields, appsetting.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appsetting.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appsetting.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown AppSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appsetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown AppSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AppSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AppSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppSettingMutation) ResetField(name string) error {
	switch name {
	case appsetting.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown AppSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AppSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AppSetting edge %s", name)
}

// BillingLedgerMutation represents an operation that mutates the BillingLedger nodes in the graph.
type BillingLedgerMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	chat_id                        *string
	execution_id                   *string
	project_id                     *string
	project_name                   *string
	chat_title                     *string
	provider                       *string
	model                          *string
	input_tokens                   *int
	addinput_tokens                *int
	output_tokens                  *int
	addoutput_tokens               *int
	cache_creation_input_tokens    *int
	addcache_creation_input_tokens *int
	cache_read_input_tokens        *int
	addcache_read_input_tokens     *int
	total_tokens                   *int
	addtotal_tokens                *int
	api_key_hash                   *string
	cost_estimate                  *float64
	addcost_estimate               *float64
	estimated                      *bool
	created_at                     *int64
	addcreated_at                  *int64
	clearedFields                  map[string]struct{}
	done                           bool
	oldValue                       func(context.Context) (*BillingLedger, error)
	predicates                     []predicate.BillingLedger
}

var _ ent.Mutation = (*BillingLedgerMutation)(nil)

// billingledgerOption allows management of the mutation configuration using functional options.
type billingledgerOption func(*BillingLedgerMutation)

// newBillingLedgerMutation creates new mutation for the BillingLedger entity.
func newBillingLedgerMutation(c config, op Op, opts ...billingledgerOption) *BillingLedgerMutation {
	m := &BillingLedgerMutation{
		config:        c,
		op:            op,
		typ:           TypeBillingLedger,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillingLedgerID sets the ID field of the mutation.
func withBillingLedgerID(id string) billingledgerOption {
	return func(m *BillingLedgerMutation) {
		var (
			err   error
			once  sync.Once
			value *BillingLedger
		)
		m.oldValue = func(ctx context.Context) (*BillingLedger, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillingLedger.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillingLedger sets the old BillingLedger of the mutation.
func withBillingLedger(node *BillingLedger) billingledgerOption {
	return func(m *BillingLedgerMutation) {
		m.oldValue = func(context.Context) (*BillingLedger, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillingLedgerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillingLedgerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BillingLedger entities.
func (m *BillingLedgerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillingLedgerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillingLedgerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillingLedger.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *BillingLedgerMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *BillingLedgerMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ClearChatID clears the value of the "chat_id" field.
func (m *BillingLedgerMutation) ClearChatID() {
	m.chat_id = nil
	m.clearedFields[billingledger.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *BillingLedgerMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[billingledger.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *BillingLedgerMutation) ResetChatID() {
	m.chat_id = nil
	delete(m.clearedFields, billingledger.FieldChatID)
}

// SetExecutionID sets the "execution_id" field.
func (m *BillingLedgerMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *BillingLedgerMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *BillingLedgerMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[billingledger.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *BillingLedgerMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[billingledger.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *BillingLedgerMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, billingledger.FieldExecutionID)
}

// SetProjectID sets the "project_id" field.
func (m *BillingLedgerMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *BillingLedgerMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *BillingLedgerMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[billingledger.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *BillingLedgerMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[billingledger.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *BillingLedgerMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, billingledger.FieldProjectID)
}

// SetProjectName sets the "project_name" field.
func (m *BillingLedgerMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *BillingLedgerMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ClearProjectName clears the value of the "project_name" field.
func (m *BillingLedgerMutation) ClearProjectName() {
	m.project_name = nil
	m.clearedFields[billingledger.FieldProjectName] = struct{}{}
}

// ProjectNameCleared returns if the "project_name" field was cleared in this mutation.
func (m *BillingLedgerMutation) ProjectNameCleared() bool {
	_, ok := m.clearedFields[billingledger.FieldProjectName]
	return ok
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *BillingLedgerMutation) ResetProjectName() {
	m.project_name = nil
	delete(m.clearedFields, billingledger.FieldProjectName)
}

// SetChatTitle sets the "chat_title" field.
func (m *BillingLedgerMutation) SetChatTitle(s string) {
	m.chat_title = &s
}

// ChatTitle returns the value of the "chat_title" field in the mutation.
func (m *BillingLedgerMutation) ChatTitle() (r string, exists bool) {
	v := m.chat_title
	if v == nil {
		return
	}
	return *v, true
}

// OldChatTitle returns the old "chat_title" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldChatTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatTitle: %w", err)
	}
	return oldValue.ChatTitle, nil
}

// ClearChatTitle clears the value of the "chat_title" field.
func (m *BillingLedgerMutation) ClearChatTitle() {
	m.chat_title = nil
	m.clearedFields[billingledger.FieldChatTitle] = struct{}{}
}

// ChatTitleCleared returns if the "chat_title" field was cleared in this mutation.
func (m *BillingLedgerMutation) ChatTitleCleared() bool {
	_, ok := m.clearedFields[billingledger.FieldChatTitle]
	return ok
}

// ResetChatTitle resets all changes to the "chat_title" field.
func (m *BillingLedgerMutation) ResetChatTitle() {
	m.chat_title = nil
	delete(m.clearedFields, billingledger.FieldChatTitle)
}

// SetProvider sets the "provider" field.
func (m *BillingLedgerMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *BillingLedgerMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *BillingLedgerMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *BillingLedgerMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *BillingLedgerMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *BillingLedgerMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *BillingLedgerMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *BillingLedgerMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *BillingLedgerMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *BillingLedgerMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *BillingLedgerMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *BillingLedgerMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *BillingLedgerMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *BillingLedgerMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *BillingLedgerMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *BillingLedgerMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (m *BillingLedgerMutation) SetCacheCreationInputTokens(i int) {
	m.cache_creation_input_tokens = &i
	m.addcache_creation_input_tokens = nil
}

// CacheCreationInputTokens returns the value of the "cache_creation_input_tokens" field in the mutation.
func (m *BillingLedgerMutation) CacheCreationInputTokens() (r int, exists bool) {
	v := m.cache_creation_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheCreationInputTokens returns the old "cache_creation_input_tokens" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldCacheCreationInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheCreationInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheCreationInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheCreationInputTokens: %w", err)
	}
	return oldValue.CacheCreationInputTokens, nil
}

// AddCacheCreationInputTokens adds i to the "cache_creation_input_tokens" field.
func (m *BillingLedgerMutation) AddCacheCreationInputTokens(i int) {
	if m.addcache_creation_input_tokens != nil {
		*m.addcache_creation_input_tokens += i
	} else {
		m.addcache_creation_input_tokens = &i
	}
}

// AddedCacheCreationInputTokens returns the value that was added to the "cache_creation_input_tokens" field in this mutation.
func (m *BillingLedgerMutation) AddedCacheCreationInputTokens() (r int, exists bool) {
	v := m.addcache_creation_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheCreationInputTokens resets all changes to the "cache_creation_input_tokens" field.
func (m *BillingLedgerMutation) ResetCacheCreationInputTokens() {
	m.cache_creation_input_tokens = nil
	m.addcache_creation_input_tokens = nil
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (m *BillingLedgerMutation) SetCacheReadInputTokens(i int) {
	m.cache_read_input_tokens = &i
	m.addcache_read_input_tokens = nil
}

// CacheReadInputTokens returns the value of the "cache_read_input_tokens" field in the mutation.
func (m *BillingLedgerMutation) CacheReadInputTokens() (r int, exists bool) {
	v := m.cache_read_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheReadInputTokens returns the old "cache_read_input_tokens" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldCacheReadInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheReadInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheReadInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheReadInputTokens: %w", err)
	}
	return oldValue.CacheReadInputTokens, nil
}

// AddCacheReadInputTokens adds i to the "cache_read_input_tokens" field.
func (m *BillingLedgerMutation) AddCacheReadInputTokens(i int) {
	if m.addcache_read_input_tokens != nil {
		*m.addcache_read_input_tokens += i
	} else {
		m.addcache_read_input_tokens = &i
	}
}

// AddedCacheReadInputTokens returns the value that was added to the "cache_read_input_tokens" field in this mutation.
func (m *BillingLedgerMutation) AddedCacheReadInputTokens() (r int, exists bool) {
	v := m.addcache_read_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheReadInputTokens resets all changes to the "cache_read_input_tokens" field.
func (m *BillingLedgerMutation) ResetCacheReadInputTokens() {
	m.cache_read_input_tokens = nil
	m.addcache_read_input_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *BillingLedgerMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *BillingLedgerMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *BillingLedgerMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *BillingLedgerMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *BillingLedgerMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (m *BillingLedgerMutation) SetAPIKeyHash(s string) {
	m.api_key_hash = &s
}

// APIKeyHash returns the value of the "api_key_hash" field in the mutation.
func (m *BillingLedgerMutation) APIKeyHash() (r string, exists bool) {
	v := m.api_key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyHash returns the old "api_key_hash" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldAPIKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyHash: %w", err)
	}
	return oldValue.APIKeyHash, nil
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (m *BillingLedgerMutation) ClearAPIKeyHash() {
	m.api_key_hash = nil
	m.clearedFields[billingledger.FieldAPIKeyHash] = struct{}{}
}

// APIKeyHashCleared returns if the "api_key_hash" field was cleared in this mutation.
func (m *BillingLedgerMutation) APIKeyHashCleared() bool {
	_, ok := m.clearedFields[billingledger.FieldAPIKeyHash]
	return ok
}

// ResetAPIKeyHash resets all changes to the "api_key_hash" field.
func (m *BillingLedgerMutation) ResetAPIKeyHash() {
	m.api_key_hash = nil
	delete(m.clearedFields, billingledger.FieldAPIKeyHash)
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *BillingLedgerMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *BillingLedgerMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *BillingLedgerMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *BillingLedgerMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *BillingLedgerMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetEstimated sets the "estimated" field.
func (m *BillingLedgerMutation) SetEstimated(b bool) {
	m.estimated = &b
}

// Estimated returns the value of the "estimated" field in the mutation.
func (m *BillingLedgerMutation) Estimated() (r bool, exists bool) {
	v := m.estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimated returns the old "estimated" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldEstimated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimated: %w", err)
	}
	return oldValue.Estimated, nil
}

// ResetEstimated resets all changes to the "estimated" field.
func (m *BillingLedgerMutation) ResetEstimated() {
	m.estimated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BillingLedgerMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BillingLedgerMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BillingLedger entity.
// If the BillingLedger object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingLedgerMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *BillingLedgerMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *BillingLedgerMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BillingLedgerMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// Where appends a list predicates to the BillingLedgerMutation builder.
func (m *BillingLedgerMutation) Where(ps ...predicate.BillingLedger) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillingLedgerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillingLedgerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillingLedger, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillingLedgerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillingLedgerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillingLedger).
func (m *BillingLedgerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillingLedgerMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.chat_id != nil {
		fields = append(fields, billingledger.FieldChatID)
	}
	if m.execution_id != nil {
		fields = append(fields, billingledger.FieldExecutionID)
	}
	if m.project_id != nil {
		fields = append(fields, billingledger.FieldProjectID)
	}
	if m.project_name != nil {
		fields = append(fields, billingledger.FieldProjectName)
	}
	if m.chat_title != nil {
		fields = append(fields, billingledger.FieldChatTitle)
	}
	if m.provider != nil {
		fields = append(fields, billingledger.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, billingledger.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, billingledger.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, billingledger.FieldOutputTokens)
	}
	if m.cache_creation_input_tokens != nil {
		fields = append(fields, billingledger.FieldCacheCreationInputTokens)
	}
	if m.cache_read_input_tokens != nil {
		fields = append(fields, billingledger.FieldCacheReadInputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, billingledger.FieldTotalTokens)
	}
	if m.api_key_hash != nil {
		fields = append(fields, billingledger.FieldAPIKeyHash)
	}
	if m.cost_estimate != nil {
		fields = append(fields, billingledger.FieldCostEstimate)
	}
	if m.estimated != nil {
		fields = append(fields, billingledger.FieldEstimated)
	}
	if m.created_at != nil {
		fields = append(fields, billingledger.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillingLedgerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billingledger.FieldChatID:
		return m.ChatID()
	case billingledger.FieldExecutionID:
		return m.ExecutionID()
	case billingledger.FieldProjectID:
		return m.ProjectID()
	case billingledger.FieldProjectName:
		return m.ProjectName()
	case billingledger.FieldChatTitle:
		return m.ChatTitle()
	case billingledger.FieldProvider:
		return m.Provider()
	case billingledger.FieldModel:
		return m.Model()
	case billingledger.FieldInputTokens:
		return m.InputTokens()
	case billingledger.FieldOutputTokens:
		return m.OutputTokens()
	case billingledger.FieldCacheCreationInputTokens:
		return m.CacheCreationInputTokens()
	case billingledger.FieldCacheReadInputTokens:
		return m.CacheReadInputTokens()
	case billingledger.FieldTotalTokens:
		return m.TotalTokens()
	case billingledger.FieldAPIKeyHash:
		return m.APIKeyHash()
	case billingledger.FieldCostEstimate:
		return m.CostEstimate()
	case billingledger.FieldEstimated:
		return m.Estimated()
	case billingledger.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillingLedgerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billingledger.FieldChatID:
		return m.OldChatID(ctx)
	case billingledger.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case billingledger.FieldProjectID:
		return m.OldProjectID(ctx)
	case billingledger.FieldProjectName:
		return m.OldProjectName(ctx)
	case billingledger.FieldChatTitle:
		return m.OldChatTitle(ctx)
	case billingledger.FieldProvider:
		return m.OldProvider(ctx)
	case billingledger.FieldModel:
		return m.OldModel(ctx)
	case billingledger.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case billingledger.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case billingledger.FieldCacheCreationInputTokens:
		return m.OldCacheCreationInputTokens(ctx)
	case billingledger.FieldCacheReadInputTokens:
		return m.OldCacheReadInputTokens(ctx)
	case billingledger.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case billingledger.FieldAPIKeyHash:
		return m.OldAPIKeyHash(ctx)
	case billingledger.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case billingledger.FieldEstimated:
		return m.OldEstimated(ctx)
	case billingledger.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BillingLedger field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingLedgerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billingledger.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case billingledger.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case billingledger.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case billingledger.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case billingledger.FieldChatTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatTitle(v)
		return nil
	case billingledger.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case billingledger.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case billingledger.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case billingledger.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case billingledger.FieldCacheCreationInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheCreationInputTokens(v)
		return nil
	case billingledger.FieldCacheReadInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheReadInputTokens(v)
		return nil
	case billingledger.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case billingledger.FieldAPIKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyHash(v)
		return nil
	case billingledger.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case billingledger.FieldEstimated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimated(v)
		return nil
	case billingledger.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillingLedger field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillingLedgerMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, billingledger.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, billingledger.FieldOutputTokens)
	}
	if m.addcache_creation_input_tokens != nil {
		fields = append(fields, billingledger.FieldCacheCreationInputTokens)
	}
	if m.addcache_read_input_tokens != nil {
		fields = append(fields, billingledger.FieldCacheReadInputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, billingledger.FieldTotalTokens)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, billingledger.FieldCostEstimate)
	}
	if m.addcreated_at != nil {
		fields = append(fields, billingledger.FieldCreatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillingLedgerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case billingledger.FieldInputTokens:
		return m.AddedInputTokens()
	case billingledger.FieldOutputTokens:
		return m.AddedOutputTokens()
	case billingledger.FieldCacheCreationInputTokens:
		return m.AddedCacheCreationInputTokens()
	case billingledger.FieldCacheReadInputTokens:
		return m.AddedCacheReadInputTokens()
	case billingledger.FieldTotalTokens:
		return m.AddedTotalTokens()
	case billingledger.FieldCostEstimate:
		return m.AddedCostEstimate()
	case billingledger.FieldCreatedAt:
		return m.AddedCreatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingLedgerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case billingledger.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case billingledger.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case billingledger.FieldCacheCreationInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheCreationInputTokens(v)
		return nil
	case billingledger.FieldCacheReadInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheReadInputTokens(v)
		return nil
	case billingledger.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case billingledger.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	case billingledger.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillingLedger numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillingLedgerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(billingledger.FieldChatID) {
		fields = append(fields, billingledger.FieldChatID)
	}
	if m.FieldCleared(billingledger.FieldExecutionID) {
		fields = append(fields, billingledger.FieldExecutionID)
	}
	if m.FieldCleared(billingledger.FieldProjectID) {
		fields = append(fields, billingledger.FieldProjectID)
	}
	if m.FieldCleared(billingledger.FieldProjectName) {
		fields = append(fields, billingledger.FieldProjectName)
	}
	if m.FieldCleared(billingledger.FieldChatTitle) {
		fields = append(fields, billingledger.FieldChatTitle)
	}
	if m.FieldCleared(billingledger.FieldAPIKeyHash) {
		fields = append(fields, billingledger.FieldAPIKeyHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillingLedgerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillingLedgerMutation) ClearField(name string) error {
	switch name {
	case billingledger.FieldChatID:
		m.ClearChatID()
		return nil
	case billingledger.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case billingledger.FieldProjectID:
		m.ClearProjectID()
		return nil
	case billingledger.FieldProjectName:
		m.ClearProjectName()
		return nil
	case billingledger.FieldChatTitle:
		m.ClearChatTitle()
		return nil
	case billingledger.FieldAPIKeyHash:
		m.ClearAPIKeyHash()
		return nil
	}
	return fmt.Errorf("unknown BillingLedger nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillingLedgerMutation) ResetField(name string) error {
	switch name {
	case billingledger.FieldChatID:
		m.ResetChatID()
		return nil
	case billingledger.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case billingledger.FieldProjectID:
		m.ResetProjectID()
		return nil
	case billingledger.FieldProjectName:
		m.ResetProjectName()
		return nil
	case billingledger.FieldChatTitle:
		m.ResetChatTitle()
		return nil
	case billingledger.FieldProvider:
		m.ResetProvider()
		return nil
	case billingledger.FieldModel:
		m.ResetModel()
		return nil
	case billingledger.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case billingledger.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case billingledger.FieldCacheCreationInputTokens:
		m.ResetCacheCreationInputTokens()
		return nil
	case billingledger.FieldCacheReadInputTokens:
		m.ResetCacheReadInputTokens()
		return nil
	case billingledger.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case billingledger.FieldAPIKeyHash:
		m.ResetAPIKeyHash()
		return nil
	case billingledger.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case billingledger.FieldEstimated:
		m.ResetEstimated()
		return nil
	case billingledger.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BillingLedger field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillingLedgerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillingLedgerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillingLedgerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillingLedgerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillingLedgerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillingLedgerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillingLedgerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BillingLedger unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillingLedgerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BillingLedger edge %s", name)
}

// ChatMutation represents an operation that mutates the Chat nodes in the graph.
type ChatMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	created_at         *int64
	addcreated_at      *int64
	updated_at         *int64
	addupdated_at      *int64
	clearedFields      map[string]struct{}
	project            *string
	clearedproject     bool
	messages           map[string]struct{}
	removedmessages    map[string]struct{}
	clearedmessages    bool
	executions         map[string]struct{}
	removedexecutions  map[string]struct{}
	clearedexecutions  bool
	runs               map[string]struct{}
	removedruns        map[string]struct{}
	clearedruns        bool
	token_usage        map[string]struct{}
	removedtoken_usage map[string]struct{}
	clearedtoken_usage bool
	snapshots          map[string]struct{}
	removedsnapshots   map[string]struct{}
	clearedsnapshots   bool
	done               bool
	oldValue           func(context.Context) (*Chat, error)
	predicates         []predicate.Chat
}

var _ ent.Mutation = (*ChatMutation)(nil)

// chatOption allows management of the mutation configuration using functional options.
type chatOption func(*ChatMutation)

// newChatMutation creates new mutation for the Chat entity.
func newChatMutation(c config, op Op, opts ...chatOption) *ChatMutation {
	m := &ChatMutation{
		config:        c,
		op:            op,
		typ:           TypeChat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatID sets the ID field of the mutation.
func withChatID(id string) chatOption {
	return func(m *ChatMutation) {
		var (
			err   error
			once  sync.Once
			value *Chat
		)
		m.oldValue = func(ctx context.Context) (*Chat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChat sets the old Chat of the mutation.
func withChat(node *Chat) chatOption {
	return func(m *ChatMutation) {
		m.oldValue = func(context.Context) (*Chat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chat entities.
func (m *ChatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ChatMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ChatMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ChatMutation) ResetProjectID() {
	m.project = nil
}

// SetTitle sets the "title" field.
func (m *ChatMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChatMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChatMutation) ResetTitle() {
	m.title = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *ChatMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *ChatMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldUpdatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *ChatMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *ChatMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ChatMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[chat.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ChatMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ChatMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ChatMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ChatMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ChatMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ChatMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ChatMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ChatMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddExecutionIDs adds the "executions" edge to the AgentExecution entity by ids.
func (m *ChatMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the AgentExecution entity.
func (m *ChatMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the AgentExecution entity was cleared.
func (m *ChatMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the AgentExecution entity by IDs.
func (m *ChatMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the AgentExecution entity.
func (m *ChatMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *ChatMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *ChatMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddRunIDs adds the "runs" edge to the PipelineRun entity by ids.
func (m *ChatMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the PipelineRun entity.
func (m *ChatMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the PipelineRun entity was cleared.
func (m *ChatMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the PipelineRun entity by IDs.
func (m *ChatMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the PipelineRun entity.
func (m *ChatMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ChatMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ChatMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddTokenUsageIDs adds the "token_usage" edge to the TokenUsage entity by ids.
func (m *ChatMutation) AddTokenUsageIDs(ids ...string) {
	if m.token_usage == nil {
		m.token_usage = make(map[string]struct{})
	}
	for i := range ids {
		m.token_usage[ids[i]] = struct{}{}
	}
}

// ClearTokenUsage clears the "token_usage" edge to the TokenUsage entity.
func (m *ChatMutation) ClearTokenUsage() {
	m.clearedtoken_usage = true
}

// TokenUsageCleared reports if the "token_usage" edge to the TokenUsage entity was cleared.
func (m *ChatMutation) TokenUsageCleared() bool {
	return m.clearedtoken_usage
}

// RemoveTokenUsageIDs removes the "token_usage" edge to the TokenUsage entity by IDs.
func (m *ChatMutation) RemoveTokenUsageIDs(ids ...string) {
	if m.removedtoken_usage == nil {
		m.removedtoken_usage = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.token_usage, ids[i])
		m.removedtoken_usage[ids[i]] = struct{}{}
	}
}

// RemovedTokenUsage returns the removed IDs of the "token_usage" edge to the TokenUsage entity.
func (m *ChatMutation) RemovedTokenUsageIDs() (ids []string) {
	for id := range m.removedtoken_usage {
		ids = append(ids, id)
	}
	return
}

// TokenUsageIDs returns the "token_usage" edge IDs in the mutation.
func (m *ChatMutation) TokenUsageIDs() (ids []string) {
	for id := range m.token_usage {
		ids = append(ids, id)
	}
	return
}

// ResetTokenUsage resets all changes to the "token_usage" edge.
func (m *ChatMutation) ResetTokenUsage() {
	m.token_usage = nil
	m.clearedtoken_usage = false
	m.removedtoken_usage = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by ids.
func (m *ChatMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the Snapshot entity.
func (m *ChatMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the Snapshot entity was cleared.
func (m *ChatMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the Snapshot entity by IDs.
func (m *ChatMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the Snapshot entity.
func (m *ChatMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *ChatMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *ChatMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// Where appends a list predicates to the ChatMutation builder.
func (m *ChatMutation) Where(ps ...predicate.Chat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chat).
func (m *ChatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, chat.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, chat.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, chat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldProjectID:
		return m.ProjectID()
	case chat.FieldTitle:
		return m.Title()
	case chat.FieldCreatedAt:
		return m.CreatedAt()
	case chat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chat.FieldProjectID:
		return m.OldProjectID(ctx)
	case chat.FieldTitle:
		return m.OldTitle(ctx)
	case chat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chat.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case chat.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chat.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chat.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, chat.FieldCreatedAt)
	}
	if m.addupdated_at != nil {
		fields = append(fields, chat.FieldUpdatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldCreatedAt:
		return m.AddedCreatedAt()
	case chat.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chat.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case chat.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Chat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMutation) ResetField(name string) error {
	switch name {
	case chat.FieldProjectID:
		m.ResetProjectID()
		return nil
	case chat.FieldTitle:
		m.ResetTitle()
		return nil
	case chat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.project != nil {
		edges = append(edges, chat.EdgeProject)
	}
	if m.messages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	if m.executions != nil {
		edges = append(edges, chat.EdgeExecutions)
	}
	if m.runs != nil {
		edges = append(edges, chat.EdgeRuns)
	}
	if m.token_usage != nil {
		edges = append(edges, chat.EdgeTokenUsage)
	}
	if m.snapshots != nil {
		edges = append(edges, chat.EdgeSnapshots)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeTokenUsage:
		ids := make([]ent.Value, 0, len(m.token_usage))
		for id := range m.token_usage {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedmessages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	if m.removedexecutions != nil {
		edges = append(edges, chat.EdgeExecutions)
	}
	if m.removedruns != nil {
		edges = append(edges, chat.EdgeRuns)
	}
	if m.removedtoken_usage != nil {
		edges = append(edges, chat.EdgeTokenUsage)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, chat.EdgeSnapshots)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeTokenUsage:
		ids := make([]ent.Value, 0, len(m.removedtoken_usage))
		for id := range m.removedtoken_usage {
			ids = append(ids, id)
		}
		return ids
	case chat.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedproject {
		edges = append(edges, chat.EdgeProject)
	}
	if m.clearedmessages {
		edges = append(edges, chat.EdgeMessages)
	}
	if m.clearedexecutions {
		edges = append(edges, chat.EdgeExecutions)
	}
	if m.clearedruns {
		edges = append(edges, chat.EdgeRuns)
	}
	if m.clearedtoken_usage {
		edges = append(edges, chat.EdgeTokenUsage)
	}
	if m.clearedsnapshots {
		edges = append(edges, chat.EdgeSnapshots)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMutation) EdgeCleared(name string) bool {
	switch name {
	case chat.EdgeProject:
		return m.clearedproject
	case chat.EdgeMessages:
		return m.clearedmessages
	case chat.EdgeExecutions:
		return m.clearedexecutions
	case chat.EdgeRuns:
		return m.clearedruns
	case chat.EdgeTokenUsage:
		return m.clearedtoken_usage
	case chat.EdgeSnapshots:
		return m.clearedsnapshots
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMutation) ClearEdge(name string) error {
	switch name {
	case chat.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Chat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMutation) ResetEdge(name string) error {
	switch name {
	case chat.EdgeProject:
		m.ResetProject()
		return nil
	case chat.EdgeMessages:
		m.ResetMessages()
		return nil
	case chat.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case chat.EdgeRuns:
		m.ResetRuns()
		return nil
	case chat.EdgeTokenUsage:
		m.ResetTokenUsage()
		return nil
	case chat.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	}
	return fmt.Errorf("unknown Chat edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	role          *message.Role
	content       *string
	agent_name    *string
	metadata      *map[string]interface{}
	created_at    *int64
	addcreated_at *int64
	clearedFields map[string]struct{}
	chat          *string
	clearedchat   bool
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *MessageMutation) SetChatID(s string) {
	m.chat = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MessageMutation) ChatID() (r string, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MessageMutation) ResetChatID() {
	m.chat = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetAgentName sets the "agent_name" field.
func (m *MessageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *MessageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAgentName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *MessageMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[message.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *MessageMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[message.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *MessageMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, message.FieldAgentName)
}

// SetMetadata sets the "metadata" field.
func (m *MessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[message.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[message.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, message.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *MessageMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *MessageMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *MessageMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[message.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *MessageMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *MessageMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.chat != nil {
		fields = append(fields, message.FieldChatID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.agent_name != nil {
		fields = append(fields, message.FieldAgentName)
	}
	if m.metadata != nil {
		fields = append(fields, message.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldChatID:
		return m.ChatID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldAgentName:
		return m.AgentName()
	case message.FieldMetadata:
		return m.Metadata()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldChatID:
		return m.OldChatID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldAgentName:
		return m.OldAgentName(ctx)
	case message.FieldMetadata:
		return m.OldMetadata(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case message.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldCreatedAt:
		return m.AddedCreatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldAgentName) {
		fields = append(fields, message.FieldAgentName)
	}
	if m.FieldCleared(message.FieldMetadata) {
		fields = append(fields, message.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldAgentName:
		m.ClearAgentName()
		return nil
	case message.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldChatID:
		m.ResetChatID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldAgentName:
		m.ResetAgentName()
		return nil
	case message.FieldMetadata:
		m.ResetMetadata()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, message.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, message.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	intent               *pipelinerun.Intent
	scope                *pipelinerun.Scope
	user_message         *string
	planned_agents       *[]string
	appendplanned_agents []string
	status               *pipelinerun.Status
	failure_reason       *string
	started_at           *int64
	addstarted_at        *int64
	completed_at         *int64
	addcompleted_at      *int64
	clearedFields        map[string]struct{}
	chat                 *string
	clearedchat          bool
	done                 bool
	oldValue             func(context.Context) (*PipelineRun, error)
	predicates           []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *PipelineRunMutation) SetChatID(s string) {
	m.chat = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *PipelineRunMutation) ChatID() (r string, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *PipelineRunMutation) ResetChatID() {
	m.chat = nil
}

// SetIntent sets the "intent" field.
func (m *PipelineRunMutation) SetIntent(pi pipelinerun.Intent) {
	m.intent = &pi
}

// Intent returns the value of the "intent" field in the mutation.
func (m *PipelineRunMutation) Intent() (r pipelinerun.Intent, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldIntent(ctx context.Context) (v pipelinerun.Intent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ResetIntent resets all changes to the "intent" field.
func (m *PipelineRunMutation) ResetIntent() {
	m.intent = nil
}

// SetScope sets the "scope" field.
func (m *PipelineRunMutation) SetScope(pi pipelinerun.Scope) {
	m.scope = &pi
}

// Scope returns the value of the "scope" field in the mutation.
func (m *PipelineRunMutation) Scope() (r pipelinerun.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldScope(ctx context.Context) (v pipelinerun.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *PipelineRunMutation) ResetScope() {
	m.scope = nil
}

// SetUserMessage sets the "user_message" field.
func (m *PipelineRunMutation) SetUserMessage(s string) {
	m.user_message = &s
}

// UserMessage returns the value of the "user_message" field in the mutation.
func (m *PipelineRunMutation) UserMessage() (r string, exists bool) {
	v := m.user_message
	if v == nil {
		return
	}
	return *v, true
}

// OldUserMessage returns the old "user_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldUserMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserMessage: %w", err)
	}
	return oldValue.UserMessage, nil
}

// ResetUserMessage resets all changes to the "user_message" field.
func (m *PipelineRunMutation) ResetUserMessage() {
	m.user_message = nil
}

// SetPlannedAgents sets the "planned_agents" field.
func (m *PipelineRunMutation) SetPlannedAgents(s []string) {
	m.planned_agents = &s
	m.appendplanned_agents = nil
}

// PlannedAgents returns the value of the "planned_agents" field in the mutation.
func (m *PipelineRunMutation) PlannedAgents() (r []string, exists bool) {
	v := m.planned_agents
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannedAgents returns the old "planned_agents" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPlannedAgents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannedAgents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannedAgents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannedAgents: %w", err)
	}
	return oldValue.PlannedAgents, nil
}

// AppendPlannedAgents adds s to the "planned_agents" field.
func (m *PipelineRunMutation) AppendPlannedAgents(s []string) {
	m.appendplanned_agents = append(m.appendplanned_agents, s...)
}

// AppendedPlannedAgents returns the list of values that were appended to the "planned_agents" field in this mutation.
func (m *PipelineRunMutation) AppendedPlannedAgents() ([]string, bool) {
	if len(m.appendplanned_agents) == 0 {
		return nil, false
	}
	return m.appendplanned_agents, true
}

// ResetPlannedAgents resets all changes to the "planned_agents" field.
func (m *PipelineRunMutation) ResetPlannedAgents() {
	m.planned_agents = nil
	m.appendplanned_agents = nil
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *PipelineRunMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *PipelineRunMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *PipelineRunMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[pipelinerun.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *PipelineRunMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *PipelineRunMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, pipelinerun.FieldFailureReason)
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(i int64) {
	m.started_at = &i
	m.addstarted_at = nil
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r int64, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// AddStartedAt adds i to the "started_at" field.
func (m *PipelineRunMutation) AddStartedAt(i int64) {
	if m.addstarted_at != nil {
		*m.addstarted_at += i
	} else {
		m.addstarted_at = &i
	}
}

// AddedStartedAt returns the value that was added to the "started_at" field in this mutation.
func (m *PipelineRunMutation) AddedStartedAt() (r int64, exists bool) {
	v := m.addstarted_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	m.addstarted_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(i int64) {
	m.completed_at = &i
	m.addcompleted_at = nil
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r int64, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// AddCompletedAt adds i to the "completed_at" field.
func (m *PipelineRunMutation) AddCompletedAt(i int64) {
	if m.addcompleted_at != nil {
		*m.addcompleted_at += i
	} else {
		m.addcompleted_at = &i
	}
}

// AddedCompletedAt returns the value that was added to the "completed_at" field in this mutation.
func (m *PipelineRunMutation) AddedCompletedAt() (r int64, exists bool) {
	v := m.addcompleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *PipelineRunMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[pipelinerun.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *PipelineRunMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *PipelineRunMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *PipelineRunMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.chat != nil {
		fields = append(fields, pipelinerun.FieldChatID)
	}
	if m.intent != nil {
		fields = append(fields, pipelinerun.FieldIntent)
	}
	if m.scope != nil {
		fields = append(fields, pipelinerun.FieldScope)
	}
	if m.user_message != nil {
		fields = append(fields, pipelinerun.FieldUserMessage)
	}
	if m.planned_agents != nil {
		fields = append(fields, pipelinerun.FieldPlannedAgents)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.failure_reason != nil {
		fields = append(fields, pipelinerun.FieldFailureReason)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldChatID:
		return m.ChatID()
	case pipelinerun.FieldIntent:
		return m.Intent()
	case pipelinerun.FieldScope:
		return m.Scope()
	case pipelinerun.FieldUserMessage:
		return m.UserMessage()
	case pipelinerun.FieldPlannedAgents:
		return m.PlannedAgents()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldFailureReason:
		return m.FailureReason()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldChatID:
		return m.OldChatID(ctx)
	case pipelinerun.FieldIntent:
		return m.OldIntent(ctx)
	case pipelinerun.FieldScope:
		return m.OldScope(ctx)
	case pipelinerun.FieldUserMessage:
		return m.OldUserMessage(ctx)
	case pipelinerun.FieldPlannedAgents:
		return m.OldPlannedAgents(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case pipelinerun.FieldIntent:
		v, ok := value.(pipelinerun.Intent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case pipelinerun.FieldScope:
		v, ok := value.(pipelinerun.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case pipelinerun.FieldUserMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserMessage(v)
		return nil
	case pipelinerun.FieldPlannedAgents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannedAgents(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addstarted_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.addcompleted_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldStartedAt:
		return m.AddedStartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.AddedCompletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldFailureReason) {
		fields = append(fields, pipelinerun.FieldFailureReason)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldChatID:
		m.ResetChatID()
		return nil
	case pipelinerun.FieldIntent:
		m.ResetIntent()
		return nil
	case pipelinerun.FieldScope:
		m.ResetScope()
		return nil
	case pipelinerun.FieldUserMessage:
		m.ResetUserMessage()
		return nil
	case pipelinerun.FieldPlannedAgents:
		m.ResetPlannedAgents()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, pipelinerun.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, pipelinerun.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	case pipelinerun.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	_path            *string
	created_at       *int64
	addcreated_at    *int64
	updated_at       *int64
	addupdated_at    *int64
	clearedFields    map[string]struct{}
	chats            map[string]struct{}
	removedchats     map[string]struct{}
	clearedchats     bool
	snapshots        map[string]struct{}
	removedsnapshots map[string]struct{}
	clearedsnapshots bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetPath sets the "path" field.
func (m *ProjectMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ProjectMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ProjectMutation) ResetPath() {
	m._path = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *ProjectMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *ProjectMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *ProjectMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *ProjectMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
}

// AddChatIDs adds the "chats" edge to the Chat entity by ids.
func (m *ProjectMutation) AddChatIDs(ids ...string) {
	if m.chats == nil {
		m.chats = make(map[string]struct{})
	}
	for i := range ids {
		m.chats[ids[i]] = struct{}{}
	}
}

// ClearChats clears the "chats" edge to the Chat entity.
func (m *ProjectMutation) ClearChats() {
	m.clearedchats = true
}

// ChatsCleared reports if the "chats" edge to the Chat entity was cleared.
func (m *ProjectMutation) ChatsCleared() bool {
	return m.clearedchats
}

// RemoveChatIDs removes the "chats" edge to the Chat entity by IDs.
func (m *ProjectMutation) RemoveChatIDs(ids ...string) {
	if m.removedchats == nil {
		m.removedchats = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chats, ids[i])
		m.removedchats[ids[i]] = struct{}{}
	}
}

// RemovedChats returns the removed IDs of the "chats" edge to the Chat entity.
func (m *ProjectMutation) RemovedChatsIDs() (ids []string) {
	for id := range m.removedchats {
		ids = append(ids, id)
	}
	return
}

// ChatsIDs returns the "chats" edge IDs in the mutation.
func (m *ProjectMutation) ChatsIDs() (ids []string) {
	for id := range m.chats {
		ids = append(ids, id)
	}
	return
}

// ResetChats resets all changes to the "chats" edge.
func (m *ProjectMutation) ResetChats() {
	m.chats = nil
	m.clearedchats = false
	m.removedchats = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by ids.
func (m *ProjectMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the Snapshot entity.
func (m *ProjectMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the Snapshot entity was cleared.
func (m *ProjectMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the Snapshot entity by IDs.
func (m *ProjectMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the Snapshot entity.
func (m *ProjectMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *ProjectMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *ProjectMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m._path != nil {
		fields = append(fields, project.FieldPath)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldPath:
		return m.Path()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldPath:
		return m.OldPath(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.addupdated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCreatedAt:
		return m.AddedCreatedAt()
	case project.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldPath:
		m.ResetPath()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chats != nil {
		edges = append(edges, project.EdgeChats)
	}
	if m.snapshots != nil {
		edges = append(edges, project.EdgeSnapshots)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeChats:
		ids := make([]ent.Value, 0, len(m.chats))
		for id := range m.chats {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchats != nil {
		edges = append(edges, project.EdgeChats)
	}
	if m.removedsnapshots != nil {
		edges = append(edges, project.EdgeSnapshots)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeChats:
		ids := make([]ent.Value, 0, len(m.removedchats))
		for id := range m.removedchats {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchats {
		edges = append(edges, project.EdgeChats)
	}
	if m.clearedsnapshots {
		edges = append(edges, project.EdgeSnapshots)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeChats:
		return m.clearedchats
	case project.EdgeSnapshots:
		return m.clearedsnapshots
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeChats:
		m.ResetChats()
		return nil
	case project.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op             Op
	typ            string
	id             *string
	label          *string
	commit_sha     *string
	manifest       *[]string
	appendmanifest []string
	created_at     *int64
	addcreated_at  *int64
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	chat           *string
	clearedchat    bool
	done           bool
	oldValue       func(context.Context) (*Snapshot, error)
	predicates     []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id string) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Snapshot entities.
func (m *SnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SnapshotMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SnapshotMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SnapshotMutation) ResetProjectID() {
	m.project = nil
}

// SetChatID sets the "chat_id" field.
func (m *SnapshotMutation) SetChatID(s string) {
	m.chat = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *SnapshotMutation) ChatID() (r string, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldChatID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ClearChatID clears the value of the "chat_id" field.
func (m *SnapshotMutation) ClearChatID() {
	m.chat = nil
	m.clearedFields[snapshot.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *SnapshotMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *SnapshotMutation) ResetChatID() {
	m.chat = nil
	delete(m.clearedFields, snapshot.FieldChatID)
}

// SetLabel sets the "label" field.
func (m *SnapshotMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *SnapshotMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *SnapshotMutation) ResetLabel() {
	m.label = nil
}

// SetCommitSha sets the "commit_sha" field.
func (m *SnapshotMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *SnapshotMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldCommitSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *SnapshotMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[snapshot.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *SnapshotMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *SnapshotMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, snapshot.FieldCommitSha)
}

// SetManifest sets the "manifest" field.
func (m *SnapshotMutation) SetManifest(s []string) {
	m.manifest = &s
	m.appendmanifest = nil
}

// Manifest returns the value of the "manifest" field in the mutation.
func (m *SnapshotMutation) Manifest() (r []string, exists bool) {
	v := m.manifest
	if v == nil {
		return
	}
	return *v, true
}

// OldManifest returns the old "manifest" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldManifest(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifest: %w", err)
	}
	return oldValue.Manifest, nil
}

// AppendManifest adds s to the "manifest" field.
func (m *SnapshotMutation) AppendManifest(s []string) {
	m.appendmanifest = append(m.appendmanifest, s...)
}

// AppendedManifest returns the list of values that were appended to the "manifest" field in this mutation.
func (m *SnapshotMutation) AppendedManifest() ([]string, bool) {
	if len(m.appendmanifest) == 0 {
		return nil, false
	}
	return m.appendmanifest, true
}

// ResetManifest resets all changes to the "manifest" field.
func (m *SnapshotMutation) ResetManifest() {
	m.manifest = nil
	m.appendmanifest = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SnapshotMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SnapshotMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *SnapshotMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *SnapshotMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SnapshotMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[snapshot.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SnapshotMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SnapshotMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SnapshotMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *SnapshotMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[snapshot.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *SnapshotMutation) ChatCleared() bool {
	return m.ChatIDCleared() || m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *SnapshotMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *SnapshotMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, snapshot.FieldProjectID)
	}
	if m.chat != nil {
		fields = append(fields, snapshot.FieldChatID)
	}
	if m.label != nil {
		fields = append(fields, snapshot.FieldLabel)
	}
	if m.commit_sha != nil {
		fields = append(fields, snapshot.FieldCommitSha)
	}
	if m.manifest != nil {
		fields = append(fields, snapshot.FieldManifest)
	}
	if m.created_at != nil {
		fields = append(fields, snapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldProjectID:
		return m.ProjectID()
	case snapshot.FieldChatID:
		return m.ChatID()
	case snapshot.FieldLabel:
		return m.Label()
	case snapshot.FieldCommitSha:
		return m.CommitSha()
	case snapshot.FieldManifest:
		return m.Manifest()
	case snapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldProjectID:
		return m.OldProjectID(ctx)
	case snapshot.FieldChatID:
		return m.OldChatID(ctx)
	case snapshot.FieldLabel:
		return m.OldLabel(ctx)
	case snapshot.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case snapshot.FieldManifest:
		return m.OldManifest(ctx)
	case snapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case snapshot.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case snapshot.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case snapshot.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case snapshot.FieldManifest:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifest(v)
		return nil
	case snapshot.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, snapshot.FieldCreatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldCreatedAt:
		return m.AddedCreatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(snapshot.FieldChatID) {
		fields = append(fields, snapshot.FieldChatID)
	}
	if m.FieldCleared(snapshot.FieldCommitSha) {
		fields = append(fields, snapshot.FieldCommitSha)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	switch name {
	case snapshot.FieldChatID:
		m.ClearChatID()
		return nil
	case snapshot.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	}
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldProjectID:
		m.ResetProjectID()
		return nil
	case snapshot.FieldChatID:
		m.ResetChatID()
		return nil
	case snapshot.FieldLabel:
		m.ResetLabel()
		return nil
	case snapshot.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case snapshot.FieldManifest:
		m.ResetManifest()
		return nil
	case snapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, snapshot.EdgeProject)
	}
	if m.chat != nil {
		edges = append(edges, snapshot.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case snapshot.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case snapshot.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, snapshot.EdgeProject)
	}
	if m.clearedchat {
		edges = append(edges, snapshot.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case snapshot.EdgeProject:
		return m.clearedproject
	case snapshot.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	switch name {
	case snapshot.EdgeProject:
		m.ClearProject()
		return nil
	case snapshot.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	switch name {
	case snapshot.EdgeProject:
		m.ResetProject()
		return nil
	case snapshot.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// TokenUsageMutation represents an operation that mutates the TokenUsage nodes in the graph.
type TokenUsageMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	execution_id                   *string
	provider                       *string
	model                          *string
	input_tokens                   *int
	addinput_tokens                *int
	output_tokens                  *int
	addoutput_tokens               *int
	cache_creation_input_tokens    *int
	addcache_creation_input_tokens *int
	cache_read_input_tokens        *int
	addcache_read_input_tokens     *int
	total_tokens                   *int
	addtotal_tokens                *int
	api_key_hash                   *string
	cost_estimate                  *float64
	addcost_estimate               *float64
	estimated                      *bool
	created_at                     *int64
	addcreated_at                  *int64
	clearedFields                  map[string]struct{}
	chat                           *string
	clearedchat                    bool
	done                           bool
	oldValue                       func(context.Context) (*TokenUsage, error)
	predicates                     []predicate.TokenUsage
}

var _ ent.Mutation = (*TokenUsageMutation)(nil)

// tokenusageOption allows management of the mutation configuration using functional options.
type tokenusageOption func(*TokenUsageMutation)

// newTokenUsageMutation creates new mutation for the TokenUsage entity.
func newTokenUsageMutation(c config, op Op, opts ...tokenusageOption) *TokenUsageMutation {
	m := &TokenUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenUsageID sets the ID field of the mutation.
func withTokenUsageID(id string) tokenusageOption {
	return func(m *TokenUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenUsage
		)
		m.oldValue = func(ctx context.Context) (*TokenUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenUsage sets the old TokenUsage of the mutation.
func withTokenUsage(node *TokenUsage) tokenusageOption {
	return func(m *TokenUsageMutation) {
		m.oldValue = func(context.Context) (*TokenUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenUsage entities.
func (m *TokenUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *TokenUsageMutation) SetChatID(s string) {
	m.chat = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *TokenUsageMutation) ChatID() (r string, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *TokenUsageMutation) ResetChatID() {
	m.chat = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *TokenUsageMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *TokenUsageMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *TokenUsageMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[tokenusage.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *TokenUsageMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *TokenUsageMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, tokenusage.FieldExecutionID)
}

// SetProvider sets the "provider" field.
func (m *TokenUsageMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *TokenUsageMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *TokenUsageMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *TokenUsageMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TokenUsageMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *TokenUsageMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *TokenUsageMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *TokenUsageMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *TokenUsageMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *TokenUsageMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *TokenUsageMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *TokenUsageMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *TokenUsageMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *TokenUsageMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (m *TokenUsageMutation) SetCacheCreationInputTokens(i int) {
	m.cache_creation_input_tokens = &i
	m.addcache_creation_input_tokens = nil
}

// CacheCreationInputTokens returns the value of the "cache_creation_input_tokens" field in the mutation.
func (m *TokenUsageMutation) CacheCreationInputTokens() (r int, exists bool) {
	v := m.cache_creation_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheCreationInputTokens returns the old "cache_creation_input_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCacheCreationInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheCreationInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheCreationInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheCreationInputTokens: %w", err)
	}
	return oldValue.CacheCreationInputTokens, nil
}

// AddCacheCreationInputTokens adds i to the "cache_creation_input_tokens" field.
func (m *TokenUsageMutation) AddCacheCreationInputTokens(i int) {
	if m.addcache_creation_input_tokens != nil {
		*m.addcache_creation_input_tokens += i
	} else {
		m.addcache_creation_input_tokens = &i
	}
}

// AddedCacheCreationInputTokens returns the value that was added to the "cache_creation_input_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedCacheCreationInputTokens() (r int, exists bool) {
	v := m.addcache_creation_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheCreationInputTokens resets all changes to the "cache_creation_input_tokens" field.
func (m *TokenUsageMutation) ResetCacheCreationInputTokens() {
	m.cache_creation_input_tokens = nil
	m.addcache_creation_input_tokens = nil
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (m *TokenUsageMutation) SetCacheReadInputTokens(i int) {
	m.cache_read_input_tokens = &i
	m.addcache_read_input_tokens = nil
}

// CacheReadInputTokens returns the value of the "cache_read_input_tokens" field in the mutation.
func (m *TokenUsageMutation) CacheReadInputTokens() (r int, exists bool) {
	v := m.cache_read_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheReadInputTokens returns the old "cache_read_input_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCacheReadInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheReadInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheReadInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheReadInputTokens: %w", err)
	}
	return oldValue.CacheReadInputTokens, nil
}

// AddCacheReadInputTokens adds i to the "cache_read_input_tokens" field.
func (m *TokenUsageMutation) AddCacheReadInputTokens(i int) {
	if m.addcache_read_input_tokens != nil {
		*m.addcache_read_input_tokens += i
	} else {
		m.addcache_read_input_tokens = &i
	}
}

// AddedCacheReadInputTokens returns the value that was added to the "cache_read_input_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedCacheReadInputTokens() (r int, exists bool) {
	v := m.addcache_read_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCacheReadInputTokens resets all changes to the "cache_read_input_tokens" field.
func (m *TokenUsageMutation) ResetCacheReadInputTokens() {
	m.cache_read_input_tokens = nil
	m.addcache_read_input_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TokenUsageMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TokenUsageMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TokenUsageMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TokenUsageMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TokenUsageMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (m *TokenUsageMutation) SetAPIKeyHash(s string) {
	m.api_key_hash = &s
}

// APIKeyHash returns the value of the "api_key_hash" field in the mutation.
func (m *TokenUsageMutation) APIKeyHash() (r string, exists bool) {
	v := m.api_key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyHash returns the old "api_key_hash" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldAPIKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyHash: %w", err)
	}
	return oldValue.APIKeyHash, nil
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (m *TokenUsageMutation) ClearAPIKeyHash() {
	m.api_key_hash = nil
	m.clearedFields[tokenusage.FieldAPIKeyHash] = struct{}{}
}

// APIKeyHashCleared returns if the "api_key_hash" field was cleared in this mutation.
func (m *TokenUsageMutation) APIKeyHashCleared() bool {
	_, ok := m.clearedFields[tokenusage.FieldAPIKeyHash]
	return ok
}

// ResetAPIKeyHash resets all changes to the "api_key_hash" field.
func (m *TokenUsageMutation) ResetAPIKeyHash() {
	m.api_key_hash = nil
	delete(m.clearedFields, tokenusage.FieldAPIKeyHash)
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *TokenUsageMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *TokenUsageMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *TokenUsageMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *TokenUsageMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *TokenUsageMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetEstimated sets the "estimated" field.
func (m *TokenUsageMutation) SetEstimated(b bool) {
	m.estimated = &b
}

// Estimated returns the value of the "estimated" field in the mutation.
func (m *TokenUsageMutation) Estimated() (r bool, exists bool) {
	v := m.estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimated returns the old "estimated" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldEstimated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimated: %w", err)
	}
	return oldValue.Estimated, nil
}

// ResetEstimated resets all changes to the "estimated" field.
func (m *TokenUsageMutation) ResetEstimated() {
	m.estimated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenUsageMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenUsageMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenUsage entity.
// If the TokenUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenUsageMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *TokenUsageMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *TokenUsageMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenUsageMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *TokenUsageMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[tokenusage.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *TokenUsageMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *TokenUsageMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *TokenUsageMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the TokenUsageMutation builder.
func (m *TokenUsageMutation) Where(ps ...predicate.TokenUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenUsage).
func (m *TokenUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenUsageMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.chat != nil {
		fields = append(fields, tokenusage.FieldChatID)
	}
	if m.execution_id != nil {
		fields = append(fields, tokenusage.FieldExecutionID)
	}
	if m.provider != nil {
		fields = append(fields, tokenusage.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, tokenusage.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, tokenusage.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, tokenusage.FieldOutputTokens)
	}
	if m.cache_creation_input_tokens != nil {
		fields = append(fields, tokenusage.FieldCacheCreationInputTokens)
	}
	if m.cache_read_input_tokens != nil {
		fields = append(fields, tokenusage.FieldCacheReadInputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, tokenusage.FieldTotalTokens)
	}
	if m.api_key_hash != nil {
		fields = append(fields, tokenusage.FieldAPIKeyHash)
	}
	if m.cost_estimate != nil {
		fields = append(fields, tokenusage.FieldCostEstimate)
	}
	if m.estimated != nil {
		fields = append(fields, tokenusage.FieldEstimated)
	}
	if m.created_at != nil {
		fields = append(fields, tokenusage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldChatID:
		return m.ChatID()
	case tokenusage.FieldExecutionID:
		return m.ExecutionID()
	case tokenusage.FieldProvider:
		return m.Provider()
	case tokenusage.FieldModel:
		return m.Model()
	case tokenusage.FieldInputTokens:
		return m.InputTokens()
	case tokenusage.FieldOutputTokens:
		return m.OutputTokens()
	case tokenusage.FieldCacheCreationInputTokens:
		return m.CacheCreationInputTokens()
	case tokenusage.FieldCacheReadInputTokens:
		return m.CacheReadInputTokens()
	case tokenusage.FieldTotalTokens:
		return m.TotalTokens()
	case tokenusage.FieldAPIKeyHash:
		return m.APIKeyHash()
	case tokenusage.FieldCostEstimate:
		return m.CostEstimate()
	case tokenusage.FieldEstimated:
		return m.Estimated()
	case tokenusage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenusage.FieldChatID:
		return m.OldChatID(ctx)
	case tokenusage.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case tokenusage.FieldProvider:
		return m.OldProvider(ctx)
	case tokenusage.FieldModel:
		return m.OldModel(ctx)
	case tokenusage.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case tokenusage.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case tokenusage.FieldCacheCreationInputTokens:
		return m.OldCacheCreationInputTokens(ctx)
	case tokenusage.FieldCacheReadInputTokens:
		return m.OldCacheReadInputTokens(ctx)
	case tokenusage.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case tokenusage.FieldAPIKeyHash:
		return m.OldAPIKeyHash(ctx)
	case tokenusage.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case tokenusage.FieldEstimated:
		return m.OldEstimated(ctx)
	case tokenusage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case tokenusage.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case tokenusage.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case tokenusage.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case tokenusage.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case tokenusage.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case tokenusage.FieldCacheCreationInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheCreationInputTokens(v)
		return nil
	case tokenusage.FieldCacheReadInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheReadInputTokens(v)
		return nil
	case tokenusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case tokenusage.FieldAPIKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyHash(v)
		return nil
	case tokenusage.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case tokenusage.FieldEstimated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimated(v)
		return nil
	case tokenusage.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenUsageMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, tokenusage.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, tokenusage.FieldOutputTokens)
	}
	if m.addcache_creation_input_tokens != nil {
		fields = append(fields, tokenusage.FieldCacheCreationInputTokens)
	}
	if m.addcache_read_input_tokens != nil {
		fields = append(fields, tokenusage.FieldCacheReadInputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, tokenusage.FieldTotalTokens)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, tokenusage.FieldCostEstimate)
	}
	if m.addcreated_at != nil {
		fields = append(fields, tokenusage.FieldCreatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenusage.FieldInputTokens:
		return m.AddedInputTokens()
	case tokenusage.FieldOutputTokens:
		return m.AddedOutputTokens()
	case tokenusage.FieldCacheCreationInputTokens:
		return m.AddedCacheCreationInputTokens()
	case tokenusage.FieldCacheReadInputTokens:
		return m.AddedCacheReadInputTokens()
	case tokenusage.FieldTotalTokens:
		return m.AddedTotalTokens()
	case tokenusage.FieldCostEstimate:
		return m.AddedCostEstimate()
	case tokenusage.FieldCreatedAt:
		return m.AddedCreatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenusage.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case tokenusage.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case tokenusage.FieldCacheCreationInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheCreationInputTokens(v)
		return nil
	case tokenusage.FieldCacheReadInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCacheReadInputTokens(v)
		return nil
	case tokenusage.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case tokenusage.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	case tokenusage.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenUsageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenusage.FieldExecutionID) {
		fields = append(fields, tokenusage.FieldExecutionID)
	}
	if m.FieldCleared(tokenusage.FieldAPIKeyHash) {
		fields = append(fields, tokenusage.FieldAPIKeyHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenUsageMutation) ClearField(name string) error {
	switch name {
	case tokenusage.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case tokenusage.FieldAPIKeyHash:
		m.ClearAPIKeyHash()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenUsageMutation) ResetField(name string) error {
	switch name {
	case tokenusage.FieldChatID:
		m.ResetChatID()
		return nil
	case tokenusage.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case tokenusage.FieldProvider:
		m.ResetProvider()
		return nil
	case tokenusage.FieldModel:
		m.ResetModel()
		return nil
	case tokenusage.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case tokenusage.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case tokenusage.FieldCacheCreationInputTokens:
		m.ResetCacheCreationInputTokens()
		return nil
	case tokenusage.FieldCacheReadInputTokens:
		m.ResetCacheReadInputTokens()
		return nil
	case tokenusage.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case tokenusage.FieldAPIKeyHash:
		m.ResetAPIKeyHash()
		return nil
	case tokenusage.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case tokenusage.FieldEstimated:
		m.ResetEstimated()
		return nil
	case tokenusage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, tokenusage.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tokenusage.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, tokenusage.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case tokenusage.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenUsageMutation) ClearEdge(name string) error {
	switch name {
	case tokenusage.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenUsageMutation) ResetEdge(name string) error {
	switch name {
	case tokenusage.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown TokenUsage edge %s", name)
}
