// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/ent/chat"
)

// AgentExecutionCreate is the builder for creating a AgentExecution entity.
type AgentExecutionCreate struct {
	config
	mutation *AgentExecutionMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *AgentExecutionCreate) SetChatID(v string) *AgentExecutionCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AgentExecutionCreate) SetRunID(v string) *AgentExecutionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableRunID(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentExecutionCreate) SetAgentName(v string) *AgentExecutionCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentExecutionCreate) SetStatus(v agentexecution.Status) *AgentExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInput sets the "input" field.
func (_c *AgentExecutionCreate) SetInput(v string) *AgentExecutionCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *AgentExecutionCreate) SetOutput(v string) *AgentExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableOutput(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *AgentExecutionCreate) SetError(v string) *AgentExecutionCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableError(v *string) *AgentExecutionCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *AgentExecutionCreate) SetRetryCount(v int) *AgentExecutionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableRetryCount(v *int) *AgentExecutionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentExecutionCreate) SetStartedAt(v int64) *AgentExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableStartedAt(v *int64) *AgentExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentExecutionCreate) SetCompletedAt(v int64) *AgentExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentExecutionCreate) SetNillableCompletedAt(v *int64) *AgentExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentExecutionCreate) SetID(v string) *AgentExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *AgentExecutionCreate) SetChat(v *Chat) *AgentExecutionCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_c *AgentExecutionCreate) Mutation() *AgentExecutionMutation {
	return _c.mutation
}

// Save creates the AgentExecution in the database.
func (_c *AgentExecutionCreate) Save(ctx context.Context) (*AgentExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentExecutionCreate) SaveX(ctx context.Context) *AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := agentexecution.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agentexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentExecutionCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "AgentExecution.chat_id"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentExecution.agent_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "AgentExecution.input"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "AgentExecution.retry_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentExecution.started_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "AgentExecution.chat"`)}
	}
	return nil
}

func (_c *AgentExecutionCreate) sqlSave(ctx context.Context) (*AgentExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentExecutionCreate) createSpec() (*AgentExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentexecution.Table, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(agentexecution.FieldRunID, field.TypeString, value)
		_node.RunID = &value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentexecution.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeString, value)
		_node.Output = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(agentexecution.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(agentexecution.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentexecution.FieldStartedAt, field.TypeInt64, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeInt64, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentexecution.ChatTable,
			Columns: []string{agentexecution.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentExecutionCreateBulk is the builder for creating many AgentExecution entities in bulk.
type AgentExecutionCreateBulk struct {
	config
	err      error
	builders []*AgentExecutionCreate
}

// Save creates the AgentExecution entities in the database.
func (_c *AgentExecutionCreateBulk) Save(ctx context.Context) ([]*AgentExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentExecutionCreateBulk) SaveX(ctx context.Context) []*AgentExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
