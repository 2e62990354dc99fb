// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/pipelinerun"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *PipelineRunCreate) SetChatID(v string) *PipelineRunCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *PipelineRunCreate) SetIntent(v pipelinerun.Intent) *PipelineRunCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *PipelineRunCreate) SetScope(v pipelinerun.Scope) *PipelineRunCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetUserMessage sets the "user_message" field.
func (_c *PipelineRunCreate) SetUserMessage(v string) *PipelineRunCreate {
	_c.mutation.SetUserMessage(v)
	return _c
}

// SetPlannedAgents sets the "planned_agents" field.
func (_c *PipelineRunCreate) SetPlannedAgents(v []string) *PipelineRunCreate {
	_c.mutation.SetPlannedAgents(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *PipelineRunCreate) SetFailureReason(v string) *PipelineRunCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableFailureReason(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v int64) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStartedAt(v *int64) *PipelineRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PipelineRunCreate) SetCompletedAt(v int64) *PipelineRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableCompletedAt(v *int64) *PipelineRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *PipelineRunCreate) SetChat(v *Chat) *PipelineRunCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := pipelinerun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "PipelineRun.chat_id"`)}
	}
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "PipelineRun.intent"`)}
	}
	if v, ok := _c.mutation.Intent(); ok {
		if err := pipelinerun.IntentValidator(v); err != nil {
			return &ValidationError{Name: "intent", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.intent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "PipelineRun.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := pipelinerun.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserMessage(); !ok {
		return &ValidationError{Name: "user_message", err: errors.New(`ent: missing required field "PipelineRun.user_message"`)}
	}
	if _, ok := _c.mutation.PlannedAgents(); !ok {
		return &ValidationError{Name: "planned_agents", err: errors.New(`ent: missing required field "PipelineRun.planned_agents"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PipelineRun.started_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "PipelineRun.chat"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(pipelinerun.FieldIntent, field.TypeEnum, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(pipelinerun.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.UserMessage(); ok {
		_spec.SetField(pipelinerun.FieldUserMessage, field.TypeString, value)
		_node.UserMessage = value
	}
	if value, ok := _c.mutation.PlannedAgents(); ok {
		_spec.SetField(pipelinerun.FieldPlannedAgents, field.TypeJSON, value)
		_node.PlannedAgents = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(pipelinerun.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeInt64, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeInt64, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinerun.ChatTable,
			Columns: []string{pipelinerun.ChatColumn},
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

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
