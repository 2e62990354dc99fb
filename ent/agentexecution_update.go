// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/ent/predicate"
)

// AgentExecutionUpdate is the builder for updating AgentExecution entities.
type AgentExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdate) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AgentExecutionUpdate) SetRunID(v string) *AgentExecutionUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableRunID(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *AgentExecutionUpdate) ClearRunID() *AgentExecutionUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdate) SetStatus(v agentexecution.Status) *AgentExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentExecutionUpdate) SetInput(v string) *AgentExecutionUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableInput(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentExecutionUpdate) SetOutput(v string) *AgentExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableOutput(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentExecutionUpdate) ClearOutput() *AgentExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentExecutionUpdate) SetError(v string) *AgentExecutionUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableError(v *string) *AgentExecutionUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentExecutionUpdate) ClearError() *AgentExecutionUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *AgentExecutionUpdate) SetRetryCount(v int) *AgentExecutionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableRetryCount(v *int) *AgentExecutionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *AgentExecutionUpdate) AddRetryCount(v int) *AgentExecutionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdate) SetCompletedAt(v int64) *AgentExecutionUpdate {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdate) SetNillableCompletedAt(v *int64) *AgentExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *AgentExecutionUpdate) AddCompletedAt(v int64) *AgentExecutionUpdate {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdate) ClearCompletedAt() *AgentExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdate) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.chat"`)
	}
	return nil
}

func (_u *AgentExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(agentexecution.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(agentexecution.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentexecution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(agentexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(agentexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(agentexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentExecutionUpdateOne is the builder for updating a single AgentExecution entity.
type AgentExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentExecutionMutation
}

// SetRunID sets the "run_id" field.
func (_u *AgentExecutionUpdateOne) SetRunID(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableRunID(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *AgentExecutionUpdateOne) ClearRunID() *AgentExecutionUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentExecutionUpdateOne) SetStatus(v agentexecution.Status) *AgentExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableStatus(v *agentexecution.Status) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *AgentExecutionUpdateOne) SetInput(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableInput(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetOutput sets the "output" field.
func (_u *AgentExecutionUpdateOne) SetOutput(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableOutput(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *AgentExecutionUpdateOne) ClearOutput() *AgentExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *AgentExecutionUpdateOne) SetError(v string) *AgentExecutionUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableError(v *string) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *AgentExecutionUpdateOne) ClearError() *AgentExecutionUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *AgentExecutionUpdateOne) SetRetryCount(v int) *AgentExecutionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableRetryCount(v *int) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *AgentExecutionUpdateOne) AddRetryCount(v int) *AgentExecutionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentExecutionUpdateOne) SetCompletedAt(v int64) *AgentExecutionUpdateOne {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentExecutionUpdateOne) SetNillableCompletedAt(v *int64) *AgentExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *AgentExecutionUpdateOne) AddCompletedAt(v int64) *AgentExecutionUpdateOne {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentExecutionUpdateOne) ClearCompletedAt() *AgentExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AgentExecutionMutation object of the builder.
func (_u *AgentExecutionUpdateOne) Mutation() *AgentExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentExecutionUpdate builder.
func (_u *AgentExecutionUpdateOne) Where(ps ...predicate.AgentExecution) *AgentExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentExecutionUpdateOne) Select(field string, fields ...string) *AgentExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentExecution entity.
func (_u *AgentExecutionUpdateOne) Save(ctx context.Context) (*AgentExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) SaveX(ctx context.Context) *AgentExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentExecution.chat"`)
	}
	return nil
}

func (_u *AgentExecutionUpdateOne) sqlSave(ctx context.Context) (_node *AgentExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentexecution.Table, agentexecution.Columns, sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentexecution.FieldID)
		for _, f := range fields {
			if !agentexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(agentexecution.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(agentexecution.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(agentexecution.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(agentexecution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(agentexecution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(agentexecution.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(agentexecution.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(agentexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(agentexecution.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(agentexecution.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentexecution.FieldCompletedAt, field.TypeInt64)
	}
	_node = &AgentExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
