// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/pipelinerun"
	"github.com/skein-dev/skein/ent/predicate"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *PipelineRunUpdate) SetFailureReason(v string) *PipelineRunUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableFailureReason(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *PipelineRunUpdate) ClearFailureReason() *PipelineRunUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v int64) *PipelineRunUpdate {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *int64) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *PipelineRunUpdate) AddCompletedAt(v int64) *PipelineRunUpdate {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineRun.chat"`)
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(pipelinerun.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(pipelinerun.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(pipelinerun.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *PipelineRunUpdateOne) SetFailureReason(v string) *PipelineRunUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableFailureReason(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *PipelineRunUpdateOne) ClearFailureReason() *PipelineRunUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v int64) *PipelineRunUpdateOne {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *int64) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *PipelineRunUpdateOne) AddCompletedAt(v int64) *PipelineRunUpdateOne {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineRun.chat"`)
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(pipelinerun.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(pipelinerun.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(pipelinerun.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeInt64)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
