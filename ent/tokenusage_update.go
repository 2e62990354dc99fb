// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/predicate"
	"github.com/skein-dev/skein/ent/tokenusage"
)

// TokenUsageUpdate is the builder for updating TokenUsage entities.
type TokenUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageMutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdate) Where(ps ...predicate.TokenUsage) *TokenUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TokenUsageUpdate) SetInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableInputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TokenUsageUpdate) AddInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TokenUsageUpdate) SetOutputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableOutputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TokenUsageUpdate) AddOutputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (_u *TokenUsageUpdate) SetCacheCreationInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetCacheCreationInputTokens()
	_u.mutation.SetCacheCreationInputTokens(v)
	return _u
}

// SetNillableCacheCreationInputTokens sets the "cache_creation_input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCacheCreationInputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetCacheCreationInputTokens(*v)
	}
	return _u
}

// AddCacheCreationInputTokens adds value to the "cache_creation_input_tokens" field.
func (_u *TokenUsageUpdate) AddCacheCreationInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddCacheCreationInputTokens(v)
	return _u
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (_u *TokenUsageUpdate) SetCacheReadInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetCacheReadInputTokens()
	_u.mutation.SetCacheReadInputTokens(v)
	return _u
}

// SetNillableCacheReadInputTokens sets the "cache_read_input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCacheReadInputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetCacheReadInputTokens(*v)
	}
	return _u
}

// AddCacheReadInputTokens adds value to the "cache_read_input_tokens" field.
func (_u *TokenUsageUpdate) AddCacheReadInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddCacheReadInputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageUpdate) SetTotalTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableTotalTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageUpdate) AddTotalTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *TokenUsageUpdate) SetAPIKeyHash(v string) *TokenUsageUpdate {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableAPIKeyHash(v *string) *TokenUsageUpdate {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (_u *TokenUsageUpdate) ClearAPIKeyHash() *TokenUsageUpdate {
	_u.mutation.ClearAPIKeyHash()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *TokenUsageUpdate) SetCostEstimate(v float64) *TokenUsageUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCostEstimate(v *float64) *TokenUsageUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *TokenUsageUpdate) AddCostEstimate(v float64) *TokenUsageUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetEstimated sets the "estimated" field.
func (_u *TokenUsageUpdate) SetEstimated(v bool) *TokenUsageUpdate {
	_u.mutation.SetEstimated(v)
	return _u
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableEstimated(v *bool) *TokenUsageUpdate {
	if v != nil {
		_u.SetEstimated(*v)
	}
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdate) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdate) check() error {
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.chat"`)
	}
	return nil
}

func (_u *TokenUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(tokenusage.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheCreationInputTokens(); ok {
		_spec.SetField(tokenusage.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationInputTokens(); ok {
		_spec.AddField(tokenusage.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheReadInputTokens(); ok {
		_spec.SetField(tokenusage.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheReadInputTokens(); ok {
		_spec.AddField(tokenusage.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(tokenusage.FieldAPIKeyHash, field.TypeString, value)
	}
	if _u.mutation.APIKeyHashCleared() {
		_spec.ClearField(tokenusage.FieldAPIKeyHash, field.TypeString)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(tokenusage.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(tokenusage.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Estimated(); ok {
		_spec.SetField(tokenusage.FieldEstimated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageUpdateOne is the builder for updating a single TokenUsage entity.
type TokenUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageMutation
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TokenUsageUpdateOne) SetInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableInputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TokenUsageUpdateOne) AddInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TokenUsageUpdateOne) SetOutputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableOutputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TokenUsageUpdateOne) AddOutputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (_u *TokenUsageUpdateOne) SetCacheCreationInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetCacheCreationInputTokens()
	_u.mutation.SetCacheCreationInputTokens(v)
	return _u
}

// SetNillableCacheCreationInputTokens sets the "cache_creation_input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCacheCreationInputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCacheCreationInputTokens(*v)
	}
	return _u
}

// AddCacheCreationInputTokens adds value to the "cache_creation_input_tokens" field.
func (_u *TokenUsageUpdateOne) AddCacheCreationInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddCacheCreationInputTokens(v)
	return _u
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (_u *TokenUsageUpdateOne) SetCacheReadInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetCacheReadInputTokens()
	_u.mutation.SetCacheReadInputTokens(v)
	return _u
}

// SetNillableCacheReadInputTokens sets the "cache_read_input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCacheReadInputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCacheReadInputTokens(*v)
	}
	return _u
}

// AddCacheReadInputTokens adds value to the "cache_read_input_tokens" field.
func (_u *TokenUsageUpdateOne) AddCacheReadInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddCacheReadInputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TokenUsageUpdateOne) SetTotalTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableTotalTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TokenUsageUpdateOne) AddTotalTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *TokenUsageUpdateOne) SetAPIKeyHash(v string) *TokenUsageUpdateOne {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableAPIKeyHash(v *string) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (_u *TokenUsageUpdateOne) ClearAPIKeyHash() *TokenUsageUpdateOne {
	_u.mutation.ClearAPIKeyHash()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *TokenUsageUpdateOne) SetCostEstimate(v float64) *TokenUsageUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCostEstimate(v *float64) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *TokenUsageUpdateOne) AddCostEstimate(v float64) *TokenUsageUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetEstimated sets the "estimated" field.
func (_u *TokenUsageUpdateOne) SetEstimated(v bool) *TokenUsageUpdateOne {
	_u.mutation.SetEstimated(v)
	return _u
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableEstimated(v *bool) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetEstimated(*v)
	}
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdateOne) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdateOne) Where(ps ...predicate.TokenUsage) *TokenUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageUpdateOne) Select(field string, fields ...string) *TokenUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsage entity.
func (_u *TokenUsageUpdateOne) Save(ctx context.Context) (*TokenUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) SaveX(ctx context.Context) *TokenUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdateOne) check() error {
	if _u.mutation.ChatCleared() && len(_u.mutation.ChatIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TokenUsage.chat"`)
	}
	return nil
}

func (_u *TokenUsageUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusage.FieldID)
		for _, f := range fields {
			if !tokenusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusage.FieldID {
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
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(tokenusage.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheCreationInputTokens(); ok {
		_spec.SetField(tokenusage.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationInputTokens(); ok {
		_spec.AddField(tokenusage.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheReadInputTokens(); ok {
		_spec.SetField(tokenusage.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheReadInputTokens(); ok {
		_spec.AddField(tokenusage.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(tokenusage.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(tokenusage.FieldAPIKeyHash, field.TypeString, value)
	}
	if _u.mutation.APIKeyHashCleared() {
		_spec.ClearField(tokenusage.FieldAPIKeyHash, field.TypeString)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(tokenusage.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(tokenusage.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Estimated(); ok {
		_spec.SetField(tokenusage.FieldEstimated, field.TypeBool, value)
	}
	_node = &TokenUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
