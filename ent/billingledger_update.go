// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/ent/predicate"
)

// BillingLedgerUpdate is the builder for updating BillingLedger entities.
type BillingLedgerUpdate struct {
	config
	hooks    []Hook
	mutation *BillingLedgerMutation
}

// Where appends a list predicates to the BillingLedgerUpdate builder.
func (_u *BillingLedgerUpdate) Where(ps ...predicate.BillingLedger) *BillingLedgerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *BillingLedgerUpdate) SetProvider(v string) *BillingLedgerUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableProvider(v *string) *BillingLedgerUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *BillingLedgerUpdate) SetModel(v string) *BillingLedgerUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableModel(v *string) *BillingLedgerUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *BillingLedgerUpdate) SetInputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableInputTokens(v *int) *BillingLedgerUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *BillingLedgerUpdate) AddInputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *BillingLedgerUpdate) SetOutputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableOutputTokens(v *int) *BillingLedgerUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *BillingLedgerUpdate) AddOutputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (_u *BillingLedgerUpdate) SetCacheCreationInputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.ResetCacheCreationInputTokens()
	_u.mutation.SetCacheCreationInputTokens(v)
	return _u
}

// SetNillableCacheCreationInputTokens sets the "cache_creation_input_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableCacheCreationInputTokens(v *int) *BillingLedgerUpdate {
	if v != nil {
		_u.SetCacheCreationInputTokens(*v)
	}
	return _u
}

// AddCacheCreationInputTokens adds value to the "cache_creation_input_tokens" field.
func (_u *BillingLedgerUpdate) AddCacheCreationInputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.AddCacheCreationInputTokens(v)
	return _u
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (_u *BillingLedgerUpdate) SetCacheReadInputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.ResetCacheReadInputTokens()
	_u.mutation.SetCacheReadInputTokens(v)
	return _u
}

// SetNillableCacheReadInputTokens sets the "cache_read_input_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableCacheReadInputTokens(v *int) *BillingLedgerUpdate {
	if v != nil {
		_u.SetCacheReadInputTokens(*v)
	}
	return _u
}

// AddCacheReadInputTokens adds value to the "cache_read_input_tokens" field.
func (_u *BillingLedgerUpdate) AddCacheReadInputTokens(v int) *BillingLedgerUpdate {
	_u.mutation.AddCacheReadInputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *BillingLedgerUpdate) SetTotalTokens(v int) *BillingLedgerUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableTotalTokens(v *int) *BillingLedgerUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *BillingLedgerUpdate) AddTotalTokens(v int) *BillingLedgerUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *BillingLedgerUpdate) SetAPIKeyHash(v string) *BillingLedgerUpdate {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableAPIKeyHash(v *string) *BillingLedgerUpdate {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (_u *BillingLedgerUpdate) ClearAPIKeyHash() *BillingLedgerUpdate {
	_u.mutation.ClearAPIKeyHash()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *BillingLedgerUpdate) SetCostEstimate(v float64) *BillingLedgerUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableCostEstimate(v *float64) *BillingLedgerUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *BillingLedgerUpdate) AddCostEstimate(v float64) *BillingLedgerUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetEstimated sets the "estimated" field.
func (_u *BillingLedgerUpdate) SetEstimated(v bool) *BillingLedgerUpdate {
	_u.mutation.SetEstimated(v)
	return _u
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_u *BillingLedgerUpdate) SetNillableEstimated(v *bool) *BillingLedgerUpdate {
	if v != nil {
		_u.SetEstimated(*v)
	}
	return _u
}

// Mutation returns the BillingLedgerMutation object of the builder.
func (_u *BillingLedgerUpdate) Mutation() *BillingLedgerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingLedgerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingLedgerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingLedgerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingLedgerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BillingLedgerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(billingledger.Table, billingledger.Columns, sqlgraph.NewFieldSpec(billingledger.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(billingledger.FieldChatID, field.TypeString)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(billingledger.FieldExecutionID, field.TypeString)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(billingledger.FieldProjectID, field.TypeString)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(billingledger.FieldProjectName, field.TypeString)
	}
	if _u.mutation.ChatTitleCleared() {
		_spec.ClearField(billingledger.FieldChatTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(billingledger.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(billingledger.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(billingledger.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(billingledger.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(billingledger.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(billingledger.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheCreationInputTokens(); ok {
		_spec.SetField(billingledger.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationInputTokens(); ok {
		_spec.AddField(billingledger.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheReadInputTokens(); ok {
		_spec.SetField(billingledger.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheReadInputTokens(); ok {
		_spec.AddField(billingledger.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(billingledger.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(billingledger.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(billingledger.FieldAPIKeyHash, field.TypeString, value)
	}
	if _u.mutation.APIKeyHashCleared() {
		_spec.ClearField(billingledger.FieldAPIKeyHash, field.TypeString)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(billingledger.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(billingledger.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Estimated(); ok {
		_spec.SetField(billingledger.FieldEstimated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingLedgerUpdateOne is the builder for updating a single BillingLedger entity.
type BillingLedgerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingLedgerMutation
}

// SetProvider sets the "provider" field.
func (_u *BillingLedgerUpdateOne) SetProvider(v string) *BillingLedgerUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableProvider(v *string) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *BillingLedgerUpdateOne) SetModel(v string) *BillingLedgerUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableModel(v *string) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *BillingLedgerUpdateOne) SetInputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableInputTokens(v *int) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *BillingLedgerUpdateOne) AddInputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *BillingLedgerUpdateOne) SetOutputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableOutputTokens(v *int) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *BillingLedgerUpdateOne) AddOutputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (_u *BillingLedgerUpdateOne) SetCacheCreationInputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.ResetCacheCreationInputTokens()
	_u.mutation.SetCacheCreationInputTokens(v)
	return _u
}

// SetNillableCacheCreationInputTokens sets the "cache_creation_input_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableCacheCreationInputTokens(v *int) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetCacheCreationInputTokens(*v)
	}
	return _u
}

// AddCacheCreationInputTokens adds value to the "cache_creation_input_tokens" field.
func (_u *BillingLedgerUpdateOne) AddCacheCreationInputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.AddCacheCreationInputTokens(v)
	return _u
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (_u *BillingLedgerUpdateOne) SetCacheReadInputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.ResetCacheReadInputTokens()
	_u.mutation.SetCacheReadInputTokens(v)
	return _u
}

// SetNillableCacheReadInputTokens sets the "cache_read_input_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableCacheReadInputTokens(v *int) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetCacheReadInputTokens(*v)
	}
	return _u
}

// AddCacheReadInputTokens adds value to the "cache_read_input_tokens" field.
func (_u *BillingLedgerUpdateOne) AddCacheReadInputTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.AddCacheReadInputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *BillingLedgerUpdateOne) SetTotalTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableTotalTokens(v *int) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *BillingLedgerUpdateOne) AddTotalTokens(v int) *BillingLedgerUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *BillingLedgerUpdateOne) SetAPIKeyHash(v string) *BillingLedgerUpdateOne {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableAPIKeyHash(v *string) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// ClearAPIKeyHash clears the value of the "api_key_hash" field.
func (_u *BillingLedgerUpdateOne) ClearAPIKeyHash() *BillingLedgerUpdateOne {
	_u.mutation.ClearAPIKeyHash()
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *BillingLedgerUpdateOne) SetCostEstimate(v float64) *BillingLedgerUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableCostEstimate(v *float64) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *BillingLedgerUpdateOne) AddCostEstimate(v float64) *BillingLedgerUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetEstimated sets the "estimated" field.
func (_u *BillingLedgerUpdateOne) SetEstimated(v bool) *BillingLedgerUpdateOne {
	_u.mutation.SetEstimated(v)
	return _u
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_u *BillingLedgerUpdateOne) SetNillableEstimated(v *bool) *BillingLedgerUpdateOne {
	if v != nil {
		_u.SetEstimated(*v)
	}
	return _u
}

// Mutation returns the BillingLedgerMutation object of the builder.
func (_u *BillingLedgerUpdateOne) Mutation() *BillingLedgerMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillingLedgerUpdate builder.
func (_u *BillingLedgerUpdateOne) Where(ps ...predicate.BillingLedger) *BillingLedgerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingLedgerUpdateOne) Select(field string, fields ...string) *BillingLedgerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillingLedger entity.
func (_u *BillingLedgerUpdateOne) Save(ctx context.Context) (*BillingLedger, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingLedgerUpdateOne) SaveX(ctx context.Context) *BillingLedger {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingLedgerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingLedgerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BillingLedgerUpdateOne) sqlSave(ctx context.Context) (_node *BillingLedger, err error) {
	_spec := sqlgraph.NewUpdateSpec(billingledger.Table, billingledger.Columns, sqlgraph.NewFieldSpec(billingledger.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingLedger.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingledger.FieldID)
		for _, f := range fields {
			if !billingledger.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingledger.FieldID {
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
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(billingledger.FieldChatID, field.TypeString)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(billingledger.FieldExecutionID, field.TypeString)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(billingledger.FieldProjectID, field.TypeString)
	}
	if _u.mutation.ProjectNameCleared() {
		_spec.ClearField(billingledger.FieldProjectName, field.TypeString)
	}
	if _u.mutation.ChatTitleCleared() {
		_spec.ClearField(billingledger.FieldChatTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(billingledger.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(billingledger.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(billingledger.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(billingledger.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(billingledger.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(billingledger.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheCreationInputTokens(); ok {
		_spec.SetField(billingledger.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheCreationInputTokens(); ok {
		_spec.AddField(billingledger.FieldCacheCreationInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CacheReadInputTokens(); ok {
		_spec.SetField(billingledger.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCacheReadInputTokens(); ok {
		_spec.AddField(billingledger.FieldCacheReadInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(billingledger.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(billingledger.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(billingledger.FieldAPIKeyHash, field.TypeString, value)
	}
	if _u.mutation.APIKeyHashCleared() {
		_spec.ClearField(billingledger.FieldAPIKeyHash, field.TypeString)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(billingledger.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(billingledger.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Estimated(); ok {
		_spec.SetField(billingledger.FieldEstimated, field.TypeBool, value)
	}
	_node = &BillingLedger{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingledger.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
