// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/billingledger"
)

// BillingLedgerCreate is the builder for creating a BillingLedger entity.
type BillingLedgerCreate struct {
	config
	mutation *BillingLedgerMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *BillingLedgerCreate) SetChatID(v string) *BillingLedgerCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableChatID(v *string) *BillingLedgerCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *BillingLedgerCreate) SetExecutionID(v string) *BillingLedgerCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableExecutionID(v *string) *BillingLedgerCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *BillingLedgerCreate) SetProjectID(v string) *BillingLedgerCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableProjectID(v *string) *BillingLedgerCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *BillingLedgerCreate) SetProjectName(v string) *BillingLedgerCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableProjectName(v *string) *BillingLedgerCreate {
	if v != nil {
		_c.SetProjectName(*v)
	}
	return _c
}

// SetChatTitle sets the "chat_title" field.
func (_c *BillingLedgerCreate) SetChatTitle(v string) *BillingLedgerCreate {
	_c.mutation.SetChatTitle(v)
	return _c
}

// SetNillableChatTitle sets the "chat_title" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableChatTitle(v *string) *BillingLedgerCreate {
	if v != nil {
		_c.SetChatTitle(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *BillingLedgerCreate) SetProvider(v string) *BillingLedgerCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *BillingLedgerCreate) SetModel(v string) *BillingLedgerCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *BillingLedgerCreate) SetInputTokens(v int) *BillingLedgerCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *BillingLedgerCreate) SetOutputTokens(v int) *BillingLedgerCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (_c *BillingLedgerCreate) SetCacheCreationInputTokens(v int) *BillingLedgerCreate {
	_c.mutation.SetCacheCreationInputTokens(v)
	return _c
}

// SetNillableCacheCreationInputTokens sets the "cache_creation_input_tokens" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableCacheCreationInputTokens(v *int) *BillingLedgerCreate {
	if v != nil {
		_c.SetCacheCreationInputTokens(*v)
	}
	return _c
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (_c *BillingLedgerCreate) SetCacheReadInputTokens(v int) *BillingLedgerCreate {
	_c.mutation.SetCacheReadInputTokens(v)
	return _c
}

// SetNillableCacheReadInputTokens sets the "cache_read_input_tokens" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableCacheReadInputTokens(v *int) *BillingLedgerCreate {
	if v != nil {
		_c.SetCacheReadInputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *BillingLedgerCreate) SetTotalTokens(v int) *BillingLedgerCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_c *BillingLedgerCreate) SetAPIKeyHash(v string) *BillingLedgerCreate {
	_c.mutation.SetAPIKeyHash(v)
	return _c
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableAPIKeyHash(v *string) *BillingLedgerCreate {
	if v != nil {
		_c.SetAPIKeyHash(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *BillingLedgerCreate) SetCostEstimate(v float64) *BillingLedgerCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetEstimated sets the "estimated" field.
func (_c *BillingLedgerCreate) SetEstimated(v bool) *BillingLedgerCreate {
	_c.mutation.SetEstimated(v)
	return _c
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableEstimated(v *bool) *BillingLedgerCreate {
	if v != nil {
		_c.SetEstimated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BillingLedgerCreate) SetCreatedAt(v int64) *BillingLedgerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BillingLedgerCreate) SetNillableCreatedAt(v *int64) *BillingLedgerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BillingLedgerCreate) SetID(v string) *BillingLedgerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BillingLedgerMutation object of the builder.
func (_c *BillingLedgerCreate) Mutation() *BillingLedgerMutation {
	return _c.mutation
}

// Save creates the BillingLedger in the database.
func (_c *BillingLedgerCreate) Save(ctx context.Context) (*BillingLedger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingLedgerCreate) SaveX(ctx context.Context) *BillingLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingLedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingLedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingLedgerCreate) defaults() {
	if _, ok := _c.mutation.CacheCreationInputTokens(); !ok {
		v := billingledger.DefaultCacheCreationInputTokens
		_c.mutation.SetCacheCreationInputTokens(v)
	}
	if _, ok := _c.mutation.CacheReadInputTokens(); !ok {
		v := billingledger.DefaultCacheReadInputTokens
		_c.mutation.SetCacheReadInputTokens(v)
	}
	if _, ok := _c.mutation.Estimated(); !ok {
		v := billingledger.DefaultEstimated
		_c.mutation.SetEstimated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := billingledger.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingLedgerCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "BillingLedger.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "BillingLedger.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "BillingLedger.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "BillingLedger.output_tokens"`)}
	}
	if _, ok := _c.mutation.CacheCreationInputTokens(); !ok {
		return &ValidationError{Name: "cache_creation_input_tokens", err: errors.New(`ent: missing required field "BillingLedger.cache_creation_input_tokens"`)}
	}
	if _, ok := _c.mutation.CacheReadInputTokens(); !ok {
		return &ValidationError{Name: "cache_read_input_tokens", err: errors.New(`ent: missing required field "BillingLedger.cache_read_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "BillingLedger.total_tokens"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "BillingLedger.cost_estimate"`)}
	}
	if _, ok := _c.mutation.Estimated(); !ok {
		return &ValidationError{Name: "estimated", err: errors.New(`ent: missing required field "BillingLedger.estimated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BillingLedger.created_at"`)}
	}
	return nil
}

func (_c *BillingLedgerCreate) sqlSave(ctx context.Context) (*BillingLedger, error) {
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
			return nil, fmt.Errorf("unexpected BillingLedger.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BillingLedgerCreate) createSpec() (*BillingLedger, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingLedger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billingledger.Table, sqlgraph.NewFieldSpec(billingledger.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(billingledger.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(billingledger.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(billingledger.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(billingledger.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.ChatTitle(); ok {
		_spec.SetField(billingledger.FieldChatTitle, field.TypeString, value)
		_node.ChatTitle = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(billingledger.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(billingledger.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(billingledger.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(billingledger.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CacheCreationInputTokens(); ok {
		_spec.SetField(billingledger.FieldCacheCreationInputTokens, field.TypeInt, value)
		_node.CacheCreationInputTokens = value
	}
	if value, ok := _c.mutation.CacheReadInputTokens(); ok {
		_spec.SetField(billingledger.FieldCacheReadInputTokens, field.TypeInt, value)
		_node.CacheReadInputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(billingledger.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.APIKeyHash(); ok {
		_spec.SetField(billingledger.FieldAPIKeyHash, field.TypeString, value)
		_node.APIKeyHash = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(billingledger.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.Estimated(); ok {
		_spec.SetField(billingledger.FieldEstimated, field.TypeBool, value)
		_node.Estimated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(billingledger.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BillingLedgerCreateBulk is the builder for creating many BillingLedger entities in bulk.
type BillingLedgerCreateBulk struct {
	config
	err      error
	builders []*BillingLedgerCreate
}

// Save creates the BillingLedger entities in the database.
func (_c *BillingLedgerCreateBulk) Save(ctx context.Context) ([]*BillingLedger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillingLedger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingLedgerMutation)
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
func (_c *BillingLedgerCreateBulk) SaveX(ctx context.Context) []*BillingLedger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingLedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingLedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
