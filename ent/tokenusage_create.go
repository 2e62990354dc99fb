// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/tokenusage"
)

// TokenUsageCreate is the builder for creating a TokenUsage entity.
type TokenUsageCreate struct {
	config
	mutation *TokenUsageMutation
	hooks    []Hook
}

// SetChatID sets the "chat_id" field.
func (_c *TokenUsageCreate) SetChatID(v string) *TokenUsageCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *TokenUsageCreate) SetExecutionID(v string) *TokenUsageCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableExecutionID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *TokenUsageCreate) SetProvider(v string) *TokenUsageCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *TokenUsageCreate) SetModel(v string) *TokenUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *TokenUsageCreate) SetInputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *TokenUsageCreate) SetOutputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetCacheCreationInputTokens sets the "cache_creation_input_tokens" field.
func (_c *TokenUsageCreate) SetCacheCreationInputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetCacheCreationInputTokens(v)
	return _c
}

// SetNillableCacheCreationInputTokens sets the "cache_creation_input_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCacheCreationInputTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetCacheCreationInputTokens(*v)
	}
	return _c
}

// SetCacheReadInputTokens sets the "cache_read_input_tokens" field.
func (_c *TokenUsageCreate) SetCacheReadInputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetCacheReadInputTokens(v)
	return _c
}

// SetNillableCacheReadInputTokens sets the "cache_read_input_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCacheReadInputTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetCacheReadInputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *TokenUsageCreate) SetTotalTokens(v int) *TokenUsageCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_c *TokenUsageCreate) SetAPIKeyHash(v string) *TokenUsageCreate {
	_c.mutation.SetAPIKeyHash(v)
	return _c
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableAPIKeyHash(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetAPIKeyHash(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *TokenUsageCreate) SetCostEstimate(v float64) *TokenUsageCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetEstimated sets the "estimated" field.
func (_c *TokenUsageCreate) SetEstimated(v bool) *TokenUsageCreate {
	_c.mutation.SetEstimated(v)
	return _c
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableEstimated(v *bool) *TokenUsageCreate {
	if v != nil {
		_c.SetEstimated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenUsageCreate) SetCreatedAt(v int64) *TokenUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCreatedAt(v *int64) *TokenUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenUsageCreate) SetID(v string) *TokenUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *TokenUsageCreate) SetChat(v *Chat) *TokenUsageCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_c *TokenUsageCreate) Mutation() *TokenUsageMutation {
	return _c.mutation
}

// Save creates the TokenUsage in the database.
func (_c *TokenUsageCreate) Save(ctx context.Context) (*TokenUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenUsageCreate) SaveX(ctx context.Context) *TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenUsageCreate) defaults() {
	if _, ok := _c.mutation.CacheCreationInputTokens(); !ok {
		v := tokenusage.DefaultCacheCreationInputTokens
		_c.mutation.SetCacheCreationInputTokens(v)
	}
	if _, ok := _c.mutation.CacheReadInputTokens(); !ok {
		v := tokenusage.DefaultCacheReadInputTokens
		_c.mutation.SetCacheReadInputTokens(v)
	}
	if _, ok := _c.mutation.Estimated(); !ok {
		v := tokenusage.DefaultEstimated
		_c.mutation.SetEstimated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenUsageCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "TokenUsage.chat_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "TokenUsage.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TokenUsage.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "TokenUsage.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "TokenUsage.output_tokens"`)}
	}
	if _, ok := _c.mutation.CacheCreationInputTokens(); !ok {
		return &ValidationError{Name: "cache_creation_input_tokens", err: errors.New(`ent: missing required field "TokenUsage.cache_creation_input_tokens"`)}
	}
	if _, ok := _c.mutation.CacheReadInputTokens(); !ok {
		return &ValidationError{Name: "cache_read_input_tokens", err: errors.New(`ent: missing required field "TokenUsage.cache_read_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "TokenUsage.total_tokens"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "TokenUsage.cost_estimate"`)}
	}
	if _, ok := _c.mutation.Estimated(); !ok {
		return &ValidationError{Name: "estimated", err: errors.New(`ent: missing required field "TokenUsage.estimated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenUsage.created_at"`)}
	}
	if len(_c.mutation.ChatIDs()) == 0 {
		return &ValidationError{Name: "chat", err: errors.New(`ent: missing required edge "TokenUsage.chat"`)}
	}
	return nil
}

func (_c *TokenUsageCreate) sqlSave(ctx context.Context) (*TokenUsage, error) {
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
			return nil, fmt.Errorf("unexpected TokenUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenUsageCreate) createSpec() (*TokenUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenusage.Table, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(tokenusage.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(tokenusage.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CacheCreationInputTokens(); ok {
		_spec.SetField(tokenusage.FieldCacheCreationInputTokens, field.TypeInt, value)
		_node.CacheCreationInputTokens = value
	}
	if value, ok := _c.mutation.CacheReadInputTokens(); ok {
		_spec.SetField(tokenusage.FieldCacheReadInputTokens, field.TypeInt, value)
		_node.CacheReadInputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(tokenusage.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.APIKeyHash(); ok {
		_spec.SetField(tokenusage.FieldAPIKeyHash, field.TypeString, value)
		_node.APIKeyHash = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(tokenusage.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.Estimated(); ok {
		_spec.SetField(tokenusage.FieldEstimated, field.TypeBool, value)
		_node.Estimated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeInt64, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tokenusage.ChatTable,
			Columns: []string{tokenusage.ChatColumn},
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

// TokenUsageCreateBulk is the builder for creating many TokenUsage entities in bulk.
type TokenUsageCreateBulk struct {
	config
	err      error
	builders []*TokenUsageCreate
}

// Save creates the TokenUsage entities in the database.
func (_c *TokenUsageCreateBulk) Save(ctx context.Context) ([]*TokenUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenUsageMutation)
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
func (_c *TokenUsageCreateBulk) SaveX(ctx context.Context) []*TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
