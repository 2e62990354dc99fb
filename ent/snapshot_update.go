// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/predicate"
	"github.com/skein-dev/skein/ent/snapshot"
)

// SnapshotUpdate is the builder for updating Snapshot entities.
type SnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SnapshotMutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdate) Where(ps ...predicate.Snapshot) *SnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *SnapshotUpdate) SetChatID(v string) *SnapshotUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableChatID(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *SnapshotUpdate) ClearChatID() *SnapshotUpdate {
	_u.mutation.ClearChatID()
	return _u
}

// SetLabel sets the "label" field.
func (_u *SnapshotUpdate) SetLabel(v string) *SnapshotUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableLabel(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *SnapshotUpdate) SetCommitSha(v string) *SnapshotUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableCommitSha(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *SnapshotUpdate) ClearCommitSha() *SnapshotUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetManifest sets the "manifest" field.
func (_u *SnapshotUpdate) SetManifest(v []string) *SnapshotUpdate {
	_u.mutation.SetManifest(v)
	return _u
}

// AppendManifest appends value to the "manifest" field.
func (_u *SnapshotUpdate) AppendManifest(v []string) *SnapshotUpdate {
	_u.mutation.AppendManifest(v)
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *SnapshotUpdate) SetChat(v *Chat) *SnapshotUpdate {
	return _u.SetChatID(v.ID)
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdate) Mutation() *SnapshotMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *SnapshotUpdate) ClearChat() *SnapshotUpdate {
	_u.mutation.ClearChat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnapshotUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Snapshot.project"`)
	}
	return nil
}

func (_u *SnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(snapshot.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(snapshot.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(snapshot.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.Manifest(); ok {
		_spec.SetField(snapshot.FieldManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedManifest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, snapshot.FieldManifest, value)
		})
	}
	if _u.mutation.ChatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   snapshot.ChatTable,
			Columns: []string{snapshot.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   snapshot.ChatTable,
			Columns: []string{snapshot.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SnapshotUpdateOne is the builder for updating a single Snapshot entity.
type SnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SnapshotMutation
}

// SetChatID sets the "chat_id" field.
func (_u *SnapshotUpdateOne) SetChatID(v string) *SnapshotUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableChatID(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *SnapshotUpdateOne) ClearChatID() *SnapshotUpdateOne {
	_u.mutation.ClearChatID()
	return _u
}

// SetLabel sets the "label" field.
func (_u *SnapshotUpdateOne) SetLabel(v string) *SnapshotUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableLabel(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *SnapshotUpdateOne) SetCommitSha(v string) *SnapshotUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableCommitSha(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *SnapshotUpdateOne) ClearCommitSha() *SnapshotUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetManifest sets the "manifest" field.
func (_u *SnapshotUpdateOne) SetManifest(v []string) *SnapshotUpdateOne {
	_u.mutation.SetManifest(v)
	return _u
}

// AppendManifest appends value to the "manifest" field.
func (_u *SnapshotUpdateOne) AppendManifest(v []string) *SnapshotUpdateOne {
	_u.mutation.AppendManifest(v)
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *SnapshotUpdateOne) SetChat(v *Chat) *SnapshotUpdateOne {
	return _u.SetChatID(v.ID)
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdateOne) Mutation() *SnapshotMutation {
	return _u.mutation
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *SnapshotUpdateOne) ClearChat() *SnapshotUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdateOne) Where(ps ...predicate.Snapshot) *SnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SnapshotUpdateOne) Select(field string, fields ...string) *SnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Snapshot entity.
func (_u *SnapshotUpdateOne) Save(ctx context.Context) (*Snapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdateOne) SaveX(ctx context.Context) *Snapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnapshotUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Snapshot.project"`)
	}
	return nil
}

func (_u *SnapshotUpdateOne) sqlSave(ctx context.Context) (_node *Snapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Snapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, snapshot.FieldID)
		for _, f := range fields {
			if !snapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != snapshot.FieldID {
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
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(snapshot.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(snapshot.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(snapshot.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.Manifest(); ok {
		_spec.SetField(snapshot.FieldManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedManifest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, snapshot.FieldManifest, value)
		})
	}
	if _u.mutation.ChatCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   snapshot.ChatTable,
			Columns: []string{snapshot.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   snapshot.ChatTable,
			Columns: []string{snapshot.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Snapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
