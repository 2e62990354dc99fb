package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the schema definition for the Snapshot entity.
// File-manifest snapshots recorded alongside auto-commits, kept as a fallback
// record when git is unavailable. Chat deletion nullifies chat_id rather than
// removing rows; project deletion removes them.
type Snapshot struct {
	ent.Schema
}

// Fields of the Snapshot.
func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("chat_id").
			Optional().
			Nillable(),
		field.String("label"),
		field.String("commit_sha").
			Optional().
			Comment("HEAD after the paired auto-commit, empty when git was unavailable"),
		field.JSON("manifest", []string{}).
			Comment("Sorted file paths written in this step"),
		field.Int64("created_at").
			DefaultFunc(nowMillis).
			Immutable(),
	}
}

// Edges of the Snapshot.
func (Snapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("snapshots").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("chat", Chat.Type).
			Ref("snapshots").
			Field("chat_id").
			Unique(),
	}
}

// Indexes of the Snapshot.
func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
	}
}
