package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// nowMillis is the default for all timestamp columns. The whole schema stores
// integer milliseconds since the Unix epoch.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Project holds the schema definition for the Project entity.
// A project owns a filesystem directory under the sandbox root and all
// chats bound to it.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("path").
			Unique().
			Comment("Directory under the projects/ sandbox root"),
		field.Int64("created_at").
			DefaultFunc(nowMillis).
			Immutable(),
		field.Int64("updated_at").
			DefaultFunc(nowMillis).
			UpdateDefault(nowMillis),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		// Deleting a project cascades to chats and their descendants.
		// The billing ledger has no edges and is never touched by cascades.
		edge.To("chats", Chat.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("snapshots", Snapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
