package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chat holds the schema definition for the Chat entity.
// A chat is the unit of conversation and of pipeline serialization:
// at most one pipeline run is active per chat.
type Chat struct {
	ent.Schema
}

// Fields of the Chat.
func (Chat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("title").
			Default("New chat"),
		field.Int64("created_at").
			DefaultFunc(nowMillis).
			Immutable(),
		field.Int64("updated_at").
			DefaultFunc(nowMillis).
			UpdateDefault(nowMillis),
	}
}

// Edges of the Chat.
func (Chat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("chats").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("runs", PipelineRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("token_usage", TokenUsage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// Snapshots outlive their chat: the FK is nulled, the row stays.
		edge.To("snapshots", Snapshot.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Chat.
func (Chat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
	}
}
