package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Append-only; ordered by created_at within a chat.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant", "system").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("agent_name").
			Optional().
			Nillable().
			Comment("Set for assistant messages produced by a pipeline agent"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Int64("created_at").
			DefaultFunc(nowMillis).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("messages").
			Field("chat_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "created_at"),
	}
}
