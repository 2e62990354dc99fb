package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenUsage holds the schema definition for the TokenUsage entity.
// Operational token accounting: one row per model call, deleted with its chat.
// Every row (except billing-only system calls, which skip this table) has a
// BillingLedger twin written in the same transaction.
type TokenUsage struct {
	ent.Schema
}

// Fields of the TokenUsage.
func (TokenUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.String("execution_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Int("input_tokens").
			Comment("Non-cached input tokens only"),
		field.Int("output_tokens"),
		field.Int("cache_creation_input_tokens").
			Default(0),
		field.Int("cache_read_input_tokens").
			Default(0),
		field.Int("total_tokens").
			Comment("input + output + cache_creation + cache_read"),
		field.String("api_key_hash").
			Optional().
			Comment("SHA-256 digest; never the raw key"),
		field.Float("cost_estimate"),
		field.Bool("estimated").
			Default(false).
			Comment("true while the row is a write-ahead provisional record"),
		field.Int64("created_at").
			DefaultFunc(nowMillis).
			Immutable(),
	}
}

// Edges of the TokenUsage.
func (TokenUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("token_usage").
			Field("chat_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TokenUsage.
func (TokenUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "created_at"),
		index.Fields("estimated"),
	}
}
