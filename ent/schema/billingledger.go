package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BillingLedger holds the schema definition for the BillingLedger entity.
// Permanent spend record. Deliberately has NO edges and NO foreign keys:
// project and chat deletion cascades must never reach this table. Ownership
// context is denormalized into plain string columns instead.
type BillingLedger struct {
	ent.Schema
}

// Fields of the BillingLedger.
func (BillingLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ledger_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Optional().
			Immutable(),
		field.String("execution_id").
			Optional().
			Immutable(),
		field.String("project_id").
			Optional().
			Immutable(),
		field.String("project_name").
			Optional().
			Immutable(),
		field.String("chat_title").
			Optional().
			Immutable(),
		field.String("provider"),
		field.String("model"),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Int("cache_creation_input_tokens").
			Default(0),
		field.Int("cache_read_input_tokens").
			Default(0),
		field.Int("total_tokens"),
		field.String("api_key_hash").
			Optional(),
		field.Float("cost_estimate"),
		field.Bool("estimated").
			Default(false),
		field.Int64("created_at").
			DefaultFunc(nowMillis).
			Immutable(),
	}
}

// Indexes of the BillingLedger.
func (BillingLedger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("project_id", "created_at"),
		index.Fields("estimated"),
	}
}
