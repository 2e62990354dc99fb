package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity.
// The planned agent list is fixed at planning time; retries and remediation
// never alter it.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.Enum("intent").
			Values("build", "fix", "question").
			Immutable(),
		field.Enum("scope").
			Values("frontend", "backend", "styling", "full").
			Immutable(),
		field.Text("user_message").
			Immutable(),
		field.JSON("planned_agents", []string{}).
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed", "interrupted").
			Default("running"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.Int64("started_at").
			DefaultFunc(nowMillis).
			Immutable(),
		field.Int64("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("runs").
			Field("chat_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "started_at"),
		index.Fields("status"),
	}
}
