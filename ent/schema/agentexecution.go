package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity.
// One row per agent invocation within a pipeline run. Retries and remediation
// cycles create new rows; a prior row is never mutated after it is terminal.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("chat_id").
			Immutable(),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Owning pipeline run, when dispatched by the orchestrator"),
		field.String("agent_name").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "retrying", "stopped").
			Default("pending"),
		field.Text("input"),
		field.Text("output").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Int64("started_at").
			DefaultFunc(nowMillis).
			Immutable(),
		field.Int64("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chat", Chat.Type).
			Ref("executions").
			Field("chat_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "started_at"),
		index.Fields("run_id"),
		index.Fields("status"),
	}
}
