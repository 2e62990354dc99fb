// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/pipelinerun"
)

// PipelineRun is the model entity for the PipelineRun schema.
type PipelineRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// Intent holds the value of the "intent" field.
	Intent pipelinerun.Intent `json:"intent,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope pipelinerun.Scope `json:"scope,omitempty"`
	// UserMessage holds the value of the "user_message" field.
	UserMessage string `json:"user_message,omitempty"`
	// PlannedAgents holds the value of the "planned_agents" field.
	PlannedAgents []string `json:"planned_agents,omitempty"`
	// Status holds the value of the "status" field.
	Status pipelinerun.Status `json:"status,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt int64 `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *int64 `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineRunQuery when eager-loading is set.
	Edges        PipelineRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineRunEdges holds the relations/edges for other nodes in the graph.
type PipelineRunEdges struct {
	// Chat holds the value of the chat edge.
	Chat *Chat `json:"chat,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChatOrErr returns the Chat value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineRunEdges) ChatOrErr() (*Chat, error) {
	if e.Chat != nil {
		return e.Chat, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chat.Label}
	}
	return nil, &NotLoadedError{edge: "chat"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldPlannedAgents:
			values[i] = new([]byte)
		case pipelinerun.FieldStartedAt, pipelinerun.FieldCompletedAt:
			values[i] = new(sql.NullInt64)
		case pipelinerun.FieldID, pipelinerun.FieldChatID, pipelinerun.FieldIntent, pipelinerun.FieldScope, pipelinerun.FieldUserMessage, pipelinerun.FieldStatus, pipelinerun.FieldFailureReason:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRun fields.
func (_m *PipelineRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinerun.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case pipelinerun.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = pipelinerun.Intent(value.String)
			}
		case pipelinerun.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = pipelinerun.Scope(value.String)
			}
		case pipelinerun.FieldUserMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_message", values[i])
			} else if value.Valid {
				_m.UserMessage = value.String
			}
		case pipelinerun.FieldPlannedAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field planned_agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlannedAgents); err != nil {
					return fmt.Errorf("unmarshal field planned_agents: %w", err)
				}
			}
		case pipelinerun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = pipelinerun.Status(value.String)
			}
		case pipelinerun.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case pipelinerun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Int64
			}
		case pipelinerun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(int64)
				*_m.CompletedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRun.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChat queries the "chat" edge of the PipelineRun entity.
func (_m *PipelineRun) QueryChat() *ChatQuery {
	return NewPipelineRunClient(_m.config).QueryChat(_m)
}

// Update returns a builder for updating this PipelineRun.
// Note that you need to call PipelineRun.Unwrap() before calling this method if this PipelineRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRun) Update() *PipelineRunUpdateOne {
	return NewPipelineRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRun) Unwrap() *PipelineRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRun) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intent))
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("user_message=")
	builder.WriteString(_m.UserMessage)
	builder.WriteString(", ")
	builder.WriteString("planned_agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlannedAgents))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartedAt))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRuns is a parsable slice of PipelineRun.
type PipelineRuns []*PipelineRun
