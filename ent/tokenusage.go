// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/tokenusage"
)

// TokenUsage is the model entity for the TokenUsage schema.
type TokenUsage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID *string `json:"execution_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Non-cached input tokens only
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CacheCreationInputTokens holds the value of the "cache_creation_input_tokens" field.
	CacheCreationInputTokens int `json:"cache_creation_input_tokens,omitempty"`
	// CacheReadInputTokens holds the value of the "cache_read_input_tokens" field.
	CacheReadInputTokens int `json:"cache_read_input_tokens,omitempty"`
	// input + output + cache_creation + cache_read
	TotalTokens int `json:"total_tokens,omitempty"`
	// SHA-256 digest; never the raw key
	APIKeyHash string `json:"api_key_hash,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// true while the row is a write-ahead provisional record
	Estimated bool `json:"estimated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt int64 `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TokenUsageQuery when eager-loading is set.
	Edges        TokenUsageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TokenUsageEdges holds the relations/edges for other nodes in the graph.
type TokenUsageEdges struct {
	// Chat holds the value of the chat edge.
	Chat *Chat `json:"chat,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChatOrErr returns the Chat value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TokenUsageEdges) ChatOrErr() (*Chat, error) {
	if e.Chat != nil {
		return e.Chat, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chat.Label}
	}
	return nil, &NotLoadedError{edge: "chat"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TokenUsage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tokenusage.FieldEstimated:
			values[i] = new(sql.NullBool)
		case tokenusage.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case tokenusage.FieldInputTokens, tokenusage.FieldOutputTokens, tokenusage.FieldCacheCreationInputTokens, tokenusage.FieldCacheReadInputTokens, tokenusage.FieldTotalTokens, tokenusage.FieldCreatedAt:
			values[i] = new(sql.NullInt64)
		case tokenusage.FieldID, tokenusage.FieldChatID, tokenusage.FieldExecutionID, tokenusage.FieldProvider, tokenusage.FieldModel, tokenusage.FieldAPIKeyHash:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TokenUsage fields.
func (_m *TokenUsage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tokenusage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tokenusage.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case tokenusage.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = new(string)
				*_m.ExecutionID = value.String
			}
		case tokenusage.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case tokenusage.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case tokenusage.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case tokenusage.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case tokenusage.FieldCacheCreationInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cache_creation_input_tokens", values[i])
			} else if value.Valid {
				_m.CacheCreationInputTokens = int(value.Int64)
			}
		case tokenusage.FieldCacheReadInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cache_read_input_tokens", values[i])
			} else if value.Valid {
				_m.CacheReadInputTokens = int(value.Int64)
			}
		case tokenusage.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case tokenusage.FieldAPIKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_hash", values[i])
			} else if value.Valid {
				_m.APIKeyHash = value.String
			}
		case tokenusage.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case tokenusage.FieldEstimated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field estimated", values[i])
			} else if value.Valid {
				_m.Estimated = value.Bool
			}
		case tokenusage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TokenUsage.
// This includes values selected through modifiers, order, etc.
func (_m *TokenUsage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChat queries the "chat" edge of the TokenUsage entity.
func (_m *TokenUsage) QueryChat() *ChatQuery {
	return NewTokenUsageClient(_m.config).QueryChat(_m)
}

// Update returns a builder for updating this TokenUsage.
// Note that you need to call TokenUsage.Unwrap() before calling this method if this TokenUsage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TokenUsage) Update() *TokenUsageUpdateOne {
	return NewTokenUsageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TokenUsage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TokenUsage) Unwrap() *TokenUsage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TokenUsage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TokenUsage) String() string {
	var builder strings.Builder
	builder.WriteString("TokenUsage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	if v := _m.ExecutionID; v != nil {
		builder.WriteString("execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("cache_creation_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheCreationInputTokens))
	builder.WriteString(", ")
	builder.WriteString("cache_read_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheReadInputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("api_key_hash=")
	builder.WriteString(_m.APIKeyHash)
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	builder.WriteString("estimated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Estimated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAt))
	builder.WriteByte(')')
	return builder.String()
}

// TokenUsages is a parsable slice of TokenUsage.
type TokenUsages []*TokenUsage
