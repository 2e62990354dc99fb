// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skein-dev/skein/ent/billingledger"
)

// BillingLedger is the model entity for the BillingLedger schema.
type BillingLedger struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatID holds the value of the "chat_id" field.
	ChatID string `json:"chat_id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// ProjectName holds the value of the "project_name" field.
	ProjectName string `json:"project_name,omitempty"`
	// ChatTitle holds the value of the "chat_title" field.
	ChatTitle string `json:"chat_title,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CacheCreationInputTokens holds the value of the "cache_creation_input_tokens" field.
	CacheCreationInputTokens int `json:"cache_creation_input_tokens,omitempty"`
	// CacheReadInputTokens holds the value of the "cache_read_input_tokens" field.
	CacheReadInputTokens int `json:"cache_read_input_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// APIKeyHash holds the value of the "api_key_hash" field.
	APIKeyHash string `json:"api_key_hash,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// Estimated holds the value of the "estimated" field.
	Estimated bool `json:"estimated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    int64 `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillingLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billingledger.FieldEstimated:
			values[i] = new(sql.NullBool)
		case billingledger.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case billingledger.FieldInputTokens, billingledger.FieldOutputTokens, billingledger.FieldCacheCreationInputTokens, billingledger.FieldCacheReadInputTokens, billingledger.FieldTotalTokens, billingledger.FieldCreatedAt:
			values[i] = new(sql.NullInt64)
		case billingledger.FieldID, billingledger.FieldChatID, billingledger.FieldExecutionID, billingledger.FieldProjectID, billingledger.FieldProjectName, billingledger.FieldChatTitle, billingledger.FieldProvider, billingledger.FieldModel, billingledger.FieldAPIKeyHash:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillingLedger fields.
func (_m *BillingLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billingledger.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case billingledger.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = value.String
			}
		case billingledger.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case billingledger.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case billingledger.FieldProjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_name", values[i])
			} else if value.Valid {
				_m.ProjectName = value.String
			}
		case billingledger.FieldChatTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_title", values[i])
			} else if value.Valid {
				_m.ChatTitle = value.String
			}
		case billingledger.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case billingledger.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case billingledger.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case billingledger.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case billingledger.FieldCacheCreationInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cache_creation_input_tokens", values[i])
			} else if value.Valid {
				_m.CacheCreationInputTokens = int(value.Int64)
			}
		case billingledger.FieldCacheReadInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cache_read_input_tokens", values[i])
			} else if value.Valid {
				_m.CacheReadInputTokens = int(value.Int64)
			}
		case billingledger.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case billingledger.FieldAPIKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_hash", values[i])
			} else if value.Valid {
				_m.APIKeyHash = value.String
			}
		case billingledger.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case billingledger.FieldEstimated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field estimated", values[i])
			} else if value.Valid {
				_m.Estimated = value.Bool
			}
		case billingledger.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BillingLedger.
// This includes values selected through modifiers, order, etc.
func (_m *BillingLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BillingLedger.
// Note that you need to call BillingLedger.Unwrap() before calling this method if this BillingLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BillingLedger) Update() *BillingLedgerUpdateOne {
	return NewBillingLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BillingLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BillingLedger) Unwrap() *BillingLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillingLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BillingLedger) String() string {
	var builder strings.Builder
	builder.WriteString("BillingLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chat_id=")
	builder.WriteString(_m.ChatID)
	builder.WriteString(", ")
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("project_name=")
	builder.WriteString(_m.ProjectName)
	builder.WriteString(", ")
	builder.WriteString("chat_title=")
	builder.WriteString(_m.ChatTitle)
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

// BillingLedgers is a parsable slice of BillingLedger.
type BillingLedgers []*BillingLedger
