// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pipelinerun type in the database.
	Label = "pipeline_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldUserMessage holds the string denoting the user_message field in the database.
	FieldUserMessage = "user_message"
	// FieldPlannedAgents holds the string denoting the planned_agents field in the database.
	FieldPlannedAgents = "planned_agents"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeChat holds the string denoting the chat edge name in mutations.
	EdgeChat = "chat"
	// ChatFieldID holds the string denoting the ID field of the Chat.
	ChatFieldID = "chat_id"
	// Table holds the table name of the pipelinerun in the database.
	Table = "pipeline_runs"
	// ChatTable is the table that holds the chat relation/edge.
	ChatTable = "pipeline_runs"
	// ChatInverseTable is the table name for the Chat entity.
	// It exists in this package in order to avoid circular dependency with the "chat" package.
	ChatInverseTable = "chats"
	// ChatColumn is the table column denoting the chat relation/edge.
	ChatColumn = "chat_id"
)

// Columns holds all SQL columns for pipelinerun fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldIntent,
	FieldScope,
	FieldUserMessage,
	FieldPlannedAgents,
	FieldStatus,
	FieldFailureReason,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() int64
)

// Intent defines the type for the "intent" enum field.
type Intent string

// Intent values.
const (
	IntentBuild    Intent = "build"
	IntentFix      Intent = "fix"
	IntentQuestion Intent = "question"
)

func (i Intent) String() string {
	return string(i)
}

// IntentValidator is a validator for the "intent" field enum values. It is called by the builders before save.
func IntentValidator(i Intent) error {
	switch i {
	case IntentBuild, IntentFix, IntentQuestion:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for intent field: %q", i)
	}
}

// Scope defines the type for the "scope" enum field.
type Scope string

// Scope values.
const (
	ScopeFrontend Scope = "frontend"
	ScopeBackend  Scope = "backend"
	ScopeStyling  Scope = "styling"
	ScopeFull     Scope = "full"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeFrontend, ScopeBackend, ScopeStyling, ScopeFull:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for scope field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning     Status = "running"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusInterrupted Status = "interrupted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusInterrupted:
		return nil
	default:
		return fmt.Errorf("pipelinerun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PipelineRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByUserMessage orders the results by the user_message field.
func ByUserMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserMessage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByChatField orders the results by chat field.
func ByChatField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatStep(), sql.OrderByField(field, opts...))
	}
}
func newChatStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatInverseTable, ChatFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChatTable, ChatColumn),
	)
}
