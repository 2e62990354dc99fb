// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skein-dev/skein/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldChatID, v))
}

// UserMessage applies equality check predicate on the "user_message" field. It's identical to UserMessageEQ.
func UserMessage(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldUserMessage, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldFailureReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldChatID, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v Intent) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v Intent) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...Intent) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...Intent) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldIntent, vs...))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldScope, vs...))
}

// UserMessageEQ applies the EQ predicate on the "user_message" field.
func UserMessageEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldUserMessage, v))
}

// UserMessageNEQ applies the NEQ predicate on the "user_message" field.
func UserMessageNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldUserMessage, v))
}

// UserMessageIn applies the In predicate on the "user_message" field.
func UserMessageIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldUserMessage, vs...))
}

// UserMessageNotIn applies the NotIn predicate on the "user_message" field.
func UserMessageNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldUserMessage, vs...))
}

// UserMessageGT applies the GT predicate on the "user_message" field.
func UserMessageGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldUserMessage, v))
}

// UserMessageGTE applies the GTE predicate on the "user_message" field.
func UserMessageGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldUserMessage, v))
}

// UserMessageLT applies the LT predicate on the "user_message" field.
func UserMessageLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldUserMessage, v))
}

// UserMessageLTE applies the LTE predicate on the "user_message" field.
func UserMessageLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldUserMessage, v))
}

// UserMessageContains applies the Contains predicate on the "user_message" field.
func UserMessageContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldUserMessage, v))
}

// UserMessageHasPrefix applies the HasPrefix predicate on the "user_message" field.
func UserMessageHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldUserMessage, v))
}

// UserMessageHasSuffix applies the HasSuffix predicate on the "user_message" field.
func UserMessageHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldUserMessage, v))
}

// UserMessageEqualFold applies the EqualFold predicate on the "user_message" field.
func UserMessageEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldUserMessage, v))
}

// UserMessageContainsFold applies the ContainsFold predicate on the "user_message" field.
func UserMessageContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldUserMessage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldFailureReason, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v int64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasChat applies the HasEdge predicate on the "chat" edge.
func HasChat() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChatTable, ChatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatWith applies the HasEdge predicate on the "chat" edge with a given conditions (other predicates).
func HasChatWith(preds ...predicate.Chat) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newChatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
