// Code generated by ent, DO NOT EDIT.

package tokenusage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skein-dev/skein/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldChatID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldExecutionID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldModel, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldOutputTokens, v))
}

// CacheCreationInputTokens applies equality check predicate on the "cache_creation_input_tokens" field. It's identical to CacheCreationInputTokensEQ.
func CacheCreationInputTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCacheCreationInputTokens, v))
}

// CacheReadInputTokens applies equality check predicate on the "cache_read_input_tokens" field. It's identical to CacheReadInputTokensEQ.
func CacheReadInputTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCacheReadInputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldTotalTokens, v))
}

// APIKeyHash applies equality check predicate on the "api_key_hash" field. It's identical to APIKeyHashEQ.
func APIKeyHash(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldAPIKeyHash, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCostEstimate, v))
}

// Estimated applies equality check predicate on the "estimated" field. It's identical to EstimatedEQ.
func Estimated(v bool) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldEstimated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldChatID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldExecutionID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldModel, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldOutputTokens, v))
}

// CacheCreationInputTokensEQ applies the EQ predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensNEQ applies the NEQ predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensIn applies the In predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCacheCreationInputTokens, vs...))
}

// CacheCreationInputTokensNotIn applies the NotIn predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCacheCreationInputTokens, vs...))
}

// CacheCreationInputTokensGT applies the GT predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensGTE applies the GTE predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensLT applies the LT predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensLTE applies the LTE predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCacheCreationInputTokens, v))
}

// CacheReadInputTokensEQ applies the EQ predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensNEQ applies the NEQ predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensIn applies the In predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCacheReadInputTokens, vs...))
}

// CacheReadInputTokensNotIn applies the NotIn predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCacheReadInputTokens, vs...))
}

// CacheReadInputTokensGT applies the GT predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensGTE applies the GTE predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensLT applies the LT predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensLTE applies the LTE predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCacheReadInputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldTotalTokens, v))
}

// APIKeyHashEQ applies the EQ predicate on the "api_key_hash" field.
func APIKeyHashEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyHashNEQ applies the NEQ predicate on the "api_key_hash" field.
func APIKeyHashNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldAPIKeyHash, v))
}

// APIKeyHashIn applies the In predicate on the "api_key_hash" field.
func APIKeyHashIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashNotIn applies the NotIn predicate on the "api_key_hash" field.
func APIKeyHashNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashGT applies the GT predicate on the "api_key_hash" field.
func APIKeyHashGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldAPIKeyHash, v))
}

// APIKeyHashGTE applies the GTE predicate on the "api_key_hash" field.
func APIKeyHashGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldAPIKeyHash, v))
}

// APIKeyHashLT applies the LT predicate on the "api_key_hash" field.
func APIKeyHashLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldAPIKeyHash, v))
}

// APIKeyHashLTE applies the LTE predicate on the "api_key_hash" field.
func APIKeyHashLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldAPIKeyHash, v))
}

// APIKeyHashContains applies the Contains predicate on the "api_key_hash" field.
func APIKeyHashContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldAPIKeyHash, v))
}

// APIKeyHashHasPrefix applies the HasPrefix predicate on the "api_key_hash" field.
func APIKeyHashHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldAPIKeyHash, v))
}

// APIKeyHashHasSuffix applies the HasSuffix predicate on the "api_key_hash" field.
func APIKeyHashHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldAPIKeyHash, v))
}

// APIKeyHashIsNil applies the IsNil predicate on the "api_key_hash" field.
func APIKeyHashIsNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIsNull(FieldAPIKeyHash))
}

// APIKeyHashNotNil applies the NotNil predicate on the "api_key_hash" field.
func APIKeyHashNotNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotNull(FieldAPIKeyHash))
}

// APIKeyHashEqualFold applies the EqualFold predicate on the "api_key_hash" field.
func APIKeyHashEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldAPIKeyHash, v))
}

// APIKeyHashContainsFold applies the ContainsFold predicate on the "api_key_hash" field.
func APIKeyHashContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldAPIKeyHash, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCostEstimate, v))
}

// EstimatedEQ applies the EQ predicate on the "estimated" field.
func EstimatedEQ(v bool) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldEstimated, v))
}

// EstimatedNEQ applies the NEQ predicate on the "estimated" field.
func EstimatedNEQ(v bool) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldEstimated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasChat applies the HasEdge predicate on the "chat" edge.
func HasChat() predicate.TokenUsage {
	return predicate.TokenUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChatTable, ChatColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChatWith applies the HasEdge predicate on the "chat" edge with a given conditions (other predicates).
func HasChatWith(preds ...predicate.Chat) predicate.TokenUsage {
	return predicate.TokenUsage(func(s *sql.Selector) {
		step := newChatStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.NotPredicates(p))
}
