// Code generated by ent, DO NOT EDIT.

package billingledger

import (
	"entgo.io/ent/dialect/sql"
	"github.com/skein-dev/skein/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldChatID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldExecutionID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldProjectID, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldProjectName, v))
}

// ChatTitle applies equality check predicate on the "chat_title" field. It's identical to ChatTitleEQ.
func ChatTitle(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldChatTitle, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldModel, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldOutputTokens, v))
}

// CacheCreationInputTokens applies equality check predicate on the "cache_creation_input_tokens" field. It's identical to CacheCreationInputTokensEQ.
func CacheCreationInputTokens(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCacheCreationInputTokens, v))
}

// CacheReadInputTokens applies equality check predicate on the "cache_read_input_tokens" field. It's identical to CacheReadInputTokensEQ.
func CacheReadInputTokens(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCacheReadInputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldTotalTokens, v))
}

// APIKeyHash applies equality check predicate on the "api_key_hash" field. It's identical to APIKeyHashEQ.
func APIKeyHash(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldAPIKeyHash, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCostEstimate, v))
}

// Estimated applies equality check predicate on the "estimated" field. It's identical to EstimatedEQ.
func Estimated(v bool) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldEstimated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCreatedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDIsNil applies the IsNil predicate on the "chat_id" field.
func ChatIDIsNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIsNull(FieldChatID))
}

// ChatIDNotNil applies the NotNil predicate on the "chat_id" field.
func ChatIDNotNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotNull(FieldChatID))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldChatID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldExecutionID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldProjectID, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameIsNil applies the IsNil predicate on the "project_name" field.
func ProjectNameIsNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIsNull(FieldProjectName))
}

// ProjectNameNotNil applies the NotNil predicate on the "project_name" field.
func ProjectNameNotNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotNull(FieldProjectName))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldProjectName, v))
}

// ChatTitleEQ applies the EQ predicate on the "chat_title" field.
func ChatTitleEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldChatTitle, v))
}

// ChatTitleNEQ applies the NEQ predicate on the "chat_title" field.
func ChatTitleNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldChatTitle, v))
}

// ChatTitleIn applies the In predicate on the "chat_title" field.
func ChatTitleIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldChatTitle, vs...))
}

// ChatTitleNotIn applies the NotIn predicate on the "chat_title" field.
func ChatTitleNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldChatTitle, vs...))
}

// ChatTitleGT applies the GT predicate on the "chat_title" field.
func ChatTitleGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldChatTitle, v))
}

// ChatTitleGTE applies the GTE predicate on the "chat_title" field.
func ChatTitleGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldChatTitle, v))
}

// ChatTitleLT applies the LT predicate on the "chat_title" field.
func ChatTitleLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldChatTitle, v))
}

// ChatTitleLTE applies the LTE predicate on the "chat_title" field.
func ChatTitleLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldChatTitle, v))
}

// ChatTitleContains applies the Contains predicate on the "chat_title" field.
func ChatTitleContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldChatTitle, v))
}

// ChatTitleHasPrefix applies the HasPrefix predicate on the "chat_title" field.
func ChatTitleHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldChatTitle, v))
}

// ChatTitleHasSuffix applies the HasSuffix predicate on the "chat_title" field.
func ChatTitleHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldChatTitle, v))
}

// ChatTitleIsNil applies the IsNil predicate on the "chat_title" field.
func ChatTitleIsNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIsNull(FieldChatTitle))
}

// ChatTitleNotNil applies the NotNil predicate on the "chat_title" field.
func ChatTitleNotNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotNull(FieldChatTitle))
}

// ChatTitleEqualFold applies the EqualFold predicate on the "chat_title" field.
func ChatTitleEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldChatTitle, v))
}

// ChatTitleContainsFold applies the ContainsFold predicate on the "chat_title" field.
func ChatTitleContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldChatTitle, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldModel, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldOutputTokens, v))
}

// CacheCreationInputTokensEQ applies the EQ predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensNEQ applies the NEQ predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensNEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensIn applies the In predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldCacheCreationInputTokens, vs...))
}

// CacheCreationInputTokensNotIn applies the NotIn predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensNotIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldCacheCreationInputTokens, vs...))
}

// CacheCreationInputTokensGT applies the GT predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensGT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensGTE applies the GTE predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensGTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensLT applies the LT predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensLT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldCacheCreationInputTokens, v))
}

// CacheCreationInputTokensLTE applies the LTE predicate on the "cache_creation_input_tokens" field.
func CacheCreationInputTokensLTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldCacheCreationInputTokens, v))
}

// CacheReadInputTokensEQ applies the EQ predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensNEQ applies the NEQ predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensNEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensIn applies the In predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldCacheReadInputTokens, vs...))
}

// CacheReadInputTokensNotIn applies the NotIn predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensNotIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldCacheReadInputTokens, vs...))
}

// CacheReadInputTokensGT applies the GT predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensGT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensGTE applies the GTE predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensGTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensLT applies the LT predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensLT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldCacheReadInputTokens, v))
}

// CacheReadInputTokensLTE applies the LTE predicate on the "cache_read_input_tokens" field.
func CacheReadInputTokensLTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldCacheReadInputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldTotalTokens, v))
}

// APIKeyHashEQ applies the EQ predicate on the "api_key_hash" field.
func APIKeyHashEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyHashNEQ applies the NEQ predicate on the "api_key_hash" field.
func APIKeyHashNEQ(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldAPIKeyHash, v))
}

// APIKeyHashIn applies the In predicate on the "api_key_hash" field.
func APIKeyHashIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashNotIn applies the NotIn predicate on the "api_key_hash" field.
func APIKeyHashNotIn(vs ...string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashGT applies the GT predicate on the "api_key_hash" field.
func APIKeyHashGT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldAPIKeyHash, v))
}

// APIKeyHashGTE applies the GTE predicate on the "api_key_hash" field.
func APIKeyHashGTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldAPIKeyHash, v))
}

// APIKeyHashLT applies the LT predicate on the "api_key_hash" field.
func APIKeyHashLT(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldAPIKeyHash, v))
}

// APIKeyHashLTE applies the LTE predicate on the "api_key_hash" field.
func APIKeyHashLTE(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldAPIKeyHash, v))
}

// APIKeyHashContains applies the Contains predicate on the "api_key_hash" field.
func APIKeyHashContains(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContains(FieldAPIKeyHash, v))
}

// APIKeyHashHasPrefix applies the HasPrefix predicate on the "api_key_hash" field.
func APIKeyHashHasPrefix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasPrefix(FieldAPIKeyHash, v))
}

// APIKeyHashHasSuffix applies the HasSuffix predicate on the "api_key_hash" field.
func APIKeyHashHasSuffix(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldHasSuffix(FieldAPIKeyHash, v))
}

// APIKeyHashIsNil applies the IsNil predicate on the "api_key_hash" field.
func APIKeyHashIsNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIsNull(FieldAPIKeyHash))
}

// APIKeyHashNotNil applies the NotNil predicate on the "api_key_hash" field.
func APIKeyHashNotNil() predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotNull(FieldAPIKeyHash))
}

// APIKeyHashEqualFold applies the EqualFold predicate on the "api_key_hash" field.
func APIKeyHashEqualFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEqualFold(FieldAPIKeyHash, v))
}

// APIKeyHashContainsFold applies the ContainsFold predicate on the "api_key_hash" field.
func APIKeyHashContainsFold(v string) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldContainsFold(FieldAPIKeyHash, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldCostEstimate, v))
}

// EstimatedEQ applies the EQ predicate on the "estimated" field.
func EstimatedEQ(v bool) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldEstimated, v))
}

// EstimatedNEQ applies the NEQ predicate on the "estimated" field.
func EstimatedNEQ(v bool) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldEstimated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v int64) predicate.BillingLedger {
	return predicate.BillingLedger(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BillingLedger) predicate.BillingLedger {
	return predicate.BillingLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BillingLedger) predicate.BillingLedger {
	return predicate.BillingLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BillingLedger) predicate.BillingLedger {
	return predicate.BillingLedger(sql.NotPredicates(p))
}
