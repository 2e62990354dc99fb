// Code generated by ent, DO NOT EDIT.

package billingledger

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the billingledger type in the database.
	Label = "billing_ledger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ledger_id"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldProjectName holds the string denoting the project_name field in the database.
	FieldProjectName = "project_name"
	// FieldChatTitle holds the string denoting the chat_title field in the database.
	FieldChatTitle = "chat_title"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldCacheCreationInputTokens holds the string denoting the cache_creation_input_tokens field in the database.
	FieldCacheCreationInputTokens = "cache_creation_input_tokens"
	// FieldCacheReadInputTokens holds the string denoting the cache_read_input_tokens field in the database.
	FieldCacheReadInputTokens = "cache_read_input_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldAPIKeyHash holds the string denoting the api_key_hash field in the database.
	FieldAPIKeyHash = "api_key_hash"
	// FieldCostEstimate holds the string denoting the cost_estimate field in the database.
	FieldCostEstimate = "cost_estimate"
	// FieldEstimated holds the string denoting the estimated field in the database.
	FieldEstimated = "estimated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the billingledger in the database.
	Table = "billing_ledgers"
)

// Columns holds all SQL columns for billingledger fields.
var Columns = []string{
	FieldID,
	FieldChatID,
	FieldExecutionID,
	FieldProjectID,
	FieldProjectName,
	FieldChatTitle,
	FieldProvider,
	FieldModel,
	FieldInputTokens,
	FieldOutputTokens,
	FieldCacheCreationInputTokens,
	FieldCacheReadInputTokens,
	FieldTotalTokens,
	FieldAPIKeyHash,
	FieldCostEstimate,
	FieldEstimated,
	FieldCreatedAt,
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
	// DefaultCacheCreationInputTokens holds the default value on creation for the "cache_creation_input_tokens" field.
	DefaultCacheCreationInputTokens int
	// DefaultCacheReadInputTokens holds the default value on creation for the "cache_read_input_tokens" field.
	DefaultCacheReadInputTokens int
	// DefaultEstimated holds the default value on creation for the "estimated" field.
	DefaultEstimated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() int64
)

// OrderOption defines the ordering options for the BillingLedger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByProjectName orders the results by the project_name field.
func ByProjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectName, opts...).ToFunc()
}

// ByChatTitle orders the results by the chat_title field.
func ByChatTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatTitle, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByCacheCreationInputTokens orders the results by the cache_creation_input_tokens field.
func ByCacheCreationInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheCreationInputTokens, opts...).ToFunc()
}

// ByCacheReadInputTokens orders the results by the cache_read_input_tokens field.
func ByCacheReadInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheReadInputTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByAPIKeyHash orders the results by the api_key_hash field.
func ByAPIKeyHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyHash, opts...).ToFunc()
}

// ByCostEstimate orders the results by the cost_estimate field.
func ByCostEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostEstimate, opts...).ToFunc()
}

// ByEstimated orders the results by the estimated field.
func ByEstimated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
