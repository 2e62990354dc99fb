// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/skein-dev/skein/ent/agentexecution"
	"github.com/skein-dev/skein/ent/billingledger"
	"github.com/skein-dev/skein/ent/chat"
	"github.com/skein-dev/skein/ent/message"
	"github.com/skein-dev/skein/ent/pipelinerun"
	"github.com/skein-dev/skein/ent/project"
	"github.com/skein-dev/skein/ent/schema"
	"github.com/skein-dev/skein/ent/snapshot"
	"github.com/skein-dev/skein/ent/tokenusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescRetryCount is the schema descriptor for retry_count field.
	agentexecutionDescRetryCount := agentexecutionFields[8].Descriptor()
	// agentexecution.DefaultRetryCount holds the default value on creation for the retry_count field.
	agentexecution.DefaultRetryCount = agentexecutionDescRetryCount.Default.(int)
	// agentexecutionDescStartedAt is the schema descriptor for started_at field.
	agentexecutionDescStartedAt := agentexecutionFields[9].Descriptor()
	// agentexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	agentexecution.DefaultStartedAt = agentexecutionDescStartedAt.Default.(func() int64)
	billingledgerFields := schema.BillingLedger{}.Fields()
	_ = billingledgerFields
	// billingledgerDescCacheCreationInputTokens is the schema descriptor for cache_creation_input_tokens field.
	billingledgerDescCacheCreationInputTokens := billingledgerFields[10].Descriptor()
	// billingledger.DefaultCacheCreationInputTokens holds the default value on creation for the cache_creation_input_tokens field.
	billingledger.DefaultCacheCreationInputTokens = billingledgerDescCacheCreationInputTokens.Default.(int)
	// billingledgerDescCacheReadInputTokens is the schema descriptor for cache_read_input_tokens field.
	billingledgerDescCacheReadInputTokens := billingledgerFields[11].Descriptor()
	// billingledger.DefaultCacheReadInputTokens holds the default value on creation for the cache_read_input_tokens field.
	billingledger.DefaultCacheReadInputTokens = billingledgerDescCacheReadInputTokens.Default.(int)
	// billingledgerDescEstimated is the schema descriptor for estimated field.
	billingledgerDescEstimated := billingledgerFields[15].Descriptor()
	// billingledger.DefaultEstimated holds the default value on creation for the estimated field.
	billingledger.DefaultEstimated = billingledgerDescEstimated.Default.(bool)
	// billingledgerDescCreatedAt is the schema descriptor for created_at field.
	billingledgerDescCreatedAt := billingledgerFields[16].Descriptor()
	// billingledger.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingledger.DefaultCreatedAt = billingledgerDescCreatedAt.Default.(func() int64)
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescTitle is the schema descriptor for title field.
	chatDescTitle := chatFields[2].Descriptor()
	// chat.DefaultTitle holds the default value on creation for the title field.
	chat.DefaultTitle = chatDescTitle.Default.(string)
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatFields[3].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() int64)
	// chatDescUpdatedAt is the schema descriptor for updated_at field.
	chatDescUpdatedAt := chatFields[4].Descriptor()
	// chat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chat.DefaultUpdatedAt = chatDescUpdatedAt.Default.(func() int64)
	// chat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chat.UpdateDefaultUpdatedAt = chatDescUpdatedAt.UpdateDefault.(func() int64)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() int64)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescStartedAt is the schema descriptor for started_at field.
	pipelinerunDescStartedAt := pipelinerunFields[8].Descriptor()
	// pipelinerun.DefaultStartedAt holds the default value on creation for the started_at field.
	pipelinerun.DefaultStartedAt = pipelinerunDescStartedAt.Default.(func() int64)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() int64)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[4].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() int64)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() int64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescCreatedAt is the schema descriptor for created_at field.
	snapshotDescCreatedAt := snapshotFields[6].Descriptor()
	// snapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	snapshot.DefaultCreatedAt = snapshotDescCreatedAt.Default.(func() int64)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescCacheCreationInputTokens is the schema descriptor for cache_creation_input_tokens field.
	tokenusageDescCacheCreationInputTokens := tokenusageFields[7].Descriptor()
	// tokenusage.DefaultCacheCreationInputTokens holds the default value on creation for the cache_creation_input_tokens field.
	tokenusage.DefaultCacheCreationInputTokens = tokenusageDescCacheCreationInputTokens.Default.(int)
	// tokenusageDescCacheReadInputTokens is the schema descriptor for cache_read_input_tokens field.
	tokenusageDescCacheReadInputTokens := tokenusageFields[8].Descriptor()
	// tokenusage.DefaultCacheReadInputTokens holds the default value on creation for the cache_read_input_tokens field.
	tokenusage.DefaultCacheReadInputTokens = tokenusageDescCacheReadInputTokens.Default.(int)
	// tokenusageDescEstimated is the schema descriptor for estimated field.
	tokenusageDescEstimated := tokenusageFields[12].Descriptor()
	// tokenusage.DefaultEstimated holds the default value on creation for the estimated field.
	tokenusage.DefaultEstimated = tokenusageDescEstimated.Default.(bool)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[13].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() int64)
}
