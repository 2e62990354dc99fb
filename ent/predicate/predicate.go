// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// AppSetting is the predicate function for appsetting builders.
type AppSetting func(*sql.Selector)

// BillingLedger is the predicate function for billingledger builders.
type BillingLedger func(*sql.Selector)

// Chat is the predicate function for chat builders.
type Chat func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)
