// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "retrying", "stopped"}, Default: "pending"},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "completed_at", Type: field.TypeInt64, Nullable: true},
		{Name: "chat_id", Type: field.TypeString},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_chats_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[10]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_chat_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[10], AgentExecutionsColumns[8]},
			},
			{
				Name:    "agentexecution_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1]},
			},
			{
				Name:    "agentexecution_status",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[3]},
			},
		},
	}
	// AppSettingsColumns holds the columns for the "app_settings" table.
	AppSettingsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// AppSettingsTable holds the schema information for the "app_settings" table.
	AppSettingsTable = &schema.Table{
		Name:       "app_settings",
		Columns:    AppSettingsColumns,
		PrimaryKey: []*schema.Column{AppSettingsColumns[0]},
	}
	// BillingLedgersColumns holds the columns for the "billing_ledgers" table.
	BillingLedgersColumns = []*schema.Column{
		{Name: "ledger_id", Type: field.TypeString, Unique: true},
		{Name: "chat_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "project_name", Type: field.TypeString, Nullable: true},
		{Name: "chat_title", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "cache_creation_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cache_read_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt},
		{Name: "api_key_hash", Type: field.TypeString, Nullable: true},
		{Name: "cost_estimate", Type: field.TypeFloat64},
		{Name: "estimated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeInt64},
	}
	// BillingLedgersTable holds the schema information for the "billing_ledgers" table.
	BillingLedgersTable = &schema.Table{
		Name:       "billing_ledgers",
		Columns:    BillingLedgersColumns,
		PrimaryKey: []*schema.Column{BillingLedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billingledger_created_at",
				Unique:  false,
				Columns: []*schema.Column{BillingLedgersColumns[16]},
			},
			{
				Name:    "billingledger_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BillingLedgersColumns[3], BillingLedgersColumns[16]},
			},
			{
				Name:    "billingledger_estimated",
				Unique:  false,
				Columns: []*schema.Column{BillingLedgersColumns[15]},
			},
		},
	}
	// ChatsColumns holds the columns for the "chats" table.
	ChatsColumns = []*schema.Column{
		{Name: "chat_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: "New chat"},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
		{Name: "project_id", Type: field.TypeString},
	}
	// ChatsTable holds the schema information for the "chats" table.
	ChatsTable = &schema.Table{
		Name:       "chats",
		Columns:    ChatsColumns,
		PrimaryKey: []*schema.Column{ChatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chats_projects_chats",
				Columns:    []*schema.Column{ChatsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chat_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatsColumns[4], ChatsColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_chats_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[5]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "intent", Type: field.TypeEnum, Enums: []string{"build", "fix", "question"}},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"frontend", "backend", "styling", "full"}},
		{Name: "user_message", Type: field.TypeString, Size: 2147483647},
		{Name: "planned_agents", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "interrupted"}, Default: "running"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "completed_at", Type: field.TypeInt64, Nullable: true},
		{Name: "chat_id", Type: field.TypeString},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_runs_chats_runs",
				Columns:    []*schema.Column{PipelineRunsColumns[9]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_chat_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[9], PipelineRunsColumns[7]},
			},
			{
				Name:    "pipelinerun_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeString},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "manifest", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "snapshots_chats_snapshots",
				Columns:    []*schema.Column{SnapshotsColumns[5]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "snapshots_projects_snapshots",
				Columns:    []*schema.Column{SnapshotsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[6], SnapshotsColumns[4]},
			},
		},
	}
	// TokenUsagesColumns holds the columns for the "token_usages" table.
	TokenUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "cache_creation_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cache_read_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt},
		{Name: "api_key_hash", Type: field.TypeString, Nullable: true},
		{Name: "cost_estimate", Type: field.TypeFloat64},
		{Name: "estimated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeString},
	}
	// TokenUsagesTable holds the schema information for the "token_usages" table.
	TokenUsagesTable = &schema.Table{
		Name:       "token_usages",
		Columns:    TokenUsagesColumns,
		PrimaryKey: []*schema.Column{TokenUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_usages_chats_token_usage",
				Columns:    []*schema.Column{TokenUsagesColumns[13]},
				RefColumns: []*schema.Column{ChatsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_chat_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[13], TokenUsagesColumns[12]},
			},
			{
				Name:    "tokenusage_estimated",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		AppSettingsTable,
		BillingLedgersTable,
		ChatsTable,
		MessagesTable,
		PipelineRunsTable,
		ProjectsTable,
		SnapshotsTable,
		TokenUsagesTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = ChatsTable
	ChatsTable.ForeignKeys[0].RefTable = ProjectsTable
	MessagesTable.ForeignKeys[0].RefTable = ChatsTable
	PipelineRunsTable.ForeignKeys[0].RefTable = ChatsTable
	SnapshotsTable.ForeignKeys[0].RefTable = ChatsTable
	SnapshotsTable.ForeignKeys[1].RefTable = ProjectsTable
	TokenUsagesTable.ForeignKeys[0].RefTable = ChatsTable
}
