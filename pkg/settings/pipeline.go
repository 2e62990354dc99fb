package settings

import "context"

// Settings key namespaces.
const (
	// pipeline.<name> — orchestrator tunables.
	prefixPipeline = "pipeline."

	// Cost limits (0 = unlimited). These are top-level keys, not namespaced.
	KeyMaxTokensPerChat    = "maxTokensPerChat"
	KeyMaxAgentCallsPerRun = "maxAgentCallsPerRun"
	KeyMaxCostPerDay       = "maxCostPerDay"
	KeyMaxCostPerProject   = "maxCostPerProject"

	// Commit identity.
	KeyGitUserName  = "git.user.name"
	KeyGitUserEmail = "git.user.email"
)

// Pipeline defaults. Tunable via pipeline.<name> settings keys.
const (
	DefaultMaxRetries             = 3
	DefaultMaxBuildFixAttempts    = 3
	DefaultMaxRemediationCycles   = 2
	DefaultBuildFixMaxOutput      = 16000
	DefaultBuildFixMaxToolSteps   = 10
	DefaultMaxOutputTokens        = 8192
	DefaultMaxToolSteps           = 10
	DefaultWarningThreshold       = 80
	DefaultMaxVersionsRetained    = 50
	DefaultMaxAgentVersionsPerRun = 3
	DefaultShellTimeoutMs         = 30000
	DefaultMaxProjectSourceChars  = 120000
)

// PipelineConfig is the typed view over the pipeline.* settings namespace.
// Fields fall back to the compiled-in defaults on absent or malformed keys.
type PipelineConfig struct {
	MaxRetries             int
	MaxBuildFixAttempts    int
	MaxRemediationCycles   int
	BuildFixMaxOutput      int
	BuildFixMaxToolSteps   int
	DefaultMaxOutputTokens int
	DefaultMaxToolSteps    int
	WarningThreshold       int
	MaxVersionsRetained    int
	MaxAgentVersionsPerRun int
	AllowShellTools        bool
	ShellTimeoutMs         int
	MaxProjectSourceChars  int
}

// Pipeline materializes the current pipeline configuration. Values are read
// through to the settings table on every call so admin edits take effect on
// the next run without a restart.
func (s *Store) Pipeline(ctx context.Context) PipelineConfig {
	return PipelineConfig{
		MaxRetries:             s.Int(ctx, prefixPipeline+"maxRetries", DefaultMaxRetries),
		MaxBuildFixAttempts:    s.Int(ctx, prefixPipeline+"maxBuildFixAttempts", DefaultMaxBuildFixAttempts),
		MaxRemediationCycles:   s.Int(ctx, prefixPipeline+"maxRemediationCycles", DefaultMaxRemediationCycles),
		BuildFixMaxOutput:      s.Int(ctx, prefixPipeline+"buildFixMaxOutputTokens", DefaultBuildFixMaxOutput),
		BuildFixMaxToolSteps:   s.Int(ctx, prefixPipeline+"buildFixMaxToolSteps", DefaultBuildFixMaxToolSteps),
		DefaultMaxOutputTokens: s.Int(ctx, prefixPipeline+"defaultMaxOutputTokens", DefaultMaxOutputTokens),
		DefaultMaxToolSteps:    s.Int(ctx, prefixPipeline+"defaultMaxToolSteps", DefaultMaxToolSteps),
		WarningThreshold:       s.Int(ctx, prefixPipeline+"warningThreshold", DefaultWarningThreshold),
		MaxVersionsRetained:    s.Int(ctx, prefixPipeline+"maxVersionsRetained", DefaultMaxVersionsRetained),
		MaxAgentVersionsPerRun: s.Int(ctx, prefixPipeline+"maxAgentVersionsPerRun", DefaultMaxAgentVersionsPerRun),
		AllowShellTools:        s.Bool(ctx, prefixPipeline+"allowShellTools", false),
		ShellTimeoutMs:         s.Int(ctx, prefixPipeline+"shellTimeoutMs", DefaultShellTimeoutMs),
		MaxProjectSourceChars:  s.Int(ctx, prefixPipeline+"maxProjectSourceChars", DefaultMaxProjectSourceChars),
	}
}

// GitIdentity returns the commit identity for project repos.
func (s *Store) GitIdentity(ctx context.Context) (name, email string) {
	name = s.String(ctx, KeyGitUserName, "Skein")
	email = s.String(ctx, KeyGitUserEmail, "skein@localhost")
	return name, email
}

// AgentOverride holds per-agent settings overrides from the agent.<name>.*
// namespace. Empty fields mean "no override".
type AgentOverride struct {
	Provider string
	Model    string
	Prompt   string
	Tools    string
}

// Agent reads overrides for the named agent.
func (s *Store) Agent(ctx context.Context, name string) AgentOverride {
	prefix := "agent." + name + "."
	return AgentOverride{
		Provider: s.String(ctx, prefix+"provider", ""),
		Model:    s.String(ctx, prefix+"model", ""),
		Prompt:   s.String(ctx, prefix+"prompt", ""),
		Tools:    s.String(ctx, prefix+"tools", ""),
	}
}
