package pipeline

import (
	"strings"

	"github.com/skein-dev/skein/pkg/agent"
	"github.com/skein-dev/skein/pkg/template"
)

// Intent is what the user wants from this run.
type Intent string

// Scope is which part of the project the run touches.
type Scope string

const (
	IntentBuild    Intent = "build"
	IntentFix      Intent = "fix"
	IntentQuestion Intent = "question"

	ScopeFrontend Scope = "frontend"
	ScopeBackend  Scope = "backend"
	ScopeStyling  Scope = "styling"
	ScopeFull     Scope = "full"
)

// Node is one planned agent step: the agent to run and the template its
// user prompt is rendered from. UpstreamSources, when set, replaces the
// default all-ancestors output view.
type Node struct {
	AgentName       string                    `json:"agentName"`
	InputTemplate   string                    `json:"inputTemplate"`
	UpstreamSources []template.UpstreamSource `json:"upstreamSources,omitempty"`
}

// Plan is a run's fixed agent list, produced once at planning time.
type Plan struct {
	Intent Intent
	Scope  Scope
	Nodes  []Node
}

// AgentNames returns the planned agent list in order.
func (p *Plan) AgentNames() []string {
	names := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		names[i] = n.AgentName
	}
	return names
}

// Node input templates. Dev agents see the architect plan, the rendered
// design system, and the current project source; review agents additionally
// see the written-file manifest.
const (
	researchTemplate = "User request:\n{{userMessage}}"

	architectTemplate = "User request:\n{{userMessage}}\n\n" +
		"Research notes:\n{{output:research}}"

	devTemplate = "User request:\n{{userMessage}}\n\n" +
		"Plan:\n{{output:architect}}\n\n" +
		"{{transform:design-system}}\n\n" +
		"Current project files:\n{{transform:project-source}}"

	stylingTemplate = "User request:\n{{userMessage}}\n\n" +
		"{{transform:design-system}}\n\n" +
		"Current project files:\n{{transform:project-source}}"

	reviewTemplate = "User request:\n{{userMessage}}\n\n" +
		"Files written:\n{{transform:file-manifest}}\n\n" +
		"Project source:\n{{transform:project-source}}"

	qaTemplate = "Verify the project builds and behaves as requested.\n\n" +
		"User request:\n{{userMessage}}\n\n" +
		"Project source:\n{{transform:project-source}}"

	buildFixTemplate = "Fix the reported failures.\n\n" +
		"User request:\n{{userMessage}}\n\n" +
		"Failure log:\n{{context:failures}}\n\n" +
		"Project source:\n{{transform:project-source}}"

	questionTemplate = "Answer the user's question about the project.\n\n" +
		"Question:\n{{userMessage}}\n\n" +
		"Project source:\n{{transform:project-source}}"
)

// BuildPlan produces the ordered node list for an intent and scope.
func BuildPlan(intent Intent, scope Scope) *Plan {
	plan := &Plan{Intent: intent, Scope: scope}
	switch intent {
	case IntentQuestion:
		plan.Nodes = []Node{{AgentName: agent.Research, InputTemplate: questionTemplate}}
	case IntentFix:
		if scope == ScopeStyling {
			plan.Nodes = []Node{
				{AgentName: agent.Styling, InputTemplate: stylingTemplate},
				{AgentName: agent.CodeReview, InputTemplate: reviewTemplate},
			}
			break
		}
		plan.Nodes = []Node{
			{AgentName: agent.BuildFix, InputTemplate: buildFixTemplate},
			{AgentName: agent.QA, InputTemplate: qaTemplate},
		}
	default: // build
		dev := agent.FrontendDev
		if scope == ScopeBackend {
			dev = agent.BackendDev
		}
		if scope == ScopeStyling {
			plan.Nodes = []Node{
				{AgentName: agent.Architect, InputTemplate: architectTemplate},
				{AgentName: agent.Styling, InputTemplate: stylingTemplate},
				{AgentName: agent.CodeReview, InputTemplate: reviewTemplate},
			}
			break
		}
		plan.Nodes = []Node{
			{AgentName: agent.Research, InputTemplate: researchTemplate},
			{AgentName: agent.Architect, InputTemplate: architectTemplate},
			{AgentName: dev, InputTemplate: devTemplate},
			{AgentName: agent.CodeReview, InputTemplate: reviewTemplate},
		}
	}
	return plan
}

// NodesForAgents builds a user-selected flow from agent names, giving each
// step the agent's default input template. Unknown names are passed through
// and rejected at dispatch time.
func NodesForAgents(names []string) []Node {
	nodes := make([]Node, len(names))
	for i, name := range names {
		nodes[i] = Node{AgentName: name, InputTemplate: defaultTemplateFor(name)}
	}
	return nodes
}

func defaultTemplateFor(name string) string {
	switch name {
	case agent.Architect:
		return architectTemplate
	case agent.FrontendDev, agent.BackendDev:
		return devTemplate
	case agent.Styling:
		return stylingTemplate
	case agent.CodeReview:
		return reviewTemplate
	case agent.QA:
		return qaTemplate
	case agent.BuildFix:
		return buildFixTemplate
	default:
		return researchTemplate
	}
}

// ParseIntent maps classifier output to an intent, defaulting to build.
func ParseIntent(s string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(s))) {
	case IntentFix:
		return IntentFix
	case IntentQuestion:
		return IntentQuestion
	}
	return IntentBuild
}

// ParseScope maps classifier output to a scope, defaulting to full.
func ParseScope(s string) Scope {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeFrontend:
		return ScopeFrontend
	case ScopeBackend:
		return ScopeBackend
	case ScopeStyling:
		return ScopeStyling
	}
	return ScopeFull
}
