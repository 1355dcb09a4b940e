package domain

// ActionKind identifies the conceptual build step an Action stands for.
// The set is closed; switches over it are expected to be exhaustive.
type ActionKind int

const (
	// ActionInput wraps a literal input file. It never becomes a Job.
	ActionInput ActionKind = iota
	// ActionCompile compiles one or more source inputs.
	ActionCompile
	// ActionMergeModule merges partial modules into one module file.
	ActionMergeModule
	// ActionLink links objects into an image.
	ActionLink
	// ActionGenerateDebugSymbols extracts debug symbols from a linked image.
	ActionGenerateDebugSymbols
	// ActionREPL starts an interactive session. It produces no artifact.
	ActionREPL
)

// String returns the action kind name used in logs and dry-run output.
func (k ActionKind) String() string {
	switch k {
	case ActionInput:
		return "input"
	case ActionCompile:
		return "compile"
	case ActionMergeModule:
		return "merge-module"
	case ActionLink:
		return "link"
	case ActionGenerateDebugSymbols:
		return "generate-dSYM"
	case ActionREPL:
		return "repl"
	}
	return "unknown"
}

// Action is a node in the conceptual build-step DAG. Actions are created once
// during graph construction and immutable afterwards. Identity is pointer
// identity: a node referenced from several parents (diamond sharing) is the
// same *Action, and the Job graph builder relies on that for memoization.
//
// OwnsInputs records which parent is the designated owner of shared children.
// With garbage collection this is purely a statement of logical ownership,
// kept for printing and for mirroring onto JobList.OwnsJobs.
type Action struct {
	Kind       ActionKind
	Type       FileType // artifact type this step conceptually produces
	Inputs     []*Action
	OwnsInputs bool

	// Path and InputType are set only for ActionInput nodes.
	Path      string
	InputType FileType
}

// NewInputAction wraps a literal input file of the given type.
func NewInputAction(path string, t FileType) *Action {
	return &Action{Kind: ActionInput, Type: t, Path: path, InputType: t}
}

// NewCompileAction creates a compile step over the given inputs producing
// an artifact of the given type.
func NewCompileAction(inputs []*Action, output FileType) *Action {
	return &Action{Kind: ActionCompile, Type: output, Inputs: inputs, OwnsInputs: true}
}

// NewMergeModuleAction creates a module-merge step over the given compiles.
func NewMergeModuleAction(inputs []*Action) *Action {
	return &Action{Kind: ActionMergeModule, Type: TypeModule, Inputs: inputs, OwnsInputs: true}
}

// NewLinkAction creates a link step over the given inputs.
func NewLinkAction(inputs []*Action) *Action {
	return &Action{Kind: ActionLink, Type: TypeImage, Inputs: inputs, OwnsInputs: true}
}

// NewGenerateDebugSymbolsAction wraps a link step. It observes the link's
// primary output only, so it never owns the link's children.
func NewGenerateDebugSymbolsAction(link *Action) *Action {
	return &Action{Kind: ActionGenerateDebugSymbols, Type: TypeDebugSymbols, Inputs: []*Action{link}}
}

// NewREPLAction creates the single action of an immediate-mode invocation.
func NewREPLAction() *Action {
	return &Action{Kind: ActionREPL, Type: TypeNothing}
}
