package domain

// PrimaryOutput is one primary output file paired with the base input it was
// derived from. Almost every Job has exactly one; whole-module multi-threaded
// compiles have one per source file.
type PrimaryOutput struct {
	Path      string
	BaseInput string
}

// CommandOutput describes every file a Job produces: the primary outputs plus
// a map of auxiliary output kinds (module file, module doc, header,
// dependency file, diagnostics file) to their paths. It is mutated only while
// the Job is being constructed and read-only afterwards.
type CommandOutput struct {
	Type       FileType
	Primaries  []PrimaryOutput
	Additional map[FileType]string
}

// NewCommandOutput creates an empty CommandOutput of the given primary type.
func NewCommandOutput(t FileType) *CommandOutput {
	return &CommandOutput{
		Type:       t,
		Additional: make(map[FileType]string),
	}
}

// AddPrimary records a primary output path derived from baseInput.
func (o *CommandOutput) AddPrimary(path, baseInput string) {
	o.Primaries = append(o.Primaries, PrimaryOutput{Path: path, BaseInput: baseInput})
}

// PrimaryPath returns the first primary output path, or "" if none exists.
func (o *CommandOutput) PrimaryPath() string {
	if len(o.Primaries) == 0 {
		return ""
	}
	return o.Primaries[0].Path
}

// BaseInput returns the base input of the first primary output, or "".
func (o *CommandOutput) BaseInput() string {
	if len(o.Primaries) == 0 {
		return ""
	}
	return o.Primaries[0].BaseInput
}

// SetAdditional records an auxiliary output path for the given kind.
func (o *CommandOutput) SetAdditional(t FileType, path string) {
	o.Additional[t] = path
}

// AdditionalPath returns the auxiliary output path for the given kind, or "".
func (o *CommandOutput) AdditionalPath(t FileType) string {
	return o.Additional[t]
}
