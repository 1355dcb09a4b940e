// Package ports defines the interfaces between the driver engine and its
// external collaborators.
package ports

import "go.trai.ch/otto/internal/core/domain"

// ToolChain is the platform-specific registry consulted during graph
// construction. Implementations are built once per normalized target triple,
// are written only by the single-threaded construction pass, and must be safe
// for concurrent read-only use while Jobs execute.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolChain interface {
	// Triple returns the normalized target triple this chain was built for.
	Triple() string

	// LookupTypeForExtension classifies a filename extension (without the
	// leading dot) into a file type. Unrecognized extensions map to
	// domain.TypeInvalid.
	LookupTypeForExtension(ext string) domain.FileType

	// SelectTool returns the Tool responsible for the given action's kind.
	// A missing Tool is a hard construction failure.
	SelectTool(action *domain.Action) (Tool, error)

	// SharedLibrarySuffix returns the platform shared-library suffix with
	// the leading dot (".so", ".dylib").
	SharedLibrarySuffix() string
}

// ToolJobRequest carries everything a Tool needs to materialize a Job.
type ToolJobRequest struct {
	Action *domain.Action
	// Inputs are the Jobs whose outputs feed this one.
	Inputs *domain.JobList
	// Output is the fully computed output description for the Job.
	Output *domain.CommandOutput
	// BaseInputs are the literal paths of the action's direct Input
	// children, in declaration order.
	BaseInputs []string
	// Args are global pass-through arguments for the tool.
	Args []string
	// Info is the invocation-wide output descriptor.
	Info *domain.OutputInfo
}

// Tool produces the literal invocation for one action kind on one ToolChain.
// The argument vector it assembles is opaque to the driver.
type Tool interface {
	// Name identifies the tool in logs.
	Name() string

	// ConstructJob materializes the Job for the request.
	ConstructJob(req ToolJobRequest) (*domain.Job, error)
}
