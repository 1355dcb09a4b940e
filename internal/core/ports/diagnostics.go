package ports

// Diagnostics is the sink for construction-time errors. Only the binary
// had-an-error signal matters to the driver; rendering is out of scope. The
// engine polls HadAnyError after every construction phase and fails closed.
//
//go:generate go run go.uber.org/mock/mockgen -source=diagnostics.go -destination=mocks/mock_diagnostics.go -package=mocks
type Diagnostics interface {
	// ReportError records an error with optional key/value metadata.
	ReportError(msg string, kv ...any)

	// HadAnyError reports whether any error was recorded.
	HadAnyError() bool
}
