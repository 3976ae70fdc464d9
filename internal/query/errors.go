package query

import "fmt"

// InvalidReferenceError indicates an item carries no resolvable reference
// discriminant.
type InvalidReferenceError struct {
	ItemType string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("no reference discriminant set for %s item", e.ItemType)
}

// InvalidPercentageError indicates a substance percentage amount outside
// (0, 100].
type InvalidPercentageError struct {
	Value float64
}

func (e *InvalidPercentageError) Error() string {
	return fmt.Sprintf("percentage amount %v outside (0, 100]", e.Value)
}

// InvalidConfigurationError indicates an unusable builder setting, such as a
// non-positive batch size.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid query configuration: " + e.Reason
}

// MissingQueryParameterError indicates Execute was called before a required
// parameter was added.
type MissingQueryParameterError struct {
	Parameter string
}

func (e *MissingQueryParameterError) Error() string {
	return fmt.Sprintf("cannot execute query: no %s added", e.Parameter)
}

// RemoteCallError wraps a failed remote call. A batch failure aborts the
// whole execution; no partial results are returned.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
