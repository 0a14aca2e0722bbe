// SPDX-License-Identifier: MIT
package hierpath

import (
	"errors"
	"fmt"
)

// NodeError describes a rejected node.
//
// It unwraps to one of the package's sentinel errors.
type NodeError struct {
	// ID is the offending node identifier.
	ID string
	// Field names the node attribute at fault: "id", "parent" or "path".
	Field string
	// Value holds the offending attribute value.
	Value string

	Err error
}

// Node errors.
var (
	ErrEmptyIdentifier     = errors.New("empty identifier")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrUnknownParent       = errors.New("unknown parent")

	ErrMalformedPath         = errors.New("malformed path")
	ErrPathIdentityMismatch  = errors.New("path does not end with the node identifier")
	ErrAncestorMismatch      = errors.New("path disagrees with the parent's path")
	ErrDelimiterInIdentifier = errors.New("identifier contains the path delimiter")
)

// Conversion errors.
var (
	ErrNilTree = errors.New("nil tree")
)

const (
	fieldID     = "id"
	fieldParent = "parent"
	fieldPath   = "path"
)

func newNodeError(id, field, value string, err error) *NodeError {
	return &NodeError{ID: id, Field: field, Value: value, Err: err}
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node (%s): %s (%s): %v", e.ID, e.Field, e.Value, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
