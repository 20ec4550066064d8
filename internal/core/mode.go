// Package core is the orchestration layer.  It drives a session from a
// host/port pair to a closed connection and provides a builder that
// assembles the collaborators from a Config.
//
// Architecture layers (bottom → top):
//
//	transport  →  session  →  core  →  cmd (CLI)
//
// console sits beside session and core: both write to it.
package core

import "context"

// Mode is a complete run of tcptalk, from resolution to teardown.
type Mode interface {
	Run(ctx context.Context) error
}
