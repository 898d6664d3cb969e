// Package assignment decides which remote call, if any, moves a team from
// its previously persisted project assignment to the desired one. The
// decision is pure: it never touches the network, which keeps "no call fires
// when nothing changed" directly testable.
package assignment

import (
	"github.com/google/uuid"
)

// ActionKind enumerates the possible outcomes of resolving an assignment.
type ActionKind string

const (
	// NoOp - previous and desired agree, no remote call is needed.
	NoOp ActionKind = "noop"
	// Assign - the team had no project and should get one.
	Assign ActionKind = "assign"
	// Reassign - the team moves to a different project. The remote
	// assignment call is idempotent per team (a team has one project
	// slot), so Reassign uses the same call as Assign.
	Reassign ActionKind = "reassign"
	// Unassign - the team had a project and should have none.
	Unassign ActionKind = "unassign"
)

// Action is the resolved remote action. ProjectID is set for Assign and
// Reassign, nil otherwise.
type Action struct {
	Kind      ActionKind
	ProjectID *uuid.UUID
}

// RequiresCall reports whether the action needs a remote call at all.
func (a Action) RequiresCall() bool {
	return a.Kind != NoOp
}

// Resolve maps the previously persisted project and the desired project to
// the minimal remote action:
//
//	previous | desired   | action
//	none     | none      | NoOp
//	none     | P         | Assign(P)
//	P        | none      | Unassign
//	P        | P         | NoOp
//	P        | Q         | Reassign(Q)
func Resolve(previous, desired *uuid.UUID) Action {
	switch {
	case previous == nil && desired == nil:
		return Action{Kind: NoOp}
	case previous == nil:
		return Action{Kind: Assign, ProjectID: desired}
	case desired == nil:
		return Action{Kind: Unassign}
	case *previous == *desired:
		return Action{Kind: NoOp}
	default:
		return Action{Kind: Reassign, ProjectID: desired}
	}
}
