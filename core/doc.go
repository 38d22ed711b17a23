// Package core contains the framework-independent tab state machine.
//
// Allowed here:
// - slot partitioning, selection state, arrow-key navigation policy
// - the structural render tree (roles, ids, hidden/selected flags) bindings draw from
//
// Not allowed here:
// - terminal or HTML drawing and host-specific focus handling
package core
