// Package order implements the order aggregate and its approval workflow.
//
// An order starts as a draft, is submitted for approval, and ends approved
// or rejected. Orders whose total is at or above the approval threshold must
// pass two approval levels; cheaper orders are auto-approved on submission.
// The aggregate owns its items (replaced wholesale on update), its approval
// records (replaced wholesale on each submission cycle) and its append-only
// status history.
//
// Domain objects follow the constructor-validation pattern: private fields,
// factory functions that enforce invariants, and Restore* functions for
// rehydration from persistence.
package order
