// Package mutate implements the confirm-then-submit-then-refresh state
// machine behind the add, update, and delete screens.
//
// # Overview
//
// The three admin screens used to need three near-identical flows; this
// package unifies them into one machine parameterized by the operation:
//
//	Idle → Editing → AwaitingConfirmation → Submitting → Succeeded | Failed
//
// Delete has no Editing phase: it arms directly from Idle with the targeted
// record and returns there on cancel, failure, or success. Create and update
// keep the draft across failures so the user never re-enters data.
//
// # Validation
//
// RequestConfirm validates the draft with go-playground/validator before the
// confirmation prompt is shown; a missing required field keeps the flow in
// Editing and produces a catalog.ValidationError without any network call.
//
// # Generated Catalog Codes
//
// Changing the draft's category triggers a remote generate-id call. Each
// request is tagged with a sequence number from NextIDSeq, and
// ApplyGeneratedID discards responses whose sequence is stale. The last
// request wins by logical order, not by network arrival order.
//
// # I/O Boundary
//
// The Flow never touches the network. The owning screen issues the API call
// after Confirm and reports the outcome via Complete or Fail, then refetches
// its list; Notice delivers the queued acknowledgment for display.
package mutate
