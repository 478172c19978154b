package mutate

import (
	"fmt"
)

// Op selects which mutation a Flow drives.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Phase is the flow's position in the confirm-then-submit-then-refresh cycle.
type Phase int

const (
	Idle Phase = iota
	Editing
	AwaitingConfirmation
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case AwaitingConfirmation:
		return "awaiting confirmation"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Flow is the state machine behind the add, update, and delete screens:
// Idle → Editing → AwaitingConfirmation → Submitting → Succeeded|Failed.
// The same machine drives all three operations; only the draft, the
// validation set, and the failure recovery phase differ.
//
// Flow never performs I/O itself. The owning screen issues the network calls
// and reports completion via Complete or Fail, then refetches its list.
type Flow struct {
	op         Op
	phase      Phase
	draft      Draft
	target     string // store identity for update/delete
	targetName string // display name for confirmation prompts
	notice     string // last user-visible acknowledgment
	idSeq      uint64 // latest generate-id request issued
}

// NewFlow builds an idle flow for the given operation.
func NewFlow(op Op) *Flow {
	return &Flow{op: op}
}

func (f *Flow) Op() Op         { return f.op }
func (f *Flow) Phase() Phase   { return f.phase }
func (f *Flow) Draft() Draft   { return f.draft }
func (f *Flow) Target() string { return f.target }

// Notice returns and clears the pending user-visible acknowledgment.
func (f *Flow) Notice() string {
	n := f.notice
	f.notice = ""
	return n
}

// StartEditing enters Editing with the given draft. For updates, target is
// the store identity of the record being edited and name its display title.
func (f *Flow) StartEditing(d Draft, target, name string) error {
	if f.op == OpDelete {
		return fmt.Errorf("delete flow has no editing phase")
	}
	if f.phase != Idle && f.phase != Editing && f.phase != Failed {
		return fmt.Errorf("cannot start editing while %s", f.phase)
	}
	f.draft = d
	f.target = target
	f.targetName = name
	f.phase = Editing
	return nil
}

// Edit replaces the draft while in Editing.
func (f *Flow) Edit(d Draft) error {
	if f.phase != Editing {
		return fmt.Errorf("cannot edit while %s", f.phase)
	}
	f.draft = d
	return nil
}

// NextIDSeq registers a new generate-id request and returns its sequence
// number. The caller tags the in-flight request with it.
func (f *Flow) NextIDSeq() uint64 {
	f.idSeq++
	return f.idSeq
}

// ApplyGeneratedID patches the draft's catalog code when the response belongs
// to the latest request. Responses from superseded requests are discarded, so
// rapid category switching cannot overwrite a newer code with a stale one.
func (f *Flow) ApplyGeneratedID(seq uint64, id string) bool {
	if seq != f.idSeq || f.phase != Editing {
		return false
	}
	f.draft.ID = id
	return true
}

// RequestConfirm moves the flow to AwaitingConfirmation. For create and
// update the draft is validated first; a validation failure keeps the flow in
// Editing and no network call is made. For delete the flow arms directly from
// Idle with the targeted record.
func (f *Flow) RequestConfirm() error {
	switch f.op {
	case OpDelete:
		if f.phase != Idle {
			return fmt.Errorf("cannot confirm while %s", f.phase)
		}
		if f.target == "" {
			return fmt.Errorf("no book selected")
		}
	default:
		if f.phase != Editing {
			return fmt.Errorf("cannot confirm while %s", f.phase)
		}
		if err := f.draft.Validate(f.op); err != nil {
			return err
		}
	}
	f.phase = AwaitingConfirmation
	return nil
}

// ArmDelete records the record a delete flow is aimed at while Idle.
func (f *Flow) ArmDelete(target, name string) error {
	if f.op != OpDelete {
		return fmt.Errorf("not a delete flow")
	}
	if f.phase != Idle {
		return fmt.Errorf("cannot arm while %s", f.phase)
	}
	f.target = target
	f.targetName = name
	return nil
}

// ConfirmPrompt is the human-readable question shown while awaiting
// confirmation.
func (f *Flow) ConfirmPrompt() string {
	switch f.op {
	case OpCreate:
		return fmt.Sprintf("Add %q to the catalog?", f.draft.Name)
	case OpUpdate:
		return fmt.Sprintf("Save changes to %q?", f.draft.Name)
	case OpDelete:
		return fmt.Sprintf("Delete %q? This cannot be undone.", f.targetName)
	default:
		return "Proceed?"
	}
}

// Confirm records the affirmative choice and enters Submitting. The caller
// then issues the network call.
func (f *Flow) Confirm() error {
	if f.phase != AwaitingConfirmation {
		return fmt.Errorf("cannot submit while %s", f.phase)
	}
	f.phase = Submitting
	return nil
}

// Cancel records the negative choice: create and update return to Editing
// with the draft intact, delete disarms back to Idle.
func (f *Flow) Cancel() error {
	if f.phase != AwaitingConfirmation {
		return fmt.Errorf("cannot cancel while %s", f.phase)
	}
	f.notice = fmt.Sprintf("%s cancelled", f.op)
	if f.op == OpDelete {
		f.reset()
	} else {
		f.phase = Editing
	}
	return nil
}

// Complete records a successful submission: the draft is cleared and a
// success acknowledgment queued. The caller refetches its list.
func (f *Flow) Complete() error {
	if f.phase != Submitting {
		return fmt.Errorf("cannot complete while %s", f.phase)
	}
	name := f.draft.Name
	if f.op == OpDelete {
		name = f.targetName
	}
	f.phase = Succeeded
	f.notice = fmt.Sprintf("%s of %q succeeded", f.op, name)
	return nil
}

// Fail records a failed submission with the server- or transport-supplied
// message. The draft is preserved for create and update so nothing has to be
// re-entered.
func (f *Flow) Fail(err error) error {
	if f.phase != Submitting {
		return fmt.Errorf("cannot fail while %s", f.phase)
	}
	f.phase = Failed
	f.notice = fmt.Sprintf("%s failed: %v", f.op, err)
	return nil
}

// Acknowledge leaves the terminal phase: Succeeded returns to Idle with a
// cleared draft; Failed returns to Editing (create/update, draft preserved)
// or Idle (delete).
func (f *Flow) Acknowledge() {
	switch f.phase {
	case Succeeded:
		f.reset()
	case Failed:
		if f.op == OpDelete {
			f.reset()
		} else {
			f.phase = Editing
		}
	}
}

func (f *Flow) reset() {
	f.draft = Draft{}
	f.target = ""
	f.targetName = ""
	f.phase = Idle
}
