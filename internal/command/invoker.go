package command

// Invoker couples command execution to history recording. History is a plain
// LIFO of executed, not-yet-undone commands; there is no redo and no bound.
type Invoker struct {
	history []Command
}

func NewInvoker() *Invoker { return &Invoker{} }

// StoreAndExecute executes the command and pushes it onto the history, even
// when Execute performed no observable mutation. A later undo of such a
// command is harmless since each Undo is self-consistent.
func (inv *Invoker) StoreAndExecute(cmd Command) {
	cmd.Execute()
	inv.history = append(inv.history, cmd)
}

// UndoLast pops the most recent command and undoes it. An undone command is
// discarded permanently. Empty history is a silent no-op.
func (inv *Invoker) UndoLast() {
	if len(inv.history) == 0 {
		return
	}
	cmd := inv.history[len(inv.history)-1]
	inv.history = inv.history[:len(inv.history)-1]
	cmd.Undo()
}

// Depth returns the number of undoable commands.
func (inv *Invoker) Depth() int { return len(inv.history) }
