package session

// Prompt is what the confirmation prompt should show for a snapshot.
type Prompt struct {
	Visible          bool
	ActionsEnabled   bool
	PendingExpenseID string
}

// PromptFor derives the prompt from the session state. The prompt stays up
// while a resolve is in flight, with its actions disabled.
func PromptFor(s Snapshot) Prompt {
	switch s.State {
	case AwaitingUserConfirmation:
		return Prompt{Visible: true, ActionsEnabled: !s.Confirming, PendingExpenseID: s.PendingExpenseID}
	case Resolving:
		return Prompt{Visible: true, PendingExpenseID: s.PendingExpenseID}
	default:
		return Prompt{}
	}
}
