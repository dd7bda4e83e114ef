package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptFor(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want Prompt
	}{
		{"Idle", Snapshot{State: Idle}, Prompt{}},
		{"Awaiting Ack", Snapshot{State: AwaitingServerAck}, Prompt{}},
		{"Awaiting Return", Snapshot{State: AwaitingReturn, PendingExpenseID: pendingID}, Prompt{}},
		{
			"Awaiting Confirmation",
			Snapshot{State: AwaitingUserConfirmation, PendingExpenseID: pendingID},
			Prompt{Visible: true, ActionsEnabled: true, PendingExpenseID: pendingID},
		},
		{
			"Resolving",
			Snapshot{State: Resolving, PendingExpenseID: pendingID, Confirming: true},
			Prompt{Visible: true, PendingExpenseID: pendingID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PromptFor(tt.snap))
		})
	}
}
