package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeExpenseResolved tells a client to refresh its ledger.
	MessageTypeExpenseResolved MessageType = "expenseResolved"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// ExpenseResolvedPayload is the payload for an expenseResolved message.
type ExpenseResolvedPayload struct {
	UserID    string `json:"user_id"`
	ExpenseID string `json:"expense_id"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
}
