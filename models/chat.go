package models

// ChatRequest is the payload coming from the chat widget into /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatReply is what the chat handler returns to the widget. SessionID is
// echoed back so a widget that omitted one can keep the issued id.
type ChatReply struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId,omitempty"`
}

// SubmitResult reports the outcome of a direct booking submission.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
