package model

// Message is a chat message created inside a conversation thread.
type Message struct {
	SenderID   string `json:"senderId"`            // author of the message
	ReceiverID string `json:"receiverId"`          // user who should be notified
	Text       string `json:"text"`                // message body
	RequestID  string `json:"requestId,omitempty"` // request the conversation belongs to, if any
}
