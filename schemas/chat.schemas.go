package schemas

// SendMessageSchema struct
type SendMessageSchema struct {
	SessionID        string `json:"sessionId" validate:"required"`
	ReceiverUsername string `json:"receiverUsername" validate:"required,max=30"`
	Content          string `json:"content" validate:"required,max=4000"`
}

// GetMessagesSchema struct
type GetMessagesSchema struct {
	SessionID    string `json:"sessionId" validate:"required"`
	WithUsername string `json:"withUsername" validate:"required,max=30"`
	NoMsgs       int64  `json:"noMsgs" validate:"required,min=1"`
}

// GetChatsSchema struct
type GetChatsSchema struct {
	SessionID string `json:"sessionId" validate:"required"`
	NoChats   int64  `json:"noChats" validate:"required,min=1"`
}

// BlockSchema struct
type BlockSchema struct {
	SessionID       string `json:"sessionId" validate:"required"`
	ToBlockUsername string `json:"toBlockUsername" validate:"required,max=30"`
}
