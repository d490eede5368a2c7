package platform

// Event is an inbound platform event. The set of variants is closed.
type Event interface {
	isEvent()
}

// MessagePosted is a message that appeared in a chat the bot can read.
// Channel posts and non-command group messages arrive as MessagePosted.
type MessagePosted struct {
	ChatID    int64
	MessageID int
}

// CommandIssued is a bot command sent by a user
type CommandIssued struct {
	ChatID  int64
	UserID  int64
	Private bool
	Command string
	Args    string
	// ReferencedChat is the origin of a forwarded message the command carries or replies to
	ReferencedChat *ChatInfo
	// CurrentChat is the group or channel the command was issued in; nil in private chats
	CurrentChat *ChatInfo
}

// Unsupported is any update the relay does not act on
type Unsupported struct {
	Kind string
}

func (MessagePosted) isEvent() {}
func (CommandIssued) isEvent() {}
func (Unsupported) isEvent() {}
