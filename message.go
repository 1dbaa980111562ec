package parley

// Message is one entry of the conversation history.
// Messages are values and are never modified after creation.
type Message struct {
	Role    Role
	Content string
}

// UserMessage returns a Message with RoleUser.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AIMessage returns a Message with RoleAI.
func AIMessage(content string) Message {
	return Message{Role: RoleAI, Content: content}
}
