package core

// Content is a single segment of a conversation message.
// The set of implementations is closed: text and image.
type Content interface {
	isContent()
}

// TextContent is a plain text segment.
type TextContent struct {
	Text string
}

func (*TextContent) isContent() {}

// ImageContent is a media segment, opaque to the prompt engine.
type ImageContent struct {
	ImageURLs []string
}

func (*ImageContent) isContent() {}

// Message is an ordered, mutable sequence of content segments.
// The manager only ever appends segments; it never removes or reorders.
type Message struct {
	Role    string
	Content []Content
}

// LastText returns the last text segment, scanning backward past any
// trailing media segments. ok is false when the message carries no text.
func (m *Message) LastText() (*TextContent, bool) {
	for i := len(m.Content) - 1; i >= 0; i-- {
		if tc, ok := m.Content[i].(*TextContent); ok {
			return tc, true
		}
	}
	return nil, false
}

// FirstText returns the first text segment of the message, if any.
func (m *Message) FirstText() (*TextContent, bool) {
	for _, c := range m.Content {
		if tc, ok := c.(*TextContent); ok {
			return tc, true
		}
	}
	return nil, false
}
