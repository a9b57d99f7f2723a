package domain

// Tone drives how the platform renders a command reply.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
	ToneInfo    Tone = "info"
)

// ReplyField is one labelled value inside a reply.
type ReplyField struct {
	Name  string
	Value string
}

// Reply is the structured answer to a moderation command.
// Rendering (embed layout, colors) is the platform's business.
type Reply struct {
	Title       string
	Description string
	Tone        Tone
	Fields      []ReplyField
}
