package connection

import "encoding/json"

// FrameType discriminates hub protocol frames.
type FrameType string

const (
	// FrameInvoke calls a method on the peer. Frames with an ID expect a
	// FrameResult with the same ID; frames without one are notifications.
	FrameInvoke FrameType = "invoke"
	// FrameResult completes an invocation.
	FrameResult FrameType = "result"
	// FrameLog carries a server diagnostic message.
	FrameLog FrameType = "log"
	// FrameClose announces that the server is closing the connection.
	FrameClose FrameType = "close"
)

// LogLevel is the severity of a server diagnostic message.
type LogLevel int

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInformation
	LogWarning
	LogError
	LogCritical
)

// Hub method names.
const (
	TargetRequestFetch   = "RequestFetch"
	TargetSendItems      = "SendItems"
	TargetInitializePush = "InitializePush"
	TargetPushItems      = "PushItems"
	TargetPushCompleted  = "PushCompleted"
)

// Frame is one JSON message on the hub connection.
type Frame struct {
	Type      FrameType         `json:"type"`
	ID        string            `json:"id,omitempty"`
	Target    string            `json:"target,omitempty"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
	Result    json.RawMessage   `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	Level     LogLevel          `json:"level,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// EncodeArguments marshals every argument of an invocation.
func EncodeArguments(args ...any) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(args))
	for _, a := range args {
		raw, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}
