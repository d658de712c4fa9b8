package handler

// Envelope is the uniform response shape used by every endpoint:
// {success, data?, error?, message?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps data plus a human-readable confirmation.
func OKMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope with an error string and an optional
// detail message.
func Fail(errText, message string) Envelope {
	return Envelope{Success: false, Error: errText, Message: message}
}
