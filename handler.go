package irc

// A Handler observes the session's events. It gets a copy, and returning true
// stops the event from reaching the handlers added after it.
type Handler interface {
	HandleEvent(event Event) bool
}

// HandlerFunc is a function that is a Handler.
type HandlerFunc func(event Event) bool

// HandleEvent calls the function.
func (f HandlerFunc) HandleEvent(event Event) bool {
	return f(event)
}

// A SendFilter gets every message before it's sent, and may change it. An
// error aborts the send, and the message is not passed to later filters.
type SendFilter func(msg *Message) error
