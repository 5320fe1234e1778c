package irc

import (
	"encoding/json"
	"log"
)

// DebugLogger is where the session writes its debug output. *log.Logger
// satisfies it.
type DebugLogger interface {
	Println(v ...interface{})
}

type defaultDebugLogger struct{}

func (logger *defaultDebugLogger) Println(v ...interface{}) {
	log.Println(v...)
}

// EnableDebug makes the session log discarded lines, refused sends and
// changes it couldn't apply. If events is true, it also adds a handler that
// logs every event that reaches it as JSON, so handlers added before it may
// hide events from it. You may pass `nil` as a logger to use the standard
// log package's Println.
func (session *Session) EnableDebug(logger DebugLogger, events bool) {
	if logger == nil {
		logger = &defaultDebugLogger{}
	}

	session.logger = logger

	if events {
		session.AddHandler(HandlerFunc(func(event Event) bool {
			data, err := json.Marshal(&event)
			if err != nil {
				return false
			}

			logger.Println(string(data))
			return false
		}))
	}
}

func (session *Session) debugln(v ...interface{}) {
	if session.logger != nil {
		session.logger.Println(v...)
	}
}
