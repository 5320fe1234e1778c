package irctest

import (
	"strings"

	irc "github.com/gissleh/ircsession"
)

// An Interaction is a "simulated" server that feeds a session lines and
// checks what the session sends back.
type Interaction struct {
	Strict  bool
	Lines   []InteractionLine
	Log     []string
	Failure *InteractionFailure
}

// Run plays the interaction against the session, which must write to conn.
// It stops at the first failure, which is left in Failure.
func (interaction *Interaction) Run(session *irc.Session, conn *Conn) {
	for i := 0; i < len(interaction.Lines); i++ {
		line := interaction.Lines[i]

		if line.Server != "" {
			err := session.HandleLine(line.Server)
			if err != nil && line.Err == nil {
				interaction.Failure = &InteractionFailure{
					Index: i, Err: err,
				}
				return
			}
		} else if line.Client != "" {
			input, ok := conn.Next()
			if !ok {
				interaction.Failure = &InteractionFailure{
					Index: i, Missing: true,
				}
				return
			}

			match := line.Client
			success := false

			if strings.HasSuffix(match, "*") {
				success = strings.HasPrefix(input, match[:len(match)-1])
			} else {
				success = match == input
			}

			interaction.Log = append(interaction.Log, input)

			if !success {
				if !interaction.Strict {
					i--
					continue
				}

				interaction.Failure = &InteractionFailure{
					Index: i, Result: input,
				}
				return
			}
		} else if line.Callback != nil {
			err := line.Callback()
			if err != nil {
				interaction.Failure = &InteractionFailure{
					Index: i, CBErr: err,
				}
				return
			}
		}
	}
}

// InteractionFailure signifies a test failure.
type InteractionFailure struct {
	Index   int
	Result  string
	Missing bool
	Err     error
	CBErr   error
}

// InteractionLine is part of an interaction, whether it is a line
// that is sent to a session or a line expected from it. Server lines
// that are meant to fail handling need Err set.
type InteractionLine struct {
	Client   string
	Server   string
	Err      error
	Callback func() error
}
