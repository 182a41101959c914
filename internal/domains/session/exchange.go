package session

import (
	"bytes"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
)

type State int

const (
	StateAwaitingPrompt State = iota
	StateCommandSent
	StateAwaitingClose
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateAwaitingPrompt:
		return "awaiting prompt"
	case StateCommandSent:
		return "command sent"
	case StateAwaitingClose:
		return "awaiting close"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// exchange is the prompt driven protocol: prompt -> "get wan", next prompt -> "exit".
type exchange struct {
	stdin  io.Writer
	state  State
	output bytes.Buffer
	// prompt markers are searched from here on
	scanFrom int
}

func newExchange(stdin io.Writer) *exchange {
	return &exchange{
		stdin: stdin,
		state: StateAwaitingPrompt,
	}
}

func (e *exchange) feed(data []byte) (err error) {
	e.output.Write(data)

	switch e.state {
	case StateAwaitingPrompt:
		if e.promptSeen() {
			if err = e.send(constants.CommandGetWAN); err != nil {
				return fmt.Errorf("feed: %w", err)
			}
			e.state = StateCommandSent
		}

	case StateCommandSent:
		if e.promptSeen() {
			if err = e.send(constants.CommandExit); err != nil {
				return fmt.Errorf("feed: %w", err)
			}
			e.state = StateAwaitingClose
		}
	}

	return nil
}

func (e *exchange) close() {
	e.state = StateClosed
}

func (e *exchange) promptSeen() bool {
	return bytes.Contains(e.output.Bytes()[e.scanFrom:], []byte(constants.PromptMarker))
}

func (e *exchange) send(command string) (err error) {
	if _, err = io.WriteString(e.stdin, command+"\n"); err != nil {
		return fmt.Errorf("send %q: %w", command, err)
	}

	// only markers printed after the command count
	e.scanFrom = e.output.Len()

	log.Debug().
		Str("command", command).
		Str("state", e.state.String()).
		Msg("send: command written")

	return nil
}
