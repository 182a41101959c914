package session_test

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

const (
	testPrompt = "Peplink> "
	testBanner = "Peplink Balance 20X\r\nLast login: Mon Oct 12 10:00:00\r\n"
)

var (
	testWANOutput = strings.Join([]string{
		"WAN Connection [1]",
		"Connection Name         : T-Mobile",
		"Connection Type         : Cellular",
		"",
		"    Cellular Status",
		"    RSSI                : -75 dBm",
		"WAN Connection [2]",
		"Connection Name         : Starlink",
	}, "\r\n")

	testTranscript = strings.Join([]string{
		"WAN Connection [1]",
		"Connection Name         : T-Mobile",
		"Connection Type         : Cellular",
		"    Cellular Status",
		"    RSSI                : -75 dBm",
		"WAN Connection [2]",
		"Connection Name         : Starlink",
	}, "\n")
)

// fakeRouter is an in-memory shell channel driven by a script goroutine.
type fakeRouter struct {
	stdinR, stdoutR, stderrR *io.PipeReader
	stdinW, stdoutW, stderrW *io.PipeWriter
	stdin                    *bufio.Reader

	mx         sync.Mutex
	commands   []string
	closeCalls int
	closeOnce  sync.Once
}

func newFakeRouter(script func(r *fakeRouter)) *fakeRouter {
	r := new(fakeRouter)
	r.stdinR, r.stdinW = io.Pipe()
	r.stdoutR, r.stdoutW = io.Pipe()
	r.stderrR, r.stderrW = io.Pipe()
	r.stdin = bufio.NewReader(r.stdinR)

	if script != nil {
		go script(r)
	}

	return r
}

func (r *fakeRouter) Stdin() io.Writer  { return r.stdinW }
func (r *fakeRouter) Stdout() io.Reader { return r.stdoutR }
func (r *fakeRouter) Stderr() io.Reader { return r.stderrR }

func (r *fakeRouter) Close() error {
	r.mx.Lock()
	r.closeCalls++
	r.mx.Unlock()

	r.closeOnce.Do(func() {
		_ = r.stdinR.Close()
		_ = r.stdoutR.Close()
		_ = r.stderrR.Close()
	})

	return nil
}

func (r *fakeRouter) print(text string) bool {
	_, err := io.WriteString(r.stdoutW, text)
	return err == nil
}

// readCommand blocks until the client writes a line.
func (r *fakeRouter) readCommand() (command string, ok bool) {
	line, err := r.stdin.ReadString('\n')
	if err != nil {
		return "", false
	}

	command = strings.TrimSpace(line)

	r.mx.Lock()
	r.commands = append(r.commands, command)
	r.mx.Unlock()

	return command, true
}

func (r *fakeRouter) hangUp() {
	_ = r.stdoutW.Close()
	_ = r.stderrW.Close()
}

func (r *fakeRouter) Commands() []string {
	r.mx.Lock()
	defer r.mx.Unlock()

	return append([]string(nil), r.commands...)
}

func (r *fakeRouter) CloseCalls() int {
	r.mx.Lock()
	defer r.mx.Unlock()

	return r.closeCalls
}

// serveWAN behaves like a router: prompt, "get wan" output, prompt, exit.
func serveWAN(output string) func(r *fakeRouter) {
	return func(r *fakeRouter) {
		if !r.print(testBanner + testPrompt) {
			return
		}

		for {
			command, ok := r.readCommand()
			if !ok {
				return
			}

			switch command {
			case "get wan":
				if !r.print(command + "\r\n" + output + "\r\n" + testPrompt) {
					return
				}

			case "exit":
				r.print(command + "\r\n")
				r.hangUp()
				return
			}
		}
	}
}
