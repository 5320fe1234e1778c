// Command ircreplay feeds a recorded server transcript through a session and
// prints what the session would have sent back. Lines starting with a slash
// are treated as user input, like "/join #channel".
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	irc "github.com/gissleh/ircsession"
	"github.com/gissleh/ircsession/config"
	"github.com/gissleh/ircsession/handlers"
	"github.com/gissleh/ircsession/ircmetrics"
	"github.com/prometheus/client_golang/prometheus"
)

var flagConfig = flag.String("config", "", "A YAML or TOML session config")
var flagEnv = flag.String("env", ".env", "An env file with IRC_* overrides")
var flagIn = flag.String("in", "-", "The transcript to replay, or - for stdin")
var flagVerbose = flag.Bool("v", false, "Print events as JSON")
var flagMetrics = flag.String("metrics", "", "Serve metrics on this address, e.g. :7070")
var flagStatus = flag.Bool("status", false, "Print the session state when done")

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln("Failed to load config:", err)
	}

	input := os.Stdin
	if *flagIn != "-" {
		input, err = os.Open(*flagIn)
		if err != nil {
			log.Fatalln("Failed to open transcript:", err)
		}
		defer input.Close()
	}

	session := irc.New(cfg, &prefixWriter{prefix: "> ", writer: os.Stdout})
	session.AddHandler(&handlers.CTCP{Session: session})

	registry := prometheus.NewRegistry()
	collector := ircmetrics.New(registry, session)
	session.AddHandler(collector)
	session.AddSendFilter(collector.Filter)

	if *flagMetrics != "" {
		go func() {
			if err := http.ListenAndServe(*flagMetrics, ircmetrics.Handler(registry)); err != nil {
				log.Println("Metrics server stopped:", err)
			}
		}()
	}

	if *flagVerbose {
		session.AddHandler(irc.HandlerFunc(func(event irc.Event) bool {
			if event.Kind == irc.EventMessage {
				return false
			}

			j, err := json.Marshal(&event)
			if err == nil {
				fmt.Println(string(j))
			}

			return false
		}))
	}

	go func() {
		exitSignal := make(chan os.Signal, 1)
		signal.Notify(exitSignal, os.Interrupt, syscall.SIGTERM)

		<-exitSignal

		// Sessions aren't safe for concurrent use, so only flag it here.
		session.Kill()
	}()

	session.Connecting()
	if err := session.Connected(); err != nil {
		log.Fatalln("Failed to register:", err)
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() && !session.Killed() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			err = handlers.Input(session, line)
		} else {
			err = collector.HandleLine(line)
		}
		if err != nil {
			log.Println("Line failed:", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Println("Failed to read transcript:", err)
	}

	session.Disconnected()

	if *flagStatus {
		j, err := json.MarshalIndent(session.Snapshot(), "", "    ")
		if err != nil {
			log.Fatalln("Failed to encode state:", err)
		}

		fmt.Println(string(j))
	}
}

func loadConfig() (irc.Config, error) {
	cfg := irc.Config{}
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			return cfg, err
		}
	}

	if err := config.LoadEnv(&cfg, *flagEnv); err != nil {
		return cfg, err
	}

	return cfg, config.Validate(cfg)
}

type prefixWriter struct {
	prefix string
	writer io.Writer
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(w.writer, w.prefix+string(p)); err != nil {
		return 0, err
	}

	return len(p), nil
}
