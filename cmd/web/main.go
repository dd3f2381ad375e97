package main

import (
	_ "embed"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomz197/starfall/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	log = log.Level(config.ParseLogLevel(settings.LogLevel))

	page := renderPage(settings.SSHDisplayHost, settings.SSHPort)
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	addr := net.JoinHostPort(settings.WebHost, settings.WebPort)
	log.Info().Str("addr", addr).Msg("starting web server")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// renderPage fills the connection instructions into the landing page.
func renderPage(sshHost, sshPort string) string {
	return strings.NewReplacer("{{.SSHHost}}", sshHost, "{{.SSHPort}}", sshPort).Replace(htmlPage)
}
