package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"todo-app/config"
	"todo-app/pkg/adapter/tui"
	"todo-app/pkg/infrastructure/logger"
	"todo-app/pkg/infrastructure/todoclient"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	apiURL := flag.String("api", config.C.Client.APIURL, "base url of the todo service")
	logFile := flag.String("log", config.C.Client.LogFile, "file to write diagnostics to")
	flag.Parse()

	// The terminal belongs to the UI, so diagnostics go to a file.
	l, closeLog, err := logger.NewFile(config.C.Log.Level, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = closeLog() }()

	api, err := todoclient.New(*apiURL, time.Duration(config.C.Client.TimeoutSeconds)*time.Second)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l.Infow("client started", "api", *apiURL)
	if _, err := tea.NewProgram(tui.New(api, l), tea.WithAltScreen()).Run(); err != nil {
		l.Errorw("client stopped with error", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
