/*
Package main runs the person autocomplete server or its debug CLI.

personcomplete loads a roster of persons, builds the combined name, id and
title index over it, and answers partial queries with the first matching
person.

# Usage

Start the msgpack IPC server on stdin/stdout:

	personcomplete -roster persons.json

Drive a single field interactively, starting from a name hint:

	personcomplete -c -name "Jens Hansen"

# Configuration

Settings live in a TOML file, created with defaults on first run:

	[roster]
	path = "persons.json"

	[server]
	max_query = 60
	reload_every = 0

	[cli]
	show_titles = true

A relative roster path is resolved against the config file's directory. The
-roster flag overrides it.

# Command Line Flags

	-config string
	    Config file (default [UserConfigDir]/personcomplete/config.toml)
	-roster string
	    Roster file (.json or .msgpack)
	-d  Enable debug logging
	-c  Run the CLI instead of the server
	-value, -name, -title string
	    Initial value and hints for the CLI field
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tk-it/personcomplete/internal/cli"
	"github.com/tk-it/personcomplete/pkg/complete"
	"github.com/tk-it/personcomplete/pkg/config"
	"github.com/tk-it/personcomplete/pkg/index"
	"github.com/tk-it/personcomplete/pkg/person"
	"github.com/tk-it/personcomplete/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "personcomplete"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to the TOML config file")
	rosterPath := flag.String("roster", "", "Roster file to load persons from (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing queries")
	value := flag.String("value", "", "Initial field value (a person id) for CLI mode")
	nameHint := flag.String("name", "", "Expected name hint for CLI mode")
	titleHint := flag.String("title", "", "Expected title hint for CLI mode, e.g. \"form 2019\"")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", activePath)

	roster := *rosterPath
	if roster == "" {
		roster = appConfig.RosterPath(activePath)
	}
	load := func() ([]person.Person, error) { return person.LoadFile(roster) }

	persons, err := load()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	holder, err := buildHolder(persons)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		field, _ := complete.New(holder.Load(), *value, complete.Hint{Name: *nameHint, Title: *titleHint})
		inputHandler := cli.NewInputHandler(field, os.Stdin, os.Stdout, appConfig.Server.MaxQuery, appConfig.CLI.ShowTitles)
		log.Debug("Input info", "handler", inputHandler)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(holder, appConfig, load)
	showStartupInfo(roster, holder.Load().Len())
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func buildHolder(persons []person.Person) (*index.Holder, error) {
	idx, err := index.NewPersonIndex(persons)
	if err != nil {
		return nil, err
	}
	return index.NewHolder(idx), nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ personcomplete ] first-match person lookups for autocomplete fields")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo logs basic info about the init process to stderr.
func showStartupInfo(roster string, persons int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("roster: ( %s ), %d persons", roster, persons)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
