// Command dune is a terminal file browser that cooperates with a shell
// wrapper: on exit it writes the last visited directory to a result file so
// the wrapper can cd there.
//
// Exit codes: 0 on a clean session, 1 when startup fails, 2 when the
// session ran but the result file could not be written.
package main

import (
	"fmt"
	"os"
	"strings"

	apppkg "github.com/dunefm/dune/internal/app"
	"github.com/dunefm/dune/internal/config"
	"github.com/dunefm/dune/internal/handshake"
	logpkg "github.com/dunefm/dune/internal/log"
	"github.com/dunefm/dune/internal/shellsetup"
	"github.com/gdamore/tcell/v2"
)

func printHelp() {
	fmt.Print(`dune - Terminal file browser with shell cd integration

USAGE:
    dune [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -s, --setup [SHELL]   Output shell integration snippet (optionally force SHELL)
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-s" || arg == "--setup":
			shellOverride := ""
			if len(os.Args) > 2 {
				shellOverride = os.Args[2]
			}
			shellsetup.PrintSetup(shellOverride)
			os.Exit(0)
		case strings.HasPrefix(arg, "--setup="):
			shellsetup.PrintSetup(strings.TrimPrefix(arg, "--setup="))
			os.Exit(0)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logpkg.Init(cfg.DebugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()

	resultFile := handshake.Resolve(cfg.ResultFile)
	if err := handshake.Write(resultFile, app.FinalPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
