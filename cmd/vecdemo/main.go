// vecdemo walks through the operations of the Vec2 type.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/logger"
)

func main() {
	command, args := "run", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command, args = args[0], args[1:]
	}

	switch command {
	case "run":
		cmdRun(args)
	case "init":
		cmdInit(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vecdemo - 2D vector operations demo

Usage:
  vecdemo [run] [options]
  vecdemo init [path]
  vecdemo help

Options:
  -config <file>     Config file (default ./vecdemo.yaml, then user config dir)
  -a <x,y>           First vector
  -b <x,y>           Second vector
  -scalar <k>        Scalar for multiplication and division
  -debug             Enable debug logging
  -log-file <file>   Also write logs to a rotated file

Examples:
  vecdemo
  vecdemo run -a 6,8 -b -1,0.5 -scalar 4
  vecdemo init ./vecdemo.yaml`)
}

func cmdRun(args []string) {
	if err := config.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.FileConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	runDemo(os.Stdout, cfg.Vectors)
}

func cmdInit(args []string) {
	cfg := config.Default()

	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", args[0])
		return
	}

	path, err := cfg.Save()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
