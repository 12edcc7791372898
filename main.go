package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/logger"

	"github.com/gohornet/hexutil/pkg/config"
	"github.com/gohornet/hexutil/pkg/toolset"
	"github.com/gohornet/hexutil/pkg/utils"
)

var (
	// Name of the app.
	Name = "hexutil"

	// Version of the app.
	Version = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// splitArgs separates the global flags from the tool invocation.
func splitArgs(args []string) ([]string, []string) {
	for i, arg := range args {
		if toolset.ShouldHandleTools([]string{arg}) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func run(args []string) int {
	globalArgs, toolArgs := splitArgs(args)

	fs := config.FlagSet()
	version := fs.BoolP("version", "v", false, fmt.Sprintf("prints the %s version", Name))
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s (%s):

Run '%s tools' to list all available tools.

Command line flags:
`, Name, Version, os.Args[0])
		fs.PrintDefaults()
	}

	if err := fs.Parse(globalArgs); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Println(Name + " " + Version)
		return 0
	}

	nodeConfig, err := config.LoadConfigFile(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %s\n", err)
		return 1
	}

	cfg, err := config.New(nodeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %s\n", err)
		return 1
	}

	if err := utils.InitGlobalLogger(nodeConfig); err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %s\n", err)
		return 1
	}

	log := logger.NewLogger("Toolset")
	defer func() { _ = log.Sync() }()

	if toolArgs == nil {
		fs.Usage()
		return 1
	}

	return toolset.New(cfg, utils.NewWrappedLogger(log)).HandleTools(toolArgs)
}
