package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Rupesh905/ETF-Monitor/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file next to the binary is optional; it typically carries
	// GEMINI_API_KEY and ETF_DATA_DIR.
	godotenv.Load()

	completion().Complete("etfmon")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI for shell completion. It exits the process
// when invoked by the shell completion machinery.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"data-dir": predict.Dirs("*"),
		"config":   predict.Files("*.yaml"),
	}
	return &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"run":     {Flags: map[string]complete.Predictor{"refresh": predict.Nothing}},
			"fetch":   {Flags: map[string]complete.Predictor{"refresh": predict.Nothing}},
			"report":  {Flags: map[string]complete.Predictor{"d": predict.Nothing, "o": predict.Files("*")}},
			"history": {},
			"publish": {Flags: map[string]complete.Predictor{"o": predict.Dirs("*"), "d": predict.Nothing, "all": predict.Nothing}},
			"topic":   {},
			"assist":  {},
		},
	}
}
