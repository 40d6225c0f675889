package cmd

import (
	"os"

	"cdb/build"
	"cdb/common"
	"cdb/config"
	"cdb/logging"
	"cdb/output"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `cdb` application
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("cdb", "cdb reconstructs a compilation database from intercepted build commands", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the tool log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	genCmd := cli.AddSubcommand("generate", "generate a compilation database from an execution report", true)
	genCmd.AddPrimaryArg("report-path", "the path to the execution report to process", true)
	genCmd.AddStringArg("output", "o", "the path of the database to write", false)
	genCmd.AddStringArg("config", "c", "the path to the tool configuration file", false)
	genCmd.AddFlag("append", "a", "merge the new entries into an existing database")
	genCmd.AddFlag("command-format", "cf", "write entries with a shell-joined command field instead of an argument array")

	cli.AddSubcommand("version", "print the cdb version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return 1
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "generate":
		return execGenerateCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		logging.PrintInfoMessage("cdb Version", common.CdbVersion)
	}

	return 0
}

// execGenerateCommand executes the generate subcommand and handles all errors
func execGenerateCommand(result *olive.ArgParseResult, loglevel string) int {
	// initialize the logger before anything can go wrong
	logging.Initialize(loglevel)

	reportPath, _ := result.PrimaryArg()

	configPath := ""
	if cfgArgVal, ok := result.Arguments["config"]; ok {
		configPath = cfgArgVal.(string)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return 1
	}

	// command-line arguments override the config file
	if outArgVal, ok := result.Arguments["output"]; ok {
		cfg.OutputPath = outArgVal.(string)
	}
	if result.HasFlag("append") {
		cfg.Append = true
	}
	if result.HasFlag("command-format") {
		cfg.Format = output.FormatCommand
	}

	g := build.NewGenerator(cfg)
	if !g.Generate(reportPath) {
		return 1
	}
	return 0
}
