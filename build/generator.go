package build

import (
	"sync"

	"cdb/config"
	"cdb/logging"
	"cdb/output"
	"cdb/report"
	"cdb/semantic"
)

// Generator is the data structure responsible for maintaining all high-level
// state of a database generation run
type Generator struct {
	// cfg is the loaded tool configuration
	cfg *config.Config

	// tools is the ordered list of semantic tools consulted for every
	// intercepted command
	tools semantic.Tools
}

// NewGenerator creates a new generator for a given configuration
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		tools: semantic.Tools{
			semantic.NewGcc(cfg.Compilers),
		},
	}
}

// Generate runs the full pipeline on an execution report: load the
// intercepted commands, classify each into compilation database entries, and
// write the merged database.  It handles all errors appropriately and returns
// a boolean indicating whether or not the run was successful.
func (g *Generator) Generate(reportPath string) bool {
	logging.LogRunHeader(reportPath)

	logging.LogBeginPhase("Loading")
	commands, err := report.Load(reportPath)
	if err != nil {
		logging.LogConfigError("Report", "error loading execution report: "+err.Error())
		return false
	}
	logging.LogEndPhase(true)

	logging.LogBeginPhase("Classifying")
	entries := g.classifyAll(commands)
	logging.LogEndPhase(true)

	logging.LogBeginPhase("Writing")
	if g.cfg.Append {
		existing, err := output.ReadDatabase(g.cfg.OutputPath)
		if err != nil {
			logging.LogConfigError("Database", "error loading existing database: "+err.Error())
			return false
		}
		entries = append(existing, entries...)
	}
	entries = output.Dedup(entries)

	if err := output.WriteDatabase(g.cfg.OutputPath, entries, g.cfg.Format); err != nil {
		logging.LogConfigError("Database", "error writing database: "+err.Error())
		return false
	}
	logging.LogEndPhase(true)

	logging.LogRunFinished(len(entries))
	return logging.ShouldProceed()
}

// classifyAll derives the entries of every command in the report.  Commands
// are classified concurrently -- classification is a pure function of the
// command and the shared read-only tables, so no synchronization beyond the
// final join is needed -- and results are collected into an indexed slice so
// the output keeps the report's command order.
func (g *Generator) classifyAll(commands []report.Command) []output.Entry {
	perCommand := make([][]output.Entry, len(commands))

	var wg sync.WaitGroup
	for i := range commands {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			perCommand[i] = g.classify(&commands[i])
		}(i)
	}
	wg.Wait()

	var entries []output.Entry
	for _, ce := range perCommand {
		entries = append(entries, ce...)
	}
	return entries
}

// classify derives the entries of one command.  A command that is not
// recognized, does not compile anything, or cannot be classified contributes
// zero entries; only classification failures count as (per-command) errors.
func (g *Generator) classify(command *report.Command) []output.Entry {
	tool, ok := g.tools.Select(command.Program)
	if !ok {
		logging.LogCommandSkipped(command.Program, "not a recognized compiler")
		return nil
	}

	entries, err := tool.Compilations(command)
	if err != nil {
		logging.LogCommandSkipped(command.Program, "unclassifiable arguments: "+err.Error())
		return nil
	}
	if len(entries) == 0 {
		logging.LogCommandSkipped(command.Program, "no compilation pass in this invocation")
	}

	return entries
}
