package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cdb/common"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains the display functions for the different kinds of
// messages that can be logged -- these functions are called to print the
// message to the screen.

// ConfigError is an error related to the tool or run configuration
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) display() {
	PrintErrorMessage(ce.Kind+" Error", errors.New(ce.Message))
}

func (ce *ConfigError) isError() bool {
	return true
}

// CommandMessage is a warning about a single intercepted command that
// contributed no database entries (skipped or unclassifiable)
type CommandMessage struct {
	Program string
	Message string
}

func (cm *CommandMessage) display() {
	WarnStyleBG.Print("Skipped")
	WarnColorFG.Println(" " + cm.Program + ": " + cm.Message)
}

func (cm *CommandMessage) isError() bool {
	return false
}

// -----------------------------------------------------------------------------

// displayRunHeader displays the tool information before starting a run
func displayRunHeader(reportPath string) {
	fmt.Print("cdb ")
	InfoColorFG.Print("v" + common.CdbVersion)
	fmt.Print(" -- report: ")
	InfoColorFG.Println(reportPath)
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Classifying")

// displayBeginPhase displays the beginning of a pipeline phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a pipeline phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayRunFinished displays the closing summary of a generation run
func displayRunFinished(success bool, entryCount, errorCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch entryCount {
	case 1:
		fmt.Print("1 entry, ")
	default:
		fmt.Printf("%d entries, ", entryCount)
	}

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" errors)")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Println(" error)")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Println(" errors)")
	}
}
