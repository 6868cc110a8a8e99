package cli

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/lpi"
	"github.com/npillmayer/lpi/evaluator"
	"github.com/npillmayer/lpi/lpi/ui/termui"
	"github.com/npillmayer/lpi/variables"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lpi",
	Short: "An interpreter for line-numbered BASIC programs",
	Long: `Welcome to LPI V` + version + `

LPI interprets programs written in a small line-numbered BASIC dialect,
featuring assignments (LET) and output (PRINT) of arithmetic expressions.

LPI is able to run in interactive mode or process program files in
batch-mode. If run in interactive mode, it will prompt for user input in a
terminal REPL.

`,
	Args:          cobra.NoArgs,
	RunE:          runREPLCmd,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main(). It returns the exit code of the
// application.
func Execute() int {
	rootCmd.AddCommand(lexCmd, parseCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lpi: %v\n", err)
		var rterr *evaluator.RuntimeError
		if errors.As(err, &rterr) {
			return 1
		}
		return 2
	}
	return 0
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Int("arrays.size", variables.DefaultArraySize, "Size of arrays created on first use")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "Format of variable dumps (table|yaml)")
}

func runREPLCmd(cmd *cobra.Command, args []string) error {
	tracing.Infof("lpi interpreter called")
	return startREPL(nil)
}

// newInterpreter creates an interpreter for the current configuration.
func newInterpreter(out io.Writer) *evaluator.Interpreter {
	return evaluator.NewInterpreter(out, variables.WithArraySize(lpi.ArraySize()))
}

// --- REPL ------------------------------------------------------------------

// replCommands are the words the REPL interprets itself, in addition to
// BASIC statements.
var replCommands = []string{"run", "list", "vars", "new", "load"}

type lpiCmdIntpr struct {
	*termui.BaseREPL
	intp   *evaluator.Interpreter
	format string
}

// startREPL starts an interactive session. If source is non-empty, it is
// loaded as the initial program.
func startREPL(source []byte) error {
	base, err := termui.NewBaseREPL("lpi", version, termui.Options{
		HistoryFile: historyFile(),
		Commands:    replCommands,
	})
	if err != nil {
		return err
	}
	repl := &lpiCmdIntpr{BaseREPL: base, format: configuredFormat()}
	stdout, _ := repl.Outputs()
	repl.intp = newInterpreter(stdout)
	repl.Interpreter = repl
	repl.Helper = func(w io.Writer) {
		io.WriteString(w, `
lpi will interpret the following statements:

  ⟨n⟩ ⟨statement⟩           : store a program line, replacing line ⟨n⟩
  ⟨n⟩                       : delete program line ⟨n⟩
  ⟨statement⟩               : execute a statement immediately
  LET ⟨var⟩ = ⟨expr⟩        : assignment (LET may be omitted)
  LET ⟨var⟩(⟨expr⟩) = ⟨expr⟩ : assignment to an array element
  PRINT ⟨expr⟩ ; …          : print strings and values
  run                       : run the program
  list                      : list the program
  vars                      : show all variables
  new                       : clear program and variables
  load ⟨file⟩               : load a program from a file

`)
	}
	if len(source) > 0 {
		repl.load(source)
	}
	repl.Prompt(false)
	return nil
}

// InterpretCommand is called by the REPL for every line which is not an
// administrative command.
func (repl *lpiCmdIntpr) InterpretCommand(line string) {
	line = strings.Trim(line, "\x00")
	words := strings.Fields(line)
	stdout, stderr := repl.Outputs()
	var err error
	switch {
	case line == "run":
		err = repl.intp.Run()
	case line == "list":
		err = repl.intp.List(stdout)
	case line == "vars":
		err = showVariables(repl.intp.Variables(), repl.format, stdout)
	case line == "new":
		repl.intp.Clear()
	case len(words) == 2 && words[0] == "load":
		var source []byte
		if source, err = ioutil.ReadFile(words[1]); err == nil {
			repl.intp.Clear()
			repl.load(source)
		}
	default:
		err = repl.intp.Enter(line)
	}
	if err != nil {
		tracer().Errorf(err.Error())
		Formatter{}.Format(err, stderr)
	}
}

func (repl *lpiCmdIntpr) load(source []byte) {
	_, stderr := repl.Outputs()
	for _, w := range repl.intp.Load(normalize(source)) {
		Formatter{}.Format(w, stderr)
	}
}
