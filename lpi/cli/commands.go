package cli

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/lpi/grammar"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the tokens of a program, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readProgram(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, tok := range grammar.Lex(source) {
			fmt.Fprintf(out, "%q\n", tok)
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the parse tree of a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readProgram(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), grammar.ParseString(source))
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a program",
	Long: `Run loads a program and executes it. Lines with an invalid line number are
reported and skipped. Execution stops at the first line which fails.

With flag -i, the program is loaded into an interactive session instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgramCmd,
}

func init() {
	runCmd.Flags().Bool("vars", false, "Show variables after the run")
}

func runProgramCmd(cmd *cobra.Command, args []string) error {
	source, err := readProgram(args[0])
	if err != nil {
		return err
	}
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return startREPL([]byte(source))
	}
	intp := newInterpreter(cmd.OutOrStdout())
	for _, w := range intp.Load(source) {
		tracer().Infof(w.Error())
		Formatter{}.Format(w, cmd.ErrOrStderr())
	}
	err = intp.Run()
	if showVars, _ := cmd.Flags().GetBool("vars"); showVars {
		if verr := showVariables(intp.Variables(), configuredFormat(), cmd.OutOrStdout()); verr != nil {
			return verr
		}
	}
	return err
}

// readProgram reads a program file. Line ends are normalized to '\n'.
func readProgram(filename string) (string, error) {
	if filename == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		return normalize(b), err
	}
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return "", err
	}
	tracer().Debugf("read %d bytes from %s", len(b), filename)
	return normalize(b), nil
}

func normalize(b []byte) string {
	return strings.ReplaceAll(string(b), "\r\n", "\n")
}
