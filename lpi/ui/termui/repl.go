package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/lpi"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]\n"

// stdprompt is the default prompt for a tool.
func stdprompt(toolname string) string {
	return prtxt.FgGreen.Sprint(toolname + "> ")
}

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	toolname    string
	version     string
	editmode    string
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// Options configure the terminal of a REPL. Zero values select the process'
// terminal.
type Options struct {
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
	HistoryFile string   // defaults to a file in the temp directory; "-" disables history
	Commands    []string // interpreter commands offered for tab completion
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version.
func NewBaseREPL(toolname, version string, opts Options) (*BaseREPL, error) {
	histfile := opts.HistoryFile
	if histfile == "" {
		histfile = filepath.Join(os.TempDir(), toolname+"-repl-history.tmp")
	} else if histfile == "-" {
		histfile = ""
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              stdprompt(toolname),
		HistoryFile:         histfile,
		AutoComplete:        replCompleter(opts.Commands),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
		Stdin:               opts.Stdin,
		Stdout:              opts.Stdout,
		Stderr:              opts.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot set up terminal: %w", err)
	}
	return &BaseREPL{
		readline: rl,
		toolname: toolname,
		version:  version,
		editmode: "emacs",
	}, nil
}

// --- Administrative commands -----------------------------------------------

// adminCommand is a command handled by the REPL itself. run returns true if
// the REPL should terminate.
type adminCommand struct {
	name  string
	usage string
	run   func(repl *BaseREPL, args []string, line string) bool
}

var adminCommands []adminCommand

func init() {
	adminCommands = []adminCommand{
		{"help", "help               : print this message", (*BaseREPL).help},
		{"bye", "bye                : quit application", (*BaseREPL).bye},
		{"mode", "mode [mode]        : display or set current editing mode", (*BaseREPL).mode},
		{"setprompt", "setprompt [prompt] : set current prompt [to default]", (*BaseREPL).setprompt},
	}
}

func (repl *BaseREPL) help([]string, string) bool {
	out := repl.readline.Stderr()
	fmt.Fprintf(out, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(out, "\nThe following commands are available:\n\n")
	for _, c := range adminCommands {
		io.WriteString(out, "  "+c.usage+"\n")
	}
	if repl.Helper != nil {
		repl.Helper(out)
	}
	return false
}

func (repl *BaseREPL) bye([]string, string) bool {
	io.WriteString(repl.readline.Stderr(), "> goodbye!\n")
	return true
}

func (repl *BaseREPL) mode(args []string, _ string) bool {
	if len(args) > 1 && (args[1] == "vi" || args[1] == "emacs") {
		repl.readline.SetVimMode(args[1] == "vi")
		repl.editmode = args[1]
		return false
	}
	fmt.Fprintf(repl.readline.Stderr(), "> current input mode: %s\n", repl.editmode)
	return false
}

func (repl *BaseREPL) setprompt(_ []string, line string) bool {
	prmpt := strings.TrimSpace(strings.TrimPrefix(line, "setprompt"))
	if prmpt == "" {
		prmpt = stdprompt(repl.toolname)
	} else {
		prmpt += " "
	}
	repl.readline.SetPrompt(prmpt)
	return false
}

// Completer-tree for the administrative commands plus the interpreter's
// commands.
func replCompleter(commands []string) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, c := range adminCommands {
		if c.name == "mode" {
			items = append(items, readline.PcItem("mode", readline.PcItem("vi"), readline.PcItem("emacs")))
			continue
		}
		items = append(items, readline.PcItem(c.name))
	}
	for _, cmd := range commands {
		items = append(items, readline.PcItem(cmd))
	}
	return readline.NewPrefixCompleter(items...)
}

// --- Main loop -------------------------------------------------------------

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt enters a REPL and executes commands until the user quits, input
// ends or the application is interrupted.
// Commands are either internal administrative (setprompt, help, etc.)
// or interpreted statements.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.readline.Stderr(), welcomeMessage, repl.toolname, repl.version)
	for !lpi.Interrupted() {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err != nil { // io.EOF
			break
		}
		if repl.executeCommand(strings.TrimSpace(line)) {
			break
		}
	}
	if exitOnBye {
		repl.readline.Close()
		lpi.Exit(0)
	}
}

// executeCommand runs an administrative command or hands the line over to
// the interpreter. If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	for _, c := range adminCommands {
		if c.name == words[0] {
			return c.run(repl, words, line)
		}
	}
	if repl.Interpreter != nil {
		trace().Debugf("call interpreter on: '%s'", line)
		repl.Interpreter.InterpretCommand(line)
	}
	return false
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
