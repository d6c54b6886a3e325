package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"isympy/internal/session"
)

// ExitError is a usage error carrying the exit code to terminate with.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is everything parsed from the command line.
type Invocation struct {
	Session session.Config

	Python     string
	ConfigFile string
	DryRun     bool
	Verbose    bool
}

const longHelp = `Start an interactive Python session with SymPy preloaded.

The session runs in IPython when it is available and in the plain Python
console otherwise, unless --console picks one. Arguments after -- are
passed to the console unchanged, e.g.

  isympy -q -- -colors NoColor`

// Parse processes command-line arguments. It returns the Invocation, a
// boolean indicating if the program should exit cleanly (help was shown),
// or an *ExitError for usage errors. Usage text goes to stderr on error.
func Parse(args []string, stdout, stderr io.Writer) (*Invocation, bool, error) {
	var (
		opts session.Options
		inv  Invocation
		ran  bool
	)

	cmd := &cobra.Command{
		Use:                   "isympy [options] [-- console arguments]",
		Short:                 "Interactive SymPy session",
		Long:                  longHelp,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Args = args
			cfg, err := session.BuildConfig(opts)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			inv.Session = cfg
			ran = true
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarP(newChoiceValue("console", &opts.Console, session.ConsoleChoices), "console", "c",
		"select the console backend (default: ipython if installed, else python)")
	flags.VarP(newChoiceValue("pretty", &opts.Pretty, session.PrettyChoices), "pretty", "p",
		"pretty printing mode (default: unicode)")
	flags.VarP(newChoiceValue("types", &opts.GroundTypes, session.GroundTypesChoices), "types", "t",
		"ground types used by the polynomial code (sets SYMPY_GROUND_TYPES)")
	flags.VarP(newChoiceValue("order", &opts.Order, session.OrderChoices), "order", "o",
		"term ordering used when printing polynomials")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "print only version information at startup")
	flags.BoolVarP(&opts.Doctest, "doctest", "d", false, "use the doctest format for output (implies --pretty no --console python)")
	flags.BoolVarP(&opts.NoCache, "no-cache", "C", false, "disable the caching mechanism (sets SYMPY_USE_CACHE=no)")
	flags.BoolVarP(&opts.Debug, "debug", "D", false, "enable library debug output (sets SYMPY_DEBUG=True)")
	flags.StringVar(&inv.Python, "python", "", "python interpreter command (default: python3, then python)")
	flags.StringVar(&inv.ConfigFile, "config", "", "launcher settings file (default: $ISYMPY_CONFIG or ~/.isympy.yml)")
	flags.BoolVar(&inv.DryRun, "dry-run", false, "print the command that would be run and exit")
	flags.BoolVarP(&inv.Verbose, "verbose", "v", false, "log launcher decisions to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	if name, ok := completionRequest(args); ok {
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("%q is reserved; pass it to the console after --", name),
		}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !ran {
		return nil, true, nil
	}
	return &inv, false, nil
}

// completionRequest reports a shell-completion request word before "--".
// cobra dispatches those itself, so they would never reach the console.
func completionRequest(args []string) (string, bool) {
	for _, arg := range args {
		switch arg {
		case "--":
			return "", false
		case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return arg, true
		}
	}
	return "", false
}

// choiceValue is a pflag.Value restricted to a closed set of strings.
type choiceValue struct {
	name    string
	target  *string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(name string, target *string, choices []string) *choiceValue {
	return &choiceValue{name: name, target: target, choices: choices}
}

func (v *choiceValue) String() string {
	if v.target == nil {
		return ""
	}
	return *v.target
}

func (v *choiceValue) Set(value string) error {
	if value == "" {
		return &session.ChoiceError{Option: v.name, Value: value, Choices: v.choices}
	}
	if err := session.CheckChoice(v.name, value, v.choices); err != nil {
		return err
	}
	*v.target = value
	return nil
}

func (v *choiceValue) Type() string {
	return strings.Join(v.choices, "|")
}
