package session

import "fmt"

// Config is the session configuration handed to the library initializer.
// Enum fields use their empty value to mean "library default".
type Config struct {
	Console     Console
	Pretty      Pretty
	GroundTypes GroundTypes
	Order       Order
	Quiet       bool
	Doctest     bool
	UseCache    bool
	Debug       bool
	BackendArgs []string
}

// DefaultConfig returns a configuration with every choice unset and the
// cache enabled.
func DefaultConfig() Config {
	return Config{UseCache: true}
}

// BuildConfig translates parsed options into a Config. Doctest mode forces
// plain output on the plain Python console whatever else was requested.
func BuildConfig(opts Options) (Config, error) {
	checks := []struct {
		option, value string
		choices       []string
	}{
		{"console", opts.Console, ConsoleChoices},
		{"pretty", opts.Pretty, PrettyChoices},
		{"types", opts.GroundTypes, GroundTypesChoices},
		{"order", opts.Order, OrderChoices},
	}
	for _, c := range checks {
		if err := CheckChoice(c.option, c.value, c.choices); err != nil {
			return Config{}, err
		}
	}

	cfg := DefaultConfig()
	cfg.Console = Console(opts.Console)
	cfg.Pretty = Pretty(opts.Pretty)
	cfg.GroundTypes = GroundTypes(opts.GroundTypes)
	cfg.Order = Order(opts.Order)
	cfg.Quiet = opts.Quiet
	cfg.Doctest = opts.Doctest
	cfg.UseCache = !opts.NoCache
	cfg.Debug = opts.Debug
	if len(opts.Args) > 0 {
		cfg.BackendArgs = append([]string(nil), opts.Args...)
	}

	if cfg.Doctest {
		cfg.Pretty = PrettyNo
		cfg.Console = ConsolePython
	}
	return cfg, nil
}

// Kwarg is one keyword argument of the initializer call, rendered as a
// Python literal.
type Kwarg struct {
	Name  string
	Value string
}

// Kwargs returns the initializer keyword arguments for the fields that are
// set. Unset fields are omitted so the library applies its own defaults.
func (c Config) Kwargs() []Kwarg {
	var kw []Kwarg
	switch c.Console {
	case ConsoleIPython:
		kw = append(kw, Kwarg{"ipython", "True"})
	case ConsolePython:
		kw = append(kw, Kwarg{"ipython", "False"})
	}
	switch c.Pretty {
	case PrettyUnicode:
		kw = append(kw, Kwarg{"pretty_print", "True"}, Kwarg{"use_unicode", "True"})
	case PrettyASCII:
		kw = append(kw, Kwarg{"pretty_print", "True"}, Kwarg{"use_unicode", "False"})
	case PrettyNo:
		kw = append(kw, Kwarg{"pretty_print", "False"})
	}
	if c.Order != OrderUnset {
		kw = append(kw, Kwarg{"order", pyString(string(c.Order))})
	}
	if c.Quiet {
		kw = append(kw, Kwarg{"quiet", "True"})
	}
	return kw
}

// pyString quotes s as a Python string literal. Only choice values reach
// it, so plain single quoting is enough.
func pyString(s string) string {
	return fmt.Sprintf("'%s'", s)
}
