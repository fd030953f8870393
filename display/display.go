package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/weft"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// Role classifies a node for coloring purposes.
type Role uint8

const (
	RoleRoot Role = iota
	RoleInternal
	RoleExternal
)

// Palette maps node roles to display colors. It may contain just a subset
// of the roles; unmapped roles render uncolored.
type Palette map[Role]*color.Color

func makeDefaultPalette() Palette {
	return Palette{
		RoleRoot:     color.New(color.FgRed, color.Bold),
		RoleInternal: color.New(color.FgBlue),
		RoleExternal: color.New(color.FgGreen),
	}
}

// Print outputs the subtree rooted at n to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[T any](a *weft.Arena[T], n weft.Ref, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(a, n, os.Stdout, config, nil)
}

// Output renders the subtree rooted at n to w, one node per line.
//
// It is safe to pass a nil config (a default width of 65 is used) and a nil
// palette (a default palette is used). A nil config.Context falls back to
// uax11.LatinContext.
func Output[T any](a *weft.Arena[T], n weft.Ref, w io.Writer, config *Config, colors Palette) error {
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.LineWidth <= 0 {
		config.LineWidth = 65
	}
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return output(a, n, w, "", "", config, colors)
}

func output[T any](a *weft.Arena[T], n weft.Ref, w io.Writer, prefix, indent string,
	config *Config, colors Palette) error {
	//
	payload, err := a.Payload(n)
	if err != nil {
		return err
	}
	role := RoleExternal
	if degree, _ := a.Degree(n); degree >= 1 {
		role = RoleInternal
	}
	if isroot, _ := a.IsRoot(n); isroot && prefix == "" {
		role = RoleRoot
	}
	label := fmt.Sprintf("%v", payload)
	budget := config.LineWidth - fixedWidth(prefix, config.Context)
	label = truncate(label, budget, config.Context)
	tracer().Debugf("display: %v as %q", n, label)
	io.WriteString(w, prefix)
	if c, ok := colors[role]; ok && c != nil {
		c.Fprint(w, label)
	} else {
		io.WriteString(w, label)
	}
	io.WriteString(w, "\n")
	children, err := a.Children(n)
	if err != nil {
		return err
	}
	for i, child := range children {
		connector, grow := "├─ ", "│  "
		if i == len(children)-1 {
			connector, grow = "└─ ", "   "
		}
		if err := output(a, child, w, indent+connector, indent+grow, config, colors); err != nil {
			return err
		}
	}
	return nil
}

// fixedWidth measures s in fixed-width positions (“en”s).
func fixedWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens label to at most maxwidth fixed-width positions,
// marking the cut with an ellipsis.
func truncate(label string, maxwidth int, context *uax11.Context) string {
	if maxwidth <= 0 {
		return ""
	}
	if fixedWidth(label, context) <= maxwidth {
		return label
	}
	runes := []rune(label)
	for n := len(runes) - 1; n > 0; n-- {
		if fixedWidth(string(runes[:n]), context)+1 <= maxwidth {
			return string(runes[:n]) + "…"
		}
	}
	return "…"
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	if config.LineWidth < 10 {
		config.LineWidth = 10
	}
	return config
}
