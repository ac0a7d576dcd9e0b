package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matthewsawatzky/themepref/internal/theme"
)

func buildPaletteCommand(state *rootState) *cobra.Command {
	css := false
	all := false
	paletteCmd := &cobra.Command{
		Use:   "palette [light|dark|system]",
		Short: "Print the palette for the resolved theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("--all does not take a preference argument")
			}
			s, err := openSession(cmd, state)
			if err != nil {
				return err
			}
			defer s.Close()

			overrides, err := theme.LoadOverrides(s.cfg.PaletteFile, s.logger)
			if err != nil {
				return err
			}
			if all {
				return writeAllPalettes(cmd.OutOrStdout(), overrides, css)
			}

			pref := s.store.Get()
			if len(args) == 1 {
				if pref, err = theme.ParsePreference(args[0]); err != nil {
					return err
				}
			}
			resolved := theme.Resolve(pref, s.host)
			t, err := theme.Palette(resolved, overrides.For(resolved))
			if err != nil {
				return err
			}
			writePalette(cmd.OutOrStdout(), t, css)
			return nil
		},
	}
	paletteCmd.Flags().BoolVar(&all, "all", false, "print every builtin palette, light first")
	paletteCmd.Flags().BoolVar(&css, "css", false, "print a :root custom-property block instead of swatches")
	return paletteCmd
}

func writeAllPalettes(w io.Writer, overrides theme.OverrideFile, css bool) error {
	for i, builtin := range theme.List() {
		r := theme.Resolved(builtin.Name)
		t, err := theme.Palette(r, overrides.For(r))
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		writePalette(w, t, css)
	}
	return nil
}

func writePalette(w io.Writer, t theme.Theme, css bool) {
	if css {
		writeCSS(w, t)
		return
	}
	writeSwatches(w, t)
}

func writeCSS(w io.Writer, t theme.Theme) {
	fmt.Fprintf(w, ":root {\n  color-scheme: %s;\n", t.Name)
	for _, name := range t.VariableNames() {
		fmt.Fprintf(w, "  %s: %s;\n", name, t.CSSVariables[name])
	}
	fmt.Fprintln(w, "}")
}

func writeSwatches(w io.Writer, t theme.Theme) {
	title := lipgloss.NewStyle().Bold(true)
	fmt.Fprintf(w, "%s - %s\n", title.Render(t.Label), t.Description)
	for _, name := range t.VariableNames() {
		value := t.CSSVariables[name]
		swatch := "    "
		if strings.HasPrefix(value, "#") {
			swatch = lipgloss.NewStyle().Background(lipgloss.Color(value)).Render(swatch)
		}
		fmt.Fprintf(w, "%s %-15s %s\n", swatch, name, value)
	}
}
