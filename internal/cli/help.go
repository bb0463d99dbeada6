package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdview/internal/ui/term"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Example    lipgloss.Style
	Dim        lipgloss.Style
}

// NewHelpStyles creates help styles based on color availability.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:    plain,
			Heading:    plain,
			Subcommand: plain,
			Flag:       plain,
			Example:    plain,
			Dim:        plain,
		}
	}

	return &HelpStyles{
		Command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help and usage text for commands.
type HelpFormatter struct {
	styles *HelpStyles
	writer io.Writer
}

// NewHelpFormatter creates a formatter honoring the --color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(term.ColorEnabled(colorMode, writer)),
		writer: writer,
	}
}

// ApplyToCommand installs the formatter on cmd and all its subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		h.writeHelp(c)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		h.writeUsage(c)
		return nil
	})
}

func (h *HelpFormatter) writeHelp(cmd *cobra.Command) {
	long := cmd.Long
	if long == "" {
		long = cmd.Short
	}
	if long != "" {
		fmt.Fprintln(h.writer, long)
		fmt.Fprintln(h.writer)
	}

	h.writeUsage(cmd)
}

func (h *HelpFormatter) writeUsage(cmd *cobra.Command) {
	s := h.styles

	fmt.Fprintf(h.writer, "%s\n  %s\n", s.Heading.Render("Usage:"), s.Command.Render(cmd.UseLine()))
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(h.writer, "  %s\n", s.Command.Render(cmd.CommandPath()+" [command]"))
	}

	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(h.writer, "\n%s\n  %s\n",
			s.Heading.Render("Aliases:"), s.Dim.Render(strings.Join(cmd.Aliases, ", ")))
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(h.writer, "\n%s\n", s.Heading.Render("Available Commands:"))
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Fprintf(h.writer, "  %s %s\n",
				s.Subcommand.Render(rpad(sub.Name(), sub.NamePadding())), sub.Short)
		}
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintf(h.writer, "\n%s\n%s", s.Heading.Render("Flags:"),
			h.styleFlagUsages(cmd.LocalFlags().FlagUsages()))
	}

	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(h.writer, "\n%s\n%s", s.Heading.Render("Global Flags:"),
			h.styleFlagUsages(cmd.InheritedFlags().FlagUsages()))
	}

	if cmd.HasExample() {
		fmt.Fprintf(h.writer, "\n%s\n%s\n", s.Heading.Render("Examples:"), s.Example.Render(cmd.Example))
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(h.writer, "\n%s\n",
			s.Dim.Render(`Use "`+cmd.CommandPath()+` [command] --help" for more information about a command.`))
	}
}

// styleFlagUsages colors the flag token of each pflag usage line, leaving
// the aligned description text untouched.
func (h *HelpFormatter) styleFlagUsages(usages string) string {
	var b strings.Builder

	for _, line := range strings.Split(strings.TrimRight(usages, "\n"), "\n") {
		flagPart, rest := splitFlagLine(line)
		b.WriteString(h.styles.Flag.Render(flagPart))
		b.WriteString(rest)
		b.WriteByte('\n')
	}

	return b.String()
}

// splitFlagLine separates the flag token from its description. pflag aligns
// descriptions with runs of spaces, so the token ends at the first double
// space after non-space text.
func splitFlagLine(line string) (string, string) {
	seen := false
	for i := 0; i < len(line)-1; i++ {
		if line[i] != ' ' {
			seen = true
			continue
		}
		if seen && line[i+1] == ' ' {
			return line[:i], line[i:]
		}
	}

	return line, ""
}

func rpad(str string, padding int) string {
	return fmt.Sprintf("%-*s", padding, str)
}
