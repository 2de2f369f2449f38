// Package ui provides the terminal presentation context for the CLI.
// A Console is constructed once and passed to command code explicitly,
// so there is no process-wide console singleton.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/swarms-world/swarms-cli/internal/constants"
)

// Color scheme shared across all rendered output.
const (
	colorPrimary   = "9"
	colorSecondary = "#FF6B6B"
	colorSuccess   = "#2ECC71"
	colorWarning   = "#F1C40F"
	colorError     = "#E74C3C"
	colorInfo      = "#F1C40F"
	colorDim       = "245"
)

const asciiArt = `
   ▄████████  ▄█     █▄     ▄████████    ▄████████   ▄▄▄▄███▄▄▄▄      ▄████████
  ███    ███ ███     ███   ███    ███   ███    ███ ▄██▀▀▀███▀▀▀██▄   ███    ███
  ███    █▀  ███     ███   ███    ███   ███    ███ ███   ███   ███   ███    █▀
  ███        ███     ███   ███    ███  ▄███▄▄▄▄██▀ ███   ███   ███   ███
▀███████████ ███     ███ ▀███████████ ▀▀███▀▀▀▀▀   ███   ███   ███ ▀███████████
         ███ ███     ███   ███    ███ ▀███████████ ███   ███   ███          ███
   ▄█    ███ ███ ▄█▄ ███   ███    ███   ███    ███ ███   ███   ███    ▄█    ███
 ▄████████▀   ▀███▀███▀    ███    █▀    ███    ███  ▀█   ███   █▀   ▄████████▀
                                        ███    ███                              `

// Styles holds the lipgloss styles used by a Console.
type Styles struct {
	Banner      lipgloss.Style
	BannerFrame lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	ErrorFrame  lipgloss.Style
	Info        lipgloss.Style
	Dim         lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	Spinner     lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorPrimary)),
		BannerFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorSecondary)).
			Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning)),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorError)),
		ErrorFrame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(colorError)).
			Padding(0, 1),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color(colorInfo)),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorPrimary)).Padding(0, 2),
		TableCell:   lipgloss.NewStyle().Padding(0, 2),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary)),
	}
}

// Console renders all user-facing CLI output.
type Console struct {
	// Out receives all rendered output.
	Out io.Writer

	// Sleep implements UX pacing pauses. Tests replace it with a no-op.
	Sleep func(time.Duration)

	// Styles is the style set applied to rendered output.
	Styles Styles
}

// New returns a Console writing to stdout with the default styles.
func New() *Console {
	return &Console{
		Out:    os.Stdout,
		Sleep:  time.Sleep,
		Styles: DefaultStyles(),
	}
}

// Banner renders the welcome banner.
func (c *Console) Banner() {
	art := c.Styles.Banner.Render(asciiArt)
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		c.Styles.Title.Render("Welcome to Swarms"),
		art,
		c.Styles.Subtitle.Render("Power to the Swarms"),
	)
	fmt.Fprintln(c.Out, c.Styles.BannerFrame.Render(body))
}

// CommandTable renders a two-column table of commands and descriptions.
func (c *Console) CommandTable(rows [][2]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorSecondary))).
		Headers("Command", "Description").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.Styles.TableHeader
			}
			return c.Styles.TableCell
		})
	for _, row := range rows {
		t.Row(row[0], row[1])
	}
	fmt.Fprintln(c.Out, t)
}

// ErrorPanel renders a framed error message with optional help text below it.
func (c *Console) ErrorPanel(message, help string) {
	fmt.Fprintln(c.Out, c.Styles.ErrorFrame.Render(c.Styles.Error.Render(message)))
	if help != "" {
		fmt.Fprintln(c.Out, c.Styles.Warning.Render("ℹ️ "+help))
	}
}

// ErrorLine renders a single-line error message.
func (c *Console) ErrorLine(err error) {
	fmt.Fprintln(c.Out, c.Styles.Error.Render(fmt.Sprintf("Error: %v", err)))
}

// Success renders a success line.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.Out, c.Styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warn renders a warning line.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.Out, c.Styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// Info renders an informational line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.Out, c.Styles.Info.Render(fmt.Sprintf(format, args...)))
}

// Dim renders a de-emphasized line.
func (c *Console) Dim(format string, args ...any) {
	fmt.Fprintln(c.Out, c.Styles.Dim.Render(fmt.Sprintf(format, args...)))
}

// Section renders a titled block of body text.
func (c *Console) Section(title, body string) {
	fmt.Fprintln(c.Out, c.Styles.Title.Render(title))
	fmt.Fprintln(c.Out, body)
}

// Pause blocks for the standard UX pacing delay.
func (c *Console) Pause() {
	if c.Sleep != nil {
		c.Sleep(constants.DefaultUXPause)
	}
}
