package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "99"  // Indigo - buttons, links, badges
	ColorHighlight = "205" // Magenta - focus rings
	ColorSuccess   = "42"  // Green - confirmation text
	ColorDanger    = "196" // Red - required-field prompts
	ColorMuted     = "241" // Gray - secondary copy, hints
	ColorText      = "252" // Light gray - body copy
	ColorDim       = "238" // Dark gray - backdrop behind the drawer
	ColorBadgeBg   = "236" // Badge background
)

// Styles contains shared style definitions used across sections.
var Styles = struct {
	Brand        lipgloss.Style // Site name in the header
	NavLink      lipgloss.Style // Header and drawer links
	Focused      lipgloss.Style // Focus ring for links and small controls
	HeaderBorder lipgloss.Style // Rule under the sticky header

	HeroTitle    lipgloss.Style
	SectionTitle lipgloss.Style
	CardTitle    lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Link          lipgloss.Style
	Badge         lipgloss.Style
	Skill         lipgloss.Style

	Card         lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Label        lipgloss.Style
	Prompt       lipgloss.Style // Required-field message
	Success      lipgloss.Style

	Panel    lipgloss.Style // Drawer panel
	Backdrop lipgloss.Style // Dimmed page behind the drawer
	Hint     lipgloss.Style
	Status   lipgloss.Style
	TopBtn   lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true),
	NavLink: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	HeaderBorder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HeroTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	SectionTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	CardTitle: lipgloss.NewStyle().
		Bold(true),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorBadgeBg)).
		Padding(0, 1),
	Skill: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorBadgeBg)).
		Padding(0, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	InputFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Label: lipgloss.NewStyle().
		Bold(true),
	Prompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 2),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	TopBtn: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}
