package mdview

// Theme defines semantic color mappings for terminal previews using ANSI
// color indices (0-15). A negative index means no color. The user's terminal
// theme determines the actual RGB values, so previews match any color scheme.
type Theme struct {
	Heading int // Headings
	Link    int // Link text and autolinks
	Code    int // Code spans and blocks
	Quote   int // Block quote bar and text
	Muted   int // URLs, language labels, rules, status bar
	Error   int // Fetch and parse errors
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Link:    4,
		Code:    3,
		Quote:   2,
		Muted:   8,
		Error:   1,
	}
}
