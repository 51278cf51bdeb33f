package models

// Theme holds the chart color settings. All colors use the canonical
// lowercase "#rrggbb" form; conversion from other formats is the
// caller's job (see the theme package).
type Theme struct {
	// Background is the chart background color.
	Background string `json:"background"`
	// Grid is the color used for gridlines, axes, and text.
	Grid string `json:"grid"`
	// PhaseColors maps phase values to bar fill colors. A partial or
	// nil map is allowed; missing phases are assigned deterministic
	// defaults during layout.
	PhaseColors map[string]string `json:"phase_colors,omitempty"`
}
