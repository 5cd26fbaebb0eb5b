package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // unacknowledged milestones
	MascotWaiting                   // no target words yet
)

const mascotIdle = ` ______ ______
/ ◉  ◉ Y  abc \
\__▽___|______/`

const mascotCelebrating = `  ★        ★
 ______ ______
/ ★  ★ Y  abc \
\__▿___|______/`

const mascotWaiting = ` ______ ______
/ ◉  ◉ Y  ??? \
\__▽___|______/`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.Accent
	case MascotWaiting:
		art, fg = mascotWaiting, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
