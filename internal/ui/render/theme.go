package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines the pager's colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	PromptFg   tcell.Color
	BannerBg   tcell.Color
	BannerFg   tcell.Color
}

// GetColorTheme returns the default color scheme: terminal defaults for
// text, reverse video for banners.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		PromptFg:   tcell.ColorDefault,
		BannerBg:   tcell.ColorDefault,
		BannerFg:   tcell.ColorDefault,
	}
}

func (t ColorTheme) contentStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}

func (t ColorTheme) promptStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.PromptFg)
}

func (t ColorTheme) bannerStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.BannerBg).Foreground(t.BannerFg).Reverse(true)
}
