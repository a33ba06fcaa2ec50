package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/leximind/internal/domain"
)

// palette is the colour set of one theme.
type palette struct {
	Accent lipgloss.Color
	Second lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

func paletteFor(theme domain.Theme) palette {
	if theme == domain.ThemeDark {
		return palette{
			Accent: lipgloss.Color("#A78BFA"),
			Second: lipgloss.Color("#67E8F9"),
			Text:   lipgloss.Color("#E5E7EB"),
			Muted:  lipgloss.Color("#9CA3AF"),
			Error:  lipgloss.Color("#F87171"),
		}
	}
	return palette{
		Accent: lipgloss.Color("#6D28D9"),
		Second: lipgloss.Color("#0E7490"),
		Text:   lipgloss.Color("#111827"),
		Muted:  lipgloss.Color("#6B7280"),
		Error:  lipgloss.Color("#B91C1C"),
	}
}

// styles renders word cards and insights for a writer.
type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
}

func newStyles(w io.Writer, theme domain.Theme) styles {
	r := lipgloss.NewRenderer(w)
	p := paletteFor(theme)
	return styles{
		Title:    r.NewStyle().Bold(true).Foreground(p.Accent),
		Subtitle: r.NewStyle().Bold(true).Foreground(p.Second),
		Normal:   r.NewStyle().Foreground(p.Text),
		Muted:    r.NewStyle().Foreground(p.Muted),
		Error:    r.NewStyle().Bold(true).Foreground(p.Error),
	}
}

// wordCard renders an entry: headword, phonetic, audio, meanings with at
// most domain.MaxDisplayedDefinitions definitions each, and the source.
func (s styles) wordCard(e *domain.WordEntry) string {
	var b strings.Builder

	b.WriteString(s.Title.Render(e.Word))
	if ph := e.DisplayPhonetic(); ph != "" {
		b.WriteString("  " + s.Muted.Render(ph))
	}
	b.WriteString("\n")
	if audio, ok := e.AudioURL(); ok {
		b.WriteString(s.Muted.Render("audio: "+audio) + "\n")
	}

	for _, m := range e.Meanings {
		b.WriteString("\n" + s.Subtitle.Render(m.PartOfSpeech) + "\n")
		for i, d := range m.DisplayedDefinitions() {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s.Normal.Render(d.Definition))
			if d.Example != nil && *d.Example != "" {
				b.WriteString("     " + s.Muted.Render(`"`+*d.Example+`"`) + "\n")
			}
		}
		if len(m.Synonyms) > 0 {
			b.WriteString("  " + s.Muted.Render("synonyms: "+strings.Join(m.Synonyms, ", ")) + "\n")
		}
	}

	if len(e.SourceURLs) > 0 {
		b.WriteString("\n" + s.Muted.Render("source: "+e.SourceURLs[0]) + "\n")
	}
	return b.String()
}

func (s styles) insights(a *domain.AIInsights) string {
	var b strings.Builder

	b.WriteString(s.Title.Render("AI insights") + "\n")
	b.WriteString(s.Subtitle.Render("Hindi: ") + s.Normal.Render(a.HindiMeaning) + "\n")
	b.WriteString(s.Subtitle.Render("Examples") + "\n")
	for i, ex := range a.Examples {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s.Normal.Render(ex.English))
		b.WriteString("     " + s.Muted.Render(ex.Hindi) + "\n")
	}
	b.WriteString(s.Subtitle.Render("Mnemonic: ") + s.Normal.Render(a.Mnemonic) + "\n")
	b.WriteString(s.Subtitle.Render("Etymology: ") + s.Normal.Render(a.Etymology) + "\n")
	b.WriteString(s.Subtitle.Render("Usage tip: ") + s.Normal.Render(a.UsageTip) + "\n")
	return b.String()
}

func (s styles) history(items []domain.HistoryItem) string {
	if len(items) == 0 {
		return s.Muted.Render("No searches yet.") + "\n"
	}
	var b strings.Builder
	for i, it := range items {
		when := time.UnixMilli(it.Timestamp).Local().Format("2 Jan 15:04")
		fmt.Fprintf(&b, "  %2d. %s  %s\n", i+1, s.Normal.Render(it.Word), s.Muted.Render(when))
	}
	return b.String()
}
