package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudvault/cli/internal/browser"
	"github.com/cloudvault/cli/internal/output"
)

func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sb strings.Builder

	sb.WriteString(m.renderCrumb() + "\n")
	sb.WriteString(m.renderListing())
	sb.WriteString(m.renderUploads())
	sb.WriteString(m.renderPrompt())
	sb.WriteString(m.renderStatus())

	help := "enter:Open | esc:Back | /:Search | t:Trash | n:New folder | r:Rename | d:Delete | R:Restore | s:Share | paste paths:Upload | q:Quit"
	sb.WriteString(helpStyle.Width(m.width).Render(help))

	return sb.String()
}

func (m *model) renderCrumb() string {
	switch {
	case m.query != "":
		return crumbStyle.Render("Search") + dimStyle.Render(fmt.Sprintf(" %q", m.query))
	case m.trash:
		return crumbStyle.Render("Trash")
	}

	crumb := "Home"
	for _, f := range m.nav.Path() {
		crumb += " / " + f.Name
	}
	return crumbStyle.Render(crumb)
}

func (m *model) renderListing() string {
	rows := m.rows()
	if len(rows) == 0 {
		if m.snapshot.Loading {
			return "\n  " + dimStyle.Render("Loading...") + "\n\n"
		}
		return "\n  " + dimStyle.Render("Nothing here.") + "\n\n"
	}

	sizeWidth := 10
	modWidth := 16
	nameWidth := m.width - sizeWidth - modWidth - 4
	if nameWidth < 10 {
		nameWidth = 10
	}

	nameCol := lipgloss.NewStyle().Width(nameWidth)
	sizeCol := lipgloss.NewStyle().Width(sizeWidth)
	modCol := lipgloss.NewStyle().Width(modWidth)

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(nameWidth).Render("NAME"),
		headerStyle.Width(sizeWidth).Render("SIZE"),
		headerStyle.Width(modWidth).Render("MODIFIED"),
	) + "\n")

	visible := m.visibleRows()
	end := m.offset + visible

	for i := m.offset; i < len(rows) && i < end; i++ {
		r := rows[i]

		name, size, mod := "../", "", ""
		if !r.parent {
			name = r.entry.Name
			if r.folder {
				name += "/"
			} else {
				size = output.FormatSize(r.entry.Size)
			}
			mod = r.entry.UpdatedAt.Format("2006-01-02 15:04")
		}
		name = truncate(name, nameWidth)

		line := lipgloss.JoinHorizontal(lipgloss.Top,
			nameCol.Render(name),
			sizeCol.Render(size),
			modCol.Render(mod),
		)

		if i == m.cursor {
			sb.WriteString(selectedItemStyle.Width(m.width - 2).Render(line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	switch {
	case len(rows) > end:
		sb.WriteString(dimStyle.Render(fmt.Sprintf("... %d more", len(rows)-end)) + "\n")
	case m.snapshot.Loading:
		sb.WriteString(dimStyle.Render("loading...") + "\n")
	case m.snapshot.HasMore:
		sb.WriteString(dimStyle.Render("-- more (j to load) --") + "\n")
	default:
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m *model) renderUploads() string {
	if len(m.tasks) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Uploads") + "\n")

	barWidth := m.width - 40
	if barWidth < 10 {
		barWidth = 10
	}

	for _, t := range m.tasks {
		name := truncate(t.Name, 24)

		switch t.Status {
		case browser.TaskQueued:
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", name, dimStyle.Render("queued")))
		case browser.TaskUploading:
			sb.WriteString(fmt.Sprintf("  %-24s %s %3d%%\n", name, progressBar(t.Progress, barWidth), t.Progress))
		case browser.TaskSuccess:
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", name, greenStyle.Render("✓ done")))
		case browser.TaskError:
			msg := "upload failed"
			if t.Err != nil {
				msg = t.Err.Error()
			}
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", name, redStyle.Render("✗ "+msg)))
		}
	}
	return sb.String()
}

func (m *model) renderPrompt() string {
	switch m.mode {
	case modeSearch:
		return promptStyle.Render("Search: ") + m.input + "█\n"
	case modeMkdir:
		return promptStyle.Render("New folder: ") + m.input + "█\n"
	case modeRename:
		return promptStyle.Render("Rename to: ") + m.input + "█\n"
	case modeConfirmDelete:
		what := m.target.entry.Name
		if m.target.folder {
			what += "/"
		}
		return yellowStyle.Render(fmt.Sprintf("Delete %s? (y/N) ", what)) + "\n"
	}
	return ""
}

func (m *model) renderStatus() string {
	if m.status == "" {
		return "\n"
	}
	if m.statusErr {
		return redStyle.Render(m.status) + "\n"
	}
	return greenStyle.Render(m.status) + "\n"
}

// truncate shortens s to max display cells, cutting on rune boundaries so
// multi-byte filenames never render split sequences.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
