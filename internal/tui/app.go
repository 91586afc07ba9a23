package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudvault/cli/internal/api"
	"github.com/cloudvault/cli/internal/browser"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeMkdir
	modeRename
	modeConfirmDelete
)

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

type listingMsg browser.Listing

type statusMsg struct {
	text string
	err  bool
}

// row is one selectable line in the listing. Folders sort before files;
// a parent row is prepended when browsing below root.
type row struct {
	entry  api.Entry
	folder bool
	parent bool
}

type model struct {
	ctx    context.Context
	client *api.Client
	log    *slog.Logger

	nav     *browser.Navigator
	listing *browser.Controller
	uploads *browser.Coordinator
	refresh *browser.Signal

	snapshot browser.Listing
	tasks    []browser.Task

	cursor int
	offset int
	trash  bool
	query  string

	mode      inputMode
	input     string
	target    row
	status    string
	statusErr bool

	width  int
	height int
}

func NewApp(ctx context.Context, client *api.Client, logger *slog.Logger) *model {
	if logger == nil {
		logger = slog.Default()
	}
	refresh := browser.NewSignal()
	nav := browser.NewNavigator()
	return &model{
		ctx:     ctx,
		client:  client,
		log:     logger,
		nav:     nav,
		listing: browser.NewController(client, refresh, logger),
		uploads: browser.NewCoordinator(client, refresh, nav, logger),
		refresh: refresh,
	}
}

func (m *model) Init() tea.Cmd {
	go m.listing.Watch(m.ctx)
	return tea.Batch(m.fetchCmd(), tick())
}

func (m *model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.listing.Fetch(m.ctx); err != nil {
			return statusMsg{text: "load failed: " + err.Error(), err: true}
		}
		return listingMsg(m.listing.Snapshot())
	}
}

func (m *model) loadMoreCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.listing.LoadMore(m.ctx); err != nil {
			return statusMsg{text: "load failed: " + err.Error(), err: true}
		}
		return listingMsg(m.listing.Snapshot())
	}
}

// actionCmd runs a mutation, re-fetches the listing on success and
// surfaces the outcome in the status line. The refresh signal stays the
// upload coordinator's channel; local mutations invalidate directly.
func (m *model) actionCmd(ok string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return statusMsg{text: err.Error(), err: true}
		}
		_ = m.listing.Invalidate(m.ctx)
		return statusMsg{text: ok}
	}
}

func (m *model) shareCmd(fileID string) tea.Cmd {
	return func() tea.Msg {
		link, err := m.client.CreateShareLink(m.ctx, fileID, "view")
		if err != nil {
			return statusMsg{text: err.Error(), err: true}
		}
		_ = m.listing.Invalidate(m.ctx)
		return statusMsg{text: "share link: " + link}
	}
}

func (m *model) rows() []row {
	var rows []row
	if m.nav.Depth() > 0 && m.query == "" && !m.trash {
		rows = append(rows, row{parent: true})
	}
	for _, f := range m.snapshot.Folders {
		rows = append(rows, row{entry: f, folder: true})
	}
	for _, f := range m.snapshot.Files {
		rows = append(rows, row{entry: f})
	}
	return rows
}

func (m *model) selected() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

// applyScope pushes the current folder, trash flag and query into the
// controller. Cursor state resets only when the scope actually changed.
func (m *model) applyScope() tea.Cmd {
	if m.listing.SetScope(m.nav.CurrentFolderID(), m.trash, m.query) {
		m.cursor, m.offset = 0, 0
		m.snapshot = m.listing.Snapshot()
		return m.fetchCmd()
	}
	return nil
}

func (m *model) goUp() tea.Cmd {
	if m.query != "" {
		m.query = ""
		return m.applyScope()
	}
	switch depth := m.nav.Depth(); {
	case depth == 1:
		m.nav.Reset()
	case depth > 1:
		m.nav.JumpTo(depth - 2)
	default:
		return nil
	}
	return m.applyScope()
}

func (m *model) clampCursor() {
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// visibleRows is the number of listing lines that fit on screen after the
// breadcrumb, header, upload panel, status and help lines.
func (m *model) visibleRows() int {
	v := m.height - 9 - len(m.tasks)
	if v < 3 {
		v = 3
	}
	return v
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.snapshot = m.listing.Snapshot()
		m.tasks = m.uploads.Tasks()
		m.clampCursor()
		return m, tick()

	case listingMsg:
		m.snapshot = browser.Listing(msg)
		m.clampCursor()

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.err

	case tea.KeyMsg:
		if msg.Paste {
			m.uploads.AcceptDrop(m.ctx, parsePaths(string(msg.Runes)))
			return m, nil
		}
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateInput(msg)
		}
	}

	return m, nil
}

func (m *model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}

	case "down", "j":
		rows := m.rows()
		if m.cursor < len(rows)-1 {
			m.cursor++
			if v := m.visibleRows(); m.cursor >= m.offset+v {
				m.offset = m.cursor - v + 1
			}
		} else if m.snapshot.HasMore && !m.snapshot.Loading {
			return m, m.loadMoreCmd()
		}

	case "enter", "l", "right":
		sel, ok := m.selected()
		if !ok {
			break
		}
		switch {
		case sel.parent:
			return m, m.goUp()
		case sel.folder && !m.trash:
			m.nav.NavigateInto(sel.entry)
			return m, m.applyScope()
		}

	case "esc", "h", "left":
		return m, m.goUp()

	case "/":
		m.mode = modeSearch
		m.input = m.query

	case "t":
		m.trash = !m.trash
		m.query = ""
		m.nav.Reset()
		return m, m.applyScope()

	case "n":
		if !m.trash && m.query == "" {
			m.mode = modeMkdir
			m.input = ""
		}

	case "r":
		if sel, ok := m.selected(); ok && !sel.parent {
			m.mode = modeRename
			m.target = sel
			m.input = sel.entry.Name
		}

	case "d":
		if sel, ok := m.selected(); ok && !sel.parent {
			m.mode = modeConfirmDelete
			m.target = sel
		}

	case "R":
		if !m.trash {
			break
		}
		if sel, ok := m.selected(); ok && !sel.parent {
			id := sel.entry.ID
			if sel.folder {
				return m, m.actionCmd("restored "+sel.entry.Name, func() error {
					return m.client.RestoreFolder(m.ctx, id)
				})
			}
			return m, m.actionCmd("restored "+sel.entry.Name, func() error {
				return m.client.RestoreFile(m.ctx, id)
			})
		}

	case "s":
		if sel, ok := m.selected(); ok && !sel.parent && !sel.folder && !m.trash {
			return m, m.shareCmd(sel.entry.ID)
		}
	}

	return m, nil
}

func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		sel := m.target
		id := sel.entry.ID
		if sel.folder {
			return m, m.actionCmd("deleted "+sel.entry.Name, func() error {
				return m.client.DeleteFolder(m.ctx, id)
			})
		}
		return m, m.actionCmd("deleted "+sel.entry.Name, func() error {
			return m.client.DeleteFile(m.ctx, id)
		})
	default:
		m.mode = modeBrowse
	}
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input = ""

	case tea.KeyEnter:
		return m.commitInput()

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.input += " "
		} else {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) commitInput() (tea.Model, tea.Cmd) {
	mode, text := m.mode, strings.TrimSpace(m.input)
	m.mode = modeBrowse
	m.input = ""

	switch mode {
	case modeSearch:
		m.query = text
		return m, m.applyScope()

	case modeMkdir:
		if text == "" {
			return m, nil
		}
		parentID := m.nav.CurrentFolderID()
		return m, m.actionCmd("created "+text, func() error {
			_, err := m.client.CreateFolder(m.ctx, text, parentID)
			return err
		})

	case modeRename:
		if text == "" || text == m.target.entry.Name {
			return m, nil
		}
		sel := m.target
		id := sel.entry.ID
		if sel.folder {
			return m, m.actionCmd("renamed to "+text, func() error {
				return m.client.RenameFolder(m.ctx, id, text)
			})
		}
		return m, m.actionCmd("renamed to "+text, func() error {
			return m.client.RenameFile(m.ctx, id, text)
		})
	}
	return m, nil
}

// parsePaths splits pasted text into file paths. Terminals deliver dropped
// files as whitespace-separated paths, quoting those that contain spaces.
func parsePaths(s string) []string {
	var paths []string
	var cur strings.Builder
	var quote rune

	flush := func() {
		if cur.Len() > 0 {
			paths = append(paths, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return paths
}

func (m *model) Run() error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
