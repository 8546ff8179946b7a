package ui

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/atomicstack/tvgrid/internal/format/table"
	"github.com/atomicstack/tvgrid/internal/grid"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultTitle     = "tvgrid"
	tileContentWidth = 16
	// content plus one column of padding and one of border on each side
	tileOuterWidth = tileContentWidth + 4
	// row title plus a bordered two-line tile
	rowHeight      = 5
	modalMaxWidth  = 64
	modalMinWidth  = 24
	scrollMarkerW  = 2
	placeholderTag = "[no image]"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.modal.IsOpen() {
		return m.viewModal()
	}
	sections := make([]string, 0, 8)
	sections = append(sections, m.viewHeader())
	sections = append(sections, m.viewRows()...)
	if status := m.viewStatus(); status != "" {
		sections = append(sections, status)
	}
	if m.showFooter {
		sections = append(sections, styles.Footer.Render(m.help.View(m.keys)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) viewHeader() string {
	title := strings.TrimSpace(m.home.Title)
	if title == "" {
		title = defaultTitle
	}
	return styles.Header.Render(truncateText(title, m.width))
}

func (m *Model) viewStatus() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render(truncateText(m.errMsg, m.width))
	case m.loading:
		return styles.Loading.Render("Loading catalog…")
	case m.grid != nil && m.grid.Len() == 0:
		return styles.Info.Render("(no containers)")
	}
	return ""
}

func (m *Model) viewRows() []string {
	if m.grid == nil {
		return nil
	}
	start, end := m.rows.Window(m.grid.Len(), m.maxVisibleRows())
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, m.viewRow(i))
	}
	return out
}

func (m *Model) viewRow(i int) string {
	c, ok := m.grid.At(i)
	if !ok {
		return ""
	}
	title := c.Title
	if title == "" {
		title = c.ID
	}
	titleStyle := styles.RowTitle
	if i == m.selected.Container {
		titleStyle = styles.RowTitleFocus
	}
	header := titleStyle.Render(truncateText(title, m.width))

	var body string
	switch {
	case c.Abandoned():
		body = styles.RowEmpty.Render("(unavailable)")
	case c.State() == grid.Pending:
		body = m.spinner.View() + styles.RowPending.Render(" loading…")
	case c.State() == grid.Unpopulated:
		body = styles.RowPending.Render("…")
	case c.Len() == 0:
		body = styles.RowEmpty.Render("(empty)")
	default:
		body = m.viewTiles(i, c)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m *Model) viewTiles(i int, c *grid.Container) string {
	vp := m.columns[i]
	tiles := c.Tiles()
	start, end := vp.Window(len(tiles), m.maxVisibleTiles())
	parts := make([]string, 0, end-start+2)
	if start > 0 {
		parts = append(parts, styles.Info.Render("‹ "))
	}
	for j := start; j < end; j++ {
		selected := i == m.selected.Container && j == m.selected.Tile
		parts = append(parts, renderTile(tiles[j], selected))
	}
	if end < len(tiles) {
		parts = append(parts, styles.Info.Render(" ›"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func renderTile(t *grid.Tile, selected bool) string {
	title := t.Display.Title
	if title == "" {
		title = "untitled"
	}
	title = truncate.StringWithTail(title, tileContentWidth, "…")

	var image string
	if t.Placeholder() {
		image = styles.Placeholder.Render(placeholderTag)
	} else {
		image = styles.TileImage.Render(truncate.StringWithTail(imageLabel(t.ImageSource), tileContentWidth, "…"))
	}

	style := styles.Tile
	if selected {
		style = styles.SelectedTile
	}
	return style.Width(tileContentWidth + 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, styles.TileTitle.Render(title), image),
	)
}

func (m *Model) viewModal() string {
	content := m.modal.Content()
	width := modalMaxWidth
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	if width < modalMinWidth {
		width = modalMinWidth
	}
	inner := width - 6

	title := content.Title
	if title == "" {
		title = "untitled"
	}
	lines := []string{styles.ModalTitle.Render(wordwrap.String(title, inner)), ""}

	image := overlayImageLabel(content.HeroImageURL)
	if image == "" {
		image = placeholderTag
	}
	imageKey := "Hero"
	if content.FromTile {
		imageKey = "Image"
	}
	year := ""
	if content.HasReleaseYear() {
		year = strconv.Itoa(content.ReleaseYear)
	}
	meta := table.Pairs(
		[2]string{imageKey, image},
		[2]string{"Title art", overlayImageLabel(content.TitleTreatmentURL)},
		[2]string{"Year", year},
		[2]string{"Rating", content.Rating},
	)
	for _, line := range meta {
		lines = append(lines, styles.ModalMeta.Render(truncate.StringWithTail(line, uint(inner), "…")))
	}
	lines = append(lines, "", styles.ModalHint.Render("esc close"))

	box := styles.Modal.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewports()
	return nil
}

// maxVisibleRows returns how many rows fit, or -1 when the height is unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + status
	if m.showFooter {
		used++
	}
	remain := (m.height - used) / rowHeight
	if remain < 1 {
		return 1
	}
	return remain
}

// maxVisibleTiles returns how many tiles fit side by side, or -1 when the
// width is unknown.
func (m *Model) maxVisibleTiles() int {
	if m.width <= 0 {
		return -1
	}
	n := (m.width - 2*scrollMarkerW) / tileOuterWidth
	if n < 1 {
		return 1
	}
	return n
}

func overlayImageLabel(src string) string {
	if src == grid.PlaceholderImage {
		return placeholderTag
	}
	return imageLabel(src)
}

// imageLabel shortens an image source to its last path segment.
func imageLabel(src string) string {
	if src == "" {
		return ""
	}
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		if base := path.Base(u.Path); base != "/" && base != "." {
			return base
		}
	}
	return src
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
