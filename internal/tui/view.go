package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/render"
)

var (
	dimBorder    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	cyanBorder   = dimBorder.Copy().BorderForeground(lipgloss.Color("6"))
	yellowBorder = dimBorder.Copy().BorderForeground(lipgloss.Color("3"))

	labelStyle  = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	pickedStyle = lipgloss.NewStyle().Reverse(true)
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	sections := []string{m.searchView()}
	if len(m.suggestions) > 0 && m.input.Value() != "" {
		sections = append(sections, m.suggestionsView())
	} else {
		sections = append(sections, m.filterView())
	}
	sections = append(sections, m.mainView(), m.statusView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) searchView() string {
	style := dimBorder
	if m.focus == focusSearch {
		style = cyanBorder
	}
	return style.Copy().Width(m.width - 2).Render(m.input.View())
}

// suggestionsView takes the filter panel's rows while the dropdown is
// open, keeping the overall layout height fixed.
func (m model) suggestionsView() string {
	rows := make([]string, 0, maxSuggestions)
	for i, s := range m.suggestions {
		if i >= maxSuggestions {
			break
		}
		line := suggestionLine(s)
		if m.focus == focusSuggestions && i == m.sugSelected {
			line = pickedStyle.Render(line)
		}
		rows = append(rows, line)
	}
	for len(rows) < maxSuggestions {
		rows = append(rows, "")
	}
	return yellowBorder.Copy().Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

func suggestionLine(s domain.Suggestion) string {
	if pp := s.PlacePrediction; pp != nil {
		var main, secondary string
		if pp.StructuredFormat != nil {
			if pp.StructuredFormat.MainText != nil {
				main = pp.StructuredFormat.MainText.Text
			}
			if pp.StructuredFormat.SecondaryText != nil {
				secondary = pp.StructuredFormat.SecondaryText.Text
			}
		}
		if main == "" && pp.Text != nil {
			main = pp.Text.Text
		}
		if secondary != "" {
			return main + "  · " + secondary
		}
		return main
	}
	if qp := s.QueryPrediction; qp != nil && qp.Text != nil {
		return "search: " + qp.Text.Text
	}
	return ""
}

func (m model) filterView() string {
	focused := m.focus == focusFilters || m.focus == focusFilterEditing

	rows := []string{
		m.typeRow(),
		m.radiusRow(),
		m.minRatingRow(),
		m.priceRow(),
		m.openNowRow(),
	}
	for i := range rows {
		cursor := "  "
		if focused && filterField(i) == m.filterCursor {
			cursor = yellowStyle.Render("▶ ")
		}
		rows[i] = cursor + rows[i]
	}

	style := dimBorder
	if focused {
		style = yellowBorder
	}
	return style.Copy().Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

func (m model) typeRow() string {
	label := labelStyle.Render("Type:       ")
	if m.focus == focusFilterEditing {
		row := label + m.typeInput.View()
		if len(m.typeMatches) > 0 {
			parts := make([]string, len(m.typeMatches))
			for i, t := range m.typeMatches {
				if i == m.typeMatchIdx {
					parts[i] = pickedStyle.Render(t)
				} else {
					parts[i] = dimStyle.Render(t)
				}
			}
			row += "  " + strings.Join(parts, " ")
		}
		return row
	}
	if v := strings.TrimSpace(m.typeInput.Value()); v != "" {
		return label + cyanStyle.Render(v)
	}
	return label + dimStyle.Render("any (e.g. restaurant, cafe, bar)")
}

func (m model) radiusRow() string {
	display := fmt.Sprintf("%.0f m", m.filters.radius)
	if m.filters.radius >= 1000 {
		display = fmt.Sprintf("%.0f km", m.filters.radius/1000)
	}
	return labelStyle.Render("Radius:     ") + cyanStyle.Render(display) + dimStyle.Render("  (Enter to cycle)")
}

func (m model) minRatingRow() string {
	display := dimStyle.Render("any")
	if m.filters.minRating > 0 {
		display = yellowStyle.Render(fmt.Sprintf("%.1f+", m.filters.minRating))
	}
	return labelStyle.Render("Min Rating: ") + display + dimStyle.Render("  (Enter to cycle)")
}

func (m model) priceRow() string {
	label := labelStyle.Render("Price:      ")

	active := false
	for _, v := range m.filters.priceLevels {
		if v {
			active = true
			break
		}
	}
	if !active {
		return label + dimStyle.Render("any  (0-4 to toggle)")
	}

	tiers := []string{"Free", "$", "$$", "$$$", "$$$$"}
	parts := make([]string, len(tiers))
	for i, t := range tiers {
		if m.filters.priceLevels[i] {
			parts[i] = greenStyle.Render("[" + t + "]")
		} else {
			parts[i] = dimStyle.Render(" " + t + " ")
		}
	}
	return label + strings.Join(parts, " ")
}

func (m model) openNowRow() string {
	display := dimStyle.Render("No")
	if m.filters.openNow {
		display = greenStyle.Render("Yes")
	}
	return labelStyle.Render("Open Now:   ") + display + dimStyle.Render("  (Enter to toggle)")
}

func (m model) mainView() string {
	mainHeight := m.mainHeight()
	resultsWidth := m.width * 45 / 100
	detailsWidth := m.width - resultsWidth

	resultsStyle := dimBorder
	if m.focus == focusResults {
		resultsStyle = cyanBorder
	}

	left := m.results.View()
	if len(m.results.Items()) == 0 {
		left = dimStyle.Render("No results yet. Type a query and press Enter.")
	}

	leftBox := resultsStyle.Copy().Width(resultsWidth - 2).Height(mainHeight - 2).Render(left)
	rightBox := dimBorder.Copy().Width(detailsWidth - 2).Height(mainHeight - 2).Render(m.detailView.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
}

func (m model) statusView() string {
	var hints string
	switch m.focus {
	case focusSuggestions:
		hints = "j/↓: next  k/↑: prev  Enter: select  Esc: back"
	case focusResults:
		hints = "j/k: move  Enter: details  g/G: scroll details  /: search  Tab: cycle  q: quit"
	case focusFilters:
		hints = "j/k: navigate  Enter: edit/toggle  0-4: price  Tab: results  /: search"
	case focusFilterEditing:
		hints = "type a value  Enter/Esc: confirm"
	default:
		hints = "Enter: search  Tab: filters  ↓: suggestions  Esc: results"
	}

	parts := []string{dimStyle.Render(" " + hints + " ")}
	if m.status != "" {
		style := yellowStyle
		if m.statusErr {
			style = redStyle
		}
		parts = append(parts, dimStyle.Render("│")+" "+style.Render(m.status))
	}
	if m.loading {
		parts = append(parts, yellowStyle.Render(m.spin.View()))
	}
	return strings.Join(parts, " ")
}

func (m *model) refreshDetailView() {
	if m.detail == nil {
		m.detailView.SetContent(dimStyle.Render("Select a place to view details."))
		return
	}
	width := m.detailView.Width
	if width <= 0 {
		width = 40
	}
	m.detailView.SetContent(lipgloss.NewStyle().Width(width).Render(detailContent(m.detail)))
	m.detailView.GotoTop()
}

func detailContent(p *domain.Place) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Name()) + "\n")
	if p.PrimaryTypeDisplayName != nil && p.PrimaryTypeDisplayName.Text != "" {
		b.WriteString(dimStyle.Render(p.PrimaryTypeDisplayName.Text) + "\n")
	}
	b.WriteString("\n")

	if p.Rating > 0 {
		b.WriteString(labelStyle.Render("Rating: ") + yellowStyle.Render(render.Stars(p.Rating)) + fmt.Sprintf(" %.1f (%d reviews)\n", p.Rating, p.UserRatingCount))
	}
	if p.PriceLevel != "" {
		b.WriteString(labelStyle.Render("Price: ") + domain.PriceLevelDisplay(p.PriceLevel) + "\n")
	}
	if p.BusinessStatus != "" {
		status := redStyle.Render(p.BusinessStatus)
		if p.BusinessStatus == "OPERATIONAL" {
			status = greenStyle.Render("Open")
		}
		b.WriteString(labelStyle.Render("Status: ") + status + "\n")
	}
	if p.FormattedAddress != "" {
		b.WriteString(labelStyle.Render("Address: ") + p.FormattedAddress + "\n")
	}
	if p.Location != nil {
		b.WriteString(labelStyle.Render("Location: ") + fmt.Sprintf("%v, %v", p.Location.Lat, p.Location.Lng) + "\n")
	}
	if phone := firstNonEmpty(p.InternationalPhone, p.NationalPhoneNumber); phone != "" {
		b.WriteString(labelStyle.Render("Phone: ") + phone + "\n")
	}
	if p.WebsiteURI != "" {
		b.WriteString(labelStyle.Render("Website: ") + p.WebsiteURI + "\n")
	}
	if p.GoogleMapsURI != "" {
		b.WriteString(labelStyle.Render("Maps: ") + p.GoogleMapsURI + "\n")
	}

	if p.EditorialSummary != nil && p.EditorialSummary.Text != "" {
		b.WriteString("\n" + labelStyle.Render("Summary") + "\n" + p.EditorialSummary.Text + "\n")
	}

	writeDetailHours(&b, p)
	writeDetailReviews(&b, p.Reviews)

	if len(p.Photos) > 0 {
		b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("Photos (%d)", len(p.Photos))) + "\n")
		for i, ph := range p.Photos {
			if i >= 3 {
				break
			}
			b.WriteString(dimStyle.Render(ph.Name) + "\n")
		}
	}

	if p.ID != "" {
		b.WriteString("\n" + dimStyle.Render("Place ID: "+p.ID) + "\n")
	}

	return b.String()
}

func writeDetailHours(b *strings.Builder, p *domain.Place) {
	if p.CurrentOpeningHours != nil && p.CurrentOpeningHours.OpenNow != nil {
		status := redStyle.Render("Closed")
		if *p.CurrentOpeningHours.OpenNow {
			status = greenStyle.Render("Open now")
		}
		b.WriteString("\n" + labelStyle.Render("Hours: ") + status + "\n")
	}
	hours := p.CurrentOpeningHours
	if hours == nil {
		hours = p.RegularOpeningHours
	}
	if hours != nil {
		for _, d := range hours.WeekdayDescriptions {
			b.WriteString("  " + dimStyle.Render(d) + "\n")
		}
	}
}

func writeDetailReviews(b *strings.Builder, reviews []domain.Review) {
	if len(reviews) == 0 {
		return
	}
	b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("Reviews (%d)", len(reviews))) + "\n")
	shown := reviews
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for i, r := range shown {
		author := "Anonymous"
		if r.AuthorAttribution != nil && r.AuthorAttribution.DisplayName != "" {
			author = r.AuthorAttribution.DisplayName
		}
		b.WriteString(fmt.Sprintf("%d. ", i+1) + labelStyle.Render(author) + " " + yellowStyle.Render(render.Stars(r.Rating)) + " " + dimStyle.Render(r.RelativePublishTime) + "\n")
		if r.Text != nil && r.Text.Text != "" {
			b.WriteString("   " + truncateRunes(r.Text.Text, 200) + "\n")
		}
	}
	if len(reviews) > 3 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more reviews", len(reviews)-3)) + "\n")
	}
}
