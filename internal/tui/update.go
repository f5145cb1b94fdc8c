package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.seq != m.acSeq || m.input.Value() == "" {
			return m, nil
		}
		return m, m.suggestCmd()

	case suggestionsMsg:
		if msg.seq != m.acSeq {
			return m, nil
		}
		if msg.err != nil {
			m.suggestions = nil
			m.sugSelected = 0
			m.setStatus("Autocomplete error: "+msg.err.Error(), true)
			return m, nil
		}
		m.suggestions = msg.resp.Suggestions
		m.sugSelected = 0
		return m, nil

	case searchDoneMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.setStatus("Search error: "+msg.err.Error(), true)
			return m, nil
		}
		return m, m.applySearchResults(msg.resp)

	case detailsDoneMsg:
		if msg.seq != m.detailsSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.setStatus("Details error: "+msg.err.Error(), true)
			return m, nil
		}
		m.detail = msg.place
		m.refreshDetailView()
		m.setStatus("Details loaded.", false)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blink and friends) goes to the focused
	// text input.
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.input, cmd = m.input.Update(msg)
	case focusFilterEditing:
		m.typeInput, cmd = m.typeInput.Update(msg)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		now := time.Now()
		if !m.lastCtrlC.IsZero() && now.Sub(m.lastCtrlC) < doubleQuitWindow {
			return m, tea.Quit
		}
		m.lastCtrlC = now
		m.setStatus("Press Ctrl+C again to quit", false)
		return m, nil
	}
	m.lastCtrlC = time.Time{}

	switch m.focus {
	case focusSuggestions:
		return m.handleSuggestionsKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	case focusFilters:
		return m.handleFiltersKey(msg)
	case focusFilterEditing:
		return m.handleFilterEditingKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		cmd := m.executeSearch(m.input.Value())
		if cmd != nil {
			m.setFocus(focusResults)
		}
		return m, cmd

	case tea.KeyEsc:
		if len(m.suggestions) > 0 {
			m.suggestions = nil
			m.sugSelected = 0
		} else if len(m.results.Items()) > 0 {
			m.setFocus(focusResults)
		}
		return m, nil

	case tea.KeyDown:
		if len(m.suggestions) > 0 {
			m.setFocus(focusSuggestions)
			m.sugSelected = 0
		} else {
			m.setFocus(focusFilters)
		}
		return m, nil

	case tea.KeyTab:
		m.suggestions = nil
		m.sugSelected = 0
		m.setFocus(focusFilters)
		return m, nil

	case tea.KeyShiftTab:
		m.suggestions = nil
		m.sugSelected = 0
		m.setFocus(focusResults)
		return m, nil
	}

	if msg.String() == "q" && m.input.Value() == "" {
		return m, tea.Quit
	}

	old := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != old {
		m.acSeq++
		if m.input.Value() == "" {
			m.suggestions = nil
			m.sugSelected = 0
		} else {
			return m, tea.Batch(cmd, debounceTick(m.acSeq))
		}
	}
	return m, cmd
}

func (m model) handleSuggestionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.suggestions) == 0 {
		m.setFocus(focusSearch)
		return m, nil
	}

	switch msg.String() {
	case "down", "j":
		if m.sugSelected+1 < len(m.suggestions) {
			m.sugSelected++
		}
	case "up", "k":
		if m.sugSelected > 0 {
			m.sugSelected--
		}
	case "enter":
		if query := suggestionQuery(m.suggestions[m.sugSelected]); query != "" {
			m.input.SetValue(query)
			m.input.CursorEnd()
			cmd := m.executeSearch(query)
			m.setFocus(focusResults)
			return m, cmd
		}
	case "esc":
		m.suggestions = nil
		m.sugSelected = 0
		m.setFocus(focusSearch)
	}
	return m, nil
}

func (m model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.setFocus(focusSearch)
	case "tab":
		m.setFocus(focusSearch)
	case "shift+tab", "f":
		m.setFocus(focusFilters)
	case "down", "j":
		m.results.CursorDown()
		m.syncDetailFromSelection()
	case "up", "k":
		m.results.CursorUp()
		m.syncDetailFromSelection()
	case "enter":
		return m, m.fetchDetails()
	case "g":
		m.detailView.LineUp(3)
	case "G":
		m.detailView.LineDown(3)
	}
	return m, nil
}

func (m model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "/", "shift+tab":
		m.setFocus(focusSearch)
	case "tab":
		m.setFocus(focusResults)
	case "down", "j":
		m.filterCursor = (m.filterCursor + 1) % filterFieldCount
	case "up", "k":
		m.filterCursor = (m.filterCursor + filterFieldCount - 1) % filterFieldCount
	case "enter":
		switch m.filterCursor {
		case filterType:
			m.typeMatches = nil
			m.typeMatchIdx = 0
			m.setFocus(focusFilterEditing)
		case filterRadius:
			m.filters.cycleRadius()
		case filterMinRating:
			m.filters.cycleMinRating()
		case filterPrice:
			m.filters.advancePrice()
		case filterOpenNow:
			m.filters.openNow = !m.filters.openNow
		}
	case "0", "1", "2", "3", "4":
		m.filters.togglePrice(int(msg.String()[0] - '0'))
	}
	return m, nil
}

func (m model) handleFilterEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.typeMatches = nil
		m.typeMatchIdx = 0
		m.setFocus(focusFilters)
		return m, nil

	case tea.KeyEnter:
		if m.typeMatchIdx < len(m.typeMatches) {
			m.typeInput.SetValue(m.typeMatches[m.typeMatchIdx])
			m.typeInput.CursorEnd()
		}
		m.typeMatches = nil
		m.typeMatchIdx = 0
		m.setFocus(focusFilters)
		return m, nil

	case tea.KeyDown, tea.KeyTab:
		if m.typeMatchIdx+1 < len(m.typeMatches) {
			m.typeMatchIdx++
		}
		return m, nil

	case tea.KeyUp:
		if m.typeMatchIdx > 0 {
			m.typeMatchIdx--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.typeInput, cmd = m.typeInput.Update(msg)
	m.typeMatches = matchTypes(m.typeInput.Value(), 6)
	m.typeMatchIdx = 0
	return m, cmd
}
