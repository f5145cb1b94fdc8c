package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/pkg/config"
	"github.com/sushantvema/zupo/internal/render"
)

// Searcher runs the text searches behind the results list.
type Searcher interface {
	Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
}

// Completer powers the suggestion dropdown.
type Completer interface {
	Autocomplete(ctx context.Context, req *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error)
}

// DetailsLoader fills the details pane.
type DetailsLoader interface {
	Details(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error)
}

// Services bundles the backend calls the interface uses.
type Services struct {
	Search   Searcher
	Complete Completer
	Details  DetailsLoader
}

// focus identifies which pane receives key input.
type focus int

const (
	focusSearch focus = iota
	focusSuggestions
	focusResults
	focusFilters
	focusFilterEditing
)

const (
	debounceInterval = 300 * time.Millisecond
	doubleQuitWindow = 500 * time.Millisecond

	searchHeight  = 3
	filterHeight  = 7
	statusHeight  = 1
	minMainHeight = 5

	maxSuggestions = 5
)

// Async responses carry the sequence number of the request that started
// them; anything not matching the current counter is stale and dropped.
type debounceMsg struct{ seq uint64 }

type suggestionsMsg struct {
	seq  uint64
	resp *domain.AutocompleteResponse
	err  error
}

type searchDoneMsg struct {
	seq  uint64
	resp *domain.SearchResponse
	err  error
}

type detailsDoneMsg struct {
	seq   uint64
	place *domain.Place
	err   error
}

type model struct {
	svc Services
	cfg *config.Config

	focus   focus
	width   int
	height  int
	loading bool

	status    string
	statusErr bool
	lastCtrlC time.Time

	input       textinput.Model
	suggestions []domain.Suggestion
	sugSelected int

	filters      filterState
	filterCursor filterField
	typeInput    textinput.Model
	typeMatches  []string
	typeMatchIdx int

	results    list.Model
	detail     *domain.Place
	detailView viewport.Model
	spin       spinner.Model

	sessionToken string
	acSeq        uint64
	searchSeq    uint64
	detailsSeq   uint64

	timeout time.Duration
}

func newModel(svc Services, cfg *config.Config) model {
	input := textinput.New()
	input.Placeholder = "Search places..."
	input.Prompt = "> "
	input.Focus()

	typeInput := textinput.New()
	typeInput.Prompt = ""

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.Title = "Results"
	results.SetShowStatusBar(false)
	results.SetFilteringEnabled(false)
	results.SetShowHelp(false)
	results.DisableQuitKeybindings()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	radius := 5000.0
	if cfg.Location.Radius != nil && *cfg.Location.Radius > 0 {
		radius = *cfg.Location.Radius
	}

	timeout := 10 * time.Second
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return model{
		svc:          svc,
		cfg:          cfg,
		focus:        focusSearch,
		input:        input,
		typeInput:    typeInput,
		filters:      filterState{radius: radius},
		results:      results,
		detailView:   viewport.New(0, 0),
		spin:         spin,
		sessionToken: uuid.NewString(),
		timeout:      timeout,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if f == focusFilterEditing {
		m.typeInput.Focus()
	} else {
		m.typeInput.Blur()
	}
}

func (m *model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m *model) layout() {
	inner := m.width - 2
	if inner < 0 {
		inner = 0
	}
	m.input.Width = inner - len(m.input.Prompt) - 1

	mainHeight := m.mainHeight()
	resultsWidth := m.width * 45 / 100
	detailsWidth := m.width - resultsWidth

	m.results.SetSize(resultsWidth-2, mainHeight-2)
	m.detailView.Width = detailsWidth - 2
	m.detailView.Height = mainHeight - 2
	m.refreshDetailView()
}

func (m *model) mainHeight() int {
	h := m.height - searchHeight - filterHeight - statusHeight
	if h < minMainHeight {
		h = minMainHeight
	}
	return h
}

func debounceTick(seq uint64) tea.Cmd {
	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *model) suggestCmd() tea.Cmd {
	seq := m.acSeq
	req := &domain.AutocompleteRequest{
		Input:        m.input.Value(),
		SessionToken: m.sessionToken,
		Location:     m.locationBias(),
		Limit:        maxSuggestions,
	}
	svc := m.svc.Complete
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := svc.Autocomplete(ctx, req)
		return suggestionsMsg{seq: seq, resp: resp, err: err}
	}
}

// executeSearch starts a text search for query. Pending suggestions are
// invalidated and the autocomplete session rotates, since a search ends
// the typing session the token was billing against.
func (m *model) executeSearch(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	m.acSeq++
	m.suggestions = nil
	m.sugSelected = 0
	m.loading = true
	m.setStatus("Searching...", false)
	m.sessionToken = uuid.NewString()

	req := m.buildSearchRequest(query)
	m.searchSeq++
	seq := m.searchSeq
	svc := m.svc.Search
	timeout := m.timeout
	search := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := svc.Search(ctx, req)
		return searchDoneMsg{seq: seq, resp: resp, err: err}
	}
	return tea.Batch(search, m.spin.Tick)
}

func (m *model) buildSearchRequest(query string) *domain.SearchRequest {
	return &domain.SearchRequest{
		Query:        query,
		IncludedType: strings.TrimSpace(m.typeInput.Value()),
		MinRating:    m.filters.minRating,
		PriceLevels:  m.filters.priceLevelsAPI(),
		OpenNow:      m.filters.openNow,
		Location:     m.locationBias(),
		Limit:        10,
	}
}

func (m *model) fetchDetails() tea.Cmd {
	place := m.selectedPlace()
	if place == nil || place.ID == "" {
		return nil
	}

	m.loading = true
	m.setStatus("Loading details...", false)

	req := &domain.DetailsRequest{PlaceID: place.ID, IncludeReviews: true}
	m.detailsSeq++
	seq := m.detailsSeq
	svc := m.svc.Details
	timeout := m.timeout
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p, err := svc.Details(ctx, req)
		return detailsDoneMsg{seq: seq, place: p, err: err}
	}
	return tea.Batch(fetch, m.spin.Tick)
}

func (m *model) locationBias() *domain.Circle {
	if !m.cfg.HasLocation() {
		return nil
	}
	return &domain.Circle{
		Center: domain.GeoPoint{Lat: *m.cfg.Location.Lat, Lng: *m.cfg.Location.Lng},
		Radius: m.filters.radius,
	}
}

func (m *model) selectedPlace() *domain.Place {
	item, ok := m.results.SelectedItem().(placeItem)
	if !ok {
		return nil
	}
	return &item.place
}

func (m *model) syncDetailFromSelection() {
	if p := m.selectedPlace(); p != nil {
		m.detail = p
		m.refreshDetailView()
	}
}

func (m *model) applySearchResults(resp *domain.SearchResponse) tea.Cmd {
	if resp == nil || len(resp.Places) == 0 {
		m.setStatus("No results found.", false)
		m.detail = nil
		m.results.Title = "Results"
		m.refreshDetailView()
		return m.results.SetItems(nil)
	}

	items := make([]list.Item, len(resp.Places))
	for i, p := range resp.Places {
		items[i] = placeItem{place: p}
	}
	m.setStatus(fmt.Sprintf("%d results", len(items)), false)
	m.results.Title = fmt.Sprintf("Results (%d)", len(items))
	cmd := m.results.SetItems(items)
	m.results.Select(0)
	m.detail = &resp.Places[0]
	m.refreshDetailView()
	return cmd
}

// placeItem adapts a place to the results list.
type placeItem struct{ place domain.Place }

func (i placeItem) Title() string {
	title := i.place.Name()
	if t := primaryType(&i.place); t != "" {
		title += "  · " + t
	}
	return title
}

func (i placeItem) Description() string {
	var parts []string
	if i.place.Rating > 0 {
		parts = append(parts, fmt.Sprintf("%s %.1f (%d)", render.Stars(i.place.Rating), i.place.Rating, i.place.UserRatingCount))
	}
	if i.place.PriceLevel != "" {
		parts = append(parts, domain.PriceLevelDisplay(i.place.PriceLevel))
	}
	if addr := firstNonEmpty(i.place.FormattedAddress, i.place.ShortFormattedAddress); addr != "" {
		parts = append(parts, addr)
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, "  ·  ")
}

func (i placeItem) FilterValue() string { return i.place.Name() }

func primaryType(p *domain.Place) string {
	if p.PrimaryTypeDisplayName != nil && p.PrimaryTypeDisplayName.Text != "" {
		return p.PrimaryTypeDisplayName.Text
	}
	return p.PrimaryType
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func suggestionQuery(s domain.Suggestion) string {
	switch {
	case s.PlacePrediction != nil && s.PlacePrediction.Text != nil:
		return s.PlacePrediction.Text.Text
	case s.QueryPrediction != nil && s.QueryPrediction.Text != nil:
		return s.QueryPrediction.Text.Text
	}
	return ""
}
