// Package render writes human-readable command output. All functions
// take an io.Writer so the CLI can point them at stdout and tests at a
// buffer.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/sushantvema/zupo/internal/core/domain"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	name   = color.New(color.FgCyan, color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// JSON writes v as indented JSON, bypassing all formatting above.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Places writes a numbered summary list, used by search, nearby, and
// resolve output.
func Places(w io.Writer, places []domain.Place, title string) {
	if len(places) == 0 {
		fmt.Fprintln(w, yellow("No results found."))
		return
	}

	fmt.Fprintf(w, "%s %s %s\n\n", bold(title), dim(fmt.Sprintf("(%d)", len(places))), dim(strings.Repeat("─", 40)))

	for i, p := range places {
		placeSummary(w, i+1, &p)
	}
}

func placeSummary(w io.Writer, index int, p *domain.Place) {
	fmt.Fprintf(w, "  %s %s", dim(fmt.Sprintf("%d.", index)), name(p.Name()))
	if t := primaryType(p); t != "" {
		fmt.Fprintf(w, "  %s", dim(t))
	}
	fmt.Fprintln(w)

	var meta []string
	if p.Rating > 0 {
		meta = append(meta, fmt.Sprintf("%s %.1f (%d)", yellow(Stars(p.Rating)), p.Rating, p.UserRatingCount))
	}
	if p.PriceLevel != "" {
		meta = append(meta, domain.PriceLevelDisplay(p.PriceLevel))
	}
	if p.BusinessStatus != "" && p.BusinessStatus != "OPERATIONAL" {
		meta = append(meta, red(p.BusinessStatus))
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "     %s\n", strings.Join(meta, "  ·  "))
	}

	if p.FormattedAddress != "" {
		fmt.Fprintf(w, "     %s\n", dim(p.FormattedAddress))
	}
	if p.EditorialSummary != nil && p.EditorialSummary.Text != "" {
		fmt.Fprintf(w, "     %s\n", p.EditorialSummary.Text)
	}
	if p.ID != "" {
		fmt.Fprintf(w, "     %s %s\n", dim("ID:"), dim(p.ID))
	}
	fmt.Fprintln(w)
}

// PlaceDetails writes the full detail sheet for a single place.
func PlaceDetails(w io.Writer, p *domain.Place) {
	rule := dim(strings.Repeat("━", 60))

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", name(p.Name()))
	if p.PrimaryTypeDisplayName != nil && p.PrimaryTypeDisplayName.Text != "" {
		fmt.Fprintf(w, "  %s\n", dim(p.PrimaryTypeDisplayName.Text))
	}
	fmt.Fprintln(w, rule)

	if p.Rating > 0 {
		fmt.Fprintf(w, "  %s %s %.1f %s\n", bold("Rating:"), yellow(Stars(p.Rating)), p.Rating, dim(fmt.Sprintf("(%d reviews)", p.UserRatingCount)))
	}
	if p.PriceLevel != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Price:"), domain.PriceLevelDisplay(p.PriceLevel))
	}
	if p.BusinessStatus != "" {
		status := red(p.BusinessStatus)
		if p.BusinessStatus == "OPERATIONAL" {
			status = green("Open")
		}
		fmt.Fprintf(w, "  %s %s\n", bold("Status:"), status)
	}
	if p.FormattedAddress != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Address:"), p.FormattedAddress)
	}
	if p.Location != nil {
		fmt.Fprintf(w, "  %s %v, %v\n", bold("Location:"), p.Location.Lat, p.Location.Lng)
	}
	if phone := firstNonEmpty(p.InternationalPhone, p.NationalPhoneNumber); phone != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Phone:"), phone)
	}
	if p.WebsiteURI != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Website:"), p.WebsiteURI)
	}
	if p.GoogleMapsURI != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Maps:"), p.GoogleMapsURI)
	}

	if p.EditorialSummary != nil && p.EditorialSummary.Text != "" {
		fmt.Fprintf(w, "\n  %s\n  %s\n", bold("Summary"), p.EditorialSummary.Text)
	}

	renderHours(w, p)
	renderReviews(w, p.Reviews)
	renderPhotos(w, p.Photos)

	if p.ID != "" {
		fmt.Fprintf(w, "\n  %s %s\n", dim("Place ID:"), dim(p.ID))
	}
	fmt.Fprintln(w)
}

func renderHours(w io.Writer, p *domain.Place) {
	if p.CurrentOpeningHours != nil && p.CurrentOpeningHours.OpenNow != nil {
		status := red("Closed")
		if *p.CurrentOpeningHours.OpenNow {
			status = green("Open now")
		}
		fmt.Fprintf(w, "\n  %s %s\n", bold("Hours:"), status)
	}
	hours := p.CurrentOpeningHours
	if hours == nil {
		hours = p.RegularOpeningHours
	}
	if hours != nil {
		for _, desc := range hours.WeekdayDescriptions {
			fmt.Fprintf(w, "    %s\n", dim(desc))
		}
	}
}

func renderReviews(w io.Writer, reviews []domain.Review) {
	if len(reviews) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  %s %s\n", bold("Reviews"), dim(fmt.Sprintf("(%d)", len(reviews))))
	shown := reviews
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for i, r := range shown {
		author := "Anonymous"
		if r.AuthorAttribution != nil && r.AuthorAttribution.DisplayName != "" {
			author = r.AuthorAttribution.DisplayName
		}
		fmt.Fprintf(w, "    %d. %s %s %s\n", i+1, bold(author), yellow(Stars(r.Rating)), dim(r.RelativePublishTime))
		if r.Text != nil && r.Text.Text != "" {
			fmt.Fprintf(w, "       %s\n", truncate(r.Text.Text, 200))
		}
	}
	if len(reviews) > 3 {
		fmt.Fprintf(w, "    %s\n", dim(fmt.Sprintf("... and %d more reviews", len(reviews)-3)))
	}
}

func renderPhotos(w io.Writer, photos []domain.Photo) {
	if len(photos) == 0 {
		return
	}
	fmt.Fprintf(w, "\n  %s %s\n", bold("Photos"), dim(fmt.Sprintf("(%d)", len(photos))))
	shown := photos
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for _, ph := range shown {
		fmt.Fprintf(w, "    %s\n", dim(ph.Name))
		for _, a := range ph.AuthorAttributions {
			if a.DisplayName != "" {
				fmt.Fprintf(w, "      %s\n", dim("by "+a.DisplayName))
			}
		}
	}
	if len(photos) > 3 {
		fmt.Fprintf(w, "    %s\n", dim(fmt.Sprintf("... and %d more photos", len(photos)-3)))
	}
}

// Autocomplete writes place and query predictions as a numbered list.
func Autocomplete(w io.Writer, resp *domain.AutocompleteResponse) {
	if resp == nil || len(resp.Suggestions) == 0 {
		fmt.Fprintln(w, yellow("No suggestions found."))
		return
	}

	fmt.Fprintf(w, "%s %s %s\n\n", bold("Suggestions"), dim(fmt.Sprintf("(%d)", len(resp.Suggestions))), dim(strings.Repeat("─", 40)))

	for i, s := range resp.Suggestions {
		prefix := dim(fmt.Sprintf("%d.", i+1))
		switch {
		case s.PlacePrediction != nil:
			renderPlacePrediction(w, prefix, s.PlacePrediction)
		case s.QueryPrediction != nil:
			fmt.Fprintf(w, "  %s %s %s\n", prefix, name(formattedText(s.QueryPrediction.Text)), dim("(query)"))
		}
		fmt.Fprintln(w)
	}
}

func renderPlacePrediction(w io.Writer, prefix string, p *domain.PlacePrediction) {
	main := formattedText(p.Text)
	var secondary string
	if p.StructuredFormat != nil {
		if t := formattedText(p.StructuredFormat.MainText); t != "" {
			main = t
		}
		secondary = formattedText(p.StructuredFormat.SecondaryText)
	}

	fmt.Fprintf(w, "  %s %s", prefix, name(main))
	if secondary != "" {
		fmt.Fprintf(w, "  %s", dim(secondary))
	}
	if len(p.Types) > 0 {
		shown := p.Types
		if len(shown) > 2 {
			shown = shown[:2]
		}
		fmt.Fprintf(w, "  %s", dim("["+strings.Join(shown, ", ")+"]"))
	}
	fmt.Fprintln(w)
	if p.PlaceID != "" {
		fmt.Fprintf(w, "     %s %s\n", dim("ID:"), dim(p.PlaceID))
	}
}

// PhotoMedia writes the resolved photo name and URI. savedPath, when
// non-empty, notes where the downloaded bytes were written.
func PhotoMedia(w io.Writer, media *domain.PhotoMedia, savedPath string) {
	fmt.Fprintln(w, bold("Photo"))
	if media.Name != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Name:"), media.Name)
	}
	fmt.Fprintf(w, "  %s %s\n", bold("URL:"), media.PhotoURI)
	if savedPath != "" {
		fmt.Fprintf(w, "  %s %s\n", bold("Saved:"), green(savedPath))
	}
}

// RouteOutcome writes the per-waypoint results of a route search.
func RouteOutcome(w io.Writer, outcome *domain.RouteSearchOutcome) {
	fmt.Fprintf(w, "%s %s %s %s %s %s\n\n",
		bold("Route"), name(outcome.From), dim("→"), name(outcome.To),
		dim("("+outcome.TravelMode+")"),
		dim(fmt.Sprintf("─ %d waypoints", len(outcome.Waypoints))))

	for _, wp := range outcome.Waypoints {
		fmt.Fprintf(w, "  %s [%.4f, %.4f]\n", yellow(fmt.Sprintf("Waypoint %d", wp.WaypointIndex+1)), wp.Waypoint.Lat, wp.Waypoint.Lng)

		if len(wp.Places) == 0 {
			fmt.Fprintf(w, "    %s\n", dim("(no places found)"))
		}
		for j, p := range wp.Places {
			fmt.Fprintf(w, "    %s %s", dim(fmt.Sprintf("%d.", j+1)), name(p.Name()))
			if p.Rating > 0 {
				fmt.Fprintf(w, "  %s", yellow(Stars(p.Rating)))
			}
			fmt.Fprintln(w)
			if addr := firstNonEmpty(p.ShortFormattedAddress, p.FormattedAddress); addr != "" {
				fmt.Fprintf(w, "       %s\n", dim(addr))
			}
		}
		fmt.Fprintln(w)
	}
}

// Stars renders a 0-5 rating as five star runes. Fractional parts in
// [0.25, 0.75) show a half star; 0.75 and above round up.
func Stars(rating float64) string {
	full := int(rating)
	frac := rating - float64(full)
	half := 0
	switch {
	case frac >= 0.75:
		full++
	case frac >= 0.25:
		half = 1
	}
	if full > 5 {
		full = 5
		half = 0
	}
	empty := 5 - full - half
	return strings.Repeat("★", full) + strings.Repeat("⯪", half) + strings.Repeat("☆", empty)
}

func primaryType(p *domain.Place) string {
	if p.PrimaryTypeDisplayName != nil && p.PrimaryTypeDisplayName.Text != "" {
		return p.PrimaryTypeDisplayName.Text
	}
	return p.PrimaryType
}

func formattedText(t *domain.FormattedText) string {
	if t == nil {
		return ""
	}
	return t.Text
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
