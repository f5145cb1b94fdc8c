package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/sushantvema/zupo/internal/adapters/googleapi"
	"github.com/sushantvema/zupo/internal/adapters/ipapi"
	valkeyadapter "github.com/sushantvema/zupo/internal/adapters/valkey"
	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/core/ports"
	"github.com/sushantvema/zupo/internal/core/usecases"
	"github.com/sushantvema/zupo/internal/pkg/config"
	"github.com/sushantvema/zupo/internal/pkg/logging"
	"github.com/sushantvema/zupo/internal/pkg/metrics"
	"github.com/sushantvema/zupo/internal/pkg/telemetry"
	"github.com/sushantvema/zupo/internal/render"
	"github.com/sushantvema/zupo/internal/tui"
)

func main() {
	// Load .env if present; absence is fine.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "help", "--help", "-h":
		printUsage()
		return
	case "version", "--version":
		fmt.Println("zupo " + version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, "text")

	app := &app{cfg: cfg, locator: ipapi.New()}

	var run func([]string) error
	switch cmd {
	case "search":
		run = app.runSearch
	case "autocomplete":
		run = app.runAutocomplete
	case "nearby":
		run = app.runNearby
	case "route":
		run = app.runRoute
	case "details":
		run = app.runDetails
	case "photo":
		run = app.runPhoto
	case "resolve":
		run = app.runResolve
	case "config":
		run = app.runConfig
	case "tui":
		run = app.runTUI
	case "metrics":
		run = app.runMetrics
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(2)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if domain.IsValidation(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var version = "dev"

// app carries loaded configuration and the global flag values shared by
// every subcommand.
type app struct {
	cfg     *config.Config
	locator ports.Geolocator

	apiKey        string
	jsonOut       bool
	noColor       bool
	timeout       int
	autoLocate    bool
	baseURL       string
	routesBaseURL string
}

// globalFlags registers the flags every subcommand accepts.
func (a *app) globalFlags(fs *flag.FlagSet) {
	fs.StringVar(&a.apiKey, "api-key", a.cfg.APIKey, "Google Places API key (or set GOOGLE_PLACES_API_KEY)")
	fs.BoolVar(&a.jsonOut, "json", false, "output raw JSON instead of formatted text")
	fs.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	fs.IntVar(&a.timeout, "timeout", a.cfg.Timeout, "HTTP timeout in seconds")
	fs.BoolVar(&a.autoLocate, "auto-locate", false, "detect location via IP when no --lat/--lng or saved default")
	fs.StringVar(&a.baseURL, "base-url", a.cfg.PlacesBaseURL, "override Places API base URL")
	fs.StringVar(&a.routesBaseURL, "routes-base-url", a.cfg.RoutesBaseURL, "override Routes API base URL")
}

func (a *app) parse(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		return &domain.ValidationError{Field: "flags", Message: err.Error()}
	}
	if a.noColor {
		color.NoColor = true
	}
	return nil
}

// client builds the API client and, when tracing is configured, starts the
// tracer. The returned cleanup flushes spans and must run before exit.
func (a *app) client(ctx context.Context) (*googleapi.Client, func(), error) {
	cleanup := func() {}
	if a.cfg.Tracing.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, "zupo", a.cfg.Tracing.Endpoint)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			cleanup = shutdown
		}
	}

	opts := []googleapi.Option{
		googleapi.WithTimeout(time.Duration(a.timeout) * time.Second),
	}
	if a.baseURL != "" {
		opts = append(opts, googleapi.WithPlacesBaseURL(a.baseURL))
	}
	if a.routesBaseURL != "" {
		opts = append(opts, googleapi.WithRoutesBaseURL(a.routesBaseURL))
	}

	client, err := googleapi.New(a.apiKey, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}

// cache connects to valkey when an address is configured. Failure logs a
// warning and returns a nil interface so the services run uncached.
func (a *app) cache() (ports.CacheService, func()) {
	if a.cfg.Cache.Addr == "" {
		return nil, func() {}
	}
	c, err := valkeyadapter.New(a.cfg.Cache.Addr)
	if err != nil {
		slog.Warn("cache unavailable", "addr", a.cfg.Cache.Addr, "error", err)
		return nil, func() {}
	}
	return c, c.Close
}

// resolveLocation applies the precedence explicit flags > saved config
// default > IP geolocation (only with --auto-locate). Returns nil when no
// source yields a location.
func (a *app) resolveLocation(ctx context.Context, lat, lng float64, latSet, lngSet bool) *domain.GeoPoint {
	if latSet && lngSet {
		return &domain.GeoPoint{Lat: lat, Lng: lng}
	}

	if a.cfg.HasLocation() {
		label := a.cfg.Location.Label
		if label == "" {
			label = "config"
		}
		fmt.Fprintln(os.Stderr, dim(fmt.Sprintf("Using saved location (%s) [%.4f, %.4f]",
			label, *a.cfg.Location.Lat, *a.cfg.Location.Lng)))
		return &domain.GeoPoint{Lat: *a.cfg.Location.Lat, Lng: *a.cfg.Location.Lng}
	}

	if a.autoLocate {
		fmt.Fprintln(os.Stderr, dim("Auto-detecting location via IP..."))
		geo, err := a.locator.Locate(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, warn(fmt.Sprintf("Auto-locate failed: %v", err)))
			return nil
		}
		fmt.Fprintln(os.Stderr, dim(fmt.Sprintf("Detected: %s [%.4f, %.4f]",
			geo.Description, geo.Lat, geo.Lng)))
		return &domain.GeoPoint{Lat: geo.Lat, Lng: geo.Lng}
	}

	return nil
}

// resolveRadius applies the precedence explicit flag > saved config
// default > per-command fallback.
func (a *app) resolveRadius(explicit float64, explicitSet bool, fallback float64) float64 {
	if explicitSet {
		return explicit
	}
	if a.cfg.Location.Radius != nil {
		return *a.cfg.Location.Radius
	}
	return fallback
}

var (
	dim  = color.New(color.Faint).SprintFunc()
	warn = color.New(color.FgYellow).SprintFunc()
)

// flagWasSet reports whether the named flag appeared on the command line.
// flag has no native Optional type, so presence is tracked by visitation.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// splitCSV splits a comma-separated flag value, dropping empty segments.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePriceLevels converts a csv of 0-4 tiers to API enum values.
func parsePriceLevels(csv string) ([]string, error) {
	var levels []string
	for _, part := range splitCSV(csv) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, &domain.ValidationError{Field: "price-level", Message: fmt.Sprintf("invalid price level %q: must be 0-4", part)}
		}
		api := domain.PriceLevelToAPI(n)
		if api == "" {
			return nil, &domain.ValidationError{Field: "price-level", Message: fmt.Sprintf("invalid price level %d: must be 0-4", n)}
		}
		levels = append(levels, api)
	}
	return levels, nil
}

func (a *app) runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		query      string
		placeType  = fs.String("type", "", "filter by place type (e.g. restaurant, cafe)")
		minRating  = fs.Float64("min-rating", 0, "minimum rating (0.0-5.0)")
		priceLevel = fs.String("price-level", "", "price levels, csv of 0-4 (0=Free, 4=$$$$)")
		openNow    = fs.Bool("open-now", false, "only places currently open")
		lat        = fs.Float64("lat", 0, "latitude for location bias")
		lng        = fs.Float64("lng", 0, "longitude for location bias")
		radius     = fs.Float64("radius", 0, "radius in meters for location bias")
		limit      = fs.Int("limit", 10, "maximum number of results (1-20)")
		lang       = fs.String("lang", "", "BCP-47 language code (e.g. en, de, ja)")
		region     = fs.String("region", "", "CLDR region code (e.g. US, AT, JP)")
	)
	fs.StringVar(&query, "query", "", "search query (required)")
	fs.StringVar(&query, "q", "", "search query (shorthand)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if query == "" {
		return &domain.ValidationError{Field: "query", Message: "required: use --query or -q"}
	}

	levels, err := parsePriceLevels(*priceLevel)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	cache, closeCache := a.cache()
	defer closeCache()

	req := &domain.SearchRequest{
		Query:        query,
		IncludedType: *placeType,
		MinRating:    *minRating,
		PriceLevels:  levels,
		OpenNow:      *openNow,
		Limit:        *limit,
		Language:     *lang,
		Region:       *region,
	}
	if pt := a.resolveLocation(ctx, *lat, *lng, flagWasSet(fs, "lat"), flagWasSet(fs, "lng")); pt != nil {
		req.Location = &domain.Circle{
			Center: *pt,
			Radius: a.resolveRadius(*radius, flagWasSet(fs, "radius"), 5000),
		}
	}

	resp, err := usecases.NewSearchService(client, cache).Search(ctx, req)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return render.JSON(os.Stdout, resp)
	}
	render.Places(os.Stdout, resp.Places, "Search Results")
	return nil
}

func (a *app) runAutocomplete(args []string) error {
	fs := flag.NewFlagSet("autocomplete", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		input        string
		sessionToken = fs.String("session-token", "", "session token for billing optimization")
		lat          = fs.Float64("lat", 0, "latitude for location bias")
		lng          = fs.Float64("lng", 0, "longitude for location bias")
		radius       = fs.Float64("radius", 0, "radius in meters for location bias")
		limit        = fs.Int("limit", 5, "maximum number of suggestions")
		lang         = fs.String("lang", "", "BCP-47 language code")
		region       = fs.String("region", "", "CLDR region code")
	)
	fs.StringVar(&input, "input", "", "input text (required)")
	fs.StringVar(&input, "i", "", "input text (shorthand)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if input == "" {
		return &domain.ValidationError{Field: "input", Message: "required: use --input or -i"}
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	req := &domain.AutocompleteRequest{
		Input:        input,
		SessionToken: *sessionToken,
		Limit:        *limit,
		Language:     *lang,
		Region:       *region,
	}
	if pt := a.resolveLocation(ctx, *lat, *lng, flagWasSet(fs, "lat"), flagWasSet(fs, "lng")); pt != nil {
		req.Location = &domain.Circle{
			Center: *pt,
			Radius: a.resolveRadius(*radius, flagWasSet(fs, "radius"), 5000),
		}
	}

	resp, err := usecases.NewAutocompleteService(client).Autocomplete(ctx, req)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return render.JSON(os.Stdout, resp)
	}
	render.Autocomplete(os.Stdout, resp)
	return nil
}

func (a *app) runNearby(args []string) error {
	fs := flag.NewFlagSet("nearby", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		lat          = fs.Float64("lat", 0, "latitude (falls back to config or --auto-locate)")
		lng          = fs.Float64("lng", 0, "longitude (falls back to config or --auto-locate)")
		radius       = fs.Float64("radius", 0, "search radius in meters")
		includeTypes = fs.String("include-type", "", "include only these place types, csv")
		excludeTypes = fs.String("exclude-type", "", "exclude these place types, csv")
		limit        = fs.Int("limit", 10, "maximum number of results (1-20)")
		lang         = fs.String("lang", "", "BCP-47 language code")
		region       = fs.String("region", "", "CLDR region code")
	)
	if err := a.parse(fs, args); err != nil {
		return err
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	cache, closeCache := a.cache()
	defer closeCache()

	pt := a.resolveLocation(ctx, *lat, *lng, flagWasSet(fs, "lat"), flagWasSet(fs, "lng"))
	if pt == nil {
		return &domain.ValidationError{
			Field:   "lat/lng",
			Message: "location required: use --lat/--lng, set a default with `zupo config set-location`, or use --auto-locate",
		}
	}

	req := &domain.NearbySearchRequest{
		Lat:           pt.Lat,
		Lng:           pt.Lng,
		Radius:        a.resolveRadius(*radius, flagWasSet(fs, "radius"), 1000),
		IncludedTypes: splitCSV(*includeTypes),
		ExcludedTypes: splitCSV(*excludeTypes),
		Limit:         *limit,
		Language:      *lang,
		Region:        *region,
	}

	resp, err := usecases.NewNearbyService(client, cache).Nearby(ctx, req)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return render.JSON(os.Stdout, resp)
	}
	render.Places(os.Stdout, resp.Places, "Nearby Places")
	return nil
}

func (a *app) runRoute(args []string) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		query        string
		from         = fs.String("from", "", "origin address or place name (required)")
		to           = fs.String("to", "", "destination address or place name (required)")
		mode         = fs.String("mode", "DRIVE", "travel mode: DRIVE, WALK, BICYCLE, TWO_WHEELER, TRANSIT")
		radius       = fs.Float64("radius", 1000, "search radius around each waypoint in meters")
		maxWaypoints = fs.Int("max-waypoints", 5, "waypoints to sample along the route")
		limit        = fs.Int("limit", 5, "maximum results per waypoint")
		lang         = fs.String("lang", "", "BCP-47 language code")
		region       = fs.String("region", "", "CLDR region code")
	)
	fs.StringVar(&query, "query", "", "what to search for along the route (required)")
	fs.StringVar(&query, "q", "", "route search query (shorthand)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if query == "" {
		return &domain.ValidationError{Field: "query", Message: "required: use --query or -q"}
	}
	if *from == "" {
		return &domain.ValidationError{Field: "from", Message: "required: origin address or place name"}
	}
	if *to == "" {
		return &domain.ValidationError{Field: "to", Message: "required: destination address or place name"}
	}
	travelMode, err := domain.ParseTravelMode(*mode)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	req := &domain.RouteSearchRequest{
		Query:              query,
		From:               *from,
		To:                 *to,
		Mode:               travelMode,
		SearchRadius:       *radius,
		MaxWaypoints:       *maxWaypoints,
		ResultsPerWaypoint: *limit,
		Language:           *lang,
		Region:             *region,
	}

	outcome, err := usecases.NewRouteSearchService(client, client).Search(ctx, req)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return render.JSON(os.Stdout, outcome)
	}
	render.RouteOutcome(os.Stdout, outcome)
	return nil
}

func (a *app) runDetails(args []string) error {
	fs := flag.NewFlagSet("details", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		placeID = fs.String("place-id", "", "place ID from search results (required)")
		reviews = fs.Bool("reviews", false, "include reviews")
		photos  = fs.Bool("photos", false, "include photos")
		lang    = fs.String("lang", "", "BCP-47 language code")
		region  = fs.String("region", "", "CLDR region code")
	)
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if *placeID == "" {
		return &domain.ValidationError{Field: "place-id", Message: "required: place ID from search results"}
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	cache, closeCache := a.cache()
	defer closeCache()

	req := &domain.DetailsRequest{
		PlaceID:        *placeID,
		IncludeReviews: *reviews,
		IncludePhotos:  *photos,
		Language:       *lang,
		Region:         *region,
	}

	place, err := usecases.NewDetailsService(client, cache).Details(ctx, req)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return render.JSON(os.Stdout, place)
	}
	render.PlaceDetails(os.Stdout, place)
	return nil
}

func (a *app) runPhoto(args []string) error {
	fs := flag.NewFlagSet("photo", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		name      = fs.String("name", "", "photo resource name from a details response (required)")
		maxWidth  = fs.Int("max-width", 0, "maximum width in pixels")
		maxHeight = fs.Int("max-height", 0, "maximum height in pixels")
		out       = fs.String("out", "", "download the photo to this path")
	)
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if *name == "" {
		return &domain.ValidationError{Field: "name", Message: "required: photo resource name from a details response"}
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := usecases.NewPhotoService(client)
	media, err := svc.Media(ctx, &domain.PhotoMediaRequest{
		Name:      *name,
		MaxWidth:  *maxWidth,
		MaxHeight: *maxHeight,
	})
	if err != nil {
		return err
	}

	savedPath := ""
	if *out != "" && media.PhotoURI != "" {
		data, err := svc.Download(ctx, media.PhotoURI)
		if err != nil {
			return fmt.Errorf("download photo: %w", err)
		}
		if dir := filepath.Dir(*out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("download photo: %w", err)
			}
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			return fmt.Errorf("download photo: %w", err)
		}
		savedPath = *out
	}

	if a.jsonOut {
		return render.JSON(os.Stdout, media)
	}
	render.PhotoMedia(os.Stdout, media, savedPath)
	return nil
}

func (a *app) runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	a.globalFlags(fs)
	var (
		location string
		limit    = fs.Int("limit", 5, "maximum number of results")
		lang     = fs.String("lang", "", "BCP-47 language code")
		region   = fs.String("region", "", "CLDR region code")
	)
	fs.StringVar(&location, "location", "", "location text to resolve (required)")
	fs.StringVar(&location, "l", "", "location text (shorthand)")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if location == "" {
		return &domain.ValidationError{Field: "location", Message: "required: use --location or -l"}
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := usecases.NewResolveService(client).Resolve(ctx, &domain.ResolveRequest{
		Location: location,
		Limit:    *limit,
		Language: *lang,
		Region:   *region,
	})
	if err != nil {
		return err
	}
	if a.jsonOut {
		return render.JSON(os.Stdout, resp)
	}
	render.Places(os.Stdout, resp.Places, "Resolved Places")
	return nil
}

func (a *app) runTUI(args []string) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	a.globalFlags(fs)
	if err := a.parse(fs, args); err != nil {
		return err
	}

	ctx := context.Background()
	client, cleanup, err := a.client(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	cache, closeCache := a.cache()
	defer closeCache()

	svc := tui.Services{
		Search:   usecases.NewSearchService(client, cache),
		Complete: usecases.NewAutocompleteService(client),
		Details:  usecases.NewDetailsService(client, cache),
	}
	return tui.Run(svc, a.cfg)
}

func (a *app) runMetrics(args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	a.globalFlags(fs)
	if err := a.parse(fs, args); err != nil {
		return err
	}
	return metrics.Dump(os.Stdout)
}

func (a *app) runConfig(args []string) error {
	if len(args) == 0 {
		return &domain.ValidationError{Field: "config", Message: "usage: zupo config <show|set-location|auto-detect|clear-location>"}
	}

	switch args[0] {
	case "show":
		return a.configShow()
	case "set-location":
		return a.configSetLocation(args[1:])
	case "auto-detect":
		return a.configAutoDetect()
	case "clear-location":
		return a.configClearLocation()
	default:
		return &domain.ValidationError{Field: "config", Message: fmt.Sprintf("unknown config action %q", args[0])}
	}
}

func (a *app) configShow() error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("%s %s\n\n", bold("Config file:"), path)

	if !a.cfg.HasLocation() {
		fmt.Println("  " + dim("No default location set. Use `zupo config set-location` or `zupo config auto-detect`."))
		return nil
	}

	fmt.Println("  " + bold("Default Location"))
	if a.cfg.Location.Label != "" {
		fmt.Printf("    %s %s\n", dim("Label:"), a.cfg.Location.Label)
	}
	fmt.Printf("    %s %v\n", dim("Lat:"), *a.cfg.Location.Lat)
	fmt.Printf("    %s %v\n", dim("Lng:"), *a.cfg.Location.Lng)
	radius := 5000.0
	if a.cfg.Location.Radius != nil {
		radius = *a.cfg.Location.Radius
	}
	fmt.Printf("    %s %.0fm\n", dim("Radius:"), radius)
	return nil
}

func (a *app) configSetLocation(args []string) error {
	fs := flag.NewFlagSet("config set-location", flag.ContinueOnError)
	var (
		lat    = fs.Float64("lat", 0, "latitude (required)")
		lng    = fs.Float64("lng", 0, "longitude (required)")
		radius = fs.Float64("radius", 0, "default search radius in meters")
		label  = fs.String("label", "", `label for this location (e.g. "SoMa Office")`)
	)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		return &domain.ValidationError{Field: "flags", Message: err.Error()}
	}
	if !flagWasSet(fs, "lat") || !flagWasSet(fs, "lng") {
		return &domain.ValidationError{Field: "lat/lng", Message: "both --lat and --lng are required"}
	}
	if err := domain.ValidateCoords(*lat, *lng); err != nil {
		return err
	}

	var r *float64
	if flagWasSet(fs, "radius") {
		r = radius
	}
	a.cfg.SetLocation(*lat, *lng, r, *label)
	if err := a.cfg.SaveLocation(); err != nil {
		return err
	}

	path, _ := config.Path()
	fmt.Printf("Location saved to %s\n", path)
	fmt.Printf("  Lat: %v\n", *lat)
	fmt.Printf("  Lng: %v\n", *lng)
	if r != nil {
		fmt.Printf("  Radius: %.0fm\n", *r)
	}
	if *label != "" {
		fmt.Printf("  Label: %s\n", *label)
	}
	return nil
}

func (a *app) configAutoDetect() error {
	fmt.Fprintln(os.Stderr, "Detecting location via IP...")
	geo, err := a.locator.Locate(context.Background())
	if err != nil {
		return err
	}

	radius := 5000.0
	a.cfg.SetLocation(geo.Lat, geo.Lng, &radius, geo.Description)
	if err := a.cfg.SaveLocation(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Println("Location auto-detected and saved:")
	fmt.Printf("  %s %s\n", bold("Location:"), geo.Description)
	fmt.Printf("  %s %v\n", dim("Lat:"), geo.Lat)
	fmt.Printf("  %s %v\n", dim("Lng:"), geo.Lng)
	fmt.Println("  " + warn("Note: IP geolocation is approximate. Use `zupo config set-location` for exact coords."))
	return nil
}

func (a *app) configClearLocation() error {
	a.cfg.ClearLocation()
	if err := a.cfg.SaveLocation(); err != nil {
		return err
	}
	fmt.Println("Default location cleared.")
	return nil
}

func printUsage() {
	fmt.Fprint(os.Stderr, `zupo - a CLI for Google Places API (New)

Usage:
  zupo <command> [flags]

Commands:
  search        Search for places by text query
  autocomplete  Get autocomplete suggestions
  nearby        Search for places near a location
  route         Search for places along a route
  details       Get detailed information about a place
  photo         Resolve a photo resource to a servable URL
  resolve       Resolve an address or location name to place candidates
  config        Manage configuration (show, set-location, auto-detect, clear-location)
  tui           Launch the interactive terminal UI
  metrics       Dump client metrics in Prometheus text format
  help          Show this help

Global flags (every command):
  --api-key      Google Places API key (or set GOOGLE_PLACES_API_KEY)
  --json         Output raw JSON instead of formatted text
  --no-color     Disable colored output
  --timeout      HTTP timeout in seconds (default 10)
  --auto-locate  Detect location via IP when no --lat/--lng or saved default
  --base-url     Override the Places API base URL
  --routes-base-url  Override the Routes API base URL

Location resolution for commands that take --lat/--lng:
  1. Explicit --lat/--lng flags
  2. Saved default from config (zupo config set-location)
  3. IP-based geolocation with --auto-locate

Run 'zupo <command> -h' for command-specific flags.
`)
}
