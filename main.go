package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-password/password"
	"gopkg.in/natefinch/lumberjack.v2"

	"cinescope/config"
	"cinescope/internal/rest"
	"cinescope/models"
	"cinescope/services/auth"
	"cinescope/services/chat"
	"cinescope/services/creators"
	"cinescope/services/discover"
	"cinescope/services/membership"
	"cinescope/services/movies"
	"cinescope/services/notify"
	"cinescope/services/profile"
	"cinescope/services/ratings"
	"cinescope/services/search"
	"cinescope/services/session"
	"cinescope/services/tv"
	"cinescope/services/watchlist"
)

// app bundles every wired client for the command handlers.
type app struct {
	settings   config.Settings
	session    *session.Session
	store      *session.Store
	auth       *auth.Client
	movies     *movies.Client
	tv         *tv.Client
	watchlist  *watchlist.Client
	ratings    *ratings.Client
	creators   *creators.Client
	profile    *profile.Client
	chat       *chat.Client
	membership *membership.Cache
	toasts     *notify.Service
}

func main() {
	// A missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	configPath := os.Getenv("CINESCOPE_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	setupLogging(settings.Log)

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	a, err := newApp(settings)
	if err != nil {
		log.Fatalf("failed to initialise clients: %v", err)
	}
	defer a.toasts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", userMessage(err))
		os.Exit(1)
	}
}

func setupLogging(cfg config.LogConfig) {
	if cfg.File == "" {
		return
	}
	logDir := filepath.Dir(cfg.File)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Printf("warning: could not create log directory %s: %v", logDir, err)
		return
	}
	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, fileWriter))
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	level := slog.LevelInfo
	if strings.EqualFold(cfg.Level, "debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(fileWriter, &slog.HandlerOptions{Level: level})))
}

func newApp(settings config.Settings) (*app, error) {
	store, err := session.NewStore(settings.Cache.Directory)
	if err != nil {
		return nil, err
	}
	sess := session.NewSession()

	httpc := &http.Client{Timeout: time.Duration(settings.API.TimeoutSeconds) * time.Second}
	restClient := rest.NewClient(settings.API.BaseURL, store, httpc)

	authClient, err := auth.NewClient(restClient, store, sess)
	if err != nil {
		return nil, err
	}

	watchlistClient := watchlist.NewClient(restClient)
	ratingsClient := ratings.NewClient(restClient)

	toasts := notify.NewService(0, func(active []notify.Toast) {
		for _, toast := range active {
			slog.Debug("toast", "type", toast.Type, "message", toast.Message)
		}
	})

	return &app{
		settings:   settings,
		session:    sess,
		store:      store,
		auth:       authClient,
		movies:     movies.NewClient(restClient),
		tv:         tv.NewClient(restClient),
		watchlist:  watchlistClient,
		ratings:    ratingsClient,
		creators:   creators.NewClient(restClient),
		profile:    profile.NewClient(restClient, sess),
		chat:       chat.NewClient(restClient),
		membership: membership.NewCache(watchlistClient, ratingsClient),
		toasts:     toasts,
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.cmdLogout()
	case "register":
		return a.cmdRegister(ctx, args)
	case "me":
		return a.cmdMe(ctx)
	case "trending":
		return a.cmdTrending(ctx, args)
	case "popular":
		return a.cmdPopular(ctx, args)
	case "search":
		return a.cmdSearch(ctx, args)
	case "discover":
		return a.cmdDiscover(ctx, args)
	case "movie":
		return a.cmdMovie(ctx, args)
	case "tv":
		return a.cmdTV(ctx, args)
	case "watchlist":
		return a.cmdWatchlist(ctx, args)
	case "rate":
		return a.cmdRate(ctx, args)
	case "ratings":
		return a.cmdRatings(ctx, args)
	case "forgot-password":
		return a.cmdForgotPassword(ctx, args)
	case "reset-password":
		return a.cmdResetPassword(ctx, args)
	case "resend-verification":
		return a.cmdResendVerification(ctx)
	case "creators":
		return a.cmdCreators(ctx, args)
	case "profile":
		return a.cmdProfile(ctx, args)
	case "chat":
		return a.cmdChat(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	pass := fs.String("password", "", "account password")
	_ = fs.Parse(args)
	if *email == "" || *pass == "" {
		return fmt.Errorf("login requires --email and --password")
	}

	user, err := a.auth.Login(ctx, *email, *pass)
	if err != nil {
		if rest.IsKind(err, rest.KindEmailUnverified) {
			return fmt.Errorf("please verify your email before logging in")
		}
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "desired username")
	email := fs.String("email", "", "account email")
	pass := fs.String("password", "", "account password")
	generate := fs.Bool("generate-password", false, "generate a strong password instead of supplying one")
	_ = fs.Parse(args)
	if *username == "" || *email == "" {
		return fmt.Errorf("register requires --username and --email")
	}

	secret := *pass
	if *generate {
		generated, err := password.Generate(20, 4, 4, false, false)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		secret = generated
		fmt.Printf("generated password: %s\n", secret)
	}
	if secret == "" {
		return fmt.Errorf("register requires --password or --generate-password")
	}

	user, err := a.auth.Register(ctx, *username, *email, secret)
	if err != nil {
		return err
	}
	fmt.Printf("registered %s; check %s for a verification email\n", user.Username, user.Email)
	return nil
}

func (a *app) cmdMe(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> role=%s verified=%v public=%v\n",
		user.Username, user.Email, user.Role, user.IsEmailVerified, user.IsPublicProfile)
	return nil
}

func (a *app) cmdTrending(ctx context.Context, args []string) error {
	if mediaArg(args) == models.MediaTypeTV {
		shows, err := a.tv.Trending(ctx)
		if err != nil {
			return err
		}
		printShows(shows)
		return nil
	}
	list, err := a.movies.Trending(ctx)
	if err != nil {
		return err
	}
	printMovies(list)
	return nil
}

func (a *app) cmdPopular(ctx context.Context, args []string) error {
	if mediaArg(args) == models.MediaTypeTV {
		shows, err := a.tv.Popular(ctx)
		if err != nil {
			return err
		}
		printShows(shows)
		return nil
	}
	list, err := a.movies.Popular(ctx)
	if err != nil {
		return err
	}
	printMovies(list)
	return nil
}

func (a *app) cmdSearch(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search requires a query")
	}

	controller := search.NewController(a.movies, a.tv, 0, nil)
	defer controller.Close()

	results, err := controller.SearchNow(ctx, query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no results")
		return nil
	}
	for _, result := range results {
		fmt.Printf("%8.2f  %-5s  %6d  %s (%d)\n",
			result.Score, result.MediaType, result.Item.ID, result.Item.Title, result.Item.Year)
	}
	return nil
}

func (a *app) cmdDiscover(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	media := fs.String("media", "movie", "movie or tv")
	genre := fs.Int64("genre", 0, "genre id")
	year := fs.Int("year", 0, "release year")
	lang := fs.String("language", "", "original language")
	country := fs.String("country", "", "country code")
	provider := fs.Int64("provider", 0, "watch provider id")
	sortBy := fs.String("sort", "", "sort order, e.g. vote_average.desc")
	voteAvg := fs.Float64("vote-average", 0, "minimum vote average")
	voteCount := fs.Int64("vote-count", 0, "minimum vote count")
	runtimeGTE := fs.Int("runtime-min", 0, "minimum runtime minutes")
	runtimeLTE := fs.Int("runtime-max", 0, "maximum runtime minutes")
	page := fs.Int("page", 1, "result page")
	_ = fs.Parse(args)

	filters := models.FilterState{
		Genre:          *genre,
		Year:           *year,
		Language:       *lang,
		Country:        *country,
		Provider:       *provider,
		SortBy:         *sortBy,
		VoteAverageGTE: *voteAvg,
		VoteCountGTE:   *voteCount,
		RuntimeGTE:     *runtimeGTE,
		RuntimeLTE:     *runtimeLTE,
	}

	var source discover.Source = a.movies
	if models.MediaType(*media) == models.MediaTypeTV {
		source = a.tv
	}
	controller := discover.NewController(source, nil)
	controller.Seed(filters, *page)

	result, err := controller.Fetch(ctx)
	if err != nil {
		return err
	}
	for _, item := range result.Items {
		fmt.Printf("%6d  %4.1f  %s (%d)\n", item.ID, item.Rating, item.Title, item.Year)
	}
	fmt.Printf("page %d of %d (%d titles)\n", result.Page, result.TotalPages, result.TotalResults)
	return nil
}

func (a *app) cmdMovie(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	full, err := a.movies.Full(ctx, id)
	if err != nil {
		return err
	}
	d := full.Details
	fmt.Printf("%s (%d)  %.1f/10\n", d.Title, models.ParseYear(d.ReleaseDate), d.VoteAverage)
	if d.Tagline != "" {
		fmt.Printf("  %s\n", d.Tagline)
	}
	fmt.Printf("  %s\n", d.Overview)
	printCredits(full.Credits)
	printRecommendations("recommended", mediaItemsFromMovies(full.Recommendations))
	return nil
}

func (a *app) cmdTV(ctx context.Context, args []string) error {
	id, err := idArg(args)
	if err != nil {
		return err
	}
	full, err := a.tv.Full(ctx, id)
	if err != nil {
		return err
	}
	d := full.Details
	fmt.Printf("%s (%d)  %.1f/10  %d seasons\n",
		d.Name, models.ParseYear(d.FirstAirDate), d.VoteAverage, d.NumberOfSeasons)
	fmt.Printf("  %s\n", d.Overview)
	printCredits(full.Credits)
	printRecommendations("recommended", mediaItemsFromShows(full.Recommendations))
	return nil
}

func (a *app) cmdWatchlist(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		entries, err := a.watchlist.List(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("watchlist is empty")
			return nil
		}
		for _, entry := range entries {
			fmt.Printf("%6d  %-5s  tmdb:%d  added %s\n",
				entry.ID, entry.MediaType, entry.TMDBID, entry.AddedAt.Format("2006-01-02"))
		}
		return nil
	case "add":
		tmdbID, mediaType, err := idAndMediaArgs(args[1:])
		if err != nil {
			return err
		}
		ids, err := a.membership.WatchlistIDs(ctx)
		if err == nil && ids.Has(mediaType, tmdbID) {
			a.toasts.Push(notify.ToastInfo, "Already in your watchlist.")
			fmt.Println("already in your watchlist")
			return nil
		}
		entry, err := a.watchlist.Add(ctx, tmdbID, mediaType)
		if err != nil {
			a.toasts.Error(userMessage(err))
			return err
		}
		a.membership.Invalidate()
		a.toasts.Success("Added to watchlist.")
		fmt.Printf("added entry %d\n", entry.ID)
		return nil
	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("watchlist remove requires an entry id")
		}
		entryID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q", args[1])
		}
		if err := a.watchlist.Remove(ctx, entryID); err != nil {
			a.toasts.Error(userMessage(err))
			return err
		}
		a.membership.Invalidate()
		a.toasts.Success("Removed from watchlist.")
		fmt.Println("removed")
		return nil
	default:
		return fmt.Errorf("watchlist supports list, add, remove")
	}
}

func (a *app) cmdRate(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("rate requires <tmdb-id> <movie|tv> <skip|timepass|go_for_it|perfection>")
	}
	tmdbID, mediaType, err := idAndMediaArgs(args[:2])
	if err != nil {
		return err
	}
	value := models.RatingValue(args[2])

	ids, err := a.membership.RatingIDs(ctx)
	if err == nil && ids.Has(mediaType, tmdbID) {
		fmt.Println("Already rated. Update it from the ratings list.")
		return nil
	}

	rating, err := a.ratings.Create(ctx, tmdbID, mediaType, value)
	if err != nil {
		if rest.IsKind(err, rest.KindAlreadyExists) {
			fmt.Println("Already rated. Update it from the ratings list.")
			return nil
		}
		a.toasts.Error(userMessage(err))
		return err
	}
	a.membership.Invalidate()
	a.toasts.Success("Rating saved.")
	fmt.Printf("rated tmdb:%d as %s (rating %d)\n", tmdbID, value, rating.ID)
	return nil
}

func (a *app) cmdRatings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		list, err := a.ratings.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no ratings yet")
			return nil
		}
		for _, rating := range list {
			fmt.Printf("%6d  %-5s  tmdb:%d  %-10s  %s\n",
				rating.ID, rating.MediaType, rating.TMDBID, rating.Rating, rating.RatedAt.Format("2006-01-02"))
		}
		return nil
	case "update":
		if len(args) < 3 {
			return fmt.Errorf("ratings update requires <rating-id> <verdict>")
		}
		ratingID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid rating id %q", args[1])
		}
		rating, err := a.ratings.Update(ctx, ratingID, models.RatingValue(args[2]))
		if err != nil {
			a.toasts.Error(userMessage(err))
			return err
		}
		a.membership.Invalidate()
		a.toasts.Success("Rating updated.")
		fmt.Printf("rating %d is now %s\n", rating.ID, rating.Rating)
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("ratings delete requires a rating id")
		}
		ratingID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid rating id %q", args[1])
		}
		if err := a.ratings.Delete(ctx, ratingID); err != nil {
			a.toasts.Error(userMessage(err))
			return err
		}
		a.membership.Invalidate()
		a.toasts.Success("Rating removed.")
		fmt.Println("deleted")
		return nil
	default:
		return fmt.Errorf("ratings supports list, update, delete")
	}
}

func (a *app) cmdForgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	_ = fs.Parse(args)
	if *email == "" {
		return fmt.Errorf("forgot-password requires --email")
	}
	if err := a.auth.ForgotPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Println("if the address is registered, a reset email is on its way")
	return nil
}

func (a *app) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	token := fs.String("token", "", "reset token from the email")
	pass := fs.String("password", "", "new password")
	_ = fs.Parse(args)
	if *token == "" || *pass == "" {
		return fmt.Errorf("reset-password requires --token and --password")
	}
	if err := a.auth.ResetPassword(ctx, *token, *pass); err != nil {
		return err
	}
	fmt.Println("password updated, you can login now")
	return nil
}

func (a *app) cmdResendVerification(ctx context.Context) error {
	if err := a.auth.ResendVerification(ctx); err != nil {
		return err
	}
	fmt.Println("verification email sent")
	return nil
}

func (a *app) cmdCreators(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("creators supports request, mine, list, approve, reject")
	}
	switch args[0] {
	case "request":
		req, err := a.creators.Submit(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("request %d submitted (%s)\n", req.ID, req.Status)
		return nil
	case "mine":
		req, err := a.creators.Mine(ctx)
		if err != nil {
			if rest.IsKind(err, rest.KindNotFound) {
				fmt.Println("no creator request on file")
				return nil
			}
			return err
		}
		fmt.Printf("request %d: %s\n", req.ID, req.Status)
		return nil
	case "list":
		status := models.CreatorRequestStatus("")
		if len(args) > 1 {
			status = models.CreatorRequestStatus(args[1])
		}
		requests, err := a.creators.List(ctx, status)
		if err != nil {
			return err
		}
		for _, req := range requests {
			fmt.Printf("%6d  %-10s  %-8s  %s\n", req.ID, req.Username, req.Status, req.Message)
		}
		return nil
	case "approve", "reject":
		if len(args) < 2 {
			return fmt.Errorf("creators %s requires a request id", args[0])
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid request id %q", args[1])
		}
		var req models.CreatorRequest
		if args[0] == "approve" {
			req, err = a.creators.Approve(ctx, id)
		} else {
			req, err = a.creators.Reject(ctx, id)
		}
		if err != nil {
			a.toasts.Error(userMessage(err))
			return err
		}
		a.toasts.Success("Request " + string(req.Status) + ".")
		fmt.Printf("request %d is now %s\n", req.ID, req.Status)
		return nil
	default:
		return fmt.Errorf("creators supports request, mine, list, approve, reject")
	}
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	public := fs.Bool("public", false, "make the profile public")
	private := fs.Bool("private", false, "make the profile private")
	_ = fs.Parse(args)
	if *public == *private {
		return fmt.Errorf("profile requires exactly one of --public or --private")
	}

	user, err := a.profile.SetPublicProfile(ctx, *public)
	if err != nil {
		return err
	}
	fmt.Printf("profile visibility: public=%v\n", user.IsPublicProfile)
	return nil
}

func (a *app) cmdChat(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	answer, err := a.chat.Ask(ctx, query)
	if err != nil {
		return err
	}
	fmt.Println(answer.Response)
	if len(answer.Movies) > 0 {
		printRecommendations("mentioned", mediaItemsFromMovies(answer.Movies))
	}
	return nil
}

// userMessage maps a classified API failure onto user-facing copy,
// falling back to the server's own message.
func userMessage(err error) string {
	switch rest.KindOf(err) {
	case rest.KindUnauthenticated:
		return "Please login first."
	case rest.KindEmailUnverified:
		return "Please verify your email address."
	case rest.KindNotFound:
		return "Not found."
	default:
		return err.Error()
	}
}

func mediaArg(args []string) models.MediaType {
	if len(args) > 0 && models.MediaType(args[0]) == models.MediaTypeTV {
		return models.MediaTypeTV
	}
	return models.MediaTypeMovie
}

func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("a TMDB id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid TMDB id %q", args[0])
	}
	return id, nil
}

func idAndMediaArgs(args []string) (int64, models.MediaType, error) {
	id, err := idArg(args)
	if err != nil {
		return 0, "", err
	}
	if len(args) < 2 {
		return 0, "", fmt.Errorf("a media type (movie|tv) is required")
	}
	mediaType := models.MediaType(args[1])
	if !mediaType.Valid() {
		return 0, "", fmt.Errorf("invalid media type %q", args[1])
	}
	return id, mediaType, nil
}

func mediaItemsFromMovies(list []models.Movie) []models.MediaItem {
	items := make([]models.MediaItem, len(list))
	for i, m := range list {
		items[i] = models.MediaItemFromMovie(m)
	}
	return items
}

func mediaItemsFromShows(list []models.TVShow) []models.MediaItem {
	items := make([]models.MediaItem, len(list))
	for i, s := range list {
		items[i] = models.MediaItemFromTV(s)
	}
	return items
}

func printMovies(list []models.Movie) {
	for _, m := range list {
		item := models.MediaItemFromMovie(m)
		fmt.Printf("%6d  %4.1f  %s (%d)\n", item.ID, item.Rating, item.Title, item.Year)
	}
}

func printShows(list []models.TVShow) {
	for _, s := range list {
		item := models.MediaItemFromTV(s)
		fmt.Printf("%6d  %4.1f  %s (%d)\n", item.ID, item.Rating, item.Title, item.Year)
	}
}

func printCredits(credits models.Credits) {
	limit := len(credits.Cast)
	if limit > 5 {
		limit = 5
	}
	for _, member := range credits.Cast[:limit] {
		fmt.Printf("  cast: %s as %s\n", member.Name, member.Character)
	}
}

func printRecommendations(label string, items []models.MediaItem) {
	limit := len(items)
	if limit > 5 {
		limit = 5
	}
	for _, item := range items[:limit] {
		fmt.Printf("  %s: %s (%d)\n", label, item.Title, item.Year)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `cinescope - terminal client for the CineScope API

usage: cinescope <command> [args]

  login --email E --password P     authenticate and persist tokens
  logout                           clear persisted tokens
  register --username U --email E [--password P | --generate-password]
  me                               show the current user
  trending [movie|tv]              this week's trending titles
  popular [movie|tv]               popular titles
  search <query>                   ranked search across movies and TV
  discover [flags]                 filtered catalogue browse (see discover -h)
  movie <id>                       movie detail page
  tv <id>                          TV detail page
  watchlist [list|add <id> <movie|tv>|remove <entry-id>]
  rate <id> <movie|tv> <verdict>   record a verdict
  ratings [list|update <id> <verdict>|delete <id>]
  forgot-password --email E        request a password reset email
  reset-password --token T --password P
  resend-verification              resend the verification email
  creators <request|mine|list [status]|approve <id>|reject <id>>
  profile --public|--private       toggle profile visibility
  chat <question>                  ask the assistant
`)
}
