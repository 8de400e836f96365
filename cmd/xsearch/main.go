package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"xsearch/internal/api"
	"xsearch/internal/db"
	"xsearch/internal/models"
	"xsearch/internal/query"
	"xsearch/internal/telemetry"
	"xsearch/internal/ui"
)

const defaultDBPath = "xsearch.db"

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	logger := log.Default()
	if os.Getenv("XSEARCH_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	c := models.NewCriteria()

	// One flag per criteria field; passing any of them selects one-shot mode
	flag.StringVar(&c.FromUser, "from", c.FromUser, "Tweets from this user (no @)")
	flag.StringVar(&c.ToUser, "to", c.ToUser, "Tweets replying to this user (no @)")
	flag.StringVar(&c.MentionsUser, "mentions", c.MentionsUser, "Tweets mentioning this user (no @)")
	flag.StringVar(&c.ExactPhrase, "phrase", c.ExactPhrase, "Exact phrase")
	flag.StringVar(&c.AnyWords, "any", c.AnyWords, "Any of these space-separated words")
	flag.StringVar(&c.ExcludeWords, "exclude", c.ExcludeWords, "Exclude these space-separated words")
	flag.StringVar(&c.Hashtag, "hashtag", c.Hashtag, "Hashtag (no #)")
	flag.StringVar(&c.SmartSearch, "smart", c.SmartSearch, "Comma-separated terms, OR-grouped")
	flag.StringVar(&c.SinceDate, "since", c.SinceDate, "Start date YYYY-MM-DD (empty to omit)")
	flag.StringVar(&c.UntilDate, "until", c.UntilDate, "End date YYYY-MM-DD (empty to omit)")
	flag.StringVar(&c.MinRetweets, "min-retweets", c.MinRetweets, "Minimum retweet count")
	flag.StringVar(&c.MinLikes, "min-likes", c.MinLikes, "Minimum like count")
	flag.StringVar(&c.MinReplies, "min-replies", c.MinReplies, "Minimum reply count")
	flag.StringVar(&c.Language, "lang", c.Language, "ISO language code")
	flag.BoolVar(&c.NativeRetweets, "native-retweets", false, "Only native retweets")
	flag.BoolVar(&c.HasImages, "images", false, "Only tweets with images")
	flag.BoolVar(&c.HasVideos, "videos", false, "Only tweets with videos")
	flag.BoolVar(&c.HasLinks, "links", false, "Only tweets with links")
	flag.BoolVar(&c.Verified, "verified", false, "Only verified accounts")
	flag.BoolVar(&c.IsRetweet, "retweets", false, "Only retweets")

	copyFlag := flag.Bool("copy", false, "Copy the built query to the clipboard (one-shot mode)")
	openFlag := flag.Bool("open", false, "Open the built query in the browser (one-shot mode)")
	printFlag := flag.Bool("print", false, "Print the built query and exit")
	dbFlag := flag.String("db", "", "Path to the session telemetry database")
	noTelemetry := flag.Bool("no-telemetry", false, "Disable session telemetry")
	flag.Parse()

	// One-shot mode when any criteria or output flag was passed
	oneShot := *copyFlag || *openFlag || *printFlag
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db", "no-telemetry":
		default:
			oneShot = true
		}
	})

	// Resolve search host; an invalid override falls back to the default
	host := os.Getenv("XSEARCH_HOST")
	hostRoot := api.DefaultSearchHost
	if host != "" {
		root, err := api.RootDomain(host)
		if err != nil {
			logger.Warn("ignoring invalid XSEARCH_HOST", "host", host, "err", err)
			host = ""
		} else {
			hostRoot = root
		}
	}

	tele, cleanup := setupTelemetry(*dbFlag, *noTelemetry, logger)
	defer cleanup()

	if oneShot {
		runOneShot(c, host, hostRoot, *copyFlag, *openFlag, tele)
		return
	}

	runInteractive(c, host, hostRoot, tele)
	ui.PrintSessionSummary(tele.Counts())
}

// setupTelemetry opens the event store and builds the telemetry context.
// A store failure downgrades to the nop sink; analytics must never stop
// the tool from working.
func setupTelemetry(dbPath string, disabled bool, logger *log.Logger) (*telemetry.Context, func()) {
	if disabled {
		tele := telemetry.NewContext(telemetry.NopSink{}, logger)
		return tele, tele.Close
	}

	if dbPath == "" {
		dbPath = os.Getenv("XSEARCH_DB")
	}
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	database, err := db.New(dbPath)
	if err != nil {
		logger.Warn("telemetry store unavailable, continuing without it", "err", err)
		tele := telemetry.NewContext(telemetry.NopSink{}, logger)
		return tele, tele.Close
	}

	tele := telemetry.NewContext(telemetry.NewStoreSink(database), logger)
	return tele, func() {
		tele.Close()
		database.Close()
	}
}

// runOneShot builds the query from flags, prints it, and applies the
// requested side effects.
func runOneShot(c models.Criteria, host, hostRoot string, copyIt, openIt bool, tele *telemetry.Context) {
	q := query.Build(c)
	tele.Record(telemetry.EventQueryGenerated,
		map[string]string{"length": strconv.Itoa(len(q))})

	fmt.Println(q)

	if copyIt {
		if err := ui.CopyQuery(q); err != nil {
			ui.PrintError(err.Error())
		} else {
			tele.Record(telemetry.EventCopyPerformed, nil)
			ui.PrintSuccess("Copied to clipboard")
		}
	}

	if openIt {
		searchURL := api.SearchURL(q, host)
		if err := api.OpenInBrowser(searchURL); err != nil {
			ui.PrintError(err.Error())
		} else {
			tele.Record(telemetry.EventOpenPerformed,
				map[string]string{"host_root": hostRoot})
		}
	}
}

// runInteractive loops between the criteria editor and the action menu
// until the user quits.
func runInteractive(c models.Criteria, host, hostRoot string, tele *telemetry.Context) {
	ui.ShowSplash()

	for {
		edited, cancelled, err := ui.RunEditor(c, tele)
		if err != nil {
			ui.PrintError(fmt.Sprintf("Editor failed: %v", err))
			os.Exit(1)
		}
		if cancelled {
			return
		}
		c = edited

		q := query.Build(c)
		tele.Record(telemetry.EventQueryGenerated,
			map[string]string{"length": strconv.Itoa(len(q))})

		editAgain := false
		for !editAgain {
			action, err := ui.PromptForAction(q)
			if err != nil {
				ui.PrintError(fmt.Sprintf("Prompt failed: %v", err))
				os.Exit(1)
			}

			switch action {
			case ui.ActionCopy:
				if err := ui.CopyQuery(q); err != nil {
					ui.PrintError(err.Error())
				} else {
					tele.Record(telemetry.EventCopyPerformed, nil)
					ui.PrintSuccess("Copied to clipboard")
				}

			case ui.ActionOpen:
				confirmed, _ := ui.ConfirmOpen(hostRoot)
				if !confirmed {
					continue
				}
				searchURL := api.SearchURL(q, host)
				if err := ui.OpenSearch(searchURL); err != nil {
					ui.PrintError(err.Error())
				} else {
					tele.Record(telemetry.EventOpenPerformed,
						map[string]string{"host_root": hostRoot})
				}

			case ui.ActionEdit:
				editAgain = true

			case ui.ActionQuit:
				return
			}
		}
	}
}
