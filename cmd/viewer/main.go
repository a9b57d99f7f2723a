package main

import (
	"fmt"
	"log"
	"modwatch/domain"
	"modwatch/repositories"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Config struct {
	WatchlistFilepath string `env:"WATCHLIST_FILEPATH,default=monitored_users.json"`
	BadgerFilepath    string `env:"BADGER_FILEPATH,required=true"`
	AuditLimit        int    `env:"AUDIT_LIMIT,default=20"`
	LogLevel          string `env:"LOG_LEVEL,default=warn"`
}

const contentPreviewLen = 60

// The viewer is a read-only reporting aid: it dumps the watchlist document
// and the recent audit archive of every guild that has one.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Watchlist document
	watchlistRepository, err := repositories.NewWatchlistRepository(config.WatchlistFilepath, logger)
	if err != nil {
		log.Fatalf("Failed to open watchlist document: %v", err)
	}
	table, _ := watchlistRepository.Load()

	header := color.New(color.BgBlack, color.FgGreen).Render("Watchlist Status")
	fmt.Println(header)

	if len(table) == 0 {
		fmt.Println("No users are currently being monitored.")
	} else {
		printWatchlist(table)
	}

	// 3. Audit archive, Badger in read-only mode.
	// BypassLockGuard allows opening while the bot holds the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	auditRepository := repositories.NewAuditRepository(db, logger)
	fmt.Println()
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("Recent Audit Records"))
	for guildID := range table {
		printArchive(auditRepository, guildID, config.AuditLimit)
	}
}

func printWatchlist(table map[string][]string) {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Guild ID", "Monitored User ID"})
	w.SetAutoWrapText(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetCenterSeparator("")
	w.SetColumnSeparator("")
	w.SetRowSeparator("")
	w.SetHeaderLine(false)
	w.SetBorder(false)
	w.SetTablePadding("\t")

	total := 0
	for guildID, userIDs := range table {
		for _, userID := range userIDs {
			w.Append([]string{guildID, userID})
			total++
		}
	}
	w.Render()
	fmt.Printf("\nTotal monitored users across all servers: %d\n", total)
	fmt.Printf("Total servers with monitored users: %d\n", len(table))
}

func printArchive(repository repositories.AuditRepository, guildID string, limit int) {
	records, err := repository.GetRecords(guildID, limit)
	if err != nil {
		fmt.Printf("Error reading archive for guild %s: %v\n", guildID, err)
		return
	}
	if len(records) == 0 {
		return
	}

	fmt.Printf("\nGuild %s (%d records)\n", guildID, len(records))
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Time", "Author", "Channel", "Content", "Attachments"})
	w.SetAutoWrapText(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetCenterSeparator("")
	w.SetColumnSeparator("")
	w.SetRowSeparator("")
	w.SetHeaderLine(false)
	w.SetBorder(false)
	w.SetTablePadding("\t")

	for _, record := range records {
		w.Append([]string{
			record.PostedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%s (%s)", record.Author.Name, record.Author.ID),
			record.ChannelID,
			preview(record.Content),
			strings.Join(lo.Map(record.Attachments, func(att domain.Attachment, _ int) string {
				return att.Filename
			}), ", "),
		})
	}
	w.Render()
}

func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > contentPreviewLen {
		return content[:contentPreviewLen] + "…"
	}
	return content
}
