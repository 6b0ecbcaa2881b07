package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-auditlog/internal/config"
	"go-auditlog/internal/fetch"
	"go-auditlog/internal/logging"
	"go-auditlog/internal/registry"
	"go-auditlog/pkg/auditlog"
	"go-auditlog/pkg/discord"
)

func main() {
	configPath := flag.String("config", "config.json", "config file path")
	watch := flag.Bool("watch", false, "stay connected and dump audit entries on moderation events")
	debug := flag.Bool("debug", false, "console logging at debug level")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.LoadOrDefault(*configPath)

	if err := initializeLogging(cfg, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "logging init failed: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	registry.Init(cfg.Registry.ChannelCapacity, cfg.Registry.StageCapacity)

	if cfg.Bot.Token == "" {
		logging.Error("no bot token; set DISCORD_TOKEN or bot.token in config")
		os.Exit(1)
	}
	guildID := discord.ParseSnowflake(cfg.Bot.GuildID)
	if guildID == 0 {
		logging.Error("no guild id; set GUILD_ID or bot.guild_id in config")
		os.Exit(1)
	}

	client := fetch.NewClient(cfg.Bot.Token, cfg.Network.APIBaseURL, cfg.Network.HTTPPoolSize)

	if *watch {
		if err := runWatcher(cfg, client, guildID); err != nil {
			logging.Error("watcher failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := dumpAuditLog(client, guildID, cfg.Network.PageSize); err != nil {
		logging.Error("audit log dump failed", zap.Error(err))
		os.Exit(1)
	}
}

func initializeLogging(cfg *config.Config, debug bool) error {
	if debug {
		return logging.InitDevelopment()
	}
	return logging.Init(cfg.Logging.Level)
}

// dumpAuditLog pages through the guild's full audit log and prints every
// decoded entry.
func dumpAuditLog(client *fetch.Client, guildID discord.Snowflake, pageSize int) error {
	guild := discord.NewGuild(guildID, "")
	pager := fetch.NewPager(client, guild, 0, pageSize)

	for {
		more, err := pager.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	log := pager.Log()
	logging.Info("audit log fetched",
		zap.Int("entries", log.Len()),
		zap.Int("users", len(log.Users)),
		zap.Int("webhooks", len(log.Webhooks)))

	for entry := range log.All() {
		printEntry(entry)
	}
	return nil
}

func printEntry(entry *auditlog.AuditLogEntry) {
	actor := "unknown"
	if entry.User != nil {
		actor = entry.User.DisplayName()
	}
	fmt.Printf("%s  %-40s  actor=%s  target=%s\n",
		entry.CreatedAt().Format("2006-01-02 15:04:05"),
		entry.Type.Name, actor, entry.TargetID)
	for _, change := range entry.Changes {
		fmt.Printf("    %s: %v -> %v\n", change.AttributeName, change.Before, change.After)
	}
	if entry.Reason != "" {
		fmt.Printf("    reason: %s\n", entry.Reason)
	}
}

// runWatcher keeps a gateway session open and re-fetches the most recent
// audit entries whenever a moderation event fires.
func runWatcher(cfg *config.Config, client *fetch.Client, guildID discord.Snowflake) error {
	session, err := discordgo.New("Bot " + cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildBans

	dump := func() {
		guild := discord.NewGuild(guildID, "")
		log := auditlog.New(guild)
		page, err := client.FetchPage(guildID, fetch.PageOptions{Limit: 10})
		if err != nil {
			logging.Warn("audit log fetch failed", zap.Error(err))
			return
		}
		if !log.Populate(page) {
			return
		}
		for entry := range log.All() {
			printEntry(entry)
		}
	}

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logging.Info("gateway connected", zap.String("user", r.User.Username))
	})
	session.AddHandler(func(s *discordgo.Session, e *discordgo.GuildBanAdd) {
		if discord.ParseSnowflake(e.GuildID) == guildID {
			logging.Info("ban observed, dumping recent audit entries")
			dump()
		}
	})
	session.AddHandler(func(s *discordgo.Session, e *discordgo.GuildRoleDelete) {
		if discord.ParseSnowflake(e.GuildID) == guildID {
			logging.Info("role delete observed, dumping recent audit entries")
			dump()
		}
	})
	session.AddHandler(func(s *discordgo.Session, e *discordgo.ChannelDelete) {
		if e.GuildID != "" && discord.ParseSnowflake(e.GuildID) == guildID {
			logging.Info("channel delete observed, dumping recent audit entries")
			dump()
		}
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer session.Close()

	logging.Info("watching guild", zap.String("guild_id", guildID.String()))
	waitForShutdown()
	return nil
}

func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}
