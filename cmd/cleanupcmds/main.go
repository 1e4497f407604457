// Command cleanupcmds deletes every globally registered application command.
// Useful after switching the bot to per-guild registration.
package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/adrnf/catet/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		slog.Error("failed to create discord session", "error", err)
		os.Exit(1)
	}

	commands, err := session.ApplicationCommands(cfg.Discord.AppID, "")
	if err != nil {
		slog.Error("failed to list global commands", "error", err)
		os.Exit(1)
	}

	for _, cmd := range commands {
		if err := session.ApplicationCommandDelete(cfg.Discord.AppID, "", cmd.ID); err != nil {
			slog.Error("failed to delete global command", "command", cmd.Name, "error", err)
			os.Exit(1)
		}

		slog.Info("deleted global command", "command", cmd.Name)
	}

	slog.Info("all global commands deleted", "count", len(commands))
}
