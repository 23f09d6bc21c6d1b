package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-assistant/config"
	tgDelivery "calendar-assistant/internal/event/delivery/telegram"
	"calendar-assistant/internal/event/repository"
	gcalRepo "calendar-assistant/internal/event/repository/gcal"
	"calendar-assistant/internal/event/usecase"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/ics"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/telegram"
)

const icsProdID = "-//calendar-assistant//EN"

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event domain
	var telegramHandler tgDelivery.Handler
	var telegramBot *telegram.Bot

	if cfg.Telegram.BotToken == "" {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, webhook handler disabled")
	} else {
		// Telegram Bot client
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)

		// DateMath parser
		dateMathParser, dtErr := datemath.NewParser(cfg.Event.Timezone)
		if dtErr != nil {
			logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Event.Timezone, dtErr)
			dateMathParser, _ = datemath.NewParser("UTC")
		}

		// Gemini LLM client (optional, /ask)
		var geminiClient *gemini.Client
		if cfg.Gemini.APIKey != "" {
			geminiClient = gemini.NewClient(cfg.Gemini.APIKey)
			if cfg.Gemini.Model != "" {
				geminiClient.SetModel(cfg.Gemini.Model)
			}
		} else {
			logger.Warn(ctx, "GEMINI_API_KEY missing, /ask disabled")
		}

		// Google Calendar repository (optional, calendar commands)
		var calendarRepo repository.CalendarRepository
		if cfg.GoogleCalendar.CredentialsPath != "" {
			calendarClient, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
			if gcErr != nil {
				logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
				logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			} else {
				calendarRepo = gcalRepo.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Event.Timezone)
				logger.Info(ctx, "✅ Google Calendar initialized")
			}
		} else {
			logger.Warn(ctx, "GOOGLE_CALENDAR_CREDENTIALS missing, calendar commands disabled")
		}

		// ICS builder
		icsBuilder := ics.NewBuilder(icsProdID, time.Duration(cfg.Event.DefaultDurationMinutes)*time.Minute)

		// Event UseCase
		eventUC := usecase.New(logger, calendarRepo, geminiClient, dateMathParser, icsBuilder, usecase.Config{
			Timezone:           cfg.Event.Timezone,
			MaxReminderMinutes: cfg.Event.MaxReminderMinutes,
			DefaultDuration:    time.Duration(cfg.Event.DefaultDurationMinutes) * time.Minute,
			ListWindowDays:     cfg.Event.ListWindowDays,
		})

		// Telegram delivery handler
		telegramHandler = tgDelivery.New(logger, eventUC, telegramBot)
	}

	// Webhook URL: explicit config, or auto-detect a local ngrok tunnel.
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" && telegramBot != nil {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg),
		TelegramHandler: telegramHandler,
		Bot:             telegramBot,
		WebhookURL:      webhookURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
