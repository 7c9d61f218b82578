package main

import (
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	chapa "github.com/zeal-nerd/chapa-go"
	"github.com/zeal-nerd/chapa-go/internal/handler"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("app", "chapa-checkout").Logger()
	if lvl, err := zerolog.ParseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); err == nil && lvl != zerolog.NoLevel {
		log = log.Level(lvl)
	}

	token := strings.TrimSpace(os.Getenv("CHAPA_TOKEN"))
	if token == "" {
		log.Fatal().Msg("CHAPA_TOKEN must be set")
	}

	clientOpts := []chapa.Option{chapa.WithLogger(log)}
	if baseURL := strings.TrimSpace(os.Getenv("CHAPA_BASE_URL")); baseURL != "" {
		clientOpts = append(clientOpts, chapa.WithBaseURL(baseURL))
	}

	client, err := chapa.New(token, clientOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure chapa client")
	}
	defer client.Close()

	callbackURL := strings.TrimSpace(os.Getenv("CHECKOUT_CALLBACK_URL"))
	if callbackURL == "" {
		log.Fatal().Msg("CHECKOUT_CALLBACK_URL must be set")
	}
	sender, err := handler.NewHTTPSCallbackSender(callbackURL, os.Getenv("CHECKOUT_CALLBACK_SECRET"), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure callback sender")
	}

	opts := []handler.Option{
		handler.WithCallbackSender(sender),
		handler.WithLogger(log),
	}
	if d := envDuration("CHECKOUT_POLL_INTERVAL"); d > 0 {
		opts = append(opts, handler.WithPollInterval(d))
	}
	if d := envDuration("CHECKOUT_TIMEOUT"); d > 0 {
		opts = append(opts, handler.WithTimeout(d))
	}

	processor := handler.NewProcessor(client, opts...)

	lambda.Start(processor.Handle)
}

func envDuration(name string) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
