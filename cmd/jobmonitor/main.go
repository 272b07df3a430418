package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"jobmonitor/internal/config"
	"jobmonitor/internal/monitor"
	"jobmonitor/internal/notify"
	"jobmonitor/internal/scheduler"
	"jobmonitor/internal/scrape"
	"jobmonitor/internal/state"
)

func main() {
	var (
		cfgPath   = flag.String("config", "config.yml", "path to config file")
		statePath = flag.String("state", "", "state file path (overrides config)")
		once      = flag.Bool("once", false, "run a single cycle and exit")
		interval  = flag.Int("interval", 30, "minutes between cycles in continuous mode")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", *cfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("%v", err)
	}
	if *statePath != "" {
		cfg.StateFile = *statePath
	}

	store := state.NewStore(cfg.StateFile)
	limiter := scrape.NewHostLimiter(1.0, 2)
	fetcher := scrape.NewHTTPFetcher(limiter)

	var alerter notify.Alerter
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegramAlerter(cfg.Telegram)
		if err != nil {
			// Urgent alerts degrade to log lines; the run still happens.
			log.Printf("[main] telegram disabled: %v", err)
		} else {
			alerter = tg
			log.Printf("[main] telegram alerts enabled")
		}
	}

	var sender notify.DigestSender
	if cfg.Email.Enabled {
		sender = notify.NewEmailDigestSender(cfg.Email)
		log.Printf("[main] email digest enabled")
	}

	digest, err := notify.NewDigest(cfg.Digest)
	if err != nil {
		log.Fatalf("digest config: %v", err)
	}

	m := monitor.New(cfg, store, fetcher, scrape.HTMLExtractor{}, alerter, sender, digest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *once {
		m.RunOnce(ctx)
		return
	}

	log.Printf("[main] continuous monitoring every %d min, %d companies", *interval, len(cfg.Companies))
	scheduler.Every(ctx, time.Duration(*interval)*time.Minute, "monitor", func(ctx context.Context) error {
		m.RunOnce(ctx)
		return nil
	})
	log.Printf("[main] stopping monitor")
}
