package cmd

import (
	"context"
	"log"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ticket-scan/common/constant"
	inboundSync "ticket-scan/inbound/sync"
	"ticket-scan/model"
)

func runSyncCmd(ctx context.Context) {
	cfg := newCfg("env")

	shutdownTracing := newTracerProvider(ctx, cfg)
	defer shutdownTracing()

	st := newStore(cfg)
	defer st.Close()

	event := newEvent(cfg)
	if err := st.Open(ctx, event); err != nil {
		log.Fatalln("unable to open local store", err)
	}

	coordinator := &inboundSync.Coordinator{
		Store:   st,
		Fetcher: newFetcher(cfg, validator.New()),
		OnProgress: func(progress model.SyncProgress) {
			slog.Info("sync progress",
				slog.String(constant.LogFieldResource, string(progress.ResourceType)),
				slog.Int("loaded", progress.Loaded),
				slog.Int("total", progress.Total),
				slog.Bool("last_page", progress.IsLastPage),
			)
		},
	}

	if err := coordinator.Run(ctx, event); err != nil {
		log.Fatalln("sync failed:", err)
	}

	counts, err := st.Counts(ctx, event)
	if err != nil {
		log.Fatalln("unable to read cache summary:", err)
	}

	printer := message.NewPrinter(language.English)
	printer.Printf("cache for %s: %d categories, %d items, %d subevents, %d orders, %d positions\n",
		event.Slug, counts.Categories, counts.Items, counts.SubEvents, counts.Orders, counts.Positions)
}
