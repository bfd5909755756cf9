package cmd

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"

	"ticket-scan/inbound/uploader"
)

func runUploadCmd(ctx context.Context) {
	cfg := newCfg("env")

	shutdownTracing := newTracerProvider(ctx, cfg)
	defer shutdownTracing()

	st := newStore(cfg)
	defer st.Close()

	event := newEvent(cfg)
	if err := st.Open(ctx, event); err != nil {
		log.Fatalln("unable to open local store", err)
	}

	pending, err := st.RedemptionQueueLength(ctx, event)
	if err != nil {
		log.Fatalln("unable to read redemption queue:", err)
	}
	log.Printf("uploading redemption queue for %s, %d pending\n", event.Slug, pending)

	up := uploader.Uploader{
		Cfg:    cfg,
		Queue:  st,
		Remote: newFetcher(cfg, validator.New()),
		Event:  event,
		ListID: cfg.GetInt64("checkin.list_id"),
	}
	up.Start(ctx)
}
