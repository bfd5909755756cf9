package cmd

import (
	"context"
	"fmt"
	"log"
)

func runResetCmd(ctx context.Context) {
	cfg := newCfg("env")

	st := newStore(cfg)
	defer st.Close()

	event := newEvent(cfg)
	if err := st.Open(ctx, event); err != nil {
		log.Fatalln("unable to open local store", err)
	}

	if err := st.Reset(ctx, event); err != nil {
		log.Fatalln("reset failed:", err)
	}

	fmt.Printf("cleared cache and checkpoints for %s\n", event.Slug)
}
