package cmd

import (
	"context"
	"fmt"
	"log"
)

func runSearchCmd(ctx context.Context, query string) {
	cfg := newCfg("env")

	st := newStore(cfg)
	defer st.Close()

	event := newEvent(cfg)
	if err := st.Open(ctx, event); err != nil {
		log.Fatalln("unable to open local store", err)
	}

	positions, err := st.SearchOrderPositions(ctx, event, query)
	if err != nil {
		log.Fatalln("search failed:", err)
	}

	if len(positions) == 0 {
		fmt.Println("no matches")
		return
	}

	for _, position := range positions {
		fmt.Printf("%s #%d  %s  <%s>  item %d  %s\n",
			position.OrderCode, position.PositionID, position.AttendeeName,
			position.AttendeeEmail, position.ItemID, position.Price)
	}
}
