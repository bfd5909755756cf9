package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"ticket-scan/inbound/checkin"
	"ticket-scan/model"
)

func runCheckinCmd(ctx context.Context, secret string, rawAnswers []string) {
	cfg := newCfg("env")

	shutdownTracing := newTracerProvider(ctx, cfg)
	defer shutdownTracing()

	st := newStore(cfg)
	defer st.Close()

	event := newEvent(cfg)
	if err := st.Open(ctx, event); err != nil {
		log.Fatalln("unable to open local store", err)
	}

	answers, err := parseAnswers(rawAnswers)
	if err != nil {
		log.Fatalln(err)
	}

	// Signature verification happens in the scanning layer; by the time a
	// secret reaches this command it is already trusted.
	ticket := model.SignedTicketData{Secret: secret}

	position, err := st.PositionBySecret(ctx, event, ticket.Secret)
	if err != nil {
		log.Fatalln("ticket not found in local cache:", err)
	}

	item, err := st.GetItem(ctx, event, position.ItemID)
	if err != nil {
		log.Fatalln("unable to load item:", err)
	}

	validator, err := checkin.NewValidator(st)
	if err != nil {
		log.Fatalln(err)
	}

	outcome := validator.Check(ctx, event, ticket, item, answers)
	switch outcome.Status {
	case model.StatusIncomplete:
		fmt.Println("missing required info:")
		for _, question := range outcome.Unmet {
			fmt.Printf("  [%d] %s\n", question.ID, question.Question)
		}
		return
	case model.StatusUnknownError:
		fmt.Println("cannot verify, try again")
		return
	}

	recorder, err := checkin.NewRecorder(st, cfg.GetInt64("checkin.list_id"))
	if err != nil {
		log.Fatalln(err)
	}

	checkIn, err := recorder.Redeem(ctx, event, ticket, answers)
	if err != nil {
		log.Fatalln("unable to record check-in:", err)
	}

	name := position.AttendeeName
	if name == "" {
		name = position.OrderCode
	}
	fmt.Printf("admitted %s (check-in %s)\n", name, checkIn.ID)
}

func parseAnswers(rawAnswers []string) ([]model.Answer, error) {
	if len(rawAnswers) == 0 {
		return nil, nil
	}

	answers := make([]model.Answer, 0, len(rawAnswers))
	for _, raw := range rawAnswers {
		questionID, value, found := strings.Cut(raw, "=")
		if !found {
			return nil, fmt.Errorf("answer %q: expected <question-id>=<value>", raw)
		}

		id, err := strconv.ParseInt(questionID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", raw, err)
		}

		answers = append(answers, model.Answer{QuestionID: id, Answer: value})
	}

	return answers, nil
}
