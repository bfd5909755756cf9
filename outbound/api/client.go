package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"ticket-scan/common"
	"ticket-scan/common/errs"
	"ticket-scan/common/otel"
	"ticket-scan/model"
)

// Client fetches resource pages from the remote ticketing API. It implements
// contract.Fetcher; authentication and timeouts live in the injected
// http.Client and token, everything else about the transport is out of the
// sync core's hands.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Organizer string
	Token     string

	// Validate, when set, is run against every decoded record; a failing
	// record makes the whole page an empty-response error so no partially
	// valid page is ever handed to the store.
	Validate *validator.Validate
}

type pageEnvelope struct {
	Count       int             `json:"count"`
	Next        *string         `json:"next"`
	Results     json.RawMessage `json:"results"`
	GeneratedAt string          `json:"generated_at"`
}

func (c *Client) FetchPage(ctx context.Context, event model.Event, resourceType model.ResourceType, since, cursor *string) (model.Page, error) {
	ctx, span := otel.Tracer.Start(ctx, "Client.FetchPage")
	defer span.End()
	span.SetAttributes(attribute.String("resource.type", string(resourceType)))

	requestURL, err := c.pageURL(event, resourceType, since, cursor)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindTransport, Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindTransport, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindTransport, Err: err}
	}

	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindEmptyResponse, Err: err}
	}

	results, err := c.decodeResults(resourceType, env.Results)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Page{}, &errs.FetchError{Resource: string(resourceType), Kind: errs.FetchKindEmptyResponse, Err: err}
	}

	return model.Page{
		Results:     results,
		NextCursor:  env.Next,
		TotalCount:  env.Count,
		GeneratedAt: env.GeneratedAt,
	}, nil
}

type redeemBody struct {
	Type               model.CheckInType `json:"type"`
	Datetime           string            `json:"datetime"`
	Nonce              string            `json:"nonce"`
	Force              bool              `json:"force"`
	QuestionsSupported bool              `json:"questions_supported"`
	Answers            map[string]string `json:"answers,omitempty"`
}

type redeemReply struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// PostRedemption replays one queued offline redemption against the remote
// check-in list. The request's id doubles as the idempotency nonce, and force
// is set because entry was already granted at the door.
func (c *Client) PostRedemption(ctx context.Context, event model.Event, listID int64, queued model.QueuedRedemptionRequest) error {
	ctx, span := otel.Tracer.Start(ctx, "Client.PostRedemption")
	defer span.End()
	span.SetAttributes(attribute.String("redemption.id", queued.ID))

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.FetchError{Resource: "redeem", Kind: errs.FetchKindTransport, Err: err}
	}
	base = base.JoinPath("api", "v1", "organizers", c.Organizer, "events", event.Slug,
		"checkinlists", strconv.FormatInt(listID, 10), "positions", queued.Secret, "redeem")

	payload := redeemBody{
		Type:               model.CheckInTypeEntry,
		Datetime:           queued.Datetime.Format(time.RFC3339),
		Nonce:              queued.ID,
		Force:              true,
		QuestionsSupported: true,
	}
	if len(queued.Answers) > 0 {
		payload.Answers = make(map[string]string, len(queued.Answers))
		for _, answer := range queued.Answers {
			payload.Answers[strconv.FormatInt(answer.QuestionID, 10)] = answer.Answer
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.FetchError{Resource: "redeem", Kind: errs.FetchKindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base.String(), bytes.NewReader(body))
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.FetchError{Resource: "redeem", Kind: errs.FetchKindTransport, Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.FetchError{Resource: "redeem", Kind: errs.FetchKindTransport, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var reply redeemReply
		_ = json.NewDecoder(resp.Body).Decode(&reply)
		err := &errs.RedemptionRejectedError{Status: resp.StatusCode, Reason: reply.Reason}
		common.UtilSpanError(span, err)
		return err
	default:
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		common.UtilSpanError(span, err)
		return &errs.FetchError{Resource: "redeem", Kind: errs.FetchKindTransport, Err: err}
	}
}

// pageURL builds the collection URL. The server's next cursor is a complete
// URL, so a non-nil cursor wins over everything else.
func (c *Client) pageURL(event model.Event, resourceType model.ResourceType, since, cursor *string) (string, error) {
	if cursor != nil {
		return *cursor, nil
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	base = base.JoinPath("api", "v1", "organizers", c.Organizer, "events", event.Slug, string(resourceType))
	if since != nil {
		values := url.Values{}
		values.Set("modified_since", *since)
		base.RawQuery = values.Encode()
	}

	return base.String(), nil
}

func (c *Client) decodeResults(resourceType model.ResourceType, raw json.RawMessage) (model.Resource, error) {
	if raw == nil {
		raw = json.RawMessage("[]")
	}

	switch resourceType {
	case model.ResourceCategories:
		categories, err := decodeRecords[model.ItemCategory](raw, c.Validate)
		return model.CategoryResource(categories), err
	case model.ResourceItems:
		items, err := decodeRecords[model.Item](raw, c.Validate)
		return model.ItemResource(items), err
	case model.ResourceSubEvents:
		subEvents, err := decodeRecords[model.SubEvent](raw, c.Validate)
		return model.SubEventResource(subEvents), err
	case model.ResourceOrders:
		orders, err := decodeRecords[model.Order](raw, c.Validate)
		return model.OrderResource(orders), err
	default:
		return model.Resource{}, fmt.Errorf("unknown resource type %q", resourceType)
	}
}

func decodeRecords[T any](raw json.RawMessage, validate *validator.Validate) ([]T, error) {
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}

	if validate != nil {
		for i, record := range records {
			if err := validate.Struct(record); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}
	}

	return records, nil
}
