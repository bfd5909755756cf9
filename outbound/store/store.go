package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel/attribute"

	"ticket-scan/common"
	"ticket-scan/common/errs"
	"ticket-scan/common/otel"
	"ticket-scan/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS item_categories (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	internal_name TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0,
	is_addon INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	internal_name TEXT NOT NULL DEFAULT '',
	default_price TEXT NOT NULL DEFAULT '',
	category INTEGER,
	active INTEGER NOT NULL DEFAULT 1,
	description TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0,
	checkin_attention INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS questions (
	id INTEGER NOT NULL,
	item INTEGER NOT NULL,
	type TEXT NOT NULL,
	question TEXT NOT NULL DEFAULT '',
	required INTEGER NOT NULL DEFAULT 0,
	ask_during_checkin INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (item, id)
);

CREATE TABLE IF NOT EXISTS subevents (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	event TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	code TEXT PRIMARY KEY,
	status TEXT NOT NULL,
	secret TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	checkin_attention INTEGER NOT NULL DEFAULT 0,
	require_approval INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS order_positions (
	id INTEGER PRIMARY KEY,
	order_code TEXT NOT NULL,
	positionid INTEGER NOT NULL DEFAULT 0,
	item INTEGER NOT NULL,
	variation INTEGER,
	price TEXT NOT NULL DEFAULT '',
	attendee_name TEXT NOT NULL DEFAULT '',
	attendee_email TEXT NOT NULL DEFAULT '',
	secret TEXT NOT NULL,
	pseudonymization_id TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_order_positions_secret ON order_positions (secret);
CREATE INDEX IF NOT EXISTS idx_order_positions_order ON order_positions (order_code);

CREATE TABLE IF NOT EXISTS checkins (
	id TEXT PRIMARY KEY,
	secret TEXT NOT NULL,
	list INTEGER NOT NULL DEFAULT 0,
	type TEXT NOT NULL,
	datetime TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS redemption_queue (
	id TEXT PRIMARY KEY,
	secret TEXT NOT NULL,
	datetime TEXT NOT NULL,
	answers TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS sync_checkpoints (
	resource_type TEXT PRIMARY KEY,
	marker TEXT NOT NULL
);
`

// Store keeps one SQLite database per event under a data directory. At most
// one handle is open at a time; switching events closes the previous one.
// All writes are serialized through the store's mutex, one transaction per
// upserted page.
type Store struct {
	dir string

	mu    sync.Mutex
	db    *sql.DB
	event string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, &errs.ConfigError{Field: "data_dir", Message: "must not be empty"}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &errs.StoreError{Op: "create data dir", Fatal: true, Err: err}
	}

	return &Store{dir: dir}, nil
}

// Open makes sure the event's database exists with its schema in place. A
// schema failure is unrecoverable for this event's handle; the caller
// decides whether to retry with a fresh path or abort startup.
func (s *Store) Open(ctx context.Context, event model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.handleLocked(ctx, event)
	return err
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.event = ""
	return err
}

// handleLocked returns the memoized handle for event, opening a new database
// and closing the previous one when the event changed. Callers must hold mu.
func (s *Store) handleLocked(ctx context.Context, event model.Event) (*sql.DB, error) {
	if event.Slug == "" {
		return nil, &errs.ConfigError{Field: "event", Message: "must be set before using the store"}
	}

	if s.db != nil && s.event == event.Slug {
		return s.db, nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return nil, &errs.StoreError{Op: "close previous handle", Err: err}
		}
		s.db = nil
		s.event = ""
	}

	path := filepath.Join(s.dir, event.Slug+".sqlite")
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, &errs.StoreError{Op: "open database", Fatal: true, Err: err}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, &errs.StoreError{Op: "init schema", Fatal: true, Err: err}
	}

	s.db = db
	s.event = event.Slug
	return db, nil
}

func (s *Store) reader(ctx context.Context, event model.Event) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handleLocked(ctx, event)
}

// Upsert stores one page of records in a single transaction: either every
// record in the batch becomes visible or none of them.
func (s *Store) Upsert(ctx context.Context, event model.Event, res model.Resource) error {
	ctx, span := otel.Tracer.Start(ctx, "Store.Upsert")
	defer span.End()
	span.SetAttributes(
		attribute.String("resource.type", string(res.Type)),
		attribute.Int("resource.count", res.Len()),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.handleLocked(ctx, event)
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.StoreError{Op: "begin upsert", Err: err}
	}
	defer tx.Rollback()

	switch res.Type {
	case model.ResourceCategories:
		err = upsertCategories(ctx, tx, res.Categories)
	case model.ResourceItems:
		err = upsertItems(ctx, tx, res.Items)
	case model.ResourceSubEvents:
		err = upsertSubEvents(ctx, tx, res.SubEvents)
	case model.ResourceOrders:
		err = upsertOrders(ctx, tx, res.Orders)
	default:
		err = fmt.Errorf("unknown resource type %q", res.Type)
	}
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.StoreError{Op: fmt.Sprintf("upsert %s", res.Type), Err: err}
	}

	if err := tx.Commit(); err != nil {
		common.UtilSpanError(span, err)
		return &errs.StoreError{Op: fmt.Sprintf("commit %s", res.Type), Err: err}
	}

	return nil
}

func upsertCategories(ctx context.Context, tx *sql.Tx, categories []model.ItemCategory) error {
	const query = `
		INSERT INTO item_categories (id, name, internal_name, description, position, is_addon)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			internal_name = excluded.internal_name,
			description = excluded.description,
			position = excluded.position,
			is_addon = excluded.is_addon`

	for _, category := range categories {
		_, err := tx.ExecContext(ctx, query,
			category.ID, category.Name, category.InternalName,
			category.Description, category.Position, category.IsAddon)
		if err != nil {
			return fmt.Errorf("category %d: %w", category.ID, err)
		}
	}

	return nil
}

func upsertItems(ctx context.Context, tx *sql.Tx, items []model.Item) error {
	const itemQuery = `
		INSERT INTO items (id, name, internal_name, default_price, category, active, description, position, checkin_attention)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			internal_name = excluded.internal_name,
			default_price = excluded.default_price,
			category = excluded.category,
			active = excluded.active,
			description = excluded.description,
			position = excluded.position,
			checkin_attention = excluded.checkin_attention`

	const questionQuery = `
		INSERT INTO questions (id, item, type, question, required, ask_during_checkin, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	for _, item := range items {
		_, err := tx.ExecContext(ctx, itemQuery,
			item.ID, item.Name, item.InternalName, item.DefaultPrice, item.CategoryID,
			item.Active, item.Description, item.Position, item.CheckInAttention)
		if err != nil {
			return fmt.Errorf("item %d: %w", item.ID, err)
		}

		// The embedded question set is replaced as a whole so questions
		// removed upstream do not linger.
		if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE item = ?`, item.ID); err != nil {
			return fmt.Errorf("item %d questions: %w", item.ID, err)
		}

		for _, question := range item.Questions {
			_, err := tx.ExecContext(ctx, questionQuery,
				question.ID, item.ID, string(question.Type), question.Question,
				question.Required, question.AskDuringCheckIn, question.Position)
			if err != nil {
				return fmt.Errorf("item %d question %d: %w", item.ID, question.ID, err)
			}
		}
	}

	return nil
}

func upsertSubEvents(ctx context.Context, tx *sql.Tx, subEvents []model.SubEvent) error {
	const query = `
		INSERT INTO subevents (id, name, event)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			event = excluded.event`

	for _, subEvent := range subEvents {
		if _, err := tx.ExecContext(ctx, query, subEvent.ID, subEvent.Name, subEvent.Event); err != nil {
			return fmt.Errorf("subevent %d: %w", subEvent.ID, err)
		}
	}

	return nil
}

func upsertOrders(ctx context.Context, tx *sql.Tx, orders []model.Order) error {
	const orderQuery = `
		INSERT INTO orders (code, status, secret, email, checkin_attention, require_approval)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			status = excluded.status,
			secret = excluded.secret,
			email = excluded.email,
			checkin_attention = excluded.checkin_attention,
			require_approval = excluded.require_approval`

	const positionQuery = `
		INSERT INTO order_positions (id, order_code, positionid, item, variation, price, attendee_name, attendee_email, secret, pseudonymization_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, order := range orders {
		_, err := tx.ExecContext(ctx, orderQuery,
			order.Code, string(order.Status), order.Secret, order.Email,
			order.CheckInAttention, order.RequireApproval)
		if err != nil {
			return fmt.Errorf("order %s: %w", order.Code, err)
		}

		// Positions are replaced as a whole so a canceled position does not
		// stay scannable at the door.
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_positions WHERE order_code = ?`, order.Code); err != nil {
			return fmt.Errorf("order %s positions: %w", order.Code, err)
		}

		for _, position := range order.Positions {
			_, err := tx.ExecContext(ctx, positionQuery,
				position.ID, order.Code, position.PositionID, position.ItemID,
				position.VariationID, position.Price, position.AttendeeName,
				position.AttendeeEmail, position.Secret, position.PseudonymizationID)
			if err != nil {
				return fmt.Errorf("order %s position %d: %w", order.Code, position.ID, err)
			}
		}
	}

	return nil
}

// GetQuestions returns the cached question set of an item in position order.
// An item without questions is a successful empty result; an item missing
// from the cache entirely is a StoreError.
func (s *Store) GetQuestions(ctx context.Context, event model.Event, itemID int64) ([]model.Question, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return nil, err
	}

	var exists bool
	err = db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = ?)`, itemID).Scan(&exists)
	if err != nil {
		return nil, &errs.StoreError{Op: "check item", Err: err}
	}
	if !exists {
		return nil, &errs.StoreError{Op: "get questions", Err: fmt.Errorf("item %d not cached", itemID)}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, type, question, required, ask_during_checkin, position
		FROM questions
		WHERE item = ?
		ORDER BY position, id`, itemID)
	if err != nil {
		return nil, &errs.StoreError{Op: "get questions", Err: err}
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		var qType string
		if err := rows.Scan(&q.ID, &qType, &q.Question, &q.Required, &q.AskDuringCheckIn, &q.Position); err != nil {
			return nil, &errs.StoreError{Op: "scan question", Err: err}
		}
		q.Type = model.QuestionType(qType)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, &errs.StoreError{Op: "get questions", Err: err}
	}

	return questions, nil
}

func (s *Store) GetCheckpoint(ctx context.Context, event model.Event, resourceType model.ResourceType) (string, bool, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return "", false, err
	}

	var marker string
	err = db.QueryRowContext(ctx,
		`SELECT marker FROM sync_checkpoints WHERE resource_type = ?`, string(resourceType)).Scan(&marker)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &errs.StoreError{Op: "get checkpoint", Err: err}
	}

	return marker, true, nil
}

func (s *Store) SetCheckpoint(ctx context.Context, event model.Event, resourceType model.ResourceType, marker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.handleLocked(ctx, event)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO sync_checkpoints (resource_type, marker)
		VALUES (?, ?)
		ON CONFLICT (resource_type) DO UPDATE SET marker = excluded.marker`,
		string(resourceType), marker)
	if err != nil {
		return &errs.StoreError{Op: "set checkpoint", Err: err}
	}

	return nil
}

// Reset drops all cached data and checkpoints for the event, as if it had
// never been synced.
func (s *Store) Reset(ctx context.Context, event model.Event) error {
	ctx, span := otel.Tracer.Start(ctx, "Store.Reset")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.handleLocked(ctx, event)
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		common.UtilSpanError(span, err)
		return &errs.StoreError{Op: "begin reset", Err: err}
	}
	defer tx.Rollback()

	tables := []string{
		"item_categories", "items", "questions", "subevents",
		"orders", "order_positions", "checkins", "redemption_queue",
		"sync_checkpoints",
	}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			common.UtilSpanError(span, err)
			return &errs.StoreError{Op: "reset " + table, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		common.UtilSpanError(span, err)
		return &errs.StoreError{Op: "commit reset", Err: err}
	}

	return nil
}

// SearchOrderPositions matches attendee name, attendee email or order code,
// case-insensitively, returning door-search results in order-code order.
func (s *Store) SearchOrderPositions(ctx context.Context, event model.Event, query string) ([]model.OrderPosition, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return nil, err
	}

	pattern := "%" + query + "%"
	rows, err := db.QueryContext(ctx, `
		SELECT id, order_code, positionid, item, variation, price, attendee_name, attendee_email, secret, pseudonymization_id
		FROM order_positions
		WHERE attendee_name LIKE ? OR attendee_email LIKE ? OR order_code LIKE ?
		ORDER BY order_code, positionid`, pattern, pattern, pattern)
	if err != nil {
		return nil, &errs.StoreError{Op: "search positions", Err: err}
	}
	defer rows.Close()

	return scanPositions(rows)
}

// PositionBySecret resolves the scanned ticket secret to its cached position.
func (s *Store) PositionBySecret(ctx context.Context, event model.Event, secret string) (model.OrderPosition, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return model.OrderPosition{}, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, order_code, positionid, item, variation, price, attendee_name, attendee_email, secret, pseudonymization_id
		FROM order_positions
		WHERE secret = ?`, secret)

	var p model.OrderPosition
	err = row.Scan(&p.ID, &p.OrderCode, &p.PositionID, &p.ItemID, &p.VariationID,
		&p.Price, &p.AttendeeName, &p.AttendeeEmail, &p.Secret, &p.PseudonymizationID)
	if err == sql.ErrNoRows {
		return model.OrderPosition{}, &errs.StoreError{Op: "position by secret", Err: fmt.Errorf("no position for secret")}
	}
	if err != nil {
		return model.OrderPosition{}, &errs.StoreError{Op: "position by secret", Err: err}
	}

	return p, nil
}

// GetItem loads one cached item including its question set.
func (s *Store) GetItem(ctx context.Context, event model.Event, itemID int64) (model.Item, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return model.Item{}, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, name, internal_name, default_price, category, active, description, position, checkin_attention
		FROM items
		WHERE id = ?`, itemID)

	var item model.Item
	err = row.Scan(&item.ID, &item.Name, &item.InternalName, &item.DefaultPrice,
		&item.CategoryID, &item.Active, &item.Description, &item.Position, &item.CheckInAttention)
	if err == sql.ErrNoRows {
		return model.Item{}, &errs.StoreError{Op: "get item", Err: fmt.Errorf("item %d not cached", itemID)}
	}
	if err != nil {
		return model.Item{}, &errs.StoreError{Op: "get item", Err: err}
	}

	item.Questions, err = s.GetQuestions(ctx, event, itemID)
	if err != nil {
		return model.Item{}, err
	}

	return item, nil
}

func (s *Store) SaveCheckIn(ctx context.Context, event model.Event, checkIn model.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.handleLocked(ctx, event)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO checkins (id, secret, list, type, datetime)
		VALUES (?, ?, ?, ?, ?)`,
		checkIn.ID, checkIn.Secret, checkIn.ListID, string(checkIn.Type),
		checkIn.Datetime.UTC().Format(time.RFC3339))
	if err != nil {
		return &errs.StoreError{Op: "save checkin", Err: err}
	}

	return nil
}

func (s *Store) EnqueueRedemptionRequest(ctx context.Context, event model.Event, req model.QueuedRedemptionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.handleLocked(ctx, event)
	if err != nil {
		return err
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return &errs.StoreError{Op: "encode answers", Err: err}
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO redemption_queue (id, secret, datetime, answers)
		VALUES (?, ?, ?, ?)`,
		req.ID, req.Secret, req.Datetime.UTC().Format(time.RFC3339), string(answers))
	if err != nil {
		return &errs.StoreError{Op: "enqueue redemption", Err: err}
	}

	return nil
}

// NextRedemptionRequest returns the oldest queued redemption, or false when
// the queue is empty.
func (s *Store) NextRedemptionRequest(ctx context.Context, event model.Event) (model.QueuedRedemptionRequest, bool, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return model.QueuedRedemptionRequest{}, false, err
	}

	row := db.QueryRowContext(ctx, `
		SELECT id, secret, datetime, answers
		FROM redemption_queue
		ORDER BY datetime, id
		LIMIT 1`)

	var req model.QueuedRedemptionRequest
	var datetime, answers string
	err = row.Scan(&req.ID, &req.Secret, &datetime, &answers)
	if err == sql.ErrNoRows {
		return model.QueuedRedemptionRequest{}, false, nil
	}
	if err != nil {
		return model.QueuedRedemptionRequest{}, false, &errs.StoreError{Op: "next redemption", Err: err}
	}

	req.Datetime, err = time.Parse(time.RFC3339, datetime)
	if err != nil {
		return model.QueuedRedemptionRequest{}, false, &errs.StoreError{Op: "decode redemption time", Err: err}
	}
	if err := json.Unmarshal([]byte(answers), &req.Answers); err != nil {
		return model.QueuedRedemptionRequest{}, false, &errs.StoreError{Op: "decode answers", Err: err}
	}

	return req, true, nil
}

func (s *Store) DeleteRedemptionRequest(ctx context.Context, event model.Event, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.handleLocked(ctx, event)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM redemption_queue WHERE id = ?`, id); err != nil {
		return &errs.StoreError{Op: "delete redemption", Err: err}
	}

	return nil
}

func (s *Store) RedemptionQueueLength(ctx context.Context, event model.Event) (int, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM redemption_queue`).Scan(&count); err != nil {
		return 0, &errs.StoreError{Op: "count redemption queue", Err: err}
	}

	return count, nil
}

func scanPositions(rows *sql.Rows) ([]model.OrderPosition, error) {
	var positions []model.OrderPosition
	for rows.Next() {
		var p model.OrderPosition
		err := rows.Scan(&p.ID, &p.OrderCode, &p.PositionID, &p.ItemID, &p.VariationID,
			&p.Price, &p.AttendeeName, &p.AttendeeEmail, &p.Secret, &p.PseudonymizationID)
		if err != nil {
			return nil, &errs.StoreError{Op: "scan position", Err: err}
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &errs.StoreError{Op: "scan positions", Err: err}
	}

	return positions, nil
}
