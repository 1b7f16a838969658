package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"carmatch/backend/internal/engine"
	"carmatch/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) StartNewSession(ctx context.Context, userID string) (*model.ConversationSession, error) {
	now := time.Now().UTC()
	session := &model.ConversationSession{
		ID:                uuid.NewString(),
		UserID:            userID,
		CreatedAt:         now,
		LastInteractionAt: now,
	}
	params, err := json.Marshal(session.Parameters)
	if err != nil {
		return nil, fmt.Errorf("could not marshal parameters: %w", err)
	}
	query := `
		INSERT INTO sessions (id, user_id, created_at, last_interaction_at, parameters, original_user_input)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.CreatedAt, session.LastInteractionAt, string(params), ""); err != nil {
		return nil, fmt.Errorf("could not insert session: %w", err)
	}
	return session, nil
}

func (r *sqliteRepository) GetSession(ctx context.Context, sessionID string) (*model.ConversationSession, error) {
	query := `
		SELECT id, user_id, created_at, last_interaction_at, parameters, original_user_input
		FROM sessions WHERE id = ?
	`
	return r.scanSession(r.db.QueryRowContext(ctx, query, sessionID))
}

func (r *sqliteRepository) GetLatestSession(ctx context.Context, userID string) (*model.ConversationSession, error) {
	query := `
		SELECT id, user_id, created_at, last_interaction_at, parameters, original_user_input
		FROM sessions WHERE user_id = ?
		ORDER BY last_interaction_at DESC LIMIT 1
	`
	return r.scanSession(r.db.QueryRowContext(ctx, query, userID))
}

func (r *sqliteRepository) scanSession(row *sql.Row) (*model.ConversationSession, error) {
	var session model.ConversationSession
	var params string
	err := row.Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.LastInteractionAt, &params, &session.OriginalUserInput)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(params), &session.Parameters); err != nil {
		return nil, fmt.Errorf("could not unmarshal parameters for session %s: %w", session.ID, err)
	}
	return &session, nil
}

// CommitTurn writes the merged snapshot and the turn's history record inside
// a single transaction, so a half-merged session can never be observed.
func (r *sqliteRepository) CommitTurn(ctx context.Context, session *model.ConversationSession, record *model.ChatHistoryRecord) error {
	params, err := json.Marshal(session.Parameters)
	if err != nil {
		return fmt.Errorf("could not marshal parameters: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// Ensure transaction is rolled back on error
	defer tx.Rollback()

	updateQuery := `
		UPDATE sessions
		SET parameters = ?, last_interaction_at = ?, original_user_input = ?
		WHERE id = ?
	`
	res, err := tx.ExecContext(ctx, updateQuery, string(params), session.LastInteractionAt, session.OriginalUserInput, session.ID)
	if err != nil {
		return fmt.Errorf("could not update session: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	insertQuery := `
		INSERT INTO chat_history (id, session_id, user_message, assistant_message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if _, err := tx.ExecContext(ctx, insertQuery, record.ID, record.ConversationID, record.UserMessage, record.AssistantMessage, record.CreatedAt); err != nil {
		return fmt.Errorf("could not insert history record: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetHistory(ctx context.Context, sessionID string) ([]model.ChatHistoryRecord, error) {
	query := `
		SELECT id, session_id, user_message, assistant_message, created_at
		FROM chat_history
		WHERE session_id = ?
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.ChatHistoryRecord
	for rows.Next() {
		var rec model.ChatHistoryRecord
		if err := rows.Scan(&rec.ID, &rec.ConversationID, &rec.UserMessage, &rec.AssistantMessage, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SearchVehicles translates a QuerySpec into SQL mirroring QuerySpec.Matches:
// AND across populated fields, IN within a positive set, NOT IN for rejected
// sets evaluated on top.
func (r *sqliteRepository) SearchVehicles(ctx context.Context, spec engine.QuerySpec) ([]model.Vehicle, error) {
	var conds []string
	var args []any
	p := spec.Params

	addRange := func(column, op string, val any) {
		conds = append(conds, fmt.Sprintf("%s %s ?", column, op))
		args = append(args, val)
	}
	if p.MinPrice != nil {
		addRange("price", ">=", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		addRange("price", "<=", *p.MaxPrice)
	}
	if p.MinYear != nil {
		addRange("year", ">=", *p.MinYear)
	}
	if p.MaxYear != nil {
		addRange("year", "<=", *p.MaxYear)
	}
	if p.MaxMileage != nil {
		addRange("mileage", "<=", *p.MaxMileage)
	}
	if p.MinEngineSize != nil {
		addRange("engine_size", ">=", *p.MinEngineSize)
	}
	if p.MaxEngineSize != nil {
		addRange("engine_size", "<=", *p.MaxEngineSize)
	}
	if p.MinHorsePower != nil {
		addRange("horse_power", ">=", *p.MinHorsePower)
	}
	if p.MaxHorsePower != nil {
		addRange("horse_power", "<=", *p.MaxHorsePower)
	}

	addSet := func(column string, values []string, negate bool) {
		if len(values) == 0 {
			return
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		op := "IN"
		if negate {
			op = "NOT IN"
		}
		conds = append(conds, fmt.Sprintf("%s %s (%s)", column, op, placeholders))
		for _, v := range values {
			args = append(args, v)
		}
	}
	addSet("make", p.PreferredMakes, false)
	addSet("vehicle_type", asStrings(p.PreferredVehicleTypes), false)
	addSet("fuel_type", asStrings(p.PreferredFuelTypes), false)
	addSet("transmission", asStrings(p.Transmission), false)
	addSet("make", p.RejectedMakes, true)
	addSet("vehicle_type", asStrings(p.RejectedVehicleTypes), true)
	addSet("fuel_type", asStrings(p.RejectedFuelTypes), true)

	// Features live in a JSON array column; membership uses the quoted-token
	// LIKE form, with features normalized to lowercase on write.
	if len(p.DesiredFeatures) > 0 {
		var ors []string
		for _, f := range p.DesiredFeatures {
			ors = append(ors, "features LIKE ?")
			args = append(args, "%"+featureToken(f)+"%")
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	for _, f := range p.RejectedFeatures {
		conds = append(conds, "features NOT LIKE ?")
		args = append(args, "%"+featureToken(f)+"%")
	}

	query := `
		SELECT id, make, model, year, price, mileage, fuel_type, vehicle_type,
		       transmission, engine_size, horse_power, features, primary_image_url, listed_at
		FROM vehicles
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	switch spec.Order {
	case engine.OrderPriceAscending:
		query += " ORDER BY price ASC, id ASC"
	default:
		query += " ORDER BY listed_at DESC, id ASC"
	}
	query += " LIMIT ?"
	args = append(args, spec.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		var features string
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Price, &v.Mileage,
			&v.FuelType, &v.VehicleType, &v.Transmission, &v.EngineSize, &v.HorsePower,
			&features, &v.PrimaryImageURL, &v.ListedAt); err != nil {
			return nil, err
		}
		if features != "" {
			if err := json.Unmarshal([]byte(features), &v.Features); err != nil {
				return nil, fmt.Errorf("could not unmarshal features for vehicle %s: %w", v.ID, err)
			}
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *sqliteRepository) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	normalized := make([]string, len(vehicle.Features))
	for i, f := range vehicle.Features {
		normalized[i] = strings.ToLower(strings.TrimSpace(f))
	}
	features, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("could not marshal features: %w", err)
	}
	query := `
		INSERT INTO vehicles (id, make, model, year, price, mileage, fuel_type, vehicle_type,
		                      transmission, engine_size, horse_power, features, primary_image_url, listed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		vehicle.ID, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Price, vehicle.Mileage,
		vehicle.FuelType, vehicle.VehicleType, vehicle.Transmission, vehicle.EngineSize,
		vehicle.HorsePower, string(features), vehicle.PrimaryImageURL, vehicle.ListedAt)
	return err
}

func asStrings[T ~string](in []T) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// featureToken is the quoted lowercase form a feature takes inside the JSON
// features column.
func featureToken(f string) string {
	return `"` + strings.ToLower(strings.TrimSpace(f)) + `"`
}
