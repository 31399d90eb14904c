package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"eventticketing/internal/domain"
)

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{
		DB: db,
	}
}

// Amounts are NUMERIC(20,0) columns: uint64 does not fit BIGINT, so they
// travel as decimal strings.

func (r *activityRepository) RecordEventCreated(ctx context.Context, e *domain.EventCreated, at time.Time) error {
	query := `
		INSERT INTO event_created_records (name_hash, name, owner, price, quantity, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, e.NameHash, e.Name, string(e.Owner),
		formatAmount(e.Price), formatAmount(e.Quantity), at)
	return err
}

func (r *activityRepository) RecordBalanceWithdrawn(ctx context.Context, w *domain.BalanceWithdrawn, at time.Time) error {
	query := `
		INSERT INTO balance_withdrawn_records (receiver, asset, amount, recorded_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, string(w.Receiver), string(w.Asset), formatAmount(w.Amount), at)
	return err
}

func (r *activityRepository) ListEventsByOwner(ctx context.Context, owner domain.Address, params domain.PageRequest) ([]*domain.EventCreatedRecord, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM event_created_records WHERE owner = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, string(owner)).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name_hash, name, owner, price::text, quantity::text, recorded_at
		FROM event_created_records
		WHERE owner = $1
		ORDER BY recorded_at DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, string(owner), params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]*domain.EventCreatedRecord, 0)
	for rows.Next() {
		rec := &domain.EventCreatedRecord{}
		var ownerCol, price, quantity string
		if err := rows.Scan(&rec.ID, &rec.NameHash, &rec.Name, &ownerCol, &price, &quantity, &rec.RecordedAt); err != nil {
			return nil, 0, err
		}
		rec.Owner = domain.Address(ownerCol)
		if rec.Price, err = parseAmount(price); err != nil {
			return nil, 0, err
		}
		if rec.Quantity, err = parseAmount(quantity); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *activityRepository) ListWithdrawalsByReceiver(ctx context.Context, receiver domain.Address, params domain.PageRequest) ([]*domain.BalanceWithdrawnRecord, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM balance_withdrawn_records WHERE receiver = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, string(receiver)).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, receiver, asset, amount::text, recorded_at
		FROM balance_withdrawn_records
		WHERE receiver = $1
		ORDER BY recorded_at DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, string(receiver), params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]*domain.BalanceWithdrawnRecord, 0)
	for rows.Next() {
		rec := &domain.BalanceWithdrawnRecord{}
		var receiverCol, assetCol, amount string
		if err := rows.Scan(&rec.ID, &receiverCol, &assetCol, &amount, &rec.RecordedAt); err != nil {
			return nil, 0, err
		}
		rec.Receiver = domain.Address(receiverCol)
		rec.Asset = domain.AssetID(assetCol)
		if rec.Amount, err = parseAmount(amount); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func formatAmount(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}
