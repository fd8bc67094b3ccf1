package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/database"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// SQLiteRepository is a Repository backed by the profiles database.
// Structured values are stored as msgpack blobs.
type SQLiteRepository struct {
	db  *sql.DB
	log zerolog.Logger
	now func() time.Time
}

// NewSQLiteRepository creates a repository over a migrated profiles database
func NewSQLiteRepository(db *sql.DB, log zerolog.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		db:  db,
		log: log.With().Str("repository", "profiles_sqlite").Logger(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *SQLiteRepository) SaveFinancialProfile(ctx context.Context, p domain.UserFinancialProfile) error {
	if p.UserID == "" {
		return fmt.Errorf("financial profile has no user id")
	}
	data, err := msgpack.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode financial profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO financial_profiles (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, p.UserID, data, r.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save financial profile for %s: %w", p.UserID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetFinancialProfile(ctx context.Context, userID string) (domain.UserFinancialProfile, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, "SELECT data FROM financial_profiles WHERE user_id = ?", userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserFinancialProfile{}, fmt.Errorf("financial profile for %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.UserFinancialProfile{}, fmt.Errorf("failed to load financial profile for %s: %w", userID, err)
	}

	var p domain.UserFinancialProfile
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return domain.UserFinancialProfile{}, fmt.Errorf("failed to decode financial profile for %s: %w", userID, err)
	}
	return p, nil
}

func (r *SQLiteRepository) SavePortfolio(ctx context.Context, userID string, p domain.Portfolio) error {
	allocations, err := msgpack.Marshal(p.Allocations)
	if err != nil {
		return fmt.Errorf("failed to encode allocations: %w", err)
	}
	var assets []byte
	if len(p.Assets) > 0 {
		if assets, err = msgpack.Marshal(p.Assets); err != nil {
			return fmt.Errorf("failed to encode assets: %w", err)
		}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO portfolios (user_id, allocations, assets, total_value, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			allocations = excluded.allocations,
			assets = excluded.assets,
			total_value = excluded.total_value,
			updated_at = excluded.updated_at
	`, userID, allocations, assets, p.TotalValue, r.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save portfolio for %s: %w", userID, err)
	}
	return nil
}

func (r *SQLiteRepository) GetPortfolio(ctx context.Context, userID string) (domain.Portfolio, error) {
	var (
		allocations, assets []byte
		totalValue          float64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT allocations, assets, total_value FROM portfolios WHERE user_id = ?", userID,
	).Scan(&allocations, &assets, &totalValue)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Portfolio{}, fmt.Errorf("portfolio for %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to load portfolio for %s: %w", userID, err)
	}

	p := domain.Portfolio{TotalValue: totalValue}
	if err := msgpack.Unmarshal(allocations, &p.Allocations); err != nil {
		return domain.Portfolio{}, fmt.Errorf("failed to decode allocations for %s: %w", userID, err)
	}
	if len(assets) > 0 {
		if err := msgpack.Unmarshal(assets, &p.Assets); err != nil {
			return domain.Portfolio{}, fmt.Errorf("failed to decode assets for %s: %w", userID, err)
		}
	}
	return p, nil
}

func (r *SQLiteRepository) SaveRiskProfile(ctx context.Context, p domain.UserRiskProfile) (domain.UserRiskProfile, error) {
	err := database.WithTransaction(r.db, func(tx *sql.Tx) error {
		var latest int
		if err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(version), 0) FROM risk_profiles WHERE user_id = ?", p.UserID,
		).Scan(&latest); err != nil {
			return fmt.Errorf("failed to read latest version: %w", err)
		}

		p.ID = uuid.New().String()
		p.Version = latest + 1
		p.LastUpdated = p.LastUpdated.UTC()

		data, err := msgpack.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode risk profile: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE risk_profiles SET superseded_at = ? WHERE user_id = ? AND superseded_at IS NULL",
			r.now().Unix(), p.UserID,
		); err != nil {
			return fmt.Errorf("failed to supersede previous version: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO risk_profiles (id, user_id, version, risk_tolerance_score, risk_profile, data, last_updated)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.UserID, p.Version, p.RiskToleranceScore, string(p.RiskProfile), data, p.LastUpdated.Unix())
		if err != nil {
			return fmt.Errorf("failed to insert risk profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.UserRiskProfile{}, fmt.Errorf("failed to save risk profile for %s: %w", p.UserID, err)
	}

	r.log.Debug().Str("user_id", p.UserID).Int("version", p.Version).Msg("Stored risk profile")
	return p, nil
}

func (r *SQLiteRepository) GetRiskProfile(ctx context.Context, userID string) (domain.UserRiskProfile, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT data FROM risk_profiles
		WHERE user_id = ? AND superseded_at IS NULL
		ORDER BY version DESC LIMIT 1
	`, userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserRiskProfile{}, fmt.Errorf("risk profile for %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.UserRiskProfile{}, fmt.Errorf("failed to load risk profile for %s: %w", userID, err)
	}
	return decodeRiskProfile(data)
}

func (r *SQLiteRepository) GetRiskProfileHistory(ctx context.Context, userID string) ([]domain.UserRiskProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT data FROM risk_profiles WHERE user_id = ? ORDER BY version ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk profile history for %s: %w", userID, err)
	}
	defer rows.Close()

	var history []domain.UserRiskProfile
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan risk profile: %w", err)
		}
		p, err := decodeRiskProfile(data)
		if err != nil {
			return nil, err
		}
		history = append(history, p)
	}
	return history, rows.Err()
}

func (r *SQLiteRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT user_id FROM financial_profiles ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func decodeRiskProfile(data []byte) (domain.UserRiskProfile, error) {
	var p domain.UserRiskProfile
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return domain.UserRiskProfile{}, fmt.Errorf("failed to decode risk profile: %w", err)
	}
	p.LastUpdated = p.LastUpdated.UTC()
	return p, nil
}
