package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/lib/pq" // Import pq driver.
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
)

const migrations = `
CREATE TABLE IF NOT EXISTS games (
	id VARCHAR(255) PRIMARY KEY,
	value jsonb,
	created timestamp default now()
);
CREATE TABLE IF NOT EXISTS game_frames (
	id VARCHAR(255),
	turn INTEGER,
	value jsonb,
	PRIMARY KEY (id, turn)
);
`

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to reach postgres")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit()
		}
	}()
	err = txFunc(tx)
	return err
}

// CreateGame will insert or replace a game record.
func (s *Store) CreateGame(ctx context.Context, g *controller.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, value) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET value=$2`,
		g.ID, data,
	)
	return err
}

// EndGame marks a game complete with its final result.
func (s *Store) EndGame(ctx context.Context, id string, over *rules.GameOverError) error {
	return s.transact(ctx, func(tx *sql.Tx) error {
		g, err := getGame(ctx, tx, id, "FOR UPDATE")
		if err != nil {
			return err
		}
		g.Complete(over)
		data, err := json.Marshal(g)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE games SET value=$2 WHERE id=$1`, id, data)
		return err
	})
}

// PushGameFrame will push a game frame onto the list of frames.
func (s *Store) PushGameFrame(ctx context.Context, id string, frame *rules.Snapshot) error {
	return s.transact(ctx, func(tx *sql.Tx) error {
		if _, err := getGame(ctx, tx, id, "FOR UPDATE"); err != nil {
			return err
		}

		var last sql.NullInt64
		r := tx.QueryRowContext(ctx, "SELECT MAX(turn) FROM game_frames WHERE id=$1", id)
		if err := r.Scan(&last); err != nil {
			return err
		}
		next := 0
		if last.Valid {
			next = int(last.Int64) + 1
		}
		if frame.Turn != next {
			return controller.ErrInvalidSequence
		}

		data, err := json.Marshal(frame)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO game_frames (id, turn, value) VALUES ($1, $2, $3)`,
			id, frame.Turn, data,
		)
		return err
	})
}

// ListGameFrames will list frames by an offset and limit, it supports
// negative offset.
func (s *Store) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Snapshot, error) {
	if _, err := s.GetGame(ctx, id); err != nil {
		return nil, err
	}

	var n int
	r := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM game_frames WHERE id=$1", id)
	if err := r.Scan(&n); err != nil {
		return nil, err
	}
	start, end := controller.FrameWindow(n, limit, offset)
	if start == end {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM game_frames WHERE id=$1 ORDER BY turn ASC LIMIT $2 OFFSET $3`,
		id, end-start, start,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []*rules.Snapshot
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		frame := &rules.Snapshot{}
		if err := json.Unmarshal(data, frame); err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, rows.Err()
}

// GetGame will fetch the game.
func (s *Store) GetGame(ctx context.Context, id string) (*controller.Game, error) {
	return getGame(ctx, s.db, id, "")
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func getGame(ctx context.Context, q queryRower, id, lock string) (*controller.Game, error) {
	r := q.QueryRowContext(ctx, "SELECT value FROM games WHERE id=$1 "+lock, id)

	var data []byte
	if err := r.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, controller.ErrNotFound
		}
		return nil, err
	}

	g := &controller.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
