package redis

import (
	"context"
	"encoding/json"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// Store is a redis backed controller.Store. Game records live under
// "game:<id>" and frames in the list "game:<id>:frames".
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

func gameKey(id string) string   { return "game:" + id }
func framesKey(id string) string { return "game:" + id + ":frames" }

// CreateGame stores a new game record.
func (rs *Store) CreateGame(ctx context.Context, g *controller.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "unable to marshal game")
	}
	err = rs.client.WithContext(ctx).Set(gameKey(g.ID), data, 0).Err()
	return errors.Wrap(err, "unable to store game")
}

// EndGame marks a game complete with its final result.
func (rs *Store) EndGame(ctx context.Context, id string, over *rules.GameOverError) error {
	g, err := rs.GetGame(ctx, id)
	if err != nil {
		return err
	}
	g.Complete(over)
	return rs.CreateGame(ctx, g)
}

// PushGameFrame will push a game frame onto the list of frames.
func (rs *Store) PushGameFrame(ctx context.Context, id string, frame *rules.Snapshot) error {
	c := rs.client.WithContext(ctx)
	if err := rs.exists(c, id); err != nil {
		return err
	}

	n, err := c.LLen(framesKey(id)).Result()
	if err != nil {
		return errors.Wrap(err, "unable to count frames")
	}
	if int64(frame.Turn) != n {
		return controller.ErrInvalidSequence
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return errors.Wrap(err, "unable to marshal frame")
	}
	return errors.Wrap(c.RPush(framesKey(id), data).Err(), "unable to push frame")
}

// ListGameFrames will list frames by an offset and limit, it supports
// negative offset.
func (rs *Store) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Snapshot, error) {
	c := rs.client.WithContext(ctx)
	if err := rs.exists(c, id); err != nil {
		return nil, err
	}

	n, err := c.LLen(framesKey(id)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to count frames")
	}
	start, end := controller.FrameWindow(int(n), limit, offset)
	if start == end {
		return nil, nil
	}

	values, err := c.LRange(framesKey(id), int64(start), int64(end-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read frames")
	}

	frames := make([]*rules.Snapshot, 0, len(values))
	for _, v := range values {
		f := &rules.Snapshot{}
		if err := json.Unmarshal([]byte(v), f); err != nil {
			return nil, errors.Wrap(err, "unable to unmarshal frame")
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// GetGame will fetch the game.
func (rs *Store) GetGame(ctx context.Context, id string) (*controller.Game, error) {
	data, err := rs.client.WithContext(ctx).Get(gameKey(id)).Bytes()
	if err == redis.Nil {
		return nil, controller.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read game")
	}

	g := &controller.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal game")
	}
	return g, nil
}

func (rs *Store) exists(c *redis.Client, id string) error {
	n, err := c.Exists(gameKey(id)).Result()
	if err != nil {
		return errors.Wrap(err, "unable to check game")
	}
	if n == 0 {
		return controller.ErrNotFound
	}
	return nil
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}
