// Package filestore keeps game records on disk, one append only archive per
// game. Running games are cached in memory, finished games are read back from
// their archive on demand.
package filestore

import (
	"context"
	"os"
	"path"
	"sync"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	log "github.com/sirupsen/logrus"
)

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return path.Join(home, ".snake/games")
}

// NewFileStore returns a file based store implementation (1 file per game).
func NewFileStore(directory string) *Store {
	if directory == "" {
		directory = defaultDir()
	}

	return &Store{
		games:     map[string]*controller.Game{},
		frames:    map[string][]*rules.Snapshot{},
		writers:   map[string]writer{},
		directory: directory,
	}
}

// Store is a file based store.
type Store struct {
	games     map[string]*controller.Game
	frames    map[string][]*rules.Snapshot
	writers   map[string]writer
	lock      sync.Mutex
	directory string
}

// closeGame removes the game from the in-memory cache and closes the handle
// to its file. Should be called when game is complete.
func (fs *Store) closeGame(id string) {
	if w, ok := fs.writers[id]; ok {
		err := w.Close()
		if err != nil {
			log.WithError(err).Error("Error while closing file writer")
		}
	}
	delete(fs.games, id)
	delete(fs.frames, id)
	delete(fs.writers, id)
}

// CreateGame starts a new archive for the game, replacing any existing one.
func (fs *Store) CreateGame(ctx context.Context, g *controller.Game) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.closeGame(g.ID)
	handle, err := openFileWriter(fs.directory, g.ID, true)
	if err != nil {
		return err
	}
	fs.writers[g.ID] = handle

	cp := *g
	if err := writeGame(handle, &cp); err != nil {
		return err
	}
	fs.games[g.ID] = &cp
	fs.frames[g.ID] = nil
	return nil
}

// EndGame writes the final game record and drops the game from the cache.
func (fs *Store) EndGame(ctx context.Context, id string, over *rules.GameOverError) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	game, err := fs.requireGame(id)
	if err != nil {
		return err
	}
	handle, err := fs.requireHandle(id)
	if err != nil {
		return err
	}

	game.Complete(over)
	if err := writeGame(handle, game); err != nil {
		return err
	}
	fs.closeGame(id)
	return nil
}

// PushGameFrame appends a frame to the archive.
func (fs *Store) PushGameFrame(ctx context.Context, id string, f *rules.Snapshot) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if _, err := fs.requireGame(id); err != nil {
		return err
	}
	frames, err := fs.requireFrames(id)
	if err != nil {
		return err
	}
	if f.Turn != len(frames) {
		return controller.ErrInvalidSequence
	}
	handle, err := fs.requireHandle(id)
	if err != nil {
		return err
	}

	cp := *f
	if err := writeFrame(handle, &cp); err != nil {
		return err
	}
	fs.frames[id] = append(frames, &cp)
	return nil
}

// ListGameFrames will list frames by an offset and limit, it supports
// negative offset.
func (fs *Store) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Snapshot, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if _, err := fs.requireGame(id); err != nil {
		return nil, err
	}
	frames, err := fs.requireFrames(id)
	if err != nil {
		return nil, err
	}

	start, end := controller.FrameWindow(len(frames), limit, offset)
	if start == end {
		return nil, nil
	}
	return append([]*rules.Snapshot(nil), frames[start:end]...), nil
}

// GetGame will fetch the game.
func (fs *Store) GetGame(ctx context.Context, id string) (*controller.Game, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	g, err := fs.requireGame(id)
	if err != nil {
		return nil, err
	}

	// Copy the game, since this could be modified after this is returned
	// and upset internal state inside the store.
	cp := *g
	return &cp, nil
}

// Close closes every open archive.
func (fs *Store) Close() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	for id := range fs.writers {
		fs.closeGame(id)
	}
	return nil
}

func (fs *Store) requireHandle(id string) (writer, error) {
	if w, ok := fs.writers[id]; ok {
		return w, nil
	}

	handle, err := openFileWriter(fs.directory, id, false)
	if err != nil {
		return nil, err
	}

	fs.writers[id] = handle
	return handle, nil
}

func (fs *Store) requireGame(id string) (*controller.Game, error) {
	// Do nothing if game already loaded.
	if g, ok := fs.games[id]; ok {
		return g, nil
	}

	g, frames, err := readArchive(fs.directory, id)
	if err != nil {
		return nil, err
	}

	fs.games[id] = g
	fs.frames[id] = frames
	return g, nil
}

func (fs *Store) requireFrames(id string) ([]*rules.Snapshot, error) {
	// Do nothing if frames already loaded.
	if frames, ok := fs.frames[id]; ok {
		return frames, nil
	}

	_, frames, err := readArchive(fs.directory, id)
	if err != nil {
		return nil, err
	}

	fs.frames[id] = frames
	return frames, nil
}

func getFilePath(directory string, id string) string {
	return path.Join(directory, path.Base(id)) + ".snake"
}
