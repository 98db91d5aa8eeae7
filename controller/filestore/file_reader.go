package filestore

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

func readArchive(directory, id string) (*controller.Game, []*rules.Snapshot, error) {
	f, err := os.Open(getFilePath(directory, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, controller.ErrNotFound
		}
		return nil, nil, err
	}
	defer f.Close()

	return readLines(bufio.NewReader(f), id)
}

func readLines(r *bufio.Reader, id string) (*controller.Game, []*rules.Snapshot, error) {
	var (
		game   *controller.Game
		frames []*rules.Snapshot
	)
	for n := 1; ; n++ {
		bytes, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, nil, err
		}
		if len(bytes) > 0 {
			l := line{}
			if jerr := json.Unmarshal(bytes, &l); jerr != nil {
				return nil, nil, errors.Wrapf(jerr, "archive %s line %d", id, n)
			}
			if l.Game != nil {
				game = l.Game
			}
			if l.Frame != nil {
				frames = append(frames, l.Frame)
			}
		}
		if err == io.EOF {
			break
		}
	}

	if game == nil {
		return nil, nil, errors.Wrapf(controller.ErrNotFound, "archive %s has no game record", id)
	}
	return game, frames, nil
}
