package filestore

import (
	"encoding/json"
	"os"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

// line is a single record of an archive. Game lines replace the record read
// so far, frame lines are appended in turn order.
type line struct {
	Game  *controller.Game `json:"game,omitempty"`
	Frame *rules.Snapshot  `json:"frame,omitempty"`
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func writeFrame(w writer, f *rules.Snapshot) error {
	return writeLine(w, &line{Frame: f})
}

func writeGame(w writer, g *controller.Game) error {
	return writeLine(w, &line{Game: g})
}

func appendOnlyFileWriter(directory, id string, truncate bool) (writer, error) {
	if err := os.MkdirAll(directory, 0775); err != nil {
		return nil, err
	}

	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE
	if truncate {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(getFilePath(directory, id), flags, 0644)
}
