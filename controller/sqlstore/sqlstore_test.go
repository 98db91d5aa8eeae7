package sqlstore

import (
	"database/sql"
	"os"
	"testing"

	"github.com/battlesnakeio/arcade/controller/testsuite"
	"github.com/stretchr/testify/require"
)

func mustExec(db *sql.DB, sq string) {
	if _, err := db.Exec(sq); err != nil {
		panic(err)
	}
}

func TestSQLStore(t *testing.T) {
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		t.Skip("POSTGRES_URL not set, e.g. postgres://postgres@127.0.0.1:5433/postgres?sslmode=disable")
	}
	s, err := NewSQLStore(url)
	require.NoError(t, err)
	defer s.Close()

	testsuite.Suite(t, s, func() {
		mustExec(s.db, "TRUNCATE games")
		mustExec(s.db, "TRUNCATE game_frames")
	})
}
