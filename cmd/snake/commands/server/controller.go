package server

import (
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/controller/filestore"
	"github.com/battlesnakeio/arcade/controller/redis"
	"github.com/battlesnakeio/arcade/controller/sqlstore"
	"github.com/pkg/errors"
)

var (
	controllerListen      = ":3004"
	controllerBackend     = "inmem"
	controllerBackendArgs = ""
)

func init() {
	RootCmd.Flags().StringVar(&controllerListen, "controller-listen", controllerListen, "address for the controller to bind to")
	RootCmd.Flags().StringVarP(&controllerBackend, "backend", "b", controllerBackend, "game record backend, as one of: [inmem, file, redis, sql]")
	RootCmd.Flags().StringVarP(&controllerBackendArgs, "backend-args", "a", controllerBackendArgs, "options to pass to the backend being used")
}

// openStore builds the store named by backend.
func openStore(backend, args string) (controller.Store, error) {
	switch backend {
	case "inmem":
		return controller.InMemStore(), nil
	case "file":
		return filestore.NewFileStore(args), nil
	case "redis":
		return redis.NewStore(args)
	case "sql":
		return sqlstore.NewSQLStore(args)
	}
	return nil, errors.Errorf("invalid backend %q", backend)
}
