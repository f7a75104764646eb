package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/anushishehara/leaveport/internal/client/api"
	"github.com/anushishehara/leaveport/internal/client/config"
	"github.com/anushishehara/leaveport/internal/client/services"
	"github.com/anushishehara/leaveport/internal/client/session"
	"github.com/anushishehara/leaveport/internal/logging"
)

// App wires the client together: configuration, the HTTP gateway, the auth
// and leave services, and the session manager. The reader and writer are
// injectable so tests can script a whole interactive run.
type App struct {
	config   *config.Config
	log      logging.Logger
	auth     services.AuthService
	leaves   services.LeaveService
	sessions *session.Manager
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp builds the production App on stdin/stdout.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store := session.NewFileStore(cfg.SessionFilePath, log)

	// The gateway pulls the bearer credential through the manager, which
	// is constructed a few lines further down; the closure defers the
	// lookup until a request is actually made.
	var manager *session.Manager
	client := api.NewHTTPClient(cfg.ServerEndpointAddr, func() (string, string, bool) {
		if manager == nil {
			return "", "", false
		}
		return manager.SessionToken()
	}, log)

	authSvc := services.NewAuthService(client, store)

	manager, err := session.NewManager(ctx, store, authSvc, log)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, log, authSvc, services.NewLeaveService(client), manager, os.Stdin, os.Stdout), nil
}

// newApp is the assembly seam used by tests.
func newApp(cfg *config.Config, log logging.Logger, auth services.AuthService,
	leaves services.LeaveService, manager *session.Manager, in io.Reader, out io.Writer) *App {
	return &App{
		config:   cfg,
		log:      log,
		auth:     auth,
		leaves:   leaves,
		sessions: manager,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}
