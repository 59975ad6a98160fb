package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ssisdev/sisctl/internal/api"
	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/app/services"
	"github.com/ssisdev/sisctl/internal/config"
	"github.com/ssisdev/sisctl/internal/pkg/logger"
	"github.com/ssisdev/sisctl/internal/pkg/notify"
	"github.com/ssisdev/sisctl/internal/session"
)

// DefaultConfigFile is looked for in the working directory when no
// --config flag is given.
const DefaultConfigFile = "sisctl.yaml"

// App holds the wired application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Session   *session.Store
	Client    *api.Client
	Auth      *services.AuthService
	Students  *services.StudentService
	Programs  *services.ProgramService
	Colleges  *services.CollegeService
	Dashboard *services.DashboardService
	Notifier  notify.Notifier
	Navigator navigation.Navigator
}

// LoadConfigAndSetupLogger loads configuration and configures the
// package logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigFile
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Default()
	lgr.Debug().Str("configPath", configPath).Msg("configuration loaded")
	return cfg, lgr, nil
}

// NewApp wires the session store, transport, and services. User-visible
// output (notifications, navigation messages) goes to out.
func NewApp(configPath string, out io.Writer) (*App, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	statePath, err := cfg.SessionPath()
	if err != nil {
		return nil, err
	}
	store := session.NewStore(session.NewFileKV(statePath))

	notifier := notify.NewTerminal(out)
	navigator := navigation.NavigatorFunc(func(dest navigation.Destination) {
		fmt.Fprintf(out, "→ %s\n", dest)
	})

	client := api.New(cfg.API.BaseURL, cfg.Timeout(), store, lgr)

	auth := services.NewAuthService(client, store, notifier, navigator, lgr)
	// Any 401 outside the credential exchange forces a session reset
	// at the transport layer.
	client.OnUnauthorized(auth.ForceLogout)

	return &App{
		Config:    cfg,
		Logger:    lgr,
		Session:   store,
		Client:    client,
		Auth:      auth,
		Students:  services.NewStudentService(client, lgr),
		Programs:  services.NewProgramService(client, lgr),
		Colleges:  services.NewCollegeService(client, lgr),
		Dashboard: services.NewDashboardService(client, lgr),
		Notifier:  notifier,
		Navigator: navigator,
	}, nil
}
