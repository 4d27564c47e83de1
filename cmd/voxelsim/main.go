package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/voxelsim"
	"github.com/oomph-ac/voxelsim/camera"
	"github.com/oomph-ac/voxelsim/host"
	"github.com/oomph-ac/voxelsim/metrics"
	"github.com/oomph-ac/voxelsim/settings"
	"github.com/sirupsen/logrus"
)

var CLI struct {
	Settings string `help:"Path of the settings file. It is created if it does not exist." default:"settings.toml" type:"path"`
	Debug    bool   `help:"Whether to enable debug logging."`

	Play struct {
		Spawn []float32 `help:"Position the player starts at." default:"0,5,0" sep:","`
	} `cmd:"" default:"1" help:"Open a window and walk around the world."`

	Sim simCmd `cmd:"" help:"Run the movement simulation headless with scripted input and print every tick."`

	Config struct {
	} `cmd:"" help:"Write the default settings to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("voxelsim"),
		kong.Description("first-person movement and collision against a grid of blocks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if ctx.Command() == "config" {
		if err := configCommand(); err != nil {
			writeError(err)
		}
		return
	}

	s, err := settings.Load(CLI.Settings)
	if err != nil {
		writeError(err)
	}
	log, err := newLogger(s)
	if err != nil {
		writeError(err)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Errorf("sentry initialisation failed: %v", err)
		}
		defer sentry.Flush(time.Second * 5)
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	switch ctx.Command() {
	case "play":
		err = playCommand(s, log)
	case "sim":
		err = CLI.Sim.run(s, log, os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}

func newLogger(s settings.Settings) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	lvl, err := s.LogLevel()
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	if CLI.Debug {
		log.SetLevel(logrus.DebugLevel)
		log.Warn("debug logging enabled")
	}
	return log, nil
}

func configCommand() error {
	data, err := settings.Encode(settings.DefaultSettings())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// sessionOptions returns the session options described by the settings.
func sessionOptions(s settings.Settings, log *logrus.Logger) ([]voxelsim.Option, error) {
	opts, err := s.MovementOptions()
	if err != nil {
		return nil, err
	}
	modes, err := s.DebugModes()
	if err != nil {
		return nil, err
	}
	return []voxelsim.Option{
		voxelsim.WithLogger(log),
		voxelsim.WithMovementOptions(opts),
		voxelsim.WithDebugModes(modes...),
		voxelsim.WithTurnSpeed(s.Input.TurnSpeed),
		voxelsim.WithSensitivity(s.Input.Sensitivity),
	}, nil
}

// serveMetrics starts the prometheus endpoint if an address is configured.
func serveMetrics(s settings.Settings, log *logrus.Logger, c *metrics.Collector) {
	if s.Metrics.Address == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	go func() {
		log.Infof("serving metrics on %s", s.Metrics.Address)
		if err := http.ListenAndServe(s.Metrics.Address, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server failed: %v", err)
		}
	}()
}

func playCommand(s settings.Settings, log *logrus.Logger) error {
	w, err := s.BuildWorld()
	if err != nil {
		return err
	}
	keys, err := s.KeyMap()
	if err != nil {
		return err
	}
	opts, err := sessionOptions(s, log)
	if err != nil {
		return err
	}
	collector := metrics.New()
	collector.SetWorldSize(w.Len())
	serveMetrics(s, log, collector)

	spawn, err := vec3(CLI.Play.Spawn)
	if err != nil {
		return err
	}
	cam := camera.NewPose(spawn, 0, 0)
	session := voxelsim.New(w, cam, append(opts, voxelsim.WithObserver(collector))...)
	g := host.New(session, w, cam, keys)
	g.OnWorldEdit = collector.SetWorldSize

	watcher, err := settings.Watch(CLI.Settings)
	if err != nil {
		log.Warnf("settings will not be reloaded: %v", err)
	} else {
		defer watcher.Close()
		go watchSettings(watcher, g, session, log)
	}

	log.WithField("cells", w.Len()).Info("world ready")
	return host.Run(g, s.Window.Width, s.Window.Height, s.Window.Title)
}

// watchSettings applies reloaded settings to the running session.
func watchSettings(watcher *settings.Watcher, g *host.Game, session *voxelsim.Session, log *logrus.Logger) {
	defer sentry.Recover()
	for {
		select {
		case s, ok := <-watcher.Changes:
			if !ok {
				return
			}
			opts, err := s.MovementOptions()
			if err != nil {
				log.Errorf("reloaded settings are invalid: %v", err)
				continue
			}
			keys, err := s.KeyMap()
			if err != nil {
				log.Errorf("reloaded settings are invalid: %v", err)
				continue
			}
			g.Do(func() {
				session.SetOptions(opts)
				session.SetLookOptions(s.Input.TurnSpeed, s.Input.Sensitivity)
				g.SetKeyMap(keys)
			})
			log.Info("settings reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("settings watcher: %v", err)
		}
	}
}

func vec3(v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
