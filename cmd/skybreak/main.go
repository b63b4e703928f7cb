package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"

	"github.com/skybreak-gg/skybreak/level"
	"github.com/skybreak-gg/skybreak/records"
	"github.com/skybreak-gg/skybreak/sim"
	"github.com/skybreak-gg/skybreak/worker"
)

var (
	levelPath   = flag.String("level", "levels/moon-1.hjson", "path to the level file")
	recordsPath = flag.String("records", "records.hjson", "path to the best-times file")
	duration    = flag.Float64("duration", 60, "seconds of simulation to run")
	rate        = flag.Float64("rate", 60, "ticks per second")
	debug       = flag.Bool("debug", false, "enable simulation debug traces")
)

// The binary runs a level headless with a scripted pilot: full throttle,
// constant fire and a slow yaw sweep. It is the smoke-test host; real
// frontends drive the same Tick/Render surface with live input.
func main() {
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	if *debug {
		log.Level = logrus.DebugLevel
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warnf("sentry init failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		mgr := statsview.New()
		worker.Submit(func() {
			mgr.Start()
		})
	}

	if err := run(log); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(log *logrus.Logger) error {
	cfg, err := level.Load(*levelPath)
	if err != nil {
		return fmt.Errorf("unable to load level: %w", err)
	}

	store, err := records.OpenFile(*recordsPath)
	if err != nil {
		return fmt.Errorf("unable to open records: %w", err)
	}
	defer func() {
		if err := store.Flush(); err != nil {
			log.Errorf("unable to flush records: %v", err)
		}
	}()

	s, err := sim.New(cfg, sim.Options{
		Store: store,
		Log:   log.WithField("level", cfg.ID),
	})
	if err != nil {
		return fmt.Errorf("unable to build simulator: %w", err)
	}
	log.Infof("running %s for %.0fs at %.0f ticks/s", cfg.ID, *duration, *rate)

	dt := 1.0 / *rate
	ticks := int(*duration * *rate)
	for i := 0; i < ticks; i++ {
		input := sim.ControlState{
			Throttle: true,
			Fire:     true,
			// Sweep the nose across the scene so the scripted pilot
			// eventually faces every drone.
			YawRight: i%600 < 300,
			YawLeft:  i%600 >= 300,
		}
		res := s.Tick(input, dt)
		for _, ev := range res.Events {
			log.Infof("t=%dms event %d: %+v", ev.Time(), ev.ID(), ev)
		}
		if res.Won {
			log.Infof("level complete in %.3fs (%d/%d drones destroyed)", res.FinalTime, res.Destroyed, res.Destroyed+res.Drones)
			return nil
		}
	}

	final := s.Tick(sim.ControlState{}, 0)
	log.Infof("time up: %d drones left, %d destroyed", final.Drones, final.Destroyed)
	return nil
}
