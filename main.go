package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio/internal/config"
	"portfolio/internal/greeting"
	"portfolio/internal/logging"
	"portfolio/internal/profile"
	"portfolio/internal/ui/gui"
	"portfolio/internal/ui/headless"
)

var BuildVersion = "dev"

func main() {
	rootCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	opts, err := config.ParseOptions()
	if err != nil {
		if config.IsHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.Version {
		fmt.Println(BuildVersion)
		return
	}
	if err := config.Validate(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(opts.Debug)
	defer func() {
		_ = logger.Close()
	}()
	if opts.LogToFile {
		dir, err := logger.EnableFilePersistence(opts.LogMaxBytes)
		if err != nil {
			logger.Warn("failed to enable file log persistence", logging.Field("error", err))
		} else {
			logger.Debug("persisting logs", logging.Field("dir", dir))
		}
	}

	if opts.Serve {
		code := serve(rootCtx, opts, logger)
		_ = logger.Close()
		os.Exit(code)
	}

	p, err := profile.Default()
	if err != nil {
		logger.Error("embedded profile is invalid", logging.Field("error", err))
		os.Exit(2)
	}

	lock, lockedByOther, lockErr := acquireInstanceLock()
	if lockErr != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize single-instance lock:", lockErr)
		os.Exit(2)
	}
	if lockedByOther {
		if !gui.Available() || opts.Headless {
			fmt.Fprintln(os.Stderr, "The portfolio viewer is already running.")
		} else {
			hideAndDetachConsoleForGUI()
			showAlreadyRunningDialog(p.Title)
		}
		os.Exit(1)
	}
	defer func() {
		_ = lock.Release()
	}()

	// Headless-tag builds always run headless; runtime UI selection is ignored.
	if !gui.Available() || opts.Headless {
		headless.Run(rootCtx, BuildVersion, opts, p, logger)
		return
	}
	hideAndDetachConsoleForGUI()
	gui.Run(rootCtx, BuildVersion, opts, p, logger)
}

func serve(ctx context.Context, opts config.Options, logger *logging.Logger) int {
	logger.Info("starting greeting service", logging.Field("version", BuildVersion), logging.Field("addr", opts.Addr))
	if err := greeting.NewServer(opts.Addr, logger).Run(ctx); err != nil {
		logger.Error("greeting service failed", logging.Field("error", err))
		return 1
	}
	logger.Info("greeting service stopped")
	return 0
}
