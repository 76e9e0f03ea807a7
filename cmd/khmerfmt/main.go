package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"khmer-format/internal/config"
	"khmer-format/internal/gateway"
	"khmer-format/internal/handler"
	"khmer-format/internal/logger"
	"khmer-format/internal/numeral"
	"khmer-format/internal/usecase"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const serviceName = "khmerfmt"

// app carries the dependencies shared by the commands.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	money  *usecase.MoneyFormatter
	times  *usecase.TimeFormatter
	clock  *gateway.SystemClock
	stdout *os.File
}

func main() {
	a := &app{stdout: os.Stdout}

	cliApp := &cli.App{
		Name:  serviceName,
		Usage: "format money amounts and clock times as Khmer text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML config file", EnvVars: []string{"KHMERFMT_CONFIG"}},
			&cli.BoolFlag{Name: "dev", Usage: "development logging (debug level)"},
		},
		Before: a.setup,
		After:  a.teardown,
		Commands: []*cli.Command{
			{
				Name:      "money",
				Usage:     "format an amount with grouped digits and the currency symbol",
				ArgsUsage: "AMOUNT",
				Flags: []cli.Flag{
					currencyFlag(),
					&cli.BoolFlag{Name: "khmer-digits", Usage: "use Khmer numeral glyphs (default depends on the currency)"},
				},
				Action: a.formatMoney,
			},
			{
				Name:      "words",
				Usage:     "spell an amount out in Khmer words",
				ArgsUsage: "AMOUNT",
				Flags:     []cli.Flag{currencyFlag()},
				Action:    a.spellMoney,
			},
			{
				Name:      "time",
				Usage:     "format a clock time such as 13:22 or 1:22 PM",
				ArgsUsage: "TIME",
				Flags:     []cli.Flag{modeFlag()},
				Action:    a.formatTime,
			},
			{
				Name:   "now",
				Usage:  "format the current time",
				Flags:  []cli.Flag{modeFlag(), &cli.StringFlag{Name: "tz", Usage: "IANA timezone, e.g. Asia/Phnom_Penh"}},
				Action: a.formatNow,
			},
			{
				Name:      "batch",
				Usage:     "convert every request of one or more CSV files and print a JSON report",
				ArgsUsage: "FILE...",
				Action:    a.runBatch,
			},
			{
				Name:   "serve",
				Usage:  "serve the JSON HTTP API",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "addr", Usage: "listen address"}},
				Action: a.serve,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func currencyFlag() cli.Flag {
	return &cli.StringFlag{Name: "currency", Aliases: []string{"C"}, Value: "KHR", Usage: "KHR or USD"}
}

func modeFlag() cli.Flag {
	return &cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "digits or words (default from config)"}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("dev") {
		cfg.Log.Development = true
	}

	log, err := logger.New(serviceName, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	// --- Dependency Injection (Wiring the application) ---
	a.cfg = cfg
	a.log = log
	a.clock = gateway.NewSystemClock(nil)
	a.money = usecase.NewMoneyFormatter()
	a.times = usecase.NewTimeFormatter(a.clock)
	return nil
}

func (a *app) teardown(*cli.Context) error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	return nil
}

func (a *app) formatMoney(c *cli.Context) error {
	amount, err := singleArg(c, "AMOUNT")
	if err != nil {
		return err
	}

	var khmerDigits *bool
	if c.IsSet("khmer-digits") {
		v := c.Bool("khmer-digits")
		khmerDigits = &v
	}

	return a.print(a.money.Format(c.String("currency"), numeral.ToArabicDigits(amount), khmerDigits))
}

func (a *app) spellMoney(c *cli.Context) error {
	amount, err := singleArg(c, "AMOUNT")
	if err != nil {
		return err
	}
	return a.print(a.money.Spell(c.String("currency"), numeral.ToArabicDigits(amount)))
}

func (a *app) formatTime(c *cli.Context) error {
	text, err := singleArg(c, "TIME")
	if err != nil {
		return err
	}
	return a.print(a.times.Format(numeral.ToArabicDigits(text), a.mode(c)))
}

func (a *app) formatNow(c *cli.Context) error {
	tz := c.String("tz")
	if tz == "" {
		tz = a.cfg.Timezone
	}
	return a.print(a.times.FormatNow(a.mode(c), tz))
}

func (a *app) runBatch(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one CSV file is required", 2)
	}

	csvRepo := gateway.NewCSVRequestRepository()
	batchUseCase := usecase.NewBatchConversionUseCase(csvRepo, a.money, a.times, a.log)

	report, err := batchUseCase.Convert(c.Context, c.Args().Slice())
	if err != nil {
		return fmt.Errorf("batch conversion failed: %w", err)
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}

	fmt.Fprintln(a.stdout, string(output))
	return nil
}

func (a *app) serve(c *cli.Context) error {
	addr := c.String("addr")
	if addr == "" {
		addr = a.cfg.HTTP.Addr
	}

	h := handler.NewHandler(a.money, a.times, a.cfg.Mode, a.cfg.Timezone, a.log)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func (a *app) mode(c *cli.Context) string {
	if m := c.String("mode"); m != "" {
		return m
	}
	return a.cfg.Mode
}

func (a *app) print(text string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, text)
	return nil
}

func singleArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("expected exactly one %s argument", name), 2)
	}
	return c.Args().First(), nil
}
