package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/business/v1/gateway"
	"github.com/ribgsilva/memo-api/client/notify"
	"github.com/ribgsilva/memo-api/client/shell"
	"github.com/ribgsilva/memo-api/client/store"
	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/platform/database"
	"github.com/ribgsilva/memo-api/platform/env"
	"github.com/ribgsilva/memo-api/platform/logger"
	"github.com/ribgsilva/memo-api/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const historyFile = ".memo_client_history"

func main() {
	log, err := logger.New("Memo-Client",
		logger.WithFile(os.Getenv("LOG_FILE_PATH")),
		logger.WithConsole(false))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	var url string
	root := &cobra.Command{
		Use:           "memo-client",
		Short:         "Terminal client for notebooks and memos",
		Long:          "Terminal client for notebooks and memos. Talks to app/api when a url is given, otherwise opens the database itself.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), log, url)
		},
	}
	root.Flags().StringVar(&url, "url", "", "gateway base url, overrides BRIDGE_URL")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.SugaredLogger, url string) error {

	// =======================================================================================================
	// Setup configs
	env.Load(log)
	cfg := sys.LoadConfigs(log)
	if url == "" {
		url = cfg.Bridge.URL
	}

	// =======================================================================================================
	// Setup gateway

	op, release, err := connect(ctx, log, cfg, url)
	if err != nil {
		return err
	}
	defer release()

	// =======================================================================================================
	// Setup stores

	notifier := notify.NewConsole(os.Stdout, nil)

	topic, sub := store.NewEvents(time.Minute)
	notebooks := store.NewNotebookStore(op, notifier, log, topic)
	memos := store.NewMemoStore(op, notifier, log)

	listenCtx, cancelListen := context.WithCancel(ctx)
	listenDone := make(chan error, 1)
	go func() {
		listenDone <- memos.Listen(listenCtx, sub)
	}()
	defer func() {
		cancelListen()
		if err := <-listenDone; err != nil {
			log.Errorw("shutdown", "ERROR", err)
		}

		stdCtx, stdCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stdCancel()
		if err := sub.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
		if err := topic.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop topic gracefully: %s", err)
		}
	}()

	// failures are already shown by the notifier
	_ = notebooks.PrepareNotebooks(ctx)

	sh := &shell.Shell{
		Notebooks:   notebooks,
		Memos:       memos,
		Lookup:      op,
		Out:         os.Stdout,
		WaitTimeout: cfg.Bridge.Timeout,
	}

	// =======================================================================================================
	// REPL

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	history := historyPath()
	if f, err := os.Open(history); err == nil {
		_, _ = line.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if history == "" {
			return
		}
		f, err := os.Create(history)
		if err != nil {
			log.Errorf("could not write history: %s", err)
			return
		}
		defer f.Close()
		_, _ = line.WriteHistory(f)
	}()

	color.New(color.FgCyan).Println("memo client, type help for commands")
	for {
		input, err := line.Prompt(prompt(notebooks))
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		quit, err := sh.Exec(ctx, input)
		if err != nil {
			log.Debugw("command", "input", input, "ERROR", err)
		}
		if quit {
			return nil
		}
	}
}

// connect returns the gateway the stores talk to: app/api when url is set, otherwise
// a dispatcher over a database opened here. release frees whatever connect opened.
func connect(ctx context.Context, log *zap.SugaredLogger, cfg sys.Config, url string) (*bridge.DbOp, func(), error) {
	if url != "" {
		log.Infow("startup", "mode", "http", "url", url)
		op := bridge.NewDbOp(bridge.NewHTTPClient(url, cfg.Bridge.Timeout))
		if err := op.CreateDb(ctx); err != nil {
			return nil, nil, fmt.Errorf("create db: %w", err)
		}
		return op, func() {}, nil
	}

	log.Infow("startup", "mode", "embedded", "database", cfg.Database.ConnectionURL)
	res := &sys.Resources{Configs: cfg, Log: log}

	db, err := database.Open(ctx, database.Config{
		Driver:        cfg.Database.Driver,
		ConnectionURL: cfg.Database.ConnectionURL,
		PingTimeout:   cfg.Database.PingTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	res.Database = db

	if err := schema.Create(ctx, res); err != nil {
		database.Close(log, db)
		return nil, nil, fmt.Errorf("create schema: %w", err)
	}

	d := bridge.NewDispatcher(log)
	gateway.Register(d, res)
	return bridge.NewDbOp(bridge.LocalClient{Dispatcher: d}), func() { database.Close(log, db) }, nil
}

func prompt(notebooks *store.NotebookStore) string {
	if n, ok := notebooks.Current(); ok {
		return fmt.Sprintf("%s> ", n.Name)
	}
	return "memo> "
}

var commands = []string{
	"notebooks", "notebook add ", "notebook use ", "notebook rm ",
	"memos", "memo add ", "memo rm ", "memo show ", "help", "quit",
}

func complete(input string) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, input) {
			out = append(out, c)
		}
	}
	return out
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
