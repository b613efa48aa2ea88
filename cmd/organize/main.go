// Command organize sorts the files of a directory into category folders.
// It previews the proposed layout and only moves files after confirmation.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fileorg/internal/app"
	"fileorg/internal/config"
)

type options struct {
	strategy string
	sort     string
	yes      bool
	auditLog string
	envFile  string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Organize the files of a directory into category folders",
		Long: `organize scans a directory, proposes a category for every file and,
after confirmation, moves the files into one folder per category.

Strategies: 1 extension, 2 date, 3 pattern, 4 manual, 5 ai (needs AI_PROVIDER).
Sort orders: 1 name, 2 created, 3 modified, 4 size, 5 size-desc.
Values not given as flags are asked for interactively.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "Categorization strategy (1-5 or name)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Processing order (1-5 or name)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Move files without asking for confirmation")
	cmd.Flags().StringVar(&opts.auditLog, "audit-log", "", "Audit log file (default $AUDIT_LOG_PATH or organization_log.txt)")
	cmd.Flags().StringVar(&opts.envFile, "env", "", "Load environment variables from this file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline details to stderr")
	return cmd
}

func run(cmd *cobra.Command, dir string, opts options) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}
	cfg := config.Load()
	if opts.auditLog != "" {
		cfg.AuditLogPath = opts.auditLog
	}

	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		defer logger.Sync()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	a, err := app.Build(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	s := &session{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
		svc: a.Organizer,
		yes: opts.yes,
	}
	fmt.Fprintln(s.out, titleStyle.Render("File Organizer"))

	next := request{dir: dir, strategy: opts.strategy, sort: opts.sort}
	for {
		if err := s.organize(ctx, next); err != nil {
			return err
		}
		again, err := s.confirm("\nOrganize another directory? (yes/no): ")
		if err != nil || !again {
			fmt.Fprintln(s.out, mutedStyle.Render("Goodbye."))
			return nil
		}
		next = request{}
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
