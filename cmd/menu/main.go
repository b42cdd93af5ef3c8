package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/pavilion/backend/config"
	"github.com/pageza/pavilion/backend/internal/api"
	"github.com/pageza/pavilion/backend/internal/logging"
	"github.com/pageza/pavilion/backend/internal/service"
	"github.com/pageza/pavilion/backend/internal/types"
)

// menuFactory builds the menu service from loaded configuration
type menuFactory func(cfg *config.Config, logger *zap.Logger) service.IMenuService

type cli struct {
	verbose    bool
	timeout    time.Duration
	configPath string

	factory menuFactory
	now     func() time.Time

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(factory menuFactory, now func() time.Time) *cobra.Command {
	c := &cli{factory: factory, now: now}

	rootCmd := &cobra.Command{
		Use:   "menu [options...]",
		Short: "Show the dining hall menu",
		Long: `Shows the menu for the next upcoming meal at the dining halls.

Options are free text split on spaces. Words that name a day (three letters or
more, e.g. "tue" or "friday") pick the day; everything else picks the meal.

Examples:
  menu                  # next upcoming meal
  menu dinner thu       # Thursday dinner
  menu hours            # opening hours
  menu announce         # venue announcements`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.answer(cmd, strings.Join(args, " "))
		},
	}

	hoursCmd := &cobra.Command{
		Use:   "hours",
		Short: "Show opening hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.answer(cmd, "hours")
		},
	}

	announceCmd := &cobra.Command{
		Use:   "announce",
		Short: "Show venue announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.answer(cmd, "announce")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Overall timeout")
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file (default: $DINING_CONFIG or config.yaml)")

	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(announceCmd)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.logger, err = logging.New(level)
	return err
}

func (c *cli) answer(cmd *cobra.Command, input string) error {
	loc, err := c.cfg.Location()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()
	ctx = logging.WithContext(ctx, c.logger.With(zap.String("request_id", uuid.NewString())))

	resp := api.Answer(ctx, c.factory(c.cfg, c.logger), input, c.now().In(loc))
	return printResponse(cmd.OutOrStdout(), resp)
}

func printResponse(w io.Writer, resp types.MenuResponse) error {
	if _, err := fmt.Fprintf(w, "%s\n", resp.Title); err != nil {
		return err
	}
	for _, section := range resp.Sections {
		if _, err := fmt.Fprintf(w, "\n== %s ==\n%s\n", section.Title, section.Body); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	factory := func(cfg *config.Config, logger *zap.Logger) service.IMenuService {
		return service.NewFromConfig(cfg, logger)
	}
	if err := newRootCmd(factory, time.Now).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
