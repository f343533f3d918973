package main // Entry point package

import (
	"context"   // Context for the session and the consumer
	"io"        // io.Discard for --quiet
	"log"       // Logging library
	"os"        // Standard streams and exit codes
	"os/signal" // Interrupt handling for the journal consumer
	"syscall"   // SIGTERM

	"github.com/spf13/cobra" // CLI commands
	"github.com/spf13/pflag" // Flag sets shared by both commands

	"github.com/iliyamo/booking-a-show/internal/command"    // Command parser
	"github.com/iliyamo/booking-a-show/internal/config"     // Internal config loader
	"github.com/iliyamo/booking-a-show/internal/handler"    // Command executor
	"github.com/iliyamo/booking-a-show/internal/queue"      // Journal consumer
	"github.com/iliyamo/booking-a-show/internal/repository" // In-memory registries
	"github.com/iliyamo/booking-a-show/internal/service"    // Event publishers
	"github.com/iliyamo/booking-a-show/internal/session"    // Interactive loop
)

// options are the flags common to every command.
type options struct {
	envFile     string
	events      string
	journalPath string
	quiet       bool
}

func addCommonFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	fs.StringVar(&o.journalPath, "journal-path", "", "journal file (overrides BOOKING_JOURNAL_PATH)")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "discard diagnostic logs on stderr")
}

// loadConfig reads configuration and applies flag overrides on top of it.
func loadConfig(fs *pflag.FlagSet, o *options) (config.Config, error) {
	cfg, err := config.Load(o.envFile, fs.Changed("env-file"))
	if err != nil {
		return config.Config{}, err
	}
	if fs.Changed("events") {
		cfg.Events.Backend = o.events
	}
	if o.journalPath != "" {
		cfg.Events.JournalPath = o.journalPath
	}
	if o.quiet {
		cfg.Quiet = true
	}
	if err := cfg.Events.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Quiet {
		log.SetOutput(io.Discard) // Keep stderr clean for scripted sessions
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "booking",
		Short: "Interactive show ticket booking",
		Long: `booking reads commands from standard input, one per line, and answers on
standard output.  Admins set up shows; buyers check availability, book seats
and cancel tickets within the show's cancellation window.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags(), o)
			if err != nil {
				return err
			}
			log.Printf("booking session starting (env=%s, events=%s)", cfg.Env, cfg.Events.Backend)

			shows := repository.NewShowRepo()     // Show registry
			tickets := repository.NewTicketRepo() // Ticket ledger
			h := handler.NewHandler(shows, tickets, nil, service.New(cfg.Events))
			h.PublishTimeout = cfg.Events.PublishTimeout
			loop := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), command.NewParser(shows, tickets), h)
			return loop.Run(cmd.Context())
		},
	}
	addCommonFlags(root.PersistentFlags(), o)
	root.Flags().StringVar(&o.events, "events", config.EventsNone, "event backend: none, journal, amqp or redis")
	root.AddCommand(newJournalCmd(o))
	return root
}

func newJournalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Consume booking events from RabbitMQ into the journal file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags(), o)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Printf("journal consumer reading %q into %s", cfg.Events.QueueName, cfg.Events.JournalPath)
			err = queue.StartJournalConsumer(ctx, queue.ConsumerConfig{
				URL:         cfg.Events.AMQPURL,
				QueueName:   cfg.Events.QueueName,
				JournalPath: cfg.Events.JournalPath,
			})
			if ctx.Err() != nil {
				return nil // Interrupted
			}
			return err
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err) // Log and exit on startup or channel failure
	}
}
