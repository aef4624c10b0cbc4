package main

import (
	"fmt"
	"os"
	"strings"

	msgevents "github.com/glimte/msgevents-go"
	"github.com/glimte/msgevents-go/contracts"
	"github.com/glimte/msgevents-go/internal/config"
	"github.com/glimte/msgevents-go/messaging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "msgevents",
		Short:        "Exercise (pre)formatted message event channels",
		Version:      msgevents.Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newEmitCmd(), newCheckCmd(), newVersionCmd())
	return rootCmd
}

// newEmitCmd dispatches arguments on a channel of the default instance
func newEmitCmd() *cobra.Command {
	var wrap string

	cmd := &cobra.Command{
		Use:   "emit <channel> [args...]",
		Short: "Dispatch arguments on a channel and log the delivered payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channel := args[0]
			// The error channel reports registration failures of this command
			if channel == contracts.ChannelError {
				return fmt.Errorf("cannot emit on the %q channel", contracts.ChannelError)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := cfg.Logger(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			var failure *contracts.ErrorEvent
			msgevents.On(contracts.ChannelError, func(payload any) {
				event := payload.(contracts.ErrorEvent)
				failure = &event
				logger.Error("channel error", "method", event.Method, "text", event.Text)
			})

			events := msgevents.Default()
			if wrap != "" {
				events.Format(channel, func(words ...any) any {
					return map[string]any{wrap: joinWords(words)}
				})
			}
			msgevents.On(channel, func(payload any) {
				logger.Info("event", "channel", channel, "payload", payload)
			})
			if failure != nil {
				return fmt.Errorf("failed to register channel %q: %s", channel, failure.Text)
			}

			payload := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				payload = append(payload, arg)
			}
			events.Invoke(channel, payload...)
			return nil
		},
	}
	cmd.Flags().StringVarP(&wrap, "wrap", "w", "", "Format the channel as {<key>: joined args}")

	return cmd
}

// newCheckCmd validates channel ids against a fresh instance
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>...",
		Short: "Validate channel ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			failed := 0
			events := messaging.New(messaging.WithSender(cfg.Sender), messaging.WithDefaultFormats())
			events.On(contracts.ChannelError, func(payload any) {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", payload.(contracts.ErrorEvent).Text)
			})

			for _, id := range args {
				before := failed
				events.On(id, func(any) {})
				if failed == before {
					fmt.Fprintf(cmd.OutOrStdout(), "valid: %q\n", id)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d channel ids are invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), msgevents.Version)
		},
	}
}

func joinWords(words []any) string {
	parts := make([]string, 0, len(words))
	for _, word := range words {
		parts = append(parts, fmt.Sprint(word))
	}
	return strings.Join(parts, " ")
}
