package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"Montagsmaler/internal/net"
	"Montagsmaler/internal/ui"

	"github.com/spf13/cobra"
)

var (
	watchHeadless bool
	watchTimeout  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [address]",
	Short: "Follow a shared board live",
	Long: `Connects to a board started with --share and replays it.
Without an address the local network is searched over mDNS.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchHeadless, "headless", false, "print status changes instead of opening a window")
	watchCmd.Flags().DurationVar(&watchTimeout, "browse-timeout", 3*time.Second, "how long to search for a board over mDNS")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	addr := ""
	if len(args) == 1 {
		addr = args[0]
	} else {
		found, err := net.Browse(watchTimeout)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Found board at %s\n", found)
		addr = found
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !watchHeadless {
		return ui.RunViewer(ctx, cfg, addr)
	}
	return watchHeadlessly(ctx, cmd, addr)
}

func watchHeadlessly(ctx context.Context, cmd *cobra.Command, addr string) error {
	out := cmd.OutOrStdout()
	return net.Watch(ctx, addr, func(msg net.Message) {
		if msg.Type == net.MsgStatus {
			fmt.Fprintln(out, msg.Text)
		}
	})
}
