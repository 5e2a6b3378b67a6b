package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/revelio-tools/revelio/config"
	"github.com/revelio-tools/revelio/networks"
	"github.com/revelio-tools/revelio/resolver"
	"github.com/revelio-tools/revelio/revealer"
	"github.com/revelio-tools/revelio/ui"
)

var revealCmd = &cobra.Command{
	Use:   "reveal [address]",
	Short: "Resolve a contract's message and type it out",
	Long: `Resolve the message stored in the contract at the given address and reveal
it progressively. With no address, revelio enters an interactive prompt where
each submitted address starts a fresh resolution; submitting a new address
cancels the one still in flight.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		network := networks.CurrentNetwork()
		rs := resolver.NewResolver(network)
		tick := time.Duration(config.TickMs) * time.Millisecond

		if len(args) == 0 {
			interactiveLoop(u, rs, tick)
			return
		}

		if !revealOnce(context.Background(), u, rs, network, tick, args[0]) {
			os.Exit(1)
		}
	},
}

// revealOnce runs the full pipeline for one address and renders the outcome.
// It reports whether the message was revealed.
func revealOnce(
	ctx context.Context,
	u *ui.TerminalUI,
	rs *resolver.Resolver,
	network networks.Network,
	tick time.Duration,
	address string,
) bool {
	stop := u.Spinner(fmt.Sprintf("Resolving message on %s...", network.GetName()))
	message, err := rs.Resolve(ctx, address)
	stop()
	if err != nil {
		if ctx.Err() == nil {
			u.Error("%s", ui.UserFacingError(err))
		}
		return false
	}

	final := u.Typewriter(revealer.Reveal(ctx, message, tick))
	if final == "" && message != "" {
		// cancelled mid-reveal
		return false
	}
	u.Info("")
	u.Info("Share:    %s", ui.ShareURL(network, address))
	u.Info("Contract: %s", ui.ContractViewerURL(network, address))
	return true
}

// interactiveLoop reads addresses from stdin. Each submission begins a new
// session generation: the previous resolution is cancelled and a completion
// holding a stale generation is discarded, so the newest request always owns
// the display.
func interactiveLoop(u *ui.TerminalUI, rs *resolver.Resolver, tick time.Duration) {
	u.Info("Enter a contract address to reveal its message. Ctrl-D to quit.")
	session := &revealer.Session{}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		address := strings.TrimSpace(scanner.Text())
		if address == "" {
			continue
		}
		ctx, gen := session.Begin(context.Background())
		go func() {
			message, err := rs.Resolve(ctx, address)
			if !session.Current(gen) {
				// a newer request took over while we were resolving
				return
			}
			if err != nil {
				if ctx.Err() == nil {
					u.Error("%s", ui.UserFacingError(err))
				}
				return
			}
			u.Typewriter(revealer.Reveal(ctx, message, tick))
		}()
	}
	session.Cancel()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(revealCmd)
}
