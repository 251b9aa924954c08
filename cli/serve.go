package cli

import (
	"os"
	"os/signal"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/uno/player"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	var (
		tcpAddr string
		wsAddr  string
		bots    []int
		players int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the table to remote seats over tcp and websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, random, err := newTable(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			async.Async(func() {
				_ = st.Run(ctx, consts.TickInterval)
			})
			if len(bots) > 0 {
				humans := make([]int, 0, players)
				isBot := map[int]bool{}
				for _, seat := range bots {
					isBot[seat] = true
				}
				for seat := 0; seat < players; seat++ {
					if !isBot[seat] {
						humans = append(humans, seat)
					}
				}
				async.Async(func() {
					driveBots(ctx, st, player.CreateBots(players, humans, random), consts.BotThinkTime)
				})
			}

			errs := make(chan error, 2)
			servers := []network.Network{}
			if tcpAddr != "" {
				servers = append(servers, network.NewTcpServer(tcpAddr, st))
			}
			if wsAddr != "" {
				servers = append(servers, network.NewWebsocketServer(wsAddr, st))
			}
			for _, server := range servers {
				server := server
				async.Async(func() {
					errs <- server.Serve()
				})
			}

			select {
			case <-ctx.Done():
				log.Info("table closed")
				return nil
			case err := <-errs:
				log.Error(err)
				return err
			}
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", consts.DefaultTcpAddr, "Tcp listen address, empty disables it")
	cmd.Flags().StringVar(&wsAddr, "ws", consts.DefaultWebsocketAddr, "Websocket listen address, empty disables it")
	cmd.Flags().IntSliceVar(&bots, "bots", nil, "Seats played by bots on the server")
	cmd.Flags().IntVarP(&players, "players", "n", 4, "Table size used for bot seats")
	addTableFlags(cmd)
	return cmd
}
