package cli

import (
	"os"
	"os/signal"
	"reflect"
	"strings"

	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/spf13/cobra"
)

func NewPlayCmd() *cobra.Command {
	var (
		players int
		humans  []int
		bell    bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play at a terminal table against bots",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, random, err := newTable(cmd)
			if err != nil {
				return err
			}

			ui.Welcome()
			if players == 0 {
				if players, err = ui.PromptIntegerInRange(game.MinPlayers, game.MaxPlayers, "How many players?"); err != nil {
					return err
				}
			}
			if len(humans) == 0 {
				humans = []int{0}
			}

			cues := ui.NewCuePlayer(color.Stdout)
			cues.Bell = bell
			st.Events().AddListener(cues)

			var last game.State
			st.Subscribe(func(s game.State) {
				if !changed(last, s) {
					return
				}
				last = s
				_ = ui.Render(color.Stdout, s, ViewerSeat(s, humans))
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			async.Async(func() {
				_ = st.Run(ctx, consts.TickInterval)
			})
			async.Async(func() {
				driveBots(ctx, st, player.CreateBots(players, humans, random), consts.BotThinkTime)
			})

			lines := make(chan string)
			async.Async(func() {
				defer close(lines)
				for {
					line, err := ui.PromptLine("")
					if err != nil {
						return
					}
					lines <- line
				}
			})

			st.StartGame(players)
			for {
				select {
				case <-ctx.Done():
					return nil
				case line, ok := <-lines:
					if !ok || strings.EqualFold(line, "quit") {
						return nil
					}
					if line == "" {
						continue
					}
					s := st.State()
					action, err := ui.ParseCommand(line, s, ViewerSeat(s, humans))
					if err != nil {
						ui.Println(err)
						continue
					}
					st.Submit(action)
				}
			}
		},
	}

	cmd.Flags().IntVarP(&players, "players", "n", 0, "Number of players (2-4), asked for when unset")
	cmd.Flags().IntSliceVar(&humans, "humans", []int{0}, "Seats played from this terminal")
	cmd.Flags().BoolVar(&bell, "bell", false, "Ring the terminal bell on cues")
	addTableFlags(cmd)
	return cmd
}

// ViewerSeat picks the human seat the terminal acts for: a pending color
// choice first, then an open UNO window, then the turn.
func ViewerSeat(s game.State, humans []int) int {
	if len(humans) == 0 {
		return -1
	}
	for _, seat := range humans {
		if s.AwaitingWildChoice != nil && s.AwaitingWildChoice.PlayerIndex == seat {
			return seat
		}
	}
	for _, seat := range humans {
		if s.UnoWindow != nil && s.UnoWindow.PlayerIndex == seat {
			return seat
		}
	}
	for _, seat := range humans {
		if s.TurnIndex == seat {
			return seat
		}
	}
	return humans[0]
}

// changed ignores the clock so ticks alone do not redraw the table.
func changed(prev game.State, next game.State) bool {
	next.ClockMs = prev.ClockMs
	return !reflect.DeepEqual(prev, next)
}
