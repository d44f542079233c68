package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/chat"
)

var chatNoDelay bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the support chat (canned replies, nothing is sent anywhere)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		delay := chat.Sleep
		if chatNoDelay {
			delay = chat.NoDelay
		}
		return runChat(cmd.Context(), chat.New(chat.WithDelay(delay)), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runChat(ctx context.Context, sim *chat.Simulator, in io.Reader, out io.Writer) error {
	for _, m := range sim.Messages() {
		fmt.Fprintf(out, "bot: %s\n", m.Text)
	}
	fmt.Fprintln(out, `(type "exit" to leave)`)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		text := sc.Text()
		if t := strings.TrimSpace(text); t == "exit" || t == "quit" {
			return nil
		}
		reply, ok, err := sim.Send(ctx, text)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "bot: %s\n", reply.Text)
		}
	}
}

func init() {
	chatCmd.Flags().BoolVar(&chatNoDelay, "no-delay", false, "Reply immediately instead of simulating typing")
}
