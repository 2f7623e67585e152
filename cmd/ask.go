package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI study companion a one-shot question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer kv.Close()

		asst, err := newAssistant(cmd.Context(), kv)
		if err != nil {
			return fmt.Errorf("AI companion not configured: %w", err)
		}

		prompt := strings.Join(args, " ")
		err = asst.Chat(cmd.Context(), prompt, nil, nil, func(chunk string) error {
			fmt.Print(chunk)
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Println()
		return nil
	},
}
