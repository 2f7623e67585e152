package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RdoLimaJunior/cosmus/internal/kvstore"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress (XP, badges, completed worlds, history)",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This erases all XP, badges, completed worlds and session history. Continue? [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		kv, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer kv.Close()

		if err := progression.NewStore(kv).Reset(); err != nil {
			return fmt.Errorf("reset progression: %w", err)
		}
		for _, key := range []string{kvstore.KeyPerformance, kvstore.KeyLLMStats} {
			if err := kv.Delete(key); err != nil {
				return fmt.Errorf("reset %s: %w", key, err)
			}
		}

		fmt.Println("All progress erased. The galaxy awaits a fresh start.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
