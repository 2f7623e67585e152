package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RdoLimaJunior/cosmus/internal/badges"
	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/llm"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
	"github.com/RdoLimaJunior/cosmus/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progression and performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer kv.Close()

		progress := progression.NewStore(kv)
		history := performance.NewHistory(kv)

		level := progress.Level()
		rank := progress.Rank()

		sep := strings.Repeat("─", 48)

		fmt.Println("Progression")
		fmt.Println(sep)
		fmt.Printf("Level:    %d  (%d / %d XP to next)\n",
			level.Level, progress.TotalXP()-level.XPFloor, level.XPCeiling-level.XPFloor)
		fmt.Printf("Rank:     %s %s\n", rank.Icon, rank.Name)
		fmt.Printf("XP:       %d\n", progress.TotalXP())
		fmt.Printf("Badges:   %d of %d\n", len(progress.EarnedBadges()), badgeCount())
		fmt.Printf("Explored: %d of %d worlds\n", progress.CompletedModules(), len(galaxy.All()))

		fmt.Println()
		fmt.Println("Performance")
		fmt.Println(sep)
		if history.Count() == 0 {
			fmt.Println("No practice sessions recorded yet.")
			return nil
		}

		averages := history.AverageBySubject()
		for _, subject := range galaxy.AllSubjects() {
			if avg, ok := averages[subject]; ok {
				fmt.Printf("%-10s  %5.1f%%\n", galaxy.SubjectDisplayName(subject), avg)
			}
		}
		if overall, ok := history.OverallAverage(); ok {
			fmt.Printf("%-10s  %5.1f%%  over %d sessions\n", "Overall", overall, history.Count())
		}
		if strongest, ok := history.Strongest(); ok {
			fmt.Printf("Strongest subject: %s\n", galaxy.SubjectDisplayName(strongest))
		}
		if trend, ok := history.Trend(); ok {
			fmt.Printf("Trend: %+.1f points\n", trend)
		}

		if withSummary, _ := cmd.Flags().GetBool("summary"); withSummary {
			fmt.Println()
			fmt.Println("AI Recap")
			fmt.Println(sep)
			asst, err := newAssistant(cmd.Context(), kv)
			if err != nil {
				return fmt.Errorf("AI companion not configured: %w", err)
			}
			text, err := asst.PerformanceSummary(cmd.Context(), history.All(), "")
			if err != nil {
				return fmt.Errorf("generate summary: %w", err)
			}
			fmt.Println(text)
		}

		if usage := llm.LoadUsageStats(kv); usage.Requests > 0 {
			fmt.Println()
			fmt.Printf("Assistant usage: %d requests, %d in / %d out tokens, $%.4f\n",
				usage.Requests, usage.InputTokens, usage.OutputTokens, usage.CostUSD)
		}

		return nil
	},
}

func badgeCount() int {
	catalog, err := badges.Catalog()
	if err != nil {
		return 0
	}
	return len(catalog)
}

func init() {
	statsCmd.Flags().Bool("summary", false, "Include an AI-generated recap")
}
