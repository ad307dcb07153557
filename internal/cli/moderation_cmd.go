package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Red1144/VRChatAppi/internal/models"
)

func init() {
	rootCmd.AddCommand(modsCmd)
	modsCmd.AddCommand(modsMineCmd)
	modsCmd.AddCommand(modsAgainstCmd)
}

var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "Player moderation records",
}

var modsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Moderations you have sent",
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		mods, err := core.ModGetMine(cmd.Context())
		if err != nil {
			fmt.Println("Error fetching moderations:", err)
			return
		}
		printModerations(mods, func(m models.Moderation) string { return m.TargetName })
	},
}

var modsAgainstCmd = &cobra.Command{
	Use:   "against",
	Short: "Moderations recorded against you",
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		mods, err := core.ModGetAgainstMe(cmd.Context())
		if err != nil {
			fmt.Println("Error fetching moderations:", err)
			return
		}
		printModerations(mods, func(m models.Moderation) string { return m.SourceName })
	},
}

func printModerations(mods []models.Moderation, who func(models.Moderation) string) {
	if len(mods) == 0 {
		fmt.Println("No moderation records.")
		return
	}
	for _, m := range mods {
		fmt.Printf("%-10s %-24s %s\n", m.Type, who(m), m.CreatedAt)
	}
}
