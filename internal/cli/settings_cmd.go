package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsSetCmd.Flags().String("sort", "", "sorting order: updated, created or order")
	settingsSetCmd.Flags().Int("max-avatars", 0, "avatars per page, 1-100")
	settingsSetCmd.Flags().Int("max-worlds", 0, "worlds per page, 1-100")
	settingsSetCmd.Flags().Int("notif-timeout", 0, "notification timeout in seconds, 1-100")
	settingsSetCmd.Flags().Bool("alt-theme", false, "use the alternate theme")
	settingsSetCmd.Flags().Bool("allow-writes", false, "allow write operations against the API")
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show user settings",
	Run: func(cmd *cobra.Command, args []string) {
		s := core.GetUserSettings()
		fmt.Printf("alternate theme:       %t\n", s.UseAlternateTheme)
		fmt.Printf("allow writes:          %t\n", s.AllowWriteAccess)
		fmt.Printf("avatars per page:      %d\n", s.MaxAvatarsPerPage)
		fmt.Printf("worlds per page:       %d\n", s.MaxWorldsPerPage)
		fmt.Printf("notification timeout:  %ds\n", s.NotificationTimeout)
		fmt.Printf("sorting order:         %s\n", s.SortingOrder)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change user settings",
	Run: func(cmd *cobra.Command, args []string) {
		s := core.GetUserSettings()

		if sort, _ := cmd.Flags().GetString("sort"); sort != "" {
			s.SortingOrder = sort
		}
		if n, _ := cmd.Flags().GetInt("max-avatars"); n != 0 {
			s.MaxAvatarsPerPage = n
		}
		if n, _ := cmd.Flags().GetInt("max-worlds"); n != 0 {
			s.MaxWorldsPerPage = n
		}
		if n, _ := cmd.Flags().GetInt("notif-timeout"); n != 0 {
			s.NotificationTimeout = n
		}
		if cmd.Flags().Changed("alt-theme") {
			s.UseAlternateTheme, _ = cmd.Flags().GetBool("alt-theme")
		}
		if cmd.Flags().Changed("allow-writes") {
			s.AllowWriteAccess, _ = cmd.Flags().GetBool("allow-writes")
		}

		if err := core.SaveSettings(s); err != nil {
			fmt.Println("Error saving settings:", err)
			return
		}
		fmt.Println("Settings saved.")
	},
}
