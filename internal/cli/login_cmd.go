package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	loginCmd.Flags().String("user", "", "account username")
	loginCmd.Flags().String("pass", "", "account password")
	_ = loginCmd.MarkFlagRequired("user")
	_ = loginCmd.MarkFlagRequired("pass")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	Run: func(cmd *cobra.Command, args []string) {
		user, _ := cmd.Flags().GetString("user")
		pass, _ := cmd.Flags().GetString("pass")

		if err := core.AcquireClientToken(cmd.Context()); err != nil {
			fmt.Println("Login failed:", err)
			return
		}
		identity, err := core.Login(cmd.Context(), user, pass)
		if err != nil {
			fmt.Println("Login failed:", err)
			return
		}
		fmt.Printf("Logged in as %s (%s)\n", identity.DisplayName, identity.ID)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the persisted session",
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.Logout(); err != nil {
			fmt.Println("Logout failed:", err)
			return
		}
		fmt.Println("Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		identity := core.LoginInfo()
		fmt.Printf("%s (%s)\n", identity.DisplayName, identity.Username)
		if tags := core.UserTags(); len(tags) > 0 {
			fmt.Println("Tags:", strings.Join(tags, ", "))
		}
	},
}
