package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Red1144/VRChatAppi/internal/api"
)

func init() {
	rootCmd.AddCommand(friendsCmd)
	friendsCmd.Flags().Bool("cached", false, "serve the last fetched list without a network call")
}

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List friends and where they are",
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}

		wantCached, _ := cmd.Flags().GetBool("cached")
		key := api.FriendsKey()
		live := !wantCached && core.Limiter().CanSend(key)
		if !live && !wantCached {
			fmt.Printf("Serving cached list, refresh available in %s.\n", core.Limiter().WhenNextAllowed(key))
		}

		friends, err := core.GetFriends(cmd.Context(), !live)
		if err != nil {
			fmt.Println("Error fetching friends:", err)
			return
		}
		if len(friends) == 0 {
			fmt.Println("No friends online (or nothing cached yet).")
			return
		}
		for _, f := range friends {
			location := f.Location
			if location == "" {
				location = "offline"
			}
			fmt.Printf("%-24s %-8s %s\n", f.DisplayName, f.Status, location)
		}
	},
}
