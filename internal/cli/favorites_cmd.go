package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Red1144/VRChatAppi/internal/models"
)

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.Flags().Bool("local", false, "read the persisted copy instead of the API")
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorites",
	Run: func(cmd *cobra.Command, args []string) {
		local, _ := cmd.Flags().GetBool("local")

		var (
			favorites []models.Favorite
			err       error
		)
		if local {
			favorites, err = core.LoadFavorites()
			if err != nil {
				fmt.Println("Error loading favorites:", err)
				return
			}
			if favorites == nil {
				fmt.Println("No favorites saved locally.")
				return
			}
		} else {
			if err := ensureSession(cmd.Context()); err != nil {
				fmt.Println(err)
				return
			}
			favorites, err = core.GetFavorites(cmd.Context())
			if err != nil {
				fmt.Println("Error fetching favorites:", err)
				return
			}
			if err := core.SaveFavorites(favorites); err != nil {
				fmt.Println("Error persisting favorites:", err)
				return
			}
		}

		for _, f := range favorites {
			fmt.Printf("%-10s %s\n", f.Type, f.FavoriteID)
		}
	},
}
