package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Red1144/VRChatAppi/internal/api"
	"github.com/Red1144/VRChatAppi/internal/models"
)

func init() {
	rootCmd.AddCommand(avatarsCmd)
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(avatarSaveCmd)
	avatarsCmd.Flags().Int("amount", 0, "page size (default from settings)")
	avatarsCmd.Flags().Int("offset", 0, "page offset")
	avatarsCmd.Flags().String("sort", "", "sorting order: updated, created or order (default from settings)")
	avatarsCmd.Flags().Bool("cached", false, "serve the last fetched page without a network call")
	avatarSaveCmd.Flags().String("name", "", "new avatar name")
	avatarSaveCmd.Flags().String("image", "", "new avatar image URL")
}

var avatarsCmd = &cobra.Command{
	Use:   "avatars",
	Short: "List your own avatars",
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		settings := core.GetUserSettings()

		amount, _ := cmd.Flags().GetInt("amount")
		if amount == 0 {
			amount = settings.MaxAvatarsPerPage
		}
		offset, _ := cmd.Flags().GetInt("offset")
		sort, _ := cmd.Flags().GetString("sort")
		if sort == "" {
			sort = settings.SortingOrder
		}
		if !models.ValidSortingOrder(sort) {
			fmt.Printf("Invalid sorting order %q.\n", sort)
			return
		}

		wantCached, _ := cmd.Flags().GetBool("cached")
		key := api.AvatarsKey(amount, offset, sort)
		live := !wantCached && core.Limiter().CanSend(key)
		if !live && !wantCached {
			fmt.Printf("Serving cached page, refresh available in %s.\n", core.Limiter().WhenNextAllowed(key))
		}

		avatars, err := core.GetAvatars(cmd.Context(), amount, offset, sort, !live)
		if err != nil {
			fmt.Println("Error fetching avatars:", err)
			return
		}
		for _, a := range avatars {
			fmt.Printf("%-40s %-24s %s\n", a.ID, a.Name, a.ReleaseStatus)
		}
	},
}

var avatarCmd = &cobra.Command{
	Use:   "avatar <id>",
	Short: "Show one avatar",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		a, err := core.GetAvatar(cmd.Context(), args[0])
		if err != nil {
			fmt.Println("Error fetching avatar:", err)
			return
		}
		fmt.Printf("%s by %s (%s)\n%s\nasset: %s\n", a.Name, a.AuthorName, a.ReleaseStatus, a.Description, a.AssetURL)
	},
}

var avatarSaveCmd = &cobra.Command{
	Use:   "avatar-save <id>",
	Short: "Update avatar name or image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		var update models.AvatarUpdate
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			update.Name = &name
		}
		if image, _ := cmd.Flags().GetString("image"); image != "" {
			update.ImageURL = &image
		}
		if update.Name == nil && update.ImageURL == nil {
			fmt.Println("Nothing to change, pass --name or --image.")
			return
		}
		a, err := core.SaveAvatar(cmd.Context(), args[0], update)
		if err != nil {
			fmt.Println("Error saving avatar:", err)
			return
		}
		fmt.Printf("Saved %s.\n", a.Name)
	},
}
