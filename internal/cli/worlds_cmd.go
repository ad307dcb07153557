package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Red1144/VRChatAppi/internal/api"
	"github.com/Red1144/VRChatAppi/internal/models"
)

func init() {
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(worldMetaCmd)
	rootCmd.AddCommand(clearCacheCmd)
	worldsCmd.Flags().Int("amount", 0, "page size (default from settings)")
	worldsCmd.Flags().String("sort", "", "sorting order: updated, created or order (default from settings)")
	worldsCmd.Flags().Bool("cached", false, "serve the last fetched page without a network call")
	worldCmd.Flags().Bool("cache-only", false, "only consult the durable world cache")
	worldMetaCmd.Flags().Bool("cached", false, "serve the last fetched metadata without a network call")
}

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List your own worlds",
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}
		settings := core.GetUserSettings()

		amount, _ := cmd.Flags().GetInt("amount")
		if amount == 0 {
			amount = settings.MaxWorldsPerPage
		}
		sort, _ := cmd.Flags().GetString("sort")
		if sort == "" {
			sort = settings.SortingOrder
		}
		if !models.ValidSortingOrder(sort) {
			fmt.Printf("Invalid sorting order %q.\n", sort)
			return
		}

		wantCached, _ := cmd.Flags().GetBool("cached")
		key := api.WorldsKey(amount, sort)
		live := !wantCached && core.Limiter().CanSend(key)
		if !live && !wantCached {
			fmt.Printf("Serving cached page, refresh available in %s.\n", core.Limiter().WhenNextAllowed(key))
		}

		worlds, err := core.GetWorlds(cmd.Context(), amount, sort, !live)
		if err != nil {
			fmt.Println("Error fetching worlds:", err)
			return
		}
		for _, w := range worlds {
			fmt.Printf("%-44s %-32s %s\n", w.ID, w.Name, w.ReleaseStatus)
		}
	},
}

var worldCmd = &cobra.Command{
	Use:   "world <id>",
	Short: "Resolve a world id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cacheOnly, _ := cmd.Flags().GetBool("cache-only")
		if !cacheOnly {
			if err := ensureSession(cmd.Context()); err != nil {
				fmt.Println(err)
				return
			}
		}
		w, err := core.GetWorld(cmd.Context(), args[0], cacheOnly)
		if err != nil {
			fmt.Println("Error fetching world:", err)
			return
		}
		if w == nil {
			fmt.Println("World not cached.")
			return
		}
		fmt.Printf("%s by %s (%s)\n%s\n", w.Name, w.AuthorName, w.ReleaseStatus, w.Description)
	},
}

var worldMetaCmd = &cobra.Command{
	Use:   "world-meta <world-id> <instance-id>",
	Short: "Show metadata of one world instance",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := ensureSession(cmd.Context()); err != nil {
			fmt.Println(err)
			return
		}

		wantCached, _ := cmd.Flags().GetBool("cached")
		key := api.InstanceKey(args[0], args[1])
		live := !wantCached && core.Limiter().CanSend(key)
		if !live && !wantCached {
			fmt.Printf("Serving cached metadata, refresh available in %s.\n", core.Limiter().WhenNextAllowed(key))
		}

		inst, err := core.GetWorldMetadata(cmd.Context(), args[0], args[1], !live)
		if err != nil {
			fmt.Println("Error fetching instance metadata:", err)
			return
		}
		if inst == nil {
			fmt.Println("Instance not cached.")
			return
		}
		fmt.Printf("%s: %d/%d users, type %s\n", inst.InstanceID, inst.NUsers, inst.Capacity, inst.Type)
	},
}

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Wipe the durable world cache",
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ClearCache(); err != nil {
			fmt.Println("Error clearing cache:", err)
			return
		}
		fmt.Println("World cache cleared.")
	},
}
