package api

import (
	"strconv"
	"strings"
)

// Operation identifiers shared by the rate limiter and the request cache.
// Every parameter that distinguishes one logical request from another is part
// of the identifier, so varying a page size or sort order throttles and
// caches independently.

func opKey(op string, params ...string) string {
	if len(params) == 0 {
		return op
	}
	return op + ":" + strings.Join(params, ":")
}

// FriendsKey identifies the friends-list fetch.
func FriendsKey() string { return opKey("friends") }

// AvatarsKey identifies one page of the own-avatars listing.
func AvatarsKey(amount, offset int, order string) string {
	return opKey("avatars", strconv.Itoa(amount), strconv.Itoa(offset), order)
}

// WorldsKey identifies one page of the own-worlds listing.
func WorldsKey(amount int, order string) string {
	return opKey("worlds", strconv.Itoa(amount), order)
}

// InstanceKey identifies a world instance metadata fetch.
func InstanceKey(worldID, instanceID string) string {
	return opKey("instance", worldID, instanceID)
}

// FavoritesKey identifies the favorites fetch.
func FavoritesKey() string { return opKey("favorites") }
