package models

// LoginIdentity is the account information captured on a successful login.
// LoginName and LoginPassword are the credentials the user typed; they are
// retained only so a session restore can optionally replay the login instead
// of trusting cached tokens.
type LoginIdentity struct {
	Username         string   `json:"username"`
	DisplayName      string   `json:"displayName"`
	AvatarImageURL   string   `json:"avatarImage"`
	ID               string   `json:"id"`
	Tags             []string `json:"tags,omitempty"`
	FriendGroupNames []string `json:"friendGroupNames,omitempty"`
	LoginName        string   `json:"loginName,omitempty"`
	LoginPassword    string   `json:"loginPassword,omitempty"`
}

// Friend is one entry of the friends list.
type Friend struct {
	ID                string   `json:"id"`
	Username          string   `json:"username"`
	DisplayName       string   `json:"displayName"`
	AvatarImageURL    string   `json:"currentAvatarImageUrl"`
	AvatarThumbnail   string   `json:"currentAvatarThumbnailImageUrl"`
	Tags              []string `json:"tags"`
	Status            string   `json:"status"`
	StatusDescription string   `json:"statusDescription"`
	Location          string   `json:"location"`
}

// Avatar is an avatar record as returned by the remote API.
type Avatar struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	AuthorID      string   `json:"authorId"`
	AuthorName    string   `json:"authorName"`
	Tags          []string `json:"tags"`
	AssetURL      string   `json:"assetUrl"`
	ImageURL      string   `json:"imageUrl"`
	ThumbnailURL  string   `json:"thumbnailImageUrl"`
	ReleaseStatus string   `json:"releaseStatus"`
	Version       int      `json:"version"`
}

// AvatarUpdate carries the writable avatar fields for a save. Nil fields are
// left untouched by the remote API.
type AvatarUpdate struct {
	Name     *string `json:"name,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// World is a full world record.
type World struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	AuthorID      string `json:"authorId"`
	AuthorName    string `json:"authorName"`
	ImageURL      string `json:"imageUrl"`
	ThumbnailURL  string `json:"thumbnailImageUrl"`
	ReleaseStatus string `json:"releaseStatus"`
	Capacity      int    `json:"capacity"`
}

// WorldSummary is the reduced projection kept in the durable world cache, one
// entry per world id.
type WorldSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ImageURL      string `json:"image"`
	Description   string `json:"description"`
	AuthorName    string `json:"authorName"`
	ReleaseStatus string `json:"status"`
}

// Summary projects a full world record down to its cache entry.
func (w World) Summary() WorldSummary {
	return WorldSummary{
		ID:            w.ID,
		Name:          w.Name,
		ImageURL:      w.ThumbnailURL,
		Description:   w.Description,
		AuthorName:    w.AuthorName,
		ReleaseStatus: w.ReleaseStatus,
	}
}

// Instance is the metadata of one world instance.
type Instance struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	WorldID    string `json:"worldId"`
	Type       string `json:"type"`
	OwnerID    string `json:"ownerId"`
	Private    bool   `json:"private"`
	NUsers     int    `json:"n_users"`
	Capacity   int    `json:"capacity"`
	InstanceID string `json:"instanceId"`
}

// Moderation is one player moderation record, sent by or against the user.
type Moderation struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	SourceID    string `json:"sourceUserId"`
	SourceName  string `json:"sourceDisplayName"`
	TargetID    string `json:"targetUserId"`
	TargetName  string `json:"targetDisplayName"`
	CreatedAt   string `json:"created"`
	Description string `json:"description,omitempty"`
}

// Favorite is one favorite record.
type Favorite struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	FavoriteID string   `json:"favoriteId"`
	Tags       []string `json:"tags"`
}

// Sorting orders accepted for avatar and world listings.
const (
	SortUpdated = "updated"
	SortCreated = "created"
	SortOrder   = "order"
)

// Settings are the user-tunable client settings, persisted wholesale.
type Settings struct {
	UseAlternateTheme   bool   `json:"useAlternateTheme"`
	AllowWriteAccess    bool   `json:"allowWriteAccess"`
	MaxAvatarsPerPage   int    `json:"maxAvatarsPerPage"`
	MaxWorldsPerPage    int    `json:"maxWorldsPerPage"`
	NotificationTimeout int    `json:"notificationTimeoutSeconds"`
	SortingOrder        string `json:"sortingOrder"`
}

// DefaultSettings returns the settings used until a saved record is loaded.
func DefaultSettings() Settings {
	return Settings{
		MaxAvatarsPerPage:   10,
		MaxWorldsPerPage:    20,
		NotificationTimeout: 5,
		SortingOrder:        SortUpdated,
	}
}

// ValidSortingOrder reports whether s is one of the accepted sorting orders.
func ValidSortingOrder(s string) bool {
	return s == SortUpdated || s == SortCreated || s == SortOrder
}
