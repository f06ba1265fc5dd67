package constants

const (
	AuthHeaderName          = "Authorization"
	OwnerHeaderName         = "X-Spotlink-Owner"
	DefaultOwnerID          = "default"
	DefaultNetworkInterface = "localhost"
	DefaultPort             = "8080"
	DefaultInternalPort     = "8081"
	PagingLimit             = 50
	HealthRoute             = "/internal/health"
	MetricsRoute            = "/internal/metrics"

	// Names of envs
	EnvENV                      = "SPOTLINK_ENV"
	EnvNetworkInterface         = "SPOTLINK_NETWORK_INTERFACE"
	EnvPort                     = "SPOTLINK_PORT"
	EnvInternalNetworkInterface = "SPOTLINK_INTERNAL_NETWORK_INTERFACE"
	EnvInternalPort             = "SPOTLINK_INTERNAL_PORT"
	EnvPassword                 = "SPOTLINK_PASSWORD"
	EnvMongoURI                 = "SPOTLINK_MONGODB_URI"
	EnvSpotifyClientID          = "SPOTLINK_SPOTIFY_CLIENT_ID"
	EnvSpotifyClientSecret      = "SPOTLINK_SPOTIFY_CLIENT_KEY"
	EnvLogFile                  = "SPOTLINK_LOG_FILE"

	// Keys for context fields
	FieldKeyDao      = ctxKey("dao")
	FieldKeyOwner    = ctxKey("owner")
	FieldKeyResolver = ctxKey("resolver")
	FieldKeySlot     = ctxKey("slot")
)

type ctxKey string
