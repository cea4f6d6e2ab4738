package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Seams for tests.
var (
	loadDotenv = func() error { return godotenv.Load() }
	lookupEnv  = os.LookupEnv
)

// parseEnv loads an optional .env file from the working directory and then
// overlays every GOPHDOCS_* variable that is set. A missing .env is fine;
// a malformed duration panics like the other loaders do.
func parseEnv(config *Config) {
	_ = loadDotenv()

	str := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookupEnv(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("GOPHDOCS_GRPC_ADDR", &config.EndpointAddrGRPC)
	str("GOPHDOCS_HTTP_ADDR", &config.EndpointAddrHTTP)
	str("GOPHDOCS_DATABASE_DSN", &config.DatabaseDSN)
	str("GOPHDOCS_SECRET_KEY", &config.SecretKey)
	dur("GOPHDOCS_ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	dur("GOPHDOCS_REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration)
	str("GOPHDOCS_STORAGE_DRIVER", &config.StorageDriver)
	str("GOPHDOCS_S3_ROOT_USER", &config.S3RootUser)
	str("GOPHDOCS_S3_ROOT_PASSWORD", &config.S3RootPassword)
	str("GOPHDOCS_S3_BUCKET", &config.S3Bucket)
	str("GOPHDOCS_S3_REGION", &config.S3Region)
	str("GOPHDOCS_S3_ENDPOINT", &config.S3BaseEndpoint)
	str("GOPHDOCS_PUBLIC_BASE_URL", &config.PublicBaseURL)
	dur("GOPHDOCS_PRESIGN_TTL", &config.PresignTTL)
	str("GOPHDOCS_LOG_LEVEL", &config.LogLevel)
}
