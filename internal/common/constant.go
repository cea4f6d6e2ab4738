// Package common contains shared constants and sentinel errors used across
// gophdocs components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DocumentsPrefix is the storage folder under which uploaded files are kept.
const DocumentsPrefix = "docs/"

// DefaultBucket is the object storage bucket holding document files.
const DefaultBucket = "gedbucket"

// MinPasswordLength is the shortest password accepted on sign up and on
// password change.
const MinPasswordLength = 6
