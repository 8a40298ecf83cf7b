// Package common contains constants shared by the client and the
// development API.
package common

const (
	// AuthTokenKey is the fixed storage key of the session token.
	AuthTokenKey = "authToken"

	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-ID"

	// UploadFieldName is the multipart field that carries an uploaded image.
	UploadFieldName = "image"

	// DegradedHeader marks responses served while the API was unreachable.
	DegradedHeader = "X-Session-Degraded"
)
