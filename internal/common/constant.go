package common

// AuthorizationHeaderName carries the access token on GraphQL requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is accepted, but not required, in front of the token.
const BearerPrefix = "Bearer "
