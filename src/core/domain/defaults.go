package domain

// DefaultRedirectTo is where successful logins land when the form did not
// carry an explicit redirectTo field.
const DefaultRedirectTo = "/jokes"

// RecentJokesLimit bounds the jokes listing to the most recent entries.
const RecentJokesLimit = 5
