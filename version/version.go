package version

// Version is the current version of the arcade, set at build time with
// -ldflags "-X github.com/battlesnakeio/arcade/version.Version=...".
var Version = "dev"
