// internal/version/version.go
package version

// Version is overridable at build time via -ldflags "-X aptclust/internal/version.Version=...".
var Version = "0.2.0"
