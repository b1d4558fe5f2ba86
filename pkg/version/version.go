package version

// Version is set at build time with -ldflags "-X github.com/cloudposse/ekscli/pkg/version.Version=...".
var Version = "test"
