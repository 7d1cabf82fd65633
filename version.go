package rofiflow

// Version is the release of the module. Release builds override it with
// -ldflags "-X github.com/aretw0/rofiflow.Version=...".
var Version = "v0.1.0"
