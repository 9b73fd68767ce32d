package types

// Version is overwritten at build time with -ldflags
var Version = "dev"

// ServiceName is reported by the health endpoint and the CLI
const ServiceName = "psindex"
