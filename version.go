package hanoi

// Version is the release of the hanoi module. It is overridden at build time
// with -ldflags "-X github.com/aretw0/hanoi.Version=...".
var Version = "0.1.0"
