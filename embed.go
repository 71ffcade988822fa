package portfolio

import "embed"

// EmbeddedAssets holds the client script served under /public/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
