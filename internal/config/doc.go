// Package config loads per-repository configuration from
// <repo>/.spectrena/config.toml.
//
// Configuration is optional: a repository without a config file gets the
// defaults (worktrees under .worktrees/, specs under specs/, main and
// master protected). A file that exists but fails to parse is an error
// rather than a silent fallback, so typos don't quietly change behavior.
package config
