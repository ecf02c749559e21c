// Package workflow implements the photo-processing operations the CLI
// exposes: renaming, timezone stamping, geotagging, timestamp shifting,
// timezone detection, per-day organization, track downloads, and the
// composed pipelines built from them.
//
// Every operation is a plain function over (ctx, *Toolset, config.Config).
// The Toolset bundles the external tool clients and the logger; the
// configuration is an immutable value, so composition is explicit function
// calls rather than re-entry through the CLI layer. All filesystem mutation
// happens through external tools dispatched by the runner, which keeps
// dry-run handling in one place.
package workflow
