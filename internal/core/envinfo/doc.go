// Package envinfo reconstructs where each effective configuration value came
// from and renders the result for the terminal.
//
// Three source tiers exist, in strict precedence order: the config file, the
// process environment, and the built-in defaults. Only the API key and the
// debug flag consult the environment; every other field is either present in
// the config file or a default.
//
// Nothing in this package returns an error. Missing or malformed inputs
// degrade to default-tier values.
package envinfo
