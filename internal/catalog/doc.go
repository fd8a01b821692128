// Package catalog defines the venue catalog entry type consumed by the
// resolver and the TOML catalog file format used by the CLI. The resolver
// itself never touches the filesystem; it receives a catalog snapshot per
// call from whoever owns the data.
package catalog
