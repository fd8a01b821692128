// Command venuematch is the troubleshooting CLI for the venue resolution
// engine: it runs one resolution against a catalog file and prints the
// decision, dumps the alias index, and manages the catalog and config
// files. The engine itself lives under internal/resolve and has no I/O.
package main
