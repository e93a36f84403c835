// Package cli turns the swiftcols command line into a swiftcols.Config.
//
// Flags may appear before, after or between column arguments. Column arguments keep their
// order; "--" ends flag parsing so later arguments are always treated as columns.
package cli
