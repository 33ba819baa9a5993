// Package file provides a file-based implementation of the config.Fetcher
// interface. Contents are read once at construction and cached.
package file
