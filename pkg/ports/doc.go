/*
Package ports defines the driven ports (interfaces) of the headr engine.

These interfaces decouple the truncation loop from where bytes come from, so
the same runner works against the filesystem, an in-memory fixture, or any
embedding host.

# Key Interfaces

  - SourceOpener: Maps a source name to a readable domain.Source.
*/
package ports
