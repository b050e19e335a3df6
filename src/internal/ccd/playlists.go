package ccd

import "festival/internal/collection"

// NoopPlaylists is the default PlaylistRevalidator used when a rebuild is
// not given a real one: it does nothing, matching spec §4.F phase 9
// "handled by a collaborator layer; the core merely surfaces the new
// Collection plus the name map".
type NoopPlaylists struct{}

func (NoopPlaylists) Revalidate(*collection.Collection, collection.NameMap) {}
