package collection

// NameMap is a three-level nested mapping from display names to keys:
// artist name -> (artist key, album title -> (album key, song title ->
// song key)). It gives O(1) name lookup without forcing callers to
// NFKC-casefold their query - the map is keyed by the display form, exactly
// as stored on the entity, per spec §4.B.
type NameMap struct {
	artists map[string]artistEntry
}

type artistEntry struct {
	key    ArtistKey
	albums map[string]albumEntry
}

type albumEntry struct {
	key   AlbumKey
	songs map[string]SongKey
}

// newNameMap builds an empty NameMap ready for insertion.
func newNameMap() NameMap {
	return NameMap{artists: make(map[string]artistEntry)}
}

// insertArtist registers an artist name. If the name already exists the
// call is a no-op: the first-inserted entity owns the name, per spec §4.B
// ("the second entity is not overwritten"). CCD is responsible for handing
// the map collision-free names in the first place (§4.F phase 4).
func (m *NameMap) insertArtist(name string, key ArtistKey) {
	if _, exists := m.artists[name]; exists {
		return
	}
	m.artists[name] = artistEntry{key: key, albums: make(map[string]albumEntry)}
}

// insertAlbum registers an album title under an already-inserted artist
// name. It is a no-op if the artist is unknown or the title already exists
// under that artist.
func (m *NameMap) insertAlbum(artistName, title string, key AlbumKey) {
	a, exists := m.artists[artistName]
	if !exists {
		return
	}
	if _, exists := a.albums[title]; exists {
		return
	}
	a.albums[title] = albumEntry{key: key, songs: make(map[string]SongKey)}
}

// insertSong registers a song title under an already-inserted artist/album
// pair. It is a no-op if the artist or album is unknown, or the title
// already exists under that album.
func (m *NameMap) insertSong(artistName, albumTitle, songTitle string, key SongKey) {
	a, exists := m.artists[artistName]
	if !exists {
		return
	}
	al, exists := a.albums[albumTitle]
	if !exists {
		return
	}
	if _, exists := al.songs[songTitle]; exists {
		return
	}
	al.songs[songTitle] = key
}

// Artist looks up an artist by its exact display name.
func (m NameMap) Artist(name string) (ArtistKey, bool) {
	a, exists := m.artists[name]
	return a.key, exists
}

// Album looks up an album by artist name and exact album title.
func (m NameMap) Album(artistName, title string) (AlbumKey, bool) {
	a, exists := m.artists[artistName]
	if !exists {
		return 0, false
	}
	al, exists := a.albums[title]
	return al.key, exists
}

// Song looks up a song by artist name, album title and exact song title.
func (m NameMap) Song(artistName, albumTitle, songTitle string) (SongKey, bool) {
	a, exists := m.artists[artistName]
	if !exists {
		return 0, false
	}
	al, exists := a.albums[albumTitle]
	if !exists {
		return 0, false
	}
	key, exists := al.songs[songTitle]
	return key, exists
}

// BuildNameMap is the exported form of buildNameMap, used by CCD (which
// assembles entity arrays itself before handing them to New) to build the
// NameMap argument New requires (spec §4.F phase 6).
func BuildNameMap(artists []Artist, albums []Album, songs []Song) NameMap {
	return buildNameMap(artists, albums, songs)
}

// buildNameMap walks the three arrays once, in declaration (key) order, and
// inserts every entity's display name. Callers (CCD, and the version
// migrators in migrate.go) must have already made names collision-free at
// every level - the map itself silently keeps the first entity for any
// duplicate, per spec §4.B.
func buildNameMap(artists []Artist, albums []Album, songs []Song) NameMap {
	m := newNameMap()

	for _, a := range artists {
		m.insertArtist(a.Name, a.Key)
	}
	for _, al := range albums {
		artistName := artists[al.Artist].Name
		m.insertAlbum(artistName, al.Title, al.Key)
	}
	for _, s := range songs {
		al := albums[s.Album]
		artistName := artists[al.Artist].Name
		m.insertSong(artistName, al.Title, s.Title, s.Key)
	}

	return m
}
