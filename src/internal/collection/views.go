package collection

// The methods below expose the sort orders precomputed at construction time
// (spec §4.C). Each returns a read-only slice of keys; iterating it is a
// zero-cost walk over a permutation, never a recomputation.

func (c *Collection) ArtistsByNameAsc() []ArtistKey        { return c.artistSorts.NameAsc }
func (c *Collection) ArtistsByNameDesc() []ArtistKey       { return c.artistSorts.NameDesc }
func (c *Collection) ArtistsByAlbumCountAsc() []ArtistKey  { return c.artistSorts.AlbumCountAsc }
func (c *Collection) ArtistsByAlbumCountDesc() []ArtistKey { return c.artistSorts.AlbumCountDesc }
func (c *Collection) ArtistsBySongCountAsc() []ArtistKey   { return c.artistSorts.SongCountAsc }
func (c *Collection) ArtistsBySongCountDesc() []ArtistKey  { return c.artistSorts.SongCountDesc }
func (c *Collection) ArtistsByRuntimeAsc() []ArtistKey     { return c.artistSorts.RuntimeAsc }
func (c *Collection) ArtistsByRuntimeDesc() []ArtistKey    { return c.artistSorts.RuntimeDesc }
func (c *Collection) ArtistsByNameLenAsc() []ArtistKey     { return c.artistSorts.NameLenAsc }
func (c *Collection) ArtistsByNameLenDesc() []ArtistKey    { return c.artistSorts.NameLenDesc }

func (c *Collection) AlbumsByArtistNameAscReleaseAsc() []AlbumKey {
	return c.albumSorts.ArtistNameAscReleaseAsc
}
func (c *Collection) AlbumsByArtistNameAscReleaseDesc() []AlbumKey {
	return c.albumSorts.ArtistNameAscReleaseDesc
}
func (c *Collection) AlbumsByArtistNameDescReleaseAsc() []AlbumKey {
	return c.albumSorts.ArtistNameDescReleaseAsc
}
func (c *Collection) AlbumsByArtistNameDescReleaseDesc() []AlbumKey {
	return c.albumSorts.ArtistNameDescReleaseDesc
}
func (c *Collection) AlbumsByArtistNameAscTitleAsc() []AlbumKey {
	return c.albumSorts.ArtistNameAscTitleAsc
}
func (c *Collection) AlbumsByArtistNameAscTitleDesc() []AlbumKey {
	return c.albumSorts.ArtistNameAscTitleDesc
}
func (c *Collection) AlbumsByArtistNameDescTitleAsc() []AlbumKey {
	return c.albumSorts.ArtistNameDescTitleAsc
}
func (c *Collection) AlbumsByArtistNameDescTitleDesc() []AlbumKey {
	return c.albumSorts.ArtistNameDescTitleDesc
}
func (c *Collection) AlbumsByTitleAsc() []AlbumKey     { return c.albumSorts.TitleAsc }
func (c *Collection) AlbumsByTitleDesc() []AlbumKey    { return c.albumSorts.TitleDesc }
func (c *Collection) AlbumsByReleaseAsc() []AlbumKey   { return c.albumSorts.ReleaseAsc }
func (c *Collection) AlbumsByReleaseDesc() []AlbumKey  { return c.albumSorts.ReleaseDesc }
func (c *Collection) AlbumsByRuntimeAsc() []AlbumKey   { return c.albumSorts.RuntimeAsc }
func (c *Collection) AlbumsByRuntimeDesc() []AlbumKey  { return c.albumSorts.RuntimeDesc }
func (c *Collection) AlbumsByTitleLenAsc() []AlbumKey  { return c.albumSorts.TitleLenAsc }
func (c *Collection) AlbumsByTitleLenDesc() []AlbumKey { return c.albumSorts.TitleLenDesc }

func (c *Collection) SongsByArtistNameAscAlbumReleaseAsc() []SongKey {
	return c.songSorts.ArtistNameAscAlbumReleaseAsc
}
func (c *Collection) SongsByArtistNameAscAlbumReleaseDesc() []SongKey {
	return c.songSorts.ArtistNameAscAlbumReleaseDesc
}
func (c *Collection) SongsByArtistNameDescAlbumReleaseAsc() []SongKey {
	return c.songSorts.ArtistNameDescAlbumReleaseAsc
}
func (c *Collection) SongsByArtistNameDescAlbumReleaseDesc() []SongKey {
	return c.songSorts.ArtistNameDescAlbumReleaseDesc
}
func (c *Collection) SongsByArtistNameAscAlbumTitleAsc() []SongKey {
	return c.songSorts.ArtistNameAscAlbumTitleAsc
}
func (c *Collection) SongsByArtistNameAscAlbumTitleDesc() []SongKey {
	return c.songSorts.ArtistNameAscAlbumTitleDesc
}
func (c *Collection) SongsByArtistNameDescAlbumTitleAsc() []SongKey {
	return c.songSorts.ArtistNameDescAlbumTitleAsc
}
func (c *Collection) SongsByArtistNameDescAlbumTitleDesc() []SongKey {
	return c.songSorts.ArtistNameDescAlbumTitleDesc
}
func (c *Collection) SongsByTitleAsc() []SongKey     { return c.songSorts.TitleAsc }
func (c *Collection) SongsByTitleDesc() []SongKey    { return c.songSorts.TitleDesc }
func (c *Collection) SongsByReleaseAsc() []SongKey   { return c.songSorts.ReleaseAsc }
func (c *Collection) SongsByReleaseDesc() []SongKey  { return c.songSorts.ReleaseDesc }
func (c *Collection) SongsByRuntimeAsc() []SongKey   { return c.songSorts.RuntimeAsc }
func (c *Collection) SongsByRuntimeDesc() []SongKey  { return c.songSorts.RuntimeDesc }
func (c *Collection) SongsByTitleLenAsc() []SongKey  { return c.songSorts.TitleLenAsc }
func (c *Collection) SongsByTitleLenDesc() []SongKey { return c.songSorts.TitleLenDesc }

// allArtistSortSlices, allAlbumSortSlices and allSongSortSlices are used by
// CheckInvariants to check the length/permutation invariant (spec §3.2
// invariant 4 and §8) without hand-listing every accessor twice.
func (c *Collection) allArtistSortSlices() [][]ArtistKey {
	s := c.artistSorts
	return [][]ArtistKey{
		s.NameAsc, s.NameDesc, s.AlbumCountAsc, s.AlbumCountDesc,
		s.SongCountAsc, s.SongCountDesc, s.RuntimeAsc, s.RuntimeDesc,
		s.NameLenAsc, s.NameLenDesc,
	}
}

func (c *Collection) allAlbumSortSlices() [][]AlbumKey {
	s := c.albumSorts
	return [][]AlbumKey{
		s.ArtistNameAscReleaseAsc, s.ArtistNameAscReleaseDesc,
		s.ArtistNameDescReleaseAsc, s.ArtistNameDescReleaseDesc,
		s.ArtistNameAscTitleAsc, s.ArtistNameAscTitleDesc,
		s.ArtistNameDescTitleAsc, s.ArtistNameDescTitleDesc,
		s.TitleAsc, s.TitleDesc, s.ReleaseAsc, s.ReleaseDesc,
		s.RuntimeAsc, s.RuntimeDesc, s.TitleLenAsc, s.TitleLenDesc,
	}
}

func (c *Collection) allSongSortSlices() [][]SongKey {
	s := c.songSorts
	return [][]SongKey{
		s.ArtistNameAscAlbumReleaseAsc, s.ArtistNameAscAlbumReleaseDesc,
		s.ArtistNameDescAlbumReleaseAsc, s.ArtistNameDescAlbumReleaseDesc,
		s.ArtistNameAscAlbumTitleAsc, s.ArtistNameAscAlbumTitleDesc,
		s.ArtistNameDescAlbumTitleAsc, s.ArtistNameDescAlbumTitleDesc,
		s.TitleAsc, s.TitleDesc, s.ReleaseAsc, s.ReleaseDesc,
		s.RuntimeAsc, s.RuntimeDesc, s.TitleLenAsc, s.TitleLenDesc,
	}
}
