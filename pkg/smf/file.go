package smf

// File aggregates a header and an ordered, non-empty list of tracks:
// the in-memory form of one Standard MIDI File.
type File struct {
	header *Header
	tracks []*Track
}

// NewFile validates and builds a file from a header and its tracks.
func NewFile(header *Header, tracks []*Track) (*File, error) {
	if header == nil {
		return nil, newError(EmptyHeader, "file needs a header", nil)
	}
	if len(tracks) == 0 {
		return nil, newError(EmptyTrackList, "file needs at least one track", nil)
	}
	f := &File{header: header}
	f.tracks = append(f.tracks, tracks...)
	return f, nil
}

// Header returns the file header.
func (f *File) Header() *Header { return f.header }

// Tracks returns a copy of the track list.
func (f *File) Tracks() []*Track { return append([]*Track(nil), f.tracks...) }

// Serialize returns the complete SMF byte stream: the header chunk
// followed by every track chunk in declared order.
func (f *File) Serialize() []byte {
	buf := f.header.Serialize()
	for _, t := range f.tracks {
		buf = append(buf, t.Serialize()...)
	}
	return buf
}
