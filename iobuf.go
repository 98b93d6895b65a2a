package iobuf

// DefaultCapacity is the storage size of a staging buffer when the
// caller has no reason to pick another. Large enough to take a
// pipe-sized read in one fill.
const DefaultCapacity = 8192

// Status is the logical state of a staging buffer. It is a total
// function of how many valid bytes the buffer holds.
type Status uint8

const (
	Empty Status = iota // no valid bytes staged
	Data                // some valid bytes, space remains
	Full                // no space remains
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Data:
		return "data"
	case Full:
		return "full"
	default:
		return "invalid"
	}
}
