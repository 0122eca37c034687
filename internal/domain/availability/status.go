package availability

import "strings"

// Status is the presence state carried in the cache layer. The durable
// store only keeps a boolean availability flag; Online and Available
// map to true, Busy and Offline to false.
type Status string

const (
	StatusOnline    Status = "online"
	StatusBusy      Status = "busy"
	StatusOffline   Status = "offline"
	StatusAvailable Status = "available"
)

// Parse normalizes a raw status string. The boolean result is false
// for anything outside the enumerated set.
func Parse(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusOnline, StatusBusy, StatusOffline, StatusAvailable:
		return s, true
	}
	return "", false
}

// Online reports whether the status counts as present, i.e. whether
// the user belongs in the online set and the durable flag is true.
func (s Status) Online() bool {
	return s == StatusOnline || s == StatusAvailable
}

// FromDurable maps the durable boolean flag back to a status when the
// cache holds nothing fresher.
func FromDurable(available bool) Status {
	if available {
		return StatusAvailable
	}
	return StatusOffline
}

func (s Status) String() string {
	return string(s)
}
