package registry

// Status is the result of a registration attempt.
type Status int

const (
	Inserted Status = iota
	Rejected
)

func (s Status) String() string {
	switch s {
	case Inserted:
		return "inserted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is returned by the registration functions. Callers registering
// from init functions usually ignore it; the rejection has already been
// logged.
type Outcome struct {
	Status Status
	// Reason is set when Status is Rejected.
	Reason error
}

// OK reports whether the entry was inserted.
func (o Outcome) OK() bool { return o.Status == Inserted }

func inserted() Outcome          { return Outcome{Status: Inserted} }
func rejected(err error) Outcome { return Outcome{Status: Rejected, Reason: err} }
