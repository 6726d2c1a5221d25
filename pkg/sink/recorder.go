package sink

import (
	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

// FiringLog is the slice of the store the Recorder needs.
type FiringLog interface {
	AppendFiring(periodID string, atHours int64) (int64, error)
}

// Recorder appends every notification to the persistent firing log.
// Append failures are reported through OnError (when set) rather than
// interrupting the advance that produced them.
type Recorder struct {
	log FiringLog

	// OnError receives append failures. Nil discards them.
	OnError func(error)
}

// NewRecorder builds a Recorder over the given log.
func NewRecorder(log FiringLog) *Recorder {
	return &Recorder{log: log}
}

// Notify implements calendar.Sink.
func (r *Recorder) Notify(periodID string, firedAt timeval.TimeValue) {
	if _, err := r.log.AppendFiring(periodID, firedAt.Hours()); err != nil && r.OnError != nil {
		r.OnError(err)
	}
}
