package driver

// Stage identifies the pipeline phase a progress event refers to.
type Stage uint8

const (
	StageLoad Stage = iota
	StageParse
	StageLower
	StageWrite
)

// Status qualifies a progress event.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusCached
	StatusError
)

// Event is one progress notification from a directory compile. File is the
// path relative to the compile root; an empty File describes the run as a
// whole.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Sink receives progress events.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel, typically consumed by the
// terminal UI. The channel should be buffered; sends block otherwise.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	s.Ch <- ev
}

// NopSink drops events.
type NopSink struct{}

func (NopSink) Send(Event) {}
