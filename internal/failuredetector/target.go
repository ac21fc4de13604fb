package failuredetector

// Target is the interface the membership protocol engine implements to be driven by the Detector. RunTick executes
// one full round of the failure-detection algorithm: bump successor suspicion counters, synthesize Leave for any
// successor past the drop threshold, and ping the rest.
type Target interface {
	// IsMember reports whether the protocol period should run at all. The detector skips the tick entirely when
	// this is false, since there is nothing to monitor before a node has joined.
	IsMember() bool

	// RunTick executes one protocol period.
	RunTick()
}
