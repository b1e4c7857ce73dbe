package ports

// Status is the result of one codec call, numbered the way zlib numbers
// its return codes so raw values stay meaningful in logs and errors.
type Status int32

const (
	// StatusOK means the call made progress and more work remains.
	StatusOK Status = 0

	// StatusStreamEnd means the current compressed stream is complete.
	StatusStreamEnd Status = 1

	// StatusErrStream means an invalid operation state or parameters.
	StatusErrStream Status = -2

	// StatusErrData means corrupt or invalid compressed input.
	StatusErrData Status = -3

	// StatusErrMemory means the codec failed to allocate internal state.
	StatusErrMemory Status = -4

	// StatusErrBuffer means there was no room to make output progress.
	StatusErrBuffer Status = -5

	// StatusErrVersion means a codec library version mismatch.
	StatusErrVersion Status = -6
)

// FlushMode selects how much pending output a codec step must emit.
type FlushMode int32

const (
	// FlushNone lets the codec buffer output at its own pace.
	FlushNone FlushMode = 0

	// FlushSync emits all output available so far without ending the
	// stream, allowing incremental retrieval into bounded windows.
	FlushSync FlushMode = 2

	// FlushFinish emits all remaining output and terminates the stream.
	FlushFinish FlushMode = 4
)

// Session is one scoped codec lifecycle: created over an input buffer,
// stepped until stream end, then closed. A session drives exactly one
// compression pass or one member of a decompression pass; it owns the
// codec's opaque state and is never shared, copied, or reused.
type Session interface {
	// Step runs one codec step, writing into dst — the unused window of
	// the caller's output buffer. Returns bytes produced and the step
	// status. The input presented to the codec is the session's own
	// unconsumed remainder; dst is never retained past the call.
	Step(dst []byte, mode FlushMode) (int, Status)

	// BytesRead returns the input bytes this session has consumed so far.
	BytesRead() int

	// BytesWritten returns the output bytes this session has produced so far.
	BytesWritten() int

	// Msg returns the codec's last diagnostic message, empty if none.
	Msg() string

	// Close releases the session's internal state. It must run on every
	// exit path, exactly once; closing twice returns StatusErrStream.
	// Closing a session whose initialization failed is a no-op.
	Close() Status
}

// Codec creates codec sessions. Implementations wrap the external
// DEFLATE/INFLATE engine; callers drive it only through this contract.
type Codec interface {
	// NewDeflator opens a compression session over src with the given
	// level and window-bits parameters, both passed through to the engine
	// uninterpreted. The session is non-nil even when the status reports
	// an initialization failure, so the caller can still read Msg.
	NewDeflator(src []byte, level, windowBits int32) (Session, Status)

	// NewInflator opens a decompression session over src. The session
	// covers a single compressed stream; concatenated members need one
	// session each.
	NewInflator(src []byte, windowBits int32) (Session, Status)
}
