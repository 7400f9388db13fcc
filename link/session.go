// Package link supplies the concrete byte-source/byte-sink collaborator
// the core protocol packages describe only abstractly: a Session pairs a
// transport.Parser and a transport.StreamEmitter with an io.Reader and
// io.Writer, decodes inbound frames as standard messages, and lets a
// caller send a request and wait for its matching response.
package link

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/trigrass2/popcop/internal/pool"
	"github.com/trigrass2/popcop/logger"
	"github.com/trigrass2/popcop/standard"
	"github.com/trigrass2/popcop/transport"
)

// DefaultReplyTimeout bounds how long Call waits for a response when the
// caller's Config didn't set ReplyTimeout, mirroring a SECS-I T3 reply
// timer.
const DefaultReplyTimeout = 5 * time.Second

// MessageHandler receives a frame that was not claimed by a pending Call —
// either an unsolicited message (e.g. a spontaneous status report) or a
// response whose requester already gave up.
type MessageHandler func(typeCode byte, msg standard.Message, payload []byte)

// Session owns one byte-stream connection to a remote endpoint. It is safe
// for concurrent use: Run's read loop and any number of goroutines calling
// Send/Call may operate at once, following the same sender/protocol-loop
// split the connection this module's request bookkeeping is grounded on
// uses.
type Session struct {
	r      *bufio.Reader
	w      io.Writer
	writeMu sync.Mutex

	parser   *transport.Parser
	registry *standard.Registry
	log      logger.Logger

	replyTimeout time.Duration
	onMessage    MessageHandler

	pending *xsync.MapOf[uint16, chan pendingResult]

	closed  atomic.Bool
	closeCh chan struct{}
}

type pendingResult struct {
	msg     standard.Message
	payload []byte
}

// Config bundles the parameters needed to construct a Session.
type Config struct {
	// ParserCapacity bounds the largest frame payload Run will accept.
	ParserCapacity int
	// Registry decodes inbound frame payloads into standard messages. If
	// nil, NewSession builds one with NewRegistry.
	Registry *standard.Registry
	// Logger receives diagnostic messages (extraneous bytes, decode
	// failures). If nil, the package-level logger from logger.GetLogger
	// is used.
	Logger logger.Logger
	// OnMessage is invoked for every decoded frame not claimed by a
	// pending Call. It may be nil.
	OnMessage MessageHandler
	// ReplyTimeout bounds how long Call waits for a response on top of
	// whatever deadline the caller's context carries. Zero means
	// DefaultReplyTimeout.
	ReplyTimeout time.Duration
}

// NewSession constructs a Session reading frames from r and writing frames
// to w. Call Run in its own goroutine to start processing inbound bytes.
func NewSession(r io.Reader, w io.Writer, cfg Config) (*Session, error) {
	parser, err := transport.NewParser(cfg.ParserCapacity)
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}

	registry := cfg.Registry
	if registry == nil {
		registry = standard.NewRegistry()
	}

	log := cfg.Logger
	if log == nil {
		log = logger.GetLogger()
	}

	replyTimeout := cfg.ReplyTimeout
	if replyTimeout <= 0 {
		replyTimeout = DefaultReplyTimeout
	}

	return &Session{
		r:            bufio.NewReader(r),
		w:            w,
		parser:       parser,
		registry:     registry,
		log:          log,
		replyTimeout: replyTimeout,
		onMessage:    cfg.OnMessage,
		pending:      xsync.NewMapOf[uint16, chan pendingResult](),
		closeCh:      make(chan struct{}),
	}, nil
}

// Run reads from the underlying reader until ctx is cancelled, the reader
// returns an error, or Close is called. It feeds every byte to the parser
// and dispatches completed frames. Run returns the error that stopped it;
// context.Canceled and ErrClosed are not treated as failures by callers
// that expect a clean shutdown.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.closeCh:
			return ErrClosed
		default:
		}

		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}

		frame, extraneous := s.parser.Feed(b)
		if extraneous != nil {
			s.log.Debug("link: discarding extraneous bytes", "count", len(extraneous))
		}
		if frame != nil {
			s.handleFrame(frame.TypeCode, frame.Payload)
		}
	}
}

func (s *Session) handleFrame(typeCode byte, payload []byte) {
	msg, ok := s.registry.Dispatch(payload)
	if !ok {
		s.log.Debug("link: frame did not decode as a standard message", "typeCode", typeCode)
		if s.onMessage != nil {
			s.onMessage(typeCode, nil, payload)
		}
		return
	}

	if ch, loaded := s.pending.LoadAndDelete(uint16(msg.ID())); loaded {
		select {
		case ch <- pendingResult{msg: msg, payload: payload}:
		default:
		}
		return
	}

	if s.onMessage != nil {
		s.onMessage(typeCode, msg, payload)
	}
}

// Send frames payload under typeCode and writes it to the underlying
// writer. It is safe to call concurrently with other Send/Call calls;
// writes to the wire are serialized.
func (s *Session) Send(typeCode byte, payload []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	emitter, err := transport.NewStreamEmitter(typeCode, s.sink())
	if err != nil {
		return err
	}
	if err := emitter.WriteBytes(payload); err != nil {
		_ = emitter.Abort()
		return err
	}

	return emitter.Close()
}

func (s *Session) sink() transport.Sink {
	return func(b byte) error {
		_, err := s.w.Write([]byte{b})
		return err
	}
}

// Call sends payload under typeCode and waits for a response frame that
// decodes to a standard message of type expect. It fails with ErrTimeout
// if ctx expires or the Session's ReplyTimeout elapses first, whichever
// comes first, and with ErrClosed if the Session is closed while waiting.
// A frame that does not decode as a standard message is never matched to
// a pending Call: Run passes it to OnMessage and the Call keeps waiting.
func (s *Session) Call(ctx context.Context, typeCode byte, payload []byte, expect standard.MessageID) (standard.Message, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	ch := make(chan pendingResult, 1)
	s.pending.Store(uint16(expect), ch)
	defer s.pending.Delete(uint16(expect))

	if err := s.Send(typeCode, payload); err != nil {
		return nil, err
	}

	replyTimer := pool.GetTimer(s.replyTimeout)
	defer pool.PutTimer(replyTimer)

	select {
	case <-ctx.Done():
		return nil, ErrTimeout
	case <-replyTimer.C:
		return nil, ErrTimeout
	case <-s.closeCh:
		return nil, ErrClosed
	case result := <-ch:
		if result.msg == nil {
			return nil, ErrUndecodable
		}
		return result.msg, nil
	}
}

// Close stops the session: Run returns ErrClosed, and any Call blocked
// waiting for a response is woken with ErrClosed. Close is idempotent.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(s.closeCh)
	return nil
}
