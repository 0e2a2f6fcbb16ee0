package dit

import (
	"context"
	"encoding/json"
	"iter"
)

// Message is a single pubsub message as delivered by the daemon.
type Message struct {
	// From is the peer ID of the sender.
	From string
	// Data is the raw message payload.
	Data []byte
}

// MessageHandler receives inbound pubsub messages in arrival order.
type MessageHandler func(msg Message)

// DAGNode is a decoded DAG node as returned by the daemon, together with
// the structural metadata the facade discards.
type DAGNode struct {
	Value         json.RawMessage
	RemainderPath string
}

// Backend is the capability surface consumed from the content-addressing
// daemon. The HTTP implementation talks to a kubo-style /api/v0 endpoint;
// tests substitute fakes via NewWithBackend.
//
// Lazy results are pull-based iter.Seq2 streams: iteration ending means
// end-of-sequence, a non-nil error element is terminal.
type Backend interface {
	// Cat streams the ordered byte chunks of the content at path.
	// Chunk boundaries are arbitrary and carry no meaning.
	Cat(ctx context.Context, path string) iter.Seq2[[]byte, error]

	// DAGGet fetches the node at id restricted to path within it.
	DAGGet(ctx context.Context, id, path string) (*DAGNode, error)

	// NameResolve streams the resolved paths for a naming-system lookup.
	NameResolve(ctx context.Context, name string) iter.Seq2[string, error]

	// Publish sends data on topic. Returning nil means the daemon accepted
	// the request, not that any peer received it.
	Publish(ctx context.Context, topic string, data []byte) error

	// Subscribe registers a subscription on topic and returns the inbound
	// message stream. A non-nil error return means the daemon rejected the
	// subscription request.
	Subscribe(ctx context.Context, topic string) (iter.Seq2[Message, error], error)
}
