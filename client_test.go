package dit_test

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SionoiS/dit"
)

// fakeBackend scripts the daemon capability surface for facade tests.
type fakeBackend struct {
	chunks    [][]byte
	chunksErr error

	paths         []string
	pathsErr      error
	pathsConsumed int

	node    *dit.DAGNode
	nodeErr error

	published map[string][][]byte

	msgs    []dit.Message
	msgsErr error
	subErr  error
}

func (f *fakeBackend) Cat(ctx context.Context, path string) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for _, chunk := range f.chunks {
			if !yield(chunk, nil) {
				return
			}
		}
		if f.chunksErr != nil {
			yield(nil, f.chunksErr)
		}
	}
}

func (f *fakeBackend) DAGGet(ctx context.Context, id, path string) (*dit.DAGNode, error) {
	if f.nodeErr != nil {
		return nil, f.nodeErr
	}
	return f.node, nil
}

func (f *fakeBackend) NameResolve(ctx context.Context, name string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if f.pathsErr != nil {
			yield("", f.pathsErr)
			return
		}
		for _, p := range f.paths {
			f.pathsConsumed++
			if !yield(p, nil) {
				return
			}
		}
	}
}

func (f *fakeBackend) Publish(ctx context.Context, topic string, data []byte) error {
	if f.published == nil {
		f.published = make(map[string][][]byte)
	}
	f.published[topic] = append(f.published[topic], data)
	return nil
}

func (f *fakeBackend) Subscribe(ctx context.Context, topic string) (iter.Seq2[dit.Message, error], error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	seq := func(yield func(dit.Message, error) bool) {
		for _, msg := range f.msgs {
			if !yield(msg, nil) {
				return
			}
		}
		if f.msgsErr != nil {
			yield(dit.Message{}, f.msgsErr)
			return
		}
		<-ctx.Done()
	}
	return seq, nil
}

func TestCatConcatenatesChunksInOrder(t *testing.T) {
	tests := []struct {
		name   string
		chunks [][]byte
		want   string
	}{
		{"no chunks", nil, ""},
		{"single chunk", [][]byte{[]byte("hello")}, "hello"},
		{"many chunks", [][]byte{[]byte("he"), []byte("ll"), []byte("o "), []byte("world")}, "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := dit.NewWithBackend(&fakeBackend{chunks: tt.chunks})
			defer client.Close()

			data, err := client.Cat(context.Background(), "/ipfs/QmTest")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestCatMidStreamErrorDiscardsPartial(t *testing.T) {
	streamErr := errors.New("connection reset")
	client := dit.NewWithBackend(&fakeBackend{
		chunks:    [][]byte{[]byte("partial"), []byte("data")},
		chunksErr: streamErr,
	})
	defer client.Close()

	data, err := client.Cat(context.Background(), "/ipfs/QmTest")
	require.ErrorIs(t, err, streamErr)
	assert.Nil(t, data)
}

func TestResolveReturnsFirstPathOnly(t *testing.T) {
	backend := &fakeBackend{paths: []string{"/ipfs/Qm123", "/ipfs/Qm456", "/ipfs/Qm789"}}
	client := dit.NewWithBackend(backend)
	defer client.Close()

	path, err := client.Resolve(context.Background(), "/ipns/QmPeer")
	require.NoError(t, err)
	assert.Equal(t, "/ipfs/Qm123", path)
	assert.Equal(t, 1, backend.pathsConsumed, "remainder of the stream must be abandoned")
}

func TestResolveEmptyStream(t *testing.T) {
	client := dit.NewWithBackend(&fakeBackend{})
	defer client.Close()

	_, err := client.Resolve(context.Background(), "/ipns/QmPeer")
	assert.ErrorIs(t, err, dit.ErrNotResolved)
}

func TestResolveStreamError(t *testing.T) {
	lookupErr := errors.New("routing: not found")
	client := dit.NewWithBackend(&fakeBackend{pathsErr: lookupErr})
	defer client.Close()

	_, err := client.Resolve(context.Background(), "/ipns/QmPeer")
	assert.ErrorIs(t, err, lookupErr)
}

func TestDAGGetReturnsValueOnly(t *testing.T) {
	client := dit.NewWithBackend(&fakeBackend{
		node: &dit.DAGNode{Value: json.RawMessage("42"), RemainderPath: "ignored/by/facade"},
	})
	defer client.Close()

	value, err := client.DAGGet(context.Background(), "QmTest", "some/path")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("42"), value)
}

func TestDAGGetPropagatesError(t *testing.T) {
	notFound := errors.New("merkledag: not found")
	client := dit.NewWithBackend(&fakeBackend{nodeErr: notFound})
	defer client.Close()

	_, err := client.DAGGet(context.Background(), "QmTest", "")
	assert.ErrorIs(t, err, notFound)
}

func TestPublishForwardsToBackend(t *testing.T) {
	backend := &fakeBackend{}
	client := dit.NewWithBackend(backend)
	defer client.Close()

	require.NoError(t, client.Publish(context.Background(), "chat", []byte("one")))
	require.NoError(t, client.Publish(context.Background(), "chat", []byte("one")))

	// Publishing is not idempotent: two calls, two sends.
	require.Len(t, backend.published["chat"], 2)
	assert.Equal(t, []byte("one"), backend.published["chat"][0])
}

func TestSubscribeDeliversMessagesInOrder(t *testing.T) {
	msgs := []dit.Message{
		{From: "QmPeerA", Data: []byte("first")},
		{From: "QmPeerB", Data: []byte("second")},
		{From: "QmPeerA", Data: []byte("third")},
	}
	client := dit.NewWithBackend(&fakeBackend{msgs: msgs, msgsErr: errors.New("stream closed")})

	var got []dit.Message
	err := client.Subscribe(context.Background(), "chat", func(msg dit.Message) {
		got = append(got, msg)
	})
	require.NoError(t, err)

	// The scripted stream ends after the messages; Close waits for the
	// reader to drain.
	require.NoError(t, client.Close())
	assert.Equal(t, msgs, got)
}

func TestSubscribeDuplicateTopic(t *testing.T) {
	client := dit.NewWithBackend(&fakeBackend{})
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Subscribe(ctx, "chat", func(dit.Message) {}))

	err := client.Subscribe(ctx, "chat", func(dit.Message) {})
	assert.ErrorIs(t, err, dit.ErrSubscribed)
}

func TestSubscribeRejected(t *testing.T) {
	subErr := errors.New("pubsub disabled")
	client := dit.NewWithBackend(&fakeBackend{subErr: subErr})
	defer client.Close()

	err := client.Subscribe(context.Background(), "chat", func(dit.Message) {})
	require.ErrorIs(t, err, subErr)

	// The failed attempt must not leave the topic registered.
	assert.ErrorIs(t, client.Unsubscribe("chat"), dit.ErrNotSubscribed)
}

func TestUnsubscribe(t *testing.T) {
	client := dit.NewWithBackend(&fakeBackend{})
	defer client.Close()

	require.NoError(t, client.Subscribe(context.Background(), "chat", func(dit.Message) {}))
	require.NoError(t, client.Unsubscribe("chat"))
	assert.ErrorIs(t, client.Unsubscribe("chat"), dit.ErrNotSubscribed)
}

func TestSubscribeAfterClose(t *testing.T) {
	client := dit.NewWithBackend(&fakeBackend{})
	require.NoError(t, client.Close())

	err := client.Subscribe(context.Background(), "chat", func(dit.Message) {})
	assert.ErrorIs(t, err, dit.ErrClosed)
}
