package dit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/url"

	"github.com/SionoiS/dit/internal/rpc"
)

// httpBackend maps the Backend surface onto the daemon's /api/v0 commands.
type httpBackend struct {
	rpc *rpc.Client
}

func (b *httpBackend) Cat(ctx context.Context, path string) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		resp, err := b.rpc.Post(ctx, "cat", url.Values{"arg": {path}})
		if err != nil {
			yield(nil, err)
			return
		}
		for chunk, err := range rpc.Chunks(resp.Body) {
			if !yield(chunk, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

func (b *httpBackend) DAGGet(ctx context.Context, id, path string) (*DAGNode, error) {
	arg := id
	if path != "" {
		arg = id + "/" + path
	}
	resp, err := b.rpc.Post(ctx, "dag/get", url.Values{
		"arg":          {arg},
		"output-codec": {"dag-json"},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	value, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dit: read dag node: %w", err)
	}
	// The HTTP API resolves the full path daemon-side, so nothing remains.
	return &DAGNode{Value: value, RemainderPath: ""}, nil
}

func (b *httpBackend) NameResolve(ctx context.Context, name string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		resp, err := b.rpc.Post(ctx, "name/resolve", url.Values{
			"arg":    {name},
			"stream": {"true"},
		})
		if err != nil {
			yield("", err)
			return
		}
		for line, err := range rpc.Lines(resp.Body) {
			if err != nil {
				yield("", err)
				return
			}
			var entry struct {
				Path string `json:"Path"`
			}
			if err := json.Unmarshal(line, &entry); err != nil {
				yield("", fmt.Errorf("dit: decode resolve entry: %w", err))
				return
			}
			if !yield(entry.Path, nil) {
				return
			}
		}
	}
}

func (b *httpBackend) Publish(ctx context.Context, topic string, data []byte) error {
	resp, err := b.rpc.PostFile(ctx, "pubsub/pub", url.Values{
		"arg": {rpc.EncodeMultibase([]byte(topic))},
	}, data)
	if err != nil {
		return err
	}
	rpc.Drain(resp.Body)
	return nil
}

func (b *httpBackend) Subscribe(ctx context.Context, topic string) (iter.Seq2[Message, error], error) {
	resp, err := b.rpc.Post(ctx, "pubsub/sub", url.Values{
		"arg": {rpc.EncodeMultibase([]byte(topic))},
	})
	if err != nil {
		return nil, err
	}

	seq := func(yield func(Message, error) bool) {
		for line, err := range rpc.Lines(resp.Body) {
			if err != nil {
				yield(Message{}, err)
				return
			}
			var entry struct {
				From string `json:"from"`
				Data string `json:"data"`
			}
			if err := json.Unmarshal(line, &entry); err != nil {
				yield(Message{}, fmt.Errorf("dit: decode pubsub message: %w", err))
				return
			}
			payload, err := rpc.DecodeMultibase(entry.Data)
			if err != nil {
				yield(Message{}, err)
				return
			}
			if !yield(Message{From: entry.From, Data: payload}, nil) {
				return
			}
		}
	}
	return seq, nil
}
