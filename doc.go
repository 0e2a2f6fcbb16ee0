// Package dit is a thin Go facade over the IPFS HTTP API.
//
// It wraps the daemon's /api/v0 RPC surface behind a small client handle:
// pubsub publish/subscribe/unsubscribe, IPNS name resolution, DAG node
// fetch, and streaming content reads. All protocol work (peer discovery,
// pubsub transport, DAG traversal, content routing) is the daemon's job;
// this package only adapts result shapes.
//
// Basic usage:
//
//	client, _ := dit.Connect("http://localhost:5001/api/v0")
//	defer client.Close()
//
//	// Read content-addressed bytes
//	data, _ := client.Cat(ctx, "/ipfs/QmFoo")
//
//	// Resolve an IPNS name to its current path
//	path, _ := client.Resolve(ctx, "/ipns/QmPeerID")
//
//	// Fetch the value of a DAG node field
//	value, _ := client.DAGGet(ctx, "QmFoo", "videos/0")
//
//	// Pubsub
//	client.Subscribe(ctx, "chat", func(msg dit.Message) {
//		fmt.Printf("%s: %s\n", msg.From, msg.Data)
//	})
//	client.Publish(ctx, "chat", []byte("hello"))
//	client.Unsubscribe("chat")
//
// With a local content cache (immutable /ipfs/ paths only):
//
//	client, _ := dit.Connect(addr, dit.WithCache(dir))
package dit
