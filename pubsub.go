package dit

import (
	"context"
)

type subscription struct {
	cancel context.CancelFunc
}

// Subscribe registers a subscription on topic and invokes fn for every
// inbound message, in arrival order, until the topic is unsubscribed, the
// client is closed, ctx is canceled, or the stream fails. It returns once
// the daemon has accepted the subscription request; no message may have
// arrived yet.
//
// One subscription per topic: a second Subscribe on a live topic returns
// ErrSubscribed. Whatever delivery guarantees the daemon provides are the
// only guarantees present; there is no dedup and no redelivery.
func (c *Client) Subscribe(ctx context.Context, topic string, fn MessageHandler) error {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{cancel: cancel}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		cancel()
		return ErrClosed
	}
	if _, ok := c.subs[topic]; ok {
		c.mu.Unlock()
		cancel()
		return ErrSubscribed
	}
	// Reserve the topic before releasing the lock so concurrent Subscribe
	// calls on the same topic cannot both issue a request.
	c.subs[topic] = sub
	c.mu.Unlock()

	msgs, err := c.backend.Subscribe(subCtx, topic)
	if err != nil {
		c.release(topic, sub)
		return err
	}

	c.readers.Go(func() {
		defer c.release(topic, sub)
		for msg, err := range msgs {
			if err != nil {
				// Stream failure ends delivery; no retry.
				return
			}
			fn(msg)
		}
	})
	return nil
}

// Unsubscribe cancels a prior subscription on topic. Returns
// ErrNotSubscribed when no subscription is live on topic.
func (c *Client) Unsubscribe(topic string) error {
	c.mu.Lock()
	sub, ok := c.subs[topic]
	if ok {
		delete(c.subs, topic)
	}
	c.mu.Unlock()

	if !ok {
		return ErrNotSubscribed
	}
	sub.cancel()
	return nil
}

// Close cancels all live subscriptions and waits for their readers to
// drain. The underlying HTTP client is not owned by the Client and is left
// untouched.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for topic, sub := range c.subs {
		sub.cancel()
		delete(c.subs, topic)
	}
	c.mu.Unlock()

	c.readers.Wait()
	return nil
}

// release drops the topic registration, but only while it still belongs to
// this subscription; Unsubscribe may already have removed it and a newer
// subscription may have taken the slot.
func (c *Client) release(topic string, sub *subscription) {
	c.mu.Lock()
	if current, ok := c.subs[topic]; ok && current == sub {
		delete(c.subs, topic)
	}
	c.mu.Unlock()
	sub.cancel()
}
