package pubsub

import "context"

// Pack is a keyed message on a topic.
type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(context.Context, string, *Pack) error
}
