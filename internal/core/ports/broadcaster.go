package ports

import "github.com/luminosmc/community-api/internal/core/domain"

// Broadcaster fans an event out to every connected realtime client.
// Delivery is best effort: implementations never report per-client failures.
type Broadcaster interface {
	Broadcast(event domain.Event)
}
