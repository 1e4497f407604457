package paginate

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Registry routes component interactions to the session bound to the clicked
// message. One Registry serves the whole bot; each session binds exactly one
// message id for the lifetime of its interactive window.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]chan *discordgo.InteractionCreate
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]chan *discordgo.InteractionCreate)}
}

func (r *Registry) bind(messageID string, ch chan *discordgo.InteractionCreate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[messageID] = ch
}

func (r *Registry) unbind(messageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, messageID)
}

// Dispatch hands a button interaction to the owning session. It reports false
// when no session is bound to the message, which happens for clicks that race
// session expiry. Events queue in arrival order; a click that would overflow
// the session's buffer is dropped, which is safe because page stepping is
// clamped and the user can simply click again.
func (r *Registry) Dispatch(ic *discordgo.InteractionCreate) bool {
	if ic.Message == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.sessions[ic.Message.ID]
	if !ok {
		return false
	}

	select {
	case ch <- ic:
	default:
	}

	return true
}
