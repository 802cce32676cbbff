package memory

import (
	"time"

	"content-variation-be/pkg/workflow"

	"github.com/patrickmn/go-cache"
)

// WorkflowRepository keeps wizard sessions in process memory only. Sessions
// are ephemeral; durability comes from saved projects, not from here.
type WorkflowRepository struct {
	cache *cache.Cache
}

func NewWorkflowRepository() *WorkflowRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &WorkflowRepository{
		cache: c,
	}
}

func (r *WorkflowRepository) Save(session *workflow.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *WorkflowRepository) Get(sessionID string) (*workflow.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*workflow.Session), true
	}
	return nil, false
}

func (r *WorkflowRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
