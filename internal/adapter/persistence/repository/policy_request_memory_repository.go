package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/usecase/interfaces"
)

type memoryRecord struct {
	root    *entities.PolicyRequest
	history []entities.StatusHistory
	seen    map[string]struct{}
}

// PolicyRequestMemoryRepository keeps aggregates in process memory. It follows
// the same version and history rules as the DynamoDB repository and backs
// STORAGE_DRIVER=memory and the tests.
type PolicyRequestMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*memoryRecord
}

var _ interfaces.IPolicyRequestRepository = (*PolicyRequestMemoryRepository)(nil)

func NewPolicyRequestMemoryRepository() *PolicyRequestMemoryRepository {
	return &PolicyRequestMemoryRepository{records: make(map[string]*memoryRecord)}
}

func (r *PolicyRequestMemoryRepository) Save(ctx context.Context, p *entities.PolicyRequest) (*entities.PolicyRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[p.ID]
	switch {
	case !exists && p.Version != 0, exists && rec.root.Version != p.Version:
		return nil, fmt.Errorf("%w: id=%s version=%d", interfaces.ErrConcurrentModification, p.ID, p.Version)
	case !exists:
		rec = &memoryRecord{seen: make(map[string]struct{})}
		r.records[p.ID] = rec
	}

	for _, h := range p.History {
		if _, ok := rec.seen[h.ID]; ok {
			continue
		}
		rec.seen[h.ID] = struct{}{}
		rec.history = append(rec.history, h)
	}
	sortHistory(rec.history)

	p.Version++
	root := clonePolicyRequest(p)
	root.History = nil
	rec.root = root
	return p, nil
}

func (r *PolicyRequestMemoryRepository) FindByID(ctx context.Context, id string) (*entities.PolicyRequest, error) {
	return r.find(ctx, id, false)
}

func (r *PolicyRequestMemoryRepository) FindByIDWithHistory(ctx context.Context, id string) (*entities.PolicyRequest, error) {
	return r.find(ctx, id, true)
}

func (r *PolicyRequestMemoryRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error) {
	return r.findByCustomer(ctx, customerID, false)
}

func (r *PolicyRequestMemoryRepository) FindByCustomerIDWithHistory(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error) {
	return r.findByCustomer(ctx, customerID, true)
}

func (r *PolicyRequestMemoryRepository) find(ctx context.Context, id string, withHistory bool) (*entities.PolicyRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return rec.snapshot(withHistory), nil
}

func (r *PolicyRequestMemoryRepository) findByCustomer(ctx context.Context, customerID string, withHistory bool) ([]*entities.PolicyRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*entities.PolicyRequest{}
	for _, rec := range r.records {
		if rec.root.CustomerID == customerID {
			out = append(out, rec.snapshot(withHistory))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (rec *memoryRecord) snapshot(withHistory bool) *entities.PolicyRequest {
	p := clonePolicyRequest(rec.root)
	p.History = []entities.StatusHistory{}
	if withHistory {
		p.History = append(p.History, rec.history...)
	}
	return p
}
