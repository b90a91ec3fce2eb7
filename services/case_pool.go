package services

import (
	"fmt"
	"sync"
	"time"

	"legal_case_api_go/models"
	"legal_case_api_go/structures"
)

// Pool assignment statuses. A case sits in exactly one of the urgent pool,
// the normal pool, one lawyer's pending-request queue, or "claimed" (absent
// from all queues) at any time.
const (
	PoolStatusAvailable     = "available"
	PoolStatusPendingDirect = "pending_direct"
	PoolStatusClaimed       = "claimed"
	PoolStatusRejected      = "rejected_then_available"
)

// poolAssignment tracks where a case currently sits in the pool workflow.
type poolAssignment struct {
	Status          string     `json:"status"`
	LawyerID        string     `json:"lawyer_id,omitempty"`
	RequestedLawyer string     `json:"requested_lawyer,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty"`
	ClaimedAt       *time.Time `json:"claimed_at,omitempty"`
}

// AvailableCasesPool manages the cases lawyers can claim: an urgent pool
// ordered by priority score, a normal FIFO pool, and per-lawyer queues of
// direct assignment requests. Per-lawyer claim counts are maintained
// incrementally and capped at MaxCasesPerLawyer; the cap is enforced at
// claim/accept time, never at enqueue time.
type AvailableCasesPool struct {
	mu          sync.Mutex
	urgentPool  *structures.PriorityQueue[models.Case]
	normalPool  *structures.Queue[models.Case]
	assignments *structures.HashTable[*poolAssignment]
	caseCounts  *structures.HashTable[int]
	pending     *structures.HashTable[*structures.Queue[models.Case]]
	now         func() time.Time
}

// NewAvailableCasesPool creates an empty pool.
func NewAvailableCasesPool() *AvailableCasesPool {
	return &AvailableCasesPool{
		urgentPool:  structures.NewPriorityQueue[models.Case](),
		normalPool:  structures.NewQueue[models.Case](),
		assignments: structures.NewHashTable[*poolAssignment](),
		caseCounts:  structures.NewHashTable[int](),
		pending:     structures.NewHashTable[*structures.Queue[models.Case]](),
		now:         time.Now,
	}
}

// AddToPool routes a new case: direct requests go to the requested lawyer's
// pending queue, everything else to the urgent or normal general pool.
func (p *AvailableCasesPool) AddToPool(c models.Case) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.AssignmentType == models.AssignmentDirect && c.RequestedLawyerID != nil {
		lawyerID := *c.RequestedLawyerID
		queue, ok := p.pending.Get(lawyerID)
		if !ok {
			queue = structures.NewQueue[models.Case]()
			p.pending.Put(lawyerID, queue)
		}
		if !queue.Enqueue(c) {
			return fmt.Errorf("pending requests for %s: %w", lawyerID, ErrCapacityExceeded)
		}
		p.assignments.Put(c.CaseID, &poolAssignment{
			Status:          PoolStatusPendingDirect,
			RequestedLawyer: lawyerID,
		})
		return nil
	}

	if !p.enqueueGeneral(c) {
		return fmt.Errorf("case pool: %w", ErrCapacityExceeded)
	}
	p.assignments.Put(c.CaseID, &poolAssignment{Status: PoolStatusAvailable})
	return nil
}

// enqueueGeneral routes by the case's own urgency flag. Urgent cases are
// keyed by their priority score so sooner hearings dispatch first.
func (p *AvailableCasesPool) enqueueGeneral(c models.Case) bool {
	if c.IsUrgent() {
		return p.urgentPool.Enqueue(c, c.PriorityScore)
	}
	return p.normalPool.Enqueue(c)
}

// AvailableCases lists the general pool, urgent cases first.
func (p *AvailableCasesPool) AvailableCases() []models.Case {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append(p.urgentPool.All(), p.normalPool.All()...)
}

// PendingRequests lists the direct assignment requests waiting on a lawyer.
func (p *AvailableCasesPool) PendingRequests(lawyerID string) []models.Case {
	p.mu.Lock()
	defer p.mu.Unlock()
	queue, ok := p.pending.Get(lawyerID)
	if !ok {
		return []models.Case{}
	}
	return queue.All()
}

// LawyerCaseCount returns the lawyer's current claimed-case count.
func (p *AvailableCasesPool) LawyerCaseCount(lawyerID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count, _ := p.caseCounts.Get(lawyerID)
	return count
}

func (p *AvailableCasesPool) checkCapacity(lawyerID string) error {
	count, _ := p.caseCounts.Get(lawyerID)
	if count >= MaxCasesPerLawyer {
		return fmt.Errorf("maximum case load reached (%d cases): %w", MaxCasesPerLawyer, ErrCapacityExceeded)
	}
	return nil
}

// ClaimCase removes the case from whichever general pool holds it and marks
// it claimed by the lawyer. Fails if the lawyer is at capacity or the case
// is not in an available-like state; on failure the case stays put.
func (p *AvailableCasesPool) ClaimCase(caseID, lawyerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkCapacity(lawyerID); err != nil {
		return err
	}

	assignment, ok := p.assignments.Get(caseID)
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	if assignment.Status != PoolStatusAvailable && assignment.Status != PoolStatusRejected {
		return fmt.Errorf("case %s in status %s: %w", caseID, assignment.Status, ErrNotAvailable)
	}

	if !p.removeFromGeneralPool(caseID) {
		return fmt.Errorf("case %s not in pool: %w", caseID, ErrNotFound)
	}

	claimedAt := p.now()
	p.assignments.Put(caseID, &poolAssignment{
		Status:    PoolStatusClaimed,
		LawyerID:  lawyerID,
		ClaimedAt: &claimedAt,
	})
	count, _ := p.caseCounts.Get(lawyerID)
	p.caseCounts.Put(lawyerID, count+1)

	return nil
}

// removeFromGeneralPool locates the case (urgent pool first) and rebuilds
// that pool without it, preserving the remaining order. O(pool size), which
// the small pool sizes keep cheap.
func (p *AvailableCasesPool) removeFromGeneralPool(caseID string) bool {
	urgent := p.urgentPool.All()
	for _, c := range urgent {
		if c.CaseID != caseID {
			continue
		}
		rebuilt := structures.NewPriorityQueue[models.Case]()
		for _, other := range urgent {
			if other.CaseID != caseID {
				rebuilt.Enqueue(other, other.PriorityScore)
			}
		}
		p.urgentPool = rebuilt
		return true
	}

	normal := p.normalPool.All()
	for _, c := range normal {
		if c.CaseID != caseID {
			continue
		}
		rebuilt := structures.NewQueue[models.Case]()
		for _, other := range normal {
			if other.CaseID != caseID {
				rebuilt.Enqueue(other)
			}
		}
		p.normalPool = rebuilt
		return true
	}

	return false
}

// UnclaimCase returns a claimed case to the general pool. The destination
// pool follows the case's own urgency flag, not the pool it was claimed
// from. The lawyer's count decrements with a floor of zero.
func (p *AvailableCasesPool) UnclaimCase(caseID string, caseData models.Case) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	assignment, ok := p.assignments.Get(caseID)
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	if assignment.Status != PoolStatusClaimed {
		return fmt.Errorf("case %s in status %s: %w", caseID, assignment.Status, ErrNotAvailable)
	}

	if assignment.LawyerID != "" {
		if count, ok := p.caseCounts.Get(assignment.LawyerID); ok && count > 0 {
			p.caseCounts.Put(assignment.LawyerID, count-1)
		}
	}

	if !p.enqueueGeneral(caseData) {
		return fmt.Errorf("case pool: %w", ErrCapacityExceeded)
	}
	p.assignments.Put(caseID, &poolAssignment{Status: PoolStatusAvailable})

	return nil
}

// AcceptDirectRequest moves a pending direct request to claimed, enforcing
// the same capacity cap as a pool claim.
func (p *AvailableCasesPool) AcceptDirectRequest(caseID, lawyerID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkCapacity(lawyerID); err != nil {
		return err
	}

	assignment, ok := p.assignments.Get(caseID)
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	if assignment.Status != PoolStatusPendingDirect {
		return fmt.Errorf("case %s: %w", caseID, ErrNotPending)
	}
	if assignment.RequestedLawyer != lawyerID {
		return fmt.Errorf("request for another lawyer: %w", ErrNotPending)
	}

	p.removeFromPending(caseID, lawyerID)

	claimedAt := p.now()
	p.assignments.Put(caseID, &poolAssignment{
		Status:    PoolStatusClaimed,
		LawyerID:  lawyerID,
		ClaimedAt: &claimedAt,
	})
	count, _ := p.caseCounts.Get(lawyerID)
	p.caseCounts.Put(lawyerID, count+1)

	return nil
}

// RejectDirectRequest drops the pending request and re-enqueues the case
// into the general pool, claimable like any available case.
func (p *AvailableCasesPool) RejectDirectRequest(caseID, lawyerID string, caseData models.Case) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	assignment, ok := p.assignments.Get(caseID)
	if !ok {
		return fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	if assignment.Status != PoolStatusPendingDirect {
		return fmt.Errorf("case %s: %w", caseID, ErrNotPending)
	}

	p.removeFromPending(caseID, lawyerID)

	if !p.enqueueGeneral(caseData) {
		return fmt.Errorf("case pool: %w", ErrCapacityExceeded)
	}
	p.assignments.Put(caseID, &poolAssignment{
		Status:     PoolStatusRejected,
		RejectedBy: lawyerID,
	})

	return nil
}

// removeFromPending rebuilds the lawyer's pending queue without the case.
func (p *AvailableCasesPool) removeFromPending(caseID, lawyerID string) {
	queue, ok := p.pending.Get(lawyerID)
	if !ok {
		return
	}
	rebuilt := structures.NewQueue[models.Case]()
	for _, c := range queue.All() {
		if c.CaseID != caseID {
			rebuilt.Enqueue(c)
		}
	}
	p.pending.Put(lawyerID, rebuilt)
}

// AssignmentStatus returns the pool status recorded for a case.
func (p *AvailableCasesPool) AssignmentStatus(caseID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	assignment, ok := p.assignments.Get(caseID)
	if !ok {
		return "", false
	}
	return assignment.Status, true
}
