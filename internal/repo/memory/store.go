// Package memory holds mutex-guarded in-memory repositories used when no
// database is configured (demo mode) and by tests. Semantics mirror
// repo/persistent, including the atomic submission cap check.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.Mutex
	briefs      map[string]*entity.Brief
	submissions map[string]*entity.Submission
	feedback    map[string]*entity.Feedback
	influencers map[string]*entity.Influencer
	invites     map[string]*entity.InfluencerInvite
	users       map[string]*entity.User
}

func NewStore() *Store {
	return &Store{
		briefs:      make(map[string]*entity.Brief),
		submissions: make(map[string]*entity.Submission),
		feedback:    make(map[string]*entity.Feedback),
		influencers: make(map[string]*entity.Influencer),
		invites:     make(map[string]*entity.InfluencerInvite),
		users:       make(map[string]*entity.User),
	}
}

// NewRepositories exposes the store behind the same ports as the GORM
// implementation so the app wiring is identical in both modes.
func NewRepositories(s *Store) *repo.Repositories {
	return &repo.Repositories{
		Briefs:      &briefRepository{s},
		Submissions: &submissionRepository{s},
		Feedback:    &feedbackRepository{s},
		Influencers: &influencerRepository{s},
		Invites:     &inviteRepository{s},
		Users:       &userRepository{s},
	}
}

// --- briefs ---

type briefRepository struct{ store *Store }

func (r *briefRepository) Create(brief *entity.Brief) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if brief.ID == "" {
		brief.ID = uuid.New().String()
	}
	now := time.Now()
	brief.CreatedAt = now
	brief.UpdatedAt = now

	cp := *brief
	r.store.briefs[brief.ID] = &cp
	return nil
}

func (r *briefRepository) GetByID(id string) (*entity.Brief, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	brief, ok := r.store.briefs[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *brief
	return &cp, nil
}

func (r *briefRepository) GetBySlug(slug string) (*entity.Brief, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, brief := range r.store.briefs {
		if brief.Slug == slug {
			cp := *brief
			return &cp, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *briefRepository) List(status entity.BriefStatus, limit, offset int) ([]*entity.Brief, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var briefs []*entity.Brief
	for _, brief := range r.store.briefs {
		if brief.Status == status {
			cp := *brief
			briefs = append(briefs, &cp)
		}
	}
	sortBriefs(briefs)
	return page(briefs, limit, offset), nil
}

func (r *briefRepository) ListAll(limit, offset int) ([]*entity.Brief, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var briefs []*entity.Brief
	for _, brief := range r.store.briefs {
		cp := *brief
		briefs = append(briefs, &cp)
	}
	sortBriefs(briefs)
	return page(briefs, limit, offset), nil
}

func (r *briefRepository) Update(brief *entity.Brief) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.briefs[brief.ID]; !ok {
		return entity.ErrNotFound
	}
	brief.UpdatedAt = time.Now()
	cp := *brief
	r.store.briefs[brief.ID] = &cp
	return nil
}

func (r *briefRepository) ExistsBySlug(slug string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, brief := range r.store.briefs {
		if brief.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// --- submissions ---

type submissionRepository struct{ store *Store }

func (r *submissionRepository) CreateWithCap(sub *entity.Submission, maxPerCreator int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.briefs[sub.BriefID]; !ok {
		return entity.ErrNotFound
	}

	if maxPerCreator > 0 {
		count := 0
		for _, existing := range r.store.submissions {
			if existing.BriefID == sub.BriefID &&
				strings.EqualFold(existing.CreatorEmail, sub.CreatorEmail) {
				count++
			}
		}
		if count >= maxPerCreator {
			return entity.ErrSubmissionLimitReached
		}
	}

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	cp := *sub
	r.store.submissions[sub.ID] = &cp
	return nil
}

func (r *submissionRepository) GetByID(id string) (*entity.Submission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sub, ok := r.store.submissions[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (r *submissionRepository) ListByBrief(briefID string, limit, offset int) ([]*entity.Submission, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var subs []*entity.Submission
	for _, sub := range r.store.submissions {
		if sub.BriefID == briefID {
			cp := *sub
			subs = append(subs, &cp)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return page(subs, limit, offset), nil
}

func (r *submissionRepository) CountByBriefAndEmail(briefID, email string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, sub := range r.store.submissions {
		if sub.BriefID == briefID && strings.EqualFold(sub.CreatorEmail, email) {
			count++
		}
	}
	return count, nil
}

func (r *submissionRepository) Update(sub *entity.Submission) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.submissions[sub.ID]; !ok {
		return entity.ErrNotFound
	}
	sub.UpdatedAt = time.Now()
	cp := *sub
	r.store.submissions[sub.ID] = &cp
	return nil
}

// --- feedback ---

type feedbackRepository struct{ store *Store }

func (r *feedbackRepository) Create(fb *entity.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	now := time.Now()
	fb.CreatedAt = now
	fb.UpdatedAt = now

	cp := *fb
	r.store.feedback[fb.ID] = &cp
	return nil
}

func (r *feedbackRepository) GetByID(id string) (*entity.Feedback, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	fb, ok := r.store.feedback[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *fb
	return &cp, nil
}

func (r *feedbackRepository) ListBySubmission(submissionID string) ([]*entity.Feedback, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []*entity.Feedback
	for _, fb := range r.store.feedback {
		if fb.SubmissionID == submissionID {
			cp := *fb
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *feedbackRepository) Update(fb *entity.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.feedback[fb.ID]; !ok {
		return entity.ErrNotFound
	}
	fb.UpdatedAt = time.Now()
	cp := *fb
	r.store.feedback[fb.ID] = &cp
	return nil
}

func (r *feedbackRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.feedback[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.store.feedback, id)
	return nil
}

// --- influencers ---

type influencerRepository struct{ store *Store }

func (r *influencerRepository) Create(inf *entity.Influencer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if inf.ID == "" {
		inf.ID = uuid.New().String()
	}
	now := time.Now()
	inf.CreatedAt = now
	inf.UpdatedAt = now

	cp := *inf
	r.store.influencers[inf.ID] = &cp
	return nil
}

func (r *influencerRepository) GetByID(id string) (*entity.Influencer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	inf, ok := r.store.influencers[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *inf
	return &cp, nil
}

func (r *influencerRepository) GetByEmail(email string) (*entity.Influencer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, inf := range r.store.influencers {
		if strings.EqualFold(inf.Email, email) {
			cp := *inf
			return &cp, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *influencerRepository) List(status entity.InfluencerStatus, limit, offset int) ([]*entity.Influencer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []*entity.Influencer
	for _, inf := range r.store.influencers {
		if status == "" || inf.Status == status {
			cp := *inf
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return page(items, limit, offset), nil
}

func (r *influencerRepository) Update(inf *entity.Influencer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.influencers[inf.ID]; !ok {
		return entity.ErrNotFound
	}
	inf.UpdatedAt = time.Now()
	cp := *inf
	r.store.influencers[inf.ID] = &cp
	return nil
}

// --- invites ---

type inviteRepository struct{ store *Store }

func (r *inviteRepository) Create(invite *entity.InfluencerInvite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if invite.ID == "" {
		invite.ID = uuid.New().String()
	}
	now := time.Now()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	cp := *invite
	r.store.invites[invite.ID] = &cp
	return nil
}

func (r *inviteRepository) GetByCode(code string) (*entity.InfluencerInvite, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, invite := range r.store.invites {
		if invite.InviteCode == code {
			cp := *invite
			return &cp, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *inviteRepository) ExistsByCode(code string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, invite := range r.store.invites {
		if invite.InviteCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *inviteRepository) List(limit, offset int) ([]*entity.InfluencerInvite, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []*entity.InfluencerInvite
	for _, invite := range r.store.invites {
		cp := *invite
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return page(items, limit, offset), nil
}

func (r *inviteRepository) Update(invite *entity.InfluencerInvite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.invites[invite.ID]; !ok {
		return entity.ErrNotFound
	}
	invite.UpdatedAt = time.Now()
	cp := *invite
	r.store.invites[invite.ID] = &cp
	return nil
}

// --- users ---

type userRepository struct{ store *Store }

func (r *userRepository) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	cp := *user
	r.store.users[user.ID] = &cp
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *userRepository) Update(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return entity.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	r.store.users[user.ID] = &cp
	return nil
}

// --- helpers ---

func sortBriefs(briefs []*entity.Brief) {
	sort.Slice(briefs, func(i, j int) bool {
		return briefs[i].CreatedAt.After(briefs[j].CreatedAt)
	})
}

func page[T any](items []*T, limit, offset int) []*T {
	if limit <= 0 {
		return items
	}
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
