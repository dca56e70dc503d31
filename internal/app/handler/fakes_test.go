package handler

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"book-office/internal/app/ds"
	"book-office/internal/app/redis"
	"book-office/internal/app/repository"
)

// fakeRepo - хранилище в памяти с теми же правилами, что и у postgres-репозитория
type fakeRepo struct {
	mu       sync.Mutex
	nextID   uint
	users    map[uint]*ds.User
	services map[uint]*ds.BookProductionService
	projects map[uint]*ds.BookPublishingProject
	selected map[uint]*ds.SelectedService
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[uint]*ds.User{},
		services: map[uint]*ds.BookProductionService{},
		projects: map[uint]*ds.BookPublishingProject{},
		selected: map[uint]*ds.SelectedService{},
	}
}

func (r *fakeRepo) id() uint {
	r.nextID++
	return r.nextID
}

// ids возвращает все выданные ID по возрастанию
func (r *fakeRepo) ids() []uint {
	out := make([]uint, 0, r.nextID)
	for i := uint(1); i <= r.nextID; i++ {
		out = append(out, i)
	}
	return out
}

func (r *fakeRepo) ListServices(_ context.Context, prefix string) ([]ds.BookProductionService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []ds.BookProductionService
	for _, id := range r.ids() {
		s, ok := r.services[id]
		if !ok || !s.IsActive {
			continue
		}
		if strings.HasPrefix(strings.ToLower(s.Title), strings.ToLower(prefix)) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*ds.BookProductionService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok || !s.IsActive {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) CreateService(_ context.Context, service *ds.BookProductionService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.services {
		if s.Title == service.Title {
			return repository.ErrDuplicate
		}
	}
	service.ID = r.id()
	service.IsActive = true
	cp := *service
	r.services[service.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateService(_ context.Context, id uint, upd repository.ServiceUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok || !s.IsActive {
		return repository.ErrNotFound
	}
	if upd.Title != nil {
		for _, other := range r.services {
			if other.ID != id && other.Title == *upd.Title {
				return repository.ErrDuplicate
			}
		}
		s.Title = *upd.Title
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Price != nil {
		s.Price = *upd.Price
	}
	return nil
}

func (r *fakeRepo) DeactivateService(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok || !s.IsActive {
		return repository.ErrNotFound
	}
	s.IsActive = false
	s.ImageURL = ""
	return nil
}

func (r *fakeRepo) SetServiceImage(_ context.Context, id uint, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok || !s.IsActive {
		return repository.ErrNotFound
	}
	s.ImageURL = imageURL
	return nil
}

func (r *fakeRepo) withRelations(p *ds.BookPublishingProject) *ds.BookPublishingProject {
	cp := *p
	if u, ok := r.users[cp.CustomerID]; ok {
		cp.Customer = *u
	}
	if cp.ManagerID != nil {
		if u, ok := r.users[*cp.ManagerID]; ok {
			m := *u
			cp.Manager = &m
		}
	}
	return &cp
}

func (r *fakeRepo) findDraftLocked(customerID uint) *ds.BookPublishingProject {
	for _, id := range r.ids() {
		p, ok := r.projects[id]
		if ok && p.CustomerID == customerID && p.Status == ds.StatusDraft {
			return p
		}
	}
	return nil
}

func (r *fakeRepo) FindDraft(_ context.Context, customerID uint) (*ds.BookPublishingProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p := r.findDraftLocked(customerID); p != nil {
		return r.withRelations(p), nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRepo) GetOrCreateDraft(_ context.Context, customerID uint) (*ds.BookPublishingProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findDraftLocked(customerID)
	if p == nil {
		p = &ds.BookPublishingProject{
			ID:               r.id(),
			Status:           ds.StatusDraft,
			CreationDatetime: time.Now(),
			Format:           ds.FormatA4,
			CustomerID:       customerID,
		}
		r.projects[p.ID] = p
	}
	return r.withRelations(p), nil
}

func (r *fakeRepo) ListProjects(_ context.Context, f repository.ProjectFilter) ([]ds.BookPublishingProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []ds.BookPublishingProject
	for _, id := range r.ids() {
		p, ok := r.projects[id]
		if !ok || p.Status == ds.StatusDeleted {
			continue
		}
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		if f.CustomerID != nil && p.CustomerID != *f.CustomerID {
			continue
		}
		if f.FormationStart != nil && (p.FormationDatetime == nil || p.FormationDatetime.Before(*f.FormationStart)) {
			continue
		}
		if f.FormationEnd != nil && (p.FormationDatetime == nil || p.FormationDatetime.After(*f.FormationEnd)) {
			continue
		}
		out = append(out, *r.withRelations(p))
	}
	return out, nil
}

func (r *fakeRepo) GetProject(_ context.Context, id uint) (*ds.BookPublishingProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok || p.Status == ds.StatusDeleted {
		return nil, repository.ErrNotFound
	}
	return r.withRelations(p), nil
}

func (r *fakeRepo) UpdateDraftProject(_ context.Context, id uint, upd repository.ProjectUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok || p.Status != ds.StatusDraft {
		return repository.ErrNotFound
	}
	if upd.Format != nil {
		p.Format = *upd.Format
	}
	if upd.Circulation != nil {
		circulation := *upd.Circulation
		p.Circulation = &circulation
	}
	return nil
}

func (r *fakeRepo) SaveProjectTransition(_ context.Context, project *ds.BookPublishingProject, from ds.ProjectStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[project.ID]
	if !ok || p.Status != from {
		return repository.ErrNotFound
	}
	p.Status = project.Status
	p.FormationDatetime = project.FormationDatetime
	p.CompletionDatetime = project.CompletionDatetime
	p.ManagerID = project.ManagerID
	p.PersonalDiscount = project.PersonalDiscount
	return nil
}

func (r *fakeRepo) AddSelectedService(_ context.Context, projectID, serviceID uint) (*ds.SelectedService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.selected {
		if s.ProjectID == projectID && s.ServiceID == serviceID {
			return nil, repository.ErrDuplicate
		}
	}
	s := &ds.SelectedService{ID: r.id(), ProjectID: projectID, ServiceID: serviceID, Rate: ds.RateBase}
	r.selected[s.ID] = s
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) ListSelectedServices(_ context.Context, projectID uint) ([]ds.SelectedService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []ds.SelectedService
	for _, id := range r.ids() {
		s, ok := r.selected[id]
		if !ok || s.ProjectID != projectID {
			continue
		}
		cp := *s
		if svc, ok := r.services[s.ServiceID]; ok {
			cp.Service = *svc
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeRepo) CountSelectedServices(_ context.Context, projectID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, s := range r.selected {
		if s.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) findSelectedLocked(projectID, serviceID uint) *ds.SelectedService {
	for _, s := range r.selected {
		if s.ProjectID == projectID && s.ServiceID == serviceID {
			return s
		}
	}
	return nil
}

func (r *fakeRepo) UpdateSelectedServiceRate(_ context.Context, projectID, serviceID uint, rate ds.Rate) (*ds.SelectedService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.findSelectedLocked(projectID, serviceID)
	if s == nil {
		return nil, repository.ErrNotFound
	}
	s.Rate = rate
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) DeleteSelectedService(_ context.Context, projectID, serviceID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.findSelectedLocked(projectID, serviceID)
	if s == nil {
		return repository.ErrNotFound
	}
	delete(r.selected, s.ID)
	return nil
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*ds.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) GetUserByUsername(_ context.Context, username string) (*ds.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRepo) CreateUser(_ context.Context, user *ds.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.id()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateUser(_ context.Context, id uint, upd repository.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.Password = *upd.PasswordHash
	}
	return nil
}

type fakeSessions struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: map[string]string{}}
}

func (s *fakeSessions) SaveSession(_ context.Context, token, username string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = username
	return nil
}

func (s *fakeSessions) SessionUsername(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.data[token]
	if !ok {
		return "", redis.ErrSessionNotFound
	}
	return username, nil
}

func (s *fakeSessions) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[token]; !ok {
		return redis.ErrSessionNotFound
	}
	delete(s.data, token)
	return nil
}

type fakeBlob struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
	deleteErr error
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{objects: map[string][]byte{}}
}

func (b *fakeBlob) UploadFile(_ context.Context, key string, reader io.Reader, _ int64) (string, error) {
	if b.uploadErr != nil {
		return "", b.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = data
	return "http://minio.local:9000/images/" + key, nil
}

func (b *fakeBlob) DeleteFile(_ context.Context, key string) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}
