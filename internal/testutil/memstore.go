// Package testutil implementa repositorios en memoria para los tests de los
// casos de uso. Un Store comparte estado entre todos los repos y el TxRunner
// simula la atomicidad de Postgres con snapshot y restore.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/stock-service/internal/domain/entity"
	"github.com/tu-usuario/stock-service/internal/domain/repository"
)

var (
	_ repository.SocietyRepository         = (*SocietyRepo)(nil)
	_ repository.UserRepository            = (*UserRepo)(nil)
	_ repository.StockObjectRepository     = (*StockObjectRepo)(nil)
	_ repository.StockObjectKindRepository = (*StockObjectKindRepo)(nil)
	_ repository.DrawerRepository          = (*DrawerRepo)(nil)
	_ repository.PlacementRepository       = (*PlacementRepo)(nil)
	_ repository.MovementRepository        = (*MovementRepo)(nil)
	_ repository.UsageRepository           = (*UsageRepo)(nil)
	_ repository.ObjectUserRepository      = (*ObjectUserRepo)(nil)
	_ repository.RefillRepository          = (*RefillRepo)(nil)
)

// Store estado compartido en memoria.
type Store struct {
	// txMu serializa las transacciones, como el bloqueo de fila en Postgres.
	txMu sync.Mutex
	mu   sync.RWMutex

	societies   map[string]*entity.Society
	users       map[string]*entity.User
	objects     map[string]*entity.StockObject
	kinds       map[string]*entity.StockObjectKind
	drawers     map[string]*entity.Drawer
	placements  map[string]*entity.StockObjectDrawerPlacement // key: stockObjectID|drawerID
	movements   []*entity.StockMovement
	usages      []*entity.StockUsage
	refills     map[string]*entity.RefillSchedule
	objectUsers map[string]*entity.ObjectUser
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		societies:   map[string]*entity.Society{},
		users:       map[string]*entity.User{},
		objects:     map[string]*entity.StockObject{},
		kinds:       map[string]*entity.StockObjectKind{},
		drawers:     map[string]*entity.Drawer{},
		placements:  map[string]*entity.StockObjectDrawerPlacement{},
		refills:     map[string]*entity.RefillSchedule{},
		objectUsers: map[string]*entity.ObjectUser{},
	}
}

func placementKey(stockObjectID, drawerID string) string {
	return stockObjectID + "|" + drawerID
}

// Seed helpers: insertan estado inicial sin pasar por los repos.

func (s *Store) SeedSociety(soc *entity.Society) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *soc
	s.societies[soc.ID] = &cp
}

func (s *Store) SeedObject(obj *entity.StockObject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *obj
	s.objects[obj.ID] = &cp
}

func (s *Store) SeedKind(k *entity.StockObjectKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *k
	s.kinds[k.ID] = &cp
}

func (s *Store) SeedDrawer(d *entity.Drawer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *d
	s.drawers[d.ID] = &cp
}

func (s *Store) SeedObjectUser(ou *entity.ObjectUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *ou
	s.objectUsers[ou.ID] = &cp
}

func (s *Store) SeedUsage(u *entity.StockUsage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.usages = append(s.usages, &cp)
}

func (s *Store) SeedRefill(r *entity.RefillSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.refills[r.ID] = &cp
}

// Lecturas directas para asserts.

func (s *Store) ObjectQuantity(id string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if obj, ok := s.objects[id]; ok {
		return obj.Quantity
	}
	return -1
}

func (s *Store) PlacementQuantity(stockObjectID, drawerID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.placements[placementKey(stockObjectID, drawerID)]; ok {
		return p.Quantity
	}
	return 0
}

func (s *Store) MovementCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movements)
}

func (s *Store) UsageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.usages)
}

// snapshot copia el estado mutable por las transacciones.
type snapshot struct {
	objects    map[string]*entity.StockObject
	placements map[string]*entity.StockObjectDrawerPlacement
	movements  []*entity.StockMovement
	usages     []*entity.StockUsage
	refills    map[string]*entity.RefillSchedule
	societies  map[string]*entity.Society
	users      map[string]*entity.User
}

func (s *Store) take() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		objects:    map[string]*entity.StockObject{},
		placements: map[string]*entity.StockObjectDrawerPlacement{},
		movements:  append([]*entity.StockMovement{}, s.movements...),
		usages:     append([]*entity.StockUsage{}, s.usages...),
		refills:    map[string]*entity.RefillSchedule{},
		societies:  map[string]*entity.Society{},
		users:      map[string]*entity.User{},
	}
	for k, v := range s.objects {
		cp := *v
		snap.objects[k] = &cp
	}
	for k, v := range s.placements {
		cp := *v
		snap.placements[k] = &cp
	}
	for k, v := range s.refills {
		cp := *v
		snap.refills[k] = &cp
	}
	for k, v := range s.societies {
		cp := *v
		snap.societies[k] = &cp
	}
	for k, v := range s.users {
		cp := *v
		snap.users[k] = &cp
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = snap.objects
	s.placements = snap.placements
	s.movements = snap.movements
	s.usages = snap.usages
	s.refills = snap.refills
	s.societies = snap.societies
	s.users = snap.users
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// TxRunner simula las transacciones: serializa con mutex y restaura el estado
// previo si la función retorna error (rollback).
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) inTx(fn func() error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	snap := r.s.take()
	if err := fn(); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
) error) error {
	return r.inTx(func() error {
		return fn(NewStockObjectRepo(r.s), NewMovementRepo(r.s), NewPlacementRepo(r.s))
	})
}

func (r *TxRunner) RunUsage(ctx context.Context, fn func(
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
	usageRepo repository.UsageRepository,
) error) error {
	return r.inTx(func() error {
		return fn(NewStockObjectRepo(r.s), NewMovementRepo(r.s), NewPlacementRepo(r.s), NewUsageRepo(r.s))
	})
}

func (r *TxRunner) RunRefill(ctx context.Context, fn func(
	stockRepo repository.StockObjectRepository,
	movRepo repository.MovementRepository,
	placementRepo repository.PlacementRepository,
	refillRepo repository.RefillRepository,
) error) error {
	return r.inTx(func() error {
		return fn(NewStockObjectRepo(r.s), NewMovementRepo(r.s), NewPlacementRepo(r.s), NewRefillRepo(r.s))
	})
}

func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	societyRepo repository.SocietyRepository,
	userRepo repository.UserRepository,
) error) error {
	return r.inTx(func() error {
		return fn(NewSocietyRepo(r.s), NewUserRepo(r.s))
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type SocietyRepo struct{ s *Store }

func NewSocietyRepo(s *Store) *SocietyRepo { return &SocietyRepo{s: s} }

func (r *SocietyRepo) Create(ctx context.Context, society *entity.Society) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *society
	r.s.societies[society.ID] = &cp
	return nil
}

func (r *SocietyRepo) GetByID(ctx context.Context, id string) (*entity.Society, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if soc, ok := r.s.societies[id]; ok {
		cp := *soc
		return &cp, nil
	}
	return nil, nil
}

func (r *SocietyRepo) GetByName(ctx context.Context, name string) (*entity.Society, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, soc := range r.s.societies {
		if soc.Name == name {
			cp := *soc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *SocietyRepo) GetBySlug(ctx context.Context, slug string) (*entity.Society, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, soc := range r.s.societies {
		if soc.Slug == slug {
			cp := *soc
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *SocietyRepo) Update(ctx context.Context, society *entity.Society) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *society
	r.s.societies[society.ID] = &cp
	return nil
}

func (r *SocietyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Society, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Society
	for _, soc := range r.s.societies {
		cp := *soc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

type UserRepo struct{ s *Store }

func NewUserRepo(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsernameAndSociety(ctx context.Context, username, societyID string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username && u.SocietyID == societyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *UserRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.SocietyID == societyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return page(out, limit, offset), nil
}

func (r *UserRepo) CountBySociety(ctx context.Context, societyID string) (total, admins int, err error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.SocietyID == societyID && u.IsActive {
			total++
			if u.IsSocietyAdmin {
				admins++
			}
		}
	}
	return total, admins, nil
}

type StockObjectRepo struct{ s *Store }

func NewStockObjectRepo(s *Store) *StockObjectRepo { return &StockObjectRepo{s: s} }

func (r *StockObjectRepo) Create(ctx context.Context, obj *entity.StockObject) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *obj
	r.s.objects[obj.ID] = &cp
	return nil
}

func (r *StockObjectRepo) GetByID(ctx context.Context, id string) (*entity.StockObject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if obj, ok := r.s.objects[id]; ok {
		cp := *obj
		return &cp, nil
	}
	return nil, nil
}

func (r *StockObjectRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockObject, error) {
	// El bloqueo de fila lo simula el mutex del TxRunner.
	return r.GetByID(ctx, id)
}

func (r *StockObjectRepo) Update(ctx context.Context, obj *entity.StockObject) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.objects[obj.ID]
	if !ok {
		return nil
	}
	cp := *obj
	cp.Quantity = existing.Quantity // Update nunca toca la cantidad
	r.s.objects[obj.ID] = &cp
	return nil
}

func (r *StockObjectRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if obj, ok := r.s.objects[id]; ok {
		obj.Quantity = quantity
	}
	return nil
}

func (r *StockObjectRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.objects, id)
	return nil
}

func (r *StockObjectRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockObject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockObject
	for _, obj := range r.s.objects {
		if obj.SocietyID == societyID {
			cp := *obj
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *StockObjectRepo) ListActiveBySociety(ctx context.Context, societyID string) ([]*entity.StockObject, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockObject
	for _, obj := range r.s.objects {
		if obj.SocietyID == societyID && obj.IsActive {
			cp := *obj
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *StockObjectRepo) CountBySociety(ctx context.Context, societyID string) (total, belowMinimum int, err error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, obj := range r.s.objects {
		if obj.SocietyID == societyID && obj.IsActive {
			total++
			if obj.BelowMinimum() {
				belowMinimum++
			}
		}
	}
	return total, belowMinimum, nil
}

type StockObjectKindRepo struct{ s *Store }

func NewStockObjectKindRepo(s *Store) *StockObjectKindRepo { return &StockObjectKindRepo{s: s} }

func (r *StockObjectKindRepo) Create(ctx context.Context, kind *entity.StockObjectKind) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *kind
	r.s.kinds[kind.ID] = &cp
	return nil
}

func (r *StockObjectKindRepo) GetByID(ctx context.Context, id string) (*entity.StockObjectKind, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if k, ok := r.s.kinds[id]; ok {
		cp := *k
		return &cp, nil
	}
	return nil, nil
}

func (r *StockObjectKindRepo) Update(ctx context.Context, kind *entity.StockObjectKind) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *kind
	r.s.kinds[kind.ID] = &cp
	return nil
}

func (r *StockObjectKindRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.kinds, id)
	return nil
}

func (r *StockObjectKindRepo) ListBySociety(ctx context.Context, societyID string) ([]*entity.StockObjectKind, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockObjectKind
	for _, k := range r.s.kinds {
		if k.SocietyID == societyID {
			cp := *k
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type DrawerRepo struct{ s *Store }

func NewDrawerRepo(s *Store) *DrawerRepo { return &DrawerRepo{s: s} }

func (r *DrawerRepo) Create(ctx context.Context, drawer *entity.Drawer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *drawer
	r.s.drawers[drawer.ID] = &cp
	return nil
}

func (r *DrawerRepo) GetByID(ctx context.Context, id string) (*entity.Drawer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if d, ok := r.s.drawers[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *DrawerRepo) Update(ctx context.Context, drawer *entity.Drawer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *drawer
	r.s.drawers[drawer.ID] = &cp
	return nil
}

func (r *DrawerRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.drawers, id)
	return nil
}

func (r *DrawerRepo) ListBySociety(ctx context.Context, societyID string) ([]*entity.Drawer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Drawer
	for _, d := range r.s.drawers {
		if d.SocietyID == societyID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })
	return out, nil
}

type PlacementRepo struct{ s *Store }

func NewPlacementRepo(s *Store) *PlacementRepo { return &PlacementRepo{s: s} }

func (r *PlacementRepo) Get(ctx context.Context, stockObjectID, drawerID string) (*entity.StockObjectDrawerPlacement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.placements[placementKey(stockObjectID, drawerID)]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *PlacementRepo) Upsert(ctx context.Context, p *entity.StockObjectDrawerPlacement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.placements[placementKey(p.StockObjectID, p.DrawerID)] = &cp
	return nil
}

func (r *PlacementRepo) Delete(ctx context.Context, stockObjectID, drawerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.placements, placementKey(stockObjectID, drawerID))
	return nil
}

func (r *PlacementRepo) SumByStockObject(ctx context.Context, stockObjectID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var sum int64
	for _, p := range r.s.placements {
		if p.StockObjectID == stockObjectID {
			sum += p.Quantity
		}
	}
	return sum, nil
}

func (r *PlacementRepo) ListByStockObject(ctx context.Context, stockObjectID string) ([]*entity.StockObjectDrawerPlacement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockObjectDrawerPlacement
	for _, p := range r.s.placements {
		if p.StockObjectID == stockObjectID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DrawerID < out[j].DrawerID })
	return out, nil
}

func (r *PlacementRepo) ListByDrawer(ctx context.Context, drawerID string) ([]*entity.StockObjectDrawerPlacement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockObjectDrawerPlacement
	for _, p := range r.s.placements {
		if p.DrawerID == drawerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockObjectID < out[j].StockObjectID })
	return out, nil
}

func (r *PlacementRepo) ListInconsistencies(ctx context.Context, societyID string) ([]repository.PlacementInconsistency, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sums := map[string]int64{}
	for _, p := range r.s.placements {
		sums[p.StockObjectID] += p.Quantity
	}
	var out []repository.PlacementInconsistency
	for objID, placed := range sums {
		obj, ok := r.s.objects[objID]
		if !ok || obj.SocietyID != societyID {
			continue
		}
		if placed > obj.Quantity {
			out = append(out, repository.PlacementInconsistency{
				StockObjectID:   objID,
				StockObjectName: obj.Name,
				Quantity:        obj.Quantity,
				PlacedTotal:     placed,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockObjectName < out[j].StockObjectName })
	return out, nil
}

type MovementRepo struct{ s *Store }

func NewMovementRepo(s *Store) *MovementRepo { return &MovementRepo{s: s} }

func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].SocietyID == societyID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return page(out, limit, offset), nil
}

func (r *MovementRepo) ListByStockObject(ctx context.Context, stockObjectID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].StockObjectID == stockObjectID {
			cp := *r.s.movements[i]
			out = append(out, &cp)
		}
	}
	return page(out, limit, offset), nil
}

func (r *MovementRepo) ListRecent(ctx context.Context, societyID string, limit int) ([]*entity.StockMovement, error) {
	return r.ListBySociety(ctx, societyID, limit, 0)
}

type UsageRepo struct{ s *Store }

func NewUsageRepo(s *Store) *UsageRepo { return &UsageRepo{s: s} }

func (r *UsageRepo) Create(ctx context.Context, usage *entity.StockUsage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *usage
	r.s.usages = append(r.s.usages, &cp)
	return nil
}

func (r *UsageRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.StockUsage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockUsage
	for i := len(r.s.usages) - 1; i >= 0; i-- {
		if r.s.usages[i].SocietyID == societyID {
			cp := *r.s.usages[i]
			out = append(out, &cp)
		}
	}
	return page(out, limit, offset), nil
}

func (r *UsageRepo) ListByStockObject(ctx context.Context, stockObjectID string, limit, offset int) ([]*entity.StockUsage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockUsage
	for i := len(r.s.usages) - 1; i >= 0; i-- {
		if r.s.usages[i].StockObjectID == stockObjectID {
			cp := *r.s.usages[i]
			out = append(out, &cp)
		}
	}
	return page(out, limit, offset), nil
}

func (r *UsageRepo) TotalUsedSince(ctx context.Context, stockObjectID string, since time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total int64
	for _, u := range r.s.usages {
		if u.StockObjectID == stockObjectID && !u.StartDate.Before(since) {
			total += u.QuantityUsed
		}
	}
	return total, nil
}

type ObjectUserRepo struct{ s *Store }

func NewObjectUserRepo(s *Store) *ObjectUserRepo { return &ObjectUserRepo{s: s} }

func (r *ObjectUserRepo) Create(ctx context.Context, ou *entity.ObjectUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ou
	r.s.objectUsers[ou.ID] = &cp
	return nil
}

func (r *ObjectUserRepo) GetByID(ctx context.Context, id string) (*entity.ObjectUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if ou, ok := r.s.objectUsers[id]; ok {
		cp := *ou
		return &cp, nil
	}
	return nil, nil
}

func (r *ObjectUserRepo) Update(ctx context.Context, ou *entity.ObjectUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ou
	r.s.objectUsers[ou.ID] = &cp
	return nil
}

func (r *ObjectUserRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.objectUsers, id)
	return nil
}

func (r *ObjectUserRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.ObjectUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.ObjectUser
	for _, ou := range r.s.objectUsers {
		if ou.SocietyID == societyID {
			cp := *ou
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

type RefillRepo struct{ s *Store }

func NewRefillRepo(s *Store) *RefillRepo { return &RefillRepo{s: s} }

func (r *RefillRepo) Create(ctx context.Context, refill *entity.RefillSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *refill
	r.s.refills[refill.ID] = &cp
	return nil
}

func (r *RefillRepo) GetByID(ctx context.Context, id string) (*entity.RefillSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if rf, ok := r.s.refills[id]; ok {
		cp := *rf
		return &cp, nil
	}
	return nil, nil
}

func (r *RefillRepo) Update(ctx context.Context, refill *entity.RefillSchedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *refill
	r.s.refills[refill.ID] = &cp
	return nil
}

func (r *RefillRepo) ListBySociety(ctx context.Context, societyID string, limit, offset int) ([]*entity.RefillSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.RefillSchedule
	for _, rf := range r.s.refills {
		if rf.SocietyID == societyID {
			cp := *rf
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return page(out, limit, offset), nil
}

func (r *RefillRepo) ListByStockObject(ctx context.Context, stockObjectID string) ([]*entity.RefillSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.RefillSchedule
	for _, rf := range r.s.refills {
		if rf.StockObjectID == stockObjectID {
			cp := *rf
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return out, nil
}

func (r *RefillRepo) ListUpcoming(ctx context.Context, societyID string, from time.Time, limit int) ([]*entity.RefillSchedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.RefillSchedule
	for _, rf := range r.s.refills {
		if rf.SocietyID == societyID && rf.Status == entity.RefillPending && !rf.ScheduledDate.Before(from) {
			cp := *rf
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
