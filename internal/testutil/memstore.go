// Package testutil provee implementaciones en memoria de los repositorios para tests
// de casos de uso y handlers, con la misma semántica transaccional que PostgreSQL.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Store base de datos en memoria. Una transacción retiene el mutex completo y,
// si el callback falla, restaura el estado previo.
type Store struct {
	mu        sync.Mutex
	products  map[int64]entity.Product
	movements []entity.Movement
	users     map[int64]entity.User

	nextProductID  int64
	nextMovementID int64
	nextUserID     int64

	// FailMovementCreate, si no es nil, lo devuelve MovementRepo.Create (simula fallo de INSERT).
	FailMovementCreate error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[int64]entity.Product),
		users:    make(map[int64]entity.User),
	}
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Movements repositorio de movimientos fuera de transacción.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Users repositorio de usuarios fuera de transacción.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// TxRunner runner transaccional sobre el store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// AddUser registra un usuario activo y devuelve su ID.
func (s *Store) AddUser(username, first, last string) int64 {
	u := &entity.User{Username: username, FirstName: first, LastName: last, Active: true}
	_ = s.Users().Create(context.Background(), u)
	return u.ID
}

// MovementCount número de movimientos persistidos.
func (s *Store) MovementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// StockOf stock cacheado del producto (-1 si no existe).
func (s *Store) StockOf(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return -1
	}
	return p.CurrentStock
}

// MovementsOf movimientos del producto en orden de inserción.
func (s *Store) MovementsOf(productID int64) []entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Movement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

type snapshot struct {
	products       map[int64]entity.Product
	movements      []entity.Movement
	users          map[int64]entity.User
	nextProductID  int64
	nextMovementID int64
	nextUserID     int64
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		products:       make(map[int64]entity.Product, len(s.products)),
		movements:      append([]entity.Movement(nil), s.movements...),
		users:          make(map[int64]entity.User, len(s.users)),
		nextProductID:  s.nextProductID,
		nextMovementID: s.nextMovementID,
		nextUserID:     s.nextUserID,
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.movements = snap.movements
	s.users = snap.users
	s.nextProductID = snap.nextProductID
	s.nextMovementID = snap.nextMovementID
	s.nextUserID = snap.nextUserID
}

// locker abre la sección crítica salvo dentro de una transacción (el mutex ya está tomado).
type locker struct {
	s  *Store
	tx bool
}

func (l locker) lock() func() {
	if l.tx {
		return func() {}
	}
	l.s.mu.Lock()
	return l.s.mu.Unlock
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// TxRunner implementa inventory.TxRunner.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn con el store bloqueado; revierte todo si fn falla.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(
		&ProductRepo{s: r.s, lk: locker{s: r.s, tx: true}},
		&MovementRepo{s: r.s, lk: locker{s: r.s, tx: true}},
	)
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	s  *Store
	lk locker
}

func (r *ProductRepo) l() locker {
	if r.lk.s == nil {
		return locker{s: r.s}
	}
	return r.lk
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.l().lock()()
	for _, existing := range r.s.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.nextProductID++
	p.ID = r.s.nextProductID
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.l().lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.l().lock()()
	current, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.products {
		if id != p.ID && existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	current.Name = p.Name
	current.Description = p.Description
	current.MinimumStock = p.MinimumStock
	current.Unit = p.Unit
	current.UpdatedAt = p.UpdatedAt
	r.s.products[p.ID] = current
	return nil
}

func (r *ProductRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	defer r.l().lock()()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if stock < 0 {
		return domain.ErrInsufficientStock
	}
	p.CurrentStock = stock
	p.UpdatedAt = time.Now().UTC()
	r.s.products[id] = p
	return nil
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	defer r.l().lock()()
	search := strings.ToLower(f.Search)
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.LowStockOnly && !p.IsLowStock() {
			continue
		}
		p := p
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	defer r.l().lock()()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, m := range r.s.movements {
		if m.ProductID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.products, id)
	return nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo repositorio de movimientos en memoria (append-only).
type MovementRepo struct {
	s  *Store
	lk locker
}

func (r *MovementRepo) l() locker {
	if r.lk.s == nil {
		return locker{s: r.s}
	}
	return r.lk
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	defer r.l().lock()()
	if r.s.FailMovementCreate != nil {
		return r.s.FailMovementCreate
	}
	if _, ok := r.s.products[m.ProductID]; !ok {
		return &domain.ValidationError{Field: "produto", Message: "Produto não encontrado.", Err: domain.ErrNotFound}
	}
	if _, ok := r.s.users[m.UserID]; !ok {
		return domain.ErrUnauthorized
	}
	r.s.nextMovementID++
	m.ID = r.s.nextMovementID
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *MovementRepo) GetByID(_ context.Context, id int64) (*entity.MovementDetail, error) {
	defer r.l().lock()()
	for _, m := range r.s.movements {
		if m.ID == id {
			return r.detail(m), nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.MovementDetail, error) {
	defer r.l().lock()()
	list := make([]*entity.MovementDetail, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if f.ProductID > 0 && m.ProductID != f.ProductID {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		list = append(list, r.detail(m))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *MovementRepo) detail(m entity.Movement) *entity.MovementDetail {
	d := &entity.MovementDetail{Movement: m}
	if p, ok := r.s.products[m.ProductID]; ok {
		d.ProductName = p.Name
	}
	if u, ok := r.s.users[m.UserID]; ok {
		d.UserDisplayName = u.DisplayName()
	}
	return d
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.nextUserID++
	u.ID = r.s.nextUserID
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	for _, m := range r.s.movements {
		if m.UserID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.users, id)
	return nil
}
