package application

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
	repo "github.com/orugalabs/gaming-server/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repo.ErrDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) SetPresence(_ context.Context, id int64, online bool) error {
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Online = online
	return nil
}

func (f *fakeUserRepo) SetBan(_ context.Context, id int64, banned bool, reason string) error {
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Banned = banned
	u.BanReason = reason
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeCartRepo struct {
	items map[int64][]entity.CartItem // by user
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[int64][]entity.CartItem{}}
}

func (f *fakeCartRepo) AddItem(_ context.Context, userID, gameID int64, qty int) error {
	if f.err != nil {
		return f.err
	}
	lines := f.items[userID]
	for i := range lines {
		if lines[i].GameID == gameID {
			lines[i].Quantity += qty
			f.items[userID] = lines
			return nil
		}
	}
	f.items[userID] = append(lines, entity.CartItem{GameID: gameID, Quantity: qty})
	return nil
}

func (f *fakeCartRepo) Items(_ context.Context, userID int64) ([]entity.CartItem, error) {
	return f.items[userID], nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, userID, gameID int64, qty int) error {
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items[userID] {
		if it.GameID == gameID {
			f.items[userID][i].Quantity = qty
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, userID, gameID int64) error {
	lines := f.items[userID]
	for i, it := range lines {
		if it.GameID == gameID {
			f.items[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeCartRepo) Clear(_ context.Context, userID int64) error {
	delete(f.items, userID)
	return nil
}

type fakeOrderRepo struct {
	orders    map[int64]*entity.Order
	nextID    int64
	createErr error
	reviewErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*entity.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) CreateFromCart(_ context.Context, o *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	o.ID = f.nextID
	f.nextID++
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByStatus(_ context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkInReview(_ context.Context, orderID int64, proofURL string) (*entity.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if !o.CanUploadProof() {
		return nil, repo.ErrInvalidState
	}
	o.Status = entity.OrderInReview
	o.ProofURL = proofURL
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Review(_ context.Context, orderID, moderatorID int64, approve bool, comment string) (*entity.Order, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	o, ok := f.orders[orderID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if !o.CanReview() {
		return nil, repo.ErrInvalidState
	}
	if approve {
		o.Status = entity.OrderApproved
	} else {
		o.Status = entity.OrderRejected
	}
	o.ModeratorID = &moderatorID
	o.ModeratorComment = comment
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Cancel(_ context.Context, orderID int64) (*entity.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if !o.CanCancel() {
		return nil, repo.ErrInvalidState
	}
	o.Status = entity.OrderCancelled
	cp := *o
	return &cp, nil
}

type fakeBankRepo struct {
	cfg *entity.BankConfig
}

func (f *fakeBankRepo) Get(_ context.Context) (*entity.BankConfig, error) {
	if f.cfg == nil {
		return nil, repo.ErrNotFound
	}
	return f.cfg, nil
}

type fakeGameRepo struct {
	games  map[int64]*entity.Game
	nextID int64
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: map[int64]*entity.Game{}, nextID: 1}
}

func (f *fakeGameRepo) Create(_ context.Context, g *entity.Game) error {
	g.ID = f.nextID
	f.nextID++
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	cp := *g
	f.games[g.ID] = &cp
	return nil
}

func (f *fakeGameRepo) GetByID(_ context.Context, id int64) (*entity.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeGameRepo) ListActive(_ context.Context) ([]entity.Game, error) {
	var out []entity.Game
	for _, g := range f.games {
		if g.Active {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) ListByGenre(_ context.Context, genre string) ([]entity.Game, error) {
	var out []entity.Game
	for _, g := range f.games {
		if g.Active && strings.Contains(strings.ToLower(g.Genre), strings.ToLower(genre)) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) Update(_ context.Context, g *entity.Game) error {
	if _, ok := f.games[g.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *g
	f.games[g.ID] = &cp
	return nil
}

type fakePostRepo struct {
	posts    map[int64]*entity.Post
	comments map[int64]*entity.Comment
	nextID   int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int64]*entity.Post{}, comments: map[int64]*entity.Comment{}, nextID: 1}
}

func (f *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) List(_ context.Context) ([]entity.Post, error) {
	var out []entity.Post
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePostRepo) ListAnnouncements(_ context.Context) ([]entity.Post, error) {
	var out []entity.Post
	for _, p := range f.posts {
		if p.Announcement {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(_ context.Context, authorID int64) ([]entity.Post, error) {
	var out []entity.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) AddLike(_ context.Context, id int64) error {
	p, ok := f.posts[id]
	if !ok {
		return repo.ErrNotFound
	}
	p.Likes++
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) CreateComment(_ context.Context, c *entity.Comment) error {
	p, ok := f.posts[c.PostID]
	if !ok {
		return repo.ErrNotFound
	}
	c.ID = f.nextID
	f.nextID++
	c.CreatedAt = time.Now()
	cp := *c
	f.comments[c.ID] = &cp
	p.CommentCount++
	return nil
}

func (f *fakePostRepo) CommentsByPost(_ context.Context, postID int64) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetComment(_ context.Context, id int64) (*entity.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakePostRepo) DeleteComment(_ context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakeMessageRepo struct {
	messages map[int64]*entity.Message
	nextID   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[int64]*entity.Message{}, nextID: 1}
}

func (f *fakeMessageRepo) Create(_ context.Context, m *entity.Message) error {
	m.ID = f.nextID
	f.nextID++
	m.SentAt = time.Now()
	cp := *m
	f.messages[m.ID] = &cp
	return nil
}

func (f *fakeMessageRepo) GetByID(_ context.Context, id int64) (*entity.Message, error) {
	m, ok := f.messages[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMessageRepo) ListGroup(_ context.Context) ([]entity.Message, error) {
	var out []entity.Message
	for _, m := range f.messages {
		if m.Group {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListPrivate(_ context.Context, userID, otherID int64) ([]entity.Message, error) {
	var out []entity.Message
	for _, m := range f.messages {
		if m.Group || m.RecipientID == nil {
			continue
		}
		if (m.SenderID == userID && *m.RecipientID == otherID) ||
			(m.SenderID == otherID && *m.RecipientID == userID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) Conversations(_ context.Context, _ int64) ([]entity.Conversation, error) {
	return nil, nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, recipientID int64) error {
	for _, m := range f.messages {
		if !m.Group && m.RecipientID != nil && *m.RecipientID == recipientID {
			m.Read = true
		}
	}
	return nil
}

func (f *fakeMessageRepo) CountUnread(_ context.Context, recipientID int64) (int64, error) {
	var n int64
	for _, m := range f.messages {
		if !m.Group && m.RecipientID != nil && *m.RecipientID == recipientID && !m.Read {
			n++
		}
	}
	return n, nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.messages[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.messages, id)
	return nil
}

type fakeStore struct {
	uploads []string
	err     error
}

func (f *fakeStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, r)
	f.uploads = append(f.uploads, objectPath)
	return "https://storage.googleapis.com/test/" + objectPath, nil
}

type fakePublisher struct {
	jobs []any
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, body)
	return nil
}
