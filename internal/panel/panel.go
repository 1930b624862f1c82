package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"shopadmin/internal/backend"
	"shopadmin/internal/domain"
)

// TokenKey is the storage key holding the raw session token.
const TokenKey = "adminToken"

// DefaultMessageTTL is how long a status message stays visible.
const DefaultMessageTTL = 5 * time.Second

// Options tune a Panel. The zero value is usable.
type Options struct {
	MessageTTL time.Duration // zero means DefaultMessageTTL
	Log        zerolog.Logger
}

// Panel holds the admin session and the approval screen state.
type Panel struct {
	backend domain.Backend
	store   domain.KeyValueStore
	log     zerolog.Logger
	ttl     time.Duration

	action  sync.Mutex // held for the duration of sign-in, accept and delete
	refresh singleflight.Group

	mu            sync.Mutex
	phase         domain.Phase
	token         string
	list          []domain.Shopkeeper
	selected      map[domain.ShopkeeperID]struct{}
	loading       bool
	actionLoading bool
	message       string
	messageGen    uint64
	messageTimer  *time.Timer
}

// New returns an anonymous Panel. Call Restore to pick up a saved session.
func New(b domain.Backend, kv domain.KeyValueStore, opts Options) *Panel {
	ttl := opts.MessageTTL
	if ttl == 0 {
		ttl = DefaultMessageTTL
	}
	return &Panel{
		backend:  b,
		store:    kv,
		log:      opts.Log,
		ttl:      ttl,
		list:     []domain.Shopkeeper{},
		selected: make(map[domain.ShopkeeperID]struct{}),
	}
}

// Restore loads a saved token. When one exists the panel becomes
// authenticated and fetches the unverified list.
func (p *Panel) Restore(ctx context.Context) error {
	tok, ok, err := p.store.Get(TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok || tok == "" {
		return nil
	}
	p.mu.Lock()
	p.token = tok
	p.phase = domain.Authenticated
	p.mu.Unlock()
	p.log.Debug().Msg("restored saved session")
	return p.Refresh(ctx)
}

// Login exchanges creds for a token. On failure the session is left as it was
// and the reason is reported through the status message.
func (p *Panel) Login(ctx context.Context, creds domain.Credentials) error {
	if !p.action.TryLock() {
		return domain.ErrActionInProgress
	}
	wasAuthenticated, err := p.login(ctx, creds)
	p.action.Unlock()
	if err != nil {
		return err
	}
	if !wasAuthenticated {
		// Errors are already reported through the message.
		_ = p.Refresh(ctx)
	}
	return nil
}

func (p *Panel) login(ctx context.Context, creds domain.Credentials) (bool, error) {
	p.mu.Lock()
	prev := p.phase
	p.phase = domain.Authenticating
	p.actionLoading = true
	p.mu.Unlock()

	restore := func() {
		p.mu.Lock()
		p.phase = prev
		p.actionLoading = false
		p.mu.Unlock()
	}

	tok, err := p.backend.SignIn(ctx, creds)
	if err != nil {
		restore()
		p.fail("signin", err, msgLoginFailed, msgLoginUnreachable)
		return false, err
	}
	if err := p.store.Set(TokenKey, tok); err != nil {
		restore()
		p.log.Warn().Err(err).Msg("persist session token")
		p.SetMessage(msgLoginFailed)
		return false, fmt.Errorf("persist session: %w", err)
	}

	p.mu.Lock()
	p.token = tok
	p.phase = domain.Authenticated
	p.actionLoading = false
	p.setMessageLocked(msgLoggedIn)
	p.mu.Unlock()
	p.log.Info().Str("username", creds.Username).Msg("signed in")
	return prev == domain.Authenticated, nil
}

// Logout forgets the session, both in memory and in the store.
func (p *Panel) Logout() error {
	if err := p.store.Remove(TokenKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	p.mu.Lock()
	p.token = ""
	p.phase = domain.Anonymous
	p.list = []domain.Shopkeeper{}
	p.selected = make(map[domain.ShopkeeperID]struct{})
	p.mu.Unlock()
	p.log.Info().Msg("signed out")
	return nil
}

// Refresh replaces the list with the backend's current unverified
// shopkeepers. Concurrent calls share one request. On failure the previous
// list stays visible.
func (p *Panel) Refresh(ctx context.Context) error {
	if p.Phase() != domain.Authenticated {
		return domain.ErrNotAuthenticated
	}
	_, err, _ := p.refresh.Do("unverified", func() (any, error) {
		p.setLoading(true)
		defer p.setLoading(false)

		list, err := p.backend.ListUnverified(ctx)
		if err != nil {
			p.fail("unverified", err, msgFetchFailed, msgFetchUnreachable)
			return nil, err
		}
		p.replaceList(list)
		return nil, nil
	})
	return err
}

func (p *Panel) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}

// replaceList swaps in list and drops selected ids that are no longer listed.
func (p *Panel) replaceList(list []domain.Shopkeeper) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != domain.Authenticated {
		return
	}
	p.list = list
	listed := make(map[domain.ShopkeeperID]struct{}, len(list))
	for _, sk := range list {
		listed[sk.ID] = struct{}{}
	}
	for id := range p.selected {
		if _, ok := listed[id]; !ok {
			delete(p.selected, id)
		}
	}
}

// Toggle flips the selection of one listed shopkeeper.
func (p *Panel) Toggle(id domain.ShopkeeperID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.listedLocked(id) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownShopkeeper, id)
	}
	if _, ok := p.selected[id]; ok {
		delete(p.selected, id)
	} else {
		p.selected[id] = struct{}{}
	}
	return nil
}

// ToggleSelectAll selects every listed shopkeeper, or clears the selection
// when everything is already selected.
func (p *Panel) ToggleSelectAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.selected) == len(p.list) {
		p.selected = make(map[domain.ShopkeeperID]struct{})
		return
	}
	p.selected = make(map[domain.ShopkeeperID]struct{}, len(p.list))
	for _, sk := range p.list {
		p.selected[sk.ID] = struct{}{}
	}
}

func (p *Panel) listedLocked(id domain.ShopkeeperID) bool {
	for _, sk := range p.list {
		if sk.ID == id {
			return true
		}
	}
	return false
}

// Accept verifies the selected shopkeepers.
func (p *Panel) Accept(ctx context.Context) error {
	return p.mutate(ctx, mutation{
		op:          "accept",
		empty:       msgSelectToAccept,
		done:        msgAccepted,
		failed:      msgAcceptFailed,
		unreachable: msgAcceptUnreachable,
		call:        p.backend.Accept,
	}, nil)
}

// Delete removes the selected shopkeepers after confirm approves. A nil
// confirmer declines.
func (p *Panel) Delete(ctx context.Context, confirm domain.Confirmer) error {
	if confirm == nil {
		confirm = domain.ConfirmFunc(func(string) (bool, error) { return false, nil })
	}
	return p.mutate(ctx, mutation{
		op:          "delete",
		empty:       msgSelectToDelete,
		done:        msgDeleted,
		failed:      msgDeleteFailed,
		unreachable: msgDeleteUnreachable,
		call:        p.backend.Delete,
	}, confirm)
}

type mutation struct {
	op          string
	empty       string
	done        string
	failed      string
	unreachable string
	call        func(context.Context, string, []domain.ShopkeeperID) (domain.MutationResult, error)
}

func (p *Panel) mutate(ctx context.Context, m mutation, confirm domain.Confirmer) error {
	if !p.action.TryLock() {
		return domain.ErrActionInProgress
	}
	err := p.runMutation(ctx, m, confirm)
	p.action.Unlock()
	if err != nil {
		return err
	}
	_ = p.Refresh(ctx)
	return nil
}

func (p *Panel) runMutation(ctx context.Context, m mutation, confirm domain.Confirmer) error {
	p.mu.Lock()
	if p.phase != domain.Authenticated {
		p.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	token := p.token
	ids := p.selectedIDsLocked()
	if len(ids) == 0 {
		p.setMessageLocked(m.empty)
		p.mu.Unlock()
		return domain.ErrEmptySelection
	}
	p.mu.Unlock()

	if confirm != nil {
		ok, err := confirm.Confirm(fmt.Sprintf(msgConfirmDelete, len(ids)))
		if err != nil {
			return fmt.Errorf("%s: confirm: %w", m.op, err)
		}
		if !ok {
			return domain.ErrDeclined
		}
	}

	p.mu.Lock()
	p.actionLoading = true
	p.mu.Unlock()

	p.log.Debug().Str("op", m.op).Interface("ids", ids).Msg("sending selection")
	res, err := m.call(ctx, token, ids)
	if err != nil {
		p.mu.Lock()
		p.actionLoading = false
		p.mu.Unlock()
		p.fail(m.op, err, m.failed, m.unreachable)
		return err
	}

	count := len(ids)
	if res.Reported {
		count = res.Count
	}
	p.mu.Lock()
	p.actionLoading = false
	p.selected = make(map[domain.ShopkeeperID]struct{})
	p.setMessageLocked(fmt.Sprintf(m.done, count))
	p.mu.Unlock()
	p.log.Info().Str("op", m.op).Int("count", count).Msg("selection processed")
	return nil
}

// selectedIDsLocked returns the selection in list order.
func (p *Panel) selectedIDsLocked() []domain.ShopkeeperID {
	ids := make([]domain.ShopkeeperID, 0, len(p.selected))
	for _, sk := range p.list {
		if _, ok := p.selected[sk.ID]; ok {
			ids = append(ids, sk.ID)
		}
	}
	return ids
}

// fail reports err through the status message. The backend's own message wins;
// other server errors get fallback, transport errors get unreachable.
func (p *Panel) fail(op string, err error, fallback, unreachable string) {
	p.log.Warn().Err(err).Str("op", op).Msg("backend call failed")
	if msg, ok := backend.ServerMessage(err); ok {
		p.SetMessage(msg)
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		p.SetMessage(fallback)
		return
	}
	p.SetMessage(unreachable)
}

// SetMessage shows msg, replacing any current message and its timer.
func (p *Panel) SetMessage(msg string) {
	p.mu.Lock()
	p.setMessageLocked(msg)
	p.mu.Unlock()
}

// DismissMessage clears the status message now.
func (p *Panel) DismissMessage() { p.SetMessage("") }

func (p *Panel) setMessageLocked(msg string) {
	p.message = msg
	p.messageGen++
	if p.messageTimer != nil {
		p.messageTimer.Stop()
		p.messageTimer = nil
	}
	if msg == "" {
		return
	}
	gen := p.messageGen
	p.messageTimer = time.AfterFunc(p.ttl, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.messageGen == gen {
			p.message = ""
			p.messageTimer = nil
		}
	})
}

// Close stops the message timer.
func (p *Panel) Close() {
	p.mu.Lock()
	if p.messageTimer != nil {
		p.messageTimer.Stop()
		p.messageTimer = nil
	}
	p.mu.Unlock()
}

// Phase returns the current session phase.
func (p *Panel) Phase() domain.Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// Token returns the session token, empty when anonymous.
func (p *Panel) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Message returns the current status message.
func (p *Panel) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

// Snapshot returns a copy of the current state.
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	list := make([]domain.Shopkeeper, len(p.list))
	copy(list, p.list)
	selected := make(map[domain.ShopkeeperID]struct{}, len(p.selected))
	for id := range p.selected {
		selected[id] = struct{}{}
	}
	return Snapshot{
		Phase:         p.phase,
		Shopkeepers:   list,
		Loading:       p.loading,
		ActionLoading: p.actionLoading,
		Message:       p.message,
		selected:      selected,
	}
}
