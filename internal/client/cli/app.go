package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/client/clipboard"
	"github.com/vaultdesk/vaultdesk/internal/client/config"
	"github.com/vaultdesk/vaultdesk/internal/client/prefs"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
	"github.com/vaultdesk/vaultdesk/internal/client/vault"
	"github.com/vaultdesk/vaultdesk/internal/logging"
)

// Kind selects which card list the REPL currently operates on.
type Kind string

const (
	KindData Kind = "data"
	KindBank Kind = "bank"
)

var errLocked = errors.New("vault is locked")

// App wires the REPL to the backend connection, the preference store and the
// clipboard manager. One session exists at a time; it is replaced on every
// unlock and dropped on lock.
type App struct {
	config *config.Config
	api    *rpc.Client
	prefs  *prefs.Store
	clip   *clipboard.Manager
	log    logging.Logger
	reader *bufio.Reader

	mu      sync.Mutex
	session *vault.Session
	kind    Kind
}

func NewApp(c *config.Config, api *rpc.Client, store *prefs.Store, log logging.Logger) *App {
	return &App{
		config: c,
		api:    api,
		prefs:  store,
		clip:   clipboard.NewManager(api, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		kind:   KindData,
	}
}

// Run starts the interactive loop. It prompts for the master password once
// up front and then hands control to the REPL; a locked vault can be
// reopened from inside the loop with the unlock command.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to VaultDesk (type 'help' for commands)")

	_ = a.Unlock(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	if s := a.currentSession(); s != nil {
		_ = s.Lock(ctx)
		s.Close()
	}
	a.clip.WipeNow(ctx)
}

func (a *App) getStatus() string {
	s := a.currentSession()
	if s == nil {
		return "(locked)"
	}
	kind := a.currentKind()
	title := s.DataCards().SectionTitle()
	if kind == KindBank {
		title = s.BankCards().SectionTitle()
	}
	return "(" + string(kind) + " · " + title + ")"
}

func (a *App) isUnlocked() bool {
	return a.currentSession() != nil
}

// Touch resets the idle auto-lock countdown; the REPL calls it on every
// command.
func (a *App) Touch() {
	if s := a.currentSession(); s != nil {
		s.Touch()
	}
}

func (a *App) currentSession() *vault.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) currentKind() Kind {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.kind
}

// vaultSession returns the open session or errLocked.
func (a *App) vaultSession() (*vault.Session, error) {
	s := a.currentSession()
	if s == nil {
		printlnFn("Vault is locked. Use 'unlock' first.")
		return nil, errLocked
	}
	return s, nil
}

func (a *App) clearSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = nil
}

// Unlock prompts for the master password, opens the backend vault and builds
// a fresh session around the returned profile. The password bytes are wiped
// right after the call.
func (a *App) Unlock(ctx context.Context) error {
	if a.isUnlocked() {
		printlnFn("Vault is already unlocked.")
		return nil
	}

	pw, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	profile, err := a.api.UnlockVault(ctx, pw)
	for i := range pw {
		pw[i] = 0
	}
	if err != nil {
		printlnFn("Unlock failed:", err.Error())
		return err
	}

	session := vault.NewSession(vault.SessionConfig{
		ProfileID:     profile.ID,
		API:           a.api,
		Log:           a.log,
		Prefs:         a.prefs,
		SortSaveDelay: 500 * time.Millisecond,
		WipeClipboard: a.clip.WipeNow,
		Events: vault.Events{
			OnLocked: func() {
				if s := a.currentSession(); s != nil {
					s.Close()
				}
				a.clearSession()
				printlnFn("Vault locked.")
			},
			OnNotice: func(n vault.Notice) {
				printlnFn(renderNotice(n))
			},
		},
	})

	if err := session.Open(ctx); err != nil {
		session.Close()
		printlnFn("Could not load the vault:", err.Error())
		return err
	}

	a.mu.Lock()
	a.session = session
	a.kind = KindData
	a.mu.Unlock()

	printlnFn("Unlocked profile:", profile.Name)
	return nil
}

// Lock locks the current session explicitly.
func (a *App) Lock(ctx context.Context) error {
	s, err := a.vaultSession()
	if err != nil {
		return err
	}
	err = s.Lock(ctx)
	s.Close()
	return err
}
