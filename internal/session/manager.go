package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Parikshit8902/Mint-Pad/internal/actor"
	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
	"github.com/Parikshit8902/Mint-Pad/internal/document"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/logger"
	"github.com/Parikshit8902/Mint-Pad/internal/session/closeflow"
)

// Manager is the entry point for every document operation the shell
// performs. It owns the Store, drives the close flow and implements the
// save sub-flow.
type Manager struct {
	store   *Store
	dialogs dialog.Service
	flow    *actor.Dispatcher[closeflow.State]
}

// NewManager wires a store to the dialog service.
func NewManager(store *Store, dialogs dialog.Service) *Manager {
	m := &Manager{store: store, dialogs: dialogs}
	m.flow = actor.New(closeflow.State{Phase: closeflow.PhaseIdle}, closeflow.Reduce,
		&flowRuntime{m: m}, actor.WithHooks(flowHooks()))
	return m
}

// Create opens path in a new tab, or a blank document when path is empty.
// Load failures are shown to the user and leave the session unchanged.
func (m *Manager) Create(ctx context.Context, path string) (document.ID, error) {
	d, err := m.store.Create(path)
	if err != nil {
		logger.Warnf("open %s: %v", path, err)
		m.dialogs.Notify(ctx, dialog.Notice{Title: "Could not open file", Err: err})
		return "", err
	}
	logger.Debugf("created document %s path=%q lang=%s", d.ID(), d.Path(), d.Language())
	return d.ID(), nil
}

// Open asks for a file and opens it. ok is false when the dialog was
// cancelled.
func (m *Manager) Open(ctx context.Context) (id document.ID, ok bool, err error) {
	path, ok, err := m.dialogs.OpenFile(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	id, err = m.Create(ctx, path)
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Activate selects a document. Content is not touched.
func (m *Manager) Activate(id document.ID) error { return m.store.Activate(id) }

// ActivateIndex selects the document at a 0-based tab index.
func (m *Manager) ActivateIndex(i int) error { return m.store.ActivateIndex(i) }

// Active returns a snapshot of the active document.
func (m *Manager) Active() (document.Info, bool) {
	d, ok := m.store.Active()
	if !ok {
		return document.Info{}, false
	}
	return d.Info(m.store.ActiveIndex()), true
}

// Get returns a snapshot of id.
func (m *Manager) Get(id document.ID) (document.Info, bool) {
	d, i, ok := m.store.Get(id)
	if !ok {
		return document.Info{}, false
	}
	return d.Info(i), true
}

// Documents returns snapshots in tab order.
func (m *Manager) Documents() []document.Info { return m.store.Documents() }

// Text returns the full content of id.
func (m *Manager) Text(id document.ID) (string, error) {
	d, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return d.Buffer().Text(), nil
}

// Cursor returns the insert position in id.
func (m *Manager) Cursor(id document.ID) (buffer.Position, error) {
	d, err := m.lookup(id)
	if err != nil {
		return buffer.Position{}, err
	}
	return d.Buffer().Cursor(), nil
}

// Edit runs fn against the buffer of id. The buffer must not be retained
// after fn returns.
func (m *Manager) Edit(id document.ID, fn func(buffer.Editor) error) error {
	d, err := m.lookup(id)
	if err != nil {
		return err
	}
	ed, ok := d.Buffer().(buffer.Editor)
	if !ok {
		return ErrNotEditable
	}
	return fn(ed)
}

// SetLanguage reassigns the language of id.
func (m *Manager) SetLanguage(id document.ID, l lang.Language) error {
	if !l.Valid() {
		return fmt.Errorf("set language: unknown language %q", l)
	}
	d, err := m.lookup(id)
	if err != nil {
		return err
	}
	d.SetLanguage(l)
	return nil
}

// Save writes id to its path, asking for one first when untitled. saved is
// false with a nil error when the user cancelled.
func (m *Manager) Save(ctx context.Context, id document.ID) (saved bool, err error) {
	d, err := m.lookup(id)
	if err != nil {
		return false, err
	}
	outcome, err := m.save(ctx, d, false)
	return outcome == closeflow.SaveSaved, err
}

// SaveAs always asks for a destination. Cancelling leaves the path and
// modified flag as they were.
func (m *Manager) SaveAs(ctx context.Context, id document.ID) (saved bool, err error) {
	d, err := m.lookup(id)
	if err != nil {
		return false, err
	}
	outcome, err := m.save(ctx, d, true)
	return outcome == closeflow.SaveSaved, err
}

// SaveIfTitled writes id when it has a path and unsaved edits. Untitled
// documents are left alone without prompting.
func (m *Manager) SaveIfTitled(ctx context.Context, id document.ID) (saved bool, err error) {
	d, err := m.lookup(id)
	if err != nil {
		return false, err
	}
	if d.Untitled() || !d.Modified() {
		return false, nil
	}
	outcome, err := m.save(ctx, d, false)
	return outcome == closeflow.SaveSaved, err
}

// Close runs the close flow for id and reports how it resolved.
func (m *Manager) Close(ctx context.Context, id document.ID) (closeflow.Resolution, error) {
	d, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return m.runFlow(ctx, closeflow.CmdClose{
		Target:   target(d),
		Modified: d.Modified(),
	})
}

// Exit runs the exit flow. The session is torn down when it resolves
// ExitAllowed.
func (m *Manager) Exit(ctx context.Context) (closeflow.Resolution, error) {
	var modified []closeflow.Target
	for _, d := range m.store.Modified() {
		modified = append(modified, target(d))
	}
	return m.runFlow(ctx, closeflow.CmdExit{Modified: modified})
}

func (m *Manager) runFlow(ctx context.Context, cmd actor.Input) (closeflow.Resolution, error) {
	if m.flow.State().Busy() {
		return "", ErrFlowBusy
	}
	state, err := m.flow.Dispatch(ctx, cmd)
	if errors.Is(err, actor.ErrReentrant) {
		return "", ErrFlowBusy
	}
	if err != nil {
		m.flow.Reset(closeflow.State{Phase: closeflow.PhaseIdle})
		return "", err
	}
	if state.Phase != closeflow.PhaseResolved {
		m.flow.Reset(closeflow.State{Phase: closeflow.PhaseIdle})
		return "", fmt.Errorf("close flow stalled in phase %s", state.Phase)
	}
	return state.Resolution, nil
}

// save is the save sub-flow shared by menu saves and the close flow.
func (m *Manager) save(ctx context.Context, d *document.Document, forceDialog bool) (closeflow.SaveOutcome, error) {
	path := d.Path()
	if !forceDialog && path != "" && !d.Modified() {
		return closeflow.SaveSaved, nil
	}

	if forceDialog || path == "" {
		chosen, ok, err := m.dialogs.SaveFile(ctx, d.SuggestedFilename())
		if err != nil {
			return closeflow.SaveCancelled, fmt.Errorf("save dialog: %w", err)
		}
		if !ok {
			logger.Debugf("save of %s cancelled", d.ID())
			return closeflow.SaveCancelled, nil
		}
		path = chosen
	}

	if err := d.Save(path); err != nil {
		logger.Errorf("%v", err)
		m.dialogs.Notify(ctx, dialog.Notice{Title: "Could not save file", Err: err})
		return closeflow.SaveFailed, err
	}
	logger.Infof("saved %s", path)
	return closeflow.SaveSaved, nil
}

func (m *Manager) lookup(id document.ID) (*document.Document, error) {
	d, _, ok := m.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, ErrUnknownDocument)
	}
	return d, nil
}

func target(d *document.Document) closeflow.Target {
	return closeflow.Target{ID: d.ID(), Name: d.BaseName()}
}
