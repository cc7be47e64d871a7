package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Leader is the canonical name of the space bar in key sequences.
const Leader = "SPC"

// Binding is one command in the keymap. Seq uses spacemacs-style notation:
// "SPC g a" is space, then g, then a. Single keys look like "ctrl+c".
type Binding struct {
	Seq   string
	Cmd   tea.Cmd
	Desc  string
	Pages []AppMode // empty means every page
}

// On reports whether the binding is live on page.
func (b Binding) On(page AppMode) bool {
	return len(b.Pages) == 0 || slices.Contains(b.Pages, page)
}

// KeybindRegistry is the app's command table.
type KeybindRegistry struct {
	bindings map[string]Binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]Binding)}
}

// Add registers b, replacing any binding with the same sequence.
func (r *KeybindRegistry) Add(b Binding) {
	b.Seq = canonicalSeq(b.Seq)
	r.bindings[b.Seq] = b
}

// Bind registers seq on every page without a description.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.Add(Binding{Seq: seq, Cmd: cmd})
}

// BindWithDesc registers seq on every page.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.Add(Binding{Seq: seq, Cmd: cmd, Desc: desc})
}

// BindOn registers seq only for the given pages.
func (r *KeybindRegistry) BindOn(seq string, cmd tea.Cmd, desc string, pages ...AppMode) {
	r.Add(Binding{Seq: seq, Cmd: cmd, Desc: desc, Pages: pages})
}

// Lookup returns the command bound to seq on page, or nil.
func (r *KeybindRegistry) Lookup(seq string, page AppMode) tea.Cmd {
	b, ok := r.bindings[canonicalSeq(seq)]
	if !ok || !b.On(page) {
		return nil
	}
	return b.Cmd
}

// HasPrefix reports whether a longer sequence live on page starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string, page AppMode) bool {
	prefix := canonicalSeq(seq) + " "
	for s, b := range r.bindings {
		if strings.HasPrefix(s, prefix) && b.On(page) {
			return true
		}
	}
	return false
}

// submenuLabels names leader prefixes that open a submenu, so the first-level
// hint reads "Go to" instead of whichever page happens to be bound under it.
var submenuLabels = map[string]string{
	"g": "Go to",
	"w": "Window",
}

// LeaderHints maps each key that may follow seq on page to its description.
// An empty seq means just the leader. Keys that open a submenu show the
// submenu's label.
func (r *KeybindRegistry) LeaderHints(seq string, page AppMode) map[string]string {
	if seq == "" {
		seq = Leader
	}
	prefix := canonicalSeq(seq) + " "
	out := make(map[string]string)
	for s, b := range r.bindings {
		if b.Cmd == nil || !b.On(page) || !strings.HasPrefix(s, prefix) {
			continue
		}
		next, rest, nested := strings.Cut(strings.TrimPrefix(s, prefix), " ")
		switch {
		case nested && rest != "":
			label, ok := submenuLabels[next]
			if !ok {
				label = next + "…"
			}
			out[next] = label
		case b.Desc != "":
			out[next] = b.Desc
		default:
			out[next] = s
		}
	}
	return out
}

// canonicalSeq folds Bubble Tea's names for the space bar into Leader.
func canonicalSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = seqPart(p)
	}
	return strings.Join(parts, " ")
}

func seqPart(k string) string {
	if k == " " || k == "space" {
		return Leader
	}
	return k
}

// KeyHandler tracks a leader sequence in progress. Keys it consumes never
// reach the page.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderSeq     string   // how the leader is shown in hints
	LeaderWaiting bool     // a sequence is in progress
	Buffer        []string // keys so far, starting with the leader
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderSeq: Leader}
}

// Reset abandons any sequence in progress.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle feeds one key press for page. It reports whether the key was
// consumed and the command to run, if a binding completed.
func (h *KeyHandler) Handle(msg tea.KeyMsg, page AppMode) (consumed bool, cmd tea.Cmd) {
	k := seqPart(msg.String())

	if !h.LeaderWaiting {
		if k == Leader {
			h.LeaderWaiting = true
			h.Buffer = []string{Leader}
			return true, nil
		}
		if c := h.Registry.Lookup(k, page); c != nil {
			return true, c
		}
		return false, nil
	}

	if k == "esc" {
		h.Reset()
		return true, nil
	}
	h.Buffer = append(h.Buffer, k)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.Lookup(seq, page); c != nil {
		h.Reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq, page) {
		// Dead end: drop the sequence but still swallow the key.
		h.Reset()
	}
	return true, nil
}

// KeyMap adapts the registry to help.KeyMap for the leader hint box.
type KeyMap struct {
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap returns the hints for keyHandler's current sequence on mode.
func NewKeyMap(keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{keyHandler: keyHandler, mode: mode}
}

// ShortHelp lists the keys that may come next, sorted, followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.keyHandler == nil || km.keyHandler.Registry == nil {
		return nil
	}
	hints := km.keyHandler.Registry.LeaderHints(strings.Join(km.keyHandler.Buffer, " "), km.mode)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp is ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
