package x11bridge

import (
	"io"
	"log/slog"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWindowIDFormatting(t *testing.T) {
	got := windowID(xproto.Window(0x1a2b3c))
	want := "0x1a2b3c"
	if got != want {
		t.Fatalf("windowID = %q, want %q", got, want)
	}
}

type fakeEngineEvents struct {
	opened  []string
	closed  []string
	focused []string
}

func (f *fakeEngineEvents) WindowOpened(windowID, screenName string) {
	f.opened = append(f.opened, windowID+"@"+screenName)
}
func (f *fakeEngineEvents) WindowClosed(windowID string)      { f.closed = append(f.closed, windowID) }
func (f *fakeEngineEvents) WindowFocusChanged(windowID string) { f.focused = append(f.focused, windowID) }

func TestHandleWindowDestroyedUntracksAndForwards(t *testing.T) {
	fake := &fakeEngineEvents{}
	applier := &Applier{byID: map[string]xproto.Window{"0x1": 1}, logger: discardLogger()}
	tr := &WindowTracker{engine: fake, applier: applier, logger: discardLogger()}

	tr.HandleWindowDestroyed(xproto.Window(1))

	if len(fake.closed) != 1 || fake.closed[0] != "0x1" {
		t.Fatalf("expected WindowClosed(0x1), got %v", fake.closed)
	}
	if _, ok := applier.byID["0x1"]; ok {
		t.Fatalf("expected window untracked from applier")
	}
}
