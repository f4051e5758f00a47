package inspect_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/go-fader/fader/pkg/control"
	"github.com/go-fader/fader/pkg/graphics"
	"github.com/go-fader/fader/pkg/inspect"
	"github.com/go-fader/fader/pkg/param"
	"github.com/go-fader/fader/pkg/surface"
	fadertest "github.com/go-fader/fader/pkg/testing"
)

func demoSurface() *surface.Surface {
	d := fadertest.NewDelegate(map[int]*param.Param{
		0: param.New("Gain", 0, 1, 0.5, ""),
	})
	s := surface.New(d)
	knob := control.NewKnob(graphics.RectFromLTWH(10, 10, 50, 50), 0, graphics.Vertical)
	knob.SetValue(0.5, 0)
	s.AttachControl(knob, 7, "knobs")
	return s
}

func TestCapture(t *testing.T) {
	s := demoSurface()
	snap := inspect.Capture(s)

	if len(snap.Controls) != 1 {
		t.Fatalf("snapshot has %d controls, want 1", len(snap.Controls))
	}
	c := snap.Controls[0]
	if c.Tag != 7 || c.Group != "knobs" {
		t.Errorf("identity = tag %d group %q", c.Tag, c.Group)
	}
	if c.Bounds.Left != 10 || c.Bounds.Right != 60 {
		t.Errorf("bounds = %+v", c.Bounds)
	}
	if len(c.Values) != 1 || c.Values[0] != 0.5 {
		t.Errorf("values = %v, want [0.5]", c.Values)
	}
	if len(c.Params) != 1 || c.Params[0] != 0 {
		t.Errorf("params = %v, want [0]", c.Params)
	}
	if !c.Dirty {
		t.Error("freshly attached control not reported dirty")
	}
}

func TestServerServesPublishedSnapshot(t *testing.T) {
	srv := inspect.NewServer()
	port, err := srv.Start(0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Stop()
	base := fmt.Sprintf("http://127.0.0.1:%d", port)

	// Before any publish the endpoint reports unavailable.
	resp, err := http.Get(base + "/controls")
	if err != nil {
		t.Fatalf("GET /controls: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status before publish = %d, want 503", resp.StatusCode)
	}

	if err := srv.Publish(inspect.Capture(demoSurface())); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	resp, err = http.Get(base + "/controls")
	if err != nil {
		t.Fatalf("GET /controls: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var snap inspect.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Controls) != 1 || snap.Controls[0].Tag != 7 {
		t.Errorf("served snapshot = %+v", snap.Controls)
	}
}

func TestWebsocketConnectDuringPublish(t *testing.T) {
	srv := inspect.NewServer()
	port, err := srv.Start(0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Stop()

	snap := inspect.Capture(demoSurface())
	if err := srv.Publish(snap); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// Publish continuously while clients connect; the initial snapshot
	// write and the stream writes must never overlap on one connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			srv.Publish(snap)
		}
	}()

	url := fmt.Sprintf("ws://127.0.0.1:%d/ws", port)
	for i := 0; i < 20; i++ {
		conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial %d: %v", i, err)
		}
		resp.Body.Close()
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("initial snapshot read %d: %v", i, err)
		}
		var got inspect.Snapshot
		if err := json.Unmarshal(msg, &got); err != nil {
			t.Fatalf("decode streamed snapshot: %v", err)
		}
		conn.Close()
	}
	<-done
}

func TestServerHealth(t *testing.T) {
	srv := inspect.NewServer()
	port, err := srv.Start(0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Stop()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}
}
