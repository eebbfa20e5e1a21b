package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"LashMap/internal/config"
	"LashMap/internal/export"
	lashnet "LashMap/internal/net"
	"LashMap/internal/state"
	"LashMap/internal/store"
	"LashMap/internal/ui"
)

const usage = `usage:
  lashmap                              edit the saved map and share it on the LAN
  lashmap lashmap://host:port          follow a host read-only
  lashmap browse                       list hosts on the LAN
  lashmap export <map.json> <out.pdf|out.png>`

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Printf("Using default config: %v", err)
	}

	args := os.Args
	switch {
	case len(args) > 1 && strings.HasPrefix(args[1], lashnet.Scheme):
		runViewer(cfg, args[1])
	case len(args) > 1 && args[1] == "browse":
		runBrowse()
	case len(args) > 1 && args[1] == "export":
		if len(args) != 4 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		if err := runExport(cfg, args[2], args[3]); err != nil {
			log.Fatal(err)
		}
	case len(args) > 1:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	default:
		runHost(cfg)
	}
}

func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	files := store.NewFileStore(cfg.SaveFile)
	var initial *state.Snapshot
	switch s, err := files.Load(); {
	case err == nil:
		initial = &s
	case !errors.Is(err, store.ErrNoSnapshot):
		log.Printf("[STORE] Starting empty: %v", err)
	}

	hub := lashnet.NewHub()
	ed := state.NewEditor(state.Options{
		InitialData:        initial,
		BackgroundImageRef: cfg.Background,
		OnSave:             store.Fanout(files.SaveFunc(), hub.Publish),
		Viewport:           cfg.ViewportSize(),
		Color:              cfg.Stroke.Color,
		StrokeWidth:        cfg.Stroke.Width,
		Debounce:           cfg.Debounce(),
	})
	defer ed.Close()
	hub.Publish(ed.Snapshot())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	port := cfg.Mirror.Port
	go func() {
		if err := hub.Serve(ctx, port); err != nil {
			log.Printf("[MIRROR] %v", err)
		}
	}()
	if cfg.Mirror.Advertise {
		if srv, err := lashnet.Advertise(port); err != nil {
			log.Printf("[MIRROR] Not advertising: %v", err)
		} else {
			defer srv.Shutdown()
		}
	}

	hostIP, _ := lashnet.GetOutgoingIP()
	shareLink := lashnet.ShareLink(hostIP, port)

	board := ui.NewBoardWidget(ed)
	w := ui.NewWindow("LashMap", board, func(w *ui.Window) ui.Actions {
		return ui.Actions{
			ShareLink: shareLink,
			Save: func() {
				ed.Save()
				w.SetStatus("Saved to " + files.Path())
			},
			CopyJSON: func() {
				w.Report("Copied map JSON", ui.CopySnapshot(ed))
			},
			PasteJSON: func() {
				w.Report("Pasted map JSON", ui.PasteSnapshot(ed))
			},
			ExportPDF: func() {
				w.ExportDialog(cfg.ExportDir, "lashmap.pdf", func(path string) error {
					return export.PDF(path, ed.Snapshot(), ed.Viewport())
				})
			},
			ExportPNG: func() {
				w.ExportDialog(cfg.ExportDir, "lashmap.png", func(path string) error {
					return export.PNG(path, ed.Snapshot(), ed.Viewport(), export.PNGScale)
				})
			},
		}
	})
	w.SetStatus("Viewers can follow " + shareLink)
	w.Run()
}

func runViewer(cfg config.Config, link string) {
	log.Println("Starting as VIEWER")
	addr, err := lashnet.ParseShareLink(link)
	if err != nil {
		log.Fatal(err)
	}

	ed := state.NewEditor(state.Options{ReadOnly: true, Viewport: cfg.ViewportSize()})
	defer ed.Close()
	board := ui.NewBoardWidget(ed)
	w := ui.NewWindow("LashMap (following "+addr+")", board, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go follow(ctx, addr, w, func(s state.Snapshot) {
		ed.Hydrate(s)
		board.Sync()
	})
	w.Run()
}

// follow keeps a viewer attached to its host, reconnecting after drops.
func follow(ctx context.Context, addr string, w *ui.Window, apply func(state.Snapshot)) {
	for ctx.Err() == nil {
		w.SetStatus("Following " + addr)
		err := lashnet.Subscribe(ctx, addr, apply)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			w.SetStatus(fmt.Sprintf("Connection failed: %v", err))
		} else {
			w.SetStatus("Host closed the session")
		}
		select {
		case <-ctx.Done():
		case <-time.After(2 * time.Second):
		}
	}
}

func runBrowse() {
	found := 0
	err := lashnet.Browse(3*time.Second, func(link string) {
		found++
		fmt.Println(link)
	})
	if err != nil {
		log.Fatal(err)
	}
	if found == 0 {
		fmt.Fprintln(os.Stderr, "no hosts found")
	}
}

func runExport(cfg config.Config, in, out string) error {
	s, err := store.NewFileStore(in).Load()
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	return export.File(out, s, cfg.ViewportSize())
}
