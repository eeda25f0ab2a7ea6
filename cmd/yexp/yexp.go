package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sync"

	"github.com/fixcik/yexp/encode"
	"github.com/fixcik/yexp/ir"
	"github.com/fixcik/yexp/libdiff"
	"github.com/fixcik/yexp/resolve"
	"github.com/fixcik/yexp/watch"

	"github.com/scott-cotton/cli"
)

func yexpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one file", cli.ErrUsage)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cfg.run(ctx, cc.Out, args[0])
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

// run resolves file and writes the output to cfg.Out or stdout, then keeps
// doing so on changes in watch mode.
func (cfg *MainConfig) run(ctx context.Context, stdout io.Writer, file string) error {
	var w io.Writer
	if cfg.Out == "" {
		w = stdout
	}
	last, err := cfg.render(ctx, w, file)
	if err != nil {
		return err
	}
	if err := cfg.emit(stdout, last.out); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	watcher, err := watch.New(watch.DefaultConfig(), theLog)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	// the watcher runs one change callback at a time
	return watcher.Watch(ctx, last.files, func() ([]string, error) {
		next, err := cfg.render(ctx, w, file)
		if err != nil {
			return nil, err
		}
		if cfg.unchanged(last, next) {
			theLog.Info("output unchanged", "file", file)
			return next.files, nil
		}
		if err := cfg.emit(stdout, next.out); err != nil {
			return nil, err
		}
		last = next
		return next.files, nil
	})
}

// rendering is one complete output of file.
type rendering struct {
	doc   *ir.Node
	out   []byte
	files []string
}

// unchanged reports whether emitting next would repeat prev.
func (cfg *MainConfig) unchanged(prev, next *rendering) bool {
	switch {
	case cfg.Sources:
		return slices.Equal(prev.files, next.files)
	case cfg.Diff != "":
		return bytes.Equal(prev.out, next.out)
	}
	return ir.Equal(prev.doc, next.doc)
}

// render produces the complete output for file along with the files it was
// resolved from. Colors are used when w wants them.
func (cfg *MainConfig) render(ctx context.Context, w io.Writer, file string) (*rendering, error) {
	doc, files, err := cfg.resolve(ctx, file)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	switch {
	case cfg.Sources:
		for _, f := range files {
			fmt.Fprintln(buf, f)
		}
	case cfg.Diff != "":
		other, otherFiles, err := cfg.resolve(ctx, cfg.Diff)
		if err != nil {
			return nil, err
		}
		plain := []encode.EncodeOption{
			encode.EncodeFormat(cfg.outFormat()),
			encode.EncodeWire(cfg.WireOut),
		}
		from, err := encodeString(doc, plain)
		if err != nil {
			return nil, err
		}
		to, err := encodeString(other, plain)
		if err != nil {
			return nil, err
		}
		if err := libdiff.Render(buf, libdiff.Lines(from, to), cfg.useColor(w)); err != nil {
			return nil, err
		}
		for _, f := range otherFiles {
			if !slices.Contains(files, f) {
				files = append(files, f)
			}
		}
	default:
		if err := encode.Encode(doc, buf, cfg.encOpts(w)...); err != nil {
			return nil, err
		}
	}
	return &rendering{doc: doc, out: buf.Bytes(), files: files}, nil
}

// resolve loads file and applies the -s settings. The returned files are
// the distinct canonical paths read, in load order.
func (cfg *MainConfig) resolve(ctx context.Context, file string) (*ir.Node, []string, error) {
	var (
		mu    sync.Mutex
		files []string
	)
	onFile := resolve.OnFile(func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if !slices.Contains(files, path) {
			files = append(files, path)
		}
	})
	doc, err := resolve.Load(ctx, file, append(cfg.resolveOpts(), onFile)...)
	if err != nil {
		return nil, nil, err
	}
	doc, err = applySettings(doc, cfg.Sets)
	if err != nil {
		return nil, nil, err
	}
	return doc, files, nil
}

func (cfg *MainConfig) emit(stdout io.Writer, out []byte) error {
	if cfg.Out == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(cfg.Out, out, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", cfg.Out, err)
	}
	return nil
}

func encodeString(doc *ir.Node, opts []encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
