package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/ianaindex"

	"css2tw/config"
	"css2tw/convert/tailwind"
	"css2tw/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src != stdinName {
		if src, err = filepath.Abs(src); err != nil {
			return err
		}
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if cmd.IsSet("to") {
		format, err := config.ParseOutputFmt(cmd.String("to"))
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", env.Format), zap.Error(err))
		} else {
			env.Format = format
		}
	}

	if cmd.IsSet("prefix") {
		env.Options = tailwind.Options{UsePrefix: true, Prefix: cmd.String("prefix")}
	}
	if cmd.Bool("no-prefix") {
		env.Options.UsePrefix = false
	}

	env.Overwrite = cmd.Bool("overwrite")
	if jobs := cmd.Int("jobs"); jobs > 0 {
		env.Jobs = int(jobs)
	}

	// Stylesheets saved by older tools may use legacy code pages
	cp := cmd.String("force-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully decoding all non UTF-8 input", zap.String("charset", n))
		}
	}

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format),
		zap.Bool("use_prefix", env.Options.UsePrefix), zap.String("prefix", env.Options.Prefix))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, os.Stdin, os.Stdout, log)
}

// process handles the core batch logic independently of CLI framework. With
// empty dst all results are written to stdout after all sources were
// converted, otherwise every source produces its own file under dst.
func process(ctx context.Context, src, dst string, stdin io.Reader, stdout io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	sources, err := collectSources(ctx, src, env.CodePage, log)
	if err != nil {
		return err
	}

	conv := tailwind.NewConverter(log)

	var (
		mu      sync.Mutex
		errs    error
		results = make([]Result, 0, len(sources))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(env.Jobs, 1))

	for _, s := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := processSource(s, dst, stdin, conv, env, log)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error("Unable to process file", zap.String("file", s.path), zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", s.name, err))
				return nil
			}
			results = append(results, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// context may be canceled after last source has been scheduled
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(dst) == 0 && len(results) > 0 {
		sortByName(results, func(r Result) string { return r.Source })
		if err := writeResults(stdout, results, env.Format); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to write results: %w", err))
		}
	}

	log.Debug("Batch finished", zap.Int("sources", len(sources)), zap.Int("converted", len(results)))
	return errs
}

// processSource converts single source and when dst is specified stores
// formatted result there.
func processSource(s source, dst string, stdin io.Reader, conv *tailwind.Converter, env *state.LocalEnv, log *zap.Logger) (res Result, rerr error) {
	var outputName string

	log.Debug("Conversion starting", zap.String("from", s.path))
	defer func(start time.Time) {
		// one bad stylesheet should not bring down the whole batch
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("from", s.path), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Debug("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	f, err := s.open(stdin)
	if err != nil {
		return Result{}, fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	text, err := readText(f, env.CodePage)
	if err != nil {
		return Result{}, err
	}
	if env.Rpt != nil {
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("input", s.name)), []byte(text))
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("trace", s.name+".txt")), []byte(conv.Explain(text, env.Options)))
	}

	res = Result{Source: s.name, Classes: conv.Classes(text, env.Options)}
	if len(dst) == 0 {
		return res, nil
	}

	data, err := formatResult(res, env.Format)
	if err != nil {
		return Result{}, err
	}
	outputName = buildOutputPath(s.name, dst, newNaming(env), log)
	if err := writeOutput(outputName, data, env.Overwrite, log); err != nil {
		return Result{}, err
	}
	if rel, err := filepath.Rel(dst, outputName); err == nil {
		env.Rpt.StoreData(filepath.ToSlash(filepath.Join("output", rel)), data)
	}
	return res, nil
}
