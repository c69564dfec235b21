package symbols

import (
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"decred.org/dcrwallet/v2/errors"
	"golang.org/x/sync/errgroup"
)

// maxParallelCopies bounds the number of files copied at once.
const maxParallelCopies = 8

// Bundle validates entries and copies each source image found in srcDir to
// its output name under outDir. It returns the bundle-relative paths written,
// in entry order.
func Bundle(ctx context.Context, srcDir, outDir string, entries []Entry) ([]string, error) {
	const op errors.Op = "symbols.Bundle"

	if err := Validate(entries); err != nil {
		return nil, errors.E(op, err)
	}

	if err := os.MkdirAll(filepath.Join(outDir, OutputDir), utils.UserDirPerm); err != nil {
		return nil, errors.E(op, errors.IO, err)
	}

	written := make([]string, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCopies)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := e.OutputName()
			if err := copyImage(filepath.Join(srcDir, e.Source), filepath.Join(outDir, filepath.FromSlash(out))); err != nil {
				log.Errorf("unable to bundle %s as %s: %v", e.Source, out, err)
				return errors.E(op, err)
			}
			if e.IsRename() {
				log.Debugf("bundled %s as %s", e.Source, out)
			} else {
				log.Tracef("bundled %s", out)
			}
			written[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("bundled %d asset symbols into %s", len(written), outDir)
	return written, nil
}

// copyImage copies src to dst after checking that src holds a PNG image.
func copyImage(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.E(errors.NotExist, err)
		}
		return errors.E(errors.IO, err)
	}
	defer in.Close()

	if _, err := png.DecodeConfig(in); err != nil {
		return errors.E(errors.Invalid, errors.Errorf("%s: %s: %v", utils.ErrUnsupportedImage, src, err))
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return errors.E(errors.IO, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.E(errors.IO, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.E(errors.IO, err)
	}
	if err := out.Close(); err != nil {
		return errors.E(errors.IO, err)
	}
	return nil
}
