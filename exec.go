package seamcarve

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/seamcarve/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// validExtensions lists the file types picked up when carving a whole directory.
var validExtensions = []string{".ppm", ".zst", ".png", ".jpg", ".jpeg", ".bmp"}

// Ops describes where the images are read from and written to.
type Ops struct {
	// Src and Dst are file names, directories or PipeName.
	// An empty Dst writes next to the source, see OutputName.
	Src, Dst, PipeName string
	Workers            int
}

// result holds the relevant information about the resizing process and the generated image.
type result struct {
	path string
	err  error
}

// Execute executes the image resizing process on a single file, a pipe or every
// supported image of a directory tree. Directories are processed concurrently.
func (p *Processor) Execute(op *Ops) error {
	var (
		fs  os.FileInfo
		err error
	)

	if p.Spinner == nil {
		defaultMsg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ SEAMCARVE", utils.StatusMessage),
			utils.DecorateText("⇢ carving image (be patient, it may take a while)...", utils.DefaultMessage),
		)
		p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)
	}

	if op.Src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(op.Src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}

	// Capture CTRL-C signal and restore back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-signalChan:
			p.Spinner.RestoreCursor()
			os.Exit(1)
		case <-finished:
		}
	}()

	now := time.Now()
	p.Spinner.Start()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		err = op.processDir(p)
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || op.Src == op.PipeName:
		var dst string
		dst, err = op.process(p, op.Src, op.Dst)
		if err == nil {
			p.Spinner.StopMsg = op.statusMsg(dst, nil)
		}
	default:
		err = fmt.Errorf("%s is not a regular file or directory", op.Src)
	}
	p.Spinner.Stop()

	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
	return err
}

// processDir carves every supported image found under op.Src into op.Dst.
func (op *Ops) processDir(p *Processor) error {
	if op.Dst == "" || op.Dst == op.PipeName {
		return errors.New("a destination directory is required when the source is a directory")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	workers := op.Workers
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, op.Src, validExtensions)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, ch, done, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var failed int
	for res := range ch {
		if res.err != nil {
			failed++
			log.Print(op.statusMsg(res.path, res.err))
		}
	}

	if err := <-errc; err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d image(s) could not be carved", failed)
	}
	return nil
}

// consumer reads the path names from the paths channel and calls the carver against the source image.
func (op *Ops) consumer(
	p *Processor,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		dst, err := op.destPath(src)
		if err == nil {
			_, err = op.process(p, src, dst)
		}

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// destPath mirrors the location of src below op.Src inside op.Dst,
// creating the intermediate directories.
func (op *Ops) destPath(src string) (string, error) {
	rel, err := filepath.Rel(op.Src, src)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(op.Dst, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("unable to create the destination directory: %w", err)
	}
	return dst, nil
}

// process carves a single image and returns the name of the written file.
// The destination is created only once the carving succeeded, so a failed
// run leaves no output behind.
func (op *Ops) process(p *Processor, in, out string) (string, error) {
	src, err := op.openSource(in)
	if err != nil {
		return "", err
	}
	if f, ok := src.(*os.File); ok && f != os.Stdin {
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}()
	}

	g, err := p.Load(src)
	if err != nil {
		return "", err
	}
	if g, err = p.Resize(g); err != nil {
		return "", err
	}

	if out == "" {
		out = OutputName(in, g)
	}
	dst, err := op.openDest(out)
	if err != nil {
		return "", err
	}
	if dst == os.Stdout {
		return out, encodeImg(dst, g)
	}

	f := dst.(*os.File)
	if err := encodeImg(f, g); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	return out, f.Close()
}

// openSource converts the source path to a readable stream.
func (op *Ops) openSource(in string) (io.Reader, error) {
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// openDest converts the destination path to a writable stream.
func (op *Ops) openDest(out string) (io.Writer, error) {
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}
	if !isValidExtension(strings.ToLower(filepath.Ext(out)), append([]string{""}, validExtensions...)) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(out))
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}

// OutputName returns the default destination of a carved image: the source
// file name prefixed with the final size, e.g. "carved120X80.photo.ppm",
// placed in the directory of the source.
func OutputName(src string, g *Grid) string {
	name := fmt.Sprintf("carved%dX%d.%s", g.Width(), g.Height(), filepath.Base(src))
	return filepath.Join(filepath.Dir(src), name)
}

// statusMsg formats the outcome of a single carving operation.
func (op *Ops) statusMsg(fname string, err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s\n",
			utils.DecorateText("Error carving "+filepath.Base(fname)+":", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if fname == op.PipeName {
		return ""
	}
	return fmt.Sprintf("\nThe image has been saved as: %s\n", utils.DecorateText(filepath.Base(fname), utils.SuccessMessage))
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan struct{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !isValidExtension(strings.ToLower(filepath.Ext(f.Name())), srcExts) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
