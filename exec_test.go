package seamcarve

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/esimov/seamcarve/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietProcessor(width, height int) *Processor {
	return &Processor{
		NewWidth:  width,
		NewHeight: height,
		Spinner:   utils.NewSpinnerWriter(io.Discard, "", time.Millisecond, false),
	}
}

func writeTestImage(t *testing.T, path string, g *Grid) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encodeImg(f, g))
	require.NoError(t, f.Close())
}

func TestExec_SingleFileDefaultName(t *testing.T) {
	assert := assert.New(t)

	src := filepath.Join(t.TempDir(), "photo.ppm")
	writeTestImage(t, src, randomGrid(t, 6, 4, 22))

	p := quietProcessor(3, 2)
	assert.NoError(p.Execute(&Ops{Src: src, PipeName: "-"}))

	g, err := LoadPPM(filepath.Join(filepath.Dir(src), "carved3X2.photo.ppm"), 3, 2)
	assert.NoError(err)
	assert.NotNil(g)
}

func TestExec_SingleFileToPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.ppm")
	dst := filepath.Join(dir, "small.png")
	writeTestImage(t, src, randomGrid(t, 6, 4, 23))

	require.NoError(t, quietProcessor(4, 4).Execute(&Ops{Src: src, Dst: dst, PipeName: "-"}))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()

	g, err := decodeImg(f, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
}

func TestExec_FailedLoadLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.ppm")
	dst := filepath.Join(dir, "out.ppm")
	require.NoError(t, os.WriteFile(src, []byte("P3 2 2 255 0 0 0"), 0644))

	err := quietProcessor(1, 1).Execute(&Ops{Src: src, Dst: dst, PipeName: "-"})
	assert.ErrorIs(t, err, ErrTooFewValues)
	assert.NoFileExists(t, dst)
}

func TestExec_UnsupportedDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.ppm")
	writeTestImage(t, src, randomGrid(t, 3, 3, 24))

	err := quietProcessor(2, 2).Execute(&Ops{Src: src, Dst: filepath.Join(dir, "out.gif"), PipeName: "-"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExec_Directory(t *testing.T) {
	assert := assert.New(t)

	src, dst := t.TempDir(), filepath.Join(t.TempDir(), "out")
	writeTestImage(t, filepath.Join(src, "a.ppm"), randomGrid(t, 8, 6, 25))
	writeTestImage(t, filepath.Join(src, "nested", "b.png"), randomGrid(t, 7, 7, 26))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip me"), 0644))

	p := quietProcessor(5, 5)
	assert.NoError(p.Execute(&Ops{Src: src, Dst: dst, PipeName: "-", Workers: 2}))

	var names []string
	assert.NoError(filepath.WalkDir(dst, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			rel, _ := filepath.Rel(dst, path)
			names = append(names, rel)
		}
		return err
	}))
	assert.ElementsMatch([]string{"a.ppm", filepath.Join("nested", "b.png")}, names)

	g, err := LoadPPM(filepath.Join(dst, "a.ppm"), 5, 5)
	assert.NoError(err)
	assert.NotNil(g)
}

func TestExec_DirectoryKeepsSameNamedFiles(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTestImage(t, filepath.Join(src, "a", "x.ppm"), uniformGrid(t, 5, 5, Pixel{R: 10}))
	writeTestImage(t, filepath.Join(src, "b", "x.ppm"), uniformGrid(t, 5, 5, Pixel{R: 200}))

	require.NoError(t, quietProcessor(3, 3).Execute(&Ops{Src: src, Dst: dst, PipeName: "-", Workers: 2}))

	a, err := LoadPPM(filepath.Join(dst, "a", "x.ppm"), 3, 3)
	require.NoError(t, err)
	b, err := LoadPPM(filepath.Join(dst, "b", "x.ppm"), 3, 3)
	require.NoError(t, err)

	assert.Equal(t, Pixel{R: 10}, a.At(1, 1))
	assert.Equal(t, Pixel{R: 200}, b.At(1, 1))
}

func TestExec_DirectoryReportsFailures(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTestImage(t, filepath.Join(src, "good.ppm"), randomGrid(t, 4, 4, 27))
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.ppm"), []byte("P6 4 4 255"), 0644))

	err := quietProcessor(3, 3).Execute(&Ops{Src: src, Dst: dst, PipeName: "-"})
	assert.Error(t, err)
	assert.FileExists(t, filepath.Join(dst, "good.ppm"))
	assert.NoFileExists(t, filepath.Join(dst, "bad.ppm"))
}

func TestExec_DirectoryNeedsDestination(t *testing.T) {
	err := quietProcessor(3, 3).Execute(&Ops{Src: t.TempDir(), PipeName: "-"})
	assert.Error(t, err)
}

func TestExec_MissingSource(t *testing.T) {
	err := quietProcessor(3, 3).Execute(&Ops{Src: filepath.Join(t.TempDir(), "nope.ppm"), PipeName: "-"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExec_OutputName(t *testing.T) {
	g := uniformGrid(t, 12, 8, Pixel{})
	assert.Equal(t, filepath.Join("img", "carved12X8.cat.ppm"), OutputName(filepath.Join("img", "cat.ppm"), g))
	assert.Equal(t, "carved12X8.cat.png", OutputName("cat.png", g))
}
