package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/avatar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []byte{30, 140, 60, 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestFamilies(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"funny", "--face", "x", "--accessory", "a,b", "--text", "hi"},
		{"cute", "--animal", "panda", "--accessory", "bow"},
		{"cool", "--color", "#ff0000,#0000ff,#00ff00", "--glow", "--shape", "hexagon"},
		{"anime", "--hair", "long", "--hair-color", "#ff69b4"},
		{"blank", "--name", "Ada Lovelace", "--scheme", "ocean"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			path := filepath.Join(dir, args[0]+".png")
			out, err := run(t, append(args, "--size", "64", "--seed", "1", "-o", path)...)
			require.NoError(t, err)
			assert.Contains(t, out, "wrote "+path+" (64x64)")

			img := decodeFile(t, path)
			assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
		})
	}
}

func TestRenderJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.jpg")
	_, err := run(t, "blank", "--initials", "jd", "--size", "40", "--quality", "0.5", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, avatar.MIMEJPEG, avatar.SniffMIME(data))
}

func TestInvalidOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funny.png")
	_, err := run(t, "funny", "--background", "plaid", "--size", "32", "-o", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, avatar.ErrInvalidOptions)
	assert.NoFileExists(t, path)

	_, err = run(t, "blank", "--scheme", "nope", "-o", path)
	assert.EqualError(t, err, `unknown scheme "nope"`)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("AVATAR_SIZE", "24")
	t.Setenv("AVATAR_BLANK_INITIALS", "ZZ")
	path := filepath.Join(t.TempDir(), "env.png")

	out, err := run(t, "blank", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(24x24)")
	assert.Equal(t, 24, decodeFile(t, path).Bounds().Dx())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "avatar.yaml")
	path := filepath.Join(dir, "square.png")
	require.NoError(t, os.WriteFile(cfg, []byte(`size: 48
out: `+path+`
blank:
  initials: QQ
  shape: square
  background: "#123456"
`), 0o644))

	_, err := run(t, "blank", "--config", cfg)
	require.NoError(t, err)

	img := decodeFile(t, path)
	assert.Equal(t, 48, img.Bounds().Dx())
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0x12, 0x34, 0x56, 0xff}, [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "avatar.json")
	path := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"size": 48}`), 0o644))

	out, err := run(t, "cool", "--config", cfg, "--size", "20", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(20x20)")
}

func TestSystemEmoji(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "funny.png")

	// Renders with or without an installed emoji font.
	out, err := run(t, "funny", "--face", "\U0001F600", "--system-emoji",
		"--font-cache", dir, "--size", "48", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(48x48)")

	// An explicit emoji font wins over the lookup.
	_, err = run(t, "funny", "--system-emoji", "--emoji-font", filepath.Join(dir, "missing.ttf"), "-o", path)
	require.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "blank", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestPhoto(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, 120, 80)
	path := filepath.Join(dir, "photo.png")

	_, err := run(t, "photo", src,
		"--size", "50",
		"--filter", "grayscale",
		"--crop-shape", "circle",
		"--sticker", "*@200,200,40,15",
		"--sticker", "+@100,100,30",
		"--text", "me",
		"-o", path)
	require.NoError(t, err)

	img := decodeFile(t, path)
	assert.Equal(t, 50, img.Bounds().Dx())
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Zero(t, a, "corner outside the circle crop")
}

func TestPhotoRejectsText(t *testing.T) {
	src := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))
	_, err := run(t, "photo", src, "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, avatar.ErrUnsupportedFormat)
}

func TestParseSticker(t *testing.T) {
	tests := []struct {
		in      string
		want    avatar.Sticker
		wantErr bool
	}{
		{"😀@10,20,30", avatar.Sticker{Glyph: "😀", X: 10, Y: 20, SizePx: 30}, false},
		{"★@1.5, 2.5, 40, -45", avatar.Sticker{Glyph: "★", X: 1.5, Y: 2.5, SizePx: 40, RotationDeg: -45}, false},
		{"@1,2,3", avatar.Sticker{}, true},
		{"x", avatar.Sticker{}, true},
		{"x@1,2", avatar.Sticker{}, true},
		{"x@1,two,3", avatar.Sticker{}, true},
	}
	for _, tt := range tests {
		got, err := parseSticker(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseCrop(t *testing.T) {
	c, err := parseCrop(nil, "")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = parseCrop(nil, avatar.CropCircle)
	require.NoError(t, err)
	assert.Equal(t, &avatar.CropRegion{Shape: avatar.CropCircle}, c)

	c, err = parseCrop([]int{1, 2, 3, 4}, avatar.CropSquare)
	require.NoError(t, err)
	assert.Equal(t, &avatar.CropRegion{X: 1, Y: 2, W: 3, H: 4, Shape: avatar.CropSquare}, c)

	_, err = parseCrop([]int{1, 2}, "")
	assert.Error(t, err)
}

func TestSizes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, 300, 200)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "sizes", src, "--platform", "discord,facebook", "--dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "profile-discord-128x128.png")

	img := decodeFile(t, filepath.Join(outDir, "profile-facebook-170x170.png"))
	assert.Equal(t, image.Rect(0, 0, 170, 170), img.Bounds())
	c := color.NRGBAModel.Convert(img.At(85, 85)).(color.NRGBA)
	assert.InDelta(t, 30, int(c.R), 1)
	assert.InDelta(t, 140, int(c.G), 1)
	assert.InDelta(t, 60, int(c.B), 1)

	_, err = run(t, "sizes", src, "--platform", "myspace", "--dir", outDir)
	assert.ErrorContains(t, err, `unknown platform "myspace"`)
}

func TestSizesList(t *testing.T) {
	out, err := run(t, "sizes")
	require.NoError(t, err)
	assert.Contains(t, out, "instagram-hd")
	assert.Contains(t, out, "640x640")
}

func TestFixOrientation(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	writePNG(t, src, 30, 20)
	dst := filepath.Join(dir, "out.jpg")

	_, err := run(t, "fix-orientation", src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, avatar.MIMEJPEG, avatar.SniffMIME(data))
	assert.Equal(t, 30, decodeFile(t, dst).Bounds().Dx())
}
