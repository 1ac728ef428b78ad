package imagereader

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"

	// Formats imaging does not register by itself
	_ "golang.org/x/image/webp"
)

const jpegFormat = "jpeg"

// LoadImage decodes the full image. JPEG files are decoded with libjpeg and
// everything else with the standard decoders registered through imaging.
func LoadImage(path string) (image.Image, error) {
	return loadImage(path, nil)
}

// LoadScaledImage decodes the image so that it fits within bound. Images
// smaller than the bound are returned in their native size.
func LoadScaledImage(path string, bound apitype.Size) (*apitype.ScaledImage, error) {
	startTime := time.Now()

	nativeSize, err := DecodeSize(path)
	if err != nil {
		return nil, err
	}
	displaySize := apitype.FitWithin(nativeSize, bound)

	var decoded image.Image
	if displaySize == nativeSize {
		decoded, err = loadImage(path, nil)
	} else {
		decoded, err = loadImage(path, &displaySize)
	}
	if err != nil {
		return nil, err
	}

	var resized image.Image = decoded
	if apitype.SizeFromRectangle(decoded.Bounds()) != displaySize {
		resized = imaging.Resize(decoded, displaySize.Width(), displaySize.Height(), imaging.Lanczos)
	}

	scaled := &apitype.ScaledImage{
		Image:       ConvertNrgbaToRgba(resized),
		NativeSize:  nativeSize,
		DisplaySize: displaySize,
	}
	logger.Trace.Printf("Loaded '%s' %s -> %s in %s", path, nativeSize, displaySize, time.Since(startTime))
	return scaled, nil
}

// DecodeSize reads only the header of the image
func DecodeSize(path string) (apitype.Size, error) {
	file, err := os.Open(path)
	if err != nil {
		return apitype.Size{}, err
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(bufio.NewReader(file))
	if err != nil {
		return apitype.Size{}, fmt.Errorf("%w '%s': %s", apitype.ErrDecode, path, err)
	}
	return apitype.SizeOf(config.Width, config.Height), nil
}

func loadImage(path string, scaleTarget *apitype.Size) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	format, err := sniffFormat(file)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %s", apitype.ErrDecode, path, err)
	}

	if format == jpegFormat {
		options := &jpeg.DecoderOptions{}
		if scaleTarget != nil {
			options.ScaleTarget = scaleTarget.Rectangle()
		}
		if decoded, err := jpeg.Decode(bufio.NewReader(file), options); err == nil {
			return decoded, nil
		} else {
			logger.Debug.Printf("libjpeg could not decode '%s', trying generic decoder: %s", path, err)
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	decoded, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %s", apitype.ErrDecode, path, err)
	}
	return decoded, nil
}

func sniffFormat(file *os.File) (string, error) {
	_, format, err := image.DecodeConfig(bufio.NewReader(file))
	if err != nil {
		return "", err
	}
	_, err = file.Seek(0, io.SeekStart)
	return format, err
}

// ConvertNrgbaToRgba copies the pixels as-is into an RGBA image which can be
// uploaded as a texture. Alpha is not premultiplied since the textures are
// drawn with straight alpha.
func ConvertNrgbaToRgba(i image.Image) *image.RGBA {
	start := time.Now()
	n, ok := i.(*image.NRGBA)
	if !ok {
		n = imaging.Clone(i)
	}

	width := n.Rect.Dx()
	height := n.Rect.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLength := width * 4
	for y := 0; y < height; y++ {
		nrgbaOffset := n.PixOffset(n.Rect.Min.X, n.Rect.Min.Y+y)
		rgbaOffset := rgba.PixOffset(0, y)
		copy(rgba.Pix[rgbaOffset:rgbaOffset+rowLength], n.Pix[nrgbaOffset:nrgbaOffset+rowLength])
	}

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting from NRGBA to RGBA: %s", time.Since(start))
	}
	return rgba
}
