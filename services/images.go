package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

const (
	// imageMaxEdge is the longest edge, in pixels, of an embedded product
	// image after shrinking.
	imageMaxEdge = 500

	// imageJPEGQuality is the fixed re-encode quality for embedded images.
	imageJPEGQuality = 90
)

// ImageSource fetches raw image bytes by stored filename.
type ImageSource interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPImageSource fetches product images from the image API endpoint at
// <BaseURL>/product/<name>.
type HTTPImageSource struct {
	BaseURL string
	Client  *http.Client
}

func (s *HTTPImageSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	url := fmt.Sprintf("%s/product/%s", strings.TrimRight(s.BaseURL, "/"), name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch %s: status %d", name, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// ShrinkJPEG decodes an image, scales it down so its longest edge is at
// most maxEdge pixels (preserving aspect ratio, never upscaling), and
// re-encodes it as JPEG at the fixed embed quality.
func ShrinkJPEG(raw []byte, maxEdge int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxEdge || b.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(imageJPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// ResolveImages fetches and shrinks every referenced image concurrently and
// returns an index-aligned slice of JPEG payloads. Empty references and any
// fetch or decode failure yield a nil entry; a failed image never fails the
// export. The call blocks until every fetch has settled, so row heights
// computed afterwards are final.
func ResolveImages(ctx context.Context, src ImageSource, refs []string) [][]byte {
	out := make([][]byte, len(refs))
	if src == nil {
		return out
	}

	var g errgroup.Group
	for i, ref := range refs {
		if ref == "" {
			continue
		}
		g.Go(func() error {
			raw, err := src.Fetch(ctx, ref)
			if err != nil {
				log.Printf("image_embed: fetch %s: %v", ref, err)
				return nil
			}
			jpg, err := ShrinkJPEG(raw, imageMaxEdge)
			if err != nil {
				log.Printf("image_embed: shrink %s: %v", ref, err)
				return nil
			}
			out[i] = jpg
			return nil
		})
	}
	g.Wait()
	return out
}

// AttachImages resolves every row's image reference and attaches the
// payloads to the document rows. Must run before layout so row heights
// account for image cells.
func AttachImages(ctx context.Context, src ImageSource, doc *InvoiceDocument) {
	refs := make([]string, len(doc.Rows))
	for i, r := range doc.Rows {
		refs[i] = r.ImageRef
	}
	payloads := ResolveImages(ctx, src, refs)
	for i := range doc.Rows {
		doc.Rows[i].Image = payloads[i]
	}
}
