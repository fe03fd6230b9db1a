package pdf

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // G501: content fingerprint, not a security boundary
	"encoding/hex"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var duplicateImagesSkipped = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "summary_duplicate_images_skipped_total",
		Help: "Total number of per-page duplicate images dropped during extraction",
	},
)

// assumedDPI is used for embedded images, which carry no resolution
// metadata once decoded.
const assumedDPI = 72

// ImageRecord is a decoded embedded image together with its page and
// source metadata. Hash is an MD5 fingerprint of the raw encoded bytes,
// unique within a single page's extraction.
type ImageRecord struct {
	Image  image.Image
	Page   int // 0-based
	Width  int
	Height int
	Format string
	Hash   string
	DPI    int
}

// ImageOptions controls image extraction.
type ImageOptions struct {
	// Workers bounds the per-page worker pool (0 = runtime.NumCPU()).
	Workers int
	// SaveDir, when non-empty, receives each extracted image as
	// page_{page+1}_img.{ext}. Save failures are logged, never fatal.
	SaveDir string
}

// rawImage is an encoded image as written by pdfcpu, before decoding.
type rawImage struct {
	page int // 0-based
	data []byte
	name string
}

// ExtractImages pulls every embedded image out of the document, decodes it
// and de-duplicates identical content within each page. Pages are processed
// by a worker pool; results are returned sorted by page index regardless of
// completion order. Decode failures skip the single image with a diagnostic.
func ExtractImages(ctx context.Context, doc *Document, opts ImageOptions) ([]ImageRecord, error) {
	raws, err := extractRawImages(doc.path)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}

	pages := groupByPage(raws)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	type pageResult struct {
		page    int
		records []ImageRecord
	}

	jobs := make(chan []rawImage, len(pages))
	results := make(chan pageResult, len(pages))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				results <- pageResult{page: batch[0].page, records: decodePageImages(batch)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, batch := range pages {
			select {
			case jobs <- batch:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]pageResult, 0, len(pages))
	for res := range results {
		collected = append(collected, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Parallel completion order must not leak into the output.
	sort.Slice(collected, func(i, j int) bool { return collected[i].page < collected[j].page })

	var records []ImageRecord
	for _, res := range collected {
		records = append(records, res.records...)
	}

	if opts.SaveDir != "" {
		saveImages(records, opts.SaveDir)
	}
	return records, nil
}

// decodePageImages decodes one page's images, dropping duplicates seen
// within this page. The seen-set is local to the page on purpose: the same
// image embedded on two different pages is extracted twice.
func decodePageImages(batch []rawImage) []ImageRecord {
	seen := make(map[string]struct{}, len(batch))
	records := make([]ImageRecord, 0, len(batch))

	for _, raw := range batch {
		sum := md5.Sum(raw.data) //nolint:gosec // content fingerprint only
		hash := hex.EncodeToString(sum[:])
		if _, dup := seen[hash]; dup {
			slog.Debug("skipping duplicate image", "page", raw.page+1, "hash", hash)
			duplicateImagesSkipped.Inc()
			continue
		}
		seen[hash] = struct{}{}

		img, format, err := image.Decode(bytes.NewReader(raw.data))
		if err != nil {
			slog.Warn("skipping undecodable image", "page", raw.page+1, "file", raw.name, "error", err)
			continue
		}
		if format != "png" && format != "jpeg" {
			// Normalize exotic encodings to the PNG fallback.
			format = "png"
		}

		bounds := img.Bounds()
		records = append(records, ImageRecord{
			Image:  img,
			Page:   raw.page,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Format: format,
			Hash:   hash,
			DPI:    assumedDPI,
		})
	}
	return records
}

// extractRawImages runs pdfcpu's image extraction into a temporary
// directory and reads the encoded files back, ordered by filename.
func extractRawImages(path string) ([]rawImage, error) {
	tempDir, err := os.MkdirTemp("", "pdf-extract-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	if err := api.ExtractImagesFile(path, tempDir, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to extract images from PDF: %w", err)
	}

	var names []string
	err = filepath.Walk(tempDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect extracted images: %w", err)
	}
	sort.Strings(names)

	var raws []rawImage
	for _, p := range names {
		page, err := pageFromFilename(filepath.Base(p))
		if err != nil {
			slog.Debug("ignoring non-image extraction artifact", "file", filepath.Base(p))
			continue
		}
		data, err := os.ReadFile(p) //nolint:gosec // G304: files created by pdfcpu in our temp dir
		if err != nil {
			slog.Warn("skipping unreadable extracted image", "file", filepath.Base(p), "error", err)
			continue
		}
		raws = append(raws, rawImage{page: page - 1, data: data, name: filepath.Base(p)})
	}
	return raws, nil
}

// pdfcpu names extracted files <basename>_<page>_<resource>.<ext>. The
// pattern is anchored to the filename tail so digits inside the PDF's own
// basename (report_2024_final.pdf) never shadow the page number.
var extractedNameRe = regexp.MustCompile(`_(\d+)_[^_.]+\.\w+$`)

// legacyNameRe matches the page_<page>_image_<n>.<ext> form older pdfcpu
// releases used.
var legacyNameRe = regexp.MustCompile(`^page_(\d+)_image_\d+\.\w+$`)

func pageFromFilename(name string) (int, error) {
	if m := legacyNameRe.FindStringSubmatch(name); m != nil {
		return strconv.Atoi(m[1])
	}
	if m := extractedNameRe.FindStringSubmatch(name); m != nil {
		return strconv.Atoi(m[1])
	}
	return 0, fmt.Errorf("no page number in %q", name)
}

func groupByPage(raws []rawImage) [][]rawImage {
	byPage := make(map[int][]rawImage)
	for _, raw := range raws {
		byPage[raw.page] = append(byPage[raw.page], raw)
	}
	pages := make([][]rawImage, 0, len(byPage))
	for _, batch := range byPage {
		pages = append(pages, batch)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i][0].page < pages[j][0].page })
	return pages
}

// saveImages writes records to dir using the page_{page+1}_img.{ext}
// pattern. Failures here never invalidate the in-memory results.
func saveImages(records []ImageRecord, dir string) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Warn("cannot create image save directory", "dir", dir, "error", err)
		return
	}
	for _, rec := range records {
		ext := rec.Format
		if ext != "png" && ext != "jpeg" {
			ext = "png"
		}
		path := filepath.Join(dir, fmt.Sprintf("page_%d_img.%s", rec.Page+1, ext))
		if err := imaging.Save(rec.Image, path); err != nil {
			slog.Warn("failed to save extracted image", "path", path, "error", err)
			continue
		}
		slog.Debug("saved extracted image", "path", path)
	}
}
