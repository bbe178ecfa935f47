package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)

	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 80
)

// CompressImageToWebP decode gambar (jpeg/png) lalu resize keep-aspect +
// encode ulang ke WebP supaya bukti bayar / foto laporan tidak membengkak.
func CompressImageToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, fmt.Errorf("ukuran file melebihi %dMB", maxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("gagal decode gambar: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > webpMaxW || bounds.Dy() > webpMaxH {
		img = imaging.Fit(img, webpMaxW, webpMaxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// UploadImageToSupabase kompres ke WebP lalu push ke Supabase storage.
// Return public URL.
func UploadImageToSupabase(folder string, fileHeader *multipart.FileHeader) (string, error) {
	data, err := CompressImageToWebP(fileHeader)
	if err != nil {
		return "", err
	}

	filename := generateUniqueFilename(folder, fileHeader.Filename)
	if err := uploadToSupabase("image", filename, "image/webp", bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("upload gambar gagal: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/image/%s",
		os.Getenv("SUPABASE_PROJECT_URL"),
		url.PathEscape(filename),
	)
	return publicURL, nil
}

func uploadToSupabase(bucket, filename, contentType string, body io.Reader) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("SUPABASE_PROJECT_URL"), bucket, url.PathEscape(filename))

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("SUPABASE_SERVICE_ROLE_KEY"))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

var filenameSanitizeRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func generateUniqueFilename(folder, original string) string {
	base := filenameSanitizeRe.ReplaceAllString(original, "-")
	base = strings.TrimSuffix(base, "."+extOf(base))
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s/%s-%s.webp", strings.Trim(folder, "/"), uuid.NewString(), base)
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return ""
}
