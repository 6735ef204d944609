package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

const maxImageBytes = 10 << 20

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
}

// ValidateImageURL accepts absolute http(s) URLs whose path ends in a known image extension.
func ValidateImageURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrUnsupportedImage
	}
	if !imageExtensions[strings.ToLower(path.Ext(u.Path))] {
		return nil, ErrUnsupportedImage
	}
	return u, nil
}

func (s *DefaultAIService) AnalyzePrescriptionImage(ctx context.Context, imageURL string) (string, error) {
	u, err := ValidateImageURL(imageURL)
	if err != nil {
		return "", err
	}

	data, mimeType, err := s.fetchImage(ctx, u.String())
	if err != nil {
		return "", fmt.Errorf("prescription image: %w", err)
	}

	text, err := s.gen.GenerateWithImage(ctx, prescriptionImagePrompt, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("prescription image: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (s *DefaultAIService) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", ErrUnsupportedImage
	}
	return data, mimeType, nil
}
