package sanity

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageURLBuilder превращает ссылку на ассет вида
// "image-<id>-<WxH>-<ext>" в публичный CDN-адрес изображения.
type ImageURLBuilder struct {
	projectID string
	dataset   string
}

func NewImageURLBuilder(client *Client) *ImageURLBuilder {
	return &ImageURLBuilder{
		projectID: client.ProjectID(),
		dataset:   client.Dataset(),
	}
}

// ImageURL собирает адрес изображения. width/height <= 0 означают
// оригинальный размер. Непохожая на ассет ссылка возвращается пустой
// строкой - карточка без картинки лучше битой ссылки.
func (b *ImageURLBuilder) ImageURL(assetRef string, width, height int) string {
	parts := strings.Split(assetRef, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	assetID, dims, ext := parts[1], parts[2], parts[3]

	base := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		b.projectID, b.dataset, assetID, dims, ext)

	params := url.Values{}
	if width > 0 {
		params.Set("w", fmt.Sprintf("%d", width))
	}
	if height > 0 {
		params.Set("h", fmt.Sprintf("%d", height))
	}
	if len(params) == 0 {
		return base
	}
	params.Set("fit", "crop")
	return base + "?" + params.Encode()
}
